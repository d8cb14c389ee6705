package main

import (
	"flag"
	"fmt"
	"os"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath string
	GraphPath  string
	FilterText string
	Output     string
	LogLevel   string
	LogFormat  string
	ShowStats  bool
	ShowHelp   bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	flag.StringVar(&cfg.ConfigPath, "config",
		getEnv("GRAPHFILTER_CONFIG", ""),
		"Path to configuration file, optional (env: GRAPHFILTER_CONFIG)")

	flag.StringVar(&cfg.GraphPath, "graph",
		getEnv("GRAPHFILTER_GRAPH", ""),
		"Path to graph document, JSON or YAML (env: GRAPHFILTER_GRAPH)")

	flag.StringVar(&cfg.FilterText, "filter", "",
		"Filter expression, e.g. 'Node aff = U2 AND Edge kind = employs'")

	flag.StringVar(&cfg.Output, "output", "",
		"Output format: text, json (default from config, else text)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("GRAPHFILTER_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: GRAPHFILTER_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("GRAPHFILTER_LOG_FORMAT", "text"),
		"Log format: json, text (env: GRAPHFILTER_LOG_FORMAT)")

	flag.BoolVar(&cfg.ShowStats, "stats", false, "Print match counts to stderr")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")

	flag.Usage = printDetailedHelp
	flag.Parse()

	return cfg
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - Graph filter evaluation

Usage: %s [options]

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Filter grammar (whitespace-tokenized, no quoting):
  <Entity> <Column> <Operator> <Value> [<LogicalOp>] ...
  Entity:    Node | Edge          (case-insensitive)
  Operator:  = <> > >= < <= contains
  LogicalOp: AND | OR | NOT       (case-insensitive, attaches to the
                                   preceding condition and folds the next)

Values containing whitespace are not expressible in this grammar.

Examples:
  # Nodes affiliated with U2 plus the edges that inference implies
  %s --graph=graph.json --filter="Node aff = U2"

  # Combined node and edge conditions, JSON output
  %s --graph=graph.yaml --filter="Node dept contains research Edge kind = employs" --output=json

Version: %s
`, os.Args[0], os.Args[0], Version)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
