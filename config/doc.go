// Package config provides run configuration for the graphfilter CLI and
// embedding applications: where the graph document lives, the filter
// expression to evaluate, output shape, and result-cache sizing.
//
// Configuration loads from JSON or YAML (chosen by file extension) and is
// validated before use; flag values override file values at the CLI layer.
package config
