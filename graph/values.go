package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// multiValueDelimiters split a joined string attribute into an ordered list.
var multiValueDelimiters = []string{"|", "\n"}

// ScalarString renders an attribute value as the string the comparator
// operates on. Nil becomes the empty string so absent data fails closed
// instead of panicking.
func ScalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		// JSON numbers decode as float64; avoid exponent notation so
		// "1000000" round-trips comparably
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// MultiValues reports whether an attribute value is multi-valued and, if
// so, returns its ordered positions. Native sequences are multi-valued as
// given; strings are multi-valued when they contain a join delimiter.
// Positions are trimmed of surrounding whitespace, order is preserved.
func MultiValues(v any) ([]string, bool) {
	switch val := v.(type) {
	case []string:
		return val, true
	case []any:
		items := make([]string, len(val))
		for i, item := range val {
			items[i] = ScalarString(item)
		}
		return items, true
	case string:
		for _, delim := range multiValueDelimiters {
			if strings.Contains(val, delim) {
				parts := strings.Split(val, delim)
				for i, p := range parts {
					parts[i] = strings.TrimSpace(p)
				}
				return parts, true
			}
		}
		return nil, false
	default:
		return nil, false
	}
}
