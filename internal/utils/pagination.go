// Package utils provides small, layer-agnostic helpers. Nothing here knows
// about scanning, users, or HTTP.
package utils

import "strconv"

// AtoiDefault parses s as an int, returning def when s is empty or not a
// plain integer. Handlers use it for page and page_size query parameters,
// where a garbled value should mean "use the default", not an error.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
