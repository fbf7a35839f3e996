package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
// Only used on menu input; IDs are compared exactly as entered.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// TrimEOL strips the trailing line terminator from `s`.
func TrimEOL(s string) string {
	return strings.TrimRight(s, "\r\n")
}
