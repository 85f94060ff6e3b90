// Package symbolnorm normalizes user-typed ticker symbols before they are
// looked up against a corpus index.
package symbolnorm

import "strings"

// Normalize trims whitespace, strips a leading "$" (common in chat and
// social contexts), and uppercases s so it matches the canonical ticker
// symbols stored by internal/corpusindex.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	return strings.ToUpper(s)
}
