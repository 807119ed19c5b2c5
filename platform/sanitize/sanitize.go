// Package sanitize provides input sanitization utilities.
// This is part of the platform layer and contains no business logic.
package sanitize

import "strings"

// Digits removes every character that is not an ASCII digit, preserving the
// order of the remaining digits. Empty or non-numeric input yields "".
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
