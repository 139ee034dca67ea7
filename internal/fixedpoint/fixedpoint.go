// Package fixedpoint holds the small digit-string helpers used by the
// numeric element kind's wire rendering (package x12): left-padding a
// digit string to a minimum length and
// truncating one to a maximum length, both operating purely on already
// non-negative digit strings (sign handling is the caller's job).
package fixedpoint

import "strings"

// Pad left-pads digits with '0' until it is at least minLength long. A
// non-positive minLength is a no-op.
func Pad(digits string, minLength int) string {
	if minLength <= 0 || len(digits) >= minLength {
		return digits
	}
	return strings.Repeat("0", minLength-len(digits)) + digits
}

// Truncate keeps at most maxLength characters from the left of digits,
// discarding the rest. A non-positive maxLength yields "".
func Truncate(digits string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	if len(digits) <= maxLength {
		return digits
	}
	return digits[:maxLength]
}
