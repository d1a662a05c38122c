// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

func Quote(s any) string {
	return fmt.Sprintf("%q", castToString(s))
}

func TrimSpace(s string) string {
	return strings.TrimSpace(s)
}

func TrimPrefix(prefix, s string) string {
	return strings.TrimPrefix(s, prefix)
}

func TrimSuffix(suffix, s string) string {
	return strings.TrimSuffix(s, suffix)
}

func Replace(toChange, toBe, s string) string {
	return strings.ReplaceAll(s, toChange, toBe)
}

func ToUpper(s string) string {
	return strings.ToUpper(s)
}

func ToLower(s string) string {
	return strings.ToLower(s)
}

// Truncate keeps the first length runes of s, a negative length keeps the last ones.
func Truncate(length int, s string) string {
	runes := []rune(s)

	// length is negative, truncate from the end
	if length < 0 && len(runes)+length > 0 {
		return string(runes[len(runes)+length:])
	}

	// length is positive, truncate from the beginning
	if length >= 0 && len(runes) > length {
		return string(runes[:length])
	}

	return s
}

// Pad right-pads s with spaces up to width runes, a negative width pads on the left.
func Pad(width int, s any) string {
	str := castToString(s)
	missing := abs(width) - utf8.RuneCountInString(str)
	if missing <= 0 {
		return str
	}

	if width < 0 {
		return strings.Repeat(" ", missing) + str
	}
	return str + strings.Repeat(" ", missing)
}

func Split(sep, s string) []string {
	return strings.Split(s, sep)
}

func castToString(obj any) string {
	switch v := obj.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
