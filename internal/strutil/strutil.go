// Package strutil provides the string shaping helpers used by display
// layers: truncation, address shortening, URL normalization, and case
// conversion.
package strutil

import (
	"strings"
	"unicode"
)

// Truncate returns s unchanged when it fits within max runes; otherwise
// the first max runes followed by "...".
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// Shorten keeps the first and last edge runes of s around "...": typical
// for addresses, e.g. Shorten("osmo1abcdefgh", 4) = "osmo...efgh".
// Strings short enough to show whole are returned unchanged.
func Shorten(s string, edge int) string {
	if edge <= 0 {
		return s
	}

	runes := []rune(s)
	if len(runes) <= 2*edge+3 {
		return s
	}
	return string(runes[:edge]) + "..." + string(runes[len(runes)-edge:])
}

// EllipsisText fits s into at most max runes by replacing the middle with
// "...". The head keeps the extra rune when the split is uneven.
func EllipsisText(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}

	keep := max - 3
	head := keep - keep/2
	tail := keep / 2
	return string(runes[:head]) + "..." + string(runes[len(runes)-tail:])
}

// NormalizeURL strips the scheme, a leading "www.", and any trailing
// slashes, so display variants of the same URL compare equal.
func NormalizeURL(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")
	s = strings.TrimRight(s, "/")
	return s
}

// CamelToSnake converts camelCase to snake_case. Input already in
// snake_case comes back unchanged.
func CamelToSnake(s string) string {
	return camelToSeparated(s, '_')
}

// CamelToKebab converts camelCase to kebab-case. Input already in
// kebab-case comes back unchanged.
func CamelToKebab(s string) string {
	return camelToSeparated(s, '-')
}

func camelToSeparated(s string, sep rune) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteRune(sep)
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
