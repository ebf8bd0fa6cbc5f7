package terminal

import (
	"strings"
	"unicode/utf8"
)

// RuleWidth is the width of the separator lines around report sections.
const RuleWidth = 60

// Rule returns a separator line.
func Rule() string {
	return strings.Repeat("=", RuleWidth)
}

// FormatList renders items one per line, each prefixed by bullet and a
// space. An empty list renders as "".
func FormatList(items []string, bullet string) string {
	if len(items) == 0 {
		return ""
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = bullet + " " + item
	}
	return strings.Join(lines, "\n")
}

// Truncate shortens text to at most maxLen runes, the suffix included.
// Text that already fits is returned unchanged.
func Truncate(text string, maxLen int, suffix string) string {
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	keep := maxLen - utf8.RuneCountInString(suffix)
	if keep <= 0 {
		return string([]rune(text)[:maxLen])
	}
	return string([]rune(text)[:keep]) + suffix
}
