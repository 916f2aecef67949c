package bundle

import (
	"fmt"
	"strings"
)

// SplitLines splits content into lines, each retaining its original
// terminator. A final line without a trailing newline is kept as-is.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// TruncateAtMarker returns the lines strictly before the first line
// equal to marker. Line terminators are ignored for the comparison;
// the returned slice aliases the input.
func TruncateAtMarker(lines []string, marker string) []string {
	for i, line := range lines {
		if strings.TrimRight(line, "\r\n") == marker {
			return lines[:i]
		}
	}
	return lines
}

// FilterLines returns the lines containing none of the banned
// substrings, in their original order.
func FilterLines(lines []string, banned []string) []string {
	var kept []string
	for _, line := range lines {
		if !containsAny(line, banned) {
			kept = append(kept, line)
		}
	}
	return kept
}

func containsAny(line string, banned []string) bool {
	for _, word := range banned {
		if strings.Contains(line, word) {
			return true
		}
	}
	return false
}

// RenderPrelude formats the prelude imports as one `use <item>;` line
// each, in order.
func RenderPrelude(imports []string) string {
	var b strings.Builder
	for _, item := range imports {
		fmt.Fprintf(&b, "use %s;\n", item)
	}
	return b.String()
}
