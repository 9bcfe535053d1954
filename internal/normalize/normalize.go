// Package normalize implements the per-line whitespace transform.
package normalize

import "strings"

// horizontalSpace is the set of characters stripped from the end of a line.
const horizontalSpace = " \t"

// Line strips trailing spaces and tabs from a single line segment.
//
// A newline is appended to the trimmed content when the segment originally
// ended with one, or when normalizeEOF is set. The returned bool reports
// whether the result differs from the input.
func Line(line string, normalizeEOF bool) (string, bool) {
	content, hadNewline := strings.CutSuffix(line, "\n")
	cleaned := strings.TrimRight(content, horizontalSpace)
	if hadNewline || normalizeEOF {
		cleaned += "\n"
	}
	return cleaned, cleaned != line
}

// Segments splits content into newline-inclusive segments. The final segment
// has no trailing newline iff content did not end with one. Empty content
// yields no segments.
func Segments(content string) []string {
	if content == "" {
		return nil
	}
	segments := strings.SplitAfter(content, "\n")
	if segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}
	return segments
}

// IsBlank reports whether a segment holds nothing but horizontal whitespace
// and an optional newline.
func IsBlank(segment string) bool {
	return strings.TrimRight(segment, horizontalSpace+"\n") == ""
}
