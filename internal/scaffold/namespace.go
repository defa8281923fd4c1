package scaffold

import "strings"

// ParseNamespace splits a ::-delimited namespace string into its segments.
// Segments are trimmed and empty segments dropped, so "", "::" and
// " a :: :: b " yield nil, nil and [a b]. No namespace blocks are emitted
// for an empty result.
func ParseNamespace(s string) []string {
	var segments []string
	for _, part := range strings.Split(s, "::") {
		part = strings.TrimSpace(part)
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
