package terminal

import "strings"

// Complete returns the names that start with prefix, in list order.
// Matching is case-sensitive.
func Complete(names []string, prefix string) []string {
	var matches []string
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}
