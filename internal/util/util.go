// Package util holds small parsing helpers shared across layers.
package util

import "strings"

// SplitList flattens repeated and comma-separated values into one list,
// trimming each entry and dropping empty ones.
func SplitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}
