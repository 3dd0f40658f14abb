package search

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the label closest to query by edit distance, ignoring
// case. Labels further away than max(2, len(query)/2) are not suggested.
func Suggest(labels []string, query string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return "", false
	}
	threshold := len([]rune(needle)) / 2
	if threshold < 2 {
		threshold = 2
	}
	best := ""
	bestDist := -1
	for _, label := range labels {
		candidate := strings.ToLower(strings.TrimSpace(label))
		if candidate == "" {
			continue
		}
		dist := levenshtein.ComputeDistance(needle, candidate)
		if dist > threshold {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best = label
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}
