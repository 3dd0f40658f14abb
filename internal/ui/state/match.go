package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/tmux-multiselect/internal/selection"
)

// BestMatchIndex returns the index of the option that best matches query:
// an exact label or value, then a label prefix, then the closest fuzzy rank.
func BestMatchIndex(options []selection.Option, query string) int {
	if len(options) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, opt := range options {
		if strings.EqualFold(opt.Label, trimmed) || strings.EqualFold(opt.Value, trimmed) {
			return i
		}
	}
	for i, opt := range options {
		if strings.HasPrefix(strings.ToLower(opt.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = opt.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(options) {
		return 0
	}
	return best.OriginalIndex
}
