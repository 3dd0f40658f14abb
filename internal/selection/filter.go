package selection

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MatchMode selects how search text is compared against option labels.
type MatchMode int

const (
	// MatchSubstring keeps options whose label contains the search text,
	// ignoring case.
	MatchSubstring MatchMode = iota
	// MatchFuzzy keeps options whose label contains the search text as a
	// case-folded subsequence.
	MatchFuzzy
)

func (m MatchMode) String() string {
	switch m {
	case MatchSubstring:
		return "substring"
	case MatchFuzzy:
		return "fuzzy"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// ParseMatchMode resolves a mode name as used in configuration.
func ParseMatchMode(name string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "substring":
		return MatchSubstring, nil
	case "fuzzy":
		return MatchFuzzy, nil
	default:
		return MatchSubstring, fmt.Errorf("unknown match mode %q", name)
	}
}

// Filter returns the catalog options whose label contains text, ignoring
// case. An empty text returns the catalog itself.
func Filter(catalog []Option, text string) []Option {
	return FilterMode(catalog, text, MatchSubstring)
}

// FilterMode filters the catalog with the given match mode. Matches keep
// their catalog order regardless of mode.
func FilterMode(catalog []Option, text string, mode MatchMode) []Option {
	if text == "" {
		return catalog
	}
	if mode == MatchFuzzy {
		return fuzzyFilter(catalog, text)
	}
	needle := strings.ToLower(text)
	filtered := make([]Option, 0, len(catalog))
	for _, opt := range catalog {
		if opt.Label == "" {
			continue
		}
		if strings.Contains(strings.ToLower(opt.Label), needle) {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}

func fuzzyFilter(catalog []Option, text string) []Option {
	labels := make([]string, len(catalog))
	for i, opt := range catalog {
		labels[i] = opt.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(text, labels)
	if len(ranks) == 0 {
		return []Option{}
	}
	matches := make(map[int]struct{}, len(ranks))
	for _, rank := range ranks {
		matches[rank.OriginalIndex] = struct{}{}
	}
	filtered := make([]Option, 0, len(matches))
	for idx, opt := range catalog {
		if _, ok := matches[idx]; ok {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}
