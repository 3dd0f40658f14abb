// Package messages holds the user-facing strings of the picker. Callers may
// override any subset; blank overrides keep the defaults.
package messages

import (
	"strconv"
	"strings"
)

// Messages is the set of texts shown by the picker.
type Messages struct {
	Search       string `mapstructure:"search"`
	NoResults    string `mapstructure:"no_results"`
	SelectAll    string `mapstructure:"select_all"`
	SelectedOne  string `mapstructure:"selected_one"`
	SelectedMany string `mapstructure:"selected_many"`
}

// Default returns the built-in message set.
func Default() Messages {
	return Messages{
		Search:       "Search for items to display",
		NoResults:    "No results found for your search term",
		SelectAll:    "— Select All —",
		SelectedOne:  "%d item selected",
		SelectedMany: "%d items selected",
	}
}

// Merge returns m with every non-empty field of override applied.
func (m Messages) Merge(override Messages) Messages {
	if override.Search != "" {
		m.Search = override.Search
	}
	if override.NoResults != "" {
		m.NoResults = override.NoResults
	}
	if override.SelectAll != "" {
		m.SelectAll = override.SelectAll
	}
	if override.SelectedOne != "" {
		m.SelectedOne = override.SelectedOne
	}
	if override.SelectedMany != "" {
		m.SelectedMany = override.SelectedMany
	}
	return m
}

// CountPlaceholders are replaced by the selection count in SelectedOne and
// SelectedMany. Any other text is shown as written.
var CountPlaceholders = []string{"%d", "{count}"}

// Selected renders the selection count using the singular or plural form.
func (m Messages) Selected(n int) string {
	text := m.SelectedMany
	if n == 1 {
		text = m.SelectedOne
	}
	if text == "" {
		text = "%d selected"
	}
	count := strconv.Itoa(n)
	for _, placeholder := range CountPlaceholders {
		text = strings.ReplaceAll(text, placeholder, count)
	}
	return text
}
