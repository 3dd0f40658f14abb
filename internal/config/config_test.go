package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/tmux-multiselect/internal/catalog"
	"github.com/atomicstack/tmux-multiselect/internal/search"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	a := cfg.App
	if a.Source != "-" || a.Format != "auto" || a.Output != "stdout" {
		t.Fatalf("unexpected source/format/output defaults: %#v", a)
	}
	if !a.WithSearch || !a.WithSelectAll || !a.Sortable {
		t.Fatalf("expected search, select-all and sorting enabled by default")
	}
	if a.Debounce != search.DefaultDelay {
		t.Fatalf("expected default debounce %s, got %s", search.DefaultDelay, a.Debounce)
	}
	if a.Separator != "\n" {
		t.Fatalf("expected newline separator, got %q", a.Separator)
	}
	if a.Messages.NoResults != "No results found for your search term" {
		t.Fatalf("expected default messages, got %#v", a.Messages)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"TMUX_MULTISELECT_LIMIT=5",
		"TMUX_MULTISELECT_SELECTED=a, b",
		"TMUX_MULTISELECT_MATCH=fuzzy",
		"TMUX_MULTISELECT_DEBOUNCE=50ms",
	}
	cfg, err := LoadArgs([]string{"-limit", "2", "-search=false", "-separator", `\t`}, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	a := cfg.App
	if a.Limit != 2 {
		t.Fatalf("expected flag limit 2, got %d", a.Limit)
	}
	if a.WithSearch {
		t.Fatalf("expected search disabled by flag")
	}
	if a.Match != "fuzzy" || a.Debounce != 50*time.Millisecond {
		t.Fatalf("expected env match and debounce, got %q %s", a.Match, a.Debounce)
	}
	if len(a.Selected) != 2 || a.Selected[0] != "a" || a.Selected[1] != "b" {
		t.Fatalf("expected selected [a b], got %v", a.Selected)
	}
	if a.Separator != "\t" {
		t.Fatalf("expected tab separator, got %q", a.Separator)
	}
	if cfg.Flags["limit"] != "2" {
		t.Fatalf("expected limit flag recorded, got %q", cfg.Flags["limit"])
	}
}

func TestLoadArgsReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multiselect.yaml")
	body := "source: items.txt\nlimit: 3\nselect_all: false\nselected:\n  - one\n  - two\ndebounce: 250ms\nmessages:\n  no_results: nothing here\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadArgs([]string{"--config=" + path}, []string{"TMUX_MULTISELECT_LIMIT=4"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	a := cfg.App
	if cfg.File != path {
		t.Fatalf("expected config file recorded, got %q", cfg.File)
	}
	if a.Source != "items.txt" || a.WithSelectAll {
		t.Fatalf("expected file values, got %#v", a)
	}
	if a.Limit != 4 {
		t.Fatalf("env must win over the config file, got %d", a.Limit)
	}
	if len(a.Selected) != 2 || a.Selected[1] != "two" {
		t.Fatalf("expected selected list from file, got %v", a.Selected)
	}
	if a.Debounce != 250*time.Millisecond {
		t.Fatalf("expected debounce from file, got %s", a.Debounce)
	}
	if a.Messages.NoResults != "nothing here" {
		t.Fatalf("expected message override, got %q", a.Messages.NoResults)
	}
}

func TestLoadArgsConfigFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multiselect.toml")
	if err := os.WriteFile(path, []byte("title = \"pick fruit\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadArgs(nil, []string{"TMUX_MULTISELECT_CONFIG=" + path})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Title != "pick fruit" {
		t.Fatalf("expected title from toml file, got %q", cfg.App.Title)
	}
}

func TestLoadArgsMissingConfigFile(t *testing.T) {
	_, err := LoadArgs([]string{"-config", filepath.Join(t.TempDir(), "nope.yaml")}, nil)
	if err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected width error")
	}
	if _, err := LoadArgs([]string{"-height", "-3"}, nil); err == nil {
		t.Fatalf("expected height error")
	}
}

func TestInvalidEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"TMUX_MULTISELECT_LIMIT=many", "TMUX_MULTISELECT_SEARCH=maybe"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Limit != 0 || !cfg.App.WithSearch {
		t.Fatalf("expected defaults for unparsable env, got %#v", cfg.App)
	}
}

func TestValidate(t *testing.T) {
	base, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	cases := map[string]func(*Config){
		"limit":    func(c *Config) { c.App.Limit = -1 },
		"debounce": func(c *Config) { c.App.Debounce = -time.Second },
		"format":   func(c *Config) { c.App.Format = "xml" },
		"match":    func(c *Config) { c.App.Match = "regex" },
		"output":   func(c *Config) { c.App.Output = "printer" },
		"source":   func(c *Config) { c.App.Source = " " },
	}
	for name, mutate := range cases {
		cfg := base
		mutate(&cfg)
		if err := Validate(cfg); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
	cfg := base
	cfg.App.Source = ""
	if err := Validate(cfg); !errors.Is(err, catalog.ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}
}

func TestLoadArgsDropsRepeatedSelectedValues(t *testing.T) {
	cfg, err := LoadArgs([]string{"-selected", "1,2,1, 2"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if got := cfg.App.Selected; len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Fatalf("expected [1 2], got %v", got)
	}
}

func TestLoadArgsDecodesMessagesBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multiselect.yaml")
	body := "messages:\n  select_all: Everything\n  selected_one: \"{count} pick\"\n  selected_many: picks made\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadArgs([]string{"-config", path}, []string{"TMUX_MULTISELECT_MSG_SELECT_ALL=All of them"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	m := cfg.App.Messages
	if m.SelectAll != "All of them" {
		t.Fatalf("env must win over the messages block, got %q", m.SelectAll)
	}
	if got := m.Selected(1); got != "1 pick" {
		t.Fatalf("expected file singular text, got %q", got)
	}
	if got := m.Selected(4); got != "picks made" {
		t.Fatalf("expected plural text shown as written, got %q", got)
	}
	if m.Search != "Search for items to display" {
		t.Fatalf("expected default search message, got %q", m.Search)
	}
}
