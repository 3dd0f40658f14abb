package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/atomicstack/tmux-multiselect/internal/app"
	"github.com/atomicstack/tmux-multiselect/internal/catalog"
	"github.com/atomicstack/tmux-multiselect/internal/messages"
	"github.com/atomicstack/tmux-multiselect/internal/output"
	"github.com/atomicstack/tmux-multiselect/internal/search"
	"github.com/atomicstack/tmux-multiselect/internal/selection"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// File is the config file that was read, empty when none was used.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envPrefix = "TMUX_MULTISELECT_"

	envConfig          = envPrefix + "CONFIG"
	envSource          = envPrefix + "SOURCE"
	envFormat          = envPrefix + "FORMAT"
	envSelected        = envPrefix + "SELECTED"
	envLimit           = envPrefix + "LIMIT"
	envSearch          = envPrefix + "SEARCH"
	envSelectAll       = envPrefix + "SELECT_ALL"
	envSortable        = envPrefix + "SORTABLE"
	envMatch           = envPrefix + "MATCH"
	envDebounce        = envPrefix + "DEBOUNCE"
	envReload          = envPrefix + "RELOAD"
	envOutput          = envPrefix + "OUTPUT"
	envBuffer          = envPrefix + "BUFFER"
	envSeparator       = envPrefix + "SEPARATOR"
	envSocketPath      = envPrefix + "SOCKET"
	envTitle           = envPrefix + "TITLE"
	envShowValues      = envPrefix + "SHOW_VALUES"
	envFailOnCancel    = envPrefix + "FAIL_ON_CANCEL"
	envMsgSearch       = envPrefix + "MSG_SEARCH"
	envMsgNoResults    = envPrefix + "MSG_NO_RESULTS"
	envMsgSelectAll    = envPrefix + "MSG_SELECT_ALL"
	envMsgSelectedOne  = envPrefix + "MSG_SELECTED_ONE"
	envMsgSelectedMany = envPrefix + "MSG_SELECTED_MANY"
	envWidth           = envPrefix + "WIDTH"
	envHeight          = envPrefix + "HEIGHT"
	envShowFooter      = envPrefix + "FOOTER"
	envTrace           = envPrefix + "TRACE"
	envLogFile         = envPrefix + "LOG_FILE"
)

// Load parses configuration from CLI arguments, environment variables and
// an optional config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags win over
// environment variables, which win over the config file.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	path := configPath(args, env)
	file, err := readFile(path)
	if err != nil {
		return Config{}, err
	}
	s := settings{env: env, file: file}
	fileMessages, err := s.messages()
	if err != nil {
		return Config{}, err
	}
	defaults := messages.Default().Merge(fileMessages)

	fs := flag.NewFlagSet("tmux-multiselect", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", path, "path to a config file (toml, yaml or json)")
	source := fs.String("source", s.str(envSource, "source", "-"), "catalog source: file path, - for stdin, tmux:sessions or tmux:windows")
	format := fs.String("format", s.str(envFormat, "format", string(catalog.FormatAuto)), "catalog format: auto, lines, tsv, json or yaml")
	selected := fs.String("selected", s.list(envSelected, "selected"), "comma-separated values selected at start")
	limit := fs.Int("limit", s.integer(envLimit, "limit", 0), "maximum number of selected values (0 is unlimited)")
	withSearch := fs.Bool("search", s.boolean(envSearch, "search", true), "show the search field")
	withSelectAll := fs.Bool("select-all", s.boolean(envSelectAll, "select_all", true), "offer the select-all row")
	sortable := fs.Bool("sortable", s.boolean(envSortable, "sortable", true), "allow reordering selected tags")
	match := fs.String("match", s.str(envMatch, "match", selection.MatchSubstring.String()), "search matching: substring or fuzzy")
	debounce := fs.Duration("debounce", s.duration(envDebounce, "debounce", search.DefaultDelay), "delay before typed search text applies")
	reload := fs.Duration("reload", s.duration(envReload, "reload", 0), "catalog reload interval (0 disables reloading)")
	outputKind := fs.String("output", s.str(envOutput, "output", "stdout"), "where to deliver the selection: stdout, tmux-buffer or clipboard")
	buffer := fs.String("buffer", s.str(envBuffer, "buffer", "multiselect"), "tmux buffer name for -output tmux-buffer")
	separator := fs.String("separator", s.str(envSeparator, "separator", `\n`), "separator between delivered values")
	socket := fs.String("socket", s.str(envSocketPath, "socket", ""), "path to the tmux socket (overrides environment detection)")
	title := fs.String("title", s.str(envTitle, "title", "select"), "header title")
	showValues := fs.Bool("values", s.boolean(envShowValues, "show_values", false), "show option values next to labels")
	failOnCancel := fs.Bool("fail-on-cancel", s.boolean(envFailOnCancel, "fail_on_cancel", false), "exit with status 1 when the picker is cancelled")
	msgSearch := fs.String("msg-search", envOrDefault(env, envMsgSearch, defaults.Search), "search field placeholder")
	msgNoResults := fs.String("msg-no-results", envOrDefault(env, envMsgNoResults, defaults.NoResults), "message shown when nothing matches")
	msgSelectAll := fs.String("msg-select-all", envOrDefault(env, envMsgSelectAll, defaults.SelectAll), "label of the select-all row")
	msgSelectedOne := fs.String("msg-selected-one", envOrDefault(env, envMsgSelectedOne, defaults.SelectedOne), "count text for one selected value, %d or {count} marks the number")
	msgSelectedMany := fs.String("msg-selected-many", envOrDefault(env, envMsgSelectedMany, defaults.SelectedMany), "count text for other counts, %d or {count} marks the number")
	width := fs.Int("width", s.integer(envWidth, "width", 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", s.integer(envHeight, "height", 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", s.boolean(envShowFooter, "footer", false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", s.boolean(envTrace, "trace", false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", s.str(envLogFile, "log_file", ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Source:        *source,
			Format:        *format,
			Selected:      splitList(*selected),
			Limit:         *limit,
			WithSearch:    *withSearch,
			WithSelectAll: *withSelectAll,
			Sortable:      *sortable,
			ShowValues:    *showValues,
			Match:         *match,
			Debounce:      *debounce,
			Reload:        *reload,
			Output:        *outputKind,
			Buffer:        *buffer,
			Separator:     unescape(*separator),
			SocketPath:    *socket,
			Title:         *title,
			Messages: messages.Messages{
				Search:       *msgSearch,
				NoResults:    *msgNoResults,
				SelectAll:    *msgSelectAll,
				SelectedOne:  *msgSelectedOne,
				SelectedMany: *msgSelectedMany,
			},
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			FailOnCancel: *failOnCancel,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: path,
		Flags: map[string]string{
			"config":       path,
			"source":       *source,
			"format":       *format,
			"selected":     *selected,
			"limit":        strconv.Itoa(*limit),
			"search":       strconv.FormatBool(*withSearch),
			"selectAll":    strconv.FormatBool(*withSelectAll),
			"sortable":     strconv.FormatBool(*sortable),
			"match":        *match,
			"debounce":     debounce.String(),
			"reload":       reload.String(),
			"output":       *outputKind,
			"buffer":       *buffer,
			"separator":    *separator,
			"socket":       *socket,
			"title":        *title,
			"values":       strconv.FormatBool(*showValues),
			"failOnCancel": strconv.FormatBool(*failOnCancel),
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"footer":       strconv.FormatBool(*footer),
			"trace":        strconv.FormatBool(*trace),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// configPath finds the config file before the flag set is built, so the
// file can supply flag defaults.
func configPath(args []string, env map[string]string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return envOrDefault(env, envConfig, "")
}

func readFile(path string) (*viper.Viper, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return v, nil
}

// settings resolves a default from the environment first and the config
// file second.
type settings struct {
	env  map[string]string
	file *viper.Viper
}

// messages decodes the messages block of the config file.
func (s settings) messages() (messages.Messages, error) {
	var m messages.Messages
	if !s.fromFile("messages") {
		return m, nil
	}
	if err := s.file.UnmarshalKey("messages", &m); err != nil {
		return messages.Messages{}, fmt.Errorf("decode messages: %w", err)
	}
	return m, nil
}

func (s settings) fromFile(key string) bool {
	return s.file != nil && s.file.IsSet(key)
}

func (s settings) str(envKey, fileKey, fallback string) string {
	if v, ok := s.env[envKey]; ok {
		return v
	}
	if s.fromFile(fileKey) {
		return s.file.GetString(fileKey)
	}
	return fallback
}

func (s settings) integer(envKey, fileKey string, fallback int) int {
	if s.fromFile(fileKey) {
		fallback = s.file.GetInt(fileKey)
	}
	return envOrInt(s.env, envKey, fallback)
}

func (s settings) boolean(envKey, fileKey string, fallback bool) bool {
	if s.fromFile(fileKey) {
		fallback = s.file.GetBool(fileKey)
	}
	return envOrBool(s.env, envKey, fallback)
}

func (s settings) duration(envKey, fileKey string, fallback time.Duration) time.Duration {
	if s.fromFile(fileKey) {
		fallback = s.file.GetDuration(fileKey)
	}
	v, ok := s.env[envKey]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// list accepts either a comma-separated string or, in the config file, a
// list of values.
func (s settings) list(envKey, fileKey string) string {
	if v, ok := s.env[envKey]; ok {
		return v
	}
	if !s.fromFile(fileKey) {
		return ""
	}
	if raw, ok := s.file.Get(fileKey).([]interface{}); ok {
		parts := make([]string, 0, len(raw))
		for _, item := range raw {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ",")
	}
	return s.file.GetString(fileKey)
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return selection.UniqueValues(out)
}

var escapes = strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\0`, "\x00", `\\`, `\`)

func unescape(value string) string {
	return escapes.Replace(value)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the loaded values can be used to start the picker.
func Validate(cfg Config) error {
	a := cfg.App
	if a.Limit < 0 {
		return fmt.Errorf("limit must be >= 0 (got %d)", a.Limit)
	}
	if a.Debounce < 0 {
		return fmt.Errorf("debounce must be >= 0 (got %s)", a.Debounce)
	}
	if a.Reload < 0 {
		return fmt.Errorf("reload must be >= 0 (got %s)", a.Reload)
	}
	if strings.TrimSpace(a.Source) == "" {
		return catalog.ErrNoSource
	}
	if _, err := catalog.ParseFormat(a.Format); err != nil {
		return err
	}
	if _, err := selection.ParseMatchMode(a.Match); err != nil {
		return err
	}
	if _, err := output.New(a.Output, output.Options{}); err != nil {
		return err
	}
	return nil
}
