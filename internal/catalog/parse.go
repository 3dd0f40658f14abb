// Package catalog turns external data (files, stdin, tmux listings) into the
// ordered option list the picker selects from.
package catalog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/tmux-multiselect/internal/selection"
)

var (
	ErrUnknownFormat = errors.New("catalog: unknown format")
	ErrNoSource      = errors.New("catalog: no source configured")
)

// Format names an input encoding.
type Format string

const (
	FormatAuto  Format = "auto"
	FormatLines Format = "lines"
	FormatTSV   Format = "tsv"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name. Blank means auto.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatLines, FormatTSV, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// DetectFormat guesses the format from a file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".tsv":
		return FormatTSV
	default:
		return FormatLines
	}
}

// Parse reads every option from r. FormatAuto treats input starting with
// '[' as JSON and anything else as lines.
func Parse(r io.Reader, format Format) ([]selection.Option, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if format == FormatAuto || format == "" {
		format = FormatLines
		if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
			format = FormatJSON
		}
	}
	switch format {
	case FormatLines:
		return parseLines(data, false), nil
	case FormatTSV:
		return parseLines(data, true), nil
	case FormatJSON:
		return parseJSON(data)
	case FormatYAML:
		return parseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

func parseLines(data []byte, tabbed bool) []selection.Option {
	var options []selection.Option
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !tabbed {
			text := strings.TrimSpace(line)
			options = append(options, selection.Option{Label: text, Value: text})
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		label := strings.TrimSpace(parts[0])
		value := label
		if len(parts) > 1 {
			if trimmed := strings.TrimSpace(parts[1]); trimmed != "" {
				value = trimmed
			}
		}
		if label == "" {
			label = value
		}
		options = append(options, selection.Option{Label: label, Value: value})
	}
	return options
}

func parseJSON(data []byte) ([]selection.Option, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw []interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode json catalog: %w", err)
	}
	return fromItems(raw)
}

func parseYAML(data []byte) ([]selection.Option, error) {
	var raw []interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode yaml catalog: %w", err)
	}
	return fromItems(raw)
}

func fromItems(raw []interface{}) ([]selection.Option, error) {
	options := make([]selection.Option, 0, len(raw))
	for i, item := range raw {
		switch v := item.(type) {
		case map[string]interface{}:
			value, ok := scalar(v["value"])
			label, hasLabel := scalar(v["label"])
			if !ok {
				return nil, fmt.Errorf("catalog item %d: missing value", i)
			}
			if !hasLabel || label == "" {
				label = value
			}
			options = append(options, selection.Option{Label: label, Value: value})
		default:
			text, ok := scalar(v)
			if !ok {
				return nil, fmt.Errorf("catalog item %d: unsupported %T", i, item)
			}
			options = append(options, selection.Option{Label: text, Value: text})
		}
	}
	return options, nil
}

// scalar renders a decoded JSON or YAML scalar canonically.
func scalar(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}
