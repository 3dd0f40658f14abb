// Package tmux shells out to the tmux binary for the few server interactions
// the picker needs: listing sessions and windows as catalog entries and
// loading the submitted selection into a paste buffer.
package tmux

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strings"
)

// ErrNoServer is returned when no tmux server answers on the socket.
var ErrNoServer = errors.New("tmux: no server running")

// Entry is one listed tmux object rendered as a picker row.
type Entry struct {
	Label string
	Value string
}

type commander interface {
	Run() error
	Output() ([]byte, error)
}

type realCommander struct {
	cmd *exec.Cmd
}

func (r realCommander) Run() error {
	return r.cmd.Run()
}

func (r realCommander) Output() ([]byte, error) {
	return r.cmd.Output()
}

var runExecCommand = func(name string, args ...string) commander {
	return realCommander{cmd: exec.Command(name, args...)} //nolint:gosec
}

// ResolveSocketPath picks the server socket from the flag value, the
// TMUX_MULTISELECT_SOCKET and TMUX environment variables, or the default
// per-user socket, in that order.
func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("TMUX_MULTISELECT_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}

func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}

func output(socketPath string, args ...string) ([]byte, error) {
	out, err := runExecCommand("tmux", append(baseArgs(socketPath), args...)...).Output()
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func run(socketPath string, args ...string) error {
	if err := runExecCommand("tmux", append(baseArgs(socketPath), args...)...).Run(); err != nil {
		return classify(err)
	}
	return nil
}

func classify(err error) error {
	msg := err.Error()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		msg = string(exitErr.Stderr)
	}
	if strings.Contains(msg, "no server running") || strings.Contains(msg, "error connecting to") {
		return fmt.Errorf("%w: %s", ErrNoServer, strings.TrimSpace(msg))
	}
	return err
}

// parseEntries reads "value<TAB>label" lines. Blank values are skipped and a
// blank label falls back to the value.
func parseEntries(raw []byte) []Entry {
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		value := strings.TrimSpace(parts[0])
		if value == "" {
			continue
		}
		label := value
		if len(parts) > 1 {
			if trimmed := strings.TrimSpace(parts[1]); trimmed != "" {
				label = trimmed
			}
		}
		entries = append(entries, Entry{Label: label, Value: value})
	}
	return entries
}
