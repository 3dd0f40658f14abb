package tmux

import (
	"errors"
	"os/user"
	"path/filepath"
	"strings"
	"testing"
)

type fakeCommander struct {
	output []byte
	err    error
}

func (f fakeCommander) Run() error {
	return f.err
}

func (f fakeCommander) Output() ([]byte, error) {
	return f.output, f.err
}

type recordedCall struct {
	name string
	args []string
}

func withStubCommander(t *testing.T, out string, err error) *[]recordedCall {
	t.Helper()
	prev := runExecCommand
	calls := &[]recordedCall{}
	runExecCommand = func(name string, args ...string) commander {
		*calls = append(*calls, recordedCall{name: name, args: append([]string(nil), args...)})
		return fakeCommander{output: []byte(out), err: err}
	}
	t.Cleanup(func() { runExecCommand = prev })
	return calls
}

func containsArg(args []string, needle string) bool {
	for _, arg := range args {
		if arg == needle {
			return true
		}
	}
	return false
}

func TestBaseArgs(t *testing.T) {
	t.Run("empty socket", func(t *testing.T) {
		args := baseArgs("")
		if len(args) != 0 {
			t.Fatalf("expected empty args, got %v", args)
		}
	})
	t.Run("with socket", func(t *testing.T) {
		args := baseArgs("/tmp/socket")
		if len(args) != 2 || args[0] != "-S" || args[1] != "/tmp/socket" {
			t.Fatalf("unexpected args %v", args)
		}
	})
}

func TestResolveSocketPath(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		got, err := ResolveSocketPath("/tmp/flag")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "/tmp/flag" {
			t.Fatalf("expected /tmp/flag, got %q", got)
		}
	})
	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("TMUX_MULTISELECT_SOCKET", "/tmp/env")
		got, err := ResolveSocketPath("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "/tmp/env" {
			t.Fatalf("expected /tmp/env, got %q", got)
		}
	})
	t.Run("tmux env fallback", func(t *testing.T) {
		t.Setenv("TMUX_MULTISELECT_SOCKET", "")
		t.Setenv("TMUX", "/tmp/socket,123,0")
		got, err := ResolveSocketPath("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "/tmp/socket" {
			t.Fatalf("expected /tmp/socket, got %q", got)
		}
	})
	t.Run("default path", func(t *testing.T) {
		t.Setenv("TMUX_MULTISELECT_SOCKET", "")
		t.Setenv("TMUX", "")
		t.Setenv("TMUX_TMPDIR", "/tmp")
		u, _ := user.Current()
		got, err := ResolveSocketPath("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := filepath.Join("/tmp", "tmux-"+u.Uid, "default")
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})
}

func TestListSessionsParsesOutput(t *testing.T) {
	calls := withStubCommander(t, "dev\tdev: 2 windows (attached)\n\nops\t \n", nil)
	entries, err := ListSessions("/tmp/sock", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %#v", entries)
	}
	if entries[0].Value != "dev" || entries[0].Label != "dev: 2 windows (attached)" {
		t.Fatalf("unexpected first entry %#v", entries[0])
	}
	if entries[1].Label != "ops" {
		t.Fatalf("expected blank label to fall back to value, got %#v", entries[1])
	}
	args := (*calls)[0].args
	if (*calls)[0].name != "tmux" || !containsArg(args, "-S") || !containsArg(args, "list-sessions") {
		t.Fatalf("unexpected command %#v", (*calls)[0])
	}
}

func TestListWindowsUsesCustomFormat(t *testing.T) {
	calls := withStubCommander(t, "dev:0\tmain\ndev:1\tlogs\n", nil)
	entries, err := ListWindows("", "#W")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 || entries[1].Value != "dev:1" || entries[1].Label != "logs" {
		t.Fatalf("unexpected entries %#v", entries)
	}
	args := (*calls)[0].args
	if containsArg(args, "-S") {
		t.Fatalf("expected no socket args, got %v", args)
	}
	if !strings.HasSuffix(args[len(args)-1], "\t#W") {
		t.Fatalf("expected custom label format, got %v", args)
	}
}

func TestListSessionsDetectsMissingServer(t *testing.T) {
	withStubCommander(t, "", errors.New("no server running on /tmp/tmux-1000/default"))
	_, err := ListSessions("", "")
	if !errors.Is(err, ErrNoServer) {
		t.Fatalf("expected ErrNoServer, got %v", err)
	}
}

func TestSetBufferPassesData(t *testing.T) {
	calls := withStubCommander(t, "", nil)
	if err := SetBuffer("/tmp/sock", "picks", "-a\nb"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	args := (*calls)[0].args
	want := []string{"-S", "/tmp/sock", "set-buffer", "-b", "picks", "--", "-a\nb"}
	if strings.Join(args, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %v, got %v", want, args)
	}
}

func TestSetBufferWrapsError(t *testing.T) {
	withStubCommander(t, "", errors.New("boom"))
	err := SetBuffer("", "picks", "x")
	if err == nil || !strings.Contains(err.Error(), "failed to set buffer") {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
