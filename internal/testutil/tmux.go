// Package testutil boots throwaway tmux servers for integration tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// RequireTmux aborts the calling test when tmux is not present on PATH.
func RequireTmux(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("tmux")
	if err != nil {
		t.Skip("skipping: tmux binary not available")
	}
	return path
}

// StartTmuxServer boots a temporary tmux server bound to a unique socket with
// a single detached session named session. The returned cleanup function
// terminates the server.
func StartTmuxServer(t *testing.T, session string) (string, func()) {
	t.Helper()
	RequireTmux(t)
	baseDir, err := os.MkdirTemp("/tmp", "tmux-multiselect-*")
	if err != nil {
		t.Fatalf("failed to create tmux temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(baseDir) })
	socketPath := filepath.Join(baseDir, "tmux-test.sock")
	cmd := TmuxCommand(socketPath, "-f", "/dev/null", "new-session", "-d", "-s", session, "sleep", "600")
	if err := cmd.Run(); err != nil {
		t.Skipf("skipping: failed to start tmux server: %v", err)
	}
	if out, err := TmuxCommand(socketPath, "display-message", "-p", "#{pid}").Output(); err == nil {
		if pid := strings.TrimSpace(string(out)); pid != "" {
			t.Logf("started tmux test server pid=%s socket=%s", pid, socketPath)
		}
	}
	cleanup := func() {
		_ = TmuxCommand(socketPath, "kill-server").Run()
	}
	return socketPath, cleanup
}

// TmuxCommand builds a tmux invocation against socket that ignores any
// TMUX variable inherited from the developer's own session.
func TmuxCommand(socket string, extra ...string) *exec.Cmd {
	trimmed := strings.TrimSpace(socket)
	args := make([]string, 0, len(extra)+2)
	if trimmed != "" {
		args = append(args, "-S", trimmed)
	}
	args = append(args, extra...)
	cmd := exec.Command("tmux", args...)
	env := make([]string, 0, len(os.Environ())+2)
	for _, entry := range os.Environ() {
		if strings.HasPrefix(entry, "TMUX=") {
			continue
		}
		env = append(env, entry)
	}
	env = append(env, "TMUX=")
	if trimmed != "" {
		env = append(env, "TMUX_TMPDIR="+filepath.Dir(trimmed))
	}
	cmd.Env = env
	return cmd
}
