package tmux

import (
	"strings"
	"testing"

	"github.com/atomicstack/tmux-multiselect/internal/testutil"
)

func TestListSessionsAgainstServer(t *testing.T) {
	socket, cleanup := testutil.StartTmuxServer(t, "picker")
	defer cleanup()
	if err := testutil.TmuxCommand(socket, "new-session", "-d", "-s", "second").Run(); err != nil {
		t.Skipf("skipping: unable to create second session: %v", err)
	}
	entries, err := ListSessions(socket, "")
	if err != nil {
		t.Fatalf("list sessions failed: %v", err)
	}
	seen := map[string]bool{}
	for _, e := range entries {
		seen[e.Value] = true
	}
	if !seen["picker"] || !seen["second"] {
		t.Fatalf("expected both sessions, got %#v", entries)
	}
}

func TestListWindowsAgainstServer(t *testing.T) {
	socket, cleanup := testutil.StartTmuxServer(t, "picker")
	defer cleanup()
	entries, err := ListWindows(socket, "")
	if err != nil {
		t.Fatalf("list windows failed: %v", err)
	}
	if len(entries) == 0 || entries[0].Value != "picker:0" {
		t.Fatalf("unexpected windows %#v", entries)
	}
}

func TestSetBufferAgainstServer(t *testing.T) {
	socket, cleanup := testutil.StartTmuxServer(t, "picker")
	defer cleanup()
	if err := SetBuffer(socket, "picks", "one\ntwo"); err != nil {
		t.Fatalf("set buffer failed: %v", err)
	}
	out, err := testutil.TmuxCommand(socket, "show-buffer", "-b", "picks").Output()
	if err != nil {
		t.Fatalf("show-buffer failed: %v", err)
	}
	if strings.TrimRight(string(out), "\n") != "one\ntwo" {
		t.Fatalf("unexpected buffer %q", out)
	}
}
