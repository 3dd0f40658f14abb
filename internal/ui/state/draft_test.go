package state

import "testing"

func TestInsertAndDeleteDraftText(t *testing.T) {
	l := newTestList("alpha")

	if !l.InsertDraftText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if l.Draft != "ab" || l.DraftCursor != 2 {
		t.Fatalf("unexpected draft state %q/%d", l.Draft, l.DraftCursor)
	}

	l.DraftCursor = 1
	if !l.InsertDraftText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if l.Draft != "azb" || l.DraftCursor != 2 {
		t.Fatalf("unexpected draft after middle insert %q/%d", l.Draft, l.DraftCursor)
	}

	if !l.DeleteDraftRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if l.Draft != "ab" || l.DraftCursor != 1 {
		t.Fatalf("unexpected draft after delete %q/%d", l.Draft, l.DraftCursor)
	}
	if !l.DeleteDraftRuneForward() || l.Draft != "a" {
		t.Fatalf("expected forward delete, got %q", l.Draft)
	}

	l.SetDraft("abc def", len("abc def"))
	if !l.DeleteDraftWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if l.Draft != "abc " {
		t.Fatalf("expected trailing word removed, got %q", l.Draft)
	}

	l.SetDraft("abc", 0)
	if l.DeleteDraftRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
	if !l.ClearDraft() || l.Draft != "" || l.ClearDraft() {
		t.Fatalf("expected clear to empty draft once")
	}
	if l.InsertDraftText("") {
		t.Fatal("expected empty insert to be ignored")
	}
}

func TestDraftCursorNavigation(t *testing.T) {
	l := newTestList("one", "two")
	l.SetDraft("one two", len("one two"))

	if !l.MoveDraftCursorWordBackward() {
		t.Fatal("expected word backward movement")
	}
	if l.DraftCursor != 4 {
		t.Fatalf("expected cursor at 4, got %d", l.DraftCursor)
	}
	if !l.MoveDraftCursorWordForward() {
		t.Fatal("expected word forward movement")
	}
	if l.DraftCursor != len("one two") {
		t.Fatalf("expected cursor restored to end, got %d", l.DraftCursor)
	}
	if !l.MoveDraftCursorRuneBackward() {
		t.Fatal("expected rune backward movement")
	}
	if !l.MoveDraftCursorRuneForward() {
		t.Fatal("expected rune forward movement")
	}
	if !l.MoveDraftCursorStart() || l.DraftCursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", l.DraftCursor)
	}
	if l.MoveDraftCursorStart() {
		t.Fatal("expected no movement when already at start")
	}
	if !l.MoveDraftCursorEnd() {
		t.Fatal("expected move back to end")
	}
	l.SetDraft("abc", 99)
	if l.DraftCursorPos() != 3 {
		t.Fatalf("expected clamped cursor, got %d", l.DraftCursorPos())
	}
}
