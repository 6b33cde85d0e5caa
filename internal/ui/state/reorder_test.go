package state

import (
	"reflect"
	"testing"

	"github.com/atomicstack/efi-boot-control/internal/efi"
	"pgregory.net/rapid"
)

func testEntries() []efi.Entry {
	return []efi.Entry{
		{ID: "0001", Name: "Linux"},
		{ID: "0002", Name: "Windows"},
		{ID: "2001", Name: "USB"},
	}
}

func TestMoveCursorClampsToBounds(t *testing.T) {
	r := NewReorder(testEntries())
	if r.MoveCursor(-1) {
		t.Fatalf("expected no-op at top, cursor %d", r.PriorityCursor)
	}
	if r.PriorityCursor != 0 {
		t.Fatalf("expected cursor 0, got %d", r.PriorityCursor)
	}
	if !r.MoveCursor(1) || r.PriorityCursor != 1 {
		t.Fatalf("expected cursor 1, got %d", r.PriorityCursor)
	}
	if !r.MoveCursor(1) || r.PriorityCursor != 2 {
		t.Fatalf("expected cursor 2, got %d", r.PriorityCursor)
	}
	if r.MoveCursor(1) {
		t.Fatalf("expected no-op at bottom, cursor %d", r.PriorityCursor)
	}
}

func TestMoveCursorFollowsFocus(t *testing.T) {
	r := NewReorder(testEntries())
	r.ToggleFocus()
	if r.Focus != FocusTarget {
		t.Fatalf("expected target focus after toggle")
	}
	if !r.MoveCursor(1) {
		t.Fatalf("expected target cursor move")
	}
	if r.TargetCursor != 1 || r.PriorityCursor != 0 {
		t.Fatalf("expected only target cursor to move, got %d/%d", r.PriorityCursor, r.TargetCursor)
	}
	r.ToggleFocus()
	if r.Focus != FocusPriority {
		t.Fatalf("expected priority focus after second toggle")
	}
}

func TestMoveEntryCarriesCursor(t *testing.T) {
	r := NewReorder(testEntries())
	if r.MoveEntryUp() {
		t.Fatalf("expected no-op at top")
	}
	if !r.MoveEntryDown() {
		t.Fatalf("expected move down")
	}
	if r.PriorityCursor != 1 {
		t.Fatalf("expected cursor to follow entry, got %d", r.PriorityCursor)
	}
	if got := r.IDs(); !reflect.DeepEqual(got, []string{"0002", "0001", "2001"}) {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestMoveEntryDownThenUpRestoresOrder(t *testing.T) {
	r := NewReorder(testEntries())
	r.PriorityCursor = 1
	before := r.IDs()
	if !r.MoveEntryDown() || !r.MoveEntryUp() {
		t.Fatalf("expected both moves to succeed")
	}
	if got := r.IDs(); !reflect.DeepEqual(got, before) {
		t.Fatalf("expected order restored, got %v", got)
	}
	if r.PriorityCursor != 1 {
		t.Fatalf("expected cursor restored to 1, got %d", r.PriorityCursor)
	}
}

func TestChangedDetectsReorder(t *testing.T) {
	r := NewReorder(testEntries())
	if r.Changed() {
		t.Fatalf("fresh model must be unchanged")
	}
	r.MoveEntryDown()
	if !r.Changed() {
		t.Fatalf("expected change after swap")
	}
	r.MoveEntryUp()
	if r.Changed() {
		t.Fatalf("expected unchanged after inverse swap")
	}
}

func TestEmptyModelIsInert(t *testing.T) {
	r := NewReorder(nil)
	if r.MoveCursor(1) || r.MoveCursor(-1) || r.MoveEntryUp() || r.MoveEntryDown() {
		t.Fatalf("expected all operations to be no-ops on empty model")
	}
	if _, ok := r.Target(); ok {
		t.Fatalf("expected no target on empty model")
	}
}

func TestTarget(t *testing.T) {
	r := NewReorder(testEntries())
	r.TargetCursor = 2
	entry, ok := r.Target()
	if !ok || entry.ID != "2001" {
		t.Fatalf("unexpected target %#v", entry)
	}
}

func TestRapidCursorStaysInBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(rt, "entries")
		entries := make([]efi.Entry, n)
		for i := range entries {
			entries[i] = efi.Entry{ID: string(rune('A' + i)), Name: "entry"}
		}
		r := NewReorder(entries)
		steps := rapid.SliceOfN(rapid.IntRange(0, 4), 0, 64).Draw(rt, "steps")
		for _, step := range steps {
			switch step {
			case 0:
				r.MoveCursor(1)
			case 1:
				r.MoveCursor(-1)
			case 2:
				r.MoveEntryUp()
			case 3:
				r.MoveEntryDown()
			case 4:
				r.ToggleFocus()
			}
			if r.PriorityCursor < 0 || r.PriorityCursor >= n {
				rt.Fatalf("priority cursor %d out of range", r.PriorityCursor)
			}
			if r.TargetCursor < 0 || r.TargetCursor >= n {
				rt.Fatalf("target cursor %d out of range", r.TargetCursor)
			}
			if len(r.IDs()) != n {
				rt.Fatalf("entry count changed: %d", len(r.IDs()))
			}
		}
	})
}

func TestRapidSwapIsItsOwnInverse(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 8).Draw(rt, "entries")
		entries := make([]efi.Entry, n)
		for i := range entries {
			entries[i] = efi.Entry{ID: string(rune('A' + i)), Name: "entry"}
		}
		r := NewReorder(entries)
		r.PriorityCursor = rapid.IntRange(0, n-2).Draw(rt, "cursor")
		before := r.IDs()
		cursor := r.PriorityCursor
		if !r.MoveEntryDown() {
			rt.Fatalf("expected move down from %d", cursor)
		}
		if !r.MoveEntryUp() {
			rt.Fatalf("expected move up after down")
		}
		if !reflect.DeepEqual(before, r.IDs()) {
			rt.Fatalf("order not restored: %v vs %v", before, r.IDs())
		}
		if r.PriorityCursor != cursor {
			rt.Fatalf("cursor not restored: %d vs %d", r.PriorityCursor, cursor)
		}
	})
}
