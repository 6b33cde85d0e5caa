// Package state owns the mutable boot entry ordering and the two panel
// cursors driven by the UI.
package state

import "github.com/atomicstack/efi-boot-control/internal/efi"

// Focus identifies which panel receives cursor and reorder keys.
type Focus int

const (
	FocusPriority Focus = iota
	FocusTarget
)

// Reorder holds the boot entries in their working order, the per-panel
// cursors, and the id snapshot taken at startup. Both cursors stay inside
// [0, len(entries)) whenever entries is non-empty; every operation is a
// no-op on an empty model.
type Reorder struct {
	entries        []efi.Entry
	original       []string
	PriorityCursor int
	TargetCursor   int
	Focus          Focus
}

// NewReorder snapshots the given entries as the baseline order.
func NewReorder(entries []efi.Entry) *Reorder {
	r := &Reorder{entries: append([]efi.Entry(nil), entries...)}
	r.original = r.IDs()
	return r
}

// Entries exposes the working order for rendering.
func (r *Reorder) Entries() []efi.Entry { return r.entries }

// Len returns the number of entries.
func (r *Reorder) Len() int { return len(r.entries) }

// IDs returns the entry ids in their current order.
func (r *Reorder) IDs() []string {
	ids := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		ids = append(ids, e.ID)
	}
	return ids
}

// Target returns the entry under the boot-target cursor.
func (r *Reorder) Target() (efi.Entry, bool) {
	if len(r.entries) == 0 {
		return efi.Entry{}, false
	}
	return r.entries[r.TargetCursor], true
}

// ToggleFocus flips the focused panel.
func (r *Reorder) ToggleFocus() {
	if r.Focus == FocusPriority {
		r.Focus = FocusTarget
	} else {
		r.Focus = FocusPriority
	}
}

// MoveCursor shifts the focused panel's cursor by delta, clamped to the
// entry range. Returns false when the press was a boundary no-op.
func (r *Reorder) MoveCursor(delta int) bool {
	if len(r.entries) == 0 {
		return false
	}
	cursor := &r.PriorityCursor
	if r.Focus == FocusTarget {
		cursor = &r.TargetCursor
	}
	next := *cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(r.entries) {
		next = len(r.entries) - 1
	}
	if next == *cursor {
		return false
	}
	*cursor = next
	return true
}

// MoveEntryUp swaps the entry under the priority cursor with the one above
// it and carries the cursor along. No-op at the top.
func (r *Reorder) MoveEntryUp() bool {
	i := r.PriorityCursor
	if i <= 0 || i >= len(r.entries) {
		return false
	}
	r.entries[i-1], r.entries[i] = r.entries[i], r.entries[i-1]
	r.PriorityCursor = i - 1
	return true
}

// MoveEntryDown swaps the entry under the priority cursor with the one
// below it and carries the cursor along. No-op at the bottom.
func (r *Reorder) MoveEntryDown() bool {
	i := r.PriorityCursor
	if i < 0 || i+1 >= len(r.entries) {
		return false
	}
	r.entries[i], r.entries[i+1] = r.entries[i+1], r.entries[i]
	r.PriorityCursor = i + 1
	return true
}

// Changed reports whether the working order differs from the startup
// snapshot. Used only to decide whether quitting needs confirmation.
func (r *Reorder) Changed() bool {
	ids := r.IDs()
	if len(ids) != len(r.original) {
		return true
	}
	for i, id := range ids {
		if id != r.original[i] {
			return true
		}
	}
	return false
}
