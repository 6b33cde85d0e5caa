// Package efi reads UEFI boot configuration by scraping efibootmgr output.
package efi

import (
	"fmt"
	"os/exec"
	"regexp"
	"sort"
	"strings"
)

// Entry is one UEFI boot entry: a four hex digit identifier plus a
// human-readable label. The label is display-only; identity is ID.
type Entry struct {
	ID   string
	Name string
}

// Snapshot captures the firmware boot configuration at startup.
type Snapshot struct {
	Entries []Entry
	Order   []string
	Current string
}

// InventoryError wraps a failure to run or parse the inventory tool. The
// application treats it as fatal at startup.
type InventoryError struct {
	Tool string
	Err  error
}

func (e *InventoryError) Error() string {
	return fmt.Sprintf("boot inventory via %s failed: %v", e.Tool, e.Err)
}

func (e *InventoryError) Unwrap() error { return e.Err }

var entryPattern = regexp.MustCompile(`^Boot([0-9A-Fa-f]{4})\*?\s+([^\t(]+)`)

// Fetch runs the inventory tool and returns the parsed snapshot with
// entries sorted by the reported boot order.
func Fetch(tool string) (Snapshot, error) {
	output, err := exec.Command(tool, "-v").CombinedOutput()
	if err != nil {
		return Snapshot{}, &InventoryError{Tool: tool, Err: err}
	}
	snapshot := Parse(string(output))
	if len(snapshot.Entries) == 0 {
		return Snapshot{}, &InventoryError{Tool: tool, Err: fmt.Errorf("no boot entries in output")}
	}
	snapshot.Entries = SortByOrder(snapshot.Entries, snapshot.Order)
	return snapshot, nil
}

// Parse extracts entries, order, and the current boot id from raw
// efibootmgr output. The current id falls back to the head of the boot
// order when no BootCurrent line is present.
func Parse(text string) Snapshot {
	var snapshot Snapshot
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "BootOrder:"):
			rest := strings.TrimSpace(strings.TrimPrefix(line, "BootOrder:"))
			if rest == "" {
				continue
			}
			for _, id := range strings.Split(rest, ",") {
				if id = strings.TrimSpace(id); id != "" {
					snapshot.Order = append(snapshot.Order, id)
				}
			}
		case strings.HasPrefix(line, "BootCurrent:"):
			snapshot.Current = strings.TrimSpace(strings.TrimPrefix(line, "BootCurrent:"))
		default:
			if match := entryPattern.FindStringSubmatch(line); match != nil {
				snapshot.Entries = append(snapshot.Entries, Entry{
					ID:   strings.TrimSpace(match[1]),
					Name: strings.TrimSpace(match[2]),
				})
			}
		}
	}
	if snapshot.Current == "" && len(snapshot.Order) > 0 {
		snapshot.Current = snapshot.Order[0]
	}
	return snapshot
}

// SortByOrder places entries whose id appears in the order by that order's
// index; entries absent from the order sort after all ordered ones, stable
// among themselves.
func SortByOrder(entries []Entry, order []string) []Entry {
	if len(order) == 0 {
		return entries
	}
	rank := make(map[string]int, len(order))
	for i, id := range order {
		if _, ok := rank[id]; !ok {
			rank[id] = i
		}
	}
	sorted := append([]Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, ok := rank[sorted[i].ID]
		if !ok {
			ri = len(order)
		}
		rj, ok := rank[sorted[j].ID]
		if !ok {
			rj = len(order)
		}
		return ri < rj
	})
	return sorted
}

// SetOrderArgs builds the argument vector that writes a new boot order.
func SetOrderArgs(tool string, ids []string) []string {
	return []string{tool, "-o", strings.Join(ids, ",")}
}

// NextBootArgs builds the argument vector that sets the one-shot boot
// target for the next boot only.
func NextBootArgs(tool, id string) []string {
	return []string{tool, "-n", id}
}
