// Package constants implements the session-scoped constants table: a
// mapping from name to a synthetic Unit derived from an evaluated
// quantity, paired with insertion-ordered listing.
package constants

import (
	"sync"

	"github.com/dimlang/dim/internal/unit"
)

// Table is a session-scoped mapping name -> Unit. It is the one piece of
// shared state in the engine (spec.md §5); Table guards it with a mutex so
// a single engine instance can be shared safely, though the intended usage
// is one Table per engine/session.
type Table struct {
	mu    sync.RWMutex
	units map[string]unit.Unit
	order []string
}

// New creates an empty constants table.
func New() *Table {
	return &Table{units: make(map[string]unit.Unit)}
}

// Define constructs a synthetic unit from q's dimension and canonical
// value (scale = value, offset = 0, symbol = name) and inserts it under
// name. Replacing an existing name keeps its position in the listing
// order.
func (t *Table) Define(name string, q unit.Unit) {
	t.mu.Lock()
	defer t.mu.Unlock()

	synthetic := unit.Unit{Dim: q.Dim, Scale: q.Scale, Offset: 0, Symbol: name}
	if _, exists := t.units[name]; !exists {
		t.order = append(t.order, name)
	}
	t.units[name] = synthetic
}

// Get returns the unit bound to name, if any.
func (t *Table) Get(name string) (unit.Unit, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	u, ok := t.units[name]
	return u, ok
}

// Clear removes a single named constant. It reports whether the name was
// present.
func (t *Table) Clear(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.units[name]; !ok {
		return false
	}
	delete(t.units, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// ClearAll empties the table.
func (t *Table) ClearAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.units = make(map[string]unit.Unit)
	t.order = nil
}

// Entry pairs a constant's name with its unit, for List.
type Entry struct {
	Name string
	Unit unit.Unit
}

// List returns every constant in insertion order.
func (t *Table) List() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entries := make([]Entry, 0, len(t.order))
	for _, name := range t.order {
		entries = append(entries, Entry{Name: name, Unit: t.units[name]})
	}
	return entries
}
