package optimizer

import (
	"github.com/tidwall/btree"

	"github.com/katalvlaran/valvenet/bitmask"
)

// Entry is one row of a Table.
type Entry struct {
	Mask  bitmask.Mask
	Value int64
}

// Table is the SubsetOptimum table: for each activation set visited by a
// search, the largest total reward observed for exactly that set.
// Entries are kept ordered by mask, so iteration is deterministic.
//
// A Table is written by one search only and is read-only afterwards;
// concurrent reads of a finished Table are safe.
type Table struct {
	m btree.Map[bitmask.Mask, int64]
}

// NewTable returns an empty Table.
func NewTable() *Table { return &Table{} }

// Record raises the value stored for mask to v if v is larger, inserting
// the mask when absent.
func (t *Table) Record(mask bitmask.Mask, v int64) {
	if old, ok := t.m.Get(mask); ok && old >= v {
		return
	}
	t.m.Set(mask, v)
}

// Get returns the value recorded for mask and whether it was recorded.
func (t *Table) Get(mask bitmask.Mask) (int64, bool) {
	return t.m.Get(mask)
}

// Value returns the recorded value for mask, or 0 if the mask was never
// reached.
func (t *Table) Value(mask bitmask.Mask) int64 {
	v, _ := t.m.Get(mask)
	return v
}

// Len returns the number of recorded masks.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.m.Len()
}

// Scan calls fn for each entry in ascending mask order until fn returns false.
func (t *Table) Scan(fn func(mask bitmask.Mask, v int64) bool) {
	t.m.Scan(fn)
}

// Entries returns all entries in ascending mask order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, t.Len())
	t.m.Scan(func(mask bitmask.Mask, v int64) bool {
		out = append(out, Entry{Mask: mask, Value: v})
		return true
	})
	return out
}

// Max returns the entry with the largest value; ties go to the smallest mask.
func (t *Table) Max() Entry {
	var best Entry
	t.m.Scan(func(mask bitmask.Mask, v int64) bool {
		if v > best.Value {
			best = Entry{Mask: mask, Value: v}
		}
		return true
	})
	return best
}
