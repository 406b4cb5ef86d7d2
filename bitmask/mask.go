// Package bitmask provides ActivationMask, a fixed-width set of small
// integer indices backed by a single machine word.
//
// Every operation is O(1) word arithmetic. Indices must lie in [0, Width);
// Has reports false for anything outside that range, With and Of panic.
//
// Callers go through the methods below, never the raw bits.
package bitmask

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Width is the number of indices a Mask can hold.
const Width = 64

// Mask is a set of indices in [0, Width). The zero value is the empty set.
type Mask uint64

// Empty is the set with no members.
const Empty Mask = 0

// Of returns the set containing exactly the given indices.
func Of(indices ...int) Mask {
	var m Mask
	for _, i := range indices {
		m = m.With(i)
	}
	return m
}

// Has reports whether i is a member.
func (m Mask) Has(i int) bool {
	if i < 0 || i >= Width {
		return false
	}
	return m&(1<<uint(i)) != 0
}

// With returns m ∪ {i}. It panics if i is out of range.
func (m Mask) With(i int) Mask {
	if i < 0 || i >= Width {
		panic(fmt.Sprintf("bitmask: index %d out of range [0,%d)", i, Width))
	}
	return m | 1<<uint(i)
}

// Union returns m ∪ o.
func (m Mask) Union(o Mask) Mask { return m | o }

// Intersects reports whether m and o share at least one member.
func (m Mask) Intersects(o Mask) bool { return m&o != 0 }

// SubsetOf reports whether every member of m is also in o.
func (m Mask) SubsetOf(o Mask) bool { return m&^o == 0 }

// Len returns the number of members.
func (m Mask) Len() int { return bits.OnesCount64(uint64(m)) }

// IsEmpty reports whether m has no members.
func (m Mask) IsEmpty() bool { return m == 0 }

// Indices returns the members in ascending order.
func (m Mask) Indices() []int {
	out := make([]int, 0, m.Len())
	for w := uint64(m); w != 0; w &= w - 1 {
		out = append(out, bits.TrailingZeros64(w))
	}
	return out
}

// String renders m as "{i,j,...}".
func (m Mask) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for n, i := range m.Indices() {
		if n > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(i))
	}
	sb.WriteByte('}')
	return sb.String()
}
