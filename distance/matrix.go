package distance

import (
	"fmt"

	"github.com/katalvlaran/valvenet/bitmask"
)

// Matrix is a k×k table of hop counts between reduced nodes, stored
// row-major in a flat slice. It is immutable once returned by Reduce or
// FromRows and safe for concurrent reads.
type Matrix struct {
	k     int
	ids   []string // reduced index → node ID
	raw   []int    // reduced index → network index (-1 for FromRows)
	rates []int64  // reduced index → reward rate
	data  []int    // k*k hop counts, Unreachable for no path
}

// newMatrix allocates a k×k matrix with every off-diagonal pair Unreachable.
func newMatrix(k int) *Matrix {
	m := &Matrix{
		k:     k,
		ids:   make([]string, k),
		raw:   make([]int, k),
		rates: make([]int64, k),
		data:  make([]int, k*k),
	}
	for i := range m.data {
		m.data[i] = Unreachable
	}
	for i := 0; i < k; i++ {
		m.data[i*k+i] = 0
	}
	return m
}

// FromRows builds a Matrix directly from hop counts, bypassing a network.
// Row 0 is the start node. Rows must be square, the diagonal zero, and
// every entry either non-negative or Unreachable.
func FromRows(ids []string, rates []int64, rows [][]int) (*Matrix, error) {
	k := len(rows)
	if k == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrBadMatrix)
	}
	if k > bitmask.Width {
		return nil, fmt.Errorf("%w: %d nodes, limit %d", ErrTooManyNodes, k, bitmask.Width)
	}
	if len(ids) != k || len(rates) != k {
		return nil, fmt.Errorf("%w: %d rows, %d ids, %d rates", ErrBadMatrix, k, len(ids), len(rates))
	}
	m := newMatrix(k)
	for i, row := range rows {
		if len(row) != k {
			return nil, fmt.Errorf("%w: row %d length %d, want %d", ErrBadMatrix, i, len(row), k)
		}
		if rates[i] < 0 {
			return nil, fmt.Errorf("%w: rate[%d]=%d is negative", ErrBadMatrix, i, rates[i])
		}
		for j, d := range row {
			switch {
			case i == j && d != 0:
				return nil, fmt.Errorf("%w: dist[%d][%d]=%d; self-distance must be 0", ErrBadMatrix, i, j, d)
			case d < Unreachable:
				return nil, fmt.Errorf("%w: dist[%d][%d]=%d", ErrBadMatrix, i, j, d)
			}
			m.data[i*k+j] = d
		}
		m.ids[i] = ids[i]
		m.raw[i] = -1
		m.rates[i] = rates[i]
	}
	return m, nil
}

// K returns the number of reduced nodes.
func (m *Matrix) K() int { return m.k }

// Start returns the reduced index of the start node, always 0.
func (m *Matrix) Start() int { return 0 }

// At returns the hop count from reduced node i to j, or Unreachable.
// It panics if either index is out of range.
func (m *Matrix) At(i, j int) int {
	if i < 0 || i >= m.k || j < 0 || j >= m.k {
		panic(fmt.Sprintf("distance: index (%d,%d) out of range for k=%d", i, j, m.k))
	}
	return m.data[i*m.k+j]
}

// Reachable reports whether a path from i to j exists.
func (m *Matrix) Reachable(i, j int) bool { return m.At(i, j) != Unreachable }

// Rate returns the reward rate of reduced node i.
func (m *Matrix) Rate(i int) int64 { return m.rates[i] }

// NodeID returns the network ID of reduced node i.
func (m *Matrix) NodeID(i int) string { return m.ids[i] }

// NetworkIndex returns the network index of reduced node i, or -1 when the
// matrix was built by FromRows.
func (m *Matrix) NetworkIndex(i int) int { return m.raw[i] }

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []int {
	return append([]int(nil), m.data[i*m.k:(i+1)*m.k]...)
}

// Rows returns a copy of the whole table.
func (m *Matrix) Rows() [][]int {
	out := make([][]int, m.k)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

// Unreachable returns the reduced indices of reward nodes that cannot be
// reached from the start, in ascending order.
func (m *Matrix) Unreachable() []int {
	var out []int
	for j := 1; j < m.k; j++ {
		if m.data[j] == Unreachable {
			out = append(out, j)
		}
	}
	return out
}

// IDs maps a set of reduced indices to node IDs in ascending index order.
func (m *Matrix) IDs(set bitmask.Mask) []string {
	idx := set.Indices()
	out := make([]string, len(idx))
	for n, i := range idx {
		out[n] = m.ids[i]
	}
	return out
}
