package optimizer

import (
	"errors"

	"github.com/katalvlaran/valvenet/bitmask"
)

// Sentinel errors for the optimizer.
var (
	// ErrMatrixNil is returned if a nil distance matrix is passed.
	ErrMatrixNil = errors.New("optimizer: distance matrix is nil")

	// ErrNegativeBudget is returned for a time budget below zero.
	ErrNegativeBudget = errors.New("optimizer: time budget is negative")

	// ErrOverflow indicates the total reward could exceed the int64 range.
	ErrOverflow = errors.New("optimizer: reward total may overflow int64")
)

// Result holds the outcome of Optimize.
type Result struct {
	// Budget is the time budget the search ran with.
	Budget int

	// Best is the single-agent optimum.
	Best int64

	// Route is one activation order reaching Best, as reduced indices.
	// Empty when nothing can be collected.
	Route []int

	// Activated is the set of nodes in Route.
	Activated bitmask.Mask

	// Table maps every visited activation set to its best total.
	Table *Table

	// States counts search states explored, the root included.
	States int
}
