// Package bfs provides tunable options and error definitions
// for breadth-first search over a network.Network.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start index is out of range.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("bfs: network is nil")
)

// Unreached is the Depth and Parent value of nodes the search never reached.
const Unreached = -1

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node leaves the queue; its depth is final.
	// If it returns an error, BFS aborts and propagates that error
	// together with the partial Result.
	OnVisit func(node, depth int) error
}

// DefaultOptions returns Options with a background context and a no-op
// visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS traversal, indexed by node index:
//   - Depth: hop distance from the start, or Unreached.
//   - Parent: predecessor in the BFS tree, or Unreached (also for the start).
type Result struct {
	Start  int
	Depth  []int
	Parent []int
}

// Reached reports whether node was discovered.
func (r *Result) Reached(node int) bool {
	return node >= 0 && node < len(r.Depth) && r.Depth[node] != Unreached
}

// PathTo reconstructs the node sequence from the start to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to node %d", dest)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur != Unreached; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
