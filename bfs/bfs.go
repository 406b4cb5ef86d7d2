// Package bfs provides breadth-first search over a network.Network,
// returning unweighted shortest-path distances and parent links.
package bfs

import (
	"context"
	"fmt"

	"github.com/gammazero/deque"

	"github.com/katalvlaran/valvenet/network"
)

// walker encapsulates mutable BFS state. One walker serves exactly one
// search, so concurrent searches over the same Network share nothing.
type walker struct {
	net   *network.Network
	opts  Options
	ctx   context.Context
	queue deque.Deque[int]
	res   *Result
}

// BFS runs breadth-first search on net starting from node index start,
// applying any number of functional Options.
// Returns ErrNetworkNil or ErrStartNotFound for invalid input, the context
// error on cancellation, or any user-supplied hook error.
func BFS(net *network.Network, start int, opts ...Option) (*Result, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if start < 0 || start >= net.Len() {
		return nil, fmt.Errorf("%w: index %d", ErrStartNotFound, start)
	}

	n := net.Len()
	w := &walker{
		net:  net,
		opts: o,
		ctx:  o.Ctx,
		res: &Result{
			Start:  start,
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}

	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// enqueue marks node discovered at depth d with its parent.
func (w *walker) enqueue(node, d, parent int) {
	w.res.Depth[node] = d
	w.res.Parent[node] = parent
	w.queue.PushBack(node)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.queue.Len() > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		node := w.queue.PopFront()
		depth := w.res.Depth[node]
		if err := w.opts.OnVisit(node, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at node %d: %w", node, err)
		}

		for _, nbr := range w.net.Neighbors(node) {
			if w.res.Depth[nbr] == Unreached {
				w.enqueue(nbr, depth+1, node)
			}
		}
	}
	return nil
}
