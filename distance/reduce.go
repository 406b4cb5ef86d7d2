package distance

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/valvenet/bfs"
	"github.com/katalvlaran/valvenet/bitmask"
	"github.com/katalvlaran/valvenet/network"
)

// Reduce builds the distance Matrix over {start} ∪ {nodes with rate > 0}.
//
// Stage 1 (Validate): resolve the start node (network.ErrUnknownStart) and
// apply options.
// Stage 2 (Select): collect reduced nodes, rejecting more than bitmask.Width.
// Stage 3 (Measure): fill the matrix with the selected strategy.
//
// Disconnected reward nodes are kept with Unreachable entries rather than
// reported as errors.
func Reduce(ctx context.Context, net *network.Network, startID string, opts ...Option) (*Matrix, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	start, err := net.Start(startID)
	if err != nil {
		return nil, err
	}

	// Stage 2: start first, then reward nodes in network order
	nodes := []int{start}
	for _, i := range net.RewardNodes() {
		if i != start {
			nodes = append(nodes, i)
		}
	}
	if len(nodes) > bitmask.Width {
		return nil, fmt.Errorf("%w: %d nodes, limit %d", ErrTooManyNodes, len(nodes), bitmask.Width)
	}

	m := newMatrix(len(nodes))
	for r, i := range nodes {
		m.ids[r] = net.ID(i)
		m.raw[r] = i
		m.rates[r] = net.Rate(i)
	}

	// Stage 3
	switch o.Strategy {
	case StrategyFloydWarshall:
		err = m.fillFloydWarshall(ctx, net)
	default:
		err = m.fillBFS(ctx, net, o.Workers)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// errAllReduced ends a search once every reduced node has left the queue.
var errAllReduced = errors.New("distance: all reduced nodes reached")

// fillBFS runs one search per reduced node. Goroutine r writes only row r.
func (m *Matrix) fillBFS(ctx context.Context, net *network.Network, workers int) error {
	reduced := make(map[int]struct{}, m.k)
	for _, i := range m.raw {
		reduced[i] = struct{}{}
	}

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for r := 0; r < m.k; r++ {
		r := r
		g.Go(func() error {
			left := m.k
			res, err := bfs.BFS(net, m.raw[r],
				bfs.WithContext(gctx),
				bfs.WithOnVisit(func(node, _ int) error {
					if _, ok := reduced[node]; ok {
						if left--; left == 0 {
							return errAllReduced
						}
					}
					return nil
				}),
			)
			if errors.Is(err, errAllReduced) {
				err = nil
			}
			if err != nil {
				return fmt.Errorf("distance: search from %q: %w", m.ids[r], err)
			}
			row := m.data[r*m.k : (r+1)*m.k]
			for c := 0; c < m.k; c++ {
				d := res.Depth[m.raw[c]]
				if d == bfs.Unreached {
					d = Unreachable
				}
				row[c] = d
			}
			return nil
		})
	}
	return g.Wait()
}
