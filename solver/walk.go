package solver

import (
	"context"
	"fmt"

	"github.com/katalvlaran/valvenet/bfs"
	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/network"
)

// walk expands an activation route of reduced indices into the node IDs
// traversed from the start, one entry per hop. An empty route yields nil.
func walk(ctx context.Context, net *network.Network, m *distance.Matrix, route []int) ([]string, error) {
	if len(route) == 0 {
		return nil, nil
	}
	cur := m.NetworkIndex(m.Start())
	ids := []string{net.ID(cur)}
	for _, r := range route {
		next := m.NetworkIndex(r)
		res, err := bfs.BFS(net, cur, bfs.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		path, err := res.PathTo(next)
		if err != nil {
			return nil, fmt.Errorf("solver: route leg %s→%s: %w", net.ID(cur), net.ID(next), err)
		}
		for _, p := range path[1:] {
			ids = append(ids, net.ID(p))
		}
		cur = next
	}
	return ids, nil
}
