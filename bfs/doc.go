// Package bfs provides breadth-first search over a network.Network,
// returning unweighted shortest-path distances (hop counts) and parent links.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Returns a Result indexed by node index:
//   - Depth: hop distance from start, Unreached if never discovered
//   - Parent: predecessor in the BFS tree
//   - OnVisit hook (may abort with an error) and context cancellation.
//
// Why
//
//	The distance reducer runs one BFS per reward-bearing node over the raw
//	network and stops it once every reward node has a depth. The solver
//	expands an activation route into a hop-by-hop walk with PathTo.
//
// Determinism
//
//	Neighbors are expanded in the order stored by the Network, so the visit
//	sequence is reproducible.
//
// Concurrency
//
//	BFS only reads the Network and owns its queue and result, so any number
//	of searches may run in parallel over one Network.
//
// Complexity (V = nodes, E = adjacency entries)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(net, start, bfs.WithContext(ctx))
//	if err != nil {
//		// ErrNetworkNil, ErrStartNotFound, ctx error, or hook error
//	}
//	d := res.Depth[target]
package bfs
