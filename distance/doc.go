// Package distance reduces a network.Network to a dense hop-count matrix
// over its ReducedNodes: the start node plus every node with a positive
// reward rate.
//
// Layout
//
//	Reduced index 0 is always the start node. Reward nodes follow in
//	ascending network index order, skipping the start if it carries a
//	reward itself. Reduced indices double as bit positions in a
//	bitmask.Mask, so at most bitmask.Width nodes may survive reduction.
//
// Strategies
//
//   - StrategyBFS (default): one unweighted BFS per reduced node over the
//     raw adjacency, run in parallel; each search writes only its own row.
//     O(k · (V + E)).
//   - StrategyFloydWarshall: all-pairs closure over the raw network, then
//     restricted to the reduced set. O(V³); useful as a cross-check.
//
// Unreachable pairs
//
//	A pair with no path is stored as Unreachable. Reward nodes unreachable
//	from the start are listed by Matrix.Unreachable; they are not an error
//	and the optimizer never activates them.
package distance
