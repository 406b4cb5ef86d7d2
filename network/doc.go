// Package network holds the immutable graph model consumed by the valve
// search: named nodes, each with a non-negative reward rate and a list of
// directly connected neighbors.
//
// What
//
//   - Node: stable dense index, string ID, reward rate, neighbor indices.
//   - Network: the validated, read-only collection of nodes.
//   - Builder: accumulates node declarations and validates them on Build.
//   - Description: a plain, serializable form of the same input (YAML).
//
// Validation
//
//	Build rejects a network as malformed (ErrMalformedGraph) when a node ID is
//	empty or declared twice, a reward rate is negative, or a neighbor names an
//	undeclared node. A start node that is not declared is rejected by
//	Network.Start with ErrUnknownStart.
//
// Direction
//
//	By default tunnels are traversable both ways: Build adds the reverse of
//	every declared link, so adjacency is symmetric even when the input only
//	lists one side. WithDirected keeps links exactly as declared.
//
// Determinism
//
//	Node indices follow declaration order, and each neighbor list keeps the
//	order in which links were first seen with duplicates removed.
//
// Complexity
//
//   - Build: O(V + E) time and memory.
//   - Index lookups: O(1).
package network
