package network

import (
	"errors"
	"fmt"
)

// ErrMalformedGraph is the umbrella error for structurally invalid input.
// Every structural sentinel below wraps it, so errors.Is(err, ErrMalformedGraph)
// matches any of them.
var ErrMalformedGraph = errors.New("network: malformed graph")

// Sentinel errors for network construction and lookup.
var (
	// ErrEmptyNodeID indicates a node declared with an empty ID.
	ErrEmptyNodeID = fmt.Errorf("%w: node ID is empty", ErrMalformedGraph)

	// ErrDuplicateNode indicates the same node ID was declared twice.
	ErrDuplicateNode = fmt.Errorf("%w: duplicate node ID", ErrMalformedGraph)

	// ErrNegativeReward indicates a reward rate below zero.
	ErrNegativeReward = fmt.Errorf("%w: negative reward rate", ErrMalformedGraph)

	// ErrUnknownNeighbor indicates a neighbor reference to an undeclared node.
	ErrUnknownNeighbor = fmt.Errorf("%w: neighbor is not declared", ErrMalformedGraph)

	// ErrUnknownStart indicates the designated start node is not declared.
	ErrUnknownStart = fmt.Errorf("%w: start node is not declared", ErrMalformedGraph)
)

// Node is one location of the network.
//
// Index is the dense position of the node in its Network (0..Len()-1).
// Rate is the reward accrued per remaining time unit once the node is
// activated. Neighbors lists the indices of directly connected nodes.
type Node struct {
	Index     int
	ID        string
	Rate      int64
	Neighbors []int
}

// Network is an immutable graph of nodes. It is safe for concurrent reads.
type Network struct {
	nodes    []Node
	index    map[string]int
	directed bool
	edges    int
}

// Len returns the number of nodes.
func (n *Network) Len() int { return len(n.nodes) }

// Edges returns the number of adjacency entries (directed arcs).
func (n *Network) Edges() int { return n.edges }

// Directed reports whether links were kept one-way at construction.
func (n *Network) Directed() bool { return n.directed }

// Index resolves a node ID to its dense index.
func (n *Network) Index(id string) (int, bool) {
	i, ok := n.index[id]
	return i, ok
}

// Start resolves the designated start node, failing with ErrUnknownStart.
func (n *Network) Start(id string) (int, error) {
	i, ok := n.index[id]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownStart, id)
	}
	return i, nil
}

// Node returns a copy of the node at index i. It panics if i is out of range.
func (n *Network) Node(i int) Node {
	nd := n.nodes[i]
	nd.Neighbors = append([]int(nil), nd.Neighbors...)
	return nd
}

// ID returns the ID of the node at index i.
func (n *Network) ID(i int) string { return n.nodes[i].ID }

// Rate returns the reward rate of the node at index i.
func (n *Network) Rate(i int) int64 { return n.nodes[i].Rate }

// Neighbors returns the neighbor indices of node i.
// The returned slice is shared and must not be modified.
func (n *Network) Neighbors(i int) []int { return n.nodes[i].Neighbors }

// RewardNodes returns the indices of nodes with a positive reward rate,
// in ascending index order.
func (n *Network) RewardNodes() []int {
	out := make([]int, 0, len(n.nodes))
	for i := range n.nodes {
		if n.nodes[i].Rate > 0 {
			out = append(out, i)
		}
	}
	return out
}
