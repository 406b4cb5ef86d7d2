package network

import "fmt"

// Option configures a Builder.
type Option func(*Builder)

// WithDirected keeps every link one-way, exactly as declared.
func WithDirected() Option {
	return func(b *Builder) { b.directed = true }
}

// declaration is one Add call, kept verbatim until Build resolves names.
type declaration struct {
	id        string
	rate      int64
	neighbors []string
}

// Builder collects node declarations and produces a validated Network.
// Declarations may reference neighbors that are added later; names are
// resolved only in Build. A Builder is not safe for concurrent use.
type Builder struct {
	decls    []declaration
	directed bool
}

// NewBuilder returns an empty Builder configured by opts.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add declares a node with its reward rate and neighbor IDs and returns the
// Builder for chaining. Validation is deferred to Build.
func (b *Builder) Add(id string, rate int64, neighbors ...string) *Builder {
	b.decls = append(b.decls, declaration{
		id:        id,
		rate:      rate,
		neighbors: append([]string(nil), neighbors...),
	})
	return b
}

// Build validates the declarations and returns the immutable Network.
//
// Stage 1 (Index): assign dense indices in declaration order, rejecting empty,
// duplicate IDs and negative rates.
// Stage 2 (Link): resolve neighbor names, rejecting undeclared ones, and add
// reverse links unless the builder is directed.
//
// Self-links are dropped; they never shorten a path.
func (b *Builder) Build() (*Network, error) {
	n := &Network{
		nodes:    make([]Node, len(b.decls)),
		index:    make(map[string]int, len(b.decls)),
		directed: b.directed,
	}

	// Stage 1: index nodes
	for i, d := range b.decls {
		if d.id == "" {
			return nil, fmt.Errorf("%w (declaration %d)", ErrEmptyNodeID, i)
		}
		if _, dup := n.index[d.id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, d.id)
		}
		if d.rate < 0 {
			return nil, fmt.Errorf("%w: %q has rate %d", ErrNegativeReward, d.id, d.rate)
		}
		n.index[d.id] = i
		n.nodes[i] = Node{Index: i, ID: d.id, Rate: d.rate}
	}

	// Stage 2: resolve links; seen[from] dedups neighbor lists
	seen := make([]map[int]struct{}, len(n.nodes))
	link := func(from, to int) {
		if from == to {
			return
		}
		if seen[from] == nil {
			seen[from] = make(map[int]struct{})
		}
		if _, ok := seen[from][to]; ok {
			return
		}
		seen[from][to] = struct{}{}
		n.nodes[from].Neighbors = append(n.nodes[from].Neighbors, to)
		n.edges++
	}
	for i, d := range b.decls {
		for _, name := range d.neighbors {
			j, ok := n.index[name]
			if !ok {
				return nil, fmt.Errorf("%w: %q listed by %q", ErrUnknownNeighbor, name, d.id)
			}
			link(i, j)
			if !b.directed {
				link(j, i)
			}
		}
	}

	return n, nil
}
