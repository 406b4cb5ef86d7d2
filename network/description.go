package network

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Description is the serializable form of a network plus its start node.
//
//	start: AA
//	nodes:
//	  - {id: AA, rate: 0, neighbors: [DD, II, BB]}
//	  - {id: BB, rate: 13, neighbors: [CC, AA]}
type Description struct {
	Start string     `yaml:"start"`
	Nodes []NodeSpec `yaml:"nodes"`
}

// NodeSpec declares one node of a Description.
type NodeSpec struct {
	ID        string   `yaml:"id"`
	Rate      int64    `yaml:"rate"`
	Neighbors []string `yaml:"neighbors"`
}

// DecodeYAML reads a Description from r. Unknown fields are rejected.
func DecodeYAML(r io.Reader) (Description, error) {
	var d Description
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return Description{}, fmt.Errorf("network: decode description: %w", err)
	}
	return d, nil
}

// Build turns the Description into a Network. The start node is validated
// too, so a nil error guarantees d.Start resolves.
func (d Description) Build(opts ...Option) (*Network, error) {
	n, err := NewBuilder(opts...).AddAll(d.Nodes).Build()
	if err != nil {
		return nil, err
	}
	if _, err := n.Start(d.Start); err != nil {
		return nil, err
	}
	return n, nil
}

// AddAll declares every node of specs in order.
func (b *Builder) AddAll(specs []NodeSpec) *Builder {
	for _, spec := range specs {
		b.Add(spec.ID, spec.Rate, spec.Neighbors...)
	}
	return b
}
