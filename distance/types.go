package distance

import (
	"errors"
	"fmt"
)

// Sentinel errors for distance reduction.
var (
	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("distance: network is nil")

	// ErrTooManyNodes indicates the reduced set does not fit a bitmask.Mask.
	ErrTooManyNodes = errors.New("distance: too many reward-bearing nodes")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distance: invalid option supplied")

	// ErrBadMatrix indicates malformed rows passed to FromRows.
	ErrBadMatrix = errors.New("distance: malformed matrix")
)

// Unreachable marks a pair of reduced nodes with no connecting path.
const Unreachable = -1

// Strategy selects the all-pairs algorithm used by Reduce.
type Strategy int

const (
	// StrategyBFS runs one breadth-first search per reduced node.
	StrategyBFS Strategy = iota
	// StrategyFloydWarshall closes the whole raw network, then restricts it.
	StrategyFloydWarshall
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyBFS:
		return "bfs"
	case StrategyFloydWarshall:
		return "floyd-warshall"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a strategy name back to its value.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "bfs", "":
		return StrategyBFS, nil
	case "floyd-warshall", "fw":
		return StrategyFloydWarshall, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// Option configures Reduce.
type Option func(*Options)

// Options holds the tunables of Reduce.
type Options struct {
	// Strategy picks the all-pairs algorithm.
	Strategy Strategy

	// Workers bounds concurrent searches; 0 means unlimited, 1 is sequential.
	Workers int

	err error
}

// DefaultOptions returns BFS strategy with unbounded parallelism.
func DefaultOptions() Options {
	return Options{Strategy: StrategyBFS}
}

// WithStrategy selects the all-pairs algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != StrategyBFS && s != StrategyFloydWarshall {
			o.err = fmt.Errorf("%w: strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithWorkers bounds the number of concurrent searches.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
