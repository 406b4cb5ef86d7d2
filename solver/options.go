package solver

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/telemetry"
)

// Default budgets of the reference scenario.
const (
	DefaultSingleBudget = 30
	DefaultPairBudget   = 26
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("solver: invalid option supplied")

// Option configures Solve.
type Option func(*Options)

// Options holds the tunables of Solve.
type Options struct {
	// SingleBudget is the time budget of the lone agent.
	SingleBudget int

	// PairBudget is the time budget of each of the two cooperating agents.
	PairBudget int

	// Workers bounds parallelism of reduction and combination; 0 = default.
	Workers int

	// Strategy selects the distance reduction algorithm.
	Strategy distance.Strategy

	// Logger receives stage diagnostics.
	Logger zerolog.Logger

	// Metrics, if non-nil, is updated by every stage.
	Metrics *telemetry.Metrics

	err error
}

// DefaultOptions returns the reference budgets, BFS reduction, default
// parallelism, and a disabled logger.
func DefaultOptions() Options {
	return Options{
		SingleBudget: DefaultSingleBudget,
		PairBudget:   DefaultPairBudget,
		Strategy:     distance.StrategyBFS,
		Logger:       zerolog.Nop(),
	}
}

// WithBudgets sets the single-agent and per-agent pair budgets.
func WithBudgets(single, pair int) Option {
	return func(o *Options) {
		if single < 0 || pair < 0 {
			o.err = fmt.Errorf("%w: budgets cannot be negative (%d, %d)", ErrOptionViolation, single, pair)
			return
		}
		o.SingleBudget, o.PairBudget = single, pair
	}
}

// WithWorkers bounds goroutines used by reduction and combination.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithStrategy selects the distance reduction algorithm.
func WithStrategy(s distance.Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithLogger routes diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics records stage metrics on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}
