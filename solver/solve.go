package solver

import (
	"context"
	"time"

	"github.com/katalvlaran/valvenet/combiner"
	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/network"
	"github.com/katalvlaran/valvenet/optimizer"
	"github.com/katalvlaran/valvenet/telemetry"
)

// Result is the outcome of Solve. Node sets are reported as node IDs.
type Result struct {
	// Single is the single-agent optimum for the single budget.
	Single int64

	// Pair is the two-agent optimum for the pair budget.
	Pair int64

	// Route is one activation order reaching Single.
	Route []string

	// Walk is Route expanded into every node passed on the way, starting
	// at the start node. Its length minus one is the number of moves.
	Walk []string

	// Agents holds the activation sets of the two agents reaching Pair,
	// the higher-valued one first. Either may be empty.
	Agents [2][]string

	// Unreachable lists reward nodes that no agent can reach.
	Unreachable []string
}

// Solve runs the full pipeline on net from the start node startID.
// Malformed input (unknown start, too many reward nodes, bad options) aborts
// with an error and no partial result; unreachable reward nodes do not.
func Solve(ctx context.Context, net *network.Network, startID string, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	log := o.Logger.With().Str("start", startID).Logger()

	// Reduce
	t0 := time.Now()
	m, err := distance.Reduce(ctx, net, startID,
		distance.WithStrategy(o.Strategy),
		distance.WithWorkers(o.Workers),
	)
	if err != nil {
		return Result{}, err
	}
	o.Metrics.ObserveStage(telemetry.StageReduce, t0)
	unreachable := m.Unreachable()
	for _, r := range unreachable {
		log.Warn().Str("node", m.NodeID(r)).Msg("reward node unreachable from start; excluded")
	}
	log.Debug().
		Int("reduced", m.K()).
		Stringer("strategy", o.Strategy).
		Dur("elapsed", time.Since(t0)).
		Msg("distance matrix ready")

	// Single agent
	single, err := runSearch(m, o.SingleBudget, telemetry.StageSingle, o)
	if err != nil {
		return Result{}, err
	}

	// Two agents: the table is rebuilt for the shorter per-agent budget
	pair := single
	if o.PairBudget != o.SingleBudget {
		if pair, err = runSearch(m, o.PairBudget, telemetry.StagePair, o); err != nil {
			return Result{}, err
		}
	}
	t0 = time.Now()
	split, err := combiner.Combine(ctx, pair.Table, combiner.WithWorkers(o.Workers))
	if err != nil {
		return Result{}, err
	}
	o.Metrics.ObserveStage(telemetry.StageCombine, t0)
	log.Debug().
		Int64("total", split.Total).
		Int("compared", split.Compared).
		Dur("elapsed", time.Since(t0)).
		Msg("pair combined")

	if o.Metrics != nil {
		o.Metrics.ReducedNodes.Set(float64(m.K()))
		o.Metrics.UnreachableNodes.Set(float64(len(unreachable)))
		o.Metrics.PairsCompared.Add(float64(split.Compared))
	}

	res := Result{
		Single: single.Best,
		Pair:   split.Total,
		Route:  make([]string, len(single.Route)),
		Agents: [2][]string{m.IDs(split.First), m.IDs(split.Second)},
	}
	for i, r := range single.Route {
		res.Route[i] = m.NodeID(r)
	}
	if res.Walk, err = walk(ctx, net, m, single.Route); err != nil {
		return Result{}, err
	}
	for _, r := range unreachable {
		res.Unreachable = append(res.Unreachable, m.NodeID(r))
	}
	return res, nil
}

// runSearch runs one optimizer pass and records its diagnostics.
func runSearch(m *distance.Matrix, budget int, stage string, o Options) (*optimizer.Result, error) {
	t0 := time.Now()
	res, err := optimizer.Optimize(m, budget)
	if err != nil {
		return nil, err
	}
	o.Metrics.ObserveStage(stage, t0)
	if o.Metrics != nil {
		o.Metrics.SearchStates.WithLabelValues(stage).Add(float64(res.States))
		o.Metrics.MasksRecorded.WithLabelValues(stage).Set(float64(res.Table.Len()))
	}
	o.Logger.Debug().
		Str("stage", stage).
		Int("budget", budget).
		Int64("best", res.Best).
		Int("states", res.States).
		Int("masks", res.Table.Len()).
		Dur("elapsed", time.Since(t0)).
		Msg("search finished")
	return res, nil
}
