// Package valvenet finds the largest reward that one agent, or two
// cooperating agents, can release from a network of valves within a fixed
// time budget.
//
// Each valve has a reward rate; opening it takes one time unit and every
// tunnel hop takes one more. An opened valve keeps paying its rate for each
// remaining time unit.
//
// The work is split across small packages, in dependency order:
//
//	network/    immutable graph model, validation, YAML descriptions
//	bfs/        unweighted breadth-first search over a network
//	bitmask/    fixed-width activation sets
//	distance/   reduction to a hop-count matrix over reward nodes
//	optimizer/  single-agent search and the SubsetOptimum table
//	combiner/   best disjoint split of that table between two agents
//	solver/     end-to-end pipeline with logging and metrics
//	telemetry/  Prometheus instruments
//
// Quick example:
//
//	net, _ := network.NewBuilder().
//		Add("AA", 0, "BB").
//		Add("BB", 13).
//		Build()
//	res, _ := solver.Solve(ctx, net, "AA")
//	fmt.Println(res.Single, res.Pair)
//
// The command in cmd/valvenet wraps the same pipeline for YAML input.
package valvenet
