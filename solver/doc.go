// Package solver wires the valve search pipeline end to end:
//
//	network.Network → distance.Reduce → optimizer.Optimize → combiner.Combine
//
// Solve returns the two numbers the problem asks for: the single-agent
// optimum for the single budget (30 by default) and the two-agent optimum
// for the pair budget (26 by default). Each upstream result is read-only to
// the stages after it.
//
// Logging goes through zerolog and is silent unless WithLogger is given.
// Metrics are recorded only when WithMetrics is given.
package solver
