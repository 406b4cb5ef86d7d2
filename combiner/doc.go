// Package combiner solves the two-agent variant of the valve search from a
// finished optimizer.Table: it finds the pair of disjoint activation sets
// (A, B) maximising value(A) + value(B).
//
// Soundness
//
//	Only masks reached by the exhaustive single-agent search are present.
//	An unreached mask never beats the best reached subset of itself, so
//	pairing recorded masks is enough. The empty set is always recorded, so
//	the pair total is never below the single-agent optimum of the same
//	budget.
//
// Algorithm
//
//	Entries are sorted by value, descending. For each outer entry A the
//	inner scan stops at the first disjoint B (the best partner for A) or as
//	soon as value(A) + value(B) cannot beat the best pair found so far, and
//	the outer loop stops once value(A) + top can no longer win. The result
//	equals the full O(m²) pairing; only hopeless pairs are skipped.
//
// Concurrency
//
//	The outer loop is partitioned by stride across workers via errgroup.
//	Every worker reads the shared, immutable entry slice and keeps a
//	private best; the results are merged after Wait.
package combiner
