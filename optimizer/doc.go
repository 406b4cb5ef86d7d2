// Package optimizer computes the single-agent optimum of the valve search:
// the largest total reward collectible within a time budget starting at the
// reduced start node of a distance.Matrix.
//
// Model
//
//	Moving from reduced node a to b costs dist(a,b) time units; activating b
//	costs one more. A node activated with t units left contributes
//	rate(b) × t to the total, once.
//
// Recurrence
//
//	best(cur, mask, t) = max over n ∉ mask with dist(cur,n)+1 < t of
//	    rate(n)·(t−dist(cur,n)−1) + best(n, mask ∪ {n}, t−dist(cur,n)−1)
//	and 0 when no such n exists.
//
//	Moves that leave no time after the activation add nothing and are not
//	explored. Unreachable and zero-rate nodes are never candidates.
//
// SubsetOptimum table
//
//	The search is exhaustive: every activation set reached along any path is
//	recorded in a Table with the best total seen for it. The combiner pairs
//	disjoint entries of that table to solve the two-agent problem.
//
// Complexity
//
//	Exponential in the number of candidates in the worst case, bounded in
//	practice by the budget: each step consumes at least two time units, so
//	the depth is at most min(k, T/2).
package optimizer
