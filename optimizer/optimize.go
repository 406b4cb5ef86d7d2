package optimizer

import (
	"fmt"
	"math"

	"github.com/katalvlaran/valvenet/bitmask"
	"github.com/katalvlaran/valvenet/distance"
)

// search holds the state of one Optimize call. Nothing in it outlives the
// call or is shared with another search.
type search struct {
	m          *distance.Matrix
	candidates []int // reward nodes reachable from the start
	table      *Table
	path       []int
	bestTotal  int64
	bestRoute  []int
	states     int
}

// Optimize runs the single-agent search over m with the given budget.
//
// Stage 1 (Validate): reject a nil matrix, a negative budget, or a budget
// whose worst-case total does not fit in int64.
// Stage 2 (Search): exhaustive depth-first recursion from the start,
// recording every activation set in the result Table.
// Stage 3 (Finalize): report the optimum and one route reaching it.
//
// A budget of zero, or a matrix without reachable reward nodes, yields 0
// with a Table holding only the empty set.
func Optimize(m *distance.Matrix, budget int) (*Result, error) {
	if m == nil {
		return nil, ErrMatrixNil
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}

	s := &search{m: m, table: NewTable()}
	start := m.Start()
	for n := 0; n < m.K(); n++ {
		if m.Rate(n) > 0 && m.Reachable(start, n) {
			s.candidates = append(s.candidates, n)
		}
	}
	if err := checkOverflow(m, s.candidates, budget); err != nil {
		return nil, err
	}

	best := s.visit(start, budget, bitmask.Empty, 0)

	res := &Result{
		Budget: budget,
		Best:   best,
		Route:  s.bestRoute,
		Table:  s.table,
		States: s.states,
	}
	if res.Route == nil {
		res.Route = []int{}
	}
	res.Activated = bitmask.Of(res.Route...)
	return res, nil
}

// visit returns the best additional reward from (cur, mask, t). acc is the
// total collected on the way here; it is recorded against mask.
func (s *search) visit(cur, t int, mask bitmask.Mask, acc int64) int64 {
	s.states++
	s.table.Record(mask, acc)
	if acc > s.bestTotal {
		s.bestTotal = acc
		s.bestRoute = append(s.bestRoute[:0], s.path...)
	}

	var best int64
	for _, n := range s.candidates {
		if mask.Has(n) {
			continue
		}
		d := s.m.At(cur, n)
		if d == distance.Unreachable {
			continue
		}
		left := t - d - 1
		if left <= 0 {
			continue
		}
		gain := s.m.Rate(n) * int64(left)

		s.path = append(s.path, n)
		v := gain + s.visit(n, left, mask.With(n), acc+gain)
		s.path = s.path[:len(s.path)-1]

		if v > best {
			best = v
		}
	}
	return best
}

// checkOverflow rejects budgets where activating every candidate with the
// full budget remaining would exceed math.MaxInt64.
func checkOverflow(m *distance.Matrix, candidates []int, budget int) error {
	var sum int64
	for _, n := range candidates {
		r := m.Rate(n)
		if sum > math.MaxInt64-r {
			return fmt.Errorf("%w: rate sum", ErrOverflow)
		}
		sum += r
	}
	if budget > 0 && sum > math.MaxInt64/int64(budget) {
		return fmt.Errorf("%w: rate sum %d × budget %d", ErrOverflow, sum, budget)
	}
	return nil
}
