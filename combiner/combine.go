package combiner

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/valvenet/bitmask"
	"github.com/katalvlaran/valvenet/optimizer"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("combiner: invalid option supplied")

// Pair is the best split of activations between two agents.
type Pair struct {
	// Total is value(First) + value(Second).
	Total int64

	// First is the higher-valued set of the pair; Second may be empty.
	First, Second bitmask.Mask

	// Compared counts the mask pairs examined.
	Compared int
}

// Option configures Combine.
type Option func(*options)

type options struct {
	workers int
	err     error
}

// WithWorkers bounds the number of goroutines; 0 means GOMAXPROCS,
// 1 runs on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.workers = n
	}
}

// Combine returns the best disjoint pair of entries in table.
// A nil or empty table yields the zero Pair.
func Combine(ctx context.Context, table *optimizer.Table, opts ...Option) (Pair, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Pair{}, o.err
	}
	if table.Len() == 0 {
		return Pair{}, nil
	}

	entries := table.Entries()
	slices.SortStableFunc(entries, func(a, b optimizer.Entry) int {
		return cmp.Compare(b.Value, a.Value)
	})

	workers := o.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(entries))

	if workers == 1 {
		return scan(ctx, entries, 0, 1)
	}

	partial := make([]Pair, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			p, err := scan(gctx, entries, w, workers)
			partial[w] = p
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Pair{}, err
	}

	var best Pair
	for i, p := range partial {
		best.Compared += p.Compared
		if i == 0 || better(p, best) {
			best.Total, best.First, best.Second = p.Total, p.First, p.Second
		}
	}
	return best, nil
}

// scan examines outer entries offset, offset+stride, ... of the
// value-descending slice. Bounds are compared by subtraction: two
// overlapping entries may sum past math.MaxInt64 even when every
// disjoint pair fits.
func scan(ctx context.Context, entries []optimizer.Entry, offset, stride int) (Pair, error) {
	var best Pair
	top := entries[0].Value
	for i := offset; i < len(entries); i += stride {
		if err := ctx.Err(); err != nil {
			return Pair{}, err
		}
		a := entries[i]
		if a.Value <= best.Total-top {
			break
		}
		for _, b := range entries {
			best.Compared++
			if a.Value <= best.Total-b.Value {
				break
			}
			if a.Mask.Intersects(b.Mask) {
				continue
			}
			cand := Pair{Total: a.Value + b.Value, First: a.Mask, Second: b.Mask}
			if b.Value > a.Value {
				cand.First, cand.Second = b.Mask, a.Mask
			}
			if better(cand, best) {
				best.Total, best.First, best.Second = cand.Total, cand.First, cand.Second
			}
			break
		}
	}
	return best, nil
}

// better orders pairs by total, then by masks, so merged results do not
// depend on which worker found them.
func better(p, q Pair) bool {
	if p.Total != q.Total {
		return p.Total > q.Total
	}
	if p.First != q.First {
		return p.First < q.First
	}
	return p.Second < q.Second
}
