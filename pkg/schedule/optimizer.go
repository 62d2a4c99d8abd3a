package schedule

import (
	"context"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/ershov-z/stageflow/pkg/conflict"
	"github.com/ershov-z/stageflow/pkg/observability"
	"github.com/ershov-z/stageflow/pkg/perm"
	"github.com/ershov-z/stageflow/pkg/program"
)

// cancelStride is how many candidate orderings are evaluated between
// context checks. Checking every iteration would dominate the cost of
// evaluating a small segment.
const cancelStride = 1024

// segmentResult is the outcome of optimizing one segment.
type segmentResult struct {
	// cost is the minimum total segment cost found; +Inf means every
	// ordering contains a strong conflict and the program is infeasible.
	cost float64

	// candidates holds distinct orderings achieving cost, capped at
	// Config.DiversityCap. The exhaustive tier fills several; the DP and
	// sampling tiers produce one each.
	candidates [][]program.Item

	// certified is true when cost is a proven optimum (exhaustive or DP
	// tier), false for the sampled upper bound.
	certified bool

	method string
}

// optimizeSegment reorders the movable items of one segment to minimize
// conflict cost against its boundary anchors. Tier selection follows the
// segment size: exact enumeration up to ExhaustiveCutoff, bitmask DP up
// to DPCutoff, bounded random sampling beyond.
//
// The rng drives tie-breaking diversity and sampling; distinct seeds
// yield distinct (but equally cheap) results. The context is checked
// between evaluation batches; the only possible error is ctx.Err().
func optimizeSegment(ctx context.Context, seg *Segment, cfg Config, rng *rand.Rand) (segmentResult, error) {
	n := len(seg.Items)
	if n <= 1 {
		return segmentResult{
			cost:       conflict.SequenceCost(seg.Left, seg.Items, seg.Right),
			candidates: [][]program.Item{slices.Clone(seg.Items)},
			certified:  true,
			method:     observability.MethodExhaustive,
		}, nil
	}

	var method string
	switch {
	case n <= cfg.ExhaustiveCutoff:
		method = observability.MethodExhaustive
	case n <= cfg.DPCutoff:
		method = observability.MethodDP
	default:
		method = observability.MethodSampled
	}

	observability.Scheduler().OnSegmentStart(ctx, n, method)
	start := time.Now()

	var (
		res segmentResult
		err error
	)
	switch method {
	case observability.MethodExhaustive:
		res, err = enumerateSegment(ctx, seg, cfg.DiversityCap)
	case observability.MethodDP:
		res, err = dpSegment(ctx, seg, rng)
	default:
		res, err = sampleSegment(ctx, seg, cfg.SampleBudget, rng)
	}
	if err != nil {
		return segmentResult{}, err
	}

	res.method = method
	observability.Scheduler().OnSegmentComplete(ctx, n, method, res.cost, time.Since(start))
	return res, nil
}

// enumerateSegment tries all n! orderings and keeps every distinct
// ordering achieving the minimum cost, up to limit.
func enumerateSegment(ctx context.Context, seg *Segment, limit int) (segmentResult, error) {
	best := math.Inf(1)
	var candidates [][]program.Item

	evaluated := 0
	var cancelled error
	perm.Visit(len(seg.Items), func(p []int) bool {
		evaluated++
		if evaluated%cancelStride == 0 {
			if err := ctx.Err(); err != nil {
				cancelled = err
				return false
			}
		}

		order := applyOrder(seg.Items, p)
		cost := conflict.SequenceCost(seg.Left, order, seg.Right)
		switch {
		case cost < best || len(candidates) == 0:
			best = cost
			candidates = append(candidates[:0], order)
		case cost == best && conflict.Finite(cost) && len(candidates) < limit:
			candidates = append(candidates, order)
		}
		return true
	})
	if cancelled != nil {
		return segmentResult{}, cancelled
	}
	return segmentResult{cost: best, candidates: candidates, certified: true}, nil
}

// dpSegment solves the segment exactly with the Held-Karp path DP. The
// items are pre-shuffled with rng so that cost ties break differently
// for different seeds; the returned cost is seed-independent.
func dpSegment(ctx context.Context, seg *Segment, rng *rand.Rand) (segmentResult, error) {
	shuffled := applyOrder(seg.Items, perm.Shuffled(len(seg.Items), rng))
	path, cost, err := heldKarpPath(ctx, seg.Left, shuffled, seg.Right)
	if err != nil {
		return segmentResult{}, err
	}
	if path == nil {
		// No strong-conflict-free ordering exists.
		return segmentResult{
			cost:       math.Inf(1),
			candidates: [][]program.Item{slices.Clone(seg.Items)},
			certified:  true,
		}, nil
	}
	return segmentResult{
		cost:       cost,
		candidates: [][]program.Item{applyOrder(shuffled, path)},
		certified:  true,
	}, nil
}

// sampleSegment draws random orderings and keeps the best found. This is
// a heuristic upper bound, not a certified optimum. The budget shrinks
// as the segment grows, since each evaluation costs O(n).
func sampleSegment(ctx context.Context, seg *Segment, budget int, rng *rand.Rand) (segmentResult, error) {
	n := len(seg.Items)
	samples := max(budget/n, 100)

	best := math.Inf(1)
	var bestOrder []program.Item
	for i := 0; i < samples; i++ {
		if i%cancelStride == 0 {
			if err := ctx.Err(); err != nil {
				return segmentResult{}, err
			}
		}
		order := applyOrder(seg.Items, perm.Shuffled(n, rng))
		cost := conflict.SequenceCost(seg.Left, order, seg.Right)
		if cost < best || bestOrder == nil {
			best = cost
			bestOrder = order
		}
	}
	return segmentResult{
		cost:       best,
		candidates: [][]program.Item{bestOrder},
		certified:  false,
	}, nil
}

// applyOrder materializes a permutation of items as a new slice.
func applyOrder(items []program.Item, p []int) []program.Item {
	out := make([]program.Item, len(p))
	for i, idx := range p {
		out[i] = items[idx]
	}
	return out
}

// pick selects one of the equal-cost candidate orderings of a segment.
// This is the seed's tie-breaking entry point for small segments.
func (r segmentResult) pick(rng *rand.Rand) []program.Item {
	if len(r.candidates) == 0 {
		return nil
	}
	return r.candidates[rng.IntN(len(r.candidates))]
}
