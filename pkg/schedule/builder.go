package schedule

import (
	"context"
	"math/rand/v2"
	"slices"

	"github.com/ershov-z/stageflow/pkg/conflict"
	"github.com/ershov-z/stageflow/pkg/program"
)

// seedMix decorrelates the two PCG stream halves derived from one seed.
const seedMix = 0x9e3779b97f4a7c15

// BuildIdeal runs the full pipeline for one seed: anchor resolution,
// per-segment optimization, feasibility analysis and filler insertion.
//
// The returned arrangement is StatusIdeal when a strong-conflict-free
// order exists and the filler budget covers its residual weak conflicts;
// StatusInfeasible otherwise, with diagnostics explaining the gap (the
// items of an infeasible arrangement are the best-effort ideal order and
// must not be published); StatusNormal for degenerate input with at most
// one performance.
//
// BuildIdeal is pure: it never mutates items and draws randomness only
// from a generator seeded with seed. The only possible error is ctx.Err().
func BuildIdeal(ctx context.Context, items []program.Item, seed int64, cfg Config) (program.Arrangement, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return program.Arrangement{}, err
	}

	available := max(cfg.MaxFillerBudget-program.CountFillers(items), 0)

	// Degenerate programs have nothing to reorder.
	if len(program.Performances(items)) <= 1 {
		strong, weak := conflict.Count(items)
		return program.Arrangement{
			Seed:            seed,
			Items:           slices.Clone(items),
			StrongConflicts: strong,
			WeakConflicts:   weak,
			Status:          program.StatusNormal,
			Diagnostics:     program.Diagnostics{AvailableFillerBudget: available},
		}, nil
	}

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^seedMix))

	p := partition(items, cfg)
	feasible := true
	orders := make([][]program.Item, len(p.segments))
	for i, seg := range p.segments {
		res, err := optimizeSegment(ctx, seg, cfg, rng)
		if err != nil {
			return program.Arrangement{}, err
		}
		if !conflict.Finite(res.cost) {
			feasible = false
		}
		orders[i] = res.pick(rng)
	}

	ideal := p.assemble(orders)
	strong, minWeak := conflict.Count(ideal)
	if strong > 0 {
		// Strong conflicts between anchors themselves, or a segment no
		// ordering could resolve.
		feasible = false
	}

	diag := program.Diagnostics{MinWeakNeeded: minWeak, AvailableFillerBudget: available}
	if !feasible || minWeak > available {
		return program.Arrangement{
			Seed:            seed,
			Items:           ideal,
			StrongConflicts: strong,
			WeakConflicts:   minWeak,
			Status:          program.StatusInfeasible,
			Diagnostics:     diag,
		}, nil
	}

	filled := insertFillers(ctx, ideal, available, program.MaxID(items)+1, cfg)
	finalStrong, finalWeak := conflict.Count(filled.items)
	return program.Arrangement{
		Seed:            seed,
		Items:           filled.items,
		FillersInserted: filled.inserted,
		StrongConflicts: finalStrong,
		WeakConflicts:   finalWeak,
		Status:          program.StatusIdeal,
		Diagnostics:     diag,
	}, nil
}
