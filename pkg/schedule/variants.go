package schedule

import (
	"context"
	"sync"

	"github.com/ershov-z/stageflow/pkg/observability"
	"github.com/ershov-z/stageflow/pkg/program"
)

// GenerateVariants produces up to cfg.Variants visibly different, equally
// legal arrangements of the same program.
//
// The first seed builds the lead arrangement. If it comes back
// infeasible (or degenerate), it is returned alone: alternative seeds
// cannot change feasibility, only tie-breaking. Otherwise the remaining
// seeds are built concurrently and deduplicated in seed order by content
// hash over (kind, actor-set, special-flag) per item, so two seeds that
// happen to settle on the same order count once.
//
// When seeds is empty, fresh time-based seeds are generated. The only
// possible errors are ctx.Err() and a broken Config.
func GenerateVariants(ctx context.Context, items []program.Item, seeds []int64, cfg Config) ([]program.Arrangement, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}
	if len(seeds) == 0 {
		seeds = GenerateSeeds(cfg.Variants)
	}

	lead, err := BuildIdeal(ctx, items, seeds[0], cfg)
	if err != nil {
		return nil, err
	}
	if lead.Status != program.StatusIdeal {
		return []program.Arrangement{lead}, nil
	}

	rest := seeds[1:]
	built := make([]program.Arrangement, len(rest))
	errs := make([]error, len(rest))

	// Runs are independent by construction; the dedup pass below is the
	// only ordering requirement.
	var wg sync.WaitGroup
	for i, seed := range rest {
		wg.Add(1)
		go func() {
			defer wg.Done()
			built[i], errs[i] = BuildIdeal(ctx, items, seed, cfg)
		}()
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	seen := map[string]bool{program.ContentHash(lead.Items): true}
	out := []program.Arrangement{lead}
	for _, ar := range built {
		if len(out) >= cfg.Variants {
			break
		}
		h := program.ContentHash(ar.Items)
		if seen[h] {
			observability.Variants().OnVariantDuplicate(ctx, ar.Seed)
			continue
		}
		seen[h] = true
		out = append(out, ar)
		observability.Variants().OnVariantKept(ctx, ar.Seed, ar.FillersInserted)
	}
	return out, nil
}
