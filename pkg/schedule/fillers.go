package schedule

import (
	"context"
	"fmt"

	"github.com/ershov-z/stageflow/pkg/conflict"
	"github.com/ershov-z/stageflow/pkg/observability"
	"github.com/ershov-z/stageflow/pkg/program"
)

// fillerResult is the outcome of one filler-insertion pass.
type fillerResult struct {
	items      []program.Item
	inserted   int
	unresolved int // weak junctions left standing (no budget or no host)
}

// insertFillers walks the ordering and places a filler item at each
// weak-conflict junction between adjacent performances, while budget
// lasts. Failing to find an admissible host for one junction leaves that
// junction conflicted and moves on; it never aborts the pass.
//
// Inserted fillers get IDs starting at nextID and carry the chosen host
// as their single actor.
func insertFillers(ctx context.Context, items []program.Item, budget, nextID int, cfg Config) fillerResult {
	out := make([]program.Item, 0, len(items)+budget)
	res := fillerResult{}

	for i, it := range items {
		if i > 0 && conflict.Weak(out[len(out)-1], it) {
			if res.inserted >= budget {
				res.unresolved++
			} else if host, ok := pickHost(out[len(out)-1], it, cfg.FillerHosts); ok {
				out = append(out, makeFiller(nextID, host))
				nextID++
				res.inserted++
				observability.Scheduler().OnFillerInserted(ctx, host)
			} else {
				res.unresolved++
				observability.Scheduler().OnJunctionUnresolved(ctx)
			}
		}
		out = append(out, it)
	}

	res.items = out
	return res
}

// pickHost returns the first admissible host actor from the priority
// list. A host is admissible between left and right iff it does not
// carry the legacy gala tag in either item, and it is either absent from
// the right item or carries the later tag there.
func pickHost(left, right program.Item, hosts []string) (string, bool) {
	for _, host := range hosts {
		if la, ok := left.Actor(host); ok && la.HasTag(program.TagLegacyGK) {
			continue
		}
		if ra, ok := right.Actor(host); ok {
			if ra.HasTag(program.TagLegacyGK) {
				continue
			}
			if !ra.HasTag(program.TagLater) {
				continue
			}
		}
		return host, true
	}
	return "", false
}

// makeFiller builds the neutral filler item hosted by the given actor.
func makeFiller(id int, host string) program.Item {
	return program.Item{
		ID:     id,
		Name:   fmt.Sprintf("[filler] %s", host),
		Kind:   program.KindFiller,
		Actors: []program.Actor{{Name: host}},
	}
}
