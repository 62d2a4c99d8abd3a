package schedule

import (
	"fmt"

	"github.com/ershov-z/stageflow/pkg/conflict"
	"github.com/ershov-z/stageflow/pkg/program"
)

// Violation describes one rule broken by a finished arrangement.
type Violation struct {
	// Index is the position of the offending item in the sequence, or the
	// left item of an offending pair.
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

func (v Violation) String() string {
	return fmt.Sprintf("item %d: %s", v.Index, v.Reason)
}

// Validate re-checks a finished item sequence against the placement
// rules. It is a diagnostic pass for externally produced or manually
// edited arrangements; a sequence returned by BuildIdeal with
// StatusIdeal always validates clean.
//
// Checked rules:
//
//   - total filler count within budget,
//   - no strong conflict between adjacent performances,
//   - no weak conflict between nearest performances, with fillers
//     transparent (a filler legalizes the pair it separates),
//   - items marked fixed appear in their original relative order, using
//     the parser's ascending ID assignment as the reference.
func Validate(items []program.Item, cfg Config) []Violation {
	cfg, err := cfg.Normalize()
	if err != nil {
		return []Violation{{Index: 0, Reason: err.Error()}}
	}

	var out []Violation

	if fillers := program.CountFillers(items); fillers > cfg.MaxFillerBudget {
		out = append(out, Violation{
			Index:  0,
			Reason: fmt.Sprintf("too many fillers: %d > %d", fillers, cfg.MaxFillerBudget),
		})
	}

	for i := 0; i+1 < len(items); i++ {
		if conflict.Strong(items[i], items[i+1]) {
			out = append(out, Violation{
				Index:  i,
				Reason: fmt.Sprintf("strong conflict: %s then %s (%s)", items[i].Short(), items[i+1].Short(), conflict.Describe(items[i], items[i+1])),
			})
		}
	}

	// Weak conflicts are checked between nearest performances, skipping
	// fillers: a filler between the two is exactly what legalizes them.
	for i, it := range items {
		if !it.IsPerformance() {
			continue
		}
		j := i + 1
		separated := false
		for j < len(items) && items[j].Kind == program.KindFiller {
			separated = true
			j++
		}
		if separated || j >= len(items) {
			continue
		}
		if conflict.Weak(it, items[j]) {
			out = append(out, Violation{
				Index:  i,
				Reason: fmt.Sprintf("weak conflict without filler: %s then %s", it.Short(), items[j].Short()),
			})
		}
	}

	lastFixedID := 0
	for i, it := range items {
		if !it.Fixed {
			continue
		}
		if it.ID < lastFixedID {
			out = append(out, Violation{
				Index:  i,
				Reason: fmt.Sprintf("fixed item %s out of original order", it.Short()),
			})
		} else {
			lastFixedID = it.ID
		}
	}

	return out
}
