package schedule

import (
	"github.com/ershov-z/stageflow/pkg/program"
)

// Segment is a maximal run of movable performances strictly between two
// consecutive anchors. The boundary anchors participate in cost
// evaluation but are never reordered; a nil boundary means the segment
// touches the start or end of the program.
type Segment struct {
	Left  *program.Item
	Right *program.Item
	Items []program.Item
}

// plan is the anchor-resolved skeleton of a program: an ordered mix of
// immovable anchor items and movable segments. Assembling the plan with
// one ordering per segment reproduces a full program sequence.
type plan struct {
	slots    []slot
	segments []*Segment
}

// slot is one position of the skeleton: either a single anchor item or a
// reference to a movable segment.
type slot struct {
	anchor  *program.Item
	segment int // index into plan.segments, -1 for anchor slots
}

// partition splits items into anchors and movable segments.
//
// Anchors are: every non-performance item (preludes, sponsor blocks,
// pre-existing fillers), every item the input already marks fixed, the
// first LeadAnchors performances, and the last TrailAnchors performances.
// A short program pins fewer: the leading pins are taken first and the
// trailing pins only from what remains.
func partition(items []program.Item, cfg Config) *plan {
	immovable := make([]bool, len(items))
	var perfIdx []int
	for i, it := range items {
		if !it.IsPerformance() || it.Fixed {
			immovable[i] = true
		}
		if it.IsPerformance() {
			perfIdx = append(perfIdx, i)
		}
	}

	lead := max(min(cfg.LeadAnchors, len(perfIdx)), 0)
	for _, i := range perfIdx[:lead] {
		immovable[i] = true
	}
	trail := max(min(cfg.TrailAnchors, len(perfIdx)-lead), 0)
	for _, i := range perfIdx[len(perfIdx)-trail:] {
		immovable[i] = true
	}

	p := &plan{}
	var open *Segment // segment currently being accumulated
	for i, it := range items {
		if !immovable[i] {
			if open == nil {
				open = &Segment{Left: p.lastAnchor()}
				p.slots = append(p.slots, slot{segment: len(p.segments)})
				p.segments = append(p.segments, open)
			}
			open.Items = append(open.Items, it)
			continue
		}

		anchor := it
		if open != nil {
			open.Right = &anchor
			open = nil
		}
		p.slots = append(p.slots, slot{anchor: &anchor, segment: -1})
	}
	return p
}

func (p *plan) lastAnchor() *program.Item {
	for i := len(p.slots) - 1; i >= 0; i-- {
		if p.slots[i].anchor != nil {
			return p.slots[i].anchor
		}
	}
	return nil
}

// assemble concatenates anchors with one chosen ordering per segment, in
// original anchor order. orders must hold exactly one ordering per
// segment; a nil entry keeps that segment's input order.
func (p *plan) assemble(orders [][]program.Item) []program.Item {
	out := make([]program.Item, 0, p.size())
	for _, s := range p.slots {
		if s.anchor != nil {
			out = append(out, *s.anchor)
			continue
		}
		chosen := orders[s.segment]
		if chosen == nil {
			chosen = p.segments[s.segment].Items
		}
		out = append(out, chosen...)
	}
	return out
}

func (p *plan) size() int {
	n := 0
	for _, s := range p.slots {
		if s.anchor != nil {
			n++
		} else {
			n += len(p.segments[s.segment].Items)
		}
	}
	return n
}
