package conflict

import (
	"math"

	"github.com/ershov-z/stageflow/pkg/program"
)

// Edge cost constants for ordering search. A strong conflict is an
// infinite edge: no finite amount of weak-conflict trading compensates
// for one.
var (
	costForbidden = math.Inf(1)
)

// Cost returns the edge weight of placing right immediately after left:
// +Inf for a strong conflict, 1 for a weak conflict, 0 otherwise. Pairs
// involving a non-performance item always cost 0.
func Cost(left, right program.Item) float64 {
	switch {
	case Strong(left, right):
		return costForbidden
	case Weak(left, right):
		return 1
	}
	return 0
}

// SequenceCost sums the adjacency costs of an ordering between two
// optional boundary items. Pass a nil boundary when the segment touches
// the start or end of the program. The result is +Inf as soon as any
// adjacency is forbidden.
func SequenceCost(left *program.Item, items []program.Item, right *program.Item) float64 {
	total := 0.0
	prev := left
	for i := range items {
		if prev != nil {
			total += Cost(*prev, items[i])
		}
		prev = &items[i]
	}
	if prev != nil && right != nil {
		total += Cost(*prev, *right)
	}
	return total
}

// Finite reports whether a cost represents a legal (strong-conflict-free)
// ordering.
func Finite(cost float64) bool {
	return !math.IsInf(cost, 1)
}
