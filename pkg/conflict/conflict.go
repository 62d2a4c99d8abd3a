// Package conflict implements the placement rules between adjacent
// program items.
//
// All predicates are pure functions over pairs of items. Two severities
// exist:
//
//   - Strong: a hard violation that no filler can repair; the pair must
//     be separated by reordering or the program is infeasible.
//   - Weak: a soft violation, resolvable either by reordering or by
//     inserting a neutral filler between the two items.
//
// Non-performance items are transparent: any pair where either side is
// not a performance produces no conflict of either severity.
package conflict

import (
	"strings"

	"github.com/ershov-z/stageflow/pkg/program"
)

func isPerfPair(left, right program.Item) bool {
	return left.IsPerformance() && right.IsPerformance()
}

// SharedActors returns the actor names appearing in both items. Matching
// is case-insensitive; the returned names use the left item's spelling.
func SharedActors(left, right program.Item) []string {
	var shared []string
	for _, name := range left.ActorNames() {
		if right.HasActor(name) {
			shared = append(shared, name)
		}
	}
	return shared
}

// Strong reports a hard adjacency violation between left and right:
// either both items carry the special placement flag, or a shared actor
// carries the legacy gala tag in the right item.
//
// The legacy tag is checked on the right item only: it marks an actor
// who must not open the next number, not one who must not close the
// previous.
func Strong(left, right program.Item) bool {
	if !isPerfPair(left, right) {
		return false
	}
	if left.Special && right.Special {
		return true
	}
	for _, name := range SharedActors(left, right) {
		if a, ok := right.Actor(name); ok && a.HasTag(program.TagLegacyGK) {
			return true
		}
	}
	return false
}

// Weak reports a soft adjacency violation: a shared actor who is not
// exempted. Per shared actor the exemptions are:
//
//   - the voiceover tag in either item,
//   - the early tag on the actor in the left item,
//   - the later tag on the actor in the right item.
//
// Strong conflicts take precedence: a strongly conflicting pair is never
// also weak.
func Weak(left, right program.Item) bool {
	if !isPerfPair(left, right) {
		return false
	}
	if Strong(left, right) {
		return false
	}
	for _, name := range SharedActors(left, right) {
		if !exempt(left, right, name) {
			return true
		}
	}
	return false
}

func exempt(left, right program.Item, name string) bool {
	la, _ := left.Actor(name)
	ra, _ := right.Actor(name)
	switch {
	case la.HasTag(program.TagVoiceover) || ra.HasTag(program.TagVoiceover):
		return true
	case la.HasTag(program.TagEarly):
		return true
	case ra.HasTag(program.TagLater):
		return true
	}
	return false
}

// Describe returns a short human-readable reason for the conflict between
// left and right, or "" when the pair does not conflict. Used in
// validation reports.
func Describe(left, right program.Item) string {
	switch {
	case Strong(left, right):
		if left.Special && right.Special {
			return "two special-flagged performances adjacent"
		}
		return "shared actor with legacy gala tag in " + right.Short()
	case Weak(left, right):
		var names []string
		for _, name := range SharedActors(left, right) {
			if !exempt(left, right, name) {
				names = append(names, name)
			}
		}
		return "shared actors without exemption: " + strings.Join(names, ", ")
	}
	return ""
}

// Count tallies strong and weak conflicts over the literally adjacent
// pairs of an item sequence. Fillers and other non-performance items
// break adjacency, so an inserted filler removes the pair it separates
// from the tally.
func Count(items []program.Item) (strong, weak int) {
	for i := 0; i+1 < len(items); i++ {
		switch {
		case Strong(items[i], items[i+1]):
			strong++
		case Weak(items[i], items[i+1]):
			weak++
		}
	}
	return strong, weak
}
