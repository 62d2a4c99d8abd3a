// Package program defines the data model for concert programs: actors,
// program items ("blocks"), and finished arrangements.
//
// Items are produced once by an external parser and never mutated by the
// scheduling core; every transformation returns new slices of value types.
// Raw display columns travel through the core untouched so that exporters
// can reconstruct the source table.
package program

import (
	"fmt"
	"strings"
)

// Tag is a per-actor placement marker extracted from the source table.
type Tag string

const (
	// TagEarly marks an actor who appears early in the left item, so a
	// shared appearance in the next item is acceptable.
	TagEarly Tag = "early"

	// TagLater marks an actor who appears late in the right item, so a
	// shared appearance in the previous item is acceptable.
	TagLater Tag = "later"

	// TagVoiceover marks off-stage participation; it never causes a
	// scheduling conflict.
	TagVoiceover Tag = "vo"

	// TagLegacyGK is a legacy gala marker. It still occurs in source data
	// and hardens a shared-actor adjacency into a strong conflict when it
	// appears on the right item.
	TagLegacyGK Tag = "gk"
)

// Actor is one participant of an item. Actors are value types keyed by
// name; name comparison is case-insensitive throughout the core.
type Actor struct {
	Name string `json:"name"`
	Tags []Tag  `json:"tags,omitempty"`
}

// HasTag reports whether the actor carries the given tag.
func (a Actor) HasTag(tag Tag) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Kind classifies a program item.
type Kind string

const (
	KindPerformance Kind = "performance"
	KindFiller      Kind = "filler"
	KindSponsor     Kind = "sponsor"
	KindPrelude     Kind = "prelude"
)

// Item is one schedulable unit of a program. The scheduling core only
// reads ID, Kind, Actors, Special and Fixed; the remaining fields are
// passthrough text from the source table.
type Item struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Kind    Kind    `json:"kind"`
	Actors  []Actor `json:"actors,omitempty"`
	Special bool    `json:"kv"`    // two special items may never be adjacent
	Fixed   bool    `json:"fixed"` // position is immovable

	// Raw source columns, opaque to the core.
	Num         string `json:"num,omitempty"`
	ActorsRaw   string `json:"actors_raw,omitempty"`
	PPRaw       string `json:"pp_raw,omitempty"`
	Hire        string `json:"hire,omitempty"`
	Responsible string `json:"responsible,omitempty"`
}

// IsPerformance reports whether the item is a stage performance. Only
// performances participate in conflict evaluation.
func (it Item) IsPerformance() bool { return it.Kind == KindPerformance }

// Actor returns the actor with the given name, if present.
func (it Item) Actor(name string) (Actor, bool) {
	for _, a := range it.Actors {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return Actor{}, false
}

// HasActor reports whether an actor with the given name participates.
func (it Item) HasActor(name string) bool {
	_, ok := it.Actor(name)
	return ok
}

// ActorNames returns the distinct actor names of the item.
func (it Item) ActorNames() []string {
	seen := make(map[string]bool, len(it.Actors))
	names := make([]string, 0, len(it.Actors))
	for _, a := range it.Actors {
		key := strings.ToLower(a.Name)
		if !seen[key] {
			seen[key] = true
			names = append(names, a.Name)
		}
	}
	return names
}

// Short returns a compact description for log lines, e.g. "[12:performance] Finale".
func (it Item) Short() string {
	return fmt.Sprintf("[%d:%s] %s", it.ID, it.Kind, it.Name)
}

// Performances filters items down to performances, preserving order.
func Performances(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.IsPerformance() {
			out = append(out, it)
		}
	}
	return out
}

// CountFillers returns the number of filler items in the sequence.
func CountFillers(items []Item) int {
	n := 0
	for _, it := range items {
		if it.Kind == KindFiller {
			n++
		}
	}
	return n
}

// MaxID returns the largest item ID in the sequence, or 0 for an empty one.
// Inserted fillers take IDs above this value.
func MaxID(items []Item) int {
	max := 0
	for _, it := range items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max
}
