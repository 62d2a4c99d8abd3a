package program

import (
	"slices"
	"testing"
)

func TestActor_HasTag(t *testing.T) {
	a := Actor{Name: "Volkov", Tags: []Tag{TagEarly, TagVoiceover}}
	if !a.HasTag(TagEarly) || !a.HasTag(TagVoiceover) {
		t.Error("expected early and vo tags")
	}
	if a.HasTag(TagLater) {
		t.Error("unexpected later tag")
	}
}

func TestItem_ActorLookup(t *testing.T) {
	it := Item{
		ID:   1,
		Kind: KindPerformance,
		Actors: []Actor{
			{Name: "Volkov"},
			{Name: "Orlova", Tags: []Tag{TagLater}},
		},
	}

	if !it.HasActor("volkov") {
		t.Error("actor lookup must be case-insensitive")
	}
	if it.HasActor("Sidorov") {
		t.Error("unexpected actor")
	}

	a, ok := it.Actor("ORLOVA")
	if !ok || !a.HasTag(TagLater) {
		t.Errorf("Actor(ORLOVA) = %+v, %v; want the tagged actor", a, ok)
	}
}

func TestItem_ActorNamesDeduplicates(t *testing.T) {
	it := Item{Actors: []Actor{{Name: "Volkov"}, {Name: "VOLKOV"}, {Name: "Orlova"}}}
	names := it.ActorNames()
	if len(names) != 2 {
		t.Errorf("ActorNames = %v, want 2 distinct names", names)
	}
}

func TestSequenceHelpers(t *testing.T) {
	items := []Item{
		{ID: 3, Kind: KindPrelude},
		{ID: 1, Kind: KindPerformance},
		{ID: 7, Kind: KindFiller},
		{ID: 5, Kind: KindPerformance},
	}

	perfs := Performances(items)
	ids := make([]int, len(perfs))
	for i, p := range perfs {
		ids[i] = p.ID
	}
	if !slices.Equal(ids, []int{1, 5}) {
		t.Errorf("Performances ids = %v, want [1 5]", ids)
	}

	if n := CountFillers(items); n != 1 {
		t.Errorf("CountFillers = %d, want 1", n)
	}
	if m := MaxID(items); m != 7 {
		t.Errorf("MaxID = %d, want 7", m)
	}
	if m := MaxID(nil); m != 0 {
		t.Errorf("MaxID(nil) = %d, want 0", m)
	}
}

func TestArrangement_Usable(t *testing.T) {
	if (Arrangement{Status: StatusInfeasible}).Usable() {
		t.Error("infeasible arrangements must not be usable")
	}
	if !(Arrangement{Status: StatusIdeal}).Usable() {
		t.Error("ideal arrangements must be usable")
	}
}
