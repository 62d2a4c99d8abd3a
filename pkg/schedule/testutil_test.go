package schedule

import (
	"github.com/ershov-z/stageflow/pkg/program"
)

// Builders shared by the package tests.

func actor(name string, tags ...program.Tag) program.Actor {
	return program.Actor{Name: name, Tags: tags}
}

func perf(id int, actors ...program.Actor) program.Item {
	return program.Item{ID: id, Name: "perf", Kind: program.KindPerformance, Actors: actors}
}

func specialPerf(id int, actors ...program.Actor) program.Item {
	it := perf(id, actors...)
	it.Special = true
	return it
}

func fixedPerf(id int, actors ...program.Actor) program.Item {
	it := perf(id, actors...)
	it.Fixed = true
	return it
}

func prelude(id int) program.Item {
	return program.Item{ID: id, Name: "prelude", Kind: program.KindPrelude}
}

func sponsor(id int) program.Item {
	return program.Item{ID: id, Name: "sponsor", Kind: program.KindSponsor}
}

func filler(id int, host string) program.Item {
	return program.Item{ID: id, Name: "filler", Kind: program.KindFiller, Actors: []program.Actor{{Name: host}}}
}

// noAnchors is a config with anchor pinning disabled, so every
// performance is movable. Tests use it to exercise the optimizer on
// small hand-built segments.
func noAnchors() Config {
	cfg := DefaultConfig()
	cfg.LeadAnchors = -1
	cfg.TrailAnchors = -1
	return cfg
}

// ids extracts the item IDs of a sequence, for order assertions.
func ids(items []program.Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
