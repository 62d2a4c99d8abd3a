package schedule

import (
	"context"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/ershov-z/stageflow/pkg/conflict"
	"github.com/ershov-z/stageflow/pkg/observability"
	"github.com/ershov-z/stageflow/pkg/program"
)

func testRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^seedMix))
}

func TestEnumerateSegment_ResolvesWeakPair(t *testing.T) {
	// One weak-conflict pair (1~2 share Volkov) in a 3-item segment with
	// free boundaries: 6 orderings, several of which cost 0.
	seg := &Segment{Items: []program.Item{
		perf(1, actor("Volkov")),
		perf(2, actor("Volkov")),
		perf(3, actor("Orlova")),
	}}

	res, err := enumerateSegment(context.Background(), seg, DefaultDiversityCap)
	if err != nil {
		t.Fatal(err)
	}
	if res.cost != 0 {
		t.Errorf("cost = %v, want 0", res.cost)
	}
	for _, cand := range res.candidates {
		if c := conflict.SequenceCost(nil, cand, nil); c != 0 {
			t.Errorf("candidate %v costs %v, want 0", ids(cand), c)
		}
	}
	if len(res.candidates) < 2 {
		t.Errorf("expected several equal-cost candidates, got %d", len(res.candidates))
	}
}

func TestEnumerateSegment_BestOfOneWeak(t *testing.T) {
	// All three performances share an actor: every ordering has exactly
	// two adjacencies, both weak. Minimum is 2, not 0.
	shared := actor("Volkov")
	seg := &Segment{Items: []program.Item{perf(1, shared), perf(2, shared), perf(3, shared)}}

	res, err := enumerateSegment(context.Background(), seg, DefaultDiversityCap)
	if err != nil {
		t.Fatal(err)
	}
	if res.cost != 2 {
		t.Errorf("cost = %v, want 2", res.cost)
	}
}

func TestEnumerateSegment_InfeasibleWhenSpecialsDominate(t *testing.T) {
	// Two special performances alone: they are adjacent in either order.
	seg := &Segment{Items: []program.Item{specialPerf(1), specialPerf(2)}}

	res, err := enumerateSegment(context.Background(), seg, DefaultDiversityCap)
	if err != nil {
		t.Fatal(err)
	}
	if conflict.Finite(res.cost) {
		t.Errorf("cost = %v, want +Inf", res.cost)
	}
	if len(res.candidates) == 0 {
		t.Error("infeasible segment must still carry a best-effort ordering")
	}
}

func TestEnumerateSegment_RespectsBoundaries(t *testing.T) {
	// Boundary anchors force the Volkov performance away from the left edge.
	left := perf(10, actor("Volkov"))
	seg := &Segment{
		Left: &left,
		Items: []program.Item{
			perf(1, actor("Volkov")),
			perf(2, actor("Orlova")),
		},
	}

	res, err := enumerateSegment(context.Background(), seg, DefaultDiversityCap)
	if err != nil {
		t.Fatal(err)
	}
	if res.cost != 0 {
		t.Fatalf("cost = %v, want 0", res.cost)
	}
	for _, cand := range res.candidates {
		if cand[0].ID == 1 {
			t.Errorf("candidate %v places the conflicting item against the boundary", ids(cand))
		}
	}
}

func TestEnumerateSegment_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var items []program.Item
	for i := 1; i <= 7; i++ {
		items = append(items, perf(i))
	}
	_, err := enumerateSegment(ctx, &Segment{Items: items}, DefaultDiversityCap)
	if err == nil {
		t.Error("expected a cancellation error")
	}
}

func TestDPSegment_MatchesExhaustive(t *testing.T) {
	// A segment with a mix of weak conflicts; the DP must find the same
	// minimum cost as full enumeration.
	shared := actor("Volkov")
	other := actor("Orlova")
	seg := &Segment{Items: []program.Item{
		perf(1, shared), perf(2, shared), perf(3, other),
		perf(4, shared, other), perf(5, other), perf(6, shared),
	}}

	exact, err := enumerateSegment(context.Background(), seg, DefaultDiversityCap)
	if err != nil {
		t.Fatal(err)
	}

	for seed := int64(1); seed <= 5; seed++ {
		dp, err := dpSegment(context.Background(), seg, testRNG(seed))
		if err != nil {
			t.Fatal(err)
		}
		if dp.cost != exact.cost {
			t.Errorf("seed %d: dp cost = %v, exhaustive = %v", seed, dp.cost, exact.cost)
		}
		if got := conflict.SequenceCost(nil, dp.candidates[0], nil); got != dp.cost {
			t.Errorf("seed %d: reported cost %v but ordering costs %v", seed, dp.cost, got)
		}
	}
}

func TestDPSegment_Infeasible(t *testing.T) {
	seg := &Segment{Items: []program.Item{specialPerf(1), specialPerf(2)}}

	res, err := dpSegment(context.Background(), seg, testRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	if conflict.Finite(res.cost) {
		t.Errorf("cost = %v, want +Inf", res.cost)
	}
}

func TestSampleSegment_DeterministicPerSeed(t *testing.T) {
	shared := actor("Volkov")
	var items []program.Item
	for i := 1; i <= 9; i++ {
		if i%2 == 0 {
			items = append(items, perf(i, shared))
		} else {
			items = append(items, perf(i))
		}
	}
	seg := &Segment{Items: items}

	a, err := sampleSegment(context.Background(), seg, DefaultSampleBudget, testRNG(42))
	if err != nil {
		t.Fatal(err)
	}
	b, err := sampleSegment(context.Background(), seg, DefaultSampleBudget, testRNG(42))
	if err != nil {
		t.Fatal(err)
	}

	if a.cost != b.cost || !slices.Equal(ids(a.candidates[0]), ids(b.candidates[0])) {
		t.Error("same seed must reproduce the same sampled result")
	}
	if a.certified {
		t.Error("sampled results must not claim a certified optimum")
	}
	if !conflict.Finite(a.cost) {
		t.Errorf("sampling found no finite ordering, cost = %v", a.cost)
	}
}

func TestOptimizeSegment_TierSelection(t *testing.T) {
	mk := func(n int) *Segment {
		var items []program.Item
		for i := 1; i <= n; i++ {
			items = append(items, perf(i))
		}
		return &Segment{Items: items}
	}

	tests := []struct {
		n         int
		method    string
		certified bool
	}{
		{1, observability.MethodExhaustive, true},
		{5, observability.MethodExhaustive, true},
		{7, observability.MethodExhaustive, true},
		{8, observability.MethodDP, true},
		{15, observability.MethodDP, true},
		{16, observability.MethodSampled, false},
	}
	for _, tt := range tests {
		res, err := optimizeSegment(context.Background(), mk(tt.n), DefaultConfig(), testRNG(1))
		if err != nil {
			t.Fatal(err)
		}
		if res.method != tt.method || res.certified != tt.certified {
			t.Errorf("n=%d: method=%s certified=%v, want %s/%v", tt.n, res.method, res.certified, tt.method, tt.certified)
		}
		if res.cost != 0 {
			t.Errorf("n=%d: cost = %v, want 0 for conflict-free items", tt.n, res.cost)
		}
	}
}

func TestSegmentResult_PickIsSeeded(t *testing.T) {
	res := segmentResult{candidates: [][]program.Item{
		{perf(1)}, {perf(2)}, {perf(3)}, {perf(4)},
	}}

	a := res.pick(testRNG(1))
	b := res.pick(testRNG(1))
	if a[0].ID != b[0].ID {
		t.Error("same seed must pick the same candidate")
	}

	picked := make(map[int]bool)
	for seed := int64(0); seed < 32; seed++ {
		picked[res.pick(testRNG(seed))[0].ID] = true
	}
	if len(picked) < 2 {
		t.Error("different seeds should reach different candidates")
	}
}

func TestApplyOrder(t *testing.T) {
	items := []program.Item{perf(1), perf(2), perf(3)}
	got := applyOrder(items, []int{2, 0, 1})
	if !slices.Equal(ids(got), []int{3, 1, 2}) {
		t.Errorf("applyOrder = %v", ids(got))
	}
	if math.IsInf(conflict.SequenceCost(nil, got, nil), 1) {
		t.Error("unexpected infinite cost")
	}
}
