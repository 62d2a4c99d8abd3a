package schedule

import (
	"context"
	"testing"

	"github.com/ershov-z/stageflow/pkg/conflict"
	"github.com/ershov-z/stageflow/pkg/program"
)

func TestPickHost(t *testing.T) {
	hosts := []string{"Пушкин", "Исаев"}

	tests := []struct {
		name  string
		left  program.Item
		right program.Item
		want  string
		ok    bool
	}{
		{
			name:  "absent from both sides",
			left:  perf(1, actor("Volkov")),
			right: perf(2, actor("Orlova")),
			want:  "Пушкин",
			ok:    true,
		},
		{
			name:  "legacy tag on the left skips to the next host",
			left:  perf(1, actor("Пушкин", program.TagLegacyGK)),
			right: perf(2),
			want:  "Исаев",
			ok:    true,
		},
		{
			name:  "present in right without the later tag",
			left:  perf(1),
			right: perf(2, actor("Пушкин")),
			want:  "Исаев",
			ok:    true,
		},
		{
			name:  "present in right with the later tag is fine",
			left:  perf(1),
			right: perf(2, actor("Пушкин", program.TagLater)),
			want:  "Пушкин",
			ok:    true,
		},
		{
			name:  "legacy tag in right skips even with later",
			left:  perf(1),
			right: perf(2, actor("Пушкин", program.TagLater, program.TagLegacyGK)),
			want:  "Исаев",
			ok:    true,
		},
		{
			name:  "no admissible host",
			left:  perf(1, actor("Пушкин", program.TagLegacyGK)),
			right: perf(2, actor("Исаев")),
			ok:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pickHost(tt.left, tt.right, hosts)
			if ok != tt.ok || got != tt.want {
				t.Errorf("pickHost = %q/%v, want %q/%v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestInsertFillers_BreaksWeakJunction(t *testing.T) {
	shared := actor("Volkov")
	items := []program.Item{perf(1, shared), perf(2, shared)}

	res := insertFillers(context.Background(), items, 3, 10, DefaultConfig())

	if res.inserted != 1 || res.unresolved != 0 {
		t.Fatalf("inserted=%d unresolved=%d, want 1/0", res.inserted, res.unresolved)
	}
	if len(res.items) != 3 {
		t.Fatalf("items = %v", ids(res.items))
	}
	f := res.items[1]
	if f.Kind != program.KindFiller || f.ID != 10 {
		t.Errorf("filler = %+v, want kind filler with id 10", f)
	}
	if strong, weak := conflict.Count(res.items); strong != 0 || weak != 0 {
		t.Errorf("conflicts after insertion: strong=%d weak=%d", strong, weak)
	}
}

func TestInsertFillers_BudgetExhausted(t *testing.T) {
	shared := actor("Volkov")
	items := []program.Item{
		perf(1, shared), perf(2, shared), perf(3, shared),
	}

	res := insertFillers(context.Background(), items, 1, 10, DefaultConfig())

	if res.inserted != 1 || res.unresolved != 1 {
		t.Errorf("inserted=%d unresolved=%d, want 1/1", res.inserted, res.unresolved)
	}
	if _, weak := conflict.Count(res.items); weak != 1 {
		t.Errorf("one junction should remain weak, got %d", weak)
	}
}

func TestInsertFillers_NoAdmissibleHost(t *testing.T) {
	shared := actor("Volkov")
	cfg := DefaultConfig()
	cfg.FillerHosts = []string{"Пушкин"}

	// The host carries the legacy tag on the left side of the junction.
	items := []program.Item{
		perf(1, shared, actor("Пушкин", program.TagLegacyGK)),
		perf(2, shared),
	}

	res := insertFillers(context.Background(), items, 3, 10, cfg)

	if res.inserted != 0 || res.unresolved != 1 {
		t.Errorf("inserted=%d unresolved=%d, want 0/1", res.inserted, res.unresolved)
	}
	if len(res.items) != 2 {
		t.Errorf("items = %v, want the input unchanged", ids(res.items))
	}
}

func TestInsertFillers_SequentialIDs(t *testing.T) {
	shared := actor("Volkov")
	items := []program.Item{
		perf(1, shared), perf(2, shared), perf(3, shared),
	}

	res := insertFillers(context.Background(), items, 3, 100, DefaultConfig())

	var got []int
	for _, it := range res.items {
		if it.Kind == program.KindFiller {
			got = append(got, it.ID)
		}
	}
	if len(got) != 2 || got[0] != 100 || got[1] != 101 {
		t.Errorf("filler IDs = %v, want [100 101]", got)
	}
}

func TestMakeFiller(t *testing.T) {
	f := makeFiller(7, "Исаев")
	if f.ID != 7 || f.Kind != program.KindFiller {
		t.Errorf("makeFiller = %+v", f)
	}
	if !f.HasActor("Исаев") {
		t.Error("filler must carry its host as an actor")
	}
	if f.IsPerformance() {
		t.Error("fillers are not performances")
	}
}
