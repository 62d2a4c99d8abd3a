package program

// Status describes the outcome of building one arrangement.
type Status string

const (
	// StatusNormal is the trivial outcome for degenerate input (zero or
	// one performance); nothing was reordered and no fillers were used.
	StatusNormal Status = "normal"

	// StatusIdeal means the arrangement is free of strong conflicts and
	// every remaining weak conflict either vanished through reordering or
	// was separated by an inserted filler.
	StatusIdeal Status = "ideal"

	// StatusInfeasible means no ordering eliminates all strong conflicts,
	// or the filler budget cannot cover the residual weak conflicts. The
	// Items of an infeasible arrangement are best-effort only and must not
	// be published.
	StatusInfeasible Status = "infeasible"
)

// Diagnostics carries the feasibility numbers surfaced to callers when an
// arrangement cannot be completed.
type Diagnostics struct {
	// MinWeakNeeded is the smallest number of weak conflicts any ordering
	// leaves behind, i.e. the number of fillers required.
	MinWeakNeeded int `json:"min_weak_needed"`

	// AvailableFillerBudget is the filler budget remaining after the
	// program's pre-existing fillers are counted.
	AvailableFillerBudget int `json:"available_filler_budget"`
}

// Arrangement is a finished ordering of a program. Arrangements are value
// objects: once returned they are never mutated.
type Arrangement struct {
	Seed            int64       `json:"seed"`
	Items           []Item      `json:"items"`
	FillersInserted int         `json:"fillers_inserted"`
	StrongConflicts int         `json:"strong_conflicts"`
	WeakConflicts   int         `json:"weak_conflicts"`
	Status          Status      `json:"status"`
	Diagnostics     Diagnostics `json:"diagnostics"`
}

// Usable reports whether the arrangement's item order may be published.
func (ar Arrangement) Usable() bool {
	return ar.Status != StatusInfeasible
}
