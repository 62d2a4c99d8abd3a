package schedule

import (
	"github.com/ershov-z/stageflow/pkg/errors"
)

// Default values for Config. These are the single source of truth for
// the CLI, the TOML config file, and library callers.
const (
	// DefaultMaxFillerBudget caps the total number of fillers in a
	// program, pre-existing ones included.
	DefaultMaxFillerBudget = 3

	// DefaultLeadAnchors is the number of leading performances pinned to
	// their input positions.
	DefaultLeadAnchors = 2

	// DefaultTrailAnchors is the number of trailing performances pinned
	// to their input positions.
	DefaultTrailAnchors = 4

	// DefaultExhaustiveCutoff is the largest segment size enumerated
	// exhaustively (7! = 5040 orderings keeps worst-case work bounded).
	DefaultExhaustiveCutoff = 7

	// DefaultDPCutoff is the largest segment size solved exactly with the
	// bitmask DP before the optimizer falls back to sampling.
	DefaultDPCutoff = 15

	// DefaultDiversityCap bounds how many equal-cost orderings of one
	// segment are retained for seed-based tie-breaking.
	DefaultDiversityCap = 32

	// DefaultSampleBudget is the base number of random orderings drawn
	// for oversized segments; the effective budget shrinks as the
	// segment grows.
	DefaultSampleBudget = 20000

	// DefaultVariants is the number of arrangements a variant run aims for.
	DefaultVariants = 5
)

// DefaultFillerHosts is the host-actor priority list for inserted
// fillers, in preference order.
var DefaultFillerHosts = []string{"Пушкин", "Исаев"}

// Config carries every tunable of the scheduling core. The zero value is
// not usable; start from DefaultConfig or call Normalize to fill in
// defaults. Zero-valued fields mean "use the default"; to disable
// anchor pinning or the filler budget entirely, set the count negative.
type Config struct {
	MaxFillerBudget  int      `toml:"max_filler_budget"`
	LeadAnchors      int      `toml:"lead_anchors"`
	TrailAnchors     int      `toml:"trail_anchors"`
	ExhaustiveCutoff int      `toml:"exhaustive_cutoff"`
	DPCutoff         int      `toml:"dp_cutoff"`
	DiversityCap     int      `toml:"diversity_cap"`
	SampleBudget     int      `toml:"sample_budget"`
	FillerHosts      []string `toml:"filler_hosts"`
	Variants         int      `toml:"variants"`
}

// DefaultConfig returns the configuration used when the caller supplies
// nothing.
func DefaultConfig() Config {
	return Config{
		MaxFillerBudget:  DefaultMaxFillerBudget,
		LeadAnchors:      DefaultLeadAnchors,
		TrailAnchors:     DefaultTrailAnchors,
		ExhaustiveCutoff: DefaultExhaustiveCutoff,
		DPCutoff:         DefaultDPCutoff,
		DiversityCap:     DefaultDiversityCap,
		SampleBudget:     DefaultSampleBudget,
		FillerHosts:      DefaultFillerHosts,
		Variants:         DefaultVariants,
	}
}

// Normalize fills zero-valued fields with defaults and validates the
// result. It returns the completed config so callers can chain it.
func (c Config) Normalize() (Config, error) {
	d := DefaultConfig()
	if c.MaxFillerBudget == 0 {
		c.MaxFillerBudget = d.MaxFillerBudget
	}
	if c.LeadAnchors == 0 {
		c.LeadAnchors = d.LeadAnchors
	}
	if c.TrailAnchors == 0 {
		c.TrailAnchors = d.TrailAnchors
	}
	if c.ExhaustiveCutoff == 0 {
		c.ExhaustiveCutoff = d.ExhaustiveCutoff
	}
	if c.DPCutoff == 0 {
		c.DPCutoff = d.DPCutoff
	}
	if c.DiversityCap == 0 {
		c.DiversityCap = d.DiversityCap
	}
	if c.SampleBudget == 0 {
		c.SampleBudget = d.SampleBudget
	}
	if len(c.FillerHosts) == 0 {
		c.FillerHosts = d.FillerHosts
	}
	if c.Variants == 0 {
		c.Variants = d.Variants
	}

	// Negative counts mean "none at all" and collapse to zero: anchors
	// pin nothing, the filler budget allows no fillers.
	c.LeadAnchors = max(c.LeadAnchors, 0)
	c.TrailAnchors = max(c.TrailAnchors, 0)
	c.MaxFillerBudget = max(c.MaxFillerBudget, 0)

	switch {
	case c.ExhaustiveCutoff < 1:
		return c, errors.New(errors.ErrCodeInvalidConfig, "exhaustive_cutoff must be >= 1, got %d", c.ExhaustiveCutoff)
	case c.ExhaustiveCutoff > 10:
		// 11! is already ~40M orderings; the DP tier exists for this range.
		return c, errors.New(errors.ErrCodeInvalidConfig, "exhaustive_cutoff must be <= 10, got %d (use the DP tier for larger segments)", c.ExhaustiveCutoff)
	case c.DPCutoff < c.ExhaustiveCutoff:
		return c, errors.New(errors.ErrCodeInvalidConfig, "dp_cutoff (%d) must be >= exhaustive_cutoff (%d)", c.DPCutoff, c.ExhaustiveCutoff)
	case c.DPCutoff > 20:
		return c, errors.New(errors.ErrCodeInvalidConfig, "dp_cutoff must be <= 20, got %d", c.DPCutoff)
	case c.DiversityCap < 1:
		return c, errors.New(errors.ErrCodeInvalidConfig, "diversity_cap must be >= 1, got %d", c.DiversityCap)
	case c.SampleBudget < 1:
		return c, errors.New(errors.ErrCodeInvalidConfig, "sample_budget must be >= 1, got %d", c.SampleBudget)
	case c.Variants < 1:
		return c, errors.New(errors.ErrCodeInvalidConfig, "variants must be >= 1, got %d", c.Variants)
	}
	return c, nil
}
