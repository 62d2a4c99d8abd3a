package schedule

import (
	"math/rand/v2"
	"slices"
	"time"
)

// Seed value range. Small positive seeds are easy to read back from
// exported arrangements and to re-run by hand.
const (
	seedMin = 1000
	seedMax = 99999
)

// GenerateSeeds returns n distinct seeds derived from the current time.
// Two calls in the same millisecond return the same set; callers needing
// full reproducibility should use DeriveSeeds with a recorded base.
func GenerateSeeds(n int) []int64 {
	return DeriveSeeds(time.Now().UnixMilli()%10_000_000, n)
}

// DeriveSeeds returns n distinct seeds derived deterministically from
// base, sorted ascending.
func DeriveSeeds(base int64, n int) []int64 {
	rng := rand.New(rand.NewPCG(uint64(base), uint64(base)^seedMix))

	seen := make(map[int64]bool, n)
	seeds := make([]int64, 0, n)
	for len(seeds) < n {
		s := seedMin + rng.Int64N(seedMax-seedMin+1)
		if !seen[s] {
			seen[s] = true
			seeds = append(seeds, s)
		}
	}
	slices.Sort(seeds)
	return seeds
}
