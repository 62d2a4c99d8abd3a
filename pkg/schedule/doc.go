// Package schedule assembles concert programs: it reorders movable
// performances so that no two adjacent ones violate hard placement
// rules, minimizes the remaining soft conflicts, and separates the
// junctions it cannot reorder away with a bounded number of neutral
// filler items.
//
// # Pipeline
//
// A scheduling run flows through four stages:
//
//  1. Partition: split the input into immovable anchors (preludes,
//     sponsor blocks, pre-existing fillers, the fixed leading and
//     trailing performances) and the movable segments between them.
//  2. Optimize: reorder each segment to minimize conflict cost, with
//     exact enumeration for small segments, bitmask DP for mid-size
//     ones and bounded random sampling beyond that.
//  3. Build: concatenate anchors and optimized segments into the ideal
//     order and decide feasibility against the filler budget.
//  4. Fill: insert fillers at the weak-conflict junctions that survived
//     reordering, subject to the budget.
//
// GenerateVariants repeats the run with distinct seeds and deduplicates
// the results by content hash, producing several visibly different but
// equally legal arrangements.
//
// # Concurrency
//
// Every entry point is a pure function over an immutable item snapshot:
// it takes a read-only item list, a seed and a Config, and returns new
// value objects. Randomness comes from an explicit per-call generator
// seeded with the given seed, and cancellation from the caller's
// context, checked between permutation batches. Concurrent runs cannot
// interfere with each other.
package schedule
