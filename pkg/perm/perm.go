// Package perm provides permutation enumeration and sampling utilities
// for the segment ordering search.
package perm

import (
	"math/rand/v2"
	"slices"
)

// Seq returns the identity permutation [0, 1, ..., n-1].
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	result := make([]int, max(n, 0))
	for i := range result {
		result[i] = i
	}
	return result
}

// Factorial returns n!, the size of the full permutation space.
// For n <= 1 it returns 1. Factorials overflow quickly: 13! already
// exceeds 32-bit int, so keep enumeration cutoffs well below that.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// Visit calls fn for every permutation of [0, 1, ..., n-1], generated
// with Heap's algorithm. The slice passed to fn is reused between calls;
// clone it if it must outlive the callback. Visiting stops early when fn
// returns false.
//
// Visit handles edge cases gracefully: n = 0 yields one empty
// permutation, n = 1 yields [0].
func Visit(n int, fn func(p []int) bool) {
	if n <= 0 {
		fn(nil)
		return
	}

	p := Seq(n)
	if !fn(p) {
		return
	}

	state := make([]int, n)
	for i := 0; i < n; {
		if state[i] < i {
			if i&1 == 0 {
				p[0], p[i] = p[i], p[0]
			} else {
				p[state[i]], p[i] = p[i], p[state[i]]
			}
			if !fn(p) {
				return
			}
			state[i]++
			i = 0
		} else {
			state[i] = 0
			i++
		}
	}
}

// Generate returns permutations of [0, 1, ..., n-1]. If limit > 0, at
// most limit permutations are returned; otherwise all n! of them. Each
// returned slice is an independent allocation.
func Generate(n, limit int) [][]int {
	capacity := limit
	if capacity <= 0 {
		capacity = Factorial(min(n, 12))
	}
	result := make([][]int, 0, capacity)
	Visit(n, func(p []int) bool {
		result = append(result, slices.Clone(p))
		return limit <= 0 || len(result) < limit
	})
	return result
}

// Shuffled returns a uniformly random permutation of [0, 1, ..., n-1]
// drawn from rng. Used by the sampling tier of the segment optimizer,
// where exhaustive enumeration is too expensive.
func Shuffled(n int, rng *rand.Rand) []int {
	p := Seq(n)
	rng.Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}
