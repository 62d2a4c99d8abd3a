package schedule

import (
	"context"
	"math"

	"github.com/ershov-z/stageflow/pkg/conflict"
	"github.com/ershov-z/stageflow/pkg/program"
)

// dpCancelStride is how many DP subsets are processed between context
// checks.
const dpCancelStride = 4096

// heldKarpPath finds a minimum-cost ordering of items between the
// optional boundary anchors left and right: a shortest Hamiltonian path
// where a strong conflict is a forbidden (+Inf) edge.
//
// It returns the ordering as a permutation of item indices together with
// its cost. A nil path means no strong-conflict-free ordering exists.
//
// dp[mask][j] is the cheapest way to place exactly the items in mask
// with item j last, including the left-boundary cost of the first item.
// Time O(2^n · n^2), memory O(2^n · n); callers bound n via
// Config.DPCutoff.
func heldKarpPath(ctx context.Context, left *program.Item, items []program.Item, right *program.Item) ([]int, float64, error) {
	n := len(items)
	if n == 0 {
		return []int{}, 0, nil
	}

	// Pairwise adjacency costs, plus boundary costs per item.
	edge := make([][]float64, n)
	startCost := make([]float64, n)
	endCost := make([]float64, n)
	for i := range items {
		edge[i] = make([]float64, n)
		for j := range items {
			if i != j {
				edge[i][j] = conflict.Cost(items[i], items[j])
			}
		}
		if left != nil {
			startCost[i] = conflict.Cost(*left, items[i])
		}
		if right != nil {
			endCost[i] = conflict.Cost(items[i], *right)
		}
	}

	size := 1 << n
	dp := make([][]float64, size)
	parent := make([][]int8, size)
	for mask := 0; mask < size; mask++ {
		dp[mask] = make([]float64, n)
		parent[mask] = make([]int8, n)
		for j := range dp[mask] {
			dp[mask][j] = math.Inf(1)
			parent[mask][j] = -1
		}
	}
	for i := 0; i < n; i++ {
		dp[1<<i][i] = startCost[i]
	}

	for mask := 1; mask < size; mask++ {
		if mask%dpCancelStride == 0 {
			if err := ctx.Err(); err != nil {
				return nil, 0, err
			}
		}
		for j := 0; j < n; j++ {
			if mask&(1<<j) == 0 || math.IsInf(dp[mask][j], 1) {
				continue
			}
			base := dp[mask][j]
			for k := 0; k < n; k++ {
				if mask&(1<<k) != 0 || math.IsInf(edge[j][k], 1) {
					continue
				}
				next := mask | 1<<k
				if cand := base + edge[j][k]; cand < dp[next][k] {
					dp[next][k] = cand
					parent[next][k] = int8(j)
				}
			}
		}
	}

	// Close against the right boundary.
	full := size - 1
	best := math.Inf(1)
	last := -1
	for j := 0; j < n; j++ {
		if math.IsInf(dp[full][j], 1) {
			continue
		}
		total := dp[full][j] + endCost[j]
		if total < best {
			best = total
			last = j
		}
	}
	if last < 0 {
		return nil, math.Inf(1), nil
	}

	path := make([]int, n)
	mask := full
	for i := n - 1; i >= 0; i-- {
		path[i] = last
		prev := parent[mask][last]
		mask ^= 1 << last
		last = int(prev)
	}
	return path, best, nil
}
