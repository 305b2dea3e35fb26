// SPDX-License-Identifier: MIT

// Package assign - Kuhn–Munkres (Hungarian) exact solver.
//
// This file implements the primal-dual shortest-augmenting-path form of
// the algorithm. Maximization is converted to the native minimization
// by the affine shift cost = maxUtility − utility, which keeps every
// cost non-negative and leaves the optimal matching unchanged.
//
// Design principles (shared with the exhaustive oracle):
//   - Deterministic: tight-edge ties resolve to the lowest column index.
//   - No panics on user input; shape errors are caught before dispatch.
//   - Totals are re-derived from the original utility matrix, never
//     from shifted costs, to rule out sign and offset errors.

package assign

import "math"

// infCost is the "no tentative path yet" marker for slack values.
// Half of MaxInt so a single delta addition can never overflow.
const infCost = math.MaxInt / 2

// kuhnMunkres computes a minimum-cost perfect matching on the square
// non-negative cost matrix and returns match, where match[i] is the
// column assigned to row i.
//
// Method: one augmentation phase per row. A phase grows an alternating
// tree from the new row across "tight" edges — edges whose reduced cost
// cost[i][j] − u[i] − v[j] is zero — tracking for every column outside
// the tree the minimum slack to the tree's frontier. When no tight edge
// extends the tree, the duals u, v are shifted by that minimum slack
// (which creates at least one new tight edge) and the search resumes.
// Each phase does O(n²) work; n phases give O(n³) total.
//
// Internally rows and columns are shifted up by one so index 0 can act
// as the virtual root column of each phase's alternating tree.
//
// Determinism: both the slack minimum and the frontier scan iterate
// columns in ascending order with strict "<" comparisons, so among
// equally cheap columns the lowest index always wins.
//
// Complexity: O(n³) time, O(n) extra space per phase.
func kuhnMunkres(cost [][]int) []int {
	var n = len(cost)
	if n == 0 {
		return nil
	}

	var (
		u     = make([]int, n+1) // row duals, u[0] unused
		v     = make([]int, n+1) // column duals, v[0] is the root column
		rowAt = make([]int, n+1) // rowAt[j] = row matched to column j; 0 = free
		way   = make([]int, n+1) // way[j] = previous column on the path to j
	)

	var (
		row                int // the row being matched this phase
		i0, j0, j1, j      int // cursor row / current, next, scanned columns
		cur, delta         int // reduced cost of (i0,j); minimum frontier slack
		minv               []int
		used               []bool
	)
	for row = 1; row <= n; row++ {
		// Stage 1 - start a phase: hang row off the virtual root column.
		rowAt[0] = row
		j0 = 0
		minv = make([]int, n+1) // minv[j] = min slack from the tree to column j
		used = make([]bool, n+1)
		for j = 0; j <= n; j++ {
			minv[j] = infCost
		}

		// Stage 2 - grow the alternating tree until a free column is reached.
		for rowAt[j0] != 0 {
			used[j0] = true
			i0 = rowAt[j0]
			delta = infCost
			j1 = 0

			// Relax slacks from i0 toward every column outside the tree.
			for j = 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur = cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				// Strict "<" + ascending scan: lowest column wins ties.
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			// Dual update: tree edges stay tight, frontier slacks shrink
			// by delta, and column j1 becomes tight.
			for j = 0; j <= n; j++ {
				if used[j] {
					u[rowAt[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
		}

		// Stage 3 - augment: flip matched edges back along the path.
		for j0 != 0 {
			j1 = way[j0]
			rowAt[j0] = rowAt[j1]
			j0 = j1
		}
	}

	// Stage 4 - read the matching out of the column table.
	var match = make([]int, n)
	for j = 1; j <= n; j++ {
		match[rowAt[j]-1] = j - 1
	}

	return match
}

// exactSolve runs Kuhn–Munkres on a square utility matrix and returns
// match[i] = assigned column for row i. The cost shift uses the global
// maximum utility so all costs are non-negative.
//
// Complexity: O(n³) time on top of an O(n²) shift pass.
func exactSolve(cells [][]int) []int {
	var n = len(cells)
	if n == 0 {
		return nil
	}

	// Stage 1 - find the global maximum utility.
	var (
		maxUtil int
		i, j    int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if cells[i][j] > maxUtil {
				maxUtil = cells[i][j]
			}
		}
	}

	// Stage 2 - negate-and-shift into a non-negative cost matrix.
	var cost = make([][]int, n)
	for i = 0; i < n; i++ {
		cost[i] = make([]int, n)
		for j = 0; j < n; j++ {
			cost[i][j] = maxUtil - cells[i][j]
		}
	}

	// Stage 3 - minimize. Minimizing Σ(maxUtil − utility) over perfect
	// matchings is exactly maximizing Σ utility.
	return kuhnMunkres(cost)
}
