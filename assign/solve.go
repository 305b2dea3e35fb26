// SPDX-License-Identifier: MIT

// Package assign - unified dispatcher for assignment solvers.
//
// Solve and SolveMatrix are the canonical entry points: strict shape
// validation first, then routing to the exact or exhaustive solver,
// then reconstruction of the public Result from the raw index-level
// assignment. There is no partial-success path — either a complete
// valid matching comes back or a sentinel error does.

package assign

import (
	"fmt"

	"github.com/nkorolko/castmatch/roster"
	"github.com/nkorolko/castmatch/score"
)

// Solve builds the utility matrix for rst under policy and solves it
// with the chosen algorithm.
//
// Contracts:
//   - rst must be non-nil with participant count == role count.
//   - Exhaustive requires at most MaxExhaustive participants.
//   - Identical input always yields an identical Result (determinism,
//     not just value-equality of the optimum).
//
// Errors: ErrNilRoster, ErrShapeMismatch, ErrSizeLimit,
// ErrUnknownAlgorithm.
//
// Complexity: O(n²) matrix build + per-algorithm solve cost
// (Exact O(n³), Exhaustive O(n!·n)).
func Solve(rst *roster.Roster, policy score.Policy, algo Algorithm) (Result, error) {
	if rst == nil {
		return Result{}, ErrNilRoster
	}

	return SolveMatrix(BuildMatrix(rst, policy), algo)
}

// SolveMatrix validates the matrix shape and routes to the chosen
// algorithm. The empty instance (n == 0) is valid and solves to an
// empty matching with total 0.
//
// Errors: ErrShapeMismatch, ErrSizeLimit, ErrUnknownAlgorithm.
func SolveMatrix(mtx Matrix, algo Algorithm) (Result, error) {
	// Stage 1 - shape validation.
	n, err := validateShape(mtx)
	if err != nil {
		return Result{}, fmt.Errorf("%d participants × %d roles: %w",
			len(mtx.Cells), len(mtx.Roles), err)
	}

	// Stage 2 - route by algorithm.
	var match []int
	switch algo {
	case Exact:
		match = exactSolve(mtx.Cells)
	case Exhaustive:
		// The size gate runs BEFORE any permutation is generated.
		if n > MaxExhaustive {
			return Result{}, fmt.Errorf("%d participants, limit %d: %w",
				n, MaxExhaustive, ErrSizeLimit)
		}
		match = exhaustiveSolve(mtx.Cells)
	default:
		return Result{}, fmt.Errorf("%s: %w", algo, ErrUnknownAlgorithm)
	}

	// Stage 3 - reconstruct the public Result. The total is re-derived
	// from the original utility matrix; solvers never report totals of
	// their own.
	var (
		res = Result{
			Matching: make(map[string]string, n),
			Details:  make([]Detail, 0, n),
		}
		d Detail
	)
	for i := 0; i < n; i++ {
		d = Detail{
			Participant: mtx.Participants[i],
			Role:        mtx.Roles[match[i]],
			Utility:     mtx.Cells[i][match[i]],
		}
		if mtx.Ranks != nil {
			d.Rank = mtx.Ranks[i][match[i]]
		}
		res.Matching[d.Participant] = d.Role
		res.Total += d.Utility
		res.Details = append(res.Details, d)
	}

	return res, nil
}
