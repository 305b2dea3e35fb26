// SPDX-License-Identifier: MIT

package assign

import (
	"github.com/nkorolko/castmatch/roster"
	"github.com/nkorolko/castmatch/score"
)

// Matrix is a dense m×n utility table plus the index orderings used to
// interpret its rows and columns. It is a pure derivation of roster ×
// policy: immutable once built, rebuilt on demand, never cached across
// policy switches.
type Matrix struct {
	// Participants orders the rows (roster insertion order).
	Participants []string

	// Roles orders the columns (roster declaration order).
	Roles []string

	// Cells[i][j] is the non-negative utility participant i derives
	// from role j under the policy the matrix was built with.
	Cells [][]int

	// Ranks[i][j] is participant i's declared 1-indexed rank for role
	// j, carried along so solvers can attach ranks to details. May be
	// nil for caller-built matrices; details then report Rank 0.
	Ranks [][]int
}

// BuildMatrix derives the utility matrix for a roster under a policy.
//
// Row order follows participant insertion order; column order follows
// role declaration order. Both are stable for the roster's lifetime,
// so solver output indices always map back consistently.
//
// A rank of 0 — "no ranking recorded" — scores 0. The roster's
// construction surface makes that unreachable; the case is handled
// here only so the derivation is total. A partial ranking must fail at
// roster construction, never be masked as a zero utility here.
//
// Complexity: O(m·n) time and space.
func BuildMatrix(r *roster.Roster, p score.Policy) Matrix {
	var (
		m     = r.NumParticipants()
		n     = r.NumRoles()
		cells = make([][]int, m)
		ranks = make([][]int, m)
		i, j  int
		rank  int
	)
	for i = 0; i < m; i++ {
		cells[i] = make([]int, n)
		ranks[i] = make([]int, n)
		for j = 0; j < n; j++ {
			rank = r.RankAt(i, j)
			ranks[i][j] = rank
			cells[i][j] = p.Score(rank, n)
		}
	}

	return Matrix{
		Participants: r.Participants(),
		Roles:        r.Roles(),
		Cells:        cells,
		Ranks:        ranks,
	}
}

// validateShape checks that the matrix is well-formed and square,
// returning its order n.
//
// Contract: len(Cells) == len(Participants), every row spans len(Roles)
// columns, Ranks (when present) mirrors the Cells shape, and the matrix
// is square (m == n). n == 0 is valid: the empty instance solves to an
// empty matching.
//
// Complexity: O(m).
func validateShape(mtx Matrix) (int, error) {
	var (
		m = len(mtx.Cells)
		n = len(mtx.Roles)
		i int
	)
	if len(mtx.Participants) != m {
		return 0, ErrShapeMismatch
	}
	for i = 0; i < m; i++ {
		if len(mtx.Cells[i]) != n {
			return 0, ErrShapeMismatch
		}
	}
	if mtx.Ranks != nil {
		if len(mtx.Ranks) != m {
			return 0, ErrShapeMismatch
		}
		for i = 0; i < m; i++ {
			if len(mtx.Ranks[i]) != n {
				return 0, ErrShapeMismatch
			}
		}
	}
	// Perfect matching requires a square instance.
	if m != n {
		return 0, ErrShapeMismatch
	}

	return n, nil
}
