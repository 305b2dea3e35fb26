// SPDX-License-Identifier: MIT
// Package assign: sentinel error set and public result types.
// Algorithms MUST return these sentinels and tests MUST check them via
// errors.Is. No algorithm panics on user-triggered error conditions.

package assign

import (
	"errors"
	"fmt"
)

var (
	// ErrNilRoster indicates that a nil *roster.Roster was passed to Solve.
	ErrNilRoster = errors.New("assign: roster is nil")

	// ErrShapeMismatch indicates a ragged utility matrix, or a non-square
	// one: a perfect matching requires participant count == role count.
	ErrShapeMismatch = errors.New("assign: participant and role counts must match")

	// ErrSizeLimit indicates an exhaustive solve request above
	// MaxExhaustive. The permutation search is never started.
	ErrSizeLimit = errors.New("assign: instance too large for exhaustive search")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the
	// declared set, or an unrecognized name given to ParseAlgorithm.
	ErrUnknownAlgorithm = errors.New("assign: unknown algorithm")
)

// Algorithm selects which solver Solve routes to.
type Algorithm int

const (
	// Exact is the Kuhn–Munkres solver; the production default.
	Exact Algorithm = iota

	// Exhaustive is the brute-force permutation oracle, valid only for
	// instances with at most MaxExhaustive participants.
	Exhaustive
)

// String returns the canonical algorithm name, the same form
// ParseAlgorithm accepts.
func (a Algorithm) String() string {
	switch a {
	case Exact:
		return "exact"
	case Exhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps an algorithm name to its Algorithm.
//
// Errors: ErrUnknownAlgorithm, wrapped with the offending name.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "exact":
		return Exact, nil
	case "exhaustive":
		return Exhaustive, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}
}

// Detail is the read-only record for one matched pair. Never mutated
// after the solver produces it.
type Detail struct {
	Participant string
	Role        string

	// Utility is the matrix cell for this pair under the policy the
	// matrix was built with.
	Utility int

	// Rank is the participant's declared 1-indexed rank for the role,
	// or 0 when the matrix carried no rank information.
	Rank int
}

// Result is a completed solve: a perfect matching, its total utility,
// and the per-pair details.
//
// Invariants (relied on by reporting collaborators):
//   - Matching is a bijection: every participant maps to exactly one
//     role and every role is claimed by exactly one participant.
//   - Details is ordered by participant index (stable across runs) and
//     Total equals the exact sum of Detail.Utility values.
type Result struct {
	Matching map[string]string
	Total    int
	Details  []Detail
}

// Violation reports one participant whose assigned role fell outside a
// rank threshold; see CheckConstraints.
type Violation struct {
	Participant string
	Role        string
	Rank        int
}
