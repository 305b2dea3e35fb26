package score

import (
	"errors"
	"fmt"
)

// ErrUnknownPolicy indicates a policy name that is neither "linear" nor
// "weighted". Unknown names fail; they never fall back to a default.
var ErrUnknownPolicy = errors.New("score: unknown scoring policy")

// Policy selects a rank→utility conversion.
type Policy int

const (
	// Linear scores rank r out of n roles as n−r+1.
	Linear Policy = iota

	// Weighted scores ranks from a fixed step table that rewards top
	// choices disproportionately; see the package documentation.
	Weighted
)

// Weighted step table. Configuration constants, not derived from the
// role count: changing any of them changes every solved total.
const (
	weightedRank1 = 20
	weightedRank2 = 15
	weightedRank3 = 10
	weightedRank4 = 5
	weightedRank5 = 3
	weightedTail  = 1 // every rank ≥ 6
)

// String returns the canonical policy name, the same form Parse accepts.
func (p Policy) String() string {
	switch p {
	case Linear:
		return "linear"
	case Weighted:
		return "weighted"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Parse maps a policy name to its Policy.
//
// Errors: ErrUnknownPolicy, wrapped with the offending name.
func Parse(name string) (Policy, error) {
	switch name {
	case "linear":
		return Linear, nil
	case "weighted":
		return Weighted, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownPolicy)
	}
}

// Score converts a 1-indexed rank (1 = most preferred) into utility,
// given the total role count n. Rank 0 — "no ranking recorded" — scores
// 0 under every policy.
//
// An out-of-range Policy value panics: policies reach call sites only
// through the Linear/Weighted constants or Parse, so any other value is
// a programmer error, not user input.
//
// Complexity: O(1).
func (p Policy) Score(rank, n int) int {
	if rank < 1 {
		return 0
	}

	switch p {
	case Linear:
		return n - rank + 1
	case Weighted:
		switch rank {
		case 1:
			return weightedRank1
		case 2:
			return weightedRank2
		case 3:
			return weightedRank3
		case 4:
			return weightedRank4
		case 5:
			return weightedRank5
		default:
			return weightedTail
		}
	default:
		panic(fmt.Sprintf("score: invalid policy %d", int(p)))
	}
}
