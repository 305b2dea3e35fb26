// SPDX-License-Identifier: MIT

package assign

// CheckConstraints reports whether every participant's assigned role
// falls within maxRank of their declared preferences, and lists the
// participants who fell outside it.
//
// Policy: maxRank <= 0 means "no limit" — the absent constraint is
// vacuously satisfied and violations is nil.
//
// Pure and side-effect free: the Result is never altered. Violations
// follow res.Details order (participant insertion order).
//
// Complexity: O(n).
func CheckConstraints(res Result, maxRank int) (satisfied bool, violations []Violation) {
	if maxRank <= 0 {
		return true, nil
	}

	var d Detail
	for _, d = range res.Details {
		if d.Rank > maxRank {
			violations = append(violations, Violation{
				Participant: d.Participant,
				Role:        d.Role,
				Rank:        d.Rank,
			})
		}
	}

	return len(violations) == 0, violations
}
