// SPDX-License-Identifier: MIT

// Package assign - exhaustive permutation oracle.
//
// The brute-force solver exists to validate the exact solver, not to
// compete with it: factorial growth makes it unusable past
// MaxExhaustive participants, and the dispatcher enforces that bound
// before a single permutation is generated.

package assign

import "math"

// MaxExhaustive is the largest instance the exhaustive solver accepts.
// 8! = 40320 permutations is the practical ceiling for interactive use;
// anything larger fails with ErrSizeLimit instead of degrading silently.
const MaxExhaustive = 8

// permuter lazily yields every permutation of 0..n-1 in lexicographic
// order. It is finite and non-restartable: once exhausted it only
// reports done. The lazy form keeps the enumeration loop open to
// future early-exit layers (caller time budgets, chunked search)
// without restructuring the solver.
type permuter struct {
	perm    []int
	started bool
	done    bool
}

// newPermuter returns a permuter positioned before the identity
// permutation. n == 0 yields a single empty permutation.
func newPermuter(n int) *permuter {
	var p = &permuter{perm: make([]int, n)}
	for i := 0; i < n; i++ {
		p.perm[i] = i
	}

	return p
}

// Next yields the next permutation, or ok=false when exhausted.
//
// The returned slice is the iterator's internal buffer, valid only
// until the following Next call; callers that retain it must copy.
//
// Complexity: amortized O(1) per permutation, O(n) worst case.
func (p *permuter) Next() (perm []int, ok bool) {
	if p.done {
		return nil, false
	}
	if !p.started {
		// First call yields the identity permutation as-is.
		p.started = true

		return p.perm, true
	}

	// Standard lexicographic successor:
	// 1) rightmost ascent k with perm[k] < perm[k+1];
	var k = len(p.perm) - 2
	for k >= 0 && p.perm[k] >= p.perm[k+1] {
		k--
	}
	if k < 0 {
		// Fully descending ⇒ the last permutation was already yielded.
		p.done = true

		return nil, false
	}

	// 2) rightmost l > k with perm[k] < perm[l]; swap;
	var l = len(p.perm) - 1
	for p.perm[k] >= p.perm[l] {
		l--
	}
	p.perm[k], p.perm[l] = p.perm[l], p.perm[k]

	// 3) reverse the suffix after k.
	for i, j := k+1, len(p.perm)-1; i < j; i, j = i+1, j-1 {
		p.perm[i], p.perm[j] = p.perm[j], p.perm[i]
	}

	return p.perm, true
}

// exhaustiveSolve scans every role permutation of the square utility
// matrix and returns the maximizing assignment match[i] = column for
// row i, keeping the FIRST permutation attaining the maximum under
// lexicographic enumeration order. That choice pins down which optimal
// matching is reported, not the optimal value itself — the value must
// always equal the exact solver's on the same input.
//
// The caller is responsible for the MaxExhaustive gate; this function
// assumes it already passed.
//
// Complexity: O(n!·n) time, O(n) space.
func exhaustiveSolve(cells [][]int) []int {
	var n = len(cells)
	if n == 0 {
		return nil
	}

	var (
		iter      = newPermuter(n)
		best      []int
		// Seed below every representable total so the first permutation
		// always wins. Utilities are non-negative by contract, but a
		// caller-built matrix can violate that; the scan must still
		// return a complete matching, exactly as the exact solver does.
		bestTotal = math.MinInt
		perm      []int
		ok        bool
		total, i  int
	)
	for {
		perm, ok = iter.Next()
		if !ok {
			break
		}
		total = 0
		for i = 0; i < n; i++ {
			total += cells[i][perm[i]]
		}
		// Strict ">" keeps the first permutation among equal totals.
		if total > bestTotal {
			bestTotal = total
			best = append(best[:0], perm...)
		}
	}

	return best
}
