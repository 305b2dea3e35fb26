// SPDX-License-Identifier: MIT

// Package assign solves the role-casting assignment problem: a
// one-to-one pairing of participants to roles maximizing total utility.
//
// The pipeline is:
//
//	roster.Roster + score.Policy
//	    │ BuildMatrix            — dense m×n utility matrix (matrix.go)
//	    ▼
//	Matrix ──ExactSolve──────────► Result   (Kuhn–Munkres, O(n³))
//	       └─ExhaustiveSolve─────► Result   (all n! permutations, n ≤ 8)
//	    │ CheckConstraints        — optional max-rank validation
//	    ▼
//	reporting collaborators (report/, cmd/castmatch)
//
// Algorithms:
//
//   - Exact — the Kuhn–Munkres (Hungarian) primal-dual method over
//     cost = maxUtility − utility. One augmentation phase per row,
//     each phase O(n²) via shortest-augmenting-path search over tight
//     edges, giving O(n³) total. Ties between equally tight columns
//     are broken toward the lowest column index, so repeated runs on
//     identical input are bit-for-bit identical.
//
//   - Exhaustive — enumerates every role permutation in lexicographic
//     order and keeps the first one attaining the maximum total.
//     Strictly bounded to n ≤ MaxExhaustive (8! = 40320 permutations);
//     larger requests fail with ErrSizeLimit before any enumeration.
//     Retained as an independent correctness oracle for the exact
//     solver: on any instance both must report the same Total.
//
// Determinism: each solver is individually deterministic, but when
// several matchings tie at the optimal total the two solvers are NOT
// required to pick the same one — only the total must agree. This is
// deliberate, documented non-determinism in matching choice, not a bug.
//
// Errors (sentinel):
//
//	– ErrNilRoster        if Solve is given a nil roster.
//	– ErrShapeMismatch    if the matrix is ragged or non-square
//	                      (participant count ≠ role count).
//	– ErrSizeLimit        if an exhaustive solve exceeds MaxExhaustive.
//	– ErrUnknownAlgorithm if the algorithm selector is invalid.
//
// There is no partial-success mode: a call returns either a complete
// valid matching or an error, never both.
package assign
