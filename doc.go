// Package castmatch assigns a fixed set of distinct roles to a fixed
// set of participants, one role each, maximizing total satisfaction
// derived from per-participant ranked preferences.
//
// 🚀 What is castmatch?
//
//	A small, deterministic assignment-solving library built around the
//	classic weighted bipartite perfect-matching problem:
//		• roster/ — declared role set + full preference rankings,
//		  validated as bijections at construction time
//		• score/  — rank→utility scoring policies (linear, weighted)
//		• assign/ — utility matrix builder, Kuhn–Munkres exact solver
//		  (O(n³)), exhaustive permutation oracle (n ≤ 8), constraint
//		  checker
//		• report/ — table rendering of a solved casting
//		• cmd/castmatch — CLI over a JSON roster file
//
// ✨ Why choose castmatch?
//
//   - Provably optimal – exact primal-dual solver, cross-checked by an
//     independent brute-force oracle in tests
//   - Deterministic – identical input always yields an identical
//     matching, bit for bit
//   - Strict – invalid rankings, unknown policies and oversized
//     exhaustive solves fail fast with sentinel errors; nothing is
//     silently defaulted
//   - Pure Go – no cgo, in-memory computation only, no hidden state
//
// Quick example:
//
//	r, _ := roster.New([]string{"X", "Y", "Z"})
//	_ = r.AddParticipant("P1", []string{"X", "Y", "Z"})
//	_ = r.AddParticipant("P2", []string{"Y", "Z", "X"})
//	_ = r.AddParticipant("P3", []string{"Z", "X", "Y"})
//	res, _ := assign.Solve(r, score.Linear, assign.Exact)
//	// res.Matching == {"P1":"X", "P2":"Y", "P3":"Z"}, res.Total == 9
//
//	go get github.com/nkorolko/castmatch
package castmatch
