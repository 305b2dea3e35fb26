// Package score converts a participant's declared preference rank into
// a non-negative integer utility.
//
// Two policies are provided:
//
//   - Linear   — utility = n − rank + 1 for n roles. Strictly decreases
//     by exactly 1 per rank step: rank 1 scores n, rank n scores 1.
//   - Weighted — a fixed step table favoring top choices sharply:
//     rank 1→20, 2→15, 3→10, 4→5, 5→3, rank ≥ 6→1. The table is a
//     configuration constant, independent of n; the exact values are
//     relied on by golden tests and must not drift.
//
// A rank of 0 (no ranking recorded) always scores 0 under either
// policy; the roster construction surface makes such ranks impossible,
// so a 0 here can only come from a caller that bypassed validation.
//
// Parse maps a policy name to a Policy and rejects anything else with
// ErrUnknownPolicy — there is no silent default.
package score
