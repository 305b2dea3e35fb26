// Package roster stores the fixed role set and the per-participant
// preference rankings the assignment engine solves over.
//
// A Roster is built in two steps:
//
//  1. New(roles) declares the complete, duplicate-free role set.
//     Its cardinality n is fixed for the lifetime of the roster.
//  2. AddParticipant(name, ranking) records one participant's total
//     order over all n roles, from most- to least-preferred. The
//     ranking must be a full permutation of the declared roles —
//     every role exactly once, no omissions, no repeats. Anything
//     else is a construction-time error, never a runtime fallback.
//
// Entries are immutable once added: there is no update-in-place API,
// so a roster handed to a solver cannot change under it.
//
// Internally every name is interned to a dense integer index once, at
// construction. Solvers work purely over those indices (see
// assign.BuildMatrix); names reappear only at the public surface via
// ParticipantAt/RoleAt.
//
// Errors (sentinel):
//
//	– ErrNoRoles              if New is given an empty role list.
//	– ErrEmptyName            if a role or participant name is "".
//	– ErrDuplicateRole        if the declared role list repeats a role.
//	– ErrDuplicateParticipant if a participant name is added twice.
//	– ErrRankingSize          if a ranking's length ≠ declared role count.
//	– ErrUnknownRole          if a ranking names an undeclared role.
//	– ErrRankingDuplicate     if a ranking repeats a role (not a bijection).
//	– ErrBadDocument          if DecodeJSON is given a malformed document.
//
// Complexity: New is O(n), AddParticipant is O(n), Rank lookups are O(1).
package roster
