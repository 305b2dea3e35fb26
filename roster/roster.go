package roster

import "fmt"

// Roster holds the declared role set and every participant's preference
// ranking, interned to dense integer indices.
//
// Invariants (established at construction, never revalidated later):
//   - roles are distinct and non-empty; their order is the declaration
//     order and is stable for the roster's lifetime.
//   - each participant's ranking is a bijection onto the role set.
//
// The zero value is not usable; construct with New.
type Roster struct {
	roles     []string       // role index -> name, declaration order
	roleIndex map[string]int // role name -> dense index

	participants []string       // participant index -> name, insertion order
	partIndex    map[string]int // participant name -> dense index

	// ranks[i][j] holds participant i's 1-indexed rank for role j
	// (1 = most preferred, n = least). 0 would mean "no rank recorded",
	// which the construction surface makes impossible; downstream
	// consumers still treat 0 as zero utility for defensive completeness.
	ranks [][]int
}

// New declares the fixed role set and returns an empty roster over it.
//
// Contract: roles must be non-empty, with distinct, non-empty names.
//
// Errors: ErrNoRoles, ErrEmptyName, ErrDuplicateRole.
//
// Complexity: O(n) time and space, n = len(roles).
func New(roles []string) (*Roster, error) {
	if len(roles) == 0 {
		return nil, ErrNoRoles
	}

	var (
		r    *Roster
		name string
		j    int
		ok   bool
	)
	r = &Roster{
		roles:     make([]string, len(roles)),
		roleIndex: make(map[string]int, len(roles)),
		partIndex: make(map[string]int),
	}
	for j, name = range roles { // intern each declared role
		if name == "" {
			return nil, fmt.Errorf("role at position %d: %w", j, ErrEmptyName)
		}
		if _, ok = r.roleIndex[name]; ok {
			return nil, fmt.Errorf("role %q: %w", name, ErrDuplicateRole)
		}
		r.roles[j] = name
		r.roleIndex[name] = j
	}

	return r, nil
}

// AddParticipant records one participant's ranking over all declared
// roles, ordered from most- to least-preferred. The entry is immutable
// once added.
//
// Contract: ranking must be a full permutation of the declared roles.
// A violation is reported at this call; it is never masked downstream
// as a zero utility.
//
// Errors: ErrEmptyName, ErrDuplicateParticipant, ErrRankingSize,
// ErrUnknownRole, ErrRankingDuplicate.
//
// Complexity: O(n) time and space.
func (r *Roster) AddParticipant(name string, ranking []string) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := r.partIndex[name]; ok {
		return fmt.Errorf("participant %q: %w", name, ErrDuplicateParticipant)
	}
	if len(ranking) != len(r.roles) {
		return fmt.Errorf("participant %q ranked %d of %d roles: %w",
			name, len(ranking), len(r.roles), ErrRankingSize)
	}

	// Translate the ranking into per-role ranks, checking the bijection:
	// every entry must be a declared role, and no role may repeat. Since
	// len(ranking) == n, "each exactly once" follows from "no repeats".
	var (
		row  = make([]int, len(r.roles))
		role string
		pos  int
		j    int
		ok   bool
	)
	for pos, role = range ranking {
		j, ok = r.roleIndex[role]
		if !ok {
			return fmt.Errorf("participant %q ranked %q: %w", name, role, ErrUnknownRole)
		}
		if row[j] != 0 {
			return fmt.Errorf("participant %q ranked %q twice: %w", name, role, ErrRankingDuplicate)
		}
		row[j] = pos + 1 // 1-indexed rank
	}

	r.partIndex[name] = len(r.participants)
	r.participants = append(r.participants, name)
	r.ranks = append(r.ranks, row)

	return nil
}

// NumRoles reports the declared role count n.
func (r *Roster) NumRoles() int { return len(r.roles) }

// NumParticipants reports how many participants were added.
func (r *Roster) NumParticipants() int { return len(r.participants) }

// RoleAt returns the role name at dense index j (declaration order).
// Panics on out-of-range j: index arithmetic is a programmer error,
// not user input.
func (r *Roster) RoleAt(j int) string { return r.roles[j] }

// ParticipantAt returns the participant name at dense index i
// (insertion order).
func (r *Roster) ParticipantAt(i int) string { return r.participants[i] }

// Roles returns a copy of the declared role list in declaration order.
func (r *Roster) Roles() []string {
	return append([]string(nil), r.roles...)
}

// Participants returns a copy of the participant list in insertion order.
func (r *Roster) Participants() []string {
	return append([]string(nil), r.participants...)
}

// RankAt returns participant i's 1-indexed rank for role j, or 0 if no
// rank is recorded (impossible through the public construction surface,
// but defined so callers need no special case).
//
// Complexity: O(1).
func (r *Roster) RankAt(i, j int) int { return r.ranks[i][j] }

// Rank resolves names to indices and returns the 1-indexed rank a
// participant gave a role. ok is false when either name is unknown.
//
// Complexity: O(1).
func (r *Roster) Rank(participant, role string) (rank int, ok bool) {
	var i, j int
	if i, ok = r.partIndex[participant]; !ok {
		return 0, false
	}
	if j, ok = r.roleIndex[role]; !ok {
		return 0, false
	}

	return r.ranks[i][j], true
}
