package roster

import "errors"

// Sentinel errors returned by roster construction and decoding.
// All are matched via errors.Is; call sites may wrap them with
// fmt.Errorf("...: %w", Err...) to name the offending role/participant.
var (
	// ErrNoRoles indicates that New was called with an empty role list.
	ErrNoRoles = errors.New("roster: role list is empty")

	// ErrEmptyName indicates an empty role or participant name.
	ErrEmptyName = errors.New("roster: empty name")

	// ErrDuplicateRole indicates that the declared role list contains the
	// same role more than once.
	ErrDuplicateRole = errors.New("roster: duplicate role")

	// ErrDuplicateParticipant indicates that a participant with the same
	// name was already added. Rankings are immutable; re-adding is not an
	// update.
	ErrDuplicateParticipant = errors.New("roster: duplicate participant")

	// ErrRankingSize indicates that a ranking does not cover exactly the
	// declared number of roles.
	ErrRankingSize = errors.New("roster: ranking must cover every declared role")

	// ErrUnknownRole indicates that a ranking references a role that was
	// never declared.
	ErrUnknownRole = errors.New("roster: unknown role")

	// ErrRankingDuplicate indicates that a ranking lists some role twice,
	// so it cannot be a bijection onto the role set.
	ErrRankingDuplicate = errors.New("roster: ranking repeats a role")

	// ErrBadDocument indicates a structurally invalid roster document
	// (malformed JSON, or a missing roles/participants section).
	ErrBadDocument = errors.New("roster: malformed roster document")
)
