package assign_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nkorolko/castmatch/assign"
	"github.com/nkorolko/castmatch/roster"
	"github.com/nkorolko/castmatch/score"
)

func TestCheckConstraints_RotationWithinRankOne(t *testing.T) {
	// Everyone got their first choice, so max-rank 1 is satisfied with
	// no violations.
	res, err := assign.Solve(rotationRoster(t), score.Linear, assign.Exact)
	require.NoError(t, err)

	satisfied, violations := assign.CheckConstraints(res, 1)
	require.True(t, satisfied)
	require.Empty(t, violations)
}

func TestCheckConstraints_ReportsOffenders(t *testing.T) {
	// Colliding preferences: someone must take rank 2, so max-rank 1
	// fails and names exactly that participant.
	r, err := roster.New([]string{"A", "B"})
	require.NoError(t, err)
	require.NoError(t, r.AddParticipant("P1", []string{"A", "B"}))
	require.NoError(t, r.AddParticipant("P2", []string{"A", "B"}))

	res, err := assign.Solve(r, score.Linear, assign.Exact)
	require.NoError(t, err)

	satisfied, violations := assign.CheckConstraints(res, 1)
	require.False(t, satisfied)
	require.Len(t, violations, 1)
	require.Equal(t, 2, violations[0].Rank)
	require.Equal(t, "B", violations[0].Role)

	// Rank 2 is within a max-rank of 2.
	satisfied, violations = assign.CheckConstraints(res, 2)
	require.True(t, satisfied)
	require.Empty(t, violations)
}

func TestCheckConstraints_NoThresholdIsVacuousPass(t *testing.T) {
	res, err := assign.Solve(rotationRoster(t), score.Linear, assign.Exact)
	require.NoError(t, err)

	for _, maxRank := range []int{0, -1} {
		satisfied, violations := assign.CheckConstraints(res, maxRank)
		require.True(t, satisfied, "maxRank=%d", maxRank)
		require.Nil(t, violations, "maxRank=%d", maxRank)
	}
}

func TestCheckConstraints_DoesNotMutateResult(t *testing.T) {
	res, err := assign.Solve(rotationRoster(t), score.Linear, assign.Exact)
	require.NoError(t, err)
	before := res

	_, _ = assign.CheckConstraints(res, 1)
	require.Equal(t, before, res)
}
