package score_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nkorolko/castmatch/score"
)

func TestLinear_Schedule(t *testing.T) {
	// n=5: ranks 1..5 score 5..1.
	for rank := 1; rank <= 5; rank++ {
		require.Equal(t, 5-rank+1, score.Linear.Score(rank, 5), "rank %d", rank)
	}
}

func TestLinear_StrictlyMonotone(t *testing.T) {
	// Utility must drop by exactly 1 per rank step, for any n.
	for _, n := range []int{1, 2, 5, 12} {
		for rank := 1; rank < n; rank++ {
			require.Equal(t, 1,
				score.Linear.Score(rank, n)-score.Linear.Score(rank+1, n),
				"n=%d rank=%d", n, rank)
		}
		require.Equal(t, 1, score.Linear.Score(n, n))
	}
}

func TestWeighted_GoldenTable(t *testing.T) {
	// The exact step values are configuration constants; this is a
	// golden test, not an invariant derivation.
	want := map[int]int{1: 20, 2: 15, 3: 10, 4: 5, 5: 3, 6: 1, 7: 1, 40: 1}
	for rank, utility := range want {
		require.Equal(t, utility, score.Weighted.Score(rank, 40), "rank %d", rank)
	}
}

func TestWeighted_IndependentOfN(t *testing.T) {
	require.Equal(t, 20, score.Weighted.Score(1, 2))
	require.Equal(t, 20, score.Weighted.Score(1, 100))
}

func TestScore_UnrankedScoresZero(t *testing.T) {
	require.Equal(t, 0, score.Linear.Score(0, 5))
	require.Equal(t, 0, score.Weighted.Score(0, 5))
	require.Equal(t, 0, score.Linear.Score(-1, 5))
}

func TestParse_KnownNames(t *testing.T) {
	p, err := score.Parse("linear")
	require.NoError(t, err)
	require.Equal(t, score.Linear, p)

	p, err = score.Parse("weighted")
	require.NoError(t, err)
	require.Equal(t, score.Weighted, p)
}

func TestParse_UnknownName(t *testing.T) {
	_, err := score.Parse("quadratic")
	require.ErrorIs(t, err, score.ErrUnknownPolicy)
	require.Contains(t, err.Error(), `"quadratic"`)
}

func TestString_RoundTripsThroughParse(t *testing.T) {
	for _, p := range []score.Policy{score.Linear, score.Weighted} {
		got, err := score.Parse(p.String())
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
}
