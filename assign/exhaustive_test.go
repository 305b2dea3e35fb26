package assign

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermuter_LexicographicOrder(t *testing.T) {
	want := [][]int{
		{0, 1, 2},
		{0, 2, 1},
		{1, 0, 2},
		{1, 2, 0},
		{2, 0, 1},
		{2, 1, 0},
	}

	iter := newPermuter(3)
	for i, expect := range want {
		perm, ok := iter.Next()
		require.True(t, ok, "permutation %d", i)
		require.Equal(t, expect, perm)
	}

	// Exhausted and non-restartable.
	_, ok := iter.Next()
	require.False(t, ok)
	_, ok = iter.Next()
	require.False(t, ok)
}

func TestPermuter_EmptyYieldsOnce(t *testing.T) {
	iter := newPermuter(0)
	perm, ok := iter.Next()
	require.True(t, ok)
	require.Empty(t, perm)
	_, ok = iter.Next()
	require.False(t, ok)
}

func TestPermuter_CountsFactorial(t *testing.T) {
	iter := newPermuter(5)
	count := 0
	for {
		if _, ok := iter.Next(); !ok {
			break
		}
		count++
	}
	require.Equal(t, 120, count)
}

func TestExhaustiveSolve_KeepsFirstOptimum(t *testing.T) {
	// Every matching totals 8; lexicographic order makes the identity
	// permutation the first, hence the kept, optimum.
	cells := [][]int{
		{4, 4},
		{4, 4},
	}
	require.Equal(t, []int{0, 1}, exhaustiveSolve(cells))
}

func TestExhaustiveSolve_KnownOptimum(t *testing.T) {
	cells := [][]int{
		{7, 5, 11},
		{5, 4, 1},
		{9, 3, 2},
	}
	match := exhaustiveSolve(cells)
	require.Equal(t, 24, total(cells, match))
}

func TestExhaustiveSolve_NegativeCells(t *testing.T) {
	// Negative utilities violate the matrix contract, but a caller can
	// still feed them in; the scan must return a complete matching
	// with the least-bad total instead of coming back empty.
	cells := [][]int{
		{-5, -1},
		{-2, -8},
	}
	match := exhaustiveSolve(cells)
	require.Equal(t, []int{1, 0}, match) // -1 + -2 beats -5 + -8
	require.Equal(t, -3, total(cells, match))
}

func TestExhaustiveSolve_Empty(t *testing.T) {
	require.Nil(t, exhaustiveSolve(nil))
}
