// SPDX-License-Identifier: MIT
package quality_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mirenbz/dna/pmatrix"
	"github.com/mirenbz/dna/quality"
)

func block(t *testing.T, vals [4][4]float64) *pmatrix.Matrix {
	t.Helper()
	m, err := pmatrix.New("X", []string{"a", "b", "c", "d"}, time.Time{}, time.Time{}, time.Time{})
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			require.NoError(t, m.Set(i, j, vals[i][j]))
		}
	}
	return m
}

// TestScoreBlockCongruence covers a block-diagonal congruence matrix with
// zero conflict. The scaled score for the correctly split partition is
// derived by hand below from the scoring formula itself.
func TestScoreBlockCongruence(t *testing.T) {
	G := block(t, [4][4]float64{
		{0, 2, 0, 0},
		{2, 0, 0, 0},
		{0, 0, 0, 3},
		{0, 0, 3, 0},
	})
	C := block(t, [4][4]float64{})

	score, err := quality.Score([]int{0, 0, 1, 1}, G, C, true, 2)
	require.NoError(t, err)
	require.InDelta(t, 0.25, score, 1e-9)
}

func TestScorePermutationInvariant(t *testing.T) {
	G := block(t, [4][4]float64{
		{0, 2, 0, 0},
		{2, 0, 0, 0},
		{0, 0, 0, 3},
		{0, 0, 3, 0},
	})
	C := block(t, [4][4]float64{})

	a, err := quality.Score([]int{0, 0, 1, 1}, G, C, true, 2)
	require.NoError(t, err)
	b, err := quality.Score([]int{1, 1, 0, 0}, G, C, true, 2)
	require.NoError(t, err)
	require.InDelta(t, a, b, 1e-12)
}

func TestScoreNormalizedInUnitInterval(t *testing.T) {
	G := block(t, [4][4]float64{
		{0, 2, -1, 0},
		{2, 0, 0, 4},
		{-1, 0, 0, 3},
		{0, 4, 3, 0},
	})
	C := block(t, [4][4]float64{
		{0, 1, 2, 0},
		{1, 0, 0, -2},
		{2, 0, 0, 1},
		{0, -2, 1, 0},
	})

	score, err := quality.Score([]int{0, 1, 0, 1}, G, C, true, 2)
	require.NoError(t, err)
	require.GreaterOrEqual(t, score, 0.0)
	require.LessOrEqual(t, score, 1.0)
}

func TestScoreDimensionMismatch(t *testing.T) {
	G := block(t, [4][4]float64{})
	C := block(t, [4][4]float64{})
	_, err := quality.Score([]int{0, 0, 1}, G, C, true, 2)
	require.ErrorIs(t, err, quality.ErrDimensionMismatch)
}

func TestScoreInvalidMembership(t *testing.T) {
	G := block(t, [4][4]float64{})
	C := block(t, [4][4]float64{})
	_, err := quality.Score([]int{0, 0, 2, 1}, G, C, true, 2)
	require.ErrorIs(t, err, quality.ErrInvalidMembership)
}
