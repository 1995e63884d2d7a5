package rmse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_Identical(t *testing.T) {
	inputs := [][]float64{
		{0},
		{1, 2, 3},
		{0.1234, 0.6543, 0.9876, 1.6789, 2.4567, 3.1234, 4.4567, 4.9876},
		{-5, 0, 5, 1e6},
	}
	for _, x := range inputs {
		got, err := Calculate(x, x)
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	}
}

func TestCalculate_Known(t *testing.T) {
	// differences 1, -1, 1, -1 -> mean square 1
	got, err := Calculate([]float64{1, 2, 3, 4}, []float64{0, 3, 2, 5})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)

	// differences 3, 4 -> sqrt((9+16)/2)
	got, err = Calculate([]float64{3, 4}, []float64{0, 0})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(12.5), got, 1e-12)
}

func TestCalculate_TruncatesLongerCandidate(t *testing.T) {
	ref := []float64{1, 2, 3}
	// trailing values would change the result if they were used
	longer := []float64{1, 2, 3, 100, 200}

	got, err := Calculate(ref, longer)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	// the candidate slice itself is left untouched
	assert.Len(t, longer, 5)
}

func TestCalculate_EqualLengthNoTruncation(t *testing.T) {
	ref := []float64{0, 0, 0, 0}
	cand := []float64{0, 0, 0, 2}

	got, err := Calculate(ref, cand)
	require.NoError(t, err)
	// the last point contributes 4/4
	assert.InDelta(t, 1.0, got, 1e-12)
}

func TestCalculate_Asymmetric(t *testing.T) {
	short := []float64{1, 2}
	long := []float64{1, 2, 9}

	got, err := Calculate(short, long)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = Calculate(long, short)
	assert.ErrorIs(t, err, ErrShortCandidate)
}

func TestCalculate_EmptyReference(t *testing.T) {
	_, err := Calculate(nil, []float64{1})
	assert.ErrorIs(t, err, ErrEmptyReference)
}
