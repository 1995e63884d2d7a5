// Package rmse computes root-mean-square error between a reference curve and a candidate.
package rmse

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

var (
	// ErrEmptyReference indicates there is nothing to compare against.
	ErrEmptyReference = errors.New("empty reference")
	// ErrShortCandidate indicates the candidate has fewer points than the reference.
	ErrShortCandidate = errors.New("candidate shorter than reference")
)

// Calculate returns sqrt(mean((reference[i] - candidate[i])^2)).
//
// A candidate longer than the reference is truncated to the reference length.
// The reference is never truncated: a shorter candidate is an error.
func Calculate(reference, candidate []float64) (float64, error) {
	if len(reference) == 0 {
		return 0, ErrEmptyReference
	}
	if len(candidate) < len(reference) {
		return 0, fmt.Errorf("%w: %d < %d", ErrShortCandidate, len(candidate), len(reference))
	}
	candidate = candidate[:len(reference)]

	squared := make(stats.Float64Data, len(reference))
	for i, ref := range reference {
		d := ref - candidate[i]
		squared[i] = d * d
	}

	mse, err := stats.Mean(squared)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}
