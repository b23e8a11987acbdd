package signal

import (
	"fmt"
	"math"
)

// Generator produces raw sample vectors on the uniform grid offset + i/rate.
// Generators are immutable after construction: concurrent Generate calls are
// safe, and equal requests yield equal vectors.
type Generator interface {
	// Generate returns count samples spaced 1/rate seconds apart starting
	// at offset.
	Generate(rate float64, count int, offset float64) ([]float64, error)

	// TimeVector returns the instants Generate evaluates at:
	// offset + i/rate for i in [0, count).
	TimeVector(rate float64, count int, offset float64) []float64
}

// samplingGrid supplies the time-vector arithmetic every generator embeds.
type samplingGrid struct{}

// TimeVector returns count sampling instants starting at offset, spaced
// 1/rate apart.
func (samplingGrid) TimeVector(rate float64, count int, offset float64) []float64 {
	if count <= 0 || rate <= 0 {
		return []float64{}
	}

	step := 1.0 / rate
	tvec := make([]float64, count)
	for i := range tvec {
		tvec[i] = offset + float64(i)*step
	}

	return tvec
}

// validateRequest rejects sampling requests outside the contract before any
// work happens.
func validateRequest(rate float64, count int, offset float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive and finite, got %v", ErrInvalidArgument, rate)
	}
	if count <= 0 {
		return fmt.Errorf("%w: sample count must be positive, got %d", ErrInvalidArgument, count)
	}
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return fmt.Errorf("%w: time offset must be finite, got %v", ErrInvalidArgument, offset)
	}

	return nil
}
