package signal

import (
	"fmt"
)

// AnalogSignal is the direct sampled view over a generator, with no
// transform state of its own.
type AnalogSignal struct {
	gen Generator
}

// NewAnalogSignal wraps a generator as a signal.
func NewAnalogSignal(gen Generator) (*AnalogSignal, error) {
	if gen == nil {
		return nil, fmt.Errorf("%w: nil generator", ErrInvalidArgument)
	}

	return &AnalogSignal{gen: gen}, nil
}

// Generator returns the backing generator.
func (s *AnalogSignal) Generator() Generator {
	return s.gen
}

// Sample returns the generator output on the requested grid.
func (s *AnalogSignal) Sample(rate float64, count int, offset float64) ([]float64, error) {
	return s.gen.Generate(rate, count, offset)
}

// Clone returns a copy sharing the immutable generator.
func (s *AnalogSignal) Clone() Signal {
	return &AnalogSignal{gen: s.gen}
}
