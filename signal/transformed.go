package signal

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/senal-sim/spectral"
)

// TransformedAnalogSignal carries an analog signal through the transform
// chain of a receiving path: a time delay, a flat gain, and optional linear
// magnitude and phase slopes across frequency. Transform state accumulates
// through the Transformer methods; sampling itself is pure.
type TransformedAnalogSignal struct {
	gen Generator

	timeDelay float64
	flatGain  float64

	magSlope      float64
	hasMagSlope   bool
	phaseSlope    float64
	hasPhaseSlope bool
}

// NewTransformedAnalogSignal wraps src in a transformed view. Wrapping an
// already transformed signal copies its accumulated state; any other analog
// source starts from the identity transform (zero delay, unit gain, no
// slopes).
func NewTransformedAnalogSignal(src Analog) (*TransformedAnalogSignal, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil signal", ErrInvalidArgument)
	}

	if t, ok := src.(*TransformedAnalogSignal); ok {
		copied := *t
		return &copied, nil
	}

	gen := src.Generator()
	if gen == nil {
		return nil, fmt.Errorf("%w: signal has no generator", ErrInvalidArgument)
	}

	return &TransformedAnalogSignal{
		gen:      gen,
		flatGain: 1,
	}, nil
}

// Generator returns the backing generator.
func (s *TransformedAnalogSignal) Generator() Generator {
	return s.gen
}

// TimeDelay returns the accumulated delay in seconds.
func (s *TransformedAnalogSignal) TimeDelay() float64 {
	return s.timeDelay
}

// FlatGain returns the accumulated flat gain.
func (s *TransformedAnalogSignal) FlatGain() float64 {
	return s.flatGain
}

// FrequencyMagnitudeSlope returns the accumulated magnitude slope in dB per
// GHz, and whether one has been applied.
func (s *TransformedAnalogSignal) FrequencyMagnitudeSlope() (float64, bool) {
	return s.magSlope, s.hasMagSlope
}

// FrequencyPhaseSlope returns the accumulated phase slope in seconds, and
// whether one has been applied.
func (s *TransformedAnalogSignal) FrequencyPhaseSlope() (float64, bool) {
	return s.phaseSlope, s.hasPhaseSlope
}

// ApplyDelay adds d seconds to the accumulated delay.
func (s *TransformedAnalogSignal) ApplyDelay(d float64) {
	s.timeDelay += d
}

// ApplyGain multiplies the accumulated gain by g.
func (s *TransformedAnalogSignal) ApplyGain(g float64) {
	s.flatGain *= g
}

// ApplyFrequencyMagnitudeSlope adds m dB per GHz to the magnitude slope.
func (s *TransformedAnalogSignal) ApplyFrequencyMagnitudeSlope(m float64) {
	s.magSlope += m
	s.hasMagSlope = true
}

// ApplyFrequencyPhaseSlope adds p seconds to the phase slope. Linear phase
// is a delay term, so it accumulates additively, like delay.
func (s *TransformedAnalogSignal) ApplyFrequencyPhaseSlope(p float64) {
	s.phaseSlope += p
	s.hasPhaseSlope = true
}

// Params returns the accumulated transform state as a parameter block.
func (s *TransformedAnalogSignal) Params() TransformParams {
	p := TransformParams{
		TimeDelay: s.timeDelay,
		FlatGain:  s.flatGain,
	}
	if s.hasMagSlope {
		v := s.magSlope
		p.FrequencyMagnitudeSlope = &v
	}
	if s.hasPhaseSlope {
		v := s.phaseSlope
		p.FrequencyPhaseSlope = &v
	}

	return p
}

// Sample generates the delayed series and applies the gain, then shapes the
// spectrum when a slope is set. With no slopes the gained time-domain
// vector is returned directly, skipping the transform round trip.
func (s *TransformedAnalogSignal) Sample(rate float64, count int, offset float64) ([]float64, error) {
	td, err := s.gen.Generate(rate, count, offset+s.timeDelay)
	if err != nil {
		return nil, err
	}
	floats.Scale(s.flatGain, td)

	if !s.hasMagSlope && !s.hasPhaseSlope {
		return td, nil
	}

	f := spectral.NewFFT()
	spectrum := spectral.FFTShift(f.Compute(td))
	freqs := spectral.FrequencyVector(rate, count)
	if s.hasMagSlope {
		spectral.ApplyMagnitudeSlope(spectrum, freqs, s.magSlope)
	}
	if s.hasPhaseSlope {
		spectral.ApplyLinearPhase(spectrum, freqs, s.phaseSlope)
	}

	return f.ComputeInverseReal(spectral.IFFTShift(spectrum)), nil
}

// Clone returns an independent copy sharing the immutable generator.
func (s *TransformedAnalogSignal) Clone() Signal {
	copied := *s
	return &copied
}
