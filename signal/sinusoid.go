package signal

import (
	"math"
)

// SinusoidGenerator produces amplitude*sin(2*pi*frequency*t + phase)
// evaluated on the requested grid. Frequency is in Hz, phase in radians.
type SinusoidGenerator struct {
	samplingGrid
	amplitude float64
	frequency float64
	phase     float64
}

// NewSinusoidGenerator creates a sinusoid generator.
func NewSinusoidGenerator(amplitude, frequency, phase float64) *SinusoidGenerator {
	return &SinusoidGenerator{
		amplitude: amplitude,
		frequency: frequency,
		phase:     phase,
	}
}

// Amplitude returns the peak amplitude.
func (g *SinusoidGenerator) Amplitude() float64 {
	return g.amplitude
}

// Frequency returns the frequency in Hz.
func (g *SinusoidGenerator) Frequency() float64 {
	return g.frequency
}

// Phase returns the phase offset in radians.
func (g *SinusoidGenerator) Phase() float64 {
	return g.phase
}

// Generate evaluates the sinusoid at each grid instant.
func (g *SinusoidGenerator) Generate(rate float64, count int, offset float64) ([]float64, error) {
	if err := validateRequest(rate, count, offset); err != nil {
		return nil, err
	}

	tvec := g.TimeVector(rate, count, offset)
	out := make([]float64, count)
	for i, t := range tvec {
		out[i] = g.amplitude * math.Sin(2*math.Pi*g.frequency*t+g.phase)
	}

	return out, nil
}
