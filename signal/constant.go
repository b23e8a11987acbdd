package signal

// ConstantGenerator produces a constant series: every sample equals the
// amplitude, at any rate and offset. Useful as a calibration source and as
// the simplest generator in tests.
type ConstantGenerator struct {
	samplingGrid
	amplitude float64
}

// NewConstantGenerator creates a generator with the given sample value.
func NewConstantGenerator(amplitude float64) *ConstantGenerator {
	return &ConstantGenerator{amplitude: amplitude}
}

// Amplitude returns the constant sample value.
func (g *ConstantGenerator) Amplitude() float64 {
	return g.amplitude
}

// Generate returns count copies of the amplitude.
func (g *ConstantGenerator) Generate(rate float64, count int, offset float64) ([]float64, error) {
	if err := validateRequest(rate, count, offset); err != nil {
		return nil, err
	}

	out := make([]float64, count)
	for i := range out {
		out[i] = g.amplitude
	}

	return out, nil
}
