package signal

import (
	"errors"
)

// ErrInvalidArgument marks sampling requests and constructor arguments that
// violate the contract: non-positive rates or counts, non-finite values,
// signals of an incompatible kind. Test with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Signal is a sampled view over continuous time. Sampling never mutates:
// the same request returns the same vector regardless of call order or
// goroutine.
type Signal interface {
	// Sample evaluates the signal at offset + i/rate for i in [0, count).
	Sample(rate float64, count int, offset float64) ([]float64, error)

	// Clone returns an independent copy. Mutable state is copied
	// recursively; generators are shared, since they are immutable after
	// construction.
	Clone() Signal
}

// Analog is implemented by generator-backed signals: the plain and
// transformed analog kinds. Compound signals are not Analog - they have no
// single generator - so they cannot be wrapped or nested as components
// directly.
type Analog interface {
	Signal

	// Generator exposes the backing sample generator.
	Generator() Generator
}

// Transformer is the analog transform surface. Repeated application
// composes with the accumulated state instead of overwriting it: delay and
// the spectral slopes add, gain multiplies.
type Transformer interface {
	// ApplyDelay adds d seconds to the accumulated time delay.
	ApplyDelay(d float64)

	// ApplyGain multiplies the accumulated flat gain by g.
	ApplyGain(g float64)

	// ApplyFrequencyMagnitudeSlope adds m dB per GHz of linear spectral
	// tilt, setting the slope on first use.
	ApplyFrequencyMagnitudeSlope(m float64)

	// ApplyFrequencyPhaseSlope adds p seconds of linear phase ramp,
	// setting the slope on first use.
	ApplyFrequencyPhaseSlope(p float64)
}
