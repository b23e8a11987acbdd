package spectral

import (
	"math"
	"math/cmplx"
)

// FFTShift reorders a spectrum so that the zero-frequency bin sits in the
// middle, with negative frequencies below it and positive above. Inverse of
// IFFTShift.
func FFTShift(x []complex128) []complex128 {
	return roll(x, len(x)/2)
}

// IFFTShift undoes FFTShift, restoring the transform's native bin order.
func IFFTShift(x []complex128) []complex128 {
	return roll(x, -(len(x) / 2))
}

// roll rotates x right by shift positions (negative shift rotates left).
func roll(x []complex128, shift int) []complex128 {
	n := len(x)
	if n == 0 {
		return []complex128{}
	}

	shift = ((shift % n) + n) % n
	out := make([]complex128, n)
	for i, v := range x {
		out[(i+shift)%n] = v
	}

	return out
}

// FrequencyVector returns the frequency in Hz of each bin of an n-point
// shifted spectrum sampled at rate: -rate/2 stepping by rate/n.
func FrequencyVector(rate float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}

	step := rate / float64(n)
	freqs := make([]float64, n)
	for i := range freqs {
		freqs[i] = -rate/2 + float64(i)*step
	}

	return freqs
}

// ApplyLinearPhase multiplies each bin by exp(j*2*pi*f*seconds) in place.
// A positive seconds value advances the signal in time. The spectrum must be
// in shifted order and freqs the matching FrequencyVector.
func ApplyLinearPhase(spectrum []complex128, freqs []float64, seconds float64) {
	n := min(len(spectrum), len(freqs))
	for i := 0; i < n; i++ {
		spectrum[i] *= cmplx.Exp(complex(0, 2*math.Pi*seconds*freqs[i]))
	}
}

// ApplyMagnitudeSlope scales each bin by 10^((dbPerGHz/20)*(|f|/1e9)) in
// place: a linear-in-dB magnitude tilt across frequency, symmetric about DC.
// The spectrum must be in shifted order and freqs the matching
// FrequencyVector.
func ApplyMagnitudeSlope(spectrum []complex128, freqs []float64, dbPerGHz float64) {
	n := min(len(spectrum), len(freqs))
	for i := 0; i < n; i++ {
		gain := math.Pow(10, (dbPerGHz/20)*(math.Abs(freqs[i])/1e9))
		spectrum[i] *= complex(gain, 0)
	}
}
