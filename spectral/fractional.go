package spectral

import (
	"github.com/mjibson/go-dsp/dsputils"
)

// FractionalDelay evaluates a sampled series at a grid advanced by a
// sub-sample amount: the result approximates x(t + seconds) on the original
// grid. The series is zero-padded to a power of two, a linear phase ramp is
// applied in the frequency domain, and the result is truncated back to the
// input length. Interpolation is circular over the padded length, so the
// useful range is |seconds| well below one sample period times the padding.
func FractionalDelay(x []float64, rate, seconds float64) []float64 {
	n := len(x)
	if n == 0 {
		return []float64{}
	}

	f := NewFFT()
	padded := dsputils.ZeroPadF(x, dsputils.NextPowerOf2(n))
	spectrum := FFTShift(f.Compute(padded))
	ApplyLinearPhase(spectrum, FrequencyVector(rate, len(padded)), seconds)
	shifted := f.ComputeInverseReal(IFFTShift(spectrum))

	return shifted[:n]
}
