package signal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/senal-sim/signal"
)

func newSinusoidSignal(t *testing.T, amplitude, frequency, phase float64) *signal.AnalogSignal {
	t.Helper()
	sig, err := signal.NewAnalogSignal(signal.NewSinusoidGenerator(amplitude, frequency, phase))
	require.NoError(t, err)
	return sig
}

func newTransformed(t *testing.T, src signal.Analog) *signal.TransformedAnalogSignal {
	t.Helper()
	ts, err := signal.NewTransformedAnalogSignal(src)
	require.NoError(t, err)
	return ts
}

// TestTransformedIdentity verifies the untouched transform is a pass-through
// with no spectral round trip: a 10 Hz unit sinusoid at 1 kHz comes back as
// sin(2*pi*10*i/1000) exactly.
func TestTransformedIdentity(t *testing.T) {
	ts := newTransformed(t, newSinusoidSignal(t, 1, 10, 0))

	out, err := ts.Sample(1000, 100, 0)
	require.NoError(t, err)
	require.Len(t, out, 100)
	for i, v := range out {
		require.InDelta(t, math.Sin(2*math.Pi*10*float64(i)/1000), v, 1e-12, "sample %d", i)
	}
}

// TestTransformedConstructionCopiesState verifies wrapping a transformed
// signal keeps its accumulated state while wrapping a plain one resets to
// the identity.
func TestTransformedConstructionCopiesState(t *testing.T) {
	src := newSinusoidSignal(t, 1, 10, 0)

	first := newTransformed(t, src)
	first.ApplyDelay(0.1)
	first.ApplyGain(2)
	first.ApplyFrequencyMagnitudeSlope(3)

	copied := newTransformed(t, first)
	require.Equal(t, 0.1, copied.TimeDelay())
	require.Equal(t, 2.0, copied.FlatGain())
	slope, ok := copied.FrequencyMagnitudeSlope()
	require.True(t, ok)
	require.Equal(t, 3.0, slope)

	fresh := newTransformed(t, src)
	require.Zero(t, fresh.TimeDelay())
	require.Equal(t, 1.0, fresh.FlatGain())
	_, ok = fresh.FrequencyMagnitudeSlope()
	require.False(t, ok)
	_, ok = fresh.FrequencyPhaseSlope()
	require.False(t, ok)
}

// TestTransformedNilSource verifies the constructor contract.
func TestTransformedNilSource(t *testing.T) {
	_, err := signal.NewTransformedAnalogSignal(nil)
	require.ErrorIs(t, err, signal.ErrInvalidArgument)
}

// TestApplyDelayAccumulates verifies split delays compose additively into
// the same output as one combined delay.
func TestApplyDelayAccumulates(t *testing.T) {
	src := newSinusoidSignal(t, 1, 10, 0)

	split := newTransformed(t, src)
	split.ApplyDelay(0.25)
	split.ApplyDelay(0.5)
	require.Equal(t, 0.75, split.TimeDelay())

	combined := newTransformed(t, src)
	combined.ApplyDelay(0.75)

	a, err := split.Sample(1000, 64, 0)
	require.NoError(t, err)
	b, err := combined.Sample(1000, 64, 0)
	require.NoError(t, err)
	require.Equal(t, b, a)
}

// TestApplyDelayShiftsSinusoid verifies the delayed series equals the
// closed form evaluated at t + delay.
func TestApplyDelayShiftsSinusoid(t *testing.T) {
	ts := newTransformed(t, newSinusoidSignal(t, 1, 10, 0))
	ts.ApplyDelay(0.025) // quarter period of 10 Hz

	out, err := ts.Sample(1000, 64, 0)
	require.NoError(t, err)
	for i, v := range out {
		ti := float64(i)/1000 + 0.025
		require.InDelta(t, math.Sin(2*math.Pi*10*ti), v, 1e-12, "sample %d", i)
	}
}

// TestApplyGainMultiplies verifies gains compose multiplicatively.
func TestApplyGainMultiplies(t *testing.T) {
	src := newSinusoidSignal(t, 1, 10, 0)

	chained := newTransformed(t, src)
	chained.ApplyGain(2)
	chained.ApplyGain(3)
	require.Equal(t, 6.0, chained.FlatGain())

	direct := newTransformed(t, src)
	direct.ApplyGain(6)

	a, err := chained.Sample(1000, 64, 0)
	require.NoError(t, err)
	b, err := direct.Sample(1000, 64, 0)
	require.NoError(t, err)
	require.Equal(t, b, a)
}

// TestSlopesAccumulateAdditively verifies both spectral slopes follow the
// set-then-add law.
func TestSlopesAccumulateAdditively(t *testing.T) {
	ts := newTransformed(t, newSinusoidSignal(t, 1, 10, 0))

	ts.ApplyFrequencyMagnitudeSlope(3)
	ts.ApplyFrequencyMagnitudeSlope(2)
	mag, ok := ts.FrequencyMagnitudeSlope()
	require.True(t, ok)
	require.Equal(t, 5.0, mag)

	ts.ApplyFrequencyPhaseSlope(1e-4)
	ts.ApplyFrequencyPhaseSlope(2e-4)
	phase, ok := ts.FrequencyPhaseSlope()
	require.True(t, ok)
	require.Equal(t, 1e-4+2e-4, phase)
}

// TestShortCircuitWithoutSlopes verifies delay and gain alone never touch
// the spectral path, exactly reproducing the scaled generator output, noise
// included.
func TestShortCircuitWithoutSlopes(t *testing.T) {
	gen := newNoise(t, 0, 1)
	sig, err := signal.NewAnalogSignal(gen)
	require.NoError(t, err)

	ts := newTransformed(t, sig)
	ts.ApplyDelay(2)
	ts.ApplyGain(3)

	out, err := ts.Sample(1000, 128, 1)
	require.NoError(t, err)

	raw, err := gen.Generate(1000, 128, 3)
	require.NoError(t, err)
	for i := range raw {
		raw[i] *= 3
	}
	require.Equal(t, raw, out)
}

// TestZeroSlopeEngagesSpectralPath verifies a zero-valued slope still
// counts as set: the output picks up transform round-trip error but stays
// numerically the same series.
func TestZeroSlopeEngagesSpectralPath(t *testing.T) {
	src := newSinusoidSignal(t, 1, 10, 0)

	plain := newTransformed(t, src)
	shaped := newTransformed(t, src)
	shaped.ApplyFrequencyMagnitudeSlope(0)
	_, ok := shaped.FrequencyMagnitudeSlope()
	require.True(t, ok)

	a, err := plain.Sample(1000, 100, 0)
	require.NoError(t, err)
	b, err := shaped.Sample(1000, 100, 0)
	require.NoError(t, err)
	for i := range a {
		require.InDelta(t, a[i], b[i], 1e-9, "sample %d", i)
	}
}

// TestPhaseSlopeMatchesDelay verifies the phase ramp is a true sub-sample
// delay: on a bin-aligned sinusoid it agrees with shifting the generation
// grid.
func TestPhaseSlopeMatchesDelay(t *testing.T) {
	const shift = 3e-4
	src := newSinusoidSignal(t, 1, 10, 0)

	viaDelay := newTransformed(t, src)
	viaDelay.ApplyDelay(shift)

	viaPhase := newTransformed(t, src)
	viaPhase.ApplyFrequencyPhaseSlope(shift)

	a, err := viaDelay.Sample(1000, 100, 0)
	require.NoError(t, err)
	b, err := viaPhase.Sample(1000, 100, 0)
	require.NoError(t, err)
	for i := range a {
		require.InDelta(t, a[i], b[i], 1e-9, "sample %d", i)
	}
}

// TestMagnitudeSlopeScalesBinAlignedSinusoid verifies the tilt gain at the
// sinusoid's frequency, and that DC content is immune.
func TestMagnitudeSlopeScalesBinAlignedSinusoid(t *testing.T) {
	const (
		rate = 6.4e9
		n    = 64
		freq = 8e8 // bin 8 of 64 at 6.4 GHz
	)
	sine, err := signal.NewAnalogSignal(signal.NewSinusoidGenerator(1, freq, 0))
	require.NoError(t, err)

	shaped := newTransformed(t, sine)
	shaped.ApplyFrequencyMagnitudeSlope(10)
	out, err := shaped.Sample(rate, n, 0)
	require.NoError(t, err)

	gain := math.Pow(10, 10*(freq/1e9)/20)
	for i := range out {
		want := gain * math.Sin(2*math.Pi*freq*float64(i)/rate)
		require.InDelta(t, want, out[i], 1e-6, "sample %d", i)
	}

	dc, err := signal.NewAnalogSignal(signal.NewConstantGenerator(2))
	require.NoError(t, err)
	flat := newTransformed(t, dc)
	flat.ApplyFrequencyMagnitudeSlope(10)
	out, err = flat.Sample(rate, n, 0)
	require.NoError(t, err)
	for i := range out {
		require.InDelta(t, 2, out[i], 1e-9, "sample %d", i)
	}
}

// TestTransformedClone verifies clones are independent going forward and
// share the generator.
func TestTransformedClone(t *testing.T) {
	src := newSinusoidSignal(t, 1, 10, 0)
	ts := newTransformed(t, src)
	ts.ApplyGain(2)

	clone, ok := ts.Clone().(*signal.TransformedAnalogSignal)
	require.True(t, ok)
	require.Same(t, ts.Generator(), clone.Generator())
	require.Equal(t, 2.0, clone.FlatGain())

	ts.ApplyGain(5)
	require.Equal(t, 10.0, ts.FlatGain())
	require.Equal(t, 2.0, clone.FlatGain())
}
