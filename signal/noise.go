package signal

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/senal-sim/logging"
	"github.com/RyanBlaney/senal-sim/spectral"
)

// WindowSize is the number of samples drawn from one seed before the noise
// series moves to the next seed window.
const WindowSize = 1 << 20

// maxSampleIndex bounds |offset*rate| so window arithmetic stays inside
// int64.
const maxSampleIndex = 1 << 62

// GaussianNoiseGenerator produces stationary Gaussian noise as a pure
// function of (seed family, sample index). Index space is tiled by
// fixed-size windows, each drawn from its own seed, so any time span can be
// regenerated in any order and on any goroutine, and a span far from the
// origin costs no more than one nearby. Positive and negative index ranges
// use disjoint seed families (even and odd offsets from the base seed),
// letting the series extend indefinitely in both directions.
//
// Two generators built from the same allocator state are the same series;
// generators built in sequence are statistically independent.
type GaussianNoiseGenerator struct {
	samplingGrid
	mean     float64
	variance float64
	baseSeed uint64
	logger   logging.Logger
}

// NewGaussianNoise creates a noise generator seeded from the process-wide
// allocator.
func NewGaussianNoise(mean, variance float64) (*GaussianNoiseGenerator, error) {
	return NewGaussianNoiseFrom(DefaultSeedAllocator(), mean, variance)
}

// NewGaussianNoiseFrom creates a noise generator seeded from the given
// allocator. A private allocator pins the seed assignment regardless of
// what else the process constructs, which is what tests and reproducible
// pipelines want.
func NewGaussianNoiseFrom(alloc *SeedAllocator, mean, variance float64) (*GaussianNoiseGenerator, error) {
	if alloc == nil {
		return nil, fmt.Errorf("%w: nil seed allocator", ErrInvalidArgument)
	}
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return nil, fmt.Errorf("%w: mean must be finite, got %v", ErrInvalidArgument, mean)
	}
	if math.IsNaN(variance) || math.IsInf(variance, 0) || variance < 0 {
		return nil, fmt.Errorf("%w: variance must be non-negative and finite, got %v", ErrInvalidArgument, variance)
	}

	seed := alloc.Allocate()

	return &GaussianNoiseGenerator{
		mean:     mean,
		variance: variance,
		baseSeed: seed,
		logger: logging.WithFields(logging.Fields{
			"component": "gaussian_noise",
			"base_seed": seed,
		}),
	}, nil
}

// Mean returns the distribution mean.
func (g *GaussianNoiseGenerator) Mean() float64 {
	return g.mean
}

// Variance returns the distribution variance.
func (g *GaussianNoiseGenerator) Variance() float64 {
	return g.variance
}

// BaseSeeds returns the seed family roots for the non-negative and negative
// window chains.
func (g *GaussianNoiseGenerator) BaseSeeds() (positive, negative uint64) {
	return g.baseSeed, g.baseSeed + 1
}

// Generate returns count samples of the series at offset + i/rate. Results
// are bit-identical across repeated, overlapping, and out-of-order requests.
// When the requested grid falls between the integer sample indices the
// series is defined on, the drawn span is interpolated onto the fractional
// grid in the frequency domain.
func (g *GaussianNoiseGenerator) Generate(rate float64, count int, offset float64) ([]float64, error) {
	if err := validateRequest(rate, count, offset); err != nil {
		return nil, err
	}

	tvec := g.TimeVector(rate, count, offset)
	minIndex := math.Floor(floats.Min(tvec) * rate)
	maxIndex := math.Ceil(floats.Max(tvec) * rate)
	if math.Abs(minIndex) >= maxSampleIndex || math.Abs(maxIndex) >= maxSampleIndex {
		return nil, fmt.Errorf("%w: requested span [%v, %v] exceeds the addressable sample range",
			ErrInvalidArgument, tvec[0], tvec[count-1])
	}
	sMin := int64(minIndex)
	sMax := int64(maxIndex)

	g.logger.Debug("drawing noise span", logging.Fields{
		"sample_min": sMin,
		"sample_max": sMax,
		"windows":    floorDiv(sMax, WindowSize) - floorDiv(sMin, WindowSize) + 1,
	})

	out := g.drawRange(sMin, sMax)
	if len(out) > count {
		// More integer grid points than requested samples: the offset is
		// fractional. Shift the drawn span onto the requested grid.
		deltaT := tvec[0] - float64(sMin)/rate
		g.logger.Debug("correcting fractional offset", logging.Fields{
			"delta_t": deltaT,
		})
		shifted := spectral.FractionalDelay(out, rate, deltaT)
		start := fractionalStart(tvec[0], rate, sMin, len(shifted))
		out = shifted[start : start+count]
	}

	floats.Scale(math.Sqrt(g.variance), out)
	floats.AddConst(g.mean, out)

	return out, nil
}

// windowSeed maps a window index to its RNG seed. Window w covers sample
// indices [w*WindowSize, (w+1)*WindowSize). Non-negative windows take even
// offsets from the positive family root, negative windows odd offsets from
// the negative one, so the two directions never collide.
func (g *GaussianNoiseGenerator) windowSeed(window int64) uint64 {
	if window >= 0 {
		return g.baseSeed + 2*uint64(window)
	}
	return (g.baseSeed + 1) + 2*(uint64(-window)-1)
}

// windowSpan is the slice of one seed window a request needs.
type windowSpan struct {
	window  int64 // window index
	discard int   // leading draws to skip inside the window
	take    int   // draws to keep
	offset  int   // destination position in the output vector
}

// spansFor tiles the inclusive sample index range [sMin, sMax] into
// per-window spans.
func spansFor(sMin, sMax int64) []windowSpan {
	first := floorDiv(sMin, WindowSize)
	last := floorDiv(sMax, WindowSize)

	spans := make([]windowSpan, 0, int(last-first+1))
	offset := 0
	for w := first; w <= last; w++ {
		lo := w * WindowSize
		hi := lo + WindowSize - 1
		if lo < sMin {
			lo = sMin
		}
		if hi > sMax {
			hi = sMax
		}
		take := int(hi - lo + 1)
		spans = append(spans, windowSpan{
			window:  w,
			discard: int(lo - w*WindowSize),
			take:    take,
			offset:  offset,
		})
		offset += take
	}

	return spans
}

// drawSpan fills dst[offset:offset+take] with the span's draws. Every
// window gets a fresh source seeded for it alone, so spans can be drawn in
// any order and on any goroutine with identical results.
func (g *GaussianNoiseGenerator) drawSpan(dst []float64, span windowSpan) {
	rng := rand.New(rand.NewSource(int64(g.windowSeed(span.window))))
	for range span.discard {
		rng.NormFloat64()
	}

	out := dst[span.offset : span.offset+span.take]
	for i := range out {
		out[i] = rng.NormFloat64()
	}
}

// drawRange draws the inclusive sample index range [sMin, sMax]. Spans
// covering several windows go through a worker pool; each worker writes only
// its span's fixed slice of the output, so the result does not depend on
// scheduling.
func (g *GaussianNoiseGenerator) drawRange(sMin, sMax int64) []float64 {
	spans := spansFor(sMin, sMax)
	raw := make([]float64, int(sMax-sMin+1))

	numWorkers := g.getOptimalWorkerCount(len(spans))
	if numWorkers < 2 {
		for _, span := range spans {
			g.drawSpan(raw, span)
		}
		return raw
	}

	jobs := make(chan windowSpan, len(spans))
	var wg sync.WaitGroup
	for range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for span := range jobs {
				g.drawSpan(raw, span)
			}
		}()
	}

	for _, span := range spans {
		jobs <- span
	}
	close(jobs)
	wg.Wait()

	return raw
}

// getOptimalWorkerCount sizes the draw pool. Window draws are CPU-bound and
// each one is substantial, so the pool never exceeds the CPU count or the
// number of windows; short spans stay on the calling goroutine.
func (g *GaussianNoiseGenerator) getOptimalWorkerCount(numWindows int) int {
	if numWindows < 3 {
		return 1
	}

	return max(1, min(runtime.NumCPU(), numWindows))
}

// fractionalStart locates the sample of the drawn range whose grid time is
// the last one at or before the first requested instant. For offsets inside
// the first sample period this is zero; the scan mirrors the general
// alignment rule.
func fractionalStart(first, rate float64, sMin int64, size int) int {
	for k := size - 1; k >= 1; k-- {
		if first-float64(sMin+int64(k))/rate >= 0 {
			return k
		}
	}

	return 0
}

// floorDiv is floor(a/b) for positive b. Go's integer division truncates
// toward zero, which is wrong for negative sample indices.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
