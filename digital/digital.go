package digital

import (
	"fmt"
)

// WordFormat describes a fixed-width binary representation: how real or
// complex sample vectors quantize into words of that precision. Concrete
// formats live with the instrument models that define them; this package
// only fixes the contract the analog chain hands its output across.
type WordFormat interface {
	// Quantize converts a real sample vector into a word.
	Quantize(samples []float64) (Word, error)

	// QuantizeComplex converts a complex sample vector into a word.
	QuantizeComplex(samples []complex128) (ComplexWord, error)
}

// Word is a quantized real sample vector.
type Word interface {
	// Values returns the dequantized samples.
	Values() []float64

	// Len returns the number of samples in the word.
	Len() int
}

// ComplexWord is a quantized complex sample vector.
type ComplexWord interface {
	Values() []complex128
	Len() int
}

// Signal is a sampled series on the digital side of the quantization
// boundary: a sample rate, a precision, and the quantized word. It is
// immutable once constructed.
type Signal struct {
	sampleRate float64
	precision  WordFormat
	word       Word
	cword      ComplexWord
}

// New quantizes a real sample vector into a digital signal.
func New(rate float64, precision WordFormat, samples []float64) (*Signal, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %v", rate)
	}
	if precision == nil {
		return nil, fmt.Errorf("nil word format")
	}

	word, err := precision.Quantize(samples)
	if err != nil {
		return nil, fmt.Errorf("quantizing samples: %w", err)
	}

	return &Signal{
		sampleRate: rate,
		precision:  precision,
		word:       word,
	}, nil
}

// NewComplex quantizes a complex sample vector into a digital signal. Pass
// a widened real vector to force a complex representation.
func NewComplex(rate float64, precision WordFormat, samples []complex128) (*Signal, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %v", rate)
	}
	if precision == nil {
		return nil, fmt.Errorf("nil word format")
	}

	cword, err := precision.QuantizeComplex(samples)
	if err != nil {
		return nil, fmt.Errorf("quantizing samples: %w", err)
	}

	return &Signal{
		sampleRate: rate,
		precision:  precision,
		cword:      cword,
	}, nil
}

// SampleRate returns the sample rate in Hz.
func (s *Signal) SampleRate() float64 {
	return s.sampleRate
}

// Precision returns the word format the samples are stored in.
func (s *Signal) Precision() WordFormat {
	return s.precision
}

// Word returns the quantized word, or nil for a complex signal.
func (s *Signal) Word() Word {
	return s.word
}

// ComplexWord returns the quantized complex word, or nil for a real signal.
func (s *Signal) ComplexWord() ComplexWord {
	return s.cword
}

// IsComplex reports whether the signal holds complex samples.
func (s *Signal) IsComplex() bool {
	return s.cword != nil
}

// Samples returns the dequantized real samples, or nil for a complex
// signal.
func (s *Signal) Samples() []float64 {
	if s.word == nil {
		return nil
	}
	return s.word.Values()
}

// ComplexSamples returns the dequantized complex samples, or nil for a real
// signal.
func (s *Signal) ComplexSamples() []complex128 {
	if s.cword == nil {
		return nil
	}
	return s.cword.Values()
}

// NumberOfSamples returns the word length.
func (s *Signal) NumberOfSamples() int {
	if s.cword != nil {
		return s.cword.Len()
	}
	if s.word != nil {
		return s.word.Len()
	}
	return 0
}
