package signal

// TransformParams is the declarative form of a transform chain: a parameter
// block that can be serialized and applied to any Transformer. Nil
// slope pointers mean the slope is left untouched, which is distinct from
// applying a zero-valued slope (that still marks the slope as set and
// forces the spectral path).
type TransformParams struct {
	TimeDelay               float64  `json:"time_delay"`
	FlatGain                float64  `json:"flat_gain"`
	FrequencyMagnitudeSlope *float64 `json:"frequency_magnitude_slope,omitempty"`
	FrequencyPhaseSlope     *float64 `json:"frequency_phase_slope,omitempty"`
}

// DefaultTransformParams returns the identity transform.
func DefaultTransformParams() TransformParams {
	return TransformParams{
		TimeDelay: 0,
		FlatGain:  1,
	}
}

// Apply composes the block onto t under the same laws as the individual
// mutators: delay adds, gain multiplies, slopes add when present.
func (p TransformParams) Apply(t Transformer) {
	t.ApplyDelay(p.TimeDelay)
	t.ApplyGain(p.FlatGain)
	if p.FrequencyMagnitudeSlope != nil {
		t.ApplyFrequencyMagnitudeSlope(*p.FrequencyMagnitudeSlope)
	}
	if p.FrequencyPhaseSlope != nil {
		t.ApplyFrequencyPhaseSlope(*p.FrequencyPhaseSlope)
	}
}
