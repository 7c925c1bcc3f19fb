package stats

import "math"

// WeightKind distinguishes the two supported weight interpretations.
type WeightKind string

const (
	// WeightPercentage means each weight is a share of 100.
	WeightPercentage WeightKind = "percentage"

	// WeightFrequency means each weight is a non-negative occurrence
	// count.
	WeightFrequency WeightKind = "frequency"
)

// PercentageSumTolerance is the allowed deviation of a percentage weight
// list from 100.
const PercentageSumTolerance = 0.5

// WeightSpec pairs a weight list with its interpretation.
type WeightSpec struct {
	Kind    WeightKind
	Weights []float64
}

// PercentageWeights builds a WeightSpec whose weights are shares of 100.
func PercentageWeights(weights ...float64) WeightSpec {
	return WeightSpec{Kind: WeightPercentage, Weights: weights}
}

// FrequencyWeights builds a WeightSpec whose weights are occurrence
// counts.
func FrequencyWeights(weights ...float64) WeightSpec {
	return WeightSpec{Kind: WeightFrequency, Weights: weights}
}

// WeightedMean computes the mean of values weighted according to spec.
//
// Percentage weights: Σ(value·weight) / 100, requiring the weights to
// sum to 100 within PercentageSumTolerance. Frequency weights:
// Σ(value·freq) / Σ(freq), requiring every frequency to be non-negative
// and the sum to be positive.
func WeightedMean(values []float64, spec WeightSpec) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyDataset
	}
	if len(values) != len(spec.Weights) {
		return 0, &ErrInvalidWeights{
			Kind:   spec.Kind,
			Sum:    Sum(spec.Weights),
			Reason: "values and weights have different lengths",
		}
	}

	switch spec.Kind {
	case WeightPercentage:
		sum := Sum(spec.Weights)
		if math.Abs(sum-100) > PercentageSumTolerance {
			return 0, &ErrInvalidWeights{
				Kind:   spec.Kind,
				Sum:    sum,
				Reason: "percentage weights must sum to 100",
			}
		}
		total := 0.0
		for i, v := range values {
			total += v * spec.Weights[i]
		}
		return total / 100, nil

	case WeightFrequency:
		for _, w := range spec.Weights {
			if w < 0 {
				return 0, &ErrInvalidWeights{
					Kind:   spec.Kind,
					Sum:    Sum(spec.Weights),
					Reason: "frequency weights must be non-negative",
				}
			}
		}
		count := Sum(spec.Weights)
		if count == 0 {
			return 0, &ErrInvalidWeights{
				Kind:   spec.Kind,
				Sum:    0,
				Reason: "frequency weights sum to zero",
			}
		}
		total := 0.0
		for i, v := range values {
			total += v * spec.Weights[i]
		}
		return total / count, nil

	default:
		return 0, &ErrInvalidWeights{
			Kind:   spec.Kind,
			Sum:    Sum(spec.Weights),
			Reason: "unknown weight kind",
		}
	}
}
