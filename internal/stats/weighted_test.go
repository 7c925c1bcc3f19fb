package stats

import (
	"errors"
	"math"
	"testing"
)

func TestWeightedMean_Percentage(t *testing.T) {
	values := []float64{85, 72, 90, 88, 82}
	spec := PercentageWeights(10, 20, 30, 15, 25)
	got, err := WeightedMean(values, spec)
	if err != nil {
		t.Fatalf("WeightedMean returned error: %v", err)
	}
	// (85·10 + 72·20 + 90·30 + 88·15 + 82·25) / 100
	if !almostEqual(got, 83.6) {
		t.Errorf("WeightedMean = %f, want 83.6", got)
	}
}

func TestWeightedMean_PercentageWithinTolerance(t *testing.T) {
	// 99.7 is inside the ±0.5 tolerance around 100.
	_, err := WeightedMean([]float64{50, 50, 50}, PercentageWeights(33.2, 33.2, 33.3))
	if err != nil {
		t.Errorf("WeightedMean returned error for near-100 sum: %v", err)
	}
}

func TestWeightedMean_PercentageBadSum(t *testing.T) {
	_, err := WeightedMean([]float64{80, 90}, PercentageWeights(40, 40))
	var invalid *ErrInvalidWeights
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want ErrInvalidWeights", err)
	}
	if invalid.Kind != WeightPercentage {
		t.Errorf("Kind = %s, want percentage", invalid.Kind)
	}
	if !almostEqual(invalid.Sum, 80) {
		t.Errorf("Sum = %f, want 80", invalid.Sum)
	}
}

func TestWeightedMean_Frequency(t *testing.T) {
	values := []float64{6, 8, 10, 12}
	spec := FrequencyWeights(2, 3, 4, 5)
	got, err := WeightedMean(values, spec)
	if err != nil {
		t.Fatalf("WeightedMean returned error: %v", err)
	}
	// (6·2 + 8·3 + 10·4 + 12·5) / 14 = 136/14
	want := 136.0 / 14.0
	if !almostEqual(got, want) {
		t.Errorf("WeightedMean = %f, want %f", got, want)
	}
	if math.Abs(math.Round(got*100)/100-9.71) > epsilon {
		t.Errorf("rounded WeightedMean = %f, want 9.71", math.Round(got*100)/100)
	}
}

func TestWeightedMean_FrequencyZeroSum(t *testing.T) {
	_, err := WeightedMean([]float64{5, 6}, FrequencyWeights(0, 0))
	var invalid *ErrInvalidWeights
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want ErrInvalidWeights", err)
	}
	if invalid.Kind != WeightFrequency {
		t.Errorf("Kind = %s, want frequency", invalid.Kind)
	}
}

func TestWeightedMean_FrequencyNegative(t *testing.T) {
	_, err := WeightedMean([]float64{5, 6}, FrequencyWeights(3, -1))
	var invalid *ErrInvalidWeights
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want ErrInvalidWeights", err)
	}
}

func TestWeightedMean_LengthMismatch(t *testing.T) {
	_, err := WeightedMean([]float64{1, 2, 3}, FrequencyWeights(1, 2))
	var invalid *ErrInvalidWeights
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want ErrInvalidWeights", err)
	}
}

func TestWeightedMean_Empty(t *testing.T) {
	_, err := WeightedMean(nil, FrequencyWeights())
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("error = %v, want ErrEmptyDataset", err)
	}
}

func TestWeightedMean_UniformFrequenciesEqualMean(t *testing.T) {
	values := []float64{10, 20, 30, 40}
	weighted, err := WeightedMean(values, FrequencyWeights(2, 2, 2, 2))
	if err != nil {
		t.Fatalf("WeightedMean returned error: %v", err)
	}
	plain, _ := Mean(values)
	if !almostEqual(weighted, plain) {
		t.Errorf("WeightedMean = %f, want plain mean %f", weighted, plain)
	}
}
