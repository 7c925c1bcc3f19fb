package stats

import "math"

// PercentileRank computes the percentile rank of target within data
// using PR = (b/n) × 100, where b is the count of values strictly below
// target. Values equal to target are excluded from b. The result is
// rounded to the nearest whole percentile; target need not be a member
// of the dataset.
func PercentileRank(data []float64, target float64) (float64, error) {
	exact, err := PercentileRankExact(data, target)
	if err != nil {
		return 0, err
	}
	return math.Round(exact), nil
}

// PercentileRankExact is PercentileRank without the final rounding.
func PercentileRankExact(data []float64, target float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyDataset
	}
	below := CountBelow(data, target)
	return float64(below) / float64(len(data)) * 100, nil
}

// CountBelow returns the number of values in data strictly less than
// target.
func CountBelow(data []float64, target float64) int {
	below := 0
	for _, v := range data {
		if v < target {
			below++
		}
	}
	return below
}
