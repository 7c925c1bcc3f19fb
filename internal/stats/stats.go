// Package stats implements the pure statistical routines behind every
// generated question: mean, median, mode, trimmed mean, percentile rank
// and weighted mean. Functions are deterministic, take no locks, and
// never mutate their input.
package stats

import (
	"math"
	"sort"
)

// ModeKind classifies the outcome of a mode calculation.
type ModeKind string

const (
	// KindNoMode means every value occurs exactly once.
	KindNoMode ModeKind = "no_mode"

	// KindSingleMode means exactly one value has the maximum frequency.
	KindSingleMode ModeKind = "single_mode"

	// KindMultiMode means two or more values tie for the maximum
	// frequency. This includes the case where every distinct value
	// repeats the same number of times.
	KindMultiMode ModeKind = "multi_mode"
)

// ModeResult holds all tied modes of a dataset, sorted ascending.
// Values is empty when Kind is KindNoMode.
type ModeResult struct {
	Values []float64
	Kind   ModeKind
}

// Mean returns the arithmetic mean of data.
func Mean(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyDataset
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data)), nil
}

// Median returns the median of data. The input is not modified; sorting
// happens on a copy. For even cardinality the average of the two central
// values is returned.
func Median(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyDataset
	}
	sorted := sortedCopy(data)
	return medianSorted(sorted), nil
}

// Mode returns every value sharing the maximum frequency. A dataset where
// all frequencies equal 1 has no mode; a dataset where two or more values
// share a maximum frequency greater than 1 is multi-modal and all tied
// values are reported, not just one.
func Mode(data []float64) (ModeResult, error) {
	if len(data) == 0 {
		return ModeResult{}, ErrEmptyDataset
	}

	counts := make(map[float64]int, len(data))
	for _, v := range data {
		counts[v]++
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	if maxCount == 1 {
		return ModeResult{Kind: KindNoMode}, nil
	}

	var modes []float64
	for v, c := range counts {
		if c == maxCount {
			modes = append(modes, v)
		}
	}
	sort.Float64s(modes)

	kind := KindSingleMode
	if len(modes) > 1 {
		kind = KindMultiMode
	}
	return ModeResult{Values: modes, Kind: kind}, nil
}

// Sum returns the total of data. A zero-length input sums to 0.
func Sum(data []float64) float64 {
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum
}

// ValueAtPercentile returns the value at the given percentile (0-100)
// using linear interpolation between closest ranks on the sorted data.
func ValueAtPercentile(data []float64, percentile float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyDataset
	}
	sorted := sortedCopy(data)

	p := math.Min(math.Max(percentile, 0), 100)
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo], nil
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo]), nil
}

func sortedCopy(data []float64) []float64 {
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	return sorted
}

// medianSorted returns the median of already-sorted data.
func medianSorted(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
