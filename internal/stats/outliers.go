package stats

import "math"

// IQRFenceMultiplier is the Tukey fence multiplier used by
// IdentifyOutliers. A value below Q1 − 1.5·IQR or above Q3 + 1.5·IQR is
// classified as an outlier.
const IQRFenceMultiplier = 1.5

// stddevFallbackMultiplier is used when the IQR is zero (heavily
// repeated data): values more than this many population standard
// deviations from the median are outliers.
const stddevFallbackMultiplier = 2.0

// minOutlierDetectionSize is the smallest dataset for which outlier
// classification is meaningful. Quartiles of fewer points say nothing
// about a "cluster".
const minOutlierDetectionSize = 4

// OutlierSet holds the values classified as outliers, split by side.
// Values retain dataset order within each side. Both slices are empty
// when no outliers exist.
type OutlierSet struct {
	Low  []float64
	High []float64
}

// All returns low then high outliers as a single slice.
func (o OutlierSet) All() []float64 {
	all := make([]float64, 0, len(o.Low)+len(o.High))
	all = append(all, o.Low...)
	all = append(all, o.High...)
	return all
}

// Count returns the total number of outliers.
func (o OutlierSet) Count() int { return len(o.Low) + len(o.High) }

// TrimmedMeanResult pairs the untrimmed mean with the outliers removed
// and the mean of the remaining values.
type TrimmedMeanResult struct {
	UntrimmedMean float64
	Outliers      OutlierSet
	TrimmedMean   float64
}

// IdentifyOutliers classifies values as low or high outliers using
// Tukey's fences: Q1 − 1.5·IQR and Q3 + 1.5·IQR, with quartiles computed
// by the median-of-halves method. When the IQR collapses to zero the
// rule falls back to flagging values more than 2 population standard
// deviations from the median. Datasets smaller than 4 values have no
// outliers by definition.
func IdentifyOutliers(data []float64) (OutlierSet, error) {
	if len(data) == 0 {
		return OutlierSet{}, ErrEmptyDataset
	}
	if len(data) < minOutlierDetectionSize {
		return OutlierSet{}, nil
	}

	sorted := sortedCopy(data)
	q1, q3 := quartiles(sorted)
	iqr := q3 - q1

	var lowerBound, upperBound float64
	if iqr == 0 {
		med := medianSorted(sorted)
		sd := populationStddev(sorted)
		if sd == 0 {
			return OutlierSet{}, nil
		}
		lowerBound = med - stddevFallbackMultiplier*sd
		upperBound = med + stddevFallbackMultiplier*sd
	} else {
		lowerBound = q1 - IQRFenceMultiplier*iqr
		upperBound = q3 + IQRFenceMultiplier*iqr
	}

	var set OutlierSet
	for _, v := range data {
		switch {
		case v < lowerBound:
			set.Low = append(set.Low, v)
		case v > upperBound:
			set.High = append(set.High, v)
		}
	}
	return set, nil
}

// OutlierBounds returns the detection thresholds IdentifyOutliers would
// apply to data. Used by the dataset synthesizer to place injected
// outliers safely beyond the fences.
func OutlierBounds(data []float64) (lower, upper float64, err error) {
	if len(data) == 0 {
		return 0, 0, ErrEmptyDataset
	}
	sorted := sortedCopy(data)
	q1, q3 := quartiles(sorted)
	iqr := q3 - q1
	if iqr == 0 {
		med := medianSorted(sorted)
		sd := populationStddev(sorted)
		return med - stddevFallbackMultiplier*sd, med + stddevFallbackMultiplier*sd, nil
	}
	return q1 - IQRFenceMultiplier*iqr, q3 + IQRFenceMultiplier*iqr, nil
}

// TrimmedMean computes the mean, removes exactly the values flagged by
// IdentifyOutliers, and recomputes the mean over the remainder.
func TrimmedMean(data []float64) (TrimmedMeanResult, error) {
	untrimmed, err := Mean(data)
	if err != nil {
		return TrimmedMeanResult{}, err
	}

	outliers, err := IdentifyOutliers(data)
	if err != nil {
		return TrimmedMeanResult{}, err
	}

	remaining := RemoveOutliers(data, outliers)
	if len(remaining) == 0 {
		return TrimmedMeanResult{}, ErrAllValuesTrimmed
	}

	trimmed, err := Mean(remaining)
	if err != nil {
		return TrimmedMeanResult{}, err
	}

	return TrimmedMeanResult{
		UntrimmedMean: untrimmed,
		Outliers:      outliers,
		TrimmedMean:   trimmed,
	}, nil
}

// RemoveOutliers returns a copy of data with each flagged outlier value
// removed once per flag, preserving order of the remaining values.
func RemoveOutliers(data []float64, outliers OutlierSet) []float64 {
	toRemove := make(map[float64]int)
	for _, v := range outliers.All() {
		toRemove[v]++
	}

	remaining := make([]float64, 0, len(data))
	for _, v := range data {
		if toRemove[v] > 0 {
			toRemove[v]--
			continue
		}
		remaining = append(remaining, v)
	}
	return remaining
}

// quartiles computes Q1 and Q3 of sorted data using the median-of-halves
// method: the middle element is excluded from both halves for odd n.
func quartiles(sorted []float64) (q1, q3 float64) {
	n := len(sorted)
	half := n / 2
	lower := sorted[:half]
	var upper []float64
	if n%2 == 0 {
		upper = sorted[half:]
	} else {
		upper = sorted[half+1:]
	}
	return medianSorted(lower), medianSorted(upper)
}

// populationStddev computes the population standard deviation (÷n).
func populationStddev(data []float64) float64 {
	mean, _ := Mean(data)
	sumSq := 0.0
	for _, v := range data {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(data)))
}
