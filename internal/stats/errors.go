package stats

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset indicates a statistic was requested over zero values.
var ErrEmptyDataset = errors.New("dataset is empty")

// ErrAllValuesTrimmed indicates outlier removal would leave no values
// to average.
var ErrAllValuesTrimmed = errors.New("trimming removed every value")

// ErrInvalidWeights indicates a weight specification that cannot produce
// a weighted mean.
type ErrInvalidWeights struct {
	Kind   WeightKind
	Sum    float64
	Reason string
}

func (e *ErrInvalidWeights) Error() string {
	return fmt.Sprintf("invalid %s weights (sum %g): %s", e.Kind, e.Sum, e.Reason)
}
