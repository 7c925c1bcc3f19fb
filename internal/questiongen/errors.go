package questiongen

import (
	"errors"
	"fmt"
)

// ErrOutlierPlacement indicates the synthesizer could not place injected
// outliers so that the detection rule flags exactly those values within
// its bounded attempt budget. Callers retry with a fresh seed.
var ErrOutlierPlacement = errors.New("injected outliers not cleanly detectable")

// ErrMissingPlaceholder indicates a template placeholder the context
// data provider could not supply. Propagated, never silently defaulted;
// fallback values are the provider's responsibility.
type ErrMissingPlaceholder struct {
	Placeholder string
	Err         error
}

func (e *ErrMissingPlaceholder) Error() string {
	return fmt.Sprintf("cannot resolve placeholder {%s}: %v", e.Placeholder, e.Err)
}

func (e *ErrMissingPlaceholder) Unwrap() error { return e.Err }
