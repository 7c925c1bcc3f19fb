package questiongen

import (
	"math/rand"
	"regexp"
	"strings"

	"github.com/abhisek/statgen/internal/contextdata"
)

// Template is one phrasing skeleton for a question context. Placeholders
// use {name} syntax and are filled from the context data provider.
type Template struct {
	// ID identifies the template for given-data records and tests.
	ID string

	// Text is the skeleton with {placeholder} markers.
	Text string

	// Unit is the display unit for values in this context ("", "°C",
	// "points", "$"). Prefix units abut the number.
	Unit       string
	UnitPrefix bool
}

// placeholderCategories maps template placeholders to provider
// categories. Placeholders not listed here (period, n, ...) must be
// supplied by the caller as extra values.
var placeholderCategories = map[string]contextdata.Category{
	"name":     contextdata.CategoryName,
	"city":     contextdata.CategoryPlace,
	"venue":    contextdata.CategoryBusiness,
	"course":   contextdata.CategoryCourse,
	"job":      contextdata.CategoryJob,
	"business": contextdata.CategoryBusiness,
	"vehicle":  contextdata.CategoryVehicle,
}

var placeholderRe = regexp.MustCompile(`\{([a-z_]+)\}`)

// Resolver fills template placeholders from a context data provider.
// Provider lookups are index-based and the indexes come from the
// caller's seeded generator, keeping resolution reproducible.
type Resolver struct {
	provider contextdata.Provider
}

// NewResolver creates a Resolver over the given provider.
func NewResolver(provider contextdata.Provider) *Resolver {
	return &Resolver{provider: provider}
}

// Resolve substitutes every placeholder in text. Extra values win over
// provider categories; repeated placeholders resolve to the same value
// so the prose stays coherent. An unresolvable placeholder yields
// ErrMissingPlaceholder.
func (r *Resolver) Resolve(text string, rng *rand.Rand, extra map[string]string) (string, error) {
	resolved := make(map[string]string, 4)

	var firstErr error
	out := placeholderRe.ReplaceAllStringFunc(text, func(match string) string {
		if firstErr != nil {
			return match
		}
		name := strings.Trim(match, "{}")

		if v, ok := extra[name]; ok {
			return v
		}
		if v, ok := resolved[name]; ok {
			return v
		}

		category, ok := placeholderCategories[name]
		if !ok {
			firstErr = &ErrMissingPlaceholder{Placeholder: name, Err: &contextdata.ErrMissingCategory{Category: contextdata.Category(name)}}
			return match
		}

		count, err := r.provider.Count(category)
		if err != nil {
			firstErr = &ErrMissingPlaceholder{Placeholder: name, Err: err}
			return match
		}

		value, err := r.provider.Get(category, rng.Intn(count))
		if err != nil {
			firstErr = &ErrMissingPlaceholder{Placeholder: name, Err: err}
			return match
		}

		resolved[name] = value
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

// pick selects a seed-deterministic template from a non-empty list.
func pick(rng *rand.Rand, templates []Template) Template {
	return templates[rng.Intn(len(templates))]
}
