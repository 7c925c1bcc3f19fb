// Package contextdata is the boundary to the external lookup source
// that supplies human-facing filler content (names, places, courses)
// for question templates. Generators depend on it only through the
// Provider interface; the engine never parses lookup files itself.
package contextdata

import "fmt"

// Category identifies one lookup table of filler strings.
type Category string

const (
	CategoryName     Category = "name"
	CategoryPlace    Category = "place"
	CategoryCourse   Category = "course"
	CategoryJob      Category = "job"
	CategoryBusiness Category = "business"
	CategoryVehicle  Category = "vehicle"
)

// Categories lists every known category in a fixed order.
var Categories = []Category{
	CategoryName,
	CategoryPlace,
	CategoryCourse,
	CategoryJob,
	CategoryBusiness,
	CategoryVehicle,
}

// Provider supplies filler values by category. Implementations must
// return the same value for the same index so that seeded template
// resolution stays reproducible, and must never return an empty string
// for a known category.
type Provider interface {
	// Get returns the value at index for the category. Indexes outside
	// [0, Count) wrap around, so any non-negative index is valid.
	Get(category Category, index int) (string, error)

	// Count returns the number of values available for the category.
	Count(category Category) (int, error)
}

// ErrMissingCategory indicates the provider has no data for a requested
// category.
type ErrMissingCategory struct {
	Category Category
}

func (e *ErrMissingCategory) Error() string {
	return fmt.Sprintf("no context data for category %q", e.Category)
}
