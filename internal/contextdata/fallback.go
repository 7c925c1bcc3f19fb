package contextdata

// fallbackTables is the compiled-in value set used when no richer
// lookup source is configured. Every known category carries at least
// five entries.
var fallbackTables = map[Category][]string{
	CategoryName: {
		"Mr. Chen",
		"Ms. Smith",
		"Dr. Brown",
		"Ms. Lee",
		"Mr. Park",
	},
	CategoryPlace: {
		"Winnipeg",
		"Brandon",
		"Thompson",
		"Portage la Prairie",
		"Steinbach",
	},
	CategoryCourse: {
		"Mathematics",
		"English",
		"Science",
		"History",
		"Art",
	},
	CategoryJob: {
		"mowing lawns",
		"babysitting",
		"tutoring",
		"dog walking",
		"retail sales",
	},
	CategoryBusiness: {
		"The Grand Theatre",
		"Royal Concert Hall",
		"City Auditorium",
		"Community Playhouse",
		"Arts Centre",
	},
	CategoryVehicle: {
		"Honda Civic",
		"Toyota Corolla",
		"Ford F-150",
		"Chevrolet Malibu",
		"Mazda 3",
	},
}

// FallbackProvider serves the compiled-in value sets. It is stateless
// and safe for concurrent use.
type FallbackProvider struct{}

// NewFallbackProvider returns the compiled-in provider.
func NewFallbackProvider() *FallbackProvider { return &FallbackProvider{} }

func (p *FallbackProvider) Get(category Category, index int) (string, error) {
	values, ok := fallbackTables[category]
	if !ok {
		return "", &ErrMissingCategory{Category: category}
	}
	if index < 0 {
		index = -index
	}
	return values[index%len(values)], nil
}

func (p *FallbackProvider) Count(category Category) (int, error) {
	values, ok := fallbackTables[category]
	if !ok {
		return 0, &ErrMissingCategory{Category: category}
	}
	return len(values), nil
}
