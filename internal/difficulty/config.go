// Package difficulty defines the five-level difficulty table that
// controls value ranges, decimal precision, dataset sizes and outlier
// probability for synthesized datasets. The table is built once at
// startup, validated for internal consistency, and read-only afterwards,
// so it is safe for unsynchronized concurrent reads.
package difficulty

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MinLevel and MaxLevel bound the difficulty ordinal.
const (
	MinLevel = 1
	MaxLevel = 5
)

var validate = validator.New()

// Range is an inclusive numeric interval for generated values.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Width returns the span of the range.
func (r Range) Width() float64 { return r.Max - r.Min }

// SizeRange is an inclusive interval for dataset cardinality.
type SizeRange struct {
	Min int `yaml:"min" validate:"min=1"`
	Max int `yaml:"max" validate:"min=1"`
}

// Level is the validated configuration record for one difficulty level.
type Level struct {
	// Level is the difficulty ordinal, 1 (easiest) to 5 (hardest).
	Level int `yaml:"level" validate:"min=1,max=5"`

	// Values bounds the magnitude of synthesized core values.
	Values Range `yaml:"values"`

	// DecimalPlaces is how many decimal places synthesized values may
	// carry. 0 means integers only.
	DecimalPlaces int `yaml:"decimal_places" validate:"min=0,max=4"`

	// Size bounds the dataset cardinality before outlier injection.
	Size SizeRange `yaml:"size"`

	// OutlierProbability is the chance an outlier-bearing question type
	// injects a second (opposite-side) outlier rather than just one.
	OutlierProbability float64 `yaml:"outlier_probability" validate:"min=0,max=1"`
}

// ErrDegenerateConfig indicates a difficulty record that cannot produce
// well-formed datasets, e.g. a value range with min > max.
type ErrDegenerateConfig struct {
	Level  int
	Reason string
}

func (e *ErrDegenerateConfig) Error() string {
	return fmt.Sprintf("degenerate difficulty config (level %d): %s", e.Level, e.Reason)
}

// Table is the process-wide, read-only set of five difficulty levels.
type Table struct {
	levels [MaxLevel]Level
}

// NewTable validates the given records and builds a Table. Exactly one
// record per level 1..5 is required. Higher levels must not shrink in
// numeric complexity: value-range width and decimal places are checked
// to be non-decreasing.
func NewTable(levels []Level) (*Table, error) {
	if len(levels) != MaxLevel {
		return nil, &ErrDegenerateConfig{Reason: fmt.Sprintf("expected %d level records, got %d", MaxLevel, len(levels))}
	}

	var t Table
	seen := [MaxLevel + 1]bool{}
	for _, lv := range levels {
		if err := validate.Struct(lv); err != nil {
			return nil, &ErrDegenerateConfig{Level: lv.Level, Reason: err.Error()}
		}
		if lv.Values.Min > lv.Values.Max {
			return nil, &ErrDegenerateConfig{Level: lv.Level, Reason: "value range min > max"}
		}
		if lv.Size.Min > lv.Size.Max {
			return nil, &ErrDegenerateConfig{Level: lv.Level, Reason: "size range min > max"}
		}
		if seen[lv.Level] {
			return nil, &ErrDegenerateConfig{Level: lv.Level, Reason: "duplicate level"}
		}
		seen[lv.Level] = true
		t.levels[lv.Level-1] = lv
	}

	for i := 1; i < MaxLevel; i++ {
		prev, cur := t.levels[i-1], t.levels[i]
		if cur.Values.Width() < prev.Values.Width() {
			return nil, &ErrDegenerateConfig{Level: cur.Level, Reason: "value range narrower than previous level"}
		}
		if cur.DecimalPlaces < prev.DecimalPlaces {
			return nil, &ErrDegenerateConfig{Level: cur.Level, Reason: "fewer decimal places than previous level"}
		}
	}

	return &t, nil
}

// Get returns the record for the given level.
func (t *Table) Get(level int) (Level, error) {
	if level < MinLevel || level > MaxLevel {
		return Level{}, &ErrDegenerateConfig{Level: level, Reason: "level out of range"}
	}
	return t.levels[level-1], nil
}

// Default returns the built-in difficulty table.
func Default() *Table {
	t, err := NewTable(defaultLevels())
	if err != nil {
		// The built-in table is validated by tests; reaching this is a
		// programming error.
		panic(err)
	}
	return t
}

func defaultLevels() []Level {
	return []Level{
		{Level: 1, Values: Range{Min: 0, Max: 10}, DecimalPlaces: 0, Size: SizeRange{Min: 5, Max: 8}, OutlierProbability: 0.0},
		{Level: 2, Values: Range{Min: 0, Max: 20}, DecimalPlaces: 0, Size: SizeRange{Min: 7, Max: 10}, OutlierProbability: 0.2},
		{Level: 3, Values: Range{Min: 10, Max: 100}, DecimalPlaces: 0, Size: SizeRange{Min: 8, Max: 12}, OutlierProbability: 0.5},
		{Level: 4, Values: Range{Min: 10, Max: 200}, DecimalPlaces: 1, Size: SizeRange{Min: 8, Max: 12}, OutlierProbability: 0.7},
		{Level: 5, Values: Range{Min: 10, Max: 300}, DecimalPlaces: 2, Size: SizeRange{Min: 10, Max: 15}, OutlierProbability: 0.9},
	}
}
