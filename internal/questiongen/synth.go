package questiongen

import (
	"math/rand"

	"github.com/abhisek/statgen/internal/difficulty"
	"github.com/abhisek/statgen/internal/stats"
)

const (
	// minModeBearingSize is the smallest dataset for question types
	// that ask about the mode. Below 3 values "no mode" is ill-defined.
	minModeBearingSize = 3

	// minOutlierCoreSize is the smallest core cluster when outlier
	// injection is requested; fewer points do not define a cluster.
	minOutlierCoreSize = 5

	// synthMaxAttempts bounds the redraw loop that guarantees injected
	// outliers are exactly the values the detection rule flags.
	synthMaxAttempts = 8
)

// SynthRequest describes the dataset a question type needs.
type SynthRequest struct {
	// Difficulty selects the level record governing ranges and
	// precision.
	Difficulty int

	// MinSize is the question type's floor on dataset cardinality,
	// applied on top of the level's size range.
	MinSize int

	// InjectOutliers asks for one or two values deliberately placed
	// outside the core cluster.
	InjectOutliers bool
}

// SynthResult is a synthesized dataset plus the values that were
// injected as outliers (empty unless injection was requested).
type SynthResult struct {
	// Values is the full dataset in randomized, seed-deterministic
	// presentation order.
	Values []float64

	InjectedLow  []float64
	InjectedHigh []float64
}

// Injected returns all injected outlier values, low side first.
func (r SynthResult) Injected() []float64 {
	all := make([]float64, 0, len(r.InjectedLow)+len(r.InjectedHigh))
	all = append(all, r.InjectedLow...)
	all = append(all, r.InjectedHigh...)
	return all
}

// Synthesizer produces difficulty-calibrated random datasets. All
// randomness comes from the caller's seeded generator, so identical
// seeds produce identical datasets.
type Synthesizer struct {
	table *difficulty.Table
}

// NewSynthesizer creates a Synthesizer over the given difficulty table.
func NewSynthesizer(table *difficulty.Table) *Synthesizer {
	return &Synthesizer{table: table}
}

// Synthesize draws a dataset for the request using rng.
//
// Outlier injection places candidates beyond the detection fences of
// the core cluster with a safety margin, then verifies against
// stats.IdentifyOutliers that exactly the injected values are flagged,
// redrawing (deterministically) on the rare mismatch.
func (s *Synthesizer) Synthesize(rng *rand.Rand, req SynthRequest) (SynthResult, error) {
	level, err := s.table.Get(req.Difficulty)
	if err != nil {
		return SynthResult{}, err
	}

	if !req.InjectOutliers {
		return SynthResult{Values: s.drawPlain(rng, level, req.MinSize)}, nil
	}

	for attempt := 0; attempt < synthMaxAttempts; attempt++ {
		result, ok := s.drawWithOutliers(rng, level, req.MinSize)
		if ok {
			return result, nil
		}
	}
	return SynthResult{}, ErrOutlierPlacement
}

// drawPlain draws values uniformly across the level's full range.
func (s *Synthesizer) drawPlain(rng *rand.Rand, level difficulty.Level, minSize int) []float64 {
	size := s.drawSize(rng, level, minSize)
	values := make([]float64, size)
	for i := range values {
		values[i] = s.drawValue(rng, level.Values.Min, level.Values.Max, level.DecimalPlaces)
	}
	return values
}

// drawWithOutliers draws a tight core cluster plus 1-2 injected
// outliers and verifies detection. Returns ok=false when the rounded
// outliers land inside the final dataset's fences (or a core value
// lands outside them), which triggers a redraw.
func (s *Synthesizer) drawWithOutliers(rng *rand.Rand, level difficulty.Level, minSize int) (SynthResult, bool) {
	coreSize := s.drawSize(rng, level, minSize)
	if coreSize < minOutlierCoreSize {
		coreSize = minOutlierCoreSize
	}

	// Core cluster spans 25-50% of the level's range so the fences
	// stay well inside the representable values.
	width := level.Values.Width()
	clusterWidth := width * (0.25 + 0.25*rng.Float64())
	clusterMin := level.Values.Min + rng.Float64()*(width-clusterWidth)

	core := make([]float64, coreSize)
	for i := range core {
		core[i] = s.drawValue(rng, clusterMin, clusterMin+clusterWidth, level.DecimalPlaces)
	}

	lower, upper, err := stats.OutlierBounds(core)
	if err != nil {
		return SynthResult{}, false
	}

	// Margin keeps injected values beyond the fences even after the
	// outliers themselves shift the quartiles of the full dataset.
	margin := clusterWidth/2 + 1

	var result SynthResult
	wantLow := rng.Intn(2) == 0
	wantHigh := !wantLow
	if rng.Float64() < level.OutlierProbability {
		wantLow, wantHigh = true, true
	}

	values := append([]float64(nil), core...)
	if wantLow {
		low := roundTo(lower-margin-rng.Float64()*margin, level.DecimalPlaces)
		result.InjectedLow = []float64{low}
		values = append(values, low)
	}
	if wantHigh {
		high := roundTo(upper+margin+rng.Float64()*margin, level.DecimalPlaces)
		result.InjectedHigh = []float64{high}
		values = append(values, high)
	}

	// Seed-deterministic interleave of core and outlier values.
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	result.Values = values

	if !s.detectionMatches(result) {
		return SynthResult{}, false
	}
	return result, true
}

// detectionMatches verifies the detection rule flags exactly the
// injected values on the final dataset.
func (s *Synthesizer) detectionMatches(result SynthResult) bool {
	detected, err := stats.IdentifyOutliers(result.Values)
	if err != nil {
		return false
	}
	return sameValues(detected.Low, result.InjectedLow) && sameValues(detected.High, result.InjectedHigh)
}

func (s *Synthesizer) drawSize(rng *rand.Rand, level difficulty.Level, minSize int) int {
	size := level.Size.Min + rng.Intn(level.Size.Max-level.Size.Min+1)
	if size < minSize {
		size = minSize
	}
	return size
}

func (s *Synthesizer) drawValue(rng *rand.Rand, min, max float64, decimals int) float64 {
	return roundTo(min+rng.Float64()*(max-min), decimals)
}

// sameValues compares two outlier slices as multisets.
func sameValues(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[float64]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}
