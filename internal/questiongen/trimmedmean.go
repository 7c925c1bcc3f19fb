package questiongen

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/abhisek/statgen/internal/contextdata"
	"github.com/abhisek/statgen/internal/difficulty"
	"github.com/abhisek/statgen/internal/question"
	"github.com/abhisek/statgen/internal/stats"
)

var trimmedMeanTemplates = []Template{
	{ID: "employee_salaries", Text: "The annual salaries for employees at {business} are shown below.", Unit: "dollars"},
	{ID: "product_times", Text: "{name} tracked the time to complete each item over {period} items.", Unit: "hours"},
	{ID: "temperature_data", Text: "Daily high temperatures in {city} during one week in January are shown below.", Unit: "°C"},
	{ID: "test_scores", Text: "{name} recorded quiz scores for students in {course}.", Unit: "points"},
}

// TrimmedMean generates two-part questions: the arithmetic mean, then
// outlier identification and the trimmed mean. Datasets carry 1-2
// deliberately injected outliers that the detection rule is guaranteed
// to flag.
type TrimmedMean struct {
	table    *difficulty.Table
	synth    *Synthesizer
	resolver *Resolver
}

// NewTrimmedMean creates the generator.
func NewTrimmedMean(table *difficulty.Table, provider contextdata.Provider) *TrimmedMean {
	return &TrimmedMean{
		table:    table,
		synth:    NewSynthesizer(table),
		resolver: NewResolver(provider),
	}
}

func (g *TrimmedMean) Type() question.TypeTag { return question.TypeTrimmedMean }

// Generate produces a trimmed-mean question.
func (g *TrimmedMean) Generate(difficultyLevel int, seed int64) (*question.Question, error) {
	rng := newRNG(seed)

	level, err := g.table.Get(difficultyLevel)
	if err != nil {
		return nil, err
	}

	synthesized, err := g.synth.Synthesize(rng, SynthRequest{
		Difficulty:     difficultyLevel,
		MinSize:        minOutlierCoreSize,
		InjectOutliers: true,
	})
	if err != nil {
		return nil, err
	}
	dataset := synthesized.Values

	result, err := stats.TrimmedMean(dataset)
	if err != nil {
		return nil, err
	}

	tmpl := pick(rng, trimmedMeanTemplates)
	context, err := g.resolver.Resolve(tmpl.Text, rng, map[string]string{
		"period": strconv.Itoa(len(dataset)),
	})
	if err != nil {
		return nil, err
	}

	datasetStr := formatValues(dataset)
	text := fmt.Sprintf("%s The values are:\n\n%s\n\na) Calculate the arithmetic mean.\nb) Identify any outliers and calculate the trimmed mean.",
		context, datasetStr)

	decimals := level.DecimalPlaces + 1
	meanStr := formatValue(roundTo(result.UntrimmedMean, decimals))
	trimmedStr := formatValue(roundTo(result.TrimmedMean, decimals))

	sorted := append([]float64(nil), dataset...)
	sort.Float64s(sorted)
	remaining := stats.RemoveOutliers(sorted, result.Outliers)

	stepA := fmt.Sprintf("a) Arithmetic mean: %s ÷ %d = %s %s",
		joinPlus(dataset), len(dataset), meanStr, tmpl.Unit)

	stepsB := []string{
		fmt.Sprintf("b) Sorted data: %s", formatValues(sorted)),
		fmt.Sprintf("   Outliers: %s", describeOutliers(result.Outliers)),
		fmt.Sprintf("   Trimmed data: %s", formatValues(remaining)),
		fmt.Sprintf("   Trimmed mean: %s ÷ %d = %s %s",
			joinPlus(remaining), len(remaining), trimmedStr, tmpl.Unit),
	}

	return &question.Question{
		ID:         question.DeriveID(g.Type(), difficultyLevel, seed),
		Type:       g.Type(),
		Difficulty: difficultyLevel,
		Seed:       seed,
		Context:    context,
		Text:       text,
		Dataset:    dataset,
		Parts: []question.Part{
			{
				Label:         "a",
				Prompt:        "Calculate the arithmetic mean.",
				Answer:        withUnit(meanStr, tmpl.Unit, tmpl.UnitPrefix),
				Format:        question.FormatNumericUnit,
				SolutionSteps: []string{stepA},
				Marks:         1,
			},
			{
				Label:         "b",
				Prompt:        "Identify any outliers and calculate the trimmed mean.",
				Answer:        withUnit(trimmedStr, tmpl.Unit, tmpl.UnitPrefix),
				Format:        question.FormatNumericUnit,
				SolutionSteps: stepsB,
				Marks:         1,
			},
		},
	}, nil
}

// describeOutliers renders an outlier set for the answer key, e.g.
// "12 (low) and 300 (high)".
func describeOutliers(set stats.OutlierSet) string {
	if set.Count() == 0 {
		return "none"
	}
	var parts []string
	for _, v := range set.Low {
		parts = append(parts, fmt.Sprintf("%s (low)", formatValue(v)))
	}
	for _, v := range set.High {
		parts = append(parts, fmt.Sprintf("%s (high)", formatValue(v)))
	}
	if len(parts) == 1 {
		return parts[0]
	}
	out := parts[0]
	for i := 1; i < len(parts); i++ {
		out += " and " + parts[i]
	}
	return out
}
