package questiongen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/statgen/internal/contextdata"
	"github.com/abhisek/statgen/internal/difficulty"
	"github.com/abhisek/statgen/internal/question"
	"github.com/abhisek/statgen/internal/stats"
)

var meanMedianModeTemplates = []Template{
	{ID: "concert_attendance", Text: "{name} tracked nightly attendance at {venue} in {city} over {period} nights."},
	{ID: "quiz_scores", Text: "{name} recorded quiz scores for students taking {course}."},
	{ID: "job_earnings", Text: "{name} tracked daily earnings from {job} over {period} days."},
	{ID: "tips_received", Text: "{name} works as a server and received the following tips during one shift."},
	{ID: "product_sales", Text: "{name} manages {business} and recorded daily sales over {period} days."},
}

var meanMedianModePhrasings = []string{
	"Calculate the mean, median, and mode.",
	"Determine the measures of central tendency.",
	"Find the mean (average), median (middle value), and mode (most frequent value).",
}

// MeanMedianMode generates central-tendency questions: one dataset,
// three requested statistics.
type MeanMedianMode struct {
	table    *difficulty.Table
	synth    *Synthesizer
	resolver *Resolver
}

// NewMeanMedianMode creates the generator.
func NewMeanMedianMode(table *difficulty.Table, provider contextdata.Provider) *MeanMedianMode {
	return &MeanMedianMode{
		table:    table,
		synth:    NewSynthesizer(table),
		resolver: NewResolver(provider),
	}
}

func (g *MeanMedianMode) Type() question.TypeTag { return question.TypeMeanMedianMode }

// Generate produces a mean/median/mode question.
func (g *MeanMedianMode) Generate(difficultyLevel int, seed int64) (*question.Question, error) {
	rng := newRNG(seed)

	level, err := g.table.Get(difficultyLevel)
	if err != nil {
		return nil, err
	}

	result, err := g.synth.Synthesize(rng, SynthRequest{
		Difficulty: difficultyLevel,
		MinSize:    minModeBearingSize,
	})
	if err != nil {
		return nil, err
	}
	dataset := result.Values

	mean, err := stats.Mean(dataset)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(dataset)
	if err != nil {
		return nil, err
	}
	mode, err := stats.Mode(dataset)
	if err != nil {
		return nil, err
	}

	tmpl := pick(rng, meanMedianModeTemplates)
	context, err := g.resolver.Resolve(tmpl.Text, rng, map[string]string{
		"period": strconv.Itoa(len(dataset)),
	})
	if err != nil {
		return nil, err
	}

	phrasing := meanMedianModePhrasings[rng.Intn(len(meanMedianModePhrasings))]
	datasetStr := formatValues(dataset)
	text := fmt.Sprintf("%s The values recorded were:\n\n%s\n\n%s", context, datasetStr, phrasing)

	// One extra decimal over the synthesized precision keeps the mean
	// exact enough to grade without a long tail.
	meanRounded := roundTo(mean, level.DecimalPlaces+1)
	medianRounded := roundTo(median, level.DecimalPlaces+1)
	modeStr := modeDisplay(dataset, mode)

	answer := fmt.Sprintf("mean = %s; median = %s; mode = %s",
		formatValue(meanRounded), formatValue(medianRounded), modeStr)

	steps := []string{
		fmt.Sprintf("Dataset: %s", datasetStr),
		fmt.Sprintf("Mean: %s ÷ %d = %s", joinPlus(dataset), len(dataset), formatValue(meanRounded)),
		fmt.Sprintf("Median: %s (middle value when sorted)", formatValue(medianRounded)),
		fmt.Sprintf("Mode: %s", modeStr),
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
				Prompt:        phrasing,
				Answer:        answer,
				Format:        question.FormatMultipleValues,
				SolutionSteps: steps,
				Marks:         2,
			},
		},
	}, nil
}

// modeDisplay renders a mode result the way the answer key expects:
// "no mode", "all values" when every distinct value ties, a single
// value, or a comma-separated tie list.
func modeDisplay(dataset []float64, mode stats.ModeResult) string {
	switch mode.Kind {
	case stats.KindNoMode:
		return "no mode"
	case stats.KindMultiMode:
		if len(mode.Values) == distinctCount(dataset) {
			return "all values"
		}
	}
	parts := make([]string, len(mode.Values))
	for i, v := range mode.Values {
		parts[i] = formatValue(v)
	}
	return strings.Join(parts, ", ")
}

func distinctCount(dataset []float64) int {
	seen := make(map[float64]struct{}, len(dataset))
	for _, v := range dataset {
		seen[v] = struct{}{}
	}
	return len(seen)
}
