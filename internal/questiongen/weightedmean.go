package questiongen

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/abhisek/statgen/internal/contextdata"
	"github.com/abhisek/statgen/internal/difficulty"
	"github.com/abhisek/statgen/internal/question"
	"github.com/abhisek/statgen/internal/stats"
)

// percentageTemplate extends Template with the category column of the
// grading table.
type percentageTemplate struct {
	Template
	Categories []string
}

var weightedPercentageTemplates = []percentageTemplate{
	{
		Template:   Template{ID: "course_grades", Text: "{name} is calculating their final grade in {course}. The grading breakdown is shown below.", Unit: "points"},
		Categories: []string{"Homework", "Quizzes", "Midterm", "Project", "Final Exam"},
	},
	{
		Template:   Template{ID: "portfolio_evaluation", Text: "{name} is evaluating candidates for a position at {business}. The evaluation criteria are shown below.", Unit: "points"},
		Categories: []string{"Experience", "Education", "Interview", "References", "Skills Test"},
	},
	{
		Template:   Template{ID: "art_competition", Text: "{name} entered a competition with scores in different categories.", Unit: "points"},
		Categories: []string{"Originality", "Design", "Colour", "Technique"},
	},
}

// frequencyTemplate extends Template with its value and count ranges
// and the per-row phrasing.
type frequencyTemplate struct {
	Template
	ValueMin, ValueMax int
	FreqMin, FreqMax   int
	RowFormat          func(value float64, freq int) string
}

var weightedFrequencyTemplates = []frequencyTemplate{
	{
		Template: Template{ID: "server_tips", Text: "{name} works as a server and received tips during one shift.", Unit: "$", UnitPrefix: true},
		ValueMin: 5, ValueMax: 15, FreqMin: 2, FreqMax: 6,
		RowFormat: func(value float64, freq int) string {
			noun := "tips"
			if freq == 1 {
				noun = "tip"
			}
			return fmt.Sprintf("%d %s of $%s", freq, noun, formatValue(value))
		},
	},
	{
		Template: Template{ID: "weekly_hours", Text: "{name} tracked the number of days worked per week over a year.", Unit: "days"},
		ValueMin: 1, ValueMax: 7, FreqMin: 2, FreqMax: 14,
		RowFormat: func(value float64, freq int) string {
			weeks := "weeks"
			if freq == 1 {
				weeks = "week"
			}
			days := "days"
			if value == 1 {
				days = "day"
			}
			return fmt.Sprintf("%d %s working %s %s", freq, weeks, formatValue(value), days)
		},
	},
	{
		Template: Template{ID: "item_prices", Text: "{name} sells crafts at markets. The prices and quantities sold are shown below.", Unit: "$", UnitPrefix: true},
		ValueMin: 10, ValueMax: 50, FreqMin: 3, FreqMax: 12,
		RowFormat: func(value float64, freq int) string {
			noun := "items"
			if freq == 1 {
				noun = "item"
			}
			return fmt.Sprintf("%d %s at $%s", freq, noun, formatValue(value))
		},
	},
}

// niceWeightSteps are the percentage weights a teacher would actually
// put on a syllabus.
var niceWeightSteps = []int{10, 15, 20, 25, 30, 35, 40}

// WeightedMean generates weighted-mean questions in two variants:
// percentage-of-total (grading tables) and repeating items (frequency
// data). The variant is drawn from the seeded generator.
type WeightedMean struct {
	table    *difficulty.Table
	resolver *Resolver
}

// NewWeightedMean creates the generator.
func NewWeightedMean(table *difficulty.Table, provider contextdata.Provider) *WeightedMean {
	return &WeightedMean{
		table:    table,
		resolver: NewResolver(provider),
	}
}

func (g *WeightedMean) Type() question.TypeTag { return question.TypeWeightedMean }

// Generate produces a weighted-mean question.
func (g *WeightedMean) Generate(difficultyLevel int, seed int64) (*question.Question, error) {
	rng := newRNG(seed)

	if _, err := g.table.Get(difficultyLevel); err != nil {
		return nil, err
	}

	if rng.Intn(2) == 0 {
		return g.generatePercentage(rng, difficultyLevel, seed)
	}
	return g.generateFrequency(rng, difficultyLevel, seed)
}

func (g *WeightedMean) generatePercentage(rng *rand.Rand, difficultyLevel int, seed int64) (*question.Question, error) {
	tmpl := weightedPercentageTemplates[rng.Intn(len(weightedPercentageTemplates))]

	numCategories := 3
	switch {
	case difficultyLevel >= 4:
		numCategories = 5
	case difficultyLevel == 3:
		numCategories = 4
	}
	if numCategories > len(tmpl.Categories) {
		numCategories = len(tmpl.Categories)
	}
	categories := tmpl.Categories[:numCategories]

	weights := drawPercentageWeights(rng, numCategories)
	scores := g.drawScores(rng, difficultyLevel, numCategories)

	weighted, err := stats.WeightedMean(scores, stats.PercentageWeights(weights...))
	if err != nil {
		return nil, err
	}

	context, err := g.resolver.Resolve(tmpl.Text, rng, nil)
	if err != nil {
		return nil, err
	}

	var table strings.Builder
	table.WriteString("Category | Score | Weight\n")
	table.WriteString("---------|-------|-------\n")
	for i, cat := range categories {
		fmt.Fprintf(&table, "%s | %s | %d%%\n", cat, formatValue(scores[i]), int(weights[i]))
	}

	text := fmt.Sprintf("%s\n\n%s\nCalculate the final score using a weighted mean.", context, table.String())

	answerValue := roundTo(weighted, 2)
	answer := fmt.Sprintf("%.2f %s", answerValue, tmpl.Unit)

	var steps []string
	for i, cat := range categories {
		contribution := scores[i] * weights[i] / 100
		steps = append(steps, fmt.Sprintf("%s: %d%% × %s = %.2f",
			cat, int(weights[i]), formatValue(scores[i]), contribution))
	}
	steps = append(steps, fmt.Sprintf("Total: %.2f %s", answerValue, tmpl.Unit))

	return &question.Question{
		ID:         question.DeriveID(g.Type(), difficultyLevel, seed),
		Type:       g.Type(),
		Difficulty: difficultyLevel,
		Seed:       seed,
		Context:    context,
		Text:       text,
		Dataset:    scores,
		Parts: []question.Part{
			{
				Label:         "a",
				Prompt:        "Calculate the final score using a weighted mean.",
				Answer:        answer,
				Format:        question.FormatNumericUnit,
				SolutionSteps: steps,
				Marks:         2,
			},
		},
	}, nil
}

func (g *WeightedMean) generateFrequency(rng *rand.Rand, difficultyLevel int, seed int64) (*question.Question, error) {
	tmpl := weightedFrequencyTemplates[rng.Intn(len(weightedFrequencyTemplates))]

	numItems := 4
	switch {
	case difficultyLevel >= 4:
		numItems = 6
	case difficultyLevel == 3:
		numItems = 5
	}
	if span := tmpl.ValueMax - tmpl.ValueMin + 1; numItems > span {
		numItems = span
	}

	values := sampleDistinct(rng, tmpl.ValueMin, tmpl.ValueMax, numItems)
	freqs := make([]float64, numItems)
	for i := range freqs {
		freqs[i] = float64(tmpl.FreqMin + rng.Intn(tmpl.FreqMax-tmpl.FreqMin+1))
	}

	weighted, err := stats.WeightedMean(values, stats.FrequencyWeights(freqs...))
	if err != nil {
		return nil, err
	}

	context, err := g.resolver.Resolve(tmpl.Text, rng, nil)
	if err != nil {
		return nil, err
	}

	var rows []string
	for i, v := range values {
		rows = append(rows, tmpl.RowFormat(v, int(freqs[i])))
	}
	text := fmt.Sprintf("%s\n\n%s\n\nCalculate the mean.", context, strings.Join(rows, "\n"))

	answer := withUnit(fmt.Sprintf("%.2f", roundTo(weighted, 2)), tmpl.Unit, tmpl.UnitPrefix)

	totalValue := 0.0
	totalCount := 0.0
	var products []string
	for i, v := range values {
		totalValue += v * freqs[i]
		totalCount += freqs[i]
		products = append(products, fmt.Sprintf("(%s × %d)", formatValue(v), int(freqs[i])))
	}

	steps := []string{
		"Weighted sum: " + strings.Join(products, " + "),
		fmt.Sprintf("= %s", formatValue(totalValue)),
		fmt.Sprintf("Total items: %d", int(totalCount)),
		fmt.Sprintf("Mean: %s ÷ %d = %s", formatValue(totalValue), int(totalCount), answer),
	}

	return &question.Question{
		ID:         question.DeriveID(g.Type(), difficultyLevel, seed),
		Type:       g.Type(),
		Difficulty: difficultyLevel,
		Seed:       seed,
		Context:    context,
		Text:       text,
		Dataset:    values,
		Parts: []question.Part{
			{
				Label:         "a",
				Prompt:        "Calculate the mean.",
				Answer:        answer,
				Format:        question.FormatNumericUnit,
				SolutionSteps: steps,
				Marks:         2,
			},
		},
	}, nil
}

// drawScores draws per-category scores with difficulty-scaled range and
// precision.
func (g *WeightedMean) drawScores(rng *rand.Rand, difficultyLevel, n int) []float64 {
	scores := make([]float64, n)
	for i := range scores {
		switch {
		case difficultyLevel <= 2:
			scores[i] = float64(60 + rng.Intn(41))
		case difficultyLevel == 3:
			scores[i] = float64(50 + rng.Intn(51))
		default:
			scores[i] = roundTo(50+rng.Float64()*50, 1)
		}
	}
	return scores
}

// drawPercentageWeights draws n teacher-plausible integer weights that
// sum to exactly 100.
func drawPercentageWeights(rng *rand.Rand, n int) []float64 {
	weights := make([]float64, 0, n)
	remaining := 100

	for i := 0; i < n-1; i++ {
		// Leave at least 10 for each remaining slot, cap any single
		// weight at 40.
		maxWeight := remaining - 10*(n-i-1)
		if maxWeight > 40 {
			maxWeight = 40
		}
		var options []int
		for _, w := range niceWeightSteps {
			if w <= maxWeight {
				options = append(options, w)
			}
		}
		w := 10
		if len(options) > 0 {
			w = options[rng.Intn(len(options))]
		}
		weights = append(weights, float64(w))
		remaining -= w
	}

	weights = append(weights, float64(remaining))
	return weights
}

// sampleDistinct draws n distinct integers from [min, max], returned
// sorted ascending as floats.
func sampleDistinct(rng *rand.Rand, min, max, n int) []float64 {
	pool := make([]int, 0, max-min+1)
	for v := min; v <= max; v++ {
		pool = append(pool, v)
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	picked := pool[:n]
	sort.Ints(picked)

	values := make([]float64, n)
	for i, v := range picked {
		values[i] = float64(v)
	}
	return values
}
