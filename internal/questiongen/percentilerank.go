package questiongen

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"

	"github.com/abhisek/statgen/internal/contextdata"
	"github.com/abhisek/statgen/internal/difficulty"
	"github.com/abhisek/statgen/internal/question"
	"github.com/abhisek/statgen/internal/stats"
)

// rankTemplate extends Template with the per-context value policy:
// realistic ranks need domain-plausible magnitudes (credit scores,
// grades), so each context carries its own value and size ranges.
type rankTemplate struct {
	Template
	ValueMin, ValueMax int
	SizeMin, SizeMax   int
	ValueName          string
}

var percentileRankTemplates = []rankTemplate{
	{
		Template:  Template{ID: "credit_scores", Text: "Financial institutions use credit scores to decide whether people qualify for loans. Below is a list of credit scores for people applying for a bank loan."},
		ValueMin:  600, ValueMax: 850, SizeMin: 20, SizeMax: 20,
		ValueName: "score",
	},
	{
		Template:  Template{ID: "test_scores", Text: "{name} teaches a class of {n} students. The test scores are shown below.", Unit: "%"},
		ValueMin:  50, ValueMax: 100, SizeMin: 15, SizeMax: 25,
		ValueName: "score",
	},
	{
		Template:  Template{ID: "property_values", Text: "A real estate agent compiled home prices in {city}. The prices (in thousands of dollars) are shown below.", Unit: "k", UnitPrefix: false},
		ValueMin:  200, ValueMax: 800, SizeMin: 20, SizeMax: 20,
		ValueName: "price",
	},
	{
		Template:  Template{ID: "produce_weights", Text: "{name} is a farmer who grows produce. The weights (in grams) of items from new plants are shown below.", Unit: "g"},
		ValueMin:  90, ValueMax: 180, SizeMin: 12, SizeMax: 18,
		ValueName: "weight",
	},
}

// conceptualMinGrades are the entrance requirements the justification
// variant draws from.
var conceptualMinGrades = []int{70, 75, 80}

// conceptualTopPercents are the cutoffs for the job-ranking variant.
var conceptualTopPercents = []int{10, 15, 20, 25}

// PercentileRank generates percentile-rank questions. The default
// variant asks for a calculation with the PR = (b/n) × 100 formula;
// GenerateConceptual produces the justification variant instead.
type PercentileRank struct {
	table    *difficulty.Table
	resolver *Resolver
}

// NewPercentileRank creates the generator.
func NewPercentileRank(table *difficulty.Table, provider contextdata.Provider) *PercentileRank {
	return &PercentileRank{
		table:    table,
		resolver: NewResolver(provider),
	}
}

func (g *PercentileRank) Type() question.TypeTag { return question.TypePercentileRank }

// Generate produces a calculation question.
func (g *PercentileRank) Generate(difficultyLevel int, seed int64) (*question.Question, error) {
	rng := newRNG(seed)

	if _, err := g.table.Get(difficultyLevel); err != nil {
		return nil, err
	}

	tmpl := percentileRankTemplates[rng.Intn(len(percentileRankTemplates))]

	n := tmpl.SizeMin + rng.Intn(tmpl.SizeMax-tmpl.SizeMin+1)
	dataset := make([]float64, n)
	for i := range dataset {
		dataset[i] = float64(tmpl.ValueMin + rng.Intn(tmpl.ValueMax-tmpl.ValueMin+1))
	}
	sort.Float64s(dataset)

	// Target sits in the middle band so the rank is neither trivial
	// nor degenerate.
	lo := int(float64(n) * 0.3)
	hi := int(float64(n) * 0.8)
	target := dataset[lo+rng.Intn(hi-lo+1)]

	below := stats.CountBelow(dataset, target)
	rank, err := stats.PercentileRank(dataset, target)
	if err != nil {
		return nil, err
	}
	exact, err := stats.PercentileRankExact(dataset, target)
	if err != nil {
		return nil, err
	}

	context, err := g.resolver.Resolve(tmpl.Text, rng, map[string]string{
		"n": strconv.Itoa(n),
	})
	if err != nil {
		return nil, err
	}

	targetDisplay := g.displayValue(target, tmpl)
	text := fmt.Sprintf("%s\n\n%s\n\nCalculate the percentile rank for a %s of %s.",
		context, g.formatDataset(dataset, tmpl), tmpl.ValueName, targetDisplay)

	rankInt := int(rank)
	answer := fmt.Sprintf("%s percentile (or P%d or %d)", ordinal(rankInt), rankInt, rankInt)

	steps := []string{
		fmt.Sprintf("b = %d (number of %ss below %s)", below, tmpl.ValueName, targetDisplay),
		fmt.Sprintf("n = %d (total number of %ss)", n, tmpl.ValueName),
		"PR = (b/n) × 100",
		fmt.Sprintf("PR = (%d/%d) × 100", below, n),
		fmt.Sprintf("PR = %.1f", exact),
		fmt.Sprintf("Answer: %s", answer),
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
				Prompt:        fmt.Sprintf("Calculate the percentile rank for a %s of %s.", tmpl.ValueName, targetDisplay),
				Answer:        answer,
				Format:        question.FormatText,
				SolutionSteps: steps,
				Marks:         2,
			},
		},
	}, nil
}

// GenerateConceptual produces a justification question about what a
// percentile rank does and does not say. One mark, text answer.
func (g *PercentileRank) GenerateConceptual(difficultyLevel int, seed int64) (*question.Question, error) {
	rng := newRNG(seed)

	if _, err := g.table.Get(difficultyLevel); err != nil {
		return nil, err
	}

	if rng.Intn(2) == 0 {
		return g.conceptualEntranceExam(rng, difficultyLevel, seed)
	}
	return g.conceptualJobRanking(rng, difficultyLevel, seed)
}

func (g *PercentileRank) conceptualEntranceExam(rng *rand.Rand, difficultyLevel int, seed int64) (*question.Question, error) {
	minGrade := conceptualMinGrades[rng.Intn(len(conceptualMinGrades))]
	lastYear := 60 + rng.Intn(minGrade-5-60+1)
	thisYear := lastYear + 5 + rng.Intn(95-(lastYear+5)+1)

	context, err := g.resolver.Resolve(
		fmt.Sprintf("{name} must write an entrance exam to enter university. A minimum grade of %d%% is required for acceptance.", minGrade),
		rng, nil)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("%s\n\nLast year their mark was in the %s percentile. They were not accepted.\nThis year their mark is in the %s percentile.\n\nJustify why it cannot be determined if they will be accepted this year.",
		context, ordinal(lastYear), ordinal(thisYear))

	answer := fmt.Sprintf("It cannot be determined because percentile rank only indicates their position relative to other test-takers, not their actual grade. A higher percentile does not guarantee the minimum grade of %d%% is achieved.", minGrade)

	return g.conceptualQuestion(difficultyLevel, seed, context, text, answer,
		[]float64{float64(lastYear), float64(thisYear)}), nil
}

func (g *PercentileRank) conceptualJobRanking(rng *rand.Rand, difficultyLevel int, seed int64) (*question.Question, error) {
	topPercent := conceptualTopPercents[rng.Intn(len(conceptualTopPercents))]
	candidate := 75 + rng.Intn(16)

	context := fmt.Sprintf("A company ranks job applicants based on their interview scores. The top %d%% of candidates move to the next round.", topPercent)

	text := fmt.Sprintf("%s\n\nA candidate scored in the %s percentile.\n\nExplain whether this candidate will move to the next round.",
		context, ordinal(candidate))

	var answer string
	if candidate >= 100-topPercent {
		answer = fmt.Sprintf("Yes, the candidate will move forward. The %s percentile means %d%% scored higher, so they are in the top %d%% which is better than the required top %d%%.",
			ordinal(candidate), 100-candidate, 100-candidate, topPercent)
	} else {
		answer = fmt.Sprintf("No, the candidate will not move forward. The %s percentile means %d%% scored higher, which is more than the top %d%% requirement.",
			ordinal(candidate), 100-candidate, topPercent)
	}

	return g.conceptualQuestion(difficultyLevel, seed, context, text, answer,
		[]float64{float64(candidate)}), nil
}

func (g *PercentileRank) conceptualQuestion(difficultyLevel int, seed int64, context, text, answer string, given []float64) *question.Question {
	steps := []string{
		"Key concept: percentile rank indicates relative position, not actual score",
		fmt.Sprintf("Answer: %s", answer),
	}
	return &question.Question{
		ID:         question.DeriveID(g.Type(), difficultyLevel, seed),
		Type:       g.Type(),
		Difficulty: difficultyLevel,
		Seed:       seed,
		Context:    context,
		Text:       text,
		Dataset:    given,
		Parts: []question.Part{
			{
				Label:         "a",
				Prompt:        "Justify your answer using what percentile rank measures.",
				Answer:        answer,
				Format:        question.FormatText,
				SolutionSteps: steps,
				Marks:         1,
			},
		},
	}
}

// displayValue renders a dataset value with the template's unit.
func (g *PercentileRank) displayValue(v float64, tmpl rankTemplate) string {
	switch tmpl.Unit {
	case "k":
		return fmt.Sprintf("$%sk", formatValue(v))
	case "":
		return formatValue(v)
	default:
		return formatValue(v) + tmpl.Unit
	}
}

// formatDataset renders the sorted dataset in rows of five.
func (g *PercentileRank) formatDataset(dataset []float64, tmpl rankTemplate) string {
	const chunk = 5
	var out string
	for i := 0; i < len(dataset); i += chunk {
		end := i + chunk
		if end > len(dataset) {
			end = len(dataset)
		}
		row := make([]string, 0, chunk)
		for _, v := range dataset[i:end] {
			row = append(row, g.displayValue(v, tmpl))
		}
		if out != "" {
			out += "\n"
		}
		for j, cell := range row {
			if j > 0 {
				out += ", "
			}
			out += cell
		}
	}
	return out
}
