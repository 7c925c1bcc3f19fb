package questiongen

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/statgen/internal/contextdata"
	"github.com/abhisek/statgen/internal/difficulty"
	"github.com/abhisek/statgen/internal/question"
	"github.com/abhisek/statgen/internal/stats"
)

func testGenerators(t *testing.T) map[question.TypeTag]Generator {
	t.Helper()
	return Generators(difficulty.Default(), contextdata.NewFallbackProvider())
}

func TestGenerators_OnePerFamily(t *testing.T) {
	gens := testGenerators(t)
	require.Len(t, gens, len(question.Types))
	for tag, gen := range gens {
		assert.Equal(t, tag, gen.Type())
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	for tag, gen := range testGenerators(t) {
		t.Run(string(tag), func(t *testing.T) {
			first, err := gen.Generate(2, 42)
			require.NoError(t, err)
			second, err := gen.Generate(2, 42)
			require.NoError(t, err)

			assert.Equal(t, first, second)

			// Byte-for-byte identical through serialization too.
			a, err := json.Marshal(first.ToMap())
			require.NoError(t, err)
			b, err := json.Marshal(second.ToMap())
			require.NoError(t, err)
			assert.Equal(t, a, b)
		})
	}
}

func TestGenerate_SeedsProduceDistinctQuestions(t *testing.T) {
	for tag, gen := range testGenerators(t) {
		t.Run(string(tag), func(t *testing.T) {
			a, err := gen.Generate(3, 1)
			require.NoError(t, err)
			b, err := gen.Generate(3, 2)
			require.NoError(t, err)
			assert.NotEqual(t, a.Text, b.Text)
		})
	}
}

func TestGenerate_CommonShape(t *testing.T) {
	for tag, gen := range testGenerators(t) {
		for seed := int64(0); seed < 10; seed++ {
			q, err := gen.Generate(3, seed)
			require.NoError(t, err, "%s seed %d", tag, seed)

			assert.Equal(t, tag, q.Type)
			assert.Equal(t, 3, q.Difficulty)
			assert.Equal(t, seed, q.Seed)
			assert.Equal(t, question.DeriveID(tag, 3, seed), q.ID)
			assert.NotEmpty(t, q.Dataset, "%s seed %d", tag, seed)
			assert.NotEmpty(t, q.Parts)
			assert.NotContains(t, q.Text, "{", "%s seed %d has unresolved placeholder", tag, seed)
			assert.Positive(t, q.TotalMarks())
			for _, p := range q.Parts {
				assert.NotEmpty(t, p.Answer, "%s seed %d part %s", tag, seed, p.Label)
				assert.NotEmpty(t, p.SolutionSteps)
			}
		}
	}
}

func TestMeanMedianMode_AnswerMatchesEngine(t *testing.T) {
	gen := NewMeanMedianMode(difficulty.Default(), contextdata.NewFallbackProvider())
	level, err := difficulty.Default().Get(2)
	require.NoError(t, err)

	for seed := int64(0); seed < 15; seed++ {
		q, err := gen.Generate(2, seed)
		require.NoError(t, err)

		mean, err := stats.Mean(q.Dataset)
		require.NoError(t, err)
		median, err := stats.Median(q.Dataset)
		require.NoError(t, err)

		answer := q.Parts[0].Answer
		assert.Contains(t, answer, "mean = "+formatValue(roundTo(mean, level.DecimalPlaces+1)))
		assert.Contains(t, answer, "median = "+formatValue(roundTo(median, level.DecimalPlaces+1)))
		assert.Contains(t, answer, "mode = ")
	}
}

func TestTrimmedMean_EndToEnd(t *testing.T) {
	gen := NewTrimmedMean(difficulty.Default(), contextdata.NewFallbackProvider())

	q, err := gen.Generate(3, 7)
	require.NoError(t, err)
	require.Len(t, q.Parts, 2)

	// The displayed trimmed mean must equal the engine's direct
	// computation on the same dataset with the detected outliers
	// removed.
	result, err := stats.TrimmedMean(q.Dataset)
	require.NoError(t, err)
	require.Positive(t, result.Outliers.Count(), "trimmed-mean dataset must carry outliers")

	level, err := difficulty.Default().Get(3)
	require.NoError(t, err)
	trimmedStr := formatValue(roundTo(result.TrimmedMean, level.DecimalPlaces+1))
	assert.Contains(t, q.Parts[1].Answer, trimmedStr)

	meanStr := formatValue(roundTo(result.UntrimmedMean, level.DecimalPlaces+1))
	assert.Contains(t, q.Parts[0].Answer, meanStr)

	// Every detected outlier appears in the part (b) solution.
	solution := strings.Join(q.Parts[1].SolutionSteps, "\n")
	for _, v := range result.Outliers.All() {
		assert.Contains(t, solution, formatValue(v))
	}
}

func TestWeightedMean_BothVariantsReachable(t *testing.T) {
	gen := NewWeightedMean(difficulty.Default(), contextdata.NewFallbackProvider())

	sawTable := false
	sawRows := false
	for seed := int64(0); seed < 20; seed++ {
		q, err := gen.Generate(2, seed)
		require.NoError(t, err)
		if strings.Contains(q.Text, "Category | Score | Weight") {
			sawTable = true
			assert.Contains(t, q.Text, "weighted mean")
		} else {
			sawRows = true
			assert.Contains(t, q.Text, "Calculate the mean.")
		}
	}
	assert.True(t, sawTable, "percentage variant never generated in 20 seeds")
	assert.True(t, sawRows, "frequency variant never generated in 20 seeds")
}

func TestPercentileRank_SolutionShowsFormula(t *testing.T) {
	gen := NewPercentileRank(difficulty.Default(), contextdata.NewFallbackProvider())

	for seed := int64(0); seed < 10; seed++ {
		q, err := gen.Generate(2, seed)
		require.NoError(t, err)

		solution := strings.Join(q.Parts[0].SolutionSteps, "\n")
		assert.Contains(t, solution, "PR = (b/n) × 100")
		assert.Contains(t, q.Parts[0].Answer, "percentile")

		// Presentation order is sorted for rank questions.
		for i := 1; i < len(q.Dataset); i++ {
			assert.LessOrEqual(t, q.Dataset[i-1], q.Dataset[i])
		}
	}
}

func TestPercentileRank_Conceptual(t *testing.T) {
	gen := NewPercentileRank(difficulty.Default(), contextdata.NewFallbackProvider())

	for seed := int64(0); seed < 6; seed++ {
		q, err := gen.GenerateConceptual(2, seed)
		require.NoError(t, err, "seed %d", seed)

		assert.Equal(t, question.TypePercentileRank, q.Type)
		assert.Equal(t, 1, q.TotalMarks())
		assert.NotEmpty(t, q.Dataset)
		assert.Contains(t, q.Parts[0].Answer, "percentile")
	}

	first, err := gen.GenerateConceptual(2, 9)
	require.NoError(t, err)
	second, err := gen.GenerateConceptual(2, 9)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerate_UnknownDifficulty(t *testing.T) {
	for tag, gen := range testGenerators(t) {
		_, err := gen.Generate(0, 1)
		assert.Error(t, err, "%s accepted difficulty 0", tag)
	}
}

func TestGenerate_MissingProviderDataPropagates(t *testing.T) {
	gen := NewMeanMedianMode(difficulty.Default(), emptyProvider{})

	_, err := gen.Generate(2, 3)
	require.Error(t, err)

	var missing *ErrMissingPlaceholder
	assert.ErrorAs(t, err, &missing)
}

// emptyProvider simulates a misconfigured context data source.
type emptyProvider struct{}

func (emptyProvider) Get(category contextdata.Category, index int) (string, error) {
	return "", &contextdata.ErrMissingCategory{Category: category}
}

func (emptyProvider) Count(category contextdata.Category) (int, error) {
	return 0, &contextdata.ErrMissingCategory{Category: category}
}
