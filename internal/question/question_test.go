package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestion() Question {
	return Question{
		ID:         DeriveID(TypeTrimmedMean, 3, 7),
		Type:       TypeTrimmedMean,
		Difficulty: 3,
		Seed:       7,
		Context:    "Daily high temperatures in Brandon.",
		Text:       "Daily high temperatures in Brandon. The values are: 12, 14, 13, 40",
		Dataset:    []float64{12, 14, 13, 40},
		Parts: []Part{
			{Label: "a", Prompt: "Calculate the arithmetic mean.", Answer: "19.8", Format: FormatNumeric, Marks: 1},
			{Label: "b", Prompt: "Calculate the trimmed mean.", Answer: "13.0", Format: FormatNumeric, Marks: 1},
		},
	}
}

func TestTypeTag_Valid(t *testing.T) {
	for _, tag := range Types {
		assert.True(t, tag.Valid(), "tag %s", tag)
	}
	assert.False(t, TypeTag("standard_deviation").Valid())
}

func TestQuestion_TotalMarks(t *testing.T) {
	q := sampleQuestion()
	assert.Equal(t, 2, q.TotalMarks())
	assert.Equal(t, "[2 marks]", q.MarksDisplay())

	q.Parts = q.Parts[:1]
	assert.Equal(t, "[1 mark]", q.MarksDisplay())
}

func TestDeriveID_Deterministic(t *testing.T) {
	a := DeriveID(TypeMeanMedianMode, 2, 42)
	b := DeriveID(TypeMeanMedianMode, 2, 42)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, DeriveID(TypeMeanMedianMode, 2, 43))
	assert.Regexp(t, `^STAT_\d{5}$`, a)
}

func TestQuestion_ToMapLossless(t *testing.T) {
	q := sampleQuestion()
	m := q.ToMap()

	assert.Equal(t, q.ID, m["id"])
	assert.Equal(t, string(q.Type), m["type"])
	assert.Equal(t, q.Difficulty, m["difficulty"])
	assert.Equal(t, q.Seed, m["seed"])
	assert.Equal(t, q.Dataset, m["dataset"])
	assert.Equal(t, q.TotalMarks(), m["total_marks"])

	parts, ok := m["parts"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, parts, 2)
	assert.Equal(t, "a", parts[0]["label"])
	assert.Equal(t, "19.8", parts[0]["answer"])
	assert.Equal(t, 1, parts[0]["marks"])
}

func TestQuestion_ToMapCopiesDataset(t *testing.T) {
	q := sampleQuestion()
	m := q.ToMap()
	mapped := m["dataset"].([]float64)
	mapped[0] = -999
	assert.Equal(t, 12.0, q.Dataset[0], "ToMap must not alias the question's dataset")
}

func TestAssessment_DerivedTotals(t *testing.T) {
	q1 := sampleQuestion()
	q2 := sampleQuestion()
	q2.Difficulty = 2
	q2.Type = TypeMeanMedianMode

	a := Assessment{
		Title:     "Statistics Unit Test",
		VersionID: "v1",
		Questions: []Question{q1, q2},
		Omitted: []OmittedSlot{
			{Type: TypeWeightedMean, Difficulty: 3, Seed: 99, Reason: "invalid weights after retries"},
		},
	}

	assert.Equal(t, 4, a.TotalMarks())
	assert.Equal(t, 6, int(a.EstimatedTime().Minutes()))
	assert.Equal(t, map[int]int{2: 1, 3: 1}, a.DifficultyDistribution())
	assert.Equal(t, map[TypeTag]int{TypeMeanMedianMode: 1, TypeTrimmedMean: 1}, a.TypeDistribution())

	m := a.ToMap()
	assert.Equal(t, 4, m["total_marks"])
	omitted := m["omitted"].([]map[string]any)
	require.Len(t, omitted, 1)
	assert.Equal(t, string(TypeWeightedMean), omitted[0]["type"])
}
