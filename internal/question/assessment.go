package question

import "time"

// estimatedTimePerQuestion is the planning estimate for one question.
const estimatedTimePerQuestion = 3 * time.Minute

// OmittedSlot records a question slot whose generation failed. Failed
// slots are reported by name rather than silently dropped or filled
// with a wrong answer.
type OmittedSlot struct {
	Type       TypeTag
	Difficulty int
	Seed       int64
	Reason     string
}

// Assessment is an ordered collection of generated questions plus any
// slots that could not be filled.
type Assessment struct {
	Title     string
	VersionID string
	Questions []Question
	Omitted   []OmittedSlot
}

// TotalMarks sums marks over every question.
func (a *Assessment) TotalMarks() int {
	total := 0
	for i := range a.Questions {
		total += a.Questions[i].TotalMarks()
	}
	return total
}

// EstimatedTime returns the planning estimate for completing the
// assessment.
func (a *Assessment) EstimatedTime() time.Duration {
	return time.Duration(len(a.Questions)) * estimatedTimePerQuestion
}

// DifficultyDistribution counts questions per difficulty level.
func (a *Assessment) DifficultyDistribution() map[int]int {
	dist := make(map[int]int)
	for i := range a.Questions {
		dist[a.Questions[i].Difficulty]++
	}
	return dist
}

// TypeDistribution counts questions per family.
func (a *Assessment) TypeDistribution() map[TypeTag]int {
	dist := make(map[TypeTag]int)
	for i := range a.Questions {
		dist[a.Questions[i].Type]++
	}
	return dist
}

// ToMap serializes the assessment to a plain structured form.
func (a *Assessment) ToMap() map[string]any {
	questions := make([]map[string]any, len(a.Questions))
	for i := range a.Questions {
		questions[i] = a.Questions[i].ToMap()
	}
	omitted := make([]map[string]any, len(a.Omitted))
	for i, o := range a.Omitted {
		omitted[i] = map[string]any{
			"type":       string(o.Type),
			"difficulty": o.Difficulty,
			"seed":       o.Seed,
			"reason":     o.Reason,
		}
	}
	return map[string]any{
		"title":                   a.Title,
		"version_id":              a.VersionID,
		"questions":               questions,
		"omitted":                 omitted,
		"total_marks":             a.TotalMarks(),
		"estimated_time_minutes":  int(a.EstimatedTime().Minutes()),
	}
}
