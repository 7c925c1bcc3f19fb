// Package question defines the immutable value objects produced by the
// generators and consumed by presentation layers: Question, its parts,
// and Assessment. Display, grading and export live elsewhere; this
// package only guarantees the shape and the derived totals.
package question

import (
	"fmt"
	"hash/fnv"
)

// TypeTag is the closed set of question families. Downstream consumers
// can handle it exhaustively.
type TypeTag string

const (
	TypeMeanMedianMode TypeTag = "mean_median_mode"
	TypeTrimmedMean    TypeTag = "trimmed_mean"
	TypeWeightedMean   TypeTag = "weighted_mean"
	TypePercentileRank TypeTag = "percentile_rank"
)

// Types lists every question family in presentation order.
var Types = []TypeTag{
	TypeMeanMedianMode,
	TypeTrimmedMean,
	TypeWeightedMean,
	TypePercentileRank,
}

// Valid reports whether t is a member of the closed set.
func (t TypeTag) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// AnswerFormat describes how a part's answer is expressed.
type AnswerFormat string

const (
	FormatNumeric        AnswerFormat = "numeric"
	FormatNumericUnit    AnswerFormat = "numeric_unit"
	FormatText           AnswerFormat = "text"
	FormatMultipleValues AnswerFormat = "multiple_values"
)

// Part is a single labelled sub-question with its own marks, answer and
// worked solution.
type Part struct {
	// Label is the part letter shown to the student ("a", "b").
	Label string

	// Prompt is the instruction for this part.
	Prompt string

	// Answer is the canonical expected answer, recomputed from the
	// dataset at assembly time.
	Answer string

	// Format indicates how Answer is expressed.
	Format AnswerFormat

	// SolutionSteps is the worked derivation of Answer.
	SolutionSteps []string

	// Marks awarded for this part.
	Marks int
}

// Question is one generated word problem. It is immutable once
// assembled: regenerating with the same type, difficulty and seed
// reproduces an identical value.
type Question struct {
	// ID is derived deterministically from type, difficulty and seed.
	ID string

	Type       TypeTag
	Difficulty int

	// Seed is the random seed the question was generated from.
	Seed int64

	// Context is the resolved prose framing (who measured what, where).
	Context string

	// Text is the full question prompt including the rendered dataset.
	Text string

	// Dataset holds the numeric values the question is about, in
	// presentation order. Owned exclusively by this question.
	Dataset []float64

	// Parts holds 1..N sub-questions.
	Parts []Part
}

// TotalMarks sums the marks over all parts.
func (q *Question) TotalMarks() int {
	total := 0
	for _, p := range q.Parts {
		total += p.Marks
	}
	return total
}

// MarksDisplay formats the total for headers, e.g. "[2 marks]".
func (q *Question) MarksDisplay() string {
	if q.TotalMarks() == 1 {
		return "[1 mark]"
	}
	return fmt.Sprintf("[%d marks]", q.TotalMarks())
}

// ToMap serializes the question to a plain structured form without
// loss, for presentation layers and export.
func (q *Question) ToMap() map[string]any {
	parts := make([]map[string]any, len(q.Parts))
	for i, p := range q.Parts {
		parts[i] = map[string]any{
			"label":          p.Label,
			"prompt":         p.Prompt,
			"answer":         p.Answer,
			"format":         string(p.Format),
			"solution_steps": append([]string(nil), p.SolutionSteps...),
			"marks":          p.Marks,
		}
	}
	return map[string]any{
		"id":          q.ID,
		"type":        string(q.Type),
		"difficulty":  q.Difficulty,
		"seed":        q.Seed,
		"context":     q.Context,
		"text":        q.Text,
		"dataset":     append([]float64(nil), q.Dataset...),
		"parts":       parts,
		"total_marks": q.TotalMarks(),
	}
}

// DeriveID builds the deterministic question ID for a type, difficulty
// and seed.
func DeriveID(t TypeTag, difficulty int, seed int64) string {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%d|%d", t, difficulty, seed)
	return fmt.Sprintf("STAT_%05d", h.Sum32()%100000)
}
