// Package questiongen turns difficulty-calibrated random datasets into
// complete statistics word problems: it synthesizes the numbers, asks
// the stats engine for ground truth, resolves a phrasing template, and
// assembles parts, marks and worked solutions into a Question.
package questiongen

import (
	"math/rand"

	"github.com/abhisek/statgen/internal/contextdata"
	"github.com/abhisek/statgen/internal/difficulty"
	"github.com/abhisek/statgen/internal/question"
)

// Generator produces questions for one question family. Implementations
// are stateless apart from their injected collaborators; every call owns
// its seeded random sequence, so generators are safe for concurrent use
// across independent seeds.
type Generator interface {
	// Type returns the family this generator produces.
	Type() question.TypeTag

	// Generate produces one question at the given difficulty from the
	// given seed. The same (difficulty, seed) pair always yields an
	// identical question.
	Generate(difficultyLevel int, seed int64) (*question.Question, error)
}

// newRNG builds the per-call seeded generator. All randomness in a
// generation flows from this one source; nothing consults wall-clock
// time or global entropy.
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Generators builds one generator per question family, sharing the
// difficulty table and context data provider.
func Generators(table *difficulty.Table, provider contextdata.Provider) map[question.TypeTag]Generator {
	return map[question.TypeTag]Generator{
		question.TypeMeanMedianMode: NewMeanMedianMode(table, provider),
		question.TypeTrimmedMean:    NewTrimmedMean(table, provider),
		question.TypeWeightedMean:   NewWeightedMean(table, provider),
		question.TypePercentileRank: NewPercentileRank(table, provider),
	}
}
