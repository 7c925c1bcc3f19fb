package questiongen

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/statgen/internal/contextdata"
	"github.com/abhisek/statgen/internal/difficulty"
	"github.com/abhisek/statgen/internal/question"
)

const (
	// DefaultMaxRetries bounds regeneration attempts for one slot
	// before it is reported as omitted.
	DefaultMaxRetries = 3

	// DefaultConcurrency bounds parallel slot generation. Generation
	// is pure per seed, so the limit only caps CPU use.
	DefaultConcurrency = 4

	// slotSeedStep spaces the derived per-slot seeds apart.
	slotSeedStep = 1_000_003

	// retrySeedStep offsets the seed for each retry of a failed slot.
	retrySeedStep = 7_919
)

// BuildConfig describes one assessment request.
type BuildConfig struct {
	// Title of the assessment.
	Title string

	// VersionID identifies this build. Assigned by the caller (e.g. a
	// uuid); it is outside the per-question reproducibility contract.
	VersionID string

	// Difficulty level for every question, 1-5.
	Difficulty int

	// Count is the total number of question slots.
	Count int

	// Types cycles over the slots. Defaults to every family.
	Types []question.TypeTag

	// Seed is the base seed; per-slot seeds are derived from it.
	Seed int64

	// MaxRetries and Concurrency default to the package constants when
	// zero.
	MaxRetries  int
	Concurrency int
}

// Builder generates assessments by fanning question slots out across
// the per-family generators. A failed slot becomes a named OmittedSlot;
// it never corrupts or blocks sibling slots.
type Builder struct {
	generators map[question.TypeTag]Generator
}

// NewBuilder creates a Builder with one generator per question family.
func NewBuilder(table *difficulty.Table, provider contextdata.Provider) *Builder {
	return &Builder{generators: Generators(table, provider)}
}

// Build generates the requested assessment. The error return covers
// malformed requests only; per-slot generation failures are reported in
// Assessment.Omitted.
func (b *Builder) Build(cfg BuildConfig) (*question.Assessment, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("assessment needs at least one question slot, got %d", cfg.Count)
	}
	types := cfg.Types
	if len(types) == 0 {
		types = question.Types
	}
	for _, t := range types {
		if !t.Valid() {
			return nil, fmt.Errorf("unknown question type %q", t)
		}
		if _, ok := b.generators[t]; !ok {
			return nil, fmt.Errorf("no generator for question type %q", t)
		}
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	type slotResult struct {
		q    *question.Question
		omit *question.OmittedSlot
	}
	results := make([]slotResult, cfg.Count)

	var g errgroup.Group
	g.SetLimit(concurrency)

	for i := 0; i < cfg.Count; i++ {
		i := i
		g.Go(func() error {
			typ := types[i%len(types)]
			slotSeed := cfg.Seed + int64(i)*slotSeedStep

			q, err := b.generateWithRetry(typ, cfg.Difficulty, slotSeed, maxRetries)
			if err != nil {
				results[i] = slotResult{omit: &question.OmittedSlot{
					Type:       typ,
					Difficulty: cfg.Difficulty,
					Seed:       slotSeed,
					Reason:     err.Error(),
				}}
				return nil
			}
			results[i] = slotResult{q: q}
			return nil
		})
	}
	// Goroutines report failures through results, never as errors.
	_ = g.Wait()

	assessment := &question.Assessment{
		Title:     cfg.Title,
		VersionID: cfg.VersionID,
	}
	for _, r := range results {
		if r.q != nil {
			assessment.Questions = append(assessment.Questions, *r.q)
		} else {
			assessment.Omitted = append(assessment.Omitted, *r.omit)
		}
	}
	return assessment, nil
}

// generateWithRetry retries a failed draw with derived seeds up to the
// retry budget, then reports the last error.
func (b *Builder) generateWithRetry(typ question.TypeTag, difficultyLevel int, seed int64, maxRetries int) (*question.Question, error) {
	gen := b.generators[typ]

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		q, err := gen.Generate(difficultyLevel, seed+int64(attempt)*retrySeedStep)
		if err == nil {
			return q, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("after %d attempts: %w", maxRetries, lastErr)
}
