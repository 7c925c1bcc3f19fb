package questiongen

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/statgen/internal/difficulty"
	"github.com/abhisek/statgen/internal/stats"
)

func newTestSynth(t *testing.T) *Synthesizer {
	t.Helper()
	return NewSynthesizer(difficulty.Default())
}

func TestSynthesize_Deterministic(t *testing.T) {
	synth := newTestSynth(t)
	req := SynthRequest{Difficulty: 3, MinSize: minOutlierCoreSize, InjectOutliers: true}

	first, err := synth.Synthesize(rand.New(rand.NewSource(42)), req)
	require.NoError(t, err)
	second, err := synth.Synthesize(rand.New(rand.NewSource(42)), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSynthesize_DifferentSeedsDiffer(t *testing.T) {
	synth := newTestSynth(t)
	req := SynthRequest{Difficulty: 2, MinSize: minModeBearingSize}

	a, err := synth.Synthesize(rand.New(rand.NewSource(1)), req)
	require.NoError(t, err)
	b, err := synth.Synthesize(rand.New(rand.NewSource(2)), req)
	require.NoError(t, err)

	assert.NotEqual(t, a.Values, b.Values)
}

func TestSynthesize_RespectsRangeAndPrecision(t *testing.T) {
	synth := newTestSynth(t)
	table := difficulty.Default()

	for level := difficulty.MinLevel; level <= difficulty.MaxLevel; level++ {
		lv, err := table.Get(level)
		require.NoError(t, err)

		for seed := int64(0); seed < 20; seed++ {
			result, err := synth.Synthesize(rand.New(rand.NewSource(seed)), SynthRequest{
				Difficulty: level,
				MinSize:    minModeBearingSize,
			})
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(result.Values), minModeBearingSize)
			assert.GreaterOrEqual(t, len(result.Values), lv.Size.Min)
			assert.LessOrEqual(t, len(result.Values), lv.Size.Max)

			scale := math.Pow(10, float64(lv.DecimalPlaces))
			for _, v := range result.Values {
				assert.GreaterOrEqual(t, v, lv.Values.Min, "level %d seed %d", level, seed)
				assert.LessOrEqual(t, v, lv.Values.Max, "level %d seed %d", level, seed)
				assert.InDelta(t, math.Round(v*scale)/scale, v, 1e-9,
					"level %d value %v has too many decimals", level, v)
			}
		}
	}
}

func TestSynthesize_InjectedOutliersAreDetected(t *testing.T) {
	synth := newTestSynth(t)

	for level := 2; level <= difficulty.MaxLevel; level++ {
		for seed := int64(0); seed < 30; seed++ {
			result, err := synth.Synthesize(rand.New(rand.NewSource(seed)), SynthRequest{
				Difficulty:     level,
				MinSize:        minOutlierCoreSize,
				InjectOutliers: true,
			})
			require.NoError(t, err, "level %d seed %d", level, seed)

			injected := result.Injected()
			require.NotEmpty(t, injected, "level %d seed %d injected nothing", level, seed)
			require.LessOrEqual(t, len(injected), 2)
			require.GreaterOrEqual(t, len(result.Values), minOutlierCoreSize+1)

			detected, err := stats.IdentifyOutliers(result.Values)
			require.NoError(t, err)
			assert.ElementsMatch(t, injected, detected.All(),
				"level %d seed %d: detection must flag exactly the injected values", level, seed)
		}
	}
}

func TestSynthesize_UnknownDifficulty(t *testing.T) {
	synth := newTestSynth(t)
	_, err := synth.Synthesize(rand.New(rand.NewSource(1)), SynthRequest{Difficulty: 9})
	assert.Error(t, err)
}
