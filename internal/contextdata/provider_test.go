package contextdata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackProvider_AllCategoriesCovered(t *testing.T) {
	p := NewFallbackProvider()
	for _, category := range Categories {
		count, err := p.Count(category)
		require.NoError(t, err, "category %s", category)
		assert.GreaterOrEqual(t, count, 5, "category %s needs at least 5 entries", category)

		for i := 0; i < count; i++ {
			v, err := p.Get(category, i)
			require.NoError(t, err)
			assert.NotEmpty(t, v, "category %s index %d", category, i)
		}
	}
}

func TestFallbackProvider_DeterministicForIndex(t *testing.T) {
	p := NewFallbackProvider()
	first, err := p.Get(CategoryName, 3)
	require.NoError(t, err)
	second, err := p.Get(CategoryName, 3)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFallbackProvider_IndexWrapsAround(t *testing.T) {
	p := NewFallbackProvider()
	count, err := p.Count(CategoryCourse)
	require.NoError(t, err)

	base, err := p.Get(CategoryCourse, 1)
	require.NoError(t, err)
	wrapped, err := p.Get(CategoryCourse, 1+count)
	require.NoError(t, err)
	assert.Equal(t, base, wrapped)
}

func TestFallbackProvider_UnknownCategory(t *testing.T) {
	p := NewFallbackProvider()
	_, err := p.Get(Category("starship"), 0)

	var missing *ErrMissingCategory
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, Category("starship"), missing.Category)
}

func TestFileProvider_OverridesAndFallsThrough(t *testing.T) {
	content := `name:
  - Ms. Okafor
  - Mr. Tremblay
course:
  - Applied Statistics
`
	path := filepath.Join(t.TempDir(), "lookup.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	p, err := LoadFile(path)
	require.NoError(t, err)

	name, err := p.Get(CategoryName, 0)
	require.NoError(t, err)
	assert.Equal(t, "Ms. Okafor", name)

	// Place is absent from the file: fallback set serves it.
	place, err := p.Get(CategoryPlace, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, place)

	count, err := p.Count(CategoryName)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestLoadFile_UnknownCategoryRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lookup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("starships:\n  - Enterprise\n"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFile_EmptyValueRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lookup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name:\n  - \"\"\n"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
