package search_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"ondas/internal/catalog"
	"ondas/internal/search"
)

func newStore(t *testing.T, database map[string][]string) *catalog.Store {
	t.Helper()
	data, err := yaml.Marshal(database)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ondas_database.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	store := catalog.NewStore(path)
	require.NoError(t, store.Load())
	return store
}

func TestSearch_TitleMatch(t *testing.T) {
	store := newStore(t, map[string][]string{
		"operas": {"1930_05_12_ONDAS Carmen.png"},
	})

	results, err := search.Search(store, "carmen")

	require.NoError(t, err)
	require.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, search.KindImage, r.Kind)
	assert.Equal(t, catalog.Operas, r.Category)
	assert.Equal(t, 50, r.Relevance)
	assert.Equal(t, []string{"título"}, r.MatchedFields)
	assert.Equal(t, "12/05/1930", r.Metadata.Date)
}

func TestSearch_DateMatch(t *testing.T) {
	store := newStore(t, map[string][]string{
		"operas": {"1930_05_12_ONDAS Carmen.png"},
	})

	t.Run("year", func(t *testing.T) {
		results, err := search.Search(store, "1930")

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 30, results[0].Relevance)
		assert.Equal(t, []string{"fecha"}, results[0].MatchedFields)
	})

	t.Run("formatted date", func(t *testing.T) {
		results, err := search.Search(store, "12/05/1930")

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 30, results[0].Relevance)
	})

	t.Run("month", func(t *testing.T) {
		results, err := search.Search(store, "05")

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, []string{"fecha"}, results[0].MatchedFields)
	})

	t.Run("date comparison is exact, not substring", func(t *testing.T) {
		results, err := search.Search(store, "12/05")

		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestSearch_CategoryNameMatch(t *testing.T) {
	store := newStore(t, map[string][]string{})

	t.Run("accented query", func(t *testing.T) {
		results, err := search.Search(store, "óperas")

		require.NoError(t, err)
		require.Len(t, results, 1)
		r := results[0]
		assert.Equal(t, search.KindCategory, r.Kind)
		assert.Equal(t, catalog.Operas, r.Category)
		assert.Equal(t, "Óperas", r.CategoryName)
		assert.Equal(t, 100, r.Relevance)
	})

	t.Run("substring of display name", func(t *testing.T) {
		results, err := search.Search(store, "zarzuela")

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, catalog.Zarzuelas, results[0].Category)
	})
}

func TestSearch_CategoryIdentifierMatch(t *testing.T) {
	store := newStore(t, map[string][]string{
		"otras": {"vista general.png"},
	})

	// "otras" matches both the display name "Otras Imágenes" (category hit)
	// and the internal identifier (per-image contribution).
	results, err := search.Search(store, "otras")

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, search.KindCategory, results[0].Kind)
	assert.Equal(t, 100, results[0].Relevance)
	assert.Equal(t, search.KindImage, results[1].Kind)
	assert.Equal(t, 20, results[1].Relevance)
	assert.Equal(t, []string{"categoría"}, results[1].MatchedFields)
}

func TestSearch_AccumulatedRelevance(t *testing.T) {
	store := newStore(t, map[string][]string{
		"operas": {"1930_05_12_ONDAS 1930.png"},
	})

	// Query hits both the title and the year.
	results, err := search.Search(store, "1930")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 80, results[0].Relevance)
	assert.Equal(t, []string{"título", "fecha"}, results[0].MatchedFields)
}

func TestSearch_Ordering(t *testing.T) {
	store := newStore(t, map[string][]string{
		"compositores": {"1920_01_01_ONDAS Falla en operas.png"},
		"operas": {
			"1930_05_12_ONDAS Carmen.png",
			"1931_02_03_ONDAS Aida.png",
		},
	})

	results, err := search.Search(store, "operas")
	require.NoError(t, err)

	t.Run("non-increasing relevance", func(t *testing.T) {
		for i := 0; i < len(results)-1; i++ {
			assert.GreaterOrEqual(t, results[i].Relevance, results[i+1].Relevance)
		}
	})

	t.Run("ties keep catalog order", func(t *testing.T) {
		// Category hit first (100), then the title hit from compositores
		// (50+0), then the two identifier-only hits in catalog order (20).
		require.Len(t, results, 4)
		assert.Equal(t, search.KindCategory, results[0].Kind)
		assert.Equal(t, "1920_01_01_ONDAS Falla en operas.png", results[1].Filename)
		assert.Equal(t, "1930_05_12_ONDAS Carmen.png", results[2].Filename)
		assert.Equal(t, "1931_02_03_ONDAS Aida.png", results[3].Filename)
	})
}

func TestSearch_NoMatches(t *testing.T) {
	store := newStore(t, map[string][]string{
		"operas": {"1930_05_12_ONDAS Carmen.png"},
	})

	results, err := search.Search(store, "inexistente")

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_NotLoaded(t *testing.T) {
	store := catalog.NewStore(filepath.Join(t.TempDir(), "missing.json"))

	_, err := search.Search(store, "carmen")

	assert.ErrorIs(t, err, catalog.ErrNotLoaded)
}
