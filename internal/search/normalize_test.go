package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ondas/internal/search"
)

func TestNormalize(t *testing.T) {
	t.Run("lowercases", func(t *testing.T) {
		assert.Equal(t, "carmen", search.Normalize("CARMEN"))
	})

	t.Run("strips diacritics", func(t *testing.T) {
		assert.Equal(t, "operas", search.Normalize("ÓPERAS"))
		assert.Equal(t, "opera", search.Normalize("Ópera"))
		assert.Equal(t, "dona francisquita", search.Normalize("Doña Francisquita"))
		assert.Equal(t, "interpretes", search.Normalize("Intérpretes"))
	})

	t.Run("accent insensitive equality", func(t *testing.T) {
		assert.Equal(t, search.Normalize("ÓPERAS"), search.Normalize("operas"))
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, s := range []string{"Ópera", "ZARZUELA", "caricaturas", "música y radio"} {
			once := search.Normalize(s)
			assert.Equal(t, once, search.Normalize(once))
		}
	})

	t.Run("digits and punctuation untouched", func(t *testing.T) {
		assert.Equal(t, "12/05/1930", search.Normalize("12/05/1930"))
	})
}
