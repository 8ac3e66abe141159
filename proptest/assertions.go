package proptest

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"

	"ondas/internal/catalog"
	"ondas/internal/search"
)

func assertResultsEqual(t *rapid.T, expected, actual []search.Result) {
	t.Helper()
	opts := cmp.Options{cmpopts.EquateEmpty()}
	if diff := cmp.Diff(expected, actual, opts...); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}
}

func assertSortedByRelevance(t *rapid.T, results []search.Result) {
	t.Helper()
	for i := 0; i < len(results)-1; i++ {
		if results[i].Relevance < results[i+1].Relevance {
			t.Fatalf("relevance order violated at positions %d, %d: %d < %d",
				i, i+1, results[i].Relevance, results[i+1].Relevance)
		}
	}
}

// assertStableTies checks that equal-relevance results keep the catalog's
// category/image enumeration order.
func assertStableTies(t *rapid.T, results []search.Result, database map[catalog.CategoryID][]string) {
	t.Helper()

	position := make(map[string]int)
	rank := 0
	for _, id := range catalog.Categories() {
		// A category hit sorts before the category's own images.
		position[string(id)] = rank
		rank++
		for _, filename := range database[id] {
			position[string(id)+"\x00"+filename] = rank
			rank++
		}
	}

	for i := 0; i < len(results)-1; i++ {
		a, b := results[i], results[i+1]
		if a.Relevance != b.Relevance {
			continue
		}
		if resultPosition(position, a) >= resultPosition(position, b) {
			t.Fatalf("tie order violated at positions %d, %d", i, i+1)
		}
	}
}

func resultPosition(position map[string]int, r search.Result) int {
	if r.Kind == search.KindCategory {
		return position[string(r.Category)]
	}
	return position[string(r.Category)+"\x00"+r.Filename]
}
