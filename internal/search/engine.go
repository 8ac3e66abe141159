// Package search ranks catalog entries against free-text queries.
package search

import (
	"sort"
	"strings"

	"ondas/internal/catalog"
)

// Kind discriminates the two result variants.
type Kind string

const (
	KindCategory Kind = "category"
	KindImage    Kind = "image"
)

// Relevance weights. A category display-name hit stands for the whole
// category; the per-image contributions accumulate.
const (
	categoryRelevance      = 100
	titleRelevance         = 50
	dateRelevance          = 30
	categoryFieldRelevance = 20
)

// Matched-field labels, as shown to visitors.
const (
	FieldTitle    = "título"
	FieldDate     = "fecha"
	FieldCategory = "categoría"
)

// Result is one ranked search hit. Category hits carry only the category
// fields; image hits additionally carry the filename, its metadata, and
// the fields the query matched on.
type Result struct {
	Kind          Kind
	Category      catalog.CategoryID
	CategoryName  string
	Page          string
	Filename      string
	Metadata      catalog.ImageMetadata
	Relevance     int
	MatchedFields []string
}

// Search runs query against every category and image in the store and
// returns results sorted by relevance, highest first. Equal-relevance
// results keep the catalog's fixed category/image enumeration order. The
// query is assumed non-empty; empty input is the caller's no-op case.
func Search(store *catalog.Store, query string) ([]Result, error) {
	if !store.Ready() {
		return nil, catalog.ErrNotLoaded
	}

	normalized := Normalize(query)
	var results []Result

	for _, id := range catalog.Categories() {
		if strings.Contains(Normalize(id.Name()), normalized) {
			results = append(results, Result{
				Kind:         KindCategory,
				Category:     id,
				CategoryName: id.Name(),
				Page:         id.Page(),
				Relevance:    categoryRelevance,
			})
		}

		for _, filename := range store.Images(id) {
			if r, ok := scoreImage(id, filename, query, normalized); ok {
				results = append(results, r)
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})

	return results, nil
}

func scoreImage(id catalog.CategoryID, filename, query, normalized string) (Result, bool) {
	metadata := catalog.ExtractMetadata(filename)
	relevance := 0
	var fields []string

	if strings.Contains(Normalize(metadata.Title), normalized) {
		relevance += titleRelevance
		fields = append(fields, FieldTitle)
	}

	// Dates are numeric, so the raw query is compared exactly, without
	// normalization.
	if query == metadata.Date || query == metadata.Year ||
		query == metadata.Month || query == metadata.Day {
		relevance += dateRelevance
		fields = append(fields, FieldDate)
	}

	// This checks the internal identifier, not the display name matched
	// per category above.
	if strings.Contains(Normalize(string(id)), normalized) {
		relevance += categoryFieldRelevance
		fields = append(fields, FieldCategory)
	}

	if relevance == 0 {
		return Result{}, false
	}

	return Result{
		Kind:          KindImage,
		Category:      id,
		CategoryName:  id.Name(),
		Page:          id.Page(),
		Filename:      filename,
		Metadata:      metadata,
		Relevance:     relevance,
		MatchedFields: fields,
	}, true
}
