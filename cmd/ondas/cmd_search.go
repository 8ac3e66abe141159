package main

import (
	"fmt"
	"strings"

	"ondas/cmd/ondas/render"
	"ondas/internal/page"
	"ondas/internal/search"
)

const (
	resultsPageSize     = 50
	resultsWindowRadius = 5
)

type SearchCmd struct {
	Query string `arg:"" optional:"" help:"Search query (omit for an interactive prompt)"`
	Page  int    `short:"p" default:"1" help:"Results page to show"`
}

func (cmd *SearchCmd) Run(g *Globals) error {
	query := strings.TrimSpace(cmd.Query)
	if query == "" && g.Prompt != nil {
		var err error
		query, err = g.Prompt()
		if err != nil {
			return err
		}
	}
	if query == "" {
		// Blank queries are a no-op, not an error.
		return nil
	}

	if _, err := g.Session.Search(query); err != nil {
		return fmt.Errorf("search unavailable: %w", err)
	}

	pg := g.Session.Page(cmd.Page, resultsPageSize)
	fmt.Fprint(g.Out, g.Render.RenderResults(resultsView(query, pg)))
	return nil
}

func resultsView(query string, pg page.Page[search.Result]) render.ResultsView {
	view := render.ResultsView{
		Query:      query,
		TotalCount: pg.TotalCount,
		PageNumber: pg.Number,
		TotalPages: pg.TotalPages,
		Window:     page.Window(pg.Number, pg.TotalPages, resultsWindowRadius),
	}

	for _, r := range pg.Items {
		item := render.ResultItem{
			CategoryName: r.CategoryName,
			Page:         r.Page,
		}
		if r.Kind == search.KindCategory {
			item.IsCategory = true
		} else {
			item.Title = r.Metadata.Title
			item.Date = r.Metadata.Date
			item.AssetPath = r.Category.AssetPath(r.Filename)
			item.Relevance = r.Relevance
			item.MatchedFields = r.MatchedFields
		}
		view.Items = append(view.Items, item)
	}

	return view
}
