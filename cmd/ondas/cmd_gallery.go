package main

import (
	"fmt"

	"ondas/cmd/ondas/render"
	"ondas/internal/catalog"
	"ondas/internal/page"
)

const (
	galleryPageSize     = 39
	galleryWindowRadius = 2
)

type GalleryCmd struct {
	Category string `arg:"" help:"Category identifier (e.g. operas, anuncios)"`
	Page     int    `short:"p" default:"1" help:"Gallery page to show"`
}

func (cmd *GalleryCmd) Run(g *Globals) error {
	id, err := catalog.ParseCategoryID(cmd.Category)
	if err != nil {
		return err
	}

	pg := page.Paginate(g.Store.Images(id), cmd.Page, galleryPageSize)
	view := render.GalleryView{
		CategoryName: id.Name(),
		Page:         id.Page(),
		TotalCount:   pg.TotalCount,
		PageNumber:   pg.Number,
		TotalPages:   pg.TotalPages,
		Window:       page.Window(pg.Number, pg.TotalPages, galleryWindowRadius),
	}

	for _, filename := range pg.Items {
		m := catalog.ExtractMetadata(filename)
		view.Items = append(view.Items, render.GalleryItem{
			Title:     m.Title,
			Date:      m.Date,
			AssetPath: id.AssetPath(filename),
		})
	}

	fmt.Fprint(g.Out, g.Render.RenderGallery(view))
	return nil
}
