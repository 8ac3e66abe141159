package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"ondas/cmd/ondas/render"
	"ondas/internal/catalog"
	"ondas/internal/config"
	"ondas/internal/search"
	"ondas/internal/ui"
)

type CLI struct {
	Search     SearchCmd     `cmd:"" aliases:"s" help:"Search the exhibition catalog"`
	Gallery    GalleryCmd    `cmd:"" aliases:"g" help:"Browse a category page by page"`
	Categories CategoriesCmd `cmd:"" aliases:"cat" help:"List the exhibition categories"`
	Meta       MetaCmd       `cmd:"" help:"Show the metadata encoded in image filenames"`

	DatabasePath string `name:"database" short:"d" help:"Path to the catalog database file"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	databasePath := c.DatabasePath
	if databasePath == "" {
		databasePath = config.DefaultDatabasePath()
	} else {
		expanded, err := config.ExpandPath(databasePath)
		if err != nil {
			return fmt.Errorf("invalid database path: %w", err)
		}
		databasePath = expanded
	}

	store := catalog.NewStore(databasePath)
	if err := store.Load(); err != nil {
		return fmt.Errorf("failed to load catalog database: %w", err)
	}

	globals := &Globals{
		Store:   store,
		Session: search.NewSession(store),
		Out:     os.Stdout,
		Render:  render.NewLipglossRendererAuto(os.Stdout),
		Prompt:  ui.PromptQuery,
	}
	ctx.Bind(globals)
	return nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("ondas"),
		kong.Description("Catalog search for the ONDAS virtual exhibition"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
