package main

import (
	"fmt"
	"text/tabwriter"

	"ondas/internal/catalog"
)

type CategoriesCmd struct {
	Names bool `short:"n" help:"Output only category identifiers (one per line)"`
}

func (cmd *CategoriesCmd) Run(g *Globals) error {
	if cmd.Names {
		for _, id := range catalog.Categories() {
			fmt.Fprintln(g.Out, id)
		}
		return nil
	}

	w := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tIMÁGENES\tPÁGINA\tDIRECTORIO")
	fmt.Fprintln(w, "--\t------\t--------\t------\t----------")

	for _, id := range catalog.Categories() {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			id, id.Name(), g.Store.CategoryCount(id), id.Page(), id.DirName())
	}

	return w.Flush()
}
