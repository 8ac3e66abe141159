package main

import (
	"fmt"

	"ondas/internal/catalog"
)

type MetaCmd struct {
	Filenames []string `arg:"" help:"Image filenames to inspect"`
}

func (cmd *MetaCmd) Run(g *Globals) error { //nolint:unparam // error required by kong interface
	for i, filename := range cmd.Filenames {
		if i > 0 {
			fmt.Fprintln(g.Out)
		}

		m := catalog.ExtractMetadata(filename)
		fmt.Fprintf(g.Out, "Archivo: %s\n", m.RawFilename)
		fmt.Fprintf(g.Out, "Título:  %s\n", m.Title)
		fmt.Fprintf(g.Out, "Fecha:   %s\n", m.Date)
		if m.Year != "" {
			fmt.Fprintf(g.Out, "Año:     %s\n", m.Year)
			fmt.Fprintf(g.Out, "Mes:     %s\n", m.Month)
			fmt.Fprintf(g.Out, "Día:     %s\n", m.Day)
		}
	}

	return nil
}
