package main

import (
	"io"

	"ondas/cmd/ondas/render"
	"ondas/internal/catalog"
	"ondas/internal/search"
)

type Globals struct {
	Store   *catalog.Store
	Session *search.Session
	Out     io.Writer
	Render  render.Renderer
	Prompt  func() (string, error)
}
