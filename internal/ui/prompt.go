package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func PromptTheme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	return t
}

// PromptQuery asks for a search query interactively. An aborted prompt or a
// blank answer returns the empty string, which callers treat as a no-op.
func PromptQuery() (string, error) {
	var query string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Buscar en la exposición").
				Description("Título, fecha o categoría").
				Value(&query),
		),
	).WithTheme(PromptTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", err
	}

	return strings.TrimSpace(query), nil
}
