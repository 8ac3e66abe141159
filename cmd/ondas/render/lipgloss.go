package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"ondas/internal/page"
)

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	titleStyle    lipgloss.Style
	dateStyle     lipgloss.Style
	pathStyle     lipgloss.Style
	categoryStyle lipgloss.Style
	headerStyle   lipgloss.Style
	pageInfoStyle lipgloss.Style
	currentStyle  lipgloss.Style
	windowStyle   lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:         width,
		r:             r,
		titleStyle:    r.NewStyle().Bold(true),
		dateStyle:     r.NewStyle().Faint(true),
		pathStyle:     r.NewStyle().Faint(true),
		categoryStyle: r.NewStyle().Foreground(lipgloss.Color("6")),
		headerStyle:   r.NewStyle().Bold(true),
		pageInfoStyle: r.NewStyle().Faint(true),
		currentStyle:  r.NewStyle().Bold(true),
		windowStyle:   r.NewStyle().Faint(true),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) RenderResults(view ResultsView) string {
	if view.IsEmpty() {
		return "No se encontraron resultados para su búsqueda.\n"
	}

	var sb strings.Builder
	title := fmt.Sprintf("Resultados de la Búsqueda (%d)", view.TotalCount)
	sb.WriteString(r.header(title, view.PageNumber, view.TotalPages))

	for _, item := range view.Items {
		sb.WriteString("\n")
		if item.IsCategory {
			sb.WriteString(r.renderCategoryItem(item))
		} else {
			sb.WriteString(r.renderImageItem(item))
		}
	}

	sb.WriteString(r.footer(view.Window, view.PageNumber, view.TotalPages))
	return sb.String()
}

func (r *LipglossRenderer) RenderGallery(view GalleryView) string {
	if view.IsEmpty() {
		return fmt.Sprintf("No hay imágenes en la categoría %s.\n", view.CategoryName)
	}

	var sb strings.Builder
	title := fmt.Sprintf("%s (%d)", view.CategoryName, view.TotalCount)
	sb.WriteString(r.header(title, view.PageNumber, view.TotalPages))

	for _, item := range view.Items {
		sb.WriteString("\n")
		sb.WriteString(r.titledLine(item.Title, item.Date))
		sb.WriteString(r.pathStyle.Render("  " + item.AssetPath))
		sb.WriteString("\n")
	}

	sb.WriteString(r.footer(view.Window, view.PageNumber, view.TotalPages))
	return sb.String()
}

func (r *LipglossRenderer) renderCategoryItem(item ResultItem) string {
	var sb strings.Builder
	sb.WriteString(r.categoryStyle.Bold(true).Render(item.CategoryName))
	sb.WriteString("\n")
	sb.WriteString(r.pathStyle.Render("  Ver toda la categoría · " + item.Page))
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) renderImageItem(item ResultItem) string {
	var sb strings.Builder
	sb.WriteString(r.titledLine(item.Title, item.Date))
	sb.WriteString(r.pathStyle.Render("  " + item.AssetPath))
	sb.WriteString("\n")

	detail := fmt.Sprintf("  %s · %d (%s)",
		item.CategoryName, item.Relevance, strings.Join(item.MatchedFields, ", "))
	sb.WriteString(r.categoryStyle.Render(detail))
	sb.WriteString("\n")
	return sb.String()
}

// titledLine lays out a bold title on the left and the date on the right.
func (r *LipglossRenderer) titledLine(title, date string) string {
	name := r.titleStyle.Render(title)
	dateEl := r.dateStyle.Render(date)
	padding := max(1, r.width-lipgloss.Width(name)-lipgloss.Width(dateEl))
	return name + strings.Repeat(" ", padding) + dateEl + "\n"
}

func (r *LipglossRenderer) header(title string, pageNumber, totalPages int) string {
	name := r.headerStyle.Render(title)
	info := r.pageInfoStyle.Render(fmt.Sprintf("pág. %d de %d", pageNumber, totalPages))
	padding := max(1, r.width-lipgloss.Width(name)-lipgloss.Width(info))
	return name + strings.Repeat(" ", padding) + info + "\n"
}

func (r *LipglossRenderer) footer(window []int, current, totalPages int) string {
	if totalPages <= 1 {
		return ""
	}

	parts := make([]string, 0, len(window))
	for _, p := range window {
		switch {
		case p == page.Ellipsis:
			parts = append(parts, r.windowStyle.Render("…"))
		case p == current:
			parts = append(parts, r.currentStyle.Render(fmt.Sprintf("[%d]", p)))
		default:
			parts = append(parts, r.windowStyle.Render(fmt.Sprintf("%d", p)))
		}
	}

	return "\n" + strings.Join(parts, " ") + "\n"
}
