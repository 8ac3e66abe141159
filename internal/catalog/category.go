package catalog

import (
	"fmt"
	"path"
)

// CategoryID identifies one of the fixed exhibition categories.
type CategoryID string

const (
	Compositores CategoryID = "compositores"
	Cantantes    CategoryID = "cantantes"
	Interpretes  CategoryID = "interpretes"
	Operas       CategoryID = "operas"
	Zarzuelas    CategoryID = "zarzuelas"
	Instrumentos CategoryID = "instrumentos"
	Caricaturas  CategoryID = "caricaturas"
	Portadas     CategoryID = "portadas"
	Anuncios     CategoryID = "anuncios"
	Otras        CategoryID = "otras"
)

const assetRoot = "ondas/imagenes"

type categoryInfo struct {
	name string
	page string
	dir  string
}

// Directory names mirror the exhibition tree on disk, quirks included
// (trailing space in "ANUNCIOS ", mixed case in "INSTRUMENTOS e INVENTOS").
var categoryTable = map[CategoryID]categoryInfo{
	Compositores: {"Compositores", "exposicion_ondas_compositores.html", "COMPOSITORES"},
	Cantantes:    {"Cantantes", "exposicion_ondas_cantantes.html", "CANTANTES"},
	Interpretes:  {"Otros Intérpretes", "exposicion_ondas_interpretes.html", "OTROS INTÉRPRETES"},
	Operas:       {"Óperas", "exposicion_ondas_operas.html", "ÓPERAS"},
	Zarzuelas:    {"Zarzuela y Obras Musicales", "exposicion_ondas_zarzuelas.html", "ZARZUELA Y OBRAS MUSICALES CONCRETAS"},
	Instrumentos: {"Instrumentos e Inventos", "exposicion_ondas_instrumentos.html", "INSTRUMENTOS e INVENTOS"},
	Caricaturas:  {"Caricaturas y Dibujos", "exposicion_ondas_caricaturas.html", "CARICATURAS, TIRAS CÓMICAS, DIBUJOS"},
	Portadas:     {"Portadas Musicales", "exposicion_ondas_portadas.html", "PORTADAS y CABECERAS MUSICALES"},
	Anuncios:     {"Anuncios", "exposicion_ondas_anuncios.html", "ANUNCIOS "},
	Otras:        {"Otras Imágenes", "exposicion_ondas_otras.html", "OTRAS IMÁGENES y PORTADAS GENERALISTAS"},
}

var categoryOrder = []CategoryID{
	Compositores,
	Cantantes,
	Interpretes,
	Operas,
	Zarzuelas,
	Instrumentos,
	Caricaturas,
	Portadas,
	Anuncios,
	Otras,
}

// Categories returns the closed category set in its fixed display order.
func Categories() []CategoryID {
	out := make([]CategoryID, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategoryID resolves a user-supplied identifier to a known category.
func ParseCategoryID(s string) (CategoryID, error) {
	id := CategoryID(s)
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return id, nil
}

func (id CategoryID) Valid() bool {
	_, ok := categoryTable[id]
	return ok
}

// Name returns the category's display name.
func (id CategoryID) Name() string {
	return categoryTable[id].name
}

// Page returns the exhibition page this category links to.
func (id CategoryID) Page() string {
	return categoryTable[id].page
}

// DirName returns the asset directory holding the category's images.
func (id CategoryID) DirName() string {
	return categoryTable[id].dir
}

// AssetPath builds the site-relative path for an image in this category.
func (id CategoryID) AssetPath(filename string) string {
	return path.Join(assetRoot, id.DirName(), filename)
}
