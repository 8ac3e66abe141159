package render

type Renderer interface {
	RenderResults(view ResultsView) string
	RenderGallery(view GalleryView) string
}

// ResultsView is one page of ranked search results.
type ResultsView struct {
	Query      string
	TotalCount int
	PageNumber int
	TotalPages int
	Window     []int
	Items      []ResultItem
}

// ResultItem is a single rendered hit. Category hits link to a whole
// exhibition page; image hits carry the parsed metadata and asset path.
type ResultItem struct {
	IsCategory    bool
	CategoryName  string
	Page          string
	Title         string
	Date          string
	AssetPath     string
	Relevance     int
	MatchedFields []string
}

func (v ResultsView) IsEmpty() bool {
	return v.TotalCount == 0
}

// GalleryView is one page of a category's full image listing.
type GalleryView struct {
	CategoryName string
	Page         string
	TotalCount   int
	PageNumber   int
	TotalPages   int
	Window       []int
	Items        []GalleryItem
}

type GalleryItem struct {
	Title     string
	Date      string
	AssetPath string
}

func (v GalleryView) IsEmpty() bool {
	return v.TotalCount == 0
}
