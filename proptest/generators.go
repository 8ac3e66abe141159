package proptest

import (
	"pgregory.net/rapid"

	"ondas/internal/catalog"
)

var (
	iterDirGen = rapid.StringMatching(`[a-z]{8}`)
	yearGen    = rapid.StringMatching(`(18|19|20)\d{2}`)
	monthGen   = rapid.StringMatching(`\d{2}`)
	dayGen     = rapid.StringMatching(`\d{2}`)
	queryGen   = rapid.StringMatching(`[a-záéíóúñ]{1,10}`)
)

// Titles start and end on a letter so the extractor's trim leaves them
// unchanged.
var titleGen = rapid.OneOf(
	rapid.StringMatching(`[A-Za-záéíóúñÁÉÍÓÚÑ]`),
	rapid.StringMatching(`[A-Za-záéíóúñÁÉÍÓÚÑ][A-Za-z áéíóúñÁÉÍÓÚÑ]{0,18}[A-Za-záéíóúñÁÉÍÓÚÑ]`),
)

// FilenameParts holds the pieces a well-formed filename is assembled from.
type FilenameParts struct {
	Year   string
	Month  string
	Day    string
	Title  string
	Sep    string
	TagSep string
	Suffix string
}

func (p FilenameParts) Filename() string {
	date := p.Year + p.Sep + p.Month + p.Sep + p.Day
	return date + p.TagSep + "ONDAS " + p.Title + p.Suffix
}

func filenamePartsGen() *rapid.Generator[FilenameParts] {
	return rapid.Custom(func(t *rapid.T) FilenameParts {
		return FilenameParts{
			Year:   yearGen.Draw(t, "year"),
			Month:  monthGen.Draw(t, "month"),
			Day:    dayGen.Draw(t, "day"),
			Title:  titleGen.Draw(t, "title"),
			Sep:    rapid.SampledFrom([]string{":", "_"}).Draw(t, "sep"),
			TagSep: rapid.SampledFrom([]string{"_", " ", "__", "  "}).Draw(t, "tagSep"),
			Suffix: rapid.SampledFrom([]string{".png", ".jpg", ""}).Draw(t, "suffix"),
		}
	})
}

func validFilenameGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		return filenamePartsGen().Draw(t, "parts").Filename()
	})
}

// Lowercase-only names can match neither date grammar (both require the
// uppercase ONDAS tag).
func malformedFilenameGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.StringMatching(`[a-z áéíóúñ]{1,25}\.png`),
		rapid.StringMatching(`[a-z_]{1,20}`),
		rapid.StringMatching(`\d{2}:\d{2}:\d{2}_ONDAS [a-z]{1,10}\.png`),
		rapid.Just("retrato_ONDAS sin fecha.png"),
	)
}

func filenameGen() *rapid.Generator[string] {
	return rapid.OneOf(validFilenameGen(), malformedFilenameGen())
}

func databaseGen() *rapid.Generator[map[catalog.CategoryID][]string] {
	return rapid.Custom(func(t *rapid.T) map[catalog.CategoryID][]string {
		database := make(map[catalog.CategoryID][]string)
		for _, id := range catalog.Categories() {
			n := rapid.IntRange(0, 5).Draw(t, "numImages")
			filenames := make([]string, 0, n)
			seen := make(map[string]bool, n)
			for range n {
				// A directory never holds the same filename twice.
				filename := filenameGen().Draw(t, "filename")
				if seen[filename] {
					continue
				}
				seen[filename] = true
				filenames = append(filenames, filename)
			}
			database[id] = filenames
		}
		return database
	})
}
