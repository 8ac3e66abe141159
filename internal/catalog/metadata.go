package catalog

import (
	"regexp"
	"strings"
)

// DateUnavailable is the date shown for filenames that do not carry one.
const DateUnavailable = "Fecha no disponible"

// Filenames follow YYYY:MM:DD_ONDAS Título.png or YYYY_MM_DD_ONDAS Título.png.
var (
	datePatternColon      = regexp.MustCompile(`^(\d{4}):(\d{2}):(\d{2})[_\s]+ONDAS\s+(.+)$`)
	datePatternUnderscore = regexp.MustCompile(`^(\d{4})_(\d{2})_(\d{2})[_\s]+ONDAS\s+(.+)$`)
	tagPattern            = regexp.MustCompile(`_ONDAS\s+`)
)

var imageSuffixes = []string{".png", ".jpg"}

// ImageMetadata is the date/title record encoded in an image filename.
type ImageMetadata struct {
	Date        string
	Year        string
	Month       string
	Day         string
	Title       string
	RawFilename string
}

// ExtractMetadata parses an image filename into its metadata record. It never
// fails: filenames that match neither date grammar get the DateUnavailable
// sentinel and a best-effort title with the ONDAS tag stripped.
func ExtractMetadata(filename string) ImageMetadata {
	name := filename
	for _, suffix := range imageSuffixes {
		name = strings.TrimSuffix(name, suffix)
	}

	match := datePatternColon.FindStringSubmatch(name)
	if match == nil {
		match = datePatternUnderscore.FindStringSubmatch(name)
	}

	if match != nil {
		year, month, day, title := match[1], match[2], match[3], match[4]
		return ImageMetadata{
			Date:        day + "/" + month + "/" + year,
			Year:        year,
			Month:       month,
			Day:         day,
			Title:       strings.TrimSpace(title),
			RawFilename: filename,
		}
	}

	title := name
	if loc := tagPattern.FindStringIndex(name); loc != nil {
		title = name[:loc[0]] + name[loc[1]:]
	}

	return ImageMetadata{
		Date:        DateUnavailable,
		Title:       title,
		RawFilename: filename,
	}
}
