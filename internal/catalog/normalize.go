package catalog

import (
	"regexp"
	"strings"

	"timebank/internal/domain"
)

// CuratedMedia is a bundled image/gallery pair for a listing id.
type CuratedMedia struct {
	Image   string
	Gallery []string
}

func curated(n, place string) CuratedMedia {
	base := "/images/curated/curated_" + n + "_" + place
	return CuratedMedia{
		Image: base + "_dusk_1600x1200.png",
		Gallery: []string{
			base + "_dusk_1600x1200.png",
			base + "_dawn_1600x1200.png",
		},
	}
}

// Curated maps listing ids to local media shipped with the site.
var Curated = map[string]CuratedMedia{
	"1": curated("1", "gapyeong"),
	"2": curated("2", "yangpyeong"),
	"3": curated("3", "jeju"),
	"4": curated("4", "pocheon"),
	"5": curated("5", "taean"),
	"6": curated("6", "gangneung"),
	"7": curated("7", "sokcho"),
	"8": curated("8", "yeosu"),
}

var reRemote = regexp.MustCompile(`(?i)^https?://`)

func isRemote(s string) bool {
	return reRemote.MatchString(strings.TrimSpace(s))
}

// Normalize swaps remote or missing media for the curated local copies.
// Listings without a curated entry are returned as is.
func Normalize(l domain.Listing) domain.Listing {
	c, ok := Curated[l.ID]
	if !ok {
		return l
	}

	img := strings.TrimSpace(l.Image)
	if img == "" || isRemote(img) {
		l.Image = c.Image
	}

	replace := len(l.Gallery) == 0
	for _, g := range l.Gallery {
		if isRemote(g) {
			replace = true
			break
		}
	}
	if replace {
		l.Gallery = append([]string(nil), c.Gallery...)
	}
	return l
}

// NormalizeAll applies Normalize to every listing into a new slice.
func NormalizeAll(in []domain.Listing) []domain.Listing {
	out := make([]domain.Listing, len(in))
	for i, l := range in {
		out[i] = Normalize(l)
	}
	return out
}
