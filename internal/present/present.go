package present

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"timebank/internal/domain"
	"timebank/internal/store"
)

var krw = message.NewPrinter(language.Korean)

// FormatPrice groups thousands the way ko-KR displays won amounts.
func FormatPrice(price int) string {
	return krw.Sprintf("%d", price)
}

// AmenityIcon returns the glyph for an amenity; unknown values get a star.
func AmenityIcon(name string) string {
	switch name {
	case domain.AmenityWifi:
		return "📶"
	case domain.AmenityCoffee:
		return "☕"
	case domain.AmenityFire:
		return "🔥"
	case domain.AmenityWind:
		return "🌬"
	case domain.AmenityAC:
		return "AC"
	}
	return "★"
}

// HeroVideos play in order and loop back to the first.
var HeroVideos = []string{
	"/videos/danyang_sunrise.mp4",
	"/videos/gapyeong_foggy_river.mp4",
	"/videos/sanjeong_walking.mp4",
}

var MarqueeImages = []string{
	"/images/moments/gapyeong_campsite_1_20251231_125909.png",
	"/images/moments/jeju_campsite_3_20251231_125954.png",
	"/images/moments/pocheon_campsite_4_20251231_130014.png",
	"/images/moments/gangneung_campsite_7_20251231_130111.png",
	"/images/moments/yeosu_campsite_8_20251231_130132.png",
}

// MarqueeTrack repeats the images so the scrolling strip never runs dry.
func MarqueeTrack() []string {
	out := make([]string, 0, len(MarqueeImages)*3)
	for i := 0; i < 3; i++ {
		out = append(out, MarqueeImages...)
	}
	return out
}

const EmptyRegionMessage = "해당 지역에는 예약 가능한 캠핑장이 없습니다."

// Page is everything the home template renders.
type Page struct {
	Regions        []string
	SelectedRegion string
	CustomRegion   bool // selected region has no chip
	Listings       []domain.Listing
	Empty          bool
	Selected       *domain.Listing
	Store          store.Result
	HeroVideos     []string
	Marquee        []string
	EmptyMessage   string
	Err            string
}

// NewPage builds the view model for the current selection. selected may be nil.
func NewPage(region string, visible []domain.Listing, selected *domain.Listing, status store.Result) Page {
	return Page{
		Regions:        domain.Regions,
		SelectedRegion: region,
		CustomRegion:   !domain.KnownRegion(region),
		Listings:       visible,
		Empty:          len(visible) == 0,
		Selected:       selected,
		Store:          status,
		HeroVideos:     HeroVideos,
		Marquee:        MarqueeTrack(),
		EmptyMessage:   EmptyRegionMessage,
	}
}
