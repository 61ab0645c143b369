package domain

// Listing is one bookable camping/glamping site.
type Listing struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Region      string   `json:"region"`
	Location    string   `json:"location"`
	Price       int      `json:"price"` // whole KRW per night
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Gallery     []string `json:"gallery"`
	Amenities   []string `json:"amenities"`
	Tags        []string `json:"tags"`
}

// Clone returns a copy that shares no slices with l.
func (l Listing) Clone() Listing {
	out := l
	out.Gallery = cloneStrings(l.Gallery)
	out.Amenities = cloneStrings(l.Amenities)
	out.Tags = cloneStrings(l.Tags)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

const (
	AmenityWifi   = "wifi"
	AmenityCoffee = "coffee"
	AmenityFire   = "fire"
	AmenityWind   = "wind"
	AmenityAC     = "ac"
)

// KnownAmenity reports whether s is part of the fixed amenity vocabulary.
// Unknown values are still valid listing data.
func KnownAmenity(s string) bool {
	switch s {
	case AmenityWifi, AmenityCoffee, AmenityFire, AmenityWind, AmenityAC:
		return true
	}
	return false
}

// RegionAll is the filter sentinel that selects every listing.
const RegionAll = "전체"

// Regions are the filter chips in display order.
var Regions = []string{RegionAll, "경기", "강원", "충청", "경상", "전라", "제주"}

// KnownRegion reports whether s is one of Regions (including RegionAll).
func KnownRegion(s string) bool {
	for _, r := range Regions {
		if r == s {
			return true
		}
	}
	return false
}
