package catalog

import "timebank/internal/domain"

// Visible returns the listings shown for region, in their original order.
// The result is never nil, so an empty match is distinguishable from
// a collection that was never loaded.
func Visible(listings []domain.Listing, region string) []domain.Listing {
	if region == domain.RegionAll {
		out := make([]domain.Listing, len(listings))
		copy(out, listings)
		return out
	}
	out := []domain.Listing{}
	for _, l := range listings {
		if l.Region == region {
			out = append(out, l)
		}
	}
	return out
}

// Find looks a listing up by id.
func Find(listings []domain.Listing, id string) (domain.Listing, bool) {
	for _, l := range listings {
		if l.ID == id {
			return l, true
		}
	}
	return domain.Listing{}, false
}
