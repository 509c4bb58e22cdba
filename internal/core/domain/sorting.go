package domain

import (
	"math"
	"sort"
)

// SortOption orders an already-fetched page of listings for display.
// Distinct from the upstream sort keys: this runs client-side over the
// in-memory set.
type SortOption string

const (
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortRoomsAsc  SortOption = "rooms-asc"
	SortRoomsDesc SortOption = "rooms-desc"
	SortPpm2Asc   SortOption = "ppm2-asc"
	SortPpm2Desc  SortOption = "ppm2-desc"
)

// DefaultSortOption is the type-preserving default the filter state
// resets to.
const DefaultSortOption = SortPriceAsc

// ValidSortOption reports whether s is one of the recognized options.
func ValidSortOption(s SortOption) bool {
	switch s {
	case SortPriceAsc, SortPriceDesc, SortRoomsAsc, SortRoomsDesc, SortPpm2Asc, SortPpm2Desc:
		return true
	}
	return false
}

// SortListings returns a new ordered slice; the input keeps its order.
// Ties preserve the relative input order (stable sort). Listings with no
// derivable area always sort last under both ppm2 directions.
func SortListings(listings []*Listing, option SortOption) []*Listing {
	sorted := make([]*Listing, len(listings))
	copy(sorted, listings)

	var less func(a, b *Listing) bool
	switch option {
	case SortPriceAsc:
		less = func(a, b *Listing) bool { return a.PriceOrZero() < b.PriceOrZero() }
	case SortPriceDesc:
		less = func(a, b *Listing) bool { return a.PriceOrZero() > b.PriceOrZero() }
	case SortRoomsAsc:
		less = func(a, b *Listing) bool { return a.Bedrooms() < b.Bedrooms() }
	case SortRoomsDesc:
		less = func(a, b *Listing) bool { return a.Bedrooms() > b.Bedrooms() }
	case SortPpm2Asc:
		less = func(a, b *Listing) bool { return pricePerM2(a, math.Inf(1)) < pricePerM2(b, math.Inf(1)) }
	case SortPpm2Desc:
		less = func(a, b *Listing) bool { return pricePerM2(a, 0) > pricePerM2(b, 0) }
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}

// pricePerM2 computes the derived price-per-area key. When the area is
// not positive the sentinel pushes the listing to the end of the list for
// the direction in use.
func pricePerM2(l *Listing, unknown float64) float64 {
	area := l.AreaM2()
	if area <= 0 {
		return unknown
	}
	return l.PriceOrZero() / area
}
