package domain

import (
	"strconv"
	"strings"
)

// Coordinates are rounded to 4 decimals (~11m) inside fallback dedup
// keys, so re-listed ads with jittered pins still collapse.
const dedupCoordPrecision = 4

// DedupKey is the stable identity used to collapse duplicate rows. The
// external id wins when present; rows without one fall back to a
// composite of folded title, folded location and rounded coordinates.
func (l *Listing) DedupKey() string {
	if l.ExternalID != "" {
		return "id:" + l.ExternalID
	}

	parts := []string{
		FoldKey(l.Title),
		FoldKey(l.LocationKey()),
	}
	if l.Place != nil {
		parts = append(parts,
			strconv.FormatFloat(l.Place.Lat, 'f', dedupCoordPrecision, 64),
			strconv.FormatFloat(l.Place.Lon, 'f', dedupCoordPrecision, 64),
		)
	}
	return "composite:" + strings.Join(parts, "|")
}

// DedupListings removes duplicate rows from a page, keeping the first
// occurrence and preserving order. The input is not mutated.
func DedupListings(listings []*Listing) []*Listing {
	seen := make(map[string]struct{}, len(listings))
	kept := make([]*Listing, 0, len(listings))
	for _, l := range listings {
		key := l.DedupKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, l)
	}
	return kept
}
