package domain

import "sort"

// LocationStats aggregates the listings sharing one location key. It is
// a pure derivation: recompute whenever the member set changes, never
// persist independently of the source listings.
type LocationStats struct {
	Location string
	Count    int
	Listings []*Listing
	AvgPrice float64
	MinPrice float64
	MaxPrice float64
}

// BuildLocationStats groups listings by LocationKey and computes price
// aggregates over the members with a present price. Listings without a
// location key are skipped. Output is sorted by descending count, then
// location name for determinism.
func BuildLocationStats(listings []*Listing) []LocationStats {
	groups := make(map[string][]*Listing)
	for _, l := range listings {
		key := l.LocationKey()
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], l)
	}

	stats := make([]LocationStats, 0, len(groups))
	for location, members := range groups {
		s := LocationStats{Location: location, Count: len(members), Listings: members}
		var sum float64
		var priced int
		for _, l := range members {
			if l.Price == nil {
				continue
			}
			p := *l.Price
			sum += p
			if priced == 0 || p < s.MinPrice {
				s.MinPrice = p
			}
			if priced == 0 || p > s.MaxPrice {
				s.MaxPrice = p
			}
			priced++
		}
		if priced > 0 {
			s.AvgPrice = sum / float64(priced)
		}
		stats = append(stats, s)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Location < stats[j].Location
	})
	return stats
}
