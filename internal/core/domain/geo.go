package domain

import "strings"

// PlaceHit is one free-text place search result.
type PlaceHit struct {
	DisplayName string
	Lat         float64
	Lon         float64
}

// Neighborhood is one entry of the residential-areas dataset.
type Neighborhood struct {
	ID           string
	Name         string
	Lat          float64
	Lon          float64
	Municipality string
	Department   string
}

// ReverseGeocode carries the structured address parts a reverse lookup
// returns. Any part may be empty; DisplayName is the provider's full
// comma-separated label used as a last resort.
type ReverseGeocode struct {
	Neighbourhood string
	Suburb        string
	City          string
	Town          string
	Village       string
	State         string
	DisplayName   string
}

// Label derives the human place name by priority: specific place
// (neighborhood/suburb), then city (skipped when identical to the
// specific part), then region (skipped when identical to the previous
// part). When no structured part is usable, the first three comma
// segments of the display name are used instead.
func (g *ReverseGeocode) Label() string {
	specific := g.Neighbourhood
	if specific == "" {
		specific = g.Suburb
	}
	city := g.City
	if city == "" {
		city = g.Town
	}
	if city == "" {
		city = g.Village
	}

	parts := make([]string, 0, 3)
	if specific != "" {
		parts = append(parts, specific)
	}
	if city != "" && city != specific {
		parts = append(parts, city)
	}
	if g.State != "" && (len(parts) == 0 || g.State != parts[len(parts)-1]) {
		parts = append(parts, g.State)
	}

	if len(parts) == 0 {
		return displayNameFallback(g.DisplayName)
	}
	return strings.Join(parts, ", ")
}

func displayNameFallback(displayName string) string {
	if displayName == "" {
		return ""
	}
	segments := make([]string, 0, 3)
	for _, seg := range strings.Split(displayName, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		segments = append(segments, seg)
		if len(segments) == 3 {
			break
		}
	}
	return strings.Join(segments, ", ")
}
