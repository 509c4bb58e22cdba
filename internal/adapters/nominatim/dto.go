package nominatim

import "strconv"

// Nominatim serializes coordinates as strings.
type searchResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func (r *searchResult) coordinates() (lat, lon float64, ok bool) {
	lat, errLat := strconv.ParseFloat(r.Lat, 64)
	lon, errLon := strconv.ParseFloat(r.Lon, 64)
	if errLat != nil || errLon != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

type reverseResult struct {
	DisplayName string         `json:"display_name"`
	Address     reverseAddress `json:"address"`
}

type reverseAddress struct {
	Neighbourhood string `json:"neighbourhood"`
	Suburb        string `json:"suburb"`
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	State         string `json:"state"`
}
