package constants

import "time"

// Defaults for the listing query gateway.
const (
	DefaultPageSize = 24
	DefaultOffset   = 0
	DefaultSort     = "recent"

	// TopScoredDefaultLimit caps the "best opportunity" ranking response.
	TopScoredDefaultLimit = 10
)

// Upstream sort keys accepted by the catalog API. Anything else falls back
// to DefaultSort.
var UpstreamSortKeys = map[string]struct{}{
	"recent":     {},
	"price_asc":  {},
	"price_desc": {},
}

// MisclassifiedSaleThreshold is the price (USD) below which a "sale" house
// listing is treated as a rental ad posted under the wrong deal type.
const MisclassifiedSaleThreshold = 15000.0

// SearchDebounceDelay is the pause after the last keystroke before a
// search-as-you-type query is issued.
const SearchDebounceDelay = 250 * time.Millisecond

// Minimum query lengths before the search endpoints call upstream.
const (
	MinPlaceQueryLen        = 3
	MinNeighborhoodQueryLen = 2
)
