package rest

import (
	"time"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
)

type ListingDTO struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title"`
	Price         *float64               `json:"price"`
	ListingType   string                 `json:"listingType"`
	Specs         map[string]interface{} `json:"specs,omitempty"`
	Tags          []string               `json:"tags,omitempty"`
	Location      string                 `json:"location,omitempty"`
	Place         *PlaceDTO              `json:"place,omitempty"`
	Score         *float64               `json:"score,omitempty"`
	PublishedDate *time.Time             `json:"publishedDate,omitempty"`
	LastUpdated   *time.Time             `json:"lastUpdated,omitempty"`
}

type PlaceDTO struct {
	Municipality string  `json:"municipality"`
	Department   string  `json:"department"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
}

type PaginationDTO struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

type TagListingsResponseDTO struct {
	Tag        string        `json:"tag"`
	Slug       string        `json:"slug"`
	Listings   []ListingDTO  `json:"listings"`
	Pagination PaginationDTO `json:"pagination"`
}

type TopScoredResponseDTO struct {
	Department string       `json:"department"`
	Sale       []ListingDTO `json:"sale"`
	Rent       []ListingDTO `json:"rent"`
	All        []ListingDTO `json:"all"`
}

type PlaceHitDTO struct {
	DisplayName string  `json:"displayName"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

type NeighborhoodDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	Municipality string  `json:"municipality"`
	Department   string  `json:"department"`
}

type ReverseGeocodeResponseDTO struct {
	Name *string `json:"name"`
}

type LocationStatsDTO struct {
	Location string  `json:"location"`
	Count    int     `json:"count"`
	AvgPrice float64 `json:"avgPrice"`
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
}

// FilterSessionRequestDTO replays one browsing session's filter actions
// over the initial selection and returns the derived view state.
type FilterSessionRequestDTO struct {
	BasePath string            `json:"basePath"`
	Type     string            `json:"type"`
	Actions  []FilterActionDTO `json:"actions"`
}

type FilterActionDTO struct {
	Op    string   `json:"op"`
	Value string   `json:"value,omitempty"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
}

type ChipDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type FilterSessionResponseDTO struct {
	Chips            []ChipDTO `json:"chips"`
	ActiveCount      int       `json:"activeCount"`
	HasActiveFilters bool      `json:"hasActiveFilters"`
	PriceLabel       string    `json:"priceLabel,omitempty"`
	Sort             string    `json:"sort"`
	Type             string    `json:"type"`
	VisiblePath      string    `json:"visiblePath"`
	PathHistory      []string  `json:"pathHistory,omitempty"`
}

func toListingDTO(l *domain.Listing) ListingDTO {
	dto := ListingDTO{
		ID:            l.ExternalID,
		Title:         l.Title,
		Price:         l.Price,
		ListingType:   string(l.ListingType),
		Specs:         l.Specs,
		Tags:          l.Tags,
		Location:      l.LocationText,
		Score:         l.Score,
		PublishedDate: l.PublishedDate,
		LastUpdated:   l.LastUpdated,
	}
	if l.Place != nil {
		dto.Place = &PlaceDTO{
			Municipality: l.Place.Municipality,
			Department:   l.Place.Department,
			Lat:          l.Place.Lat,
			Lon:          l.Place.Lon,
		}
	}
	return dto
}

func toListingDTOs(listings []*domain.Listing) []ListingDTO {
	dtos := make([]ListingDTO, len(listings))
	for i, l := range listings {
		dtos[i] = toListingDTO(l)
	}
	return dtos
}
