package catalogapi

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
)

// stringID accepts both string and bare-number JSON tokens. Combined
// with QuoteBigIDs this keeps every upstream identifier exact.
type stringID string

func (s *stringID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = stringID(str)
		return nil
	}
	// Small numeric ids arrive unquoted; the raw token is already the
	// exact decimal representation.
	*s = stringID(data)
	return nil
}

type listingRow struct {
	ID            stringID               `json:"id"`
	Title         string                 `json:"title"`
	Price         *float64               `json:"price"`
	ListingType   string                 `json:"listing_type"`
	Specs         map[string]interface{} `json:"specs"`
	Tags          []string               `json:"tags"`
	Location      string                 `json:"location"`
	Municipio     string                 `json:"municipio"`
	Departamento  string                 `json:"departamento"`
	Lat           *float64               `json:"lat"`
	Lon           *float64               `json:"lon"`
	PublishedDate string                 `json:"published_date"`
	LastUpdated   string                 `json:"last_updated"`
	Score         *float64               `json:"score"`
	TotalCount    int                    `json:"total_count"`
}

func (r *listingRow) toDomain() *domain.Listing {
	listing := &domain.Listing{
		ExternalID:    string(r.ID),
		Title:         r.Title,
		Price:         r.Price,
		ListingType:   domain.ListingType(r.ListingType),
		Specs:         r.Specs,
		Tags:          r.Tags,
		LocationText:  r.Location,
		Score:         r.Score,
		PublishedDate: parseTimestamp(r.PublishedDate),
		LastUpdated:   parseTimestamp(r.LastUpdated),
	}
	if r.Municipio != "" || r.Departamento != "" || r.Lat != nil {
		place := &domain.Place{
			Municipality: r.Municipio,
			Department:   r.Departamento,
		}
		if r.Lat != nil {
			place.Lat = *r.Lat
		}
		if r.Lon != nil {
			place.Lon = *r.Lon
		}
		listing.Place = place
	}
	return listing
}

// Timestamp layouts seen in the feed, most specific first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
