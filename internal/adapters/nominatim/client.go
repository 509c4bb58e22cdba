// Package nominatim is the HTTP adapter to the Nominatim geocoding
// provider (free-text place search and reverse lookup).
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/contextkeys"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/port"
)

// Results are biased to El Salvador.
const countryCodes = "sv"

type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewClient(baseURL, userAgent string) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	traceID := contextkeys.TraceIDFromContext(ctx)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// SearchPlaces runs a free-text forward geocode.
func (c *Client) SearchPlaces(ctx context.Context, query string, limit int) ([]domain.PlaceHit, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "NominatimClient",
		"method":    "SearchPlaces",
	})

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("countrycodes", countryCodes)

	clientLogger.Debug("Sending search request to geocoder", port.Fields{"query": query})

	resp, err := c.doRequest(ctx, "/search", params)
	if err != nil {
		clientLogger.Error("Failed to perform request to geocoder", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("geocoder returned non-success status code %d: %s", resp.StatusCode, string(bodyBytes))
		clientLogger.Error("Received error response from geocoder", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		clientLogger.Error("Failed to decode response from geocoder", err, nil)
		return nil, err
	}

	clientLogger.Info("Successfully received and decoded response", port.Fields{"hits_count": len(results)})

	hits := make([]domain.PlaceHit, 0, len(results))
	for _, r := range results {
		lat, lon, ok := r.coordinates()
		if !ok {
			continue
		}
		hits = append(hits, domain.PlaceHit{
			DisplayName: r.DisplayName,
			Lat:         lat,
			Lon:         lon,
		})
	}
	return hits, nil
}

// Reverse looks up the structured address at a coordinate.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*domain.ReverseGeocode, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "NominatimClient",
		"method":    "Reverse",
	})

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("format", "json")

	clientLogger.Debug("Sending reverse request to geocoder", port.Fields{"lat": lat, "lon": lon})

	resp, err := c.doRequest(ctx, "/reverse", params)
	if err != nil {
		clientLogger.Error("Failed to perform request to geocoder", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("geocoder returned non-success status code %d: %s", resp.StatusCode, string(bodyBytes))
		clientLogger.Error("Received error response from geocoder", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var result reverseResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		clientLogger.Error("Failed to decode response from geocoder", err, nil)
		return nil, err
	}

	clientLogger.Info("Successfully received and decoded response", nil)

	return &domain.ReverseGeocode{
		Neighbourhood: result.Address.Neighbourhood,
		Suburb:        result.Address.Suburb,
		City:          result.Address.City,
		Town:          result.Address.Town,
		Village:       result.Address.Village,
		State:         result.Address.State,
		DisplayName:   result.DisplayName,
	}, nil
}
