// Package catalogapi is the HTTP adapter to the external catalog data
// store. It parameterizes RPC-style read queries, guards identifier
// precision on the raw payload and validates every row against the
// embedded contract schema before handing it to the core.
package catalogapi

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
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/contracts"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/port"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
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
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// fetchRows runs one read query and returns the decoded rows. The body
// passes through QuoteBigIDs before any JSON parsing; rows failing the
// contract schema are dropped with a warning, never served.
func (c *Client) fetchRows(ctx context.Context, op, path string, params url.Values) ([]*listingRow, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "CatalogApiClient",
		"method":    op,
	})

	clientLogger.Debug("Sending request to catalog store", port.Fields{"path": path})

	resp, err := c.doRequest(ctx, path, params)
	if err != nil {
		clientLogger.Error("Failed to perform request to catalog store", err, nil)
		return nil, &domain.RetrievalError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		clientLogger.Error("Failed to read catalog store response", err, nil)
		return nil, &domain.RetrievalError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("catalog store returned non-success status code %d: %s", resp.StatusCode, string(body))
		clientLogger.Error("Received error response from catalog store", err, port.Fields{"status_code": resp.StatusCode})
		return nil, &domain.RetrievalError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	var rawRows []json.RawMessage
	if err := json.Unmarshal(QuoteBigIDs(body), &rawRows); err != nil {
		clientLogger.Error("Failed to decode response from catalog store", err, nil)
		return nil, &domain.RetrievalError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	rows := make([]*listingRow, 0, len(rawRows))
	for i, raw := range rawRows {
		if err := contracts.ValidateListingRow(raw); err != nil {
			clientLogger.Warn("Dropping catalog row failing contract validation", port.Fields{
				"row_index": i,
				"reason":    err.Error(),
			})
			continue
		}
		var row listingRow
		if err := json.Unmarshal(raw, &row); err != nil {
			clientLogger.Warn("Dropping undecodable catalog row", port.Fields{
				"row_index": i,
				"reason":    err.Error(),
			})
			continue
		}
		rows = append(rows, &row)
	}

	clientLogger.Info("Successfully received and decoded response", port.Fields{
		"rows_received": len(rawRows),
		"rows_kept":     len(rows),
	})

	return rows, nil
}

// FetchByTag returns one page of raw candidates for a tag query. The
// total count of the full matching set is echoed per row by the store's
// window count and read off the first row.
func (c *Client) FetchByTag(ctx context.Context, query domain.ListingQuery) (*domain.PaginatedListings, error) {
	params := url.Values{}
	params.Set("tag", query.Tag)
	params.Set("limit", strconv.Itoa(query.Limit))
	params.Set("offset", strconv.Itoa(query.Offset))
	params.Set("sort", query.Sort)
	if query.Type != "" {
		params.Set("listing_type", string(query.Type))
	}

	rows, err := c.fetchRows(ctx, "FetchByTag", "/rpc/listings_by_tag", params)
	if err != nil {
		return nil, err
	}

	result := &domain.PaginatedListings{
		Listings: make([]*domain.Listing, len(rows)),
	}
	for i, row := range rows {
		result.Listings[i] = row.toDomain()
	}
	if len(rows) > 0 {
		result.TotalCount = rows[0].TotalCount
	}
	return result, nil
}

// FetchTopScored returns the ranked opportunity set for a department,
// highest score first as ordered by the store.
func (c *Client) FetchTopScored(ctx context.Context, department string, listingType domain.ListingType, limit int) ([]*domain.Listing, error) {
	params := url.Values{}
	params.Set("department", department)
	params.Set("limit", strconv.Itoa(limit))
	if listingType != "" {
		params.Set("listing_type", string(listingType))
	}

	rows, err := c.fetchRows(ctx, "FetchTopScored", "/rpc/top_scored_by_department", params)
	if err != nil {
		return nil, err
	}

	listings := make([]*domain.Listing, len(rows))
	for i, row := range rows {
		listings[i] = row.toDomain()
	}
	return listings, nil
}

// FetchByDepartment returns a department sample for aggregate statistics.
func (c *Client) FetchByDepartment(ctx context.Context, department string, limit int) ([]*domain.Listing, error) {
	params := url.Values{}
	params.Set("department", department)
	params.Set("limit", strconv.Itoa(limit))

	rows, err := c.fetchRows(ctx, "FetchByDepartment", "/rpc/listings_by_department", params)
	if err != nil {
		return nil, err
	}

	listings := make([]*domain.Listing, len(rows))
	for i, row := range rows {
		listings[i] = row.toDomain()
	}
	return listings, nil
}
