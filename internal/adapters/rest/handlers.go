package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/constants"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/contextkeys"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/port"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/port/usecases_port"
)

type CatalogHandlers struct {
	listByTagUC           usecases_port.ListByTagUseCase
	topScoredUC           usecases_port.TopScoredByDepartmentUseCase
	searchPlacesUC        usecases_port.SearchPlacesUseCase
	searchNeighborhoodsUC usecases_port.SearchNeighborhoodsUseCase
	reverseGeocodeUC      usecases_port.ReverseGeocodeUseCase
	departmentStatsUC     usecases_port.DepartmentStatsUseCase
}

func NewCatalogHandlers(
	listByTagUC usecases_port.ListByTagUseCase,
	topScoredUC usecases_port.TopScoredByDepartmentUseCase,
	searchPlacesUC usecases_port.SearchPlacesUseCase,
	searchNeighborhoodsUC usecases_port.SearchNeighborhoodsUseCase,
	reverseGeocodeUC usecases_port.ReverseGeocodeUseCase,
	departmentStatsUC usecases_port.DepartmentStatsUseCase,
) *CatalogHandlers {
	return &CatalogHandlers{
		listByTagUC:           listByTagUC,
		topScoredUC:           topScoredUC,
		searchPlacesUC:        searchPlacesUC,
		searchNeighborhoodsUC: searchNeighborhoodsUC,
		reverseGeocodeUC:      reverseGeocodeUC,
		departmentStatsUC:     departmentStatsUC,
	}
}

// writeUseCaseError maps typed domain errors to HTTP statuses. Retrieval
// detail stays in the logs; clients get a generic message.
func writeUseCaseError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		WriteJSONError(w, http.StatusBadRequest, validationErr.Error())
		return
	}
	var notFoundErr *domain.NotFoundError
	if errors.As(err, &notFoundErr) {
		WriteJSONError(w, http.StatusNotFound, notFoundErr.Error())
		return
	}
	var retrievalErr *domain.RetrievalError
	if errors.As(err, &retrievalErr) {
		WriteJSONError(w, http.StatusBadGateway, "Listing data is temporarily unavailable")
		return
	}
	WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
}

// HandleListByTag serves GET /api/v1/listings/{tag}.
func (h *CatalogHandlers) HandleListByTag(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleListByTag"})

	tagToken := chi.URLParam(r, "tag")
	query := domain.ListingQuery{
		Type:   domain.ListingType(r.URL.Query().Get("type")),
		Limit:  queryInt(r, "limit", constants.DefaultPageSize),
		Offset: queryInt(r, "offset", constants.DefaultOffset),
		Sort:   r.URL.Query().Get("sort"),
	}

	result, err := h.listByTagUC.Execute(r.Context(), tagToken, query)
	if err != nil {
		logger.Error("Use case execution failed", err, port.Fields{"tag": tagToken})
		writeUseCaseError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, TagListingsResponseDTO{
		Tag:      result.Tag,
		Slug:     result.Slug,
		Listings: toListingDTOs(result.Listings),
		Pagination: PaginationDTO{
			Total:   result.Page.Total,
			Limit:   result.Page.Limit,
			Offset:  result.Page.Offset,
			HasMore: result.Page.HasMore,
		},
	})
}

// HandleTopScoredByDepartment serves GET /api/v1/departments/{slug}/top.
func (h *CatalogHandlers) HandleTopScoredByDepartment(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleTopScoredByDepartment"})

	slug := chi.URLParam(r, "slug")
	listingType := domain.ListingType(r.URL.Query().Get("type"))
	limit := queryInt(r, "limit", constants.TopScoredDefaultLimit)

	result, err := h.topScoredUC.Execute(r.Context(), slug, listingType, limit)
	if err != nil {
		logger.Error("Use case execution failed", err, port.Fields{"slug": slug})
		writeUseCaseError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, TopScoredResponseDTO{
		Department: result.Department,
		Sale:       toListingDTOs(result.Sale),
		Rent:       toListingDTOs(result.Rent),
		All:        toListingDTOs(result.All),
	})
}

// HandleDepartmentStats serves GET /api/v1/departments/{slug}/stats.
func (h *CatalogHandlers) HandleDepartmentStats(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleDepartmentStats"})

	slug := chi.URLParam(r, "slug")
	stats, err := h.departmentStatsUC.Execute(r.Context(), slug)
	if err != nil {
		logger.Error("Use case execution failed", err, port.Fields{"slug": slug})
		writeUseCaseError(w, err)
		return
	}

	dtos := make([]LocationStatsDTO, len(stats))
	for i, s := range stats {
		dtos[i] = LocationStatsDTO{
			Location: s.Location,
			Count:    s.Count,
			AvgPrice: s.AvgPrice,
			MinPrice: s.MinPrice,
			MaxPrice: s.MaxPrice,
		}
	}
	RespondWithJSON(w, http.StatusOK, dtos)
}

// HandleSearchPlaces serves GET /api/v1/search/places. Upstream failures
// degrade to an empty list inside the use case, so the only error path
// left here is an internal one.
func (h *CatalogHandlers) HandleSearchPlaces(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	hits, err := h.searchPlacesUC.Execute(r.Context(), query)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	dtos := make([]PlaceHitDTO, len(hits))
	for i, hit := range hits {
		dtos[i] = PlaceHitDTO{DisplayName: hit.DisplayName, Lat: hit.Lat, Lon: hit.Lon}
	}
	RespondWithJSON(w, http.StatusOK, dtos)
}

// HandleSearchNeighborhoods serves GET /api/v1/search/neighborhoods.
func (h *CatalogHandlers) HandleSearchNeighborhoods(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	results, err := h.searchNeighborhoodsUC.Execute(r.Context(), query)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	dtos := make([]NeighborhoodDTO, len(results))
	for i, n := range results {
		dtos[i] = NeighborhoodDTO{
			ID:           n.ID,
			Name:         n.Name,
			Lat:          n.Lat,
			Lon:          n.Lon,
			Municipality: n.Municipality,
			Department:   n.Department,
		}
	}
	RespondWithJSON(w, http.StatusOK, dtos)
}

// HandleReverseGeocode serves GET /api/v1/geocode/reverse. A position
// that cannot be resolved yields {"name": null}, not an error.
func (h *CatalogHandlers) HandleReverseGeocode(w http.ResponseWriter, r *http.Request) {
	lat, okLat := queryFloat(r, "lat")
	lon, okLon := queryFloat(r, "lng")
	if !okLon {
		// Older map clients send "lon".
		lon, okLon = queryFloat(r, "lon")
	}
	if !okLat || !okLon {
		WriteJSONError(w, http.StatusBadRequest, "Query parameters 'lat' and 'lng' are required numbers")
		return
	}

	name, err := h.reverseGeocodeUC.Execute(r.Context(), lat, lon)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, ReverseGeocodeResponseDTO{Name: name})
}

// HandleHealth serves GET /api/v1/health.
func (h *CatalogHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
