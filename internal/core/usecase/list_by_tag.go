package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/constants"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/contextkeys"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/port"
)

// ListByTagUseCase runs the full tag-listing pipeline: tag
// normalization, store retrieval, deduplication, misclassification
// correction and pagination. A store failure propagates to the caller: faking a page or
// a total here would silently corrupt pagination.
type ListByTagUseCase struct {
	store    port.ListingStorePort
	cache    port.ResultCachePort
	cacheTTL time.Duration
	rules    []domain.CorrectionRule
}

// NewListByTagUseCase wires the pipeline. cache may be nil to disable
// read-through caching.
func NewListByTagUseCase(store port.ListingStorePort, cache port.ResultCachePort, cacheTTL time.Duration) *ListByTagUseCase {
	return &ListByTagUseCase{
		store:    store,
		cache:    cache,
		cacheTTL: cacheTTL,
		rules:    domain.DefaultCorrectionRules,
	}
}

func (uc *ListByTagUseCase) Execute(ctx context.Context, tagToken string, query domain.ListingQuery) (*domain.TagListingResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	tag := domain.NormalizeTag(tagToken)
	query.Tag = tag
	applyQueryDefaults(&query)

	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListByTag",
		"tag":      tag,
		"type":     string(query.Type),
		"limit":    query.Limit,
		"offset":   query.Offset,
		"sort":     query.Sort,
	})
	ucLogger.Debug("Use case started", nil)

	cacheKey := fmt.Sprintf("listings:tag:%s:%s:%d:%d:%s", tag, query.Type, query.Limit, query.Offset, query.Sort)
	if uc.cache != nil {
		var cached domain.TagListingResult
		hit, err := uc.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			ucLogger.Warn("Cache lookup failed, falling through to store", port.Fields{"error": err.Error()})
		} else if hit {
			ucLogger.Debug("Cache hit", port.Fields{"key": cacheKey})
			return &cached, nil
		}
	}

	page, err := uc.store.FetchByTag(ctx, query)
	if err != nil {
		ucLogger.Error("Listing store returned an error", err, nil)
		return nil, err
	}

	deduped := domain.DedupListings(page.Listings)
	if dropped := len(page.Listings) - len(deduped); dropped > 0 {
		ucLogger.Info("Duplicate listings collapsed", port.Fields{"dropped": dropped})
	}

	corrected := domain.ApplyCorrections(tag, deduped, uc.rules)
	if dropped := len(deduped) - len(corrected); dropped > 0 {
		ucLogger.Info("Correction rules excluded listings", port.Fields{"dropped": dropped})
	}

	result := &domain.TagListingResult{
		Tag:      tag,
		Slug:     domain.TagSlug(tag),
		Listings: corrected,
		// HasMore is computed from the raw returned count so that
		// continuation offsets stay aligned with the store's windows
		// even when dedup or correction drops rows from the visible page.
		Page: domain.NewPageInfo(query.Offset, query.Limit, len(page.Listings), page.TotalCount),
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, cacheKey, result, uc.cacheTTL); err != nil {
			ucLogger.Warn("Cache write failed", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished", port.Fields{
		"total":    result.Page.Total,
		"returned": len(result.Listings),
		"has_more": result.Page.HasMore,
	})
	return result, nil
}

// applyQueryDefaults replaces invalid pagination and sort inputs with
// the documented defaults instead of erroring.
func applyQueryDefaults(q *domain.ListingQuery) {
	if q.Limit <= 0 {
		q.Limit = constants.DefaultPageSize
	}
	if q.Offset < 0 {
		q.Offset = constants.DefaultOffset
	}
	if _, ok := constants.UpstreamSortKeys[q.Sort]; !ok {
		q.Sort = constants.DefaultSort
	}
	if q.Type != domain.ListingTypeSale && q.Type != domain.ListingTypeRent {
		q.Type = ""
	}
}
