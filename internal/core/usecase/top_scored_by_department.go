package usecase

import (
	"context"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/constants"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/contextkeys"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/port"
)

// TopScoredByDepartmentUseCase serves the "best opportunity" ranking for
// one department, partitioned by deal type.
type TopScoredByDepartmentUseCase struct {
	store port.ListingStorePort
}

func NewTopScoredByDepartmentUseCase(store port.ListingStorePort) *TopScoredByDepartmentUseCase {
	return &TopScoredByDepartmentUseCase{store: store}
}

func (uc *TopScoredByDepartmentUseCase) Execute(ctx context.Context, slug string, listingType domain.ListingType, limit int) (*domain.TopScoredResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "TopScoredByDepartment",
		"slug":     slug,
		"type":     string(listingType),
	})

	dept, ok := constants.DepartmentBySlug(slug)
	if !ok {
		ucLogger.Warn("Unknown department slug", nil)
		return nil, &domain.NotFoundError{Resource: "department", Key: slug}
	}
	if limit <= 0 {
		limit = constants.TopScoredDefaultLimit
	}
	if listingType != domain.ListingTypeSale && listingType != domain.ListingTypeRent {
		listingType = "" // "all"
	}

	ranked, err := uc.store.FetchTopScored(ctx, dept.Name, listingType, limit)
	if err != nil {
		ucLogger.Error("Listing store returned an error", err, nil)
		return nil, err
	}

	result := &domain.TopScoredResult{
		Department: dept.Name,
		Sale:       make([]*domain.Listing, 0, len(ranked)),
		Rent:       make([]*domain.Listing, 0, len(ranked)),
		All:        ranked,
	}
	for _, l := range ranked {
		switch l.ListingType {
		case domain.ListingTypeSale:
			result.Sale = append(result.Sale, l)
		case domain.ListingTypeRent:
			result.Rent = append(result.Rent, l)
		}
	}

	ucLogger.Info("Use case finished", port.Fields{
		"ranked": len(ranked),
		"sale":   len(result.Sale),
		"rent":   len(result.Rent),
	})
	return result, nil
}
