package usecase

import (
	"context"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/constants"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/contextkeys"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/port"
)

// departmentStatsSample caps how many listings feed the aggregates.
const departmentStatsSample = 500

// DepartmentStatsUseCase computes per-municipality price aggregates for
// one department page.
type DepartmentStatsUseCase struct {
	store port.ListingStorePort
}

func NewDepartmentStatsUseCase(store port.ListingStorePort) *DepartmentStatsUseCase {
	return &DepartmentStatsUseCase{store: store}
}

func (uc *DepartmentStatsUseCase) Execute(ctx context.Context, slug string) ([]domain.LocationStats, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "DepartmentStats", "slug": slug})

	dept, ok := constants.DepartmentBySlug(slug)
	if !ok {
		return nil, &domain.NotFoundError{Resource: "department", Key: slug}
	}

	listings, err := uc.store.FetchByDepartment(ctx, dept.Name, departmentStatsSample)
	if err != nil {
		ucLogger.Error("Listing store returned an error", err, nil)
		return nil, err
	}

	stats := domain.BuildLocationStats(listings)
	ucLogger.Info("Use case finished", port.Fields{"locations": len(stats), "listings": len(listings)})
	return stats, nil
}
