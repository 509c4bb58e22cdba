package usecases_port

import (
	"context"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
)

type TopScoredByDepartmentUseCase interface {
	Execute(ctx context.Context, slug string, listingType domain.ListingType, limit int) (*domain.TopScoredResult, error)
}
