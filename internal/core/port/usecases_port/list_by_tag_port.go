package usecases_port

import (
	"context"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
)

type ListByTagUseCase interface {
	Execute(ctx context.Context, tagToken string, query domain.ListingQuery) (*domain.TagListingResult, error)
}
