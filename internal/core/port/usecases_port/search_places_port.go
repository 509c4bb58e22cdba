package usecases_port

import (
	"context"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
)

type SearchPlacesUseCase interface {
	Execute(ctx context.Context, query string) ([]domain.PlaceHit, error)
}
