package usecases_port

import (
	"context"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
)

type SearchNeighborhoodsUseCase interface {
	Execute(ctx context.Context, query string) ([]domain.Neighborhood, error)
}
