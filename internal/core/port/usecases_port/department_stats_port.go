package usecases_port

import (
	"context"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
)

type DepartmentStatsUseCase interface {
	Execute(ctx context.Context, slug string) ([]domain.LocationStats, error)
}
