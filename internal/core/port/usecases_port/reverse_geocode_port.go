package usecases_port

import "context"

type ReverseGeocodeUseCase interface {
	// Execute returns the derived place label, or nil when the position
	// could not be resolved (upstream failure degrades to "no name").
	Execute(ctx context.Context, lat, lon float64) (*string, error)
}
