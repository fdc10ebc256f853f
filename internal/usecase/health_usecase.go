package usecase

import (
	"context"

	"directory/internal/domain/entity"
)

// HealthUsecase defines the interface for the health-check use case
type HealthUsecase interface {
	// Check builds a status record with the current UTC timestamp and the
	// resolving host's IP address, passing both echo inputs through
	// unchanged (nil stays null).
	Check(ctx context.Context, echo, pathEcho *string) (*entity.Health, error)
}
