package contracts

import (
	"barbero-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type AvailabilityUsecase interface {
	GetProviderAvailability(ctx context.Context, providerID string, date time.Time) ([]responses.AvailabilitySlot, error)
}
