package availability

import (
	"barbero-service/internal/app/contracts"
	"barbero-service/internal/pkg/constvars"
	"barbero-service/internal/pkg/dto/responses"
	"barbero-service/internal/pkg/exceptions"
	"barbero-service/internal/pkg/utils"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type availabilityUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	UserRepository        contracts.UserRepository
	Schedule              Schedule
	Logger                *zap.Logger
	now                   func() time.Time
}

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecase
	onceAvailabilityUsecase     sync.Once
)

func NewAvailabilityUsecase(
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	onceAvailabilityUsecase.Do(func() {
		availabilityUsecaseInstance = &availabilityUsecase{
			AppointmentRepository: appointmentRepository,
			UserRepository:        userRepository,
			Schedule:              DefaultSchedule,
			Logger:                logger,
			now:                   time.Now,
		}
	})
	return availabilityUsecaseInstance
}

func (uc *availabilityUsecase) GetProviderAvailability(ctx context.Context, providerID string, date time.Time) ([]responses.AvailabilitySlot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Logger.Info("AvailabilityUsecase.GetProviderAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
		zap.Time(constvars.LoggingDateKey, date),
	)

	provider, err := uc.UserRepository.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil || !provider.Provider {
		return nil, exceptions.ErrNotServiceProvider(nil)
	}

	appointments, err := uc.AppointmentRepository.FindActiveByProviderAndDateRange(
		ctx,
		providerID,
		utils.StartOfDay(date),
		utils.EndOfDay(date),
	)
	if err != nil {
		return nil, err
	}

	slots := uc.Schedule.SlotsFor(date, appointments, uc.now())

	uc.Logger.Info("AvailabilityUsecase.GetProviderAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
		zap.Int("slot_count", len(slots)),
	)
	return slots, nil
}
