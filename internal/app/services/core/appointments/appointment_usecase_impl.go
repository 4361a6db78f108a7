package appointments

import (
	"barbero-service/internal/app/config"
	"barbero-service/internal/app/contracts"
	"barbero-service/internal/app/models"
	"barbero-service/internal/pkg/constvars"
	"barbero-service/internal/pkg/dto/requests"
	"barbero-service/internal/pkg/dto/responses"
	"barbero-service/internal/pkg/exceptions"
	"barbero-service/internal/pkg/utils"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository  contracts.AppointmentRepository
	UserRepository         contracts.UserRepository
	FileRepository         contracts.FileRepository
	NotificationRepository contracts.NotificationRepository
	MailQueueService       contracts.MailQueueService
	SessionService         contracts.SessionService
	InternalConfig         *config.InternalConfig
	Logger                 *zap.Logger
	now                    func() time.Time
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	fileRepository contracts.FileRepository,
	notificationRepository contracts.NotificationRepository,
	mailQueueService contracts.MailQueueService,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository:  appointmentRepository,
			UserRepository:         userRepository,
			FileRepository:         fileRepository,
			NotificationRepository: notificationRepository,
			MailQueueService:       mailQueueService,
			SessionService:         sessionService,
			InternalConfig:         internalConfig,
			Logger:                 logger,
			now:                    time.Now,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, sessionData string, page int) ([]responses.Appointment, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Logger.Info("AppointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("page", page),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, nil, err
	}

	appointments, total, err := uc.AppointmentRepository.FindActiveByRequester(ctx, session.UserID, page, constvars.AppDefaultPageSize)
	if err != nil {
		return nil, nil, err
	}

	now := uc.now()
	providerCache := make(map[string]*responses.AppointmentProvider)
	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		appointment := &appointments[i]
		provider, ok := providerCache[appointment.ProviderID]
		if !ok {
			provider, err = uc.buildProviderResponse(ctx, appointment.ProviderID)
			if err != nil {
				return nil, nil, err
			}
			providerCache[appointment.ProviderID] = provider
		}
		result = append(result, buildAppointmentResponse(appointment, provider, now))
	}

	baseURL := fmt.Sprintf("%s/%s/%s/appointments",
		uc.InternalConfig.App.BaseURL,
		uc.InternalConfig.App.EndpointPrefix,
		uc.InternalConfig.App.Version,
	)
	pagination := utils.BuildPaginationResponse(total, page, constvars.AppDefaultPageSize, baseURL)

	uc.Logger.Info("AppointmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRequesterIDKey, session.UserID),
		zap.Int("count", len(result)),
	)
	return result, pagination, nil
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, sessionData string, request *requests.CreateAppointmentRequest) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Logger.Info("AppointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, request.ProviderID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	requestedDate, err := time.Parse(time.RFC3339, request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	provider, err := uc.UserRepository.FindByID(ctx, request.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil || !provider.Provider {
		return nil, exceptions.ErrNotServiceProvider(nil)
	}
	if provider.ID == session.UserID {
		return nil, exceptions.ErrBookOwnEstablishment(nil)
	}

	now := uc.now()
	slot := utils.StartOfHour(requestedDate)
	if !slot.After(now) {
		return nil, exceptions.ErrSlotInPast(nil)
	}

	existing, err := uc.AppointmentRepository.FindActiveByProviderAndTime(ctx, provider.ID, slot)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrProviderAlreadyBooked(nil)
	}

	appointment := &models.Appointment{
		RequesterID: session.UserID,
		ProviderID:  provider.ID,
		Date:        slot,
		CanceledAt:  nil,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	// The unique index on (providerId, date) closes the race between the
	// conflict check above and this insert. A duplicate key here surfaces
	// as the same already-booked rejection.
	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	uc.notifyProvider(ctx, requestID, appointment, session.UserName)

	providerResponse, err := uc.buildProviderResponse(ctx, provider.ID)
	if err != nil {
		return nil, err
	}

	uc.Logger.Info("AppointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingRequesterIDKey, session.UserID),
		zap.String(constvars.LoggingProviderIDKey, provider.ID),
	)
	response := buildAppointmentResponse(appointment, providerResponse, now)
	return &response, nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, sessionData string, appointmentID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Logger.Info("AppointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.RequesterID != session.UserID {
		return nil, exceptions.ErrNotAppointmentOwner(nil)
	}
	if appointment.IsCanceled() {
		return nil, exceptions.ErrAppointmentAlreadyCanceled(nil)
	}

	now := uc.now()
	if !appointment.IsCancelable(now) {
		return nil, exceptions.ErrCancellationWindowPassed(nil)
	}

	canceledAt := now
	appointment.CanceledAt = &canceledAt
	appointment.UpdatedAt = now
	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	uc.enqueueCancellationMail(ctx, requestID, appointment, session.UserName)

	providerResponse, err := uc.buildProviderResponse(ctx, appointment.ProviderID)
	if err != nil {
		return nil, err
	}

	uc.Logger.Info("AppointmentUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingRequesterIDKey, session.UserID),
	)
	response := buildAppointmentResponse(appointment, providerResponse, now)
	return &response, nil
}

// notifyProvider records an in-app notification for the provider. The booking
// already succeeded, so a failure here is only logged.
func (uc *appointmentUsecase) notifyProvider(ctx context.Context, requestID string, appointment *models.Appointment, requesterName string) {
	notification := &models.Notification{
		RecipientID: appointment.ProviderID,
		Content:     fmt.Sprintf(constvars.NotificationNewBookingFormat, requesterName, utils.FormatHumanReadable(appointment.Date)),
		CreatedAt:   uc.now(),
	}
	if _, err := uc.NotificationRepository.CreateNotification(ctx, notification); err != nil {
		uc.Logger.Error("Failed to create booking notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}

// enqueueCancellationMail hands exactly one mail job to the queue. The
// cancellation is already persisted, so a publish failure is only logged.
func (uc *appointmentUsecase) enqueueCancellationMail(ctx context.Context, requestID string, appointment *models.Appointment, requesterName string) {
	provider, err := uc.UserRepository.FindByID(ctx, appointment.ProviderID)
	if err != nil || provider == nil {
		uc.Logger.Error("Failed to load provider for cancellation mail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
		return
	}

	job := &models.CancellationMailJob{
		ID:            uuid.NewString(),
		Appointment:   *appointment,
		ProviderName:  provider.Name,
		ProviderEmail: provider.Email,
		RequesterName: requesterName,
	}
	if err := uc.MailQueueService.EnqueueCancellationMail(ctx, job); err != nil {
		uc.Logger.Error("Failed to enqueue cancellation mail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) buildProviderResponse(ctx context.Context, providerID string) (*responses.AppointmentProvider, error) {
	provider, err := uc.UserRepository.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	response := &responses.AppointmentProvider{
		ID:   provider.ID,
		Name: provider.Name,
	}
	if provider.AvatarFileID != "" {
		avatar, err := uc.FileRepository.FindByID(ctx, provider.AvatarFileID)
		if err == nil && avatar != nil {
			response.AvatarURL = avatar.URL
		}
	}
	return response, nil
}

func buildAppointmentResponse(appointment *models.Appointment, provider *responses.AppointmentProvider, now time.Time) responses.Appointment {
	return responses.Appointment{
		ID:         appointment.ID,
		Date:       appointment.Date,
		Past:       appointment.IsPast(now),
		Cancelable: !appointment.IsCanceled() && appointment.IsCancelable(now),
		CanceledAt: appointment.CanceledAt,
		Provider:   provider,
	}
}
