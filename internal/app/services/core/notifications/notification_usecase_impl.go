package notifications

import (
	"barbero-service/internal/app/contracts"
	"barbero-service/internal/pkg/constvars"
	"barbero-service/internal/pkg/dto/responses"
	"context"
	"sync"

	"go.uber.org/zap"
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	SessionService         contracts.SessionService
	Logger                 *zap.Logger
}

var (
	notificationUsecaseInstance contracts.NotificationUsecase
	onceNotificationUsecase     sync.Once
)

func NewNotificationUsecase(
	notificationRepository contracts.NotificationRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.NotificationUsecase {
	onceNotificationUsecase.Do(func() {
		notificationUsecaseInstance = &notificationUsecase{
			NotificationRepository: notificationRepository,
			SessionService:         sessionService,
			Logger:                 logger,
		}
	})
	return notificationUsecaseInstance
}

func (uc *notificationUsecase) FindAll(ctx context.Context, sessionData string) ([]responses.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Logger.Info("NotificationUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	notifications, err := uc.NotificationRepository.FindByRecipient(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Notification, 0, len(notifications))
	for _, notification := range notifications {
		result = append(result, responses.Notification{
			ID:        notification.ID,
			Content:   notification.Content,
			ReadAt:    notification.ReadAt,
			CreatedAt: notification.CreatedAt,
		})
	}
	return result, nil
}
