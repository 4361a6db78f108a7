package contracts

import (
	"barbero-service/internal/app/models"
	"barbero-service/internal/pkg/dto/responses"
	"context"
)

type NotificationUsecase interface {
	FindAll(ctx context.Context, sessionData string) ([]responses.Notification, error)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) (string, error)
	FindByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error)
}

// MailQueueService enqueues fire-and-forget cancellation-mail jobs.
type MailQueueService interface {
	EnqueueCancellationMail(ctx context.Context, job *models.CancellationMailJob) error
}
