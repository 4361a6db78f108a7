package contracts

import (
	"barbero-service/internal/app/models"
	"barbero-service/internal/pkg/dto/requests"
	"barbero-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type AppointmentUsecase interface {
	FindAll(ctx context.Context, sessionData string, page int) ([]responses.Appointment, *responses.Pagination, error)
	CreateAppointment(ctx context.Context, sessionData string, request *requests.CreateAppointmentRequest) (*responses.Appointment, error)
	CancelAppointment(ctx context.Context, sessionData string, appointmentID string) (*responses.Appointment, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindActiveByProviderAndTime(ctx context.Context, providerID string, date time.Time) (*models.Appointment, error)
	FindActiveByProviderAndDateRange(ctx context.Context, providerID string, start, end time.Time) ([]models.Appointment, error)
	FindActiveByRequester(ctx context.Context, requesterID string, page, pageSize int) ([]models.Appointment, int, error)
}
