package availability

import (
	"barbero-service/internal/app/models"
	"barbero-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAppointmentRepository struct {
	appointments []models.Appointment
	gotStart     time.Time
	gotEnd       time.Time
}

func (s *stubAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	return "", nil
}

func (s *stubAppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	return nil
}

func (s *stubAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentRepository) FindActiveByProviderAndTime(ctx context.Context, providerID string, date time.Time) (*models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentRepository) FindActiveByProviderAndDateRange(ctx context.Context, providerID string, start, end time.Time) ([]models.Appointment, error) {
	s.gotStart = start
	s.gotEnd = end
	return s.appointments, nil
}

func (s *stubAppointmentRepository) FindActiveByRequester(ctx context.Context, requesterID string, page, pageSize int) ([]models.Appointment, int, error) {
	return nil, 0, nil
}

type stubUserRepository struct {
	users map[string]*models.User
}

func (s *stubUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	return "", nil
}

func (s *stubUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func (s *stubUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return s.users[userID], nil
}

func (s *stubUserRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	return nil
}

func TestGetProviderAvailability(t *testing.T) {
	provider := &models.User{ID: "provider-1", Name: "Bruno", Provider: true}
	client := &models.User{ID: "client-1", Name: "Ana"}
	day := time.Date(2025, time.June, 10, 9, 30, 0, 0, time.UTC)
	now := time.Date(2025, time.June, 9, 12, 0, 0, 0, time.UTC)

	newUsecase := func(appointmentRepo *stubAppointmentRepository) *availabilityUsecase {
		return &availabilityUsecase{
			AppointmentRepository: appointmentRepo,
			UserRepository: &stubUserRepository{users: map[string]*models.User{
				provider.ID: provider,
				client.ID:   client,
			}},
			Schedule: DefaultSchedule,
			Logger:   zap.NewNop(),
			now:      func() time.Time { return now },
		}
	}

	t.Run("returns the full grid and queries the whole day", func(t *testing.T) {
		appointmentRepo := &stubAppointmentRepository{
			appointments: []models.Appointment{
				{ProviderID: provider.ID, Date: time.Date(2025, time.June, 10, 14, 0, 0, 0, time.UTC)},
			},
		}
		usecase := newUsecase(appointmentRepo)

		slots, err := usecase.GetProviderAvailability(context.Background(), provider.ID, day)

		require.NoError(t, err)
		assert.Len(t, slots, 15)
		assert.Equal(t, 0, appointmentRepo.gotStart.Hour())
		assert.Equal(t, 23, appointmentRepo.gotEnd.Hour())
		for _, slot := range slots {
			if slot.Time == "14:00" {
				assert.False(t, slot.Available)
			} else {
				assert.True(t, slot.Available)
			}
		}
	})

	t.Run("rejects an unknown provider", func(t *testing.T) {
		usecase := newUsecase(&stubAppointmentRepository{})

		_, err := usecase.GetProviderAvailability(context.Background(), "missing", day)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, exceptions.KindBusinessRule, customErr.Kind)
	})

	t.Run("rejects a user without the provider flag", func(t *testing.T) {
		usecase := newUsecase(&stubAppointmentRepository{})

		_, err := usecase.GetProviderAvailability(context.Background(), client.ID, day)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, exceptions.KindBusinessRule, customErr.Kind)
	})
}
