package appointments

import (
	"barbero-service/internal/app/config"
	"barbero-service/internal/app/models"
	"barbero-service/internal/pkg/constvars"
	"barbero-service/internal/pkg/dto/requests"
	"barbero-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAppointmentRepository struct {
	appointments map[string]*models.Appointment
	nextID       int
	raceInsert   bool
}

func newFakeAppointmentRepository() *fakeAppointmentRepository {
	return &fakeAppointmentRepository{appointments: make(map[string]*models.Appointment)}
}

func (f *fakeAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	if f.raceInsert {
		return "", exceptions.ErrProviderAlreadyBooked(errors.New("duplicate key"))
	}
	for _, existing := range f.appointments {
		if existing.ProviderID == appointment.ProviderID && existing.Date.Equal(appointment.Date) && !existing.IsCanceled() {
			return "", exceptions.ErrProviderAlreadyBooked(errors.New("duplicate key"))
		}
	}
	f.nextID++
	id := fmt.Sprintf("appointment-%d", f.nextID)
	stored := *appointment
	stored.ID = id
	f.appointments[id] = &stored
	return id, nil
}

func (f *fakeAppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	if _, ok := f.appointments[appointment.ID]; !ok {
		return exceptions.ErrMongoDBUpdateDocument(errors.New("not found"))
	}
	stored := *appointment
	f.appointments[appointment.ID] = &stored
	return nil
}

func (f *fakeAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, ok := f.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	found := *appointment
	return &found, nil
}

func (f *fakeAppointmentRepository) FindActiveByProviderAndTime(ctx context.Context, providerID string, date time.Time) (*models.Appointment, error) {
	for _, appointment := range f.appointments {
		if appointment.ProviderID == providerID && appointment.Date.Equal(date) && !appointment.IsCanceled() {
			found := *appointment
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepository) FindActiveByProviderAndDateRange(ctx context.Context, providerID string, start, end time.Time) ([]models.Appointment, error) {
	var result []models.Appointment
	for _, appointment := range f.appointments {
		if appointment.ProviderID == providerID && !appointment.IsCanceled() &&
			!appointment.Date.Before(start) && !appointment.Date.After(end) {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepository) FindActiveByRequester(ctx context.Context, requesterID string, page, pageSize int) ([]models.Appointment, int, error) {
	var result []models.Appointment
	for _, appointment := range f.appointments {
		if appointment.RequesterID == requesterID && !appointment.IsCanceled() {
			result = append(result, *appointment)
		}
	}
	return result, len(result), nil
}

type fakeUserRepository struct {
	users map[string]*models.User
}

func newFakeUserRepository(users ...*models.User) *fakeUserRepository {
	repo := &fakeUserRepository{users: make(map[string]*models.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	f.users[userModel.ID] = userModel
	return userModel.ID, nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	f.users[userModel.ID] = userModel
	return nil
}

type fakeFileRepository struct {
	files map[string]*models.File
}

func (f *fakeFileRepository) CreateFile(ctx context.Context, file *models.File) (string, error) {
	return file.ID, nil
}

func (f *fakeFileRepository) FindByID(ctx context.Context, fileID string) (*models.File, error) {
	if f.files == nil {
		return nil, nil
	}
	return f.files[fileID], nil
}

type fakeNotificationRepository struct {
	notifications []*models.Notification
	failNext      bool
}

func (f *fakeNotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) (string, error) {
	if f.failNext {
		return "", exceptions.ErrMongoDBInsertDocument(errors.New("insert failed"))
	}
	f.notifications = append(f.notifications, notification)
	return fmt.Sprintf("notification-%d", len(f.notifications)), nil
}

func (f *fakeNotificationRepository) FindByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	var result []models.Notification
	for _, notification := range f.notifications {
		if notification.RecipientID == recipientID {
			result = append(result, *notification)
		}
	}
	return result, nil
}

type fakeMailQueueService struct {
	jobs     []*models.CancellationMailJob
	failNext bool
}

func (f *fakeMailQueueService) EnqueueCancellationMail(ctx context.Context, job *models.CancellationMailJob) error {
	if f.failNext {
		return exceptions.ErrRabbitMQPublishMessage(errors.New("publish failed"), constvars.CancellationMailQueueName)
	}
	f.jobs = append(f.jobs, job)
	return nil
}

type fakeSessionService struct {
	session *models.Session
}

func (f *fakeSessionService) CreateSession(ctx context.Context, user *models.User) (string, error) {
	return "token", nil
}

func (f *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "session-data", nil
}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	return f.session, nil
}

func (f *fakeSessionService) DestroySession(ctx context.Context, sessionID string) error {
	return nil
}

type usecaseFixture struct {
	usecase          *appointmentUsecase
	appointmentRepo  *fakeAppointmentRepository
	userRepo         *fakeUserRepository
	notificationRepo *fakeNotificationRepository
	mailQueue        *fakeMailQueueService
}

func newUsecaseFixture(now time.Time, session *models.Session, users ...*models.User) *usecaseFixture {
	appointmentRepo := newFakeAppointmentRepository()
	userRepo := newFakeUserRepository(users...)
	notificationRepo := &fakeNotificationRepository{}
	mailQueue := &fakeMailQueueService{}

	usecase := &appointmentUsecase{
		AppointmentRepository:  appointmentRepo,
		UserRepository:         userRepo,
		FileRepository:         &fakeFileRepository{},
		NotificationRepository: notificationRepo,
		MailQueueService:       mailQueue,
		SessionService:         &fakeSessionService{session: session},
		InternalConfig: &config.InternalConfig{
			App: config.App{
				BaseURL:        "http://localhost:3333",
				EndpointPrefix: "api",
				Version:        "v1",
			},
		},
		Logger: zap.NewNop(),
		now:    func() time.Time { return now },
	}
	return &usecaseFixture{
		usecase:          usecase,
		appointmentRepo:  appointmentRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		mailQueue:        mailQueue,
	}
}

func assertErrorKind(t *testing.T, err error, kind exceptions.Kind) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	assert.Equal(t, kind, customErr.Kind)
}

var (
	testNow      = time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC)
	testClient   = &models.User{ID: "client-1", Name: "Ana", Email: "ana@example.com"}
	testProvider = &models.User{ID: "provider-1", Name: "Bruno", Email: "bruno@example.com", Provider: true}
)

func clientSession() *models.Session {
	return &models.Session{SessionID: "session-1", UserID: testClient.ID, UserName: testClient.Name}
}

func TestCreateAppointment(t *testing.T) {
	t.Run("books a free future slot and notifies the provider", func(t *testing.T) {
		fixture := newUsecaseFixture(testNow, clientSession(), testClient, testProvider)

		response, err := fixture.usecase.CreateAppointment(context.Background(), "session-data", &requests.CreateAppointmentRequest{
			ProviderID: testProvider.ID,
			Date:       "2025-06-10T14:20:00Z",
		})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.June, 10, 14, 0, 0, 0, time.UTC), response.Date, "date should be normalized to the start of the hour")
		assert.False(t, response.Past)
		assert.True(t, response.Cancelable)
		assert.Nil(t, response.CanceledAt)
		require.NotNil(t, response.Provider)
		assert.Equal(t, testProvider.Name, response.Provider.Name)

		require.Len(t, fixture.notificationRepo.notifications, 1)
		notification := fixture.notificationRepo.notifications[0]
		assert.Equal(t, testProvider.ID, notification.RecipientID)
		assert.Equal(t, "New appointment from Ana for the day 10 of June, at 14:00h", notification.Content)
	})

	t.Run("rejects a target that is not a provider", func(t *testing.T) {
		otherClient := &models.User{ID: "client-2", Name: "Carla", Email: "carla@example.com"}
		fixture := newUsecaseFixture(testNow, clientSession(), testClient, testProvider, otherClient)

		_, err := fixture.usecase.CreateAppointment(context.Background(), "session-data", &requests.CreateAppointmentRequest{
			ProviderID: otherClient.ID,
			Date:       "2025-06-10T14:00:00Z",
		})

		assertErrorKind(t, err, exceptions.KindBusinessRule)
	})

	t.Run("rejects an unknown provider", func(t *testing.T) {
		fixture := newUsecaseFixture(testNow, clientSession(), testClient, testProvider)

		_, err := fixture.usecase.CreateAppointment(context.Background(), "session-data", &requests.CreateAppointmentRequest{
			ProviderID: "missing",
			Date:       "2025-06-10T14:00:00Z",
		})

		assertErrorKind(t, err, exceptions.KindBusinessRule)
	})

	t.Run("rejects booking your own establishment", func(t *testing.T) {
		providerSession := &models.Session{SessionID: "session-2", UserID: testProvider.ID, UserName: testProvider.Name}
		fixture := newUsecaseFixture(testNow, providerSession, testClient, testProvider)

		_, err := fixture.usecase.CreateAppointment(context.Background(), "session-data", &requests.CreateAppointmentRequest{
			ProviderID: testProvider.ID,
			Date:       "2025-06-10T14:00:00Z",
		})

		assertErrorKind(t, err, exceptions.KindBusinessRule)
	})

	t.Run("rejects a slot in the past", func(t *testing.T) {
		fixture := newUsecaseFixture(testNow, clientSession(), testClient, testProvider)

		_, err := fixture.usecase.CreateAppointment(context.Background(), "session-data", &requests.CreateAppointmentRequest{
			ProviderID: testProvider.ID,
			Date:       "2025-06-10T08:00:00Z",
		})

		assertErrorKind(t, err, exceptions.KindBusinessRule)
	})

	t.Run("rejects the current hour", func(t *testing.T) {
		fixture := newUsecaseFixture(testNow, clientSession(), testClient, testProvider)

		// 10:45 normalizes to 10:00 which is not strictly after 10:00.
		_, err := fixture.usecase.CreateAppointment(context.Background(), "session-data", &requests.CreateAppointmentRequest{
			ProviderID: testProvider.ID,
			Date:       "2025-06-10T10:45:00Z",
		})

		assertErrorKind(t, err, exceptions.KindBusinessRule)
	})

	t.Run("rejects an already booked slot", func(t *testing.T) {
		fixture := newUsecaseFixture(testNow, clientSession(), testClient, testProvider)

		_, err := fixture.usecase.CreateAppointment(context.Background(), "session-data", &requests.CreateAppointmentRequest{
			ProviderID: testProvider.ID,
			Date:       "2025-06-10T14:00:00Z",
		})
		require.NoError(t, err)

		_, err = fixture.usecase.CreateAppointment(context.Background(), "session-data", &requests.CreateAppointmentRequest{
			ProviderID: testProvider.ID,
			Date:       "2025-06-10T14:30:00Z",
		})

		assertErrorKind(t, err, exceptions.KindBusinessRule)
	})

	t.Run("maps a losing concurrent insert to the already booked rejection", func(t *testing.T) {
		fixture := newUsecaseFixture(testNow, clientSession(), testClient, testProvider)
		fixture.appointmentRepo.raceInsert = true

		_, err := fixture.usecase.CreateAppointment(context.Background(), "session-data", &requests.CreateAppointmentRequest{
			ProviderID: testProvider.ID,
			Date:       "2025-06-10T14:00:00Z",
		})

		assertErrorKind(t, err, exceptions.KindBusinessRule)
	})

	t.Run("allows rebooking a canceled slot", func(t *testing.T) {
		fixture := newUsecaseFixture(testNow, clientSession(), testClient, testProvider)
		canceledAt := testNow.Add(-time.Hour)
		fixture.appointmentRepo.appointments["old"] = &models.Appointment{
			ID:          "old",
			RequesterID: "someone-else",
			ProviderID:  testProvider.ID,
			Date:        time.Date(2025, time.June, 10, 14, 0, 0, 0, time.UTC),
			CanceledAt:  &canceledAt,
		}

		_, err := fixture.usecase.CreateAppointment(context.Background(), "session-data", &requests.CreateAppointmentRequest{
			ProviderID: testProvider.ID,
			Date:       "2025-06-10T14:00:00Z",
		})

		assert.NoError(t, err)
	})

	t.Run("keeps the booking when the notification insert fails", func(t *testing.T) {
		fixture := newUsecaseFixture(testNow, clientSession(), testClient, testProvider)
		fixture.notificationRepo.failNext = true

		response, err := fixture.usecase.CreateAppointment(context.Background(), "session-data", &requests.CreateAppointmentRequest{
			ProviderID: testProvider.ID,
			Date:       "2025-06-10T14:00:00Z",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, response.ID)
	})

	t.Run("rejects an unparseable date", func(t *testing.T) {
		fixture := newUsecaseFixture(testNow, clientSession(), testClient, testProvider)

		_, err := fixture.usecase.CreateAppointment(context.Background(), "session-data", &requests.CreateAppointmentRequest{
			ProviderID: testProvider.ID,
			Date:       "not-a-date",
		})

		assertErrorKind(t, err, exceptions.KindValidation)
	})
}

func TestCancelAppointment(t *testing.T) {
	bookedSlot := "2025-06-10T14:00:00Z"

	book := func(t *testing.T, fixture *usecaseFixture) string {
		t.Helper()
		response, err := fixture.usecase.CreateAppointment(context.Background(), "session-data", &requests.CreateAppointmentRequest{
			ProviderID: testProvider.ID,
			Date:       bookedSlot,
		})
		require.NoError(t, err)
		return response.ID
	}

	t.Run("cancels inside the window and enqueues exactly one mail job", func(t *testing.T) {
		fixture := newUsecaseFixture(testNow, clientSession(), testClient, testProvider)
		appointmentID := book(t, fixture)

		response, err := fixture.usecase.CancelAppointment(context.Background(), "session-data", appointmentID)

		require.NoError(t, err)
		require.NotNil(t, response.CanceledAt)
		assert.Equal(t, testNow, *response.CanceledAt)
		assert.False(t, response.Cancelable)

		require.Len(t, fixture.mailQueue.jobs, 1)
		job := fixture.mailQueue.jobs[0]
		assert.Equal(t, testProvider.Email, job.ProviderEmail)
		assert.Equal(t, testProvider.Name, job.ProviderName)
		assert.Equal(t, testClient.Name, job.RequesterName)
		assert.NotEmpty(t, job.ID)
	})

	t.Run("rejects an unknown appointment", func(t *testing.T) {
		fixture := newUsecaseFixture(testNow, clientSession(), testClient, testProvider)

		_, err := fixture.usecase.CancelAppointment(context.Background(), "session-data", "missing")

		assertErrorKind(t, err, exceptions.KindNotFound)
	})

	t.Run("rejects a requester that does not own the appointment", func(t *testing.T) {
		fixture := newUsecaseFixture(testNow, clientSession(), testClient, testProvider)
		appointmentID := book(t, fixture)

		intruderSession := &models.Session{SessionID: "session-3", UserID: "client-2", UserName: "Carla"}
		fixture.usecase.SessionService = &fakeSessionService{session: intruderSession}

		_, err := fixture.usecase.CancelAppointment(context.Background(), "session-data", appointmentID)

		assertErrorKind(t, err, exceptions.KindAuthorization)
		assert.Empty(t, fixture.mailQueue.jobs)
	})

	t.Run("rejects canceling twice", func(t *testing.T) {
		fixture := newUsecaseFixture(testNow, clientSession(), testClient, testProvider)
		appointmentID := book(t, fixture)

		_, err := fixture.usecase.CancelAppointment(context.Background(), "session-data", appointmentID)
		require.NoError(t, err)

		_, err = fixture.usecase.CancelAppointment(context.Background(), "session-data", appointmentID)

		assertErrorKind(t, err, exceptions.KindBusinessRule)
		assert.Len(t, fixture.mailQueue.jobs, 1, "second cancel must not enqueue another job")
	})

	t.Run("rejects canceling inside the cutoff window", func(t *testing.T) {
		fixture := newUsecaseFixture(testNow, clientSession(), testClient, testProvider)
		appointmentID := book(t, fixture)

		// 12:01 is less than two hours before the 14:00 slot.
		fixture.usecase.now = func() time.Time {
			return time.Date(2025, time.June, 10, 12, 1, 0, 0, time.UTC)
		}

		_, err := fixture.usecase.CancelAppointment(context.Background(), "session-data", appointmentID)

		assertErrorKind(t, err, exceptions.KindBusinessRule)
		assert.Empty(t, fixture.mailQueue.jobs)
	})

	t.Run("rejects canceling exactly at the cutoff", func(t *testing.T) {
		fixture := newUsecaseFixture(testNow, clientSession(), testClient, testProvider)
		appointmentID := book(t, fixture)

		fixture.usecase.now = func() time.Time {
			return time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
		}

		_, err := fixture.usecase.CancelAppointment(context.Background(), "session-data", appointmentID)

		assertErrorKind(t, err, exceptions.KindBusinessRule)
	})

	t.Run("keeps the cancellation when the queue publish fails", func(t *testing.T) {
		fixture := newUsecaseFixture(testNow, clientSession(), testClient, testProvider)
		appointmentID := book(t, fixture)
		fixture.mailQueue.failNext = true

		response, err := fixture.usecase.CancelAppointment(context.Background(), "session-data", appointmentID)

		require.NoError(t, err)
		assert.NotNil(t, response.CanceledAt)

		stored, findErr := fixture.appointmentRepo.FindByID(context.Background(), appointmentID)
		require.NoError(t, findErr)
		assert.True(t, stored.IsCanceled())
	})
}

func TestFindAll(t *testing.T) {
	t.Run("lists only the requester's active appointments with pagination", func(t *testing.T) {
		fixture := newUsecaseFixture(testNow, clientSession(), testClient, testProvider)

		_, err := fixture.usecase.CreateAppointment(context.Background(), "session-data", &requests.CreateAppointmentRequest{
			ProviderID: testProvider.ID,
			Date:       "2025-06-10T14:00:00Z",
		})
		require.NoError(t, err)

		canceledAt := testNow
		fixture.appointmentRepo.appointments["canceled"] = &models.Appointment{
			ID:          "canceled",
			RequesterID: testClient.ID,
			ProviderID:  testProvider.ID,
			Date:        time.Date(2025, time.June, 11, 9, 0, 0, 0, time.UTC),
			CanceledAt:  &canceledAt,
		}
		fixture.appointmentRepo.appointments["other"] = &models.Appointment{
			ID:          "other",
			RequesterID: "client-2",
			ProviderID:  testProvider.ID,
			Date:        time.Date(2025, time.June, 11, 10, 0, 0, 0, time.UTC),
			CanceledAt:  nil,
		}

		result, pagination, err := fixture.usecase.FindAll(context.Background(), "session-data", 1)

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, testProvider.Name, result[0].Provider.Name)
		require.NotNil(t, pagination)
		assert.Equal(t, 1, pagination.Total)
		assert.Equal(t, 1, pagination.Page)
		assert.Equal(t, constvars.AppDefaultPageSize, pagination.PageSize)
		assert.Empty(t, pagination.NextURL)
	})
}
