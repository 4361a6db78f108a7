package auth

import (
	"barbero-service/internal/app/models"
	"barbero-service/internal/pkg/dto/requests"
	"barbero-service/internal/pkg/exceptions"
	"barbero-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUserRepository struct {
	byEmail map[string]*models.User
	created []*models.User
}

func (s *stubUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	s.created = append(s.created, userModel)
	return fmt.Sprintf("user-%d", len(s.created)), nil
}

func (s *stubUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.byEmail[email], nil
}

func (s *stubUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return nil, nil
}

func (s *stubUserRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	return nil
}

type stubSessionService struct {
	destroyed []string
}

func (s *stubSessionService) CreateSession(ctx context.Context, user *models.User) (string, error) {
	return "session-token", nil
}

func (s *stubSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

func (s *stubSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	return nil, nil
}

func (s *stubSessionService) DestroySession(ctx context.Context, sessionID string) error {
	s.destroyed = append(s.destroyed, sessionID)
	return nil
}

func assertErrorKind(t *testing.T, err error, kind exceptions.Kind) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	assert.Equal(t, kind, customErr.Kind)
}

func TestRegister(t *testing.T) {
	t.Run("creates the user with a hashed password", func(t *testing.T) {
		userRepo := &stubUserRepository{byEmail: map[string]*models.User{}}
		usecase := &authUsecase{UserRepository: userRepo, SessionService: &stubSessionService{}, Logger: zap.NewNop()}

		response, err := usecase.Register(context.Background(), &requests.Register{
			Name:     "Ana",
			Email:    "ana@example.com",
			Password: "secret123",
			Provider: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "user-1", response.ID)
		assert.True(t, response.Provider)

		require.Len(t, userRepo.created, 1)
		stored := userRepo.created[0]
		assert.NotEqual(t, "secret123", stored.Password)
		assert.True(t, utils.CheckPassword(stored.Password, "secret123"))
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		userRepo := &stubUserRepository{byEmail: map[string]*models.User{
			"ana@example.com": {ID: "user-1", Email: "ana@example.com"},
		}}
		usecase := &authUsecase{UserRepository: userRepo, SessionService: &stubSessionService{}, Logger: zap.NewNop()}

		_, err := usecase.Register(context.Background(), &requests.Register{
			Name:     "Ana",
			Email:    "ana@example.com",
			Password: "secret123",
		})

		assertErrorKind(t, err, exceptions.KindBusinessRule)
	})
}

func TestLogin(t *testing.T) {
	hashed, err := utils.HashPassword("secret123")
	if err != nil {
		t.Fatal(err)
	}
	existing := &models.User{ID: "user-1", Name: "Ana", Email: "ana@example.com", Password: hashed}

	t.Run("returns a token for valid credentials", func(t *testing.T) {
		userRepo := &stubUserRepository{byEmail: map[string]*models.User{existing.Email: existing}}
		usecase := &authUsecase{UserRepository: userRepo, SessionService: &stubSessionService{}, Logger: zap.NewNop()}

		response, err := usecase.Login(context.Background(), &requests.Login{
			Email:    "ana@example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		assert.Equal(t, "session-token", response.Token)
		assert.Equal(t, existing.ID, response.User.ID)
	})

	t.Run("rejects an unknown email", func(t *testing.T) {
		userRepo := &stubUserRepository{byEmail: map[string]*models.User{}}
		usecase := &authUsecase{UserRepository: userRepo, SessionService: &stubSessionService{}, Logger: zap.NewNop()}

		_, err := usecase.Login(context.Background(), &requests.Login{
			Email:    "nobody@example.com",
			Password: "secret123",
		})

		assertErrorKind(t, err, exceptions.KindAuthorization)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		userRepo := &stubUserRepository{byEmail: map[string]*models.User{existing.Email: existing}}
		usecase := &authUsecase{UserRepository: userRepo, SessionService: &stubSessionService{}, Logger: zap.NewNop()}

		_, err := usecase.Login(context.Background(), &requests.Login{
			Email:    "ana@example.com",
			Password: "wrong",
		})

		assertErrorKind(t, err, exceptions.KindAuthorization)
	})
}

func TestLogout(t *testing.T) {
	sessionService := &stubSessionService{}
	usecase := &authUsecase{UserRepository: &stubUserRepository{}, SessionService: sessionService, Logger: zap.NewNop()}

	err := usecase.Logout(context.Background(), "session-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"session-1"}, sessionService.destroyed)
}
