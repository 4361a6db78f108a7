package session

import (
	"barbero-service/internal/app/config"
	"barbero-service/internal/app/contracts"
	"barbero-service/internal/app/models"
	"barbero-service/internal/pkg/constvars"
	"barbero-service/internal/pkg/exceptions"
	"barbero-service/internal/pkg/utils"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.SessionService {
	onceSessionService.Do(func() {
		sessionServiceInstance = &sessionService{
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
		}
	})
	return sessionServiceInstance
}

func (s *sessionService) CreateSession(ctx context.Context, user *models.User) (string, error) {
	sessionID := utils.GenerateSessionID()
	expiry := time.Duration(s.InternalConfig.JWT.ExpTimeInHour) * time.Hour

	sessionModel := &models.Session{
		SessionID: sessionID,
		UserID:    user.ID,
		UserName:  user.Name,
		Provider:  user.Provider,
		ExpiresAt: time.Now().Add(expiry),
	}

	err := s.RedisRepository.Set(ctx, fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID), sessionModel, expiry)
	if err != nil {
		return "", err
	}

	token, err := utils.GenerateSessionJWT(sessionID, s.InternalConfig.JWT.Secret, s.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return token, nil
}

func (s *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionData, err := s.RedisRepository.Get(ctx, fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID))
	if err != nil {
		return "", err
	}
	if sessionData == "" {
		return "", exceptions.ErrInvalidSession(nil)
	}
	return sessionData, nil
}

func (s *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	sessionModel := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), sessionModel)
	if err != nil {
		return nil, exceptions.ErrInvalidSession(err)
	}
	return sessionModel, nil
}

func (s *sessionService) DestroySession(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID))
}
