package contracts

import (
	"barbero-service/internal/app/models"
	"context"
)

type SessionService interface {
	CreateSession(ctx context.Context, user *models.User) (token string, err error)
	GetSessionData(ctx context.Context, sessionID string) (sessionData string, err error)
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	DestroySession(ctx context.Context, sessionID string) error
}
