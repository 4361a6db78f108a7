package middlewares

import (
	"barbero-service/internal/app/config"
	"barbero-service/internal/app/models"
	"barbero-service/internal/app/services/core/session"
	"barbero-service/internal/app/services/shared/redis"
	"barbero-service/internal/pkg/constvars"
	"barbero-service/internal/pkg/utils"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthentication(t *testing.T) {
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}

	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	redisRepository := redis.NewRedisRepository(client)
	sessionService := session.NewSessionService(redisRepository, internalConfig)

	middlewares := NewMiddlewares(zap.NewNop(), sessionService, internalConfig)

	user := &models.User{ID: "user-1", Name: "Ana", Email: "ana@example.com"}
	token, err := sessionService.CreateSession(context.Background(), user)
	require.NoError(t, err)

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
		assert.True(t, ok, "session data should be on the context")
		assert.NotEmpty(t, sessionData)

		sessionID, ok := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
		assert.True(t, ok, "session id should be on the context")
		assert.NotEmpty(t, sessionID)

		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authentication(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/appointments", nil)

		rr := httptest.NewRecorder()
		middlewares.Authentication(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		middlewares.Authentication(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		forged, err := utils.GenerateSessionJWT("session-x", "other-secret", 1)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+forged)

		rr := httptest.NewRecorder()
		middlewares.Authentication(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token but destroyed session", func(t *testing.T) {
		orphan, err := utils.GenerateSessionJWT("session-gone", internalConfig.JWT.Secret, 1)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+orphan)

		rr := httptest.NewRecorder()
		middlewares.Authentication(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
