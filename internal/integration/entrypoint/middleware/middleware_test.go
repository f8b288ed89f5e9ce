package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetease/backend/internal/application/adapter"
	domainerror "github.com/budgetease/backend/internal/domain/error"
	"github.com/budgetease/backend/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubTokenService struct {
	claims map[string]*adapter.TokenClaims
	err    error
}

func (s stubTokenService) IssueAccessToken(context.Context, uuid.UUID, string, time.Duration) (string, error) {
	return "", errors.New("not supported")
}

func (s stubTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if s.err != nil {
		return nil, s.err
	}
	claims, ok := s.claims[token]
	if !ok {
		return nil, domainerror.ErrInvalidToken
	}
	return claims, nil
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()
	auth := NewAuthMiddleware(stubTokenService{claims: map[string]*adapter.TokenClaims{
		"good": {UserID: userID, Email: "ana@example.com"},
	}})

	router := gin.New()
	router.GET("/me", auth.Authenticate(), func(c *gin.Context) {
		id, ok := GetUserIDFromContext(c)
		require.True(t, ok)
		email, _ := GetUserEmailFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "email": email})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{"missing header", "", http.StatusUnauthorized, string(domainerror.ErrCodeMissingToken)},
		{"not bearer", "Basic abc", http.StatusUnauthorized, string(domainerror.ErrCodeInvalidToken)},
		{"empty token", "Bearer ", http.StatusUnauthorized, string(domainerror.ErrCodeMissingToken)},
		{"unknown token", "Bearer bad", http.StatusUnauthorized, string(domainerror.ErrCodeInvalidToken)},
		{"valid token", "Bearer good", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, w).Code)
				return
			}
			assert.Contains(t, w.Body.String(), userID.String())
		})
	}
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	auth := NewAuthMiddleware(stubTokenService{err: domainerror.ErrExpiredToken})
	router := gin.New()
	router.GET("/me", auth.Authenticate(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer old")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, string(domainerror.ErrCodeExpiredToken), decodeError(t, w).Code)
}

type failingStore struct{}

func (failingStore) Increment(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("connection refused")
}

func newLimitedRouter(limiter *RateLimiter, userID *uuid.UUID) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID != nil {
			c.Set(string(UserIDKey), *userID)
		}
		c.Next()
	})
	router.Use(limiter.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func hit(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_Stores(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("E2E_MODE", "false")

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	stores := map[string]RateLimitStore{
		"memory": NewMemoryRateLimitStore(),
		"redis":  NewRedisRateLimitStore(client),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			userID := uuid.New()
			router := newLimitedRouter(NewRateLimiterWithConfig(store, 3, time.Minute), &userID)

			for i := 0; i < 3; i++ {
				assert.Equal(t, http.StatusOK, hit(router, "10.0.0.1:1234").Code)
			}

			w := hit(router, "10.0.0.1:1234")
			assert.Equal(t, http.StatusTooManyRequests, w.Code)
			assert.Equal(t, "60", w.Header().Get("Retry-After"))
			assert.Equal(t, string(domainerror.ErrCodeRateLimited), decodeError(t, w).Code)

			otherUser := uuid.New()
			other := newLimitedRouter(NewRateLimiterWithConfig(store, 3, time.Minute), &otherUser)
			assert.Equal(t, http.StatusOK, hit(other, "10.0.0.1:1234").Code)
		})
	}
}

func TestRateLimiter_RedisWindowExpires(t *testing.T) {
	t.Setenv("ENV", "development")

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	router := newLimitedRouter(NewRateLimiterWithConfig(NewRedisRateLimitStore(client), 1, time.Minute), nil)

	assert.Equal(t, http.StatusOK, hit(router, "192.0.2.1:80").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(router, "192.0.2.1:80").Code)
	assert.Equal(t, http.StatusOK, hit(router, "192.0.2.2:80").Code)
	assert.Equal(t, time.Minute, server.TTL(rateLimitKeyPrefix+"ip:192.0.2.1"))

	server.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, hit(router, "192.0.2.1:80").Code)
}

func TestRedisRateLimitStore_RestoresMissingWindow(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	key := rateLimitKeyPrefix + "user:stuck"
	require.NoError(t, server.Set(key, "500"))
	require.Zero(t, server.TTL(key))

	count, err := NewRedisRateLimitStore(client).Increment(context.Background(), "user:stuck", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(501), count)
	assert.Equal(t, time.Minute, server.TTL(key))

	server.FastForward(time.Minute + time.Second)
	assert.False(t, server.Exists(key))
}

func TestMemoryRateLimitStore_WindowResets(t *testing.T) {
	now := time.Date(2025, time.December, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryRateLimitStore()
	store.now = func() time.Time { return now }

	for want := int64(1); want <= 3; want++ {
		got, err := store.Increment(context.Background(), "k", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	now = now.Add(2 * time.Minute)
	got, err := store.Increment(context.Background(), "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)

	now = now.Add(2 * time.Minute)
	store.Cleanup()
	assert.Empty(t, store.entries)
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	t.Setenv("ENV", "development")
	router := newLimitedRouter(NewRateLimiterWithConfig(failingStore{}, 1, time.Minute), nil)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(router, "10.0.0.9:1").Code)
	}
}

func TestRateLimiter_SkippedInTestEnvironment(t *testing.T) {
	t.Setenv("ENV", "test")
	router := newLimitedRouter(NewRateLimiterWithConfig(NewMemoryRateLimitStore(), 1, time.Minute), nil)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(router, "10.0.0.9:1").Code)
	}
}
