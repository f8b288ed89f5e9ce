package dependency

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budgetease/backend/config"
	"github.com/budgetease/backend/internal/domain/entity"
	"github.com/budgetease/backend/internal/integration/persistence"
	"github.com/budgetease/backend/internal/integration/persistence/model"
)

type recordingPublisher struct {
	events []entity.LedgerEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event entity.LedgerEvent) error {
	p.events = append(p.events, event)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Environment: "development"},
		JWT:       config.JWTConfig{Secret: "test-secret", Issuer: "budgetease", AccessTokenExpiry: time.Minute},
		RateLimit: config.RateLimitConfig{Requests: 3, Window: time.Minute},
	}
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.AllModels()...))
	require.NoError(t, persistence.NewCategoryRepository(db).SeedGlobals(context.Background(), entity.DefaultCategories()))
	return db
}

func serve(engine *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestNewInjector_WiresAuthenticatedRoutes(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("E2E_MODE", "")

	publisher := &recordingPublisher{}
	injector := NewInjector(testConfig(), testDB(t), Options{Publisher: publisher})
	require.NotNil(t, injector.MemoryStore)
	engine := injector.Router.Setup("test")

	rec := serve(engine, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(engine, http.MethodGet, "/api/v1/dashboard/summary", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	userID := uuid.New()
	token, err := injector.TokenService.IssueAccessToken(context.Background(), userID, "ana@example.com", time.Minute)
	require.NoError(t, err)

	rec = serve(engine, http.MethodPost, "/api/v1/transactions", token,
		`{"date":"2025-01-02","amount":"10.00","type":"expense"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Len(t, publisher.events, 1)
	assert.Equal(t, entity.LedgerEventTransactionCreated, publisher.events[0].Type)
	assert.Equal(t, userID, publisher.events[0].UserID)

	rec = serve(engine, http.MethodGet, "/api/v1/dashboard/summary?month=2025-01", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"current_expense":"10.00"`)
}

func TestNewInjector_RateLimitsPerUserWithRedis(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("E2E_MODE", "")

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	injector := NewInjector(testConfig(), testDB(t), Options{Redis: client, Publisher: &recordingPublisher{}})
	assert.Nil(t, injector.MemoryStore)
	engine := injector.Router.Setup("test")

	first, err := injector.TokenService.IssueAccessToken(context.Background(), uuid.New(), "", time.Minute)
	require.NoError(t, err)
	second, err := injector.TokenService.IssueAccessToken(context.Background(), uuid.New(), "", time.Minute)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		rec := serve(engine, http.MethodGet, "/api/v1/settings", first, "")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := serve(engine, http.MethodGet, "/api/v1/settings", first, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH-020003")
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	rec = serve(engine, http.MethodGet, "/api/v1/settings", second, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(engine, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redis":"connected"`)
}
