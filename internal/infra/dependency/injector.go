// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budgetease/backend/config"
	"github.com/budgetease/backend/internal/application/adapter"
	"github.com/budgetease/backend/internal/application/usecase/category"
	"github.com/budgetease/backend/internal/application/usecase/dashboard"
	"github.com/budgetease/backend/internal/application/usecase/settings"
	"github.com/budgetease/backend/internal/application/usecase/transaction"
	"github.com/budgetease/backend/internal/infra/server/router"
	"github.com/budgetease/backend/internal/integration/adapters"
	"github.com/budgetease/backend/internal/integration/entrypoint/controller"
	"github.com/budgetease/backend/internal/integration/entrypoint/middleware"
	"github.com/budgetease/backend/internal/integration/messaging"
	"github.com/budgetease/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Router       *router.Router
	TokenService adapter.TokenService
	// MemoryStore is set when rate limiting runs in process; it needs periodic cleanup.
	MemoryStore *middleware.MemoryRateLimitStore
}

// Options carries the optional infrastructure the injector cannot build itself.
type Options struct {
	// Redis backs the rate limiter when non-nil.
	Redis *redis.Client
	// Publisher receives ledger events. Defaults to a no-op publisher.
	Publisher adapter.LedgerEventPublisher
	// Clock defaults to adapter.SystemClock.
	Clock adapter.Clock
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) *Injector {
	clock := opts.Clock
	if clock == nil {
		clock = adapter.SystemClock{}
	}
	publisher := opts.Publisher
	if publisher == nil {
		publisher = messaging.NoopPublisher{}
	}

	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)

	// Create dashboard use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(dashboardRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, publisher, clock)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	listRecentUseCase := transaction.NewListRecentTransactionsUseCase(transactionRepo)
	listMonthUseCase := transaction.NewListMonthTransactionsUseCase(transactionRepo)
	searchTransactionsUseCase := transaction.NewSearchTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, publisher, clock)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, publisher, clock)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, clock)
	renameCategoryUseCase := category.NewRenameCategoryUseCase(categoryRepo, clock)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo)

	// Create settings use cases
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo)

	// Create controllers
	dbHealthChecker := func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}
	var redisHealthChecker controller.HealthCheck
	if opts.Redis != nil {
		redisHealthChecker = func() bool {
			return opts.Redis.Ping(context.Background()).Err() == nil
		}
	}
	healthController := controller.NewHealthController(dbHealthChecker, redisHealthChecker, clock)

	dashboardController := controller.NewDashboardController(getSummaryUseCase, clock)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		getTransactionUseCase,
		listRecentUseCase,
		listMonthUseCase,
		searchTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		clock,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		renameCategoryUseCase,
		deleteCategoryUseCase,
	)

	settingsController := controller.NewSettingsController(getSettingsUseCase, updateSettingsUseCase)

	// Create middleware
	var store middleware.RateLimitStore
	var memoryStore *middleware.MemoryRateLimitStore
	if opts.Redis != nil {
		store = middleware.NewRedisRateLimitStore(opts.Redis)
	} else {
		memoryStore = middleware.NewMemoryRateLimitStore()
		store = memoryStore
	}
	rateLimiter := middleware.NewRateLimiterWithConfig(store, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		dashboardController,
		transactionController,
		categoryController,
		settingsController,
		rateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:       cfg,
		DB:           db,
		Router:       r,
		TokenService: tokenService,
		MemoryStore:  memoryStore,
	}
}
