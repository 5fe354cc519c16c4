package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/api/handler"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/api/middleware"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/authz"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/service"
	mongocreds "github.com/asadbek201001/Ilmhub-Coin-system/internal/infrastructure/db/mongo"
	redisstore "github.com/asadbek201001/Ilmhub-Coin-system/internal/infrastructure/db/redis"
	"github.com/asadbek201001/Ilmhub-Coin-system/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("rewards"))

	// --- Dependencies ---
	store := redisstore.NewRecordStore(rdb)
	items := redisstore.ItemStore{RecordStore: store}
	creds := mongocreds.NewCredentialRepository(db)

	authService := service.NewAuthService(store, creds, jwtSecret, tokenTTL, log)
	ledgerService := service.NewLedgerService(store, items, store, log)
	catalogService := service.NewCatalogService(store, items, log)
	rosterService := service.NewRosterService(store, creds, log)

	authHandler := handler.NewAuthHandler(authService, rosterService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	rosterHandler := handler.NewRosterHandler(rosterService)

	authed := middleware.Auth(authService)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/login-student", authHandler.LoginStudent)
	e.POST("/signup", authHandler.Signup)
	e.GET("/items", catalogHandler.ListItems)

	// --- Authenticated routes ---
	e.GET("/user", authHandler.Me, authed)
	e.GET("/transactions/:studentId", ledgerHandler.ListTransactions, authed)

	e.POST("/give-coins", ledgerHandler.GiveCoins, authed, middleware.RequireOperation(authz.OpGrantCoins))
	e.POST("/buy-item", ledgerHandler.BuyItem, authed, middleware.RequireOperation(authz.OpPurchaseItem))

	e.POST("/add-student", rosterHandler.AddStudent, authed, middleware.RequireOperation(authz.OpAddStudent))
	e.POST("/add-teacher", rosterHandler.AddTeacher, authed, middleware.RequireOperation(authz.OpAddTeacher))
	e.GET("/students", rosterHandler.ListStudents, authed, middleware.RequireOperation(authz.OpListStudents))

	e.POST("/add-item", catalogHandler.AddItem, authed, middleware.RequireOperation(authz.OpAddItem))
	e.PUT("/items/:id/availability", catalogHandler.SetAvailability, authed, middleware.RequireOperation(authz.OpSetAvailability))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
