package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/memberhub/members-portal/internal/api/handler"
	"github.com/memberhub/members-portal/internal/api/middleware"
	"github.com/memberhub/members-portal/internal/api/view"
	"github.com/memberhub/members-portal/internal/core/domain"
	"github.com/memberhub/members-portal/internal/core/service"
	"github.com/memberhub/members-portal/internal/core/session"
	"github.com/memberhub/members-portal/internal/infrastructure/config"
	mongodb "github.com/memberhub/members-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/memberhub/members-portal/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = view.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("members"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	sessions := session.NewManager(redisdb.NewSessionStore(rdb), cfg.Session.TTL)
	authService := service.NewAuthService(userRepo, log)
	accountService := service.NewAccountService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService, sessions)
	pageHandler := handler.NewPageHandler()
	adminHandler := handler.NewAdminHandler(accountService)

	// Every request resolves its session once; the gates below only read the
	// result. Authentication is always evaluated before role.
	e.Use(middleware.LoadSession(sessions))
	requireSession := middleware.RequireSession()
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	// --- Public routes ---
	e.GET("/", pageHandler.Home)
	e.GET("/login", pageHandler.LoginForm)
	e.GET("/signup", pageHandler.SignupForm)
	e.POST("/submitUser", authHandler.Signup)
	e.POST("/loggingin", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.Static("/public", "public")

	// --- Authenticated routes ---
	e.GET("/members", pageHandler.Members, requireSession)

	// --- Admin routes: one shared gate chain, no per-route ad hoc checks ---
	e.GET("/admin", adminHandler.List, requireSession, requireAdmin)
	e.GET("/promote", adminHandler.Promote, requireSession, requireAdmin)
	e.GET("/demote", adminHandler.Demote, requireSession, requireAdmin)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
