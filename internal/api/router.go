package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	redisc "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/artfoliopro/portfolio-api/internal/api/handler"
	"github.com/artfoliopro/portfolio-api/internal/api/middleware"
	"github.com/artfoliopro/portfolio-api/internal/core/domain"
	"github.com/artfoliopro/portfolio-api/internal/core/ports"
	"github.com/artfoliopro/portfolio-api/internal/core/service"
	mongorepo "github.com/artfoliopro/portfolio-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/artfoliopro/portfolio-api/internal/infrastructure/db/redis"
)

// RouterDeps carries everything NewRouter needs to assemble the service.
// Redis is optional; when the client is nil, duplicate-enquiry suppression
// is disabled and the readiness probe reports redis as disabled.
type RouterDeps struct {
	DB         *mongo.Database
	Redis      *redisc.Client
	Media      ports.MediaStore
	UploadsDir string
	JWTSecret  string
	TokenTTL   time.Duration
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portfolio"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(deps.DB)
	artworkRepo := mongorepo.NewArtworkRepository(deps.DB)
	categoryRepo := mongorepo.NewCategoryRepository(deps.DB)
	enquiryRepo := mongorepo.NewEnquiryRepository(deps.DB)

	var deduper service.EnquiryDeduper
	if deps.Redis != nil {
		deduper = redisinfra.NewEnquiryGuard(deps.Redis)
	}

	// --- Services ---
	authService := service.NewAuthService(userRepo, deps.JWTSecret, deps.TokenTTL)
	userService := service.NewUserService(userRepo, deps.Media, deps.Log)
	artworkService := service.NewArtworkService(artworkRepo, userRepo, deps.Media, deps.Log)
	categoryService := service.NewCategoryService(categoryRepo, deps.Log)
	enquiryService := service.NewEnquiryService(enquiryRepo, userRepo, deduper, deps.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	artworkHandler := handler.NewArtworkHandler(artworkService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	enquiryHandler := handler.NewEnquiryHandler(enquiryService)

	auth := middleware.Auth(deps.JWTSecret)
	optionalAuth := middleware.OptionalAuth(deps.JWTSecret)
	artistOnly := middleware.RBAC(domain.RoleArtist)

	// --- Auth ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/validate", authHandler.Validate, auth)

	// --- User profile and directory ---
	// Static segments are registered before /user/:id so echo resolves
	// /user/profile and friends ahead of the public-profile wildcard.
	e.GET("/user/profile", userHandler.GetProfile, auth)
	e.PUT("/user/profile", userHandler.UpdateProfile, auth)
	e.POST("/user/profile-image", userHandler.SetProfileImage, auth)
	e.GET("/user/artists/all", userHandler.ListArtists)
	e.GET("/user/saved-artists", userHandler.ListSavedArtists, auth)
	e.POST("/user/save-artist/:id", userHandler.SaveArtist, auth)
	e.DELETE("/user/save-artist/:id", userHandler.UnsaveArtist, auth)
	e.GET("/user/:id", userHandler.GetPublicProfile)

	// --- Artworks ---
	e.GET("/artworks", artworkHandler.List)
	e.GET("/artworks/artist/:userId", artworkHandler.ListByArtist)
	e.GET("/artworks/:id", artworkHandler.Get)
	e.POST("/artworks", artworkHandler.Create, auth, artistOnly)
	e.PUT("/artworks/:id", artworkHandler.Update, auth, artistOnly)
	e.DELETE("/artworks/:id", artworkHandler.Delete, auth, artistOnly)

	// --- Categories ---
	e.GET("/categories", categoryHandler.List)
	e.GET("/categories/:id", categoryHandler.Get)
	e.POST("/categories", categoryHandler.Create, auth)

	// --- Enquiries ---
	e.POST("/enquiries", enquiryHandler.Create, optionalAuth)
	e.GET("/enquiries", enquiryHandler.List, auth, artistOnly)
	e.GET("/enquiries/:id", enquiryHandler.Get, auth)
	e.PUT("/enquiries/:id/status", enquiryHandler.SetStatus, auth)

	// --- Static uploads ---
	e.Static("/uploads", deps.UploadsDir)

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
