package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/fairlink/careerfair-api/internal/api/handler"
	"github.com/fairlink/careerfair-api/internal/api/middleware"
	"github.com/fairlink/careerfair-api/internal/core/domain"
	"github.com/fairlink/careerfair-api/internal/core/service"
	"github.com/fairlink/careerfair-api/internal/infrastructure/config"
	"github.com/fairlink/careerfair-api/internal/infrastructure/db/sqlite"
	"github.com/fairlink/careerfair-api/internal/infrastructure/filestore"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store *sqlite.Store, files *filestore.Store, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.IsDevelopment())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("careerfair"))

	// --- Dependencies ---
	resumeRepo := sqlite.NewResumeRepository(store, log)
	registrationRepo := sqlite.NewRegistrationRepository(store, log)
	jobRepo := sqlite.NewJobRepository(store)

	resumeService := service.NewResumeService(resumeRepo, files, log)
	registrationService := service.NewRegistrationService(registrationRepo, log)
	jobService := service.NewJobService(jobRepo)

	resumeHandler := handler.NewResumeHandler(resumeService)
	registrationHandler := handler.NewRegistrationHandler(registrationService)
	jobHandler := handler.NewJobHandler(jobService)
	healthHandler := handler.NewHealthHandler(store, files.BaseDir())

	auth := middleware.Auth(cfg.JWTSecret)
	employerOnly := middleware.RBAC(domain.RoleEmployer)

	// --- Resume routes ---
	resumes := e.Group("/api/resumes")
	resumes.POST("/submit", resumeHandler.SubmitToBooth)
	resumes.POST("/submit-job", resumeHandler.SubmitToJob)
	resumes.GET("/user/:userId", resumeHandler.ListForUser)
	resumes.GET("/job/:jobId", resumeHandler.ListForJob, auth, employerOnly)
	resumes.GET("/booth/:boothId", resumeHandler.ListForBooth, auth, employerOnly)
	resumes.PUT("/:resumeId/status", resumeHandler.SetStatus, auth, employerOnly)

	// --- Registration routes ---
	registrations := e.Group("/api/registrations")
	registrations.POST("", registrationHandler.Register)
	registrations.GET("/user/:userId", registrationHandler.ListForUser)
	registrations.GET("/fair/:fairId", registrationHandler.ListForFair)

	// --- Job catalog ---
	e.GET("/api/jobs", jobHandler.List)
	e.GET("/api/jobs/:jobId", jobHandler.Get)

	// --- Health probes (no auth required) ---
	e.GET("/api/health", healthHandler.Liveness)
	e.GET("/api/health/ready", healthHandler.Readiness)

	// --- Ambient surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)
	e.Static("/uploads", files.BaseDir())

	return e
}
