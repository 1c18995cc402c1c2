// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"jobtrack/config"
	"jobtrack/internal/delivery/api/middleware"
	"jobtrack/internal/delivery/api/router/handler"
	"jobtrack/internal/errors"
	"jobtrack/internal/infra/storage"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/bytes"
	"go.uber.org/fx"
)

// multipartOverhead covers the form boundaries and text fields sent alongside the resume file.
const multipartOverhead = 64 * bytes.KB

// ResumeUploadPath is the only route whose body may exceed http.maxRequestBodySize.
const ResumeUploadPath = "/api/v1/users/resume"

// IsResumeUpload matches the resume upload route. The global body limit skips
// it since the route enforces storage.maxUploadSize itself.
func IsResumeUpload(c echo.Context) bool {
	return c.Request().Method == http.MethodPost && c.Path() == ResumeUploadPath
}

type RouterParams struct {
	fx.In

	HealthHandler       *handler.HealthHandler
	UserHandler         *handler.UserHandler
	ResumeHandler       *handler.ResumeHandler
	ContactHandler      *handler.ContactHandler
	ApplicationHandler  *handler.ApplicationHandler
	InterviewHandler    *handler.InterviewHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler       *handler.HealthHandler
	userHandler         *handler.UserHandler
	resumeHandler       *handler.ResumeHandler
	contactHandler      *handler.ContactHandler
	applicationHandler  *handler.ApplicationHandler
	interviewHandler    *handler.InterviewHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	config              *config.Config
	uploadLimit         string
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) (*router, error) {
	maxUpload, err := params.Config.Storage.MaxUploadBytes()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &router{
		healthHandler:       params.HealthHandler,
		userHandler:         params.UserHandler,
		resumeHandler:       params.ResumeHandler,
		contactHandler:      params.ContactHandler,
		applicationHandler:  params.ApplicationHandler,
		interviewHandler:    params.InterviewHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		config:              params.Config,
		uploadLimit:         bytes.Format(maxUpload + multipartOverhead),
	}, nil
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoints
	e.GET("/health", r.healthHandler.Live)
	e.GET("/health/ready", r.healthHandler.Ready)

	apiV1 := e.Group("/api/v1")
	authenticated := r.authMiddleware.Authenticate

	// User routes; register, login and refresh are public and throttled per IP
	usersGroup := apiV1.Group("/users")
	{
		usersGroup.POST("/register", r.userHandler.Register, r.rateLimitMiddleware.Limit)
		usersGroup.POST("/login", r.userHandler.Login, r.rateLimitMiddleware.Limit)
		usersGroup.POST("/refresh-token", r.userHandler.RefreshToken, r.rateLimitMiddleware.Limit)

		usersGroup.GET("/current-user", r.userHandler.CurrentUser, authenticated)
		usersGroup.PATCH("/update-profile", r.userHandler.UpdateProfile, authenticated)
		usersGroup.POST("/logout", r.userHandler.Logout, authenticated)
		usersGroup.POST("/resume", r.resumeHandler.Upload, authenticated, echomiddleware.BodyLimit(r.uploadLimit))
		usersGroup.GET("/resume", r.resumeHandler.List, authenticated)
	}

	contactsGroup := apiV1.Group("/contacts", authenticated)
	{
		contactsGroup.GET("", r.contactHandler.List)
		contactsGroup.POST("", r.contactHandler.Create)
		contactsGroup.GET("/:id", r.contactHandler.Get)
		contactsGroup.PATCH("/:id", r.contactHandler.Update)
		contactsGroup.DELETE("/:id", r.contactHandler.Delete)
	}

	applicationsGroup := apiV1.Group("/applications", authenticated)
	{
		applicationsGroup.GET("", r.applicationHandler.List)
		applicationsGroup.POST("", r.applicationHandler.Create)
		applicationsGroup.GET("/archived", r.applicationHandler.ListArchived)
		applicationsGroup.GET("/archived/count", r.applicationHandler.CountArchived)
		applicationsGroup.GET("/:id", r.applicationHandler.Get)
		applicationsGroup.PATCH("/:id", r.applicationHandler.Update)
		applicationsGroup.DELETE("/:id", r.applicationHandler.Delete)
	}

	interviewsGroup := apiV1.Group("/interviews", authenticated)
	{
		interviewsGroup.GET("", r.interviewHandler.List)
		interviewsGroup.POST("", r.interviewHandler.Create)
		interviewsGroup.GET("/archived", r.interviewHandler.ListArchived)
		interviewsGroup.GET("/:id", r.interviewHandler.Get)
		interviewsGroup.PATCH("/:id", r.interviewHandler.Update)
		interviewsGroup.DELETE("/:id", r.interviewHandler.Delete)
	}
}

// RegisterFileRoutes serves stored resumes when they live on the local filesystem.
// Callers only ever read objects under their own user prefix.
func (r *router) RegisterFileRoutes(e *echo.Echo) {
	storageCfg := r.config.Storage
	if !storage.ServesLocally(storageCfg) {
		return
	}

	files := e.Group("/files", r.authMiddleware.Authenticate, middleware.OwnFilesOnly)
	files.Static("/", storage.LocalRoot(storageCfg.File.Dir, storageCfg.Bucket))
}
