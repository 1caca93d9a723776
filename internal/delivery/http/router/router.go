// Package router contains routing setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"campus/config"
	"campus/internal/delivery/http/middleware"
	"campus/internal/delivery/http/router/handler"
	"campus/internal/domain/entity"
	"campus/internal/infra/metrics"
)

type RouterParams struct {
	fx.In

	Config            *config.Config
	AuthHandler       *handler.AuthHandler
	CourseHandler     *handler.CourseHandler
	EnrollmentHandler *handler.EnrollmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
	RateLimit         *middleware.RateLimitMiddleware
	RequestID         *middleware.RequestIDMiddleware
	Gatherer          prometheus.Gatherer
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg               *config.Config
	authHandler       *handler.AuthHandler
	courseHandler     *handler.CourseHandler
	enrollmentHandler *handler.EnrollmentHandler
	authMiddleware    *middleware.AuthMiddleware
	rateLimit         *middleware.RateLimitMiddleware
	requestID         *middleware.RequestIDMiddleware
	gatherer          prometheus.Gatherer
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:               params.Config,
		authHandler:       params.AuthHandler,
		courseHandler:     params.CourseHandler,
		enrollmentHandler: params.EnrollmentHandler,
		authMiddleware:    params.AuthMiddleware,
		rateLimit:         params.RateLimit,
		requestID:         params.RequestID,
		gatherer:          params.Gatherer,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestID.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.cfg.Metrics != nil && r.cfg.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.gatherer)))
	}

	// Auth routes sit behind the per-IP throttle when enabled; every
	// request here costs a provider round trip.
	authGroup := e.Group("/auth")
	if r.cfg.RateLimit != nil && r.cfg.RateLimit.Enabled {
		authGroup.Use(r.rateLimit.Throttle)
	}
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Catalog is public; enrollment requires a valid session token.
	e.GET("/courses", r.courseHandler.ListCourses)
	e.GET("/courses/:id", r.courseHandler.GetCourse)

	enrollGroup := e.Group("/courses/enroll")
	enrollGroup.Use(r.authMiddleware.Authenticate)
	{
		enrollGroup.POST("", r.enrollmentHandler.Enroll)
		enrollGroup.GET("", r.enrollmentHandler.List)
	}

	// Admin surface: nothing behind it yet besides the role gate.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/ping", handler.HealthCheck)
	}
}
