package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/anvaya/crm-backend/docs"
	"github.com/anvaya/crm-backend/internal/api/handler"
	"github.com/anvaya/crm-backend/internal/api/metrics"
	"github.com/anvaya/crm-backend/internal/api/middleware"
	"github.com/anvaya/crm-backend/internal/core/ports"
)

// Config carries everything the router needs to wire handlers.
type Config struct {
	Agents   ports.AgentService
	Leads    ports.LeadService
	Comments ports.CommentService
	Tags     ports.TagService
	Reports  ports.ReportService

	// Mongo backs the readiness probe.
	Mongo handler.Pinger

	Logger zerolog.Logger

	// Registerer and Gatherer default to the prometheus default registry.
	// Both the HTTP collectors and the business metrics go to Registerer.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.DefaultRegisterer
	}
	if cfg.Gatherer == nil {
		cfg.Gatherer = prometheus.DefaultGatherer
	}
	if err := metrics.Register(cfg.Registerer); err != nil {
		cfg.Logger.Error().Err(err).Msg("failed to register business metrics")
	}

	// --- Global middleware ---
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(cfg.Logger))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "anvaya",
		Registerer: cfg.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
		StatusCodeResolver: statusCode,
	}))

	// --- Handlers ---
	health := handler.NewHealthHandler()
	agents := handler.NewAgentHandler(cfg.Agents)
	leads := handler.NewLeadHandler(cfg.Leads)
	comments := handler.NewCommentHandler(cfg.Comments)
	tags := handler.NewTagHandler(cfg.Tags)
	reports := handler.NewReportHandler(cfg.Reports)

	// --- Probes and tooling ---
	e.GET("/", health.Root)
	e.GET("/health", health.Liveness)
	if cfg.Mongo != nil {
		e.GET("/health/ready", handler.NewReadinessHandler(cfg.Mongo).Readiness)
	}
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: cfg.Gatherer,
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Agents ---
	e.POST("/agents", agents.Create)
	e.GET("/agents", agents.List)

	// --- Leads ---
	e.POST("/leads", leads.Create)
	e.GET("/leads", leads.List)
	e.GET("/lead/:id", leads.Get)
	e.PUT("/leads/:id", leads.Update)
	e.DELETE("/leads/:id", leads.Delete)

	// --- Comments ---
	e.POST("/leads/:id/comments", comments.Create)
	e.GET("/leads/:id/comments", comments.List)

	// --- Reports ---
	e.GET("/report/last-week", reports.LastWeek)
	e.GET("/report/pipeline", reports.Pipeline)
	e.GET("/report/closed-by-agent", reports.ClosedByAgent)

	// --- Tags ---
	e.POST("/tags", tags.Create)
	e.GET("/tags", tags.List)

	return e
}
