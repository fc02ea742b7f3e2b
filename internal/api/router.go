package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/nyayasetu/nyayasetu/docs"
	"github.com/nyayasetu/nyayasetu/internal/api/handler"
	"github.com/nyayasetu/nyayasetu/internal/api/middleware"
	"github.com/nyayasetu/nyayasetu/internal/core/ports"
	"github.com/nyayasetu/nyayasetu/internal/core/service"
	"github.com/nyayasetu/nyayasetu/internal/i18n"
	"github.com/nyayasetu/nyayasetu/internal/infrastructure/http/handlers"
)

// Deps is everything the router wires into handlers.
type Deps struct {
	Log          zerolog.Logger
	Sessions     ports.SessionService
	Applications ports.ApplicationService
	Router       *service.ModuleRouter
	Composer     service.ViewComposer
	Language     *i18n.Store
	Guard        ports.SubmissionGuard
	Readiness    *handlers.ReadinessHandler

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "nyayasetu",
		Registerer: d.Registerer,
	}))

	// --- Session ---
	sessionHandler := handler.NewSessionHandler(d.Sessions)
	guard := middleware.SubmissionGuard(d.Guard, middleware.SessionOp, d.Log)

	session := e.Group("/v1/session")
	session.GET("", sessionHandler.Get)
	session.POST("/login", sessionHandler.Login, guard)
	session.POST("/register", sessionHandler.Register, guard)
	session.POST("/logout", sessionHandler.Logout)

	// --- Navigation and view ---
	navHandler := handler.NewNavigationHandler(d.Router, d.Language)
	nav := e.Group("/v1/navigation")
	nav.GET("", navHandler.Get)
	nav.PUT("/module", navHandler.SetModule)
	nav.POST("/drawer/select", navHandler.SelectFromDrawer)
	nav.POST("/drawer/toggle", navHandler.ToggleDrawer)
	nav.PUT("/drawer", navHandler.SetDrawer)

	viewHandler := handler.NewViewHandler(d.Sessions, d.Router, d.Composer, d.Language)
	e.GET("/v1/view", viewHandler.Get)

	// --- Language ---
	i18nHandler := handler.NewI18nHandler(d.Language)
	lang := e.Group("/v1/i18n")
	lang.GET("", i18nHandler.Get)
	lang.PUT("/locale", i18nHandler.SetLocale)
	lang.GET("/negotiate", i18nHandler.Negotiate)
	lang.GET("/t/:key", i18nHandler.Translate)

	// --- Lawyer applications (no access control) ---
	appHandler := handler.NewApplicationHandler(d.Applications, d.Sessions)
	apps := e.Group("/v1/applications")
	apps.GET("", appHandler.List)
	apps.GET("/:id", appHandler.Get)
	apps.POST("/:id/approve", appHandler.Approve)
	apps.POST("/:id/reject", appHandler.Reject)
	apps.POST("/:id/promote", appHandler.Promote)

	// --- Health probes ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	readiness := d.Readiness
	if readiness == nil {
		readiness = handlers.NewReadinessHandler()
	}
	e.GET("/health/ready", readiness.Readiness)

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
