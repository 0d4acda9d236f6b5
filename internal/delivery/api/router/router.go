// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rollcall/config"
	"rollcall/internal/delivery/api/middleware"
	"rollcall/internal/delivery/api/router/handler"
	"rollcall/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RecipientHandler *handler.RecipientHandler
	DispatchHandler  *handler.DispatchHandler
	HistoryHandler   *handler.HistoryHandler
	ParentHandler    *handler.ParentHandler
	SessionHandler   *handler.SessionHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	recipientHandler *handler.RecipientHandler
	dispatchHandler  *handler.DispatchHandler
	historyHandler   *handler.HistoryHandler
	parentHandler    *handler.ParentHandler
	sessionHandler   *handler.SessionHandler
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		recipientHandler: params.RecipientHandler,
		dispatchHandler:  params.DispatchHandler,
		historyHandler:   params.HistoryHandler,
		parentHandler:    params.ParentHandler,
		sessionHandler:   params.SessionHandler,
		authMiddleware:   params.AuthMiddleware,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	// Parent app callbacks; the student code in the link is the only credential
	parentGroup := e.Group("/parent")
	{
		parentGroup.POST("/registrations", r.parentHandler.Register)
		parentGroup.PUT("/recipients/:id/device-address", r.parentHandler.UpdateDeviceAddress)
	}

	// Staff routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)
	apiV1.Use(r.authMiddleware.RequireRole(constants.RoleStaff))

	apiV1.GET("/me", r.sessionHandler.Me)

	recipientsGroup := apiV1.Group("/recipients")
	{
		recipientsGroup.GET("", r.recipientHandler.ListRecipients)
		recipientsGroup.GET("/eligible", r.recipientHandler.ListEligible)
		recipientsGroup.PUT("/:id/attendance", r.recipientHandler.MarkAttendance)
		recipientsGroup.GET("/:id/registration-qr", r.recipientHandler.RegistrationQR)
		recipientsGroup.GET("/:id/deliveries", r.historyHandler.ListRecipientDeliveries)
	}

	dispatchGroup := apiV1.Group("/dispatch")
	{
		dispatchGroup.POST("", r.dispatchHandler.Dispatch)
		dispatchGroup.GET("/batches/:id", r.dispatchHandler.GetBatch)
	}

	apiV1.GET("/deliveries", r.historyHandler.ListDeliveries)
}
