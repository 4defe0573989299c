// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nomad/internal/delivery/api/middleware"
	"nomad/internal/delivery/api/router/handler"
	workerhandler "nomad/internal/delivery/worker/handler"
	"nomad/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler    *handler.HealthHandler
	MessageHandler   *handler.MessageHandler
	WebSocketHandler *handler.WebSocketHandler
	BusinessHandler  *handler.BusinessHandler
	DeviceHandler    *handler.DeviceHandler
	ContextHandler   *handler.ContextHandler
	PushHandler      *workerhandler.PushHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler   *handler.HealthHandler
	messageHandler  *handler.MessageHandler
	wsHandler       *handler.WebSocketHandler
	businessHandler *handler.BusinessHandler
	deviceHandler   *handler.DeviceHandler
	contextHandler  *handler.ContextHandler
	pushHandler     *workerhandler.PushHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		messageHandler:  params.MessageHandler,
		wsHandler:       params.WebSocketHandler,
		businessHandler: params.BusinessHandler,
		deviceHandler:   params.DeviceHandler,
		contextHandler:  params.ContextHandler,
		pushHandler:     params.PushHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	// Browsers cannot set headers on a websocket upgrade.
	e.GET("/ws", r.wsHandler.Serve, r.authMiddleware.AuthenticateQuery)

	messagesGroup := e.Group("/messages")
	messagesGroup.Use(r.authMiddleware.Authenticate)
	{
		messagesGroup.POST("", r.messageHandler.SendMessage)
		messagesGroup.GET("/unread", r.messageHandler.GetUnread)
		messagesGroup.POST("/read", r.messageHandler.MarkRead)
		messagesGroup.GET("/conversation/:peerId", r.messageHandler.GetConversation)
	}

	e.GET("/presence/:userId", r.messageHandler.GetPresence, r.authMiddleware.Authenticate)

	e.POST("/devices", r.deviceHandler.RegisterDevice, r.authMiddleware.Authenticate)

	// Business routes require authentication and the "business" role
	businessGroup := e.Group("/business")
	businessGroup.Use(r.authMiddleware.Authenticate)
	businessGroup.Use(r.authMiddleware.RequireRole(constants.RoleBusiness))
	{
		businessGroup.PUT("/location", r.businessHandler.UpdateLocation)
		businessGroup.GET("/location", r.businessHandler.GetLocation)
		businessGroup.GET("/notifications", r.businessHandler.ListNotifications)
		businessGroup.POST("/notifications/:id/read", r.businessHandler.MarkNotificationRead)
		businessGroup.POST("/notifications/:id/process", r.businessHandler.ProcessNotification)
	}

	// Pub/Sub push subscription for notification.created events. The
	// handler verifies the push OIDC token itself.
	e.POST("/pubsub/push", r.pushHandler.HandlePush)

	// Service-to-service routes
	internalGroup := e.Group("/internal")
	internalGroup.Use(r.authMiddleware.Authenticate)
	internalGroup.Use(r.authMiddleware.RequireRole(constants.RoleService))
	{
		internalGroup.POST("/context-changes", r.contextHandler.ReceiveContextChange)
	}
}
