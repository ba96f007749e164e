// Package router maps URL paths to handlers and decides which routes sit
// behind the authentication gate.
package router

import (
	"rolodex/internal/delivery/http/middleware"
	"rolodex/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ContactHandler *handler.ContactHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds the handlers to register.
type router struct {
	authHandler    *handler.AuthHandler
	contactHandler *handler.ContactHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter bundles the injected handlers for route registration.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		contactHandler: params.ContactHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes wires every route the API exposes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Account routes, open to anonymous clients
	e.POST("/register", r.authHandler.Register)
	e.POST("/token", r.authHandler.Login)
	e.GET("/verify_email", r.authHandler.VerifyEmail)

	// Contact routes require an authenticated principal
	contactGroup := e.Group("/contacts")
	contactGroup.Use(r.authMiddleware.Authenticate)
	{
		contactGroup.GET("", r.contactHandler.ListContacts)
		contactGroup.POST("", r.contactHandler.CreateContact)
		contactGroup.GET("/:contactId", r.contactHandler.GetContact)
		contactGroup.PUT("/:contactId", r.contactHandler.UpdateContact)
		contactGroup.DELETE("/:contactId", r.contactHandler.DeleteContact)
		contactGroup.GET("/:contactId/qrcode", r.contactHandler.ContactQR)
	}
}
