// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"printdesk/internal/delivery/http/middleware"
	"printdesk/internal/delivery/http/router/handler"
	"printdesk/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	PricingHandler  *handler.PricingHandler
	PrintJobHandler *handler.PrintJobHandler
	ContactHandler  *handler.ContactHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	pricingHandler  *handler.PricingHandler
	printJobHandler *handler.PrintJobHandler
	contactHandler  *handler.ContactHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		pricingHandler:  params.PricingHandler,
		printJobHandler: params.PrintJobHandler,
		contactHandler:  params.ContactHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The path layout mirrors what the dashboard and upload page call.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public support form
	e.POST("/contact", r.contactHandler.Submit)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/logout", r.userHandler.Logout)

		// The QR code ends up on printed flyers, so it stays public.
		authGroup.GET("/generate-qr/:id", r.userHandler.GenerateQR)

		// Profile routes: any authenticated user, ownership checked in handler.
		profileGroup := authGroup.Group("")
		profileGroup.Use(r.authMiddleware.Authenticate)
		{
			profileGroup.GET("/user/:id", r.userHandler.GetUser)
			profileGroup.PUT("/update-user/:id", r.userHandler.UpdateUser)
		}

		// Pricing reads live under /auth for historical reasons.
		pricingGroup := authGroup.Group("")
		pricingGroup.Use(r.authMiddleware.Authenticate)
		pricingGroup.Use(r.authMiddleware.RequireRole(entity.RoleShopOwner))
		{
			pricingGroup.GET("/pricing-config/:id", r.pricingHandler.List)
			pricingGroup.DELETE("/delete-pricing-config/:id", r.pricingHandler.Delete)
		}
	}

	shopGroup := e.Group("/photocopycenter")
	shopGroup.Use(r.authMiddleware.Authenticate)
	shopGroup.Use(r.authMiddleware.RequireRole(entity.RoleShopOwner))
	{
		shopGroup.POST("/pricing-config", r.pricingHandler.Create)
		shopGroup.PUT("/edit-pricing-config/:id", r.pricingHandler.Update)
	}

	printshopGroup := e.Group("/printshop")
	{
		// Anonymous customer submission from the QR-linked upload page.
		printshopGroup.POST("/print-jobs", r.printJobHandler.Submit)

		jobsGroup := printshopGroup.Group("")
		jobsGroup.Use(r.authMiddleware.Authenticate)
		jobsGroup.Use(r.authMiddleware.RequireRole(entity.RoleShopOwner))
		{
			jobsGroup.GET("/shop-files/:shopId", r.printJobHandler.ListShopJobs)
			jobsGroup.GET("/print-jobs/:id", r.printJobHandler.GetJob)
			jobsGroup.PATCH("/print-jobs/:id/status", r.printJobHandler.UpdateStatus)
		}
	}

	adminGroup := e.Group("/api/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/stats", r.adminHandler.GetStats)
	}
}
