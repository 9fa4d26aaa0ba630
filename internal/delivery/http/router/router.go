// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gemmarket/internal/delivery/http/middleware"
	"gemmarket/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	productHandler  *handler.ProductHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		productHandler:  params.ProductHandler,
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/merchant-profile", r.userHandler.UpsertMerchantProfile)
	}

	// Public catalog routes
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/search", r.productHandler.Search)
		productGroup.GET("/:id", r.productHandler.Get)
	}

	// Merchant routes that require authentication and the "merchant" role
	merchantGroup := e.Group("/merchant")
	merchantGroup.Use(r.authMiddleware.Authenticate)
	merchantGroup.Use(r.authMiddleware.RequireRole("merchant"))
	{
		merchantGroup.GET("/products", r.productHandler.ListMine)
		merchantGroup.POST("/products", r.productHandler.Create)
		merchantGroup.PUT("/products/:id", r.productHandler.Update)
	}

	// Cart and checkout routes accept an optional bearer token; anonymous
	// sessions identify themselves through the X-Cart-Session header.
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.AuthenticateOptional)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.authMiddleware.AuthenticateOptional)
	{
		checkoutGroup.POST("", r.checkoutHandler.Begin)
	}

	// Gateway redirect landing endpoints; the session id is the only input.
	paymentGroup := e.Group("/payments")
	{
		paymentGroup.GET("/success", r.checkoutHandler.Success)
		paymentGroup.GET("/cancel", r.checkoutHandler.Cancel)
	}
}
