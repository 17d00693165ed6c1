package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/bitenow/bitenow/internal/server/http/handlers"
	"github.com/bitenow/bitenow/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.BiteNowFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	restaurantHandler := handlers.NewRestaurantHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	adminHandler := handlers.NewAdminOrderHandler(facade)

	api := engine.Group("/api")
	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))

	restaurants := authed.Group("/restaurants")
	restaurants.GET("", restaurantHandler.List)
	restaurants.GET("/:id", restaurantHandler.Get)
	restaurants.GET("/:id/menu", restaurantHandler.Menu)

	userAuth := authed.Group("/user")
	userAuth.GET("/cart", cartHandler.Get)
	userAuth.DELETE("/cart", cartHandler.Clear)
	userAuth.PUT("/cart/restaurant", cartHandler.SetRestaurant)
	userAuth.POST("/cart/items", cartHandler.AddItem)
	userAuth.PATCH("/cart/items/:itemID", cartHandler.UpdateItem)
	userAuth.DELETE("/cart/items/:itemID", cartHandler.RemoveItem)

	userAuth.POST("/orders", orderHandler.Checkout)
	userAuth.GET("/orders", orderHandler.List)
	userAuth.GET("/orders/active/count", orderHandler.ActiveCount)
	userAuth.GET("/orders/:id", orderHandler.Get)
	userAuth.POST("/orders/:id/cancel", orderHandler.Cancel)

	admin := authed.Group("/admin")
	admin.Use(middleware.AdminRequired())
	admin.GET("/orders", adminHandler.List)
	admin.GET("/orders/active/count", adminHandler.ActiveCount)
	admin.POST("/orders/:id/advance", adminHandler.Advance)

	return engine
}
