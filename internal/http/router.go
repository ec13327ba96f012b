package http

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcafe/internal/middleware"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	if err := setupValidation(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)

	robots := filepath.Join(cfg.StaticPath, "robots.txt")
	router.GET("/robots.txt", func(c *gin.Context) {
		c.File(robots)
	})

	api := router.Group("/api/v1")
	if cfg.RateLimiter != nil {
		api.Use(cfg.RateLimiter.Middleware())
	}
	if cfg.Demo != nil {
		api.Use(cfg.Demo.Handler())
	}

	books := NewBooksController(cfg.Books, cfg.Audit)
	api.GET("/books", books.List)
	api.POST("/books", books.Create)
	api.GET("/books/:id", books.Get)
	api.PATCH("/books/:id", books.Update)
	api.DELETE("/books/:id", books.Delete)

	categories := NewCategoriesController(cfg.Categories, cfg.Audit)
	api.GET("/categories", categories.List)
	api.POST("/categories", categories.Create)
	api.GET("/categories/:id", categories.Get)
	api.PATCH("/categories/:id", categories.Update)
	api.DELETE("/categories/:id", categories.Delete)

	menus := NewMenusController(cfg.Menus, cfg.Audit)
	api.GET("/menus", menus.List)
	api.POST("/menus", menus.Create)
	api.GET("/menus/:id", menus.Get)
	api.PATCH("/menus/:id", menus.Update)
	api.DELETE("/menus/:id", menus.Delete)

	orders := NewOrdersController(cfg.Orders, cfg.Audit)
	api.GET("/orders", orders.List)
	api.POST("/orders", orders.Create)
	api.GET("/orders/:id", orders.Get)
	api.PATCH("/orders/:id", orders.Update)
	api.DELETE("/orders/:id", orders.Delete)

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "route not found")
	})

	return router, nil
}
