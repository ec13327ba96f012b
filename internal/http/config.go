package http

import (
	"github.com/mrlokans/bookcafe/internal/demo"
	"github.com/mrlokans/bookcafe/internal/middleware"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Stores
	Books      BookStore
	Categories CategoryStore
	Menus      MenuStore
	Orders     OrderStore

	// Database is pinged by /health (optional)
	Database Pinger

	// Audit receives successful writes (optional)
	Audit MutationRecorder

	// CORS origins allowed to call the API
	AllowedOrigins []string

	// Per-client rate limiting of the API group (optional)
	RateLimiter *middleware.RateLimiter

	// Rejects writes on the API group when enabled
	Demo *demo.Middleware

	// Directory holding robots.txt
	StaticPath string

	// Application info
	Version string
}
