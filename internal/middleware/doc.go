// Package middleware holds the gin middleware shared by every route:
// request ids, CORS, security headers and per-client rate limiting.
package middleware
