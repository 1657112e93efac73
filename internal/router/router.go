// Package router wires HTTP routes to their handlers and guards.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/josemtz/hotel-reservation/internal/handler"
	"github.com/josemtz/hotel-reservation/internal/middleware"
)

// RegisterRoutes registers routes that require no authentication at all.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints. Registration and
// the two login flavours live under /v1/auth without middleware; /v1/me
// requires a valid token of either subject.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/staff/login", a.StaffLogin)
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout with a refresh_token body works without a JWT; logging out
	// all sessions requires one, which the handler checks itself.
	g.POST("/logout", a.Logout, middleware.JWTAuth(jwtSecret))
	e.POST("/v1/logout", a.Logout)

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated catalog: rooms and
// services. Listings go through the Redis response cache; the cache
// middleware is a pass-through when Redis is absent.
func RegisterPublic(e *echo.Echo, rooms *handler.RoomHandler, services *handler.ServiceHandler, cache echo.MiddlewareFunc) {
	e.GET("/v1/rooms", rooms.List, cache)
	e.GET("/v1/rooms/:id", rooms.Get)
	e.GET("/v1/services", services.List, cache)
	e.GET("/v1/services/:id", services.Get)
}
