package router

import (
	"github.com/labstack/echo/v4"

	"github.com/josemtz/hotel-reservation/internal/handler"
	"github.com/josemtz/hotel-reservation/internal/middleware"
)

// RegisterGuest registers the booking endpoints. Creation and the
// personal listings are guest-only; the per-reservation routes accept
// either subject and enforce ownership inside the handler, since staff
// act on guests' bookings through the same paths.
func RegisterGuest(e *echo.Echo, res *handler.ReservationHandler, sres *handler.ServiceReservationHandler, jwtSecret string) {
	guest := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireSubject("GUEST"),
	)
	guest.POST("/reservations", res.Create)
	guest.GET("/my-reservations", res.ListMine)
	guest.POST("/service-reservations", sres.Create)
	guest.GET("/my-service-reservations", sres.ListMine)

	shared := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	shared.GET("/reservations/:id", res.Get)
	shared.DELETE("/reservations/:id", res.Cancel)
	shared.PATCH("/reservations/:id", res.Reschedule)
	shared.POST("/reservations/:id/payment", res.Settle)
	shared.DELETE("/service-reservations/:id", sres.Cancel)
	shared.POST("/service-reservations/:id/payment", sres.Pay)
}
