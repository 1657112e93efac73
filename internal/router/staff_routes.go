package router

import (
	"github.com/labstack/echo/v4"

	"github.com/josemtz/hotel-reservation/internal/handler"
	"github.com/josemtz/hotel-reservation/internal/middleware"
)

// RegisterStaff registers the back-office endpoints. Every role may view
// reservations; catalog management, reconciliation and account
// administration are front-desk work.
func RegisterStaff(e *echo.Echo, rooms *handler.RoomHandler, services *handler.ServiceHandler, res *handler.ReservationHandler, staff *handler.StaffHandler, jwtSecret string) {
	viewer := e.Group(
		"/v1/staff",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireSubject("STAFF"),
		middleware.RequireRole("FRONT_DESK", "PORTER", "STAFF"),
	)
	viewer.GET("/reservations", res.ListAll)

	desk := e.Group(
		"/v1/staff",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireSubject("STAFF"),
		middleware.RequireRole("FRONT_DESK"),
	)
	desk.GET("/reservations/unpaid", res.ListUnpaid)
	desk.GET("/payments/:id", staff.GetPayment)

	desk.POST("/rooms", rooms.Create)
	desk.PUT("/rooms/:id", rooms.Update)
	desk.PATCH("/rooms/:id/status", rooms.SetStatus)
	desk.DELETE("/rooms/:id", rooms.Delete)

	desk.POST("/services", services.Create)
	desk.PUT("/services/:id", services.Update)
	desk.DELETE("/services/:id", services.Delete)

	desk.POST("/employees", staff.CreateEmployee)
	desk.GET("/employees", staff.ListEmployees)
	desk.GET("/customers", staff.ListCustomers)
}
