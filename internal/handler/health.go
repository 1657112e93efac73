package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports liveness. It intentionally touches nothing but the
// process itself.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
