package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// clientID returns a stable identifier for rate-limit bucketing: the
// authenticated user id when present, "anon" otherwise.
func clientID(c echo.Context) string {
	switch v := c.Get("user_id").(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return fmt.Sprintf("%.0f", v)
	}
	return "anon"
}
