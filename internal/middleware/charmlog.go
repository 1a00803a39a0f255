// Package middleware carries echo middleware shared by the control server.
package middleware

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
)

// CharmLog logs every request through charmbracelet/log instead of echo's
// own logger.
func CharmLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			log.Debugf("%s %s %d %s", req.Method, req.RequestURI, res.Status, time.Since(start))

			return err
		}
	}
}
