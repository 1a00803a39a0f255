package ipc

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wallcycle/wallcycle/internal/rotation"
)

// GET /ping
func pingHandler(DaemonInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, Response{Status: StatusOK, Message: "pong"})
	}
}

// GET /status
func statusHandler(m DaemonInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSONPretty(http.StatusOK, m.Status(), "  ")
	}
}

// GET /directory
func getDirectoryHandler(m DaemonInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, Response{Status: StatusOK, Data: m.Directory()})
	}
}

// POST /directory
func setDirectoryHandler(m DaemonInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req Request
		if err := c.Bind(&req); err != nil || req.Path == "" {
			return c.JSON(http.StatusBadRequest, Response{
				Status:  StatusError,
				Message: "protocol error: expected a directory path",
			})
		}

		first, err := m.SetDirectory(req.Path)
		if err != nil {
			return errorResponse(c, err)
		}

		return c.JSON(http.StatusOK, Response{Status: StatusOK, Data: first})
	}
}

// POST /wallpaper
func setWallpaperHandler(m DaemonInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req Request
		if err := c.Bind(&req); err != nil || req.Path == "" {
			return c.JSON(http.StatusBadRequest, Response{
				Status:  StatusError,
				Message: "protocol error: expected a wallpaper path",
			})
		}

		if err := m.SetWallpaper(req.Path); err != nil {
			return errorResponse(c, err)
		}

		return c.JSON(http.StatusOK, Response{Status: StatusOK, Data: req.Path})
	}
}

// POST /next
func nextHandler(m DaemonInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		path, err := m.Next()
		if err != nil {
			return errorResponse(c, err)
		}

		return c.JSON(http.StatusOK, Response{Status: StatusOK, Data: path})
	}
}

// POST /kill
func killHandler(m DaemonInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		m.Kill()
		return c.JSON(http.StatusOK, Response{Status: StatusOK, Message: "stopping"})
	}
}

// errorResponse maps a directive failure to a reply. Precondition failures
// (bad paths, empty directories) are the client's fault; anything else, like
// a failed wallpaper-set call, is reported as a server-side failure.
func errorResponse(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	if errors.Is(err, rotation.ErrInvalidPath) || errors.Is(err, rotation.ErrEmptyDirectory) {
		code = http.StatusBadRequest
	}
	return c.JSON(code, Response{Status: StatusError, Message: err.Error()})
}
