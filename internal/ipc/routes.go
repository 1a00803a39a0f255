package ipc

import (
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, manager DaemonInterface) {
	e.GET("/ping", pingHandler(manager))
	e.GET("/status", statusHandler(manager))
	e.GET("/directory", getDirectoryHandler(manager))
	e.POST("/directory", setDirectoryHandler(manager))
	e.POST("/wallpaper", setWallpaperHandler(manager))
	e.POST("/next", nextHandler(manager))
	e.POST("/kill", killHandler(manager))
}
