package ipc

import (
	"context"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wallcycle/wallcycle/internal/middleware"
)

// Server is the daemon's control listener: plain HTTP over a local TCP
// socket, one directive per request.
type Server struct {
	e *echo.Echo
}

func NewServer(manager DaemonInterface) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.CharmLog())

	RegisterRoutes(e, manager)

	return &Server{e: e}
}

// Start binds addr and serves until Shutdown. A bind failure is returned
// immediately so the daemon can report it and exit before entering its loop.
func (s *Server) Start(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.e.Listener = listener

	server := new(http.Server)
	if err := s.e.StartServer(server); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown closes the listener and lets in-flight replies finish.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
