package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/DRSN-tech/food-delivery/internal/cfg"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
)

const maxHeaderBytes = 1 << 16

// Server — HTTP-сервер API меню, заказов и витрины.
type Server struct {
	srv    *http.Server
	logger logger.Logger
}

func NewServer(handler http.Handler, c *cfg.HTTPConfig, log logger.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              ":" + c.Port,
			Handler:           handler,
			ReadHeaderTimeout: c.ReadTimeout,
			ReadTimeout:       c.ReadTimeout,
			WriteTimeout:      c.WriteTimeout,
			IdleTimeout:       c.IdleTimeout,
			MaxHeaderBytes:    maxHeaderBytes,
		},
		logger: log,
	}
}

// Run блокируется до остановки сервера. После Stop возвращает nil.
func (s *Server) Run() error {
	s.logger.Infof("HTTP server listening on %s", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Infof("HTTP server shutting down")
	return s.srv.Shutdown(ctx)
}
