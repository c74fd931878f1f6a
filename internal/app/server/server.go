package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/coursecraft/coursecraft/internal/config"
	"github.com/coursecraft/coursecraft/internal/logger"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg        config.Config
	httpServer *http.Server
	gdb        *gorm.DB
	log        *logger.Logger
}

// NewServer constructs a Server from the provided dependencies.
func NewServer(cfg config.Config, handler http.Handler, gdb *gorm.DB, log *logger.Logger) *Server {
	return &Server{
		cfg: cfg,
		httpServer: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: handler,
		},
		gdb: gdb,
		log: log,
	}
}

// Run starts the HTTP server and blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.log.Info("http server listening", "address", s.cfg.HTTPAddress)
		if err := s.httpServer.ListenAndServe(); err != nil {
			errCh <- err
		} else {
			close(errCh)
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(shutdownCtx)
		s.close()
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.close()
			return err
		}
		return nil
	}
}

func (s *Server) close() {
	if sqlDB, err := s.gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
	s.log.Sync()
}
