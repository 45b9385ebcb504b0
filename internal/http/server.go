package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/esmanureral/dental-ai-backend/internal/config"
	"github.com/esmanureral/dental-ai-backend/internal/platform/logger"
)

type Server struct {
	log             *logger.Logger
	srv             *http.Server
	shutdownTimeout time.Duration
}

func NewServer(cfg *config.Config, log *logger.Logger, handler *gin.Engine) *Server {
	return &Server{
		log: log,
		srv: &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           http.MaxBytesHandler(handler, cfg.HTTP.MaxRequestBytes),
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
			IdleTimeout:       cfg.HTTP.IdleTimeout,
		},
		shutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.ListenAndServe()
	}()
	if s.log != nil {
		s.log.Info("http server listening", "addr", s.srv.Addr)
	}

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			if s.log != nil {
				s.log.Warn("http server shutdown", "error", err)
			}
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
