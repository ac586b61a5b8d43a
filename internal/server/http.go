package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/okarpov/paramgate/internal/config"
	"github.com/okarpov/paramgate/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, log *logger.Logger) *httpServer {
	readTimeout := cfg.RequestTimeout
	if readTimeout <= 0 {
		readTimeout = 30 * time.Second
	}

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           router,
			ReadTimeout:       readTimeout,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: log,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Msg("HTTP server ListenAndServe")
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
