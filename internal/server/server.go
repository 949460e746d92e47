// Package server поднимает HTTP сервер приложения: health endpoint,
// опциональный /metrics и цепочку middleware логирования.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AayushBarhate/backend/internal/middleware"
	"github.com/AayushBarhate/backend/internal/pkg/logging"
	"github.com/AayushBarhate/backend/internal/pkg/metrics"
)

const (
	// readHeaderTimeout ограничивает чтение заголовков запроса.
	readHeaderTimeout = 5 * time.Second
	// shutdownTimeout — время на graceful завершение активных запросов.
	shutdownTimeout = 10 * time.Second
)

// Server — HTTP сервер приложения.
type Server struct {
	httpServer *http.Server
	appName    string
}

// New создаёт сервер на указанном порту.
// metricsHandler может быть nil — тогда /metrics не регистрируется.
// Каждый запрос проходит через Recovery и RequestLogger middleware.
func New(port int, appName string, logger logging.AppLogger, collector metrics.Collector, metricsHandler http.Handler) *Server {
	s := &Server{appName: appName}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
	}

	handler := middleware.RequestLogger(logger, collector)(mux)
	handler = middleware.Recovery(logger)(handler)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// Run запускает сервер и блокируется до отмены контекста.
// После отмены выполняется graceful shutdown активных запросов.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

// Addr возвращает адрес, на котором слушает сервер.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// handleHealth отвечает на health check без логирования
// (путь входит в skip-список middleware).
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
		"server": s.appName,
	})
}
