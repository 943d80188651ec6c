// filepath: internal/cli/server.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"devops-webapp/internal/api"
	"devops-webapp/internal/api/handlers"
	"devops-webapp/internal/logging"
	"devops-webapp/internal/metrics"
	"devops-webapp/internal/services"
	"devops-webapp/internal/web"

	"github.com/dustin/go-humanize"
)

// runServer starts the HTTP server and blocks until ctx is cancelled, then
// shuts down gracefully.
func runServer(ctx context.Context) error {
	content, err := web.ContentFS(cfg.Server.PublicDir, frontendFS)
	if err != nil {
		return fmt.Errorf("failed to load public assets: %w", err)
	}

	// Service Initialization
	healthService := services.NewHealthService(StartTime, cfg.App.Environment)
	clockService := services.NewClockService()
	infoService := services.NewInfoService(Version)
	appMetrics := metrics.New()

	h := handlers.NewHandlers(healthService, clockService, infoService)
	r := api.SetupRouter(h, cfg, content, appMetrics)

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	servers := []*http.Server{srv}
	if cfg.Metrics.Enabled {
		servers = append(servers, appMetrics.NewServer(cfg.MetricsAddress()))
	}

	// Bind every listener first so a busy port fails startup instead of a goroutine.
	listeners := make([]net.Listener, 0, len(servers))
	for _, s := range servers {
		ln, err := net.Listen("tcp", s.Addr)
		if err != nil {
			for _, open := range listeners {
				open.Close()
			}
			return fmt.Errorf("failed to listen on %s: %w", s.Addr, err)
		}
		listeners = append(listeners, ln)
	}

	errCh := make(chan error, len(servers))
	for i, s := range servers {
		go func(s *http.Server, ln net.Listener) {
			logging.Log.Infof("Server starting on %s", ln.Addr())
			if err := s.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("server on %s failed: %w", s.Addr, err)
			}
		}(s, listeners[i])
	}

	printBanner(os.Stdout, cfg)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Log.Info("Shutting down server...")
	case serveErr = <-errCh:
		logging.Log.Errorf("%v", serveErr)
	}

	// Deadline for in-flight requests to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration)
	defer cancel()

	for _, s := range servers {
		if err := s.Shutdown(shutdownCtx); err != nil {
			logging.Log.Errorf("Server forced to shutdown: %v", err)
			if serveErr == nil {
				serveErr = err
			}
		}
	}

	now := time.Now()
	logging.Log.WithField("uptime_seconds", now.Sub(StartTime).Seconds()).
		Infof("Server exiting, up %s", uptime(StartTime, now))
	return serveErr
}

// uptime renders the time between start and now, e.g. "3 hours".
func uptime(start, now time.Time) string {
	return strings.TrimSpace(humanize.RelTime(start, now, "", ""))
}
