package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/aretw0/parley/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsShutdownTimeout = 2 * time.Second

// metricsServer serves /metrics for the lifetime of a session.
type metricsServer struct {
	srv    *http.Server
	addr   net.Addr
	done   chan struct{}
	logger *slog.Logger
}

// startMetricsServer binds addr before returning so a taken port fails the
// session instead of being logged from a goroutine.
func startMetricsServer(addr string, gatherer prometheus.Gatherer, logger *slog.Logger) (*metricsServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}

	m := &metricsServer{
		srv: &http.Server{
			Handler:           observability.Handler(gatherer),
			ReadHeaderTimeout: 5 * time.Second,
		},
		addr:   ln.Addr(),
		done:   make(chan struct{}),
		logger: logger,
	}

	go func() {
		defer close(m.done)
		if err := m.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "err", err)
		}
	}()
	logger.Info("Serving metrics", "addr", m.addr.String())
	return m, nil
}

func (m *metricsServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()
	if err := m.srv.Shutdown(ctx); err != nil {
		m.logger.Warn("metrics server shutdown", "err", err)
	}
	<-m.done
}
