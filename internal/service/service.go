// Package service wires configuration, task generation, rendering, history
// and the HTTP API together.
package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tutu-network/mathsheet/internal/api"
	"github.com/tutu-network/mathsheet/internal/app/worksheet"
	"github.com/tutu-network/mathsheet/internal/config"
	"github.com/tutu-network/mathsheet/internal/domain"
	"github.com/tutu-network/mathsheet/internal/health"
	"github.com/tutu-network/mathsheet/internal/infra/pdf"
	"github.com/tutu-network/mathsheet/internal/infra/sqlite"
)

// Service is the mathsheet runtime.
type Service struct {
	Config   config.Config
	Registry *worksheet.Registry
	Builder  *worksheet.Builder
	Renderer *pdf.Renderer
	History  *sqlite.DB // nil when history is disabled
	Server   *api.Server
	Health   *health.Checker

	out    io.Writer
	cancel context.CancelFunc
}

// NewWithConfig creates a Service with the given configuration.
func NewWithConfig(cfg config.Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reg, err := worksheet.NewRegistry(addSubOptions(cfg))
	if err != nil {
		return nil, err
	}
	types, err := reg.ParseTypes(cfg.Task.Types)
	if err != nil {
		return nil, fmt.Errorf("config task types: %w", err)
	}
	builder, err := worksheet.NewBuilder(reg, worksheetOptions(cfg, types), nil)
	if err != nil {
		return nil, err
	}
	renderer := pdf.New(pdfStyle(cfg))
	for i, l := range builder.Layouts() {
		if err := renderer.CheckLayout(l); err != nil {
			return nil, fmt.Errorf("config layout for %s: %w", types[i], err)
		}
	}

	s := &Service{
		Config:   cfg,
		Registry: reg,
		Builder:  builder,
		Renderer: renderer,
		Server:   api.NewServer(reg, builder, renderer),
		out:      os.Stdout,
	}

	if cfg.History.Enabled {
		db, err := sqlite.Open(cfg.History.Dir)
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
		s.History = db
		s.Server.SetHistory(db)
	}

	var history health.Pinger
	if s.History != nil {
		history = s.History
	}
	s.Health = health.NewChecker(history, renderer, s.healthSample)
	s.Server.SetHealthChecker(s.Health)

	// Enable Prometheus /metrics if configured
	if cfg.Server.Metrics {
		s.Server.EnableMetrics()
	}

	return s, nil
}

// healthSample is the worksheet the renderer health check draws.
func (s *Service) healthSample() domain.Worksheet {
	return s.Builder.Build(worksheet.NewRand(0), 0)
}

// SetOutput redirects user-facing messages (default stdout).
func (s *Service) SetOutput(w io.Writer) { s.out = w }

// Close releases the history database.
func (s *Service) Close() error {
	if s.cancel != nil {
		s.cancel()
	}
	if s.History != nil {
		return s.History.Close()
	}
	return nil
}

// Serve starts the HTTP API and blocks until ctx is cancelled or the process
// receives SIGINT/SIGTERM.
func (s *Service) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	go s.Health.Run(ctx)

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[serve] shutdown: %v", err)
		}
	}()

	fmt.Fprintf(s.out, "mathsheet serving on http://%s\n", addr)
	if s.Config.Server.Metrics {
		fmt.Fprintf(s.out, "  Metrics: http://%s/metrics\n", addr)
	}

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		cancel()
		return err
	}
	<-done
	return nil
}

// Runs lists recorded generation runs, newest first.
func (s *Service) Runs(limit int) ([]domain.Run, error) {
	if s.History == nil {
		return nil, nil
	}
	return s.History.ListRuns(limit)
}

// DeleteRun removes a recorded run. The PDF files it wrote are left alone.
func (s *Service) DeleteRun(id string) error {
	if s.History == nil {
		return domain.ErrRunNotFound
	}
	return s.History.DeleteRun(id)
}

// Run returns one recorded generation run with its files.
func (s *Service) Run(id string) (*domain.Run, error) {
	if s.History == nil {
		return nil, domain.ErrRunNotFound
	}
	return s.History.GetRun(id)
}
