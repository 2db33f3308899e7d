// Package health runs periodic self checks for the mathsheet server: the
// history database answers and a sample worksheet still renders.
package health

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/tutu-network/mathsheet/internal/domain"
)

// Pinger is satisfied by the history database.
type Pinger interface {
	Ping() error
}

// Check defines a single health check.
type Check struct {
	Name    string
	CheckFn func(ctx context.Context) error
}

// Status represents the result of a health check.
type Status struct {
	Name      string    `json:"name"`
	Healthy   bool      `json:"healthy"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// Checker runs health checks on an interval and keeps the latest results.
type Checker struct {
	mu       sync.RWMutex
	checks   []Check
	statuses []Status
	interval time.Duration
}

// NewChecker creates a checker. history may be nil when history is disabled;
// sample is the worksheet rendered by the renderer check.
func NewChecker(history Pinger, r domain.Renderer, sample func() domain.Worksheet) *Checker {
	c := &Checker{interval: 60 * time.Second}
	if history != nil {
		c.checks = append(c.checks, Check{
			Name: "history",
			CheckFn: func(ctx context.Context) error {
				return history.Ping()
			},
		})
	}
	c.checks = append(c.checks, Check{
		Name: "renderer",
		CheckFn: func(ctx context.Context) error {
			if err := r.Render(io.Discard, sample(), true); err != nil {
				return fmt.Errorf("render sample: %w", err)
			}
			return nil
		},
	})
	return c
}

// Run starts the health check loop. Call in a goroutine.
func (c *Checker) Run(ctx context.Context) {
	// Run immediately on start
	c.RunOnce(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.RunOnce(ctx)
		}
	}
}

// RunOnce runs every check and stores the results.
func (c *Checker) RunOnce(ctx context.Context) {
	statuses := make([]Status, len(c.checks))
	for i, check := range c.checks {
		s := Status{
			Name:      check.Name,
			CheckedAt: time.Now(),
		}
		if err := check.CheckFn(ctx); err != nil {
			s.Error = err.Error()
		} else {
			s.Healthy = true
		}
		statuses[i] = s
	}

	c.mu.Lock()
	c.statuses = statuses
	c.mu.Unlock()
}

// Statuses returns the latest health check results.
func (c *Checker) Statuses() []Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Status, len(c.statuses))
	copy(result, c.statuses)
	return result
}

// IsHealthy returns true if all checks pass. Before the first run there is
// nothing failing, so it reports true.
func (c *Checker) IsHealthy() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.statuses {
		if !s.Healthy {
			return false
		}
	}
	return true
}
