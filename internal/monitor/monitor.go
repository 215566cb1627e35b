package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/barleyrp/overlay/internal/influx"
	"github.com/barleyrp/overlay/internal/journal"
	"github.com/barleyrp/overlay/internal/logging"
	"github.com/barleyrp/overlay/internal/notify"
	"github.com/barleyrp/overlay/internal/render"
)

// Dependencies holds all dependencies for the monitor service.
// Journal and Influx are optional.
type Dependencies struct {
	LogManager *logging.SlogManager
	Notifier   *notify.Manager
	Renderer   render.Renderer
	Journal    *journal.Writer
	Influx     *influx.Manager
	Interval   time.Duration
}

// Service drives the periodic HUD clock refresh and reports queue gauges.
type Service struct {
	deps      Dependencies
	isRunning bool
	mu        sync.RWMutex
	stopChan  chan struct{}
}

// NewService creates a new monitor service.
func NewService(deps Dependencies) *Service {
	if deps.Interval <= 0 {
		deps.Interval = time.Second
	}
	return &Service{
		deps:     deps,
		stopChan: make(chan struct{}),
	}
}

// IsRunning returns whether the monitor is running.
func (s *Service) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Start starts the monitor goroutine.
func (s *Service) Start() error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.stopChan = make(chan struct{})
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			s.isRunning = false
			s.mu.Unlock()
		}()

		logger := s.deps.LogManager.Logger()
		logger.Debug("Starting HUD monitor goroutine", "interval", s.deps.Interval)

		ticker := time.NewTicker(s.deps.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stopChan:
				return
			case now := <-ticker.C:
				s.deps.Renderer.Apply(render.Patch{
					Fragment: render.FragmentClock,
					Op:       render.OpSet,
					Data:     now.Format("15:04"),
				})

				if s.deps.Influx != nil {
					pending := 0
					if s.deps.Journal != nil {
						pending = s.deps.Journal.Pending()
					}
					point := influx.PerfPoint(pending, len(s.deps.Notifier.Visible()))
					if err := s.deps.Influx.WritePoint(context.Background(), influx.BucketPerformance, point); err != nil {
						logger.Error("Error writing perf point", "error", err)
					}
				}
			}
		}
	}()

	return nil
}

// Stop stops the monitor.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		close(s.stopChan)
	}
}
