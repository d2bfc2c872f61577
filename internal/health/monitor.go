// Package health maintains the availability state of the PII detection
// service. Every user-triggered operation consults this state before doing any
// work, so an absent service is reported instead of discovered mid-operation.
package health

import (
	"context"
	"log/slog"
	"sync"
	"time"

	detectorDomain "github.com/allisson/redactor/internal/detector/domain"
)

// State is the binary availability state of the detection service.
type State string

const (
	// StateOnline means the last status probe succeeded.
	StateOnline State = "online"
	// StateOffline means the last status probe failed, or no probe has
	// completed yet. The initial state is offline (fail-closed).
	StateOffline State = "offline"
)

// Prober performs the detection service status probe.
type Prober interface {
	CheckStatus(ctx context.Context) (*detectorDomain.ServiceStatus, error)
}

// Monitor polls the detection service on a fixed interval and caches the
// resulting binary state. A single failed probe flips to offline and a single
// success flips back to online; there is no hysteresis. The monitor never
// raises on probe failure - a failure is data, not an error.
type Monitor struct {
	prober   Prober
	interval time.Duration
	logger   *slog.Logger

	mu    sync.RWMutex
	state State

	startOnce sync.Once
	stopOnce  sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewMonitor creates a stopped monitor in the offline state.
func NewMonitor(prober Prober, interval time.Duration, logger *slog.Logger) *Monitor {
	return &Monitor{
		prober:   prober,
		interval: interval,
		logger:   logger,
		state:    StateOffline,
		done:     make(chan struct{}),
	}
}

// Start launches the polling loop. The first probe runs immediately so the
// state reflects reality as soon as possible after startup. Start is
// idempotent; only the first call has any effect.
func (m *Monitor) Start(ctx context.Context) {
	m.startOnce.Do(func() {
		ctx, m.cancel = context.WithCancel(ctx)

		go func() {
			defer close(m.done)

			m.probe(ctx)

			ticker := time.NewTicker(m.interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					m.probe(ctx)
				}
			}
		}()
	})
}

// Stop cancels the polling loop and waits for it to exit. Stop is idempotent
// and safe to call on a monitor that was never started.
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() {
		if m.cancel == nil {
			close(m.done)
			return
		}
		m.cancel()
		<-m.done
	})
}

// State returns the current cached availability state.
func (m *Monitor) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Online reports whether the detection service was reachable at the last probe.
func (m *Monitor) Online() bool {
	return m.State() == StateOnline
}

// CheckNow performs an immediate probe, updates the cached state and returns
// the full diagnostic. Unlike the background loop it surfaces the probe error
// so the caller can show it to the user.
func (m *Monitor) CheckNow(ctx context.Context) (*detectorDomain.ServiceStatus, error) {
	status, err := m.prober.CheckStatus(ctx)
	m.setState(err == nil)
	if err != nil {
		return nil, err
	}
	return status, nil
}

// probe runs one background poll tick.
func (m *Monitor) probe(ctx context.Context) {
	_, err := m.prober.CheckStatus(ctx)
	if ctx.Err() != nil {
		return
	}
	m.setState(err == nil)
}

// setState stores the new state and logs transitions.
func (m *Monitor) setState(online bool) {
	next := StateOffline
	if online {
		next = StateOnline
	}

	m.mu.Lock()
	previous := m.state
	m.state = next
	m.mu.Unlock()

	if previous != next && m.logger != nil {
		m.logger.Info("detection service state changed",
			slog.String("previous", string(previous)),
			slog.String("current", string(next)),
		)
	}
}
