package session

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultCheckInterval is how often the monitor re-checks the token. Tokens
// live for hours, so a detection latency of up to one minute is acceptable
// and keeps wakeups rare.
const DefaultCheckInterval = time.Minute

// Monitor periodically checks a bearer token for expiry and invokes a
// callback once when it lapses. All checks are local; the monitor never
// touches the network.
type Monitor struct {
	interval time.Duration
	now      func() time.Time

	mu       sync.Mutex
	stopChan chan struct{}
	stopped  bool
	started  bool
}

// NewMonitor creates a monitor with the given check interval. Intervals
// of zero or less fall back to DefaultCheckInterval.
func NewMonitor(interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	return &Monitor{
		interval: interval,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
}

// Start begins the periodic expiry checks. onExpired fires at most once,
// from the monitor goroutine, and never after Stop has returned its effect
// (a tick racing a Stop call re-checks the liveness flag and backs off).
func (m *Monitor) Start(token string, onExpired func()) {
	m.mu.Lock()
	if m.started || m.stopped {
		m.mu.Unlock()
		return
	}
	m.started = true
	m.mu.Unlock()

	go m.loop(token, onExpired)
}

func (m *Monitor) loop(token string, onExpired func()) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if !IsExpiredAt(token, m.now()) {
				continue
			}
			// claim the stop for ourselves so Stop callers and a
			// second tick both become no-ops
			if !m.stop() {
				return
			}
			zap.L().Info("session token expired, forcing logout")
			if onExpired != nil {
				onExpired()
			}
			return
		case <-m.stopChan:
			return
		}
	}
}

// Stop cancels the monitor. It is idempotent and safe on a nil handle or a
// monitor that already fired.
func (m *Monitor) Stop() {
	if m == nil {
		return
	}
	m.stop()
}

// stop flips the liveness flag exactly once; the return value reports
// whether this caller won.
func (m *Monitor) stop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return false
	}
	m.stopped = true
	close(m.stopChan)
	return true
}
