package notify

import (
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/metforge/steelctl/internal/domain"
)

// TopicUnread is published with the current unread notification list on
// every successful poll that returns at least one notification.
const TopicUnread = "notify:unread"

// DefaultPollInterval matches the refresh cadence of the web client.
const DefaultPollInterval = 30 * time.Second

// Fetcher retrieves the unread notifications for the current account.
type Fetcher interface {
	UnreadNotifications() ([]domain.Notification, error)
}

// Poller periodically pulls unread notifications and fans them out on the
// bus. Fetch errors are logged and the poller keeps going; transient
// backend trouble must not kill the loop.
type Poller struct {
	fetcher  Fetcher
	bus      EventBus.Bus
	interval time.Duration

	mu       sync.Mutex
	stopChan chan struct{}
	stopped  bool
	started  bool
}

// NewPoller creates a poller. Intervals of zero or less fall back to
// DefaultPollInterval.
func NewPoller(fetcher Fetcher, bus EventBus.Bus, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		fetcher:  fetcher,
		bus:      bus,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start launches the poll loop. Calling Start twice or after Stop is a
// no-op.
func (p *Poller) Start() {
	p.mu.Lock()
	if p.started || p.stopped {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	go p.loop()
}

func (p *Poller) loop() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.poll()
		case <-p.stopChan:
			return
		}
	}
}

func (p *Poller) poll() {
	notifications, err := p.fetcher.UnreadNotifications()
	if err != nil {
		zap.L().Warn("notification poll failed", zap.Error(err))
		return
	}
	if len(notifications) == 0 {
		return
	}
	p.bus.Publish(TopicUnread, notifications)
}

// Stop cancels the poller. Idempotent and safe on a nil handle.
func (p *Poller) Stop() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return
	}
	p.stopped = true
	close(p.stopChan)
}
