package session

import (
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
)

// TopicExpired is published on the application bus when the monitor detects
// that the live session's token lapsed. Subscribers receive the expired
// Session value.
const TopicExpired = "session:expired"

// Store is the durable client storage the manager persists sessions to.
// Save and Clear must write/remove the token and the session object
// atomically together.
type Store interface {
	SaveSession(s Session) error
	LoadSession() (Session, bool, error)
	ClearSession() error
}

// Manager owns the authenticated session: it persists it, exposes read
// access, and runs the expiry monitor. It replaces ambient global auth
// state; the application root constructs one and passes it down.
type Manager struct {
	store    Store
	bus      EventBus.Bus
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	current *Session
	monitor *Monitor
}

// NewManager creates a session manager on top of the given store. bus may
// be nil when no one listens for expiry events.
func NewManager(store Store, bus EventBus.Bus, checkInterval time.Duration) *Manager {
	if checkInterval <= 0 {
		checkInterval = DefaultCheckInterval
	}
	return &Manager{
		store:    store,
		bus:      bus,
		interval: checkInterval,
		now:      time.Now,
	}
}

// Restore loads the persisted session at startup. The token is checked
// synchronously before any stored data is trusted: an expired or malformed
// token purges storage and leaves the manager unauthenticated.
func (m *Manager) Restore() (Session, bool, error) {
	s, ok, err := m.store.LoadSession()
	if err != nil {
		return Session{}, false, err
	}
	if !ok {
		return Session{}, false, nil
	}
	if IsExpiredAt(s.Token, m.now()) {
		zap.L().Info("stored session token expired, purging", zap.String("username", s.Username))
		if err := m.store.ClearSession(); err != nil {
			return Session{}, false, err
		}
		return Session{}, false, nil
	}
	m.establish(s)
	return s, true, nil
}

// Establish installs the session returned by a successful login or
// registration: it is persisted and a fresh monitor is started. Any monitor
// from a previous session is cancelled first so only one runs at a time.
func (m *Manager) Establish(s Session) error {
	if err := m.store.SaveSession(s); err != nil {
		return err
	}
	m.establish(s)
	return nil
}

func (m *Manager) establish(s Session) {
	m.mu.Lock()
	old := m.monitor
	m.current = &s
	m.monitor = NewMonitor(m.interval)
	mon := m.monitor
	m.mu.Unlock()

	old.Stop()
	mon.Start(s.Token, func() { m.expire(s) })
}

// Logout tears the session down: the monitor is cancelled and storage is
// purged.
func (m *Manager) Logout() error {
	m.mu.Lock()
	mon := m.monitor
	m.current = nil
	m.monitor = nil
	m.mu.Unlock()

	mon.Stop()
	return m.store.ClearSession()
}

// expire is the monitor callback: purge everything and tell the app. A
// monitor that fires after its session was replaced by a newer login must
// not touch the live session, so the claim is checked against the token
// the monitor was started with.
func (m *Manager) expire(s Session) {
	m.mu.Lock()
	if m.current == nil || m.current.Token != s.Token {
		m.mu.Unlock()
		return
	}
	m.current = nil
	m.monitor = nil
	m.mu.Unlock()

	if err := m.store.ClearSession(); err != nil {
		zap.L().Error("failed to purge expired session", zap.Error(err))
	}
	if m.bus != nil {
		m.bus.Publish(TopicExpired, s)
	}
}

// Current returns the live session, if any.
func (m *Manager) Current() (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return Session{}, false
	}
	return *m.current, true
}

// Token returns the live bearer token, or the empty string when
// unauthenticated. Satisfies the REST client's token source.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return ""
	}
	return m.current.Token
}

// IsAdmin reports whether the live session is an administrator.
func (m *Manager) IsAdmin() bool {
	s, ok := m.Current()
	return ok && s.IsAdmin()
}

// CanManageStock reports whether the live session may modify the given
// branch's stock.
func (m *Manager) CanManageStock(branchID string) bool {
	s, ok := m.Current()
	return ok && s.CanManageStock(branchID)
}
