package session

import (
	"sync"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store double. Token and session object live and
// die together, mirroring the durable store's atomicity contract.
type memStore struct {
	mu   sync.Mutex
	sess *Session
}

func (m *memStore) SaveSession(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = &s
	return nil
}

func (m *memStore) LoadSession() (Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == nil {
		return Session{}, false, nil
	}
	return *m.sess, true, nil
}

func (m *memStore) ClearSession() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = nil
	return nil
}

func (m *memStore) empty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sess == nil
}

func TestManagerEstablishAndRestore(t *testing.T) {
	store := &memStore{}
	mgr := NewManager(store, nil, time.Minute)

	sess := Session{
		Token:       mintToken(t, time.Now().Add(time.Hour)),
		BranchID:    "5",
		AccountType: AccountAdmin,
		Username:    "x",
	}
	require.NoError(t, mgr.Establish(sess))

	got, ok := mgr.Current()
	require.True(t, ok)
	assert.Equal(t, sess, got)
	assert.True(t, mgr.IsAdmin())
	assert.True(t, mgr.CanManageStock("9"))

	// a fresh manager over the same store simulates a page reload
	mgr2 := NewManager(store, nil, time.Minute)
	restored, ok, err := mgr2.Restore()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sess, restored)

	mgr.Logout()
	mgr2.Logout()
}

func TestManagerRestorePurgesExpired(t *testing.T) {
	store := &memStore{}
	require.NoError(t, store.SaveSession(Session{
		Token:       mintToken(t, time.Now().Add(-time.Second)),
		BranchID:    "5",
		AccountType: AccountBranch,
		Username:    "x",
	}))

	mgr := NewManager(store, nil, time.Minute)
	_, ok, err := mgr.Restore()
	require.NoError(t, err)
	assert.False(t, ok, "expired session must not be restored")
	assert.True(t, store.empty(), "storage must be purged")

	_, ok = mgr.Current()
	assert.False(t, ok)
}

func TestManagerLogoutClearsStorage(t *testing.T) {
	store := &memStore{}
	mgr := NewManager(store, nil, time.Minute)
	require.NoError(t, mgr.Establish(Session{
		Token:    mintToken(t, time.Now().Add(time.Hour)),
		Username: "x",
	}))

	require.NoError(t, mgr.Logout())
	assert.True(t, store.empty())
	_, ok := mgr.Current()
	assert.False(t, ok)
	assert.False(t, mgr.CanManageStock("5"))
}

func TestManagerPublishesExpiry(t *testing.T) {
	store := &memStore{}
	bus := EventBus.New()

	expired := make(chan Session, 1)
	require.NoError(t, bus.Subscribe(TopicExpired, func(s Session) {
		expired <- s
	}))

	mgr := NewManager(store, bus, 10*time.Millisecond)
	require.NoError(t, mgr.Establish(Session{
		Token:    mintToken(t, time.Now().Add(50*time.Millisecond)),
		Username: "x",
	}))

	select {
	case s := <-expired:
		assert.Equal(t, "x", s.Username)
	case <-time.After(2 * time.Second):
		t.Fatal("expiry event never published")
	}
	assert.True(t, store.empty())
	_, ok := mgr.Current()
	assert.False(t, ok)
}

func TestManagerReloginCancelsOldMonitor(t *testing.T) {
	store := &memStore{}
	mgr := NewManager(store, nil, 5*time.Millisecond)

	// first session expires almost immediately
	require.NoError(t, mgr.Establish(Session{
		Token:    mintToken(t, time.Now().Add(10*time.Millisecond)),
		Username: "old",
	}))
	// immediate re-login replaces it with a long-lived one
	require.NoError(t, mgr.Establish(Session{
		Token:    mintToken(t, time.Now().Add(time.Hour)),
		Username: "new",
	}))

	time.Sleep(100 * time.Millisecond)
	got, ok := mgr.Current()
	require.True(t, ok, "re-login session must survive the old monitor")
	assert.Equal(t, "new", got.Username)
	mgr.Logout()
}

func TestManagerExpireIgnoresSupersededSession(t *testing.T) {
	store := &memStore{}
	mgr := NewManager(store, nil, time.Hour)

	old := Session{Token: mintToken(t, time.Now().Add(time.Hour)), Username: "old"}
	require.NoError(t, mgr.Establish(old))
	require.NoError(t, mgr.Establish(Session{
		Token:    mintToken(t, time.Now().Add(2*time.Hour)),
		Username: "new",
	}))

	// a stale fire from the old session's monitor, delivered after the
	// re-login already replaced it
	mgr.expire(old)

	got, ok := mgr.Current()
	require.True(t, ok, "stale expiry must not purge the live session")
	assert.Equal(t, "new", got.Username)
	assert.False(t, store.empty())

	// the live session's own expiry still tears everything down
	got, _ = mgr.Current()
	mgr.expire(got)
	_, ok = mgr.Current()
	assert.False(t, ok)
	assert.True(t, store.empty())
	mgr.Logout()
}
