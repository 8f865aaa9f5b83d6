package notify

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metforge/steelctl/internal/domain"
)

type fakeFetcher struct {
	calls int32
	resp  []domain.Notification
	err   error
}

func (f *fakeFetcher) UnreadNotifications() ([]domain.Notification, error) {
	atomic.AddInt32(&f.calls, 1)
	return f.resp, f.err
}

func TestPollerPublishesUnread(t *testing.T) {
	bus := EventBus.New()
	got := make(chan []domain.Notification, 1)
	require.NoError(t, bus.Subscribe(TopicUnread, func(ns []domain.Notification) {
		select {
		case got <- ns:
		default:
		}
	}))

	fetcher := &fakeFetcher{resp: []domain.Notification{{ID: "n1", Message: "Sipariş hazır"}}}
	p := NewPoller(fetcher, bus, 10*time.Millisecond)
	p.Start()
	defer p.Stop()

	select {
	case ns := <-got:
		require.Len(t, ns, 1)
		assert.Equal(t, "n1", ns[0].ID)
	case <-time.After(2 * time.Second):
		t.Fatal("nothing published")
	}
}

func TestPollerSkipsEmptyResults(t *testing.T) {
	bus := EventBus.New()
	var published int32
	require.NoError(t, bus.Subscribe(TopicUnread, func([]domain.Notification) {
		atomic.AddInt32(&published, 1)
	}))

	p := NewPoller(&fakeFetcher{}, bus, 5*time.Millisecond)
	p.Start()
	defer p.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&published))
}

func TestPollerSurvivesFetchErrors(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("backend down")}
	p := NewPoller(fetcher, EventBus.New(), 5*time.Millisecond)
	p.Start()
	defer p.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Greater(t, atomic.LoadInt32(&fetcher.calls), int32(3),
		"poller must keep polling through errors")
}

func TestPollerStopIdempotent(t *testing.T) {
	p := NewPoller(&fakeFetcher{}, EventBus.New(), time.Minute)
	p.Start()
	p.Stop()
	p.Stop()

	var nilPoller *Poller
	nilPoller.Stop() // must not panic
}
