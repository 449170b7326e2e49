package cache

import (
	"context"
	"testing"
	"time"

	"github.com/nftperks/raffleport/internal/events"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) advance(d time.Duration) { f.now = f.now.Add(d) }

const testWallet = "0x1111111111111111111111111111111111111111"

func TestBalanceCache_SetGet(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	c := NewBalanceCache(clock, time.Minute)

	_, ok := c.Get(testWallet)
	assert.False(t, ok)

	c.Set(testWallet, 500)
	points, ok := c.Get(testWallet)
	assert.True(t, ok)
	assert.Equal(t, int64(500), points)
}

func TestBalanceCache_Staleness(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	c := NewBalanceCache(clock, time.Minute)

	c.Set(testWallet, 500)

	clock.advance(time.Minute)
	points, ok := c.Get(testWallet)
	assert.True(t, ok, "entry at exactly maxAge is still fresh")
	assert.Equal(t, int64(500), points)

	clock.advance(time.Nanosecond)
	_, ok = c.Get(testWallet)
	assert.False(t, ok, "entry older than maxAge is evicted")

	// The stale entry was deleted, not just hidden.
	_, ok = c.Get(testWallet)
	assert.False(t, ok)
}

func TestBalanceCache_Invalidate(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	c := NewBalanceCache(clock, time.Minute)

	c.Set(testWallet, 500)
	c.Invalidate(testWallet)

	_, ok := c.Get(testWallet)
	assert.False(t, ok)
}

func TestBalanceCache_WatchInvalidation(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	c := NewBalanceCache(clock, time.Minute)
	bus := events.NewBus()
	sub := bus.SubscribeBalance()

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.WatchInvalidation(context.Background(), sub)
	}()

	c.Set(testWallet, 500)
	bus.PublishBalanceChanged(events.BalanceChanged{WalletAddress: testWallet, Points: 200})

	assert.Eventually(t, func() bool {
		_, ok := c.Get(testWallet)
		return !ok
	}, time.Second, 5*time.Millisecond)

	// Closing the bus ends the watcher.
	bus.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after bus close")
	}
}

func TestBalanceCache_WatchInvalidationStopsOnContext(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	c := NewBalanceCache(clock, time.Minute)
	bus := events.NewBus()
	sub := bus.SubscribeBalance()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.WatchInvalidation(ctx, sub)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after context cancel")
	}
}
