package cache

import (
	"context"
	"time"

	"github.com/nftperks/raffleport/internal/events"
	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/zap"
)

// Clock is injected so staleness checks are testable without real time.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type balanceEntry struct {
	points   int64
	storedAt time.Time
}

// BalanceCache is a read-through cache for wallet balances. Entries are
// evicted by BalanceChanged events, with the maxAge bound only as a backstop
// against missed events.
type BalanceCache struct {
	entries *xsync.MapOf[string, balanceEntry]
	clock   Clock
	maxAge  time.Duration
}

func NewBalanceCache(clock Clock, maxAge time.Duration) *BalanceCache {
	return &BalanceCache{
		entries: xsync.NewMapOf[string, balanceEntry](),
		clock:   clock,
		maxAge:  maxAge,
	}
}

func (c *BalanceCache) Get(wallet string) (int64, bool) {
	entry, ok := c.entries.Load(wallet)
	if !ok {
		return 0, false
	}
	if c.clock.Now().Sub(entry.storedAt) > c.maxAge {
		c.entries.Delete(wallet)
		return 0, false
	}
	return entry.points, true
}

func (c *BalanceCache) Set(wallet string, points int64) {
	c.entries.Store(wallet, balanceEntry{points: points, storedAt: c.clock.Now()})
}

func (c *BalanceCache) Invalidate(wallet string) {
	c.entries.Delete(wallet)
}

// WatchInvalidation evicts cached balances as purchases commit. Runs until
// the context is cancelled or the bus closes the subscription.
func (c *BalanceCache) WatchInvalidation(ctx context.Context, sub <-chan events.BalanceChanged) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub:
			if !ok {
				return
			}
			c.Invalidate(ev.WalletAddress)
			zap.L().Debug("balance cache invalidated", zap.String("wallet", ev.WalletAddress))
		}
	}
}
