package events

import (
	"sync"

	"github.com/nftperks/raffleport/internal/domain"
	"go.uber.org/zap"
)

// BalanceChanged is published after every committed balance mutation.
type BalanceChanged struct {
	WalletAddress string
	Points        int64
}

// RaffleStatusChanged is published when a raffle moves along its lifecycle.
type RaffleStatusChanged struct {
	RaffleID int64
	Status   domain.RaffleStatus
}

const subscriberBuffer = 64

// Bus is a typed in-process publish/subscribe mechanism. Publishing never
// blocks: a subscriber that falls behind loses events, which is acceptable
// because every event only invalidates derived state.
type Bus struct {
	mu          sync.RWMutex
	balanceSubs []chan BalanceChanged
	raffleSubs  []chan RaffleStatusChanged
	closed      bool
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) SubscribeBalance() <-chan BalanceChanged {
	ch := make(chan BalanceChanged, subscriberBuffer)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balanceSubs = append(b.balanceSubs, ch)
	return ch
}

func (b *Bus) SubscribeRaffleStatus() <-chan RaffleStatusChanged {
	ch := make(chan RaffleStatusChanged, subscriberBuffer)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.raffleSubs = append(b.raffleSubs, ch)
	return ch
}

func (b *Bus) PublishBalanceChanged(ev BalanceChanged) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, ch := range b.balanceSubs {
		select {
		case ch <- ev:
		default:
			zap.L().Warn("balance event dropped, subscriber is behind",
				zap.String("wallet", ev.WalletAddress))
		}
	}
}

func (b *Bus) PublishRaffleStatusChanged(ev RaffleStatusChanged) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, ch := range b.raffleSubs {
		select {
		case ch <- ev:
		default:
			zap.L().Warn("raffle status event dropped, subscriber is behind",
				zap.Int64("raffleID", ev.RaffleID))
		}
	}
}

func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.balanceSubs {
		close(ch)
	}
	for _, ch := range b.raffleSubs {
		close(ch)
	}
}
