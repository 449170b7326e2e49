package validationservice

import (
	"errors"
	"testing"
	"time"

	"github.com/nftperks/raffleport/internal/domain"
	"pgregory.net/rapid"
)

// Cost must be the exact product of price and count for any legal input, and
// every rejection must carry numbers consistent with the inputs. Integer
// points make this exact; there is no rounding to hide behind.
func TestCheckPurchaseCostProperty(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	rapid.Check(t, func(rt *rapid.T) {
		pointsPerTicket := rapid.Int64Range(1, 100000).Draw(rt, "pointsPerTicket")
		maxTickets := rapid.IntRange(1, 1000).Draw(rt, "maxTickets")
		currentTickets := rapid.IntRange(0, 1000).Draw(rt, "currentTickets")
		ticketCount := rapid.IntRange(1, 1000).Draw(rt, "ticketCount")
		balance := rapid.Int64Range(0, 1<<40).Draw(rt, "balance")

		raffle := &domain.Raffle{
			ID:                1,
			PointsPerTicket:   pointsPerTicket,
			MaxTicketsPerUser: maxTickets,
			EndDate:           now.Add(time.Hour),
			Status:            domain.StatusActive,
		}
		user := &domain.UserBalance{WalletAddress: "0x1111111111111111111111111111111111111111", Points: balance}

		cost, remaining, err := CheckPurchase(raffle, user, currentTickets, ticketCount, now)

		wantCost := pointsPerTicket * int64(ticketCount)
		switch {
		case balance < wantCost:
			var insufficient *InsufficientPointsError
			if !errors.As(err, &insufficient) {
				rt.Fatalf("balance %d < cost %d must fail with InsufficientPointsError, got %v", balance, wantCost, err)
			}
			if insufficient.Shortage() != wantCost-balance {
				rt.Fatalf("shortage mismatch: want %d, got %d", wantCost-balance, insufficient.Shortage())
			}
		case currentTickets >= maxTickets:
			if !errors.Is(err, ErrNoRemainingTickets) {
				rt.Fatalf("no allowance left must fail with ErrNoRemainingTickets, got %v", err)
			}
		case currentTickets+ticketCount > maxTickets:
			var exceeded *MaxTicketsExceededError
			if !errors.As(err, &exceeded) {
				rt.Fatalf("over-limit request must fail with MaxTicketsExceededError, got %v", err)
			}
			if exceeded.Remaining() != maxTickets-currentTickets {
				rt.Fatalf("remaining mismatch: want %d, got %d", maxTickets-currentTickets, exceeded.Remaining())
			}
		default:
			if err != nil {
				rt.Fatalf("legal purchase rejected: %v", err)
			}
			if cost != wantCost {
				rt.Fatalf("cost mismatch: want %d, got %d", wantCost, cost)
			}
			if remaining != maxTickets-currentTickets {
				rt.Fatalf("remaining tickets mismatch: want %d, got %d", maxTickets-currentTickets, remaining)
			}
		}
	})
}

// An ended raffle rejects every purchase regardless of the other inputs.
func TestCheckPurchaseEndedProperty(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	rapid.Check(t, func(rt *rapid.T) {
		endedAgo := time.Duration(rapid.Int64Range(0, int64(30*24*time.Hour)).Draw(rt, "endedAgo"))
		raffle := &domain.Raffle{
			ID:                1,
			PointsPerTicket:   rapid.Int64Range(1, 1000).Draw(rt, "pointsPerTicket"),
			MaxTicketsPerUser: rapid.IntRange(1, 100).Draw(rt, "maxTickets"),
			EndDate:           now.Add(-endedAgo),
			Status:            domain.StatusActive,
		}
		user := &domain.UserBalance{
			WalletAddress: "0x1111111111111111111111111111111111111111",
			Points:        rapid.Int64Range(0, 1<<40).Draw(rt, "balance"),
		}

		_, _, err := CheckPurchase(raffle, user, 0, rapid.IntRange(1, 100).Draw(rt, "ticketCount"), now)
		if !errors.Is(err, ErrRaffleEnded) {
			rt.Fatalf("purchase on ended raffle must fail with ErrRaffleEnded, got %v", err)
		}
	})
}
