package validationservice

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel targets for errors.Is. The struct errors below carry the context a
// user-facing message needs (shortage amounts, limits) and match these
// sentinels through their Is methods.
var (
	ErrInvalidTicketCount = errors.New("ticket count must be a positive integer")
	ErrInvalidWallet      = errors.New("invalid wallet address")
	ErrRaffleNotFound     = errors.New("raffle not found")
	ErrRaffleEnded        = errors.New("raffle has ended")
	ErrUserNotFound       = errors.New("user has no balance record")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrNoRemainingTickets = errors.New("no remaining tickets for user")
	ErrMaxTicketsExceeded = errors.New("max tickets per user exceeded")
)

type RaffleEndedError struct {
	EndedAgo time.Duration
}

func (e *RaffleEndedError) Error() string {
	return fmt.Sprintf("raffle ended %s ago", e.EndedAgo.Round(time.Second))
}

func (e *RaffleEndedError) Is(target error) bool { return target == ErrRaffleEnded }

type InsufficientPointsError struct {
	Required  int64
	Available int64
}

func (e *InsufficientPointsError) Shortage() int64 { return e.Required - e.Available }

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points: need %d, have %d (short %d)", e.Required, e.Available, e.Shortage())
}

func (e *InsufficientPointsError) Is(target error) bool { return target == ErrInsufficientPoints }

type NoRemainingTicketsError struct {
	Limit int
}

func (e *NoRemainingTicketsError) Error() string {
	return fmt.Sprintf("ticket limit of %d already reached", e.Limit)
}

func (e *NoRemainingTicketsError) Is(target error) bool { return target == ErrNoRemainingTickets }

type MaxTicketsExceededError struct {
	Limit     int
	Current   int
	Requested int
}

func (e *MaxTicketsExceededError) Remaining() int { return e.Limit - e.Current }

func (e *MaxTicketsExceededError) Error() string {
	return fmt.Sprintf("requested %d tickets but only %d of %d remain", e.Requested, e.Remaining(), e.Limit)
}

func (e *MaxTicketsExceededError) Is(target error) bool { return target == ErrMaxTicketsExceeded }
