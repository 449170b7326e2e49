package validationservice

import (
	"context"
	"time"

	"github.com/nftperks/raffleport/internal/cache"
	"github.com/nftperks/raffleport/internal/domain"
	"github.com/nftperks/raffleport/pkg/validate"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=validationservice.go -destination=mock_validationservice.go -package=validationservice

type RaffleRepo interface {
	GetByID(ctx context.Context, raffleID int64) (*domain.Raffle, error)
}

type BalanceRepo interface {
	GetByWallet(ctx context.Context, wallet string) (*domain.UserBalance, error)
}

type EntryRepo interface {
	SumTickets(ctx context.Context, raffleID int64, wallet string) (int, error)
}

// ValidationResult is advisory for UI feedback only. It is not authorization
// to mutate: another purchase may land between this check and a later write,
// so the ledger re-checks everything under lock.
type ValidationResult struct {
	Raffle           *domain.Raffle
	User             *domain.UserBalance
	CurrentTickets   int
	TotalCost        int64
	RemainingTickets int
	RemainingPoints  int64
}

type Service struct {
	raffleRepo   RaffleRepo
	balanceRepo  BalanceRepo
	entryRepo    EntryRepo
	balanceCache *cache.BalanceCache
	clock        cache.Clock
}

func New(raffleRepo RaffleRepo, balanceRepo BalanceRepo, entryRepo EntryRepo, balanceCache *cache.BalanceCache, clock cache.Clock) *Service {
	return &Service{
		raffleRepo:   raffleRepo,
		balanceRepo:  balanceRepo,
		entryRepo:    entryRepo,
		balanceCache: balanceCache,
		clock:        clock,
	}
}

// Validate checks whether a purchase would be legal and computes its cost.
// Pure read, no mutation. The three reads are independent and run in
// parallel; rule checks then run in a fixed order so callers always get the
// most actionable failure first.
func (s *Service) Validate(ctx context.Context, raffleID int64, ticketCount int, wallet string) (*ValidationResult, error) {
	if ticketCount <= 0 {
		return nil, ErrInvalidTicketCount
	}
	if !validate.IsWalletAddress(wallet) {
		return nil, ErrInvalidWallet
	}
	wallet = validate.Normalize(wallet)

	var (
		raffle         *domain.Raffle
		user           *domain.UserBalance
		currentTickets int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		raffle, err = s.raffleRepo.GetByID(gctx, raffleID)
		return err
	})
	g.Go(func() error {
		var err error
		user, err = s.getBalance(gctx, wallet)
		return err
	})
	g.Go(func() error {
		var err error
		currentTickets, err = s.entryRepo.SumTickets(gctx, raffleID, wallet)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("validation reads failed", zap.Error(err))
		return nil, err
	}

	totalCost, remainingTickets, err := CheckPurchase(raffle, user, currentTickets, ticketCount, s.clock.Now())
	if err != nil {
		return nil, err
	}

	// Both remaining values describe the state after the requested purchase,
	// so the caller can render "you will have N points and M tickets left".
	return &ValidationResult{
		Raffle:           raffle,
		User:             user,
		CurrentTickets:   currentTickets,
		TotalCost:        totalCost,
		RemainingTickets: remainingTickets - ticketCount,
		RemainingPoints:  user.Points - totalCost,
	}, nil
}

func (s *Service) getBalance(ctx context.Context, wallet string) (*domain.UserBalance, error) {
	if points, ok := s.balanceCache.Get(wallet); ok {
		return &domain.UserBalance{WalletAddress: wallet, Points: points}, nil
	}
	user, err := s.balanceRepo.GetByWallet(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if user != nil {
		s.balanceCache.Set(wallet, user.Points)
	}
	return user, nil
}

// CheckPurchase applies the purchase business rules against the supplied
// state and returns the total cost and remaining ticket allowance. The ledger
// calls this same function with freshly locked values, so the check-then-act
// paths cannot drift apart.
func CheckPurchase(raffle *domain.Raffle, user *domain.UserBalance, currentTickets, ticketCount int, now time.Time) (int64, int, error) {
	if raffle == nil {
		return 0, 0, ErrRaffleNotFound
	}
	if raffle.Ended(now) {
		return 0, 0, &RaffleEndedError{EndedAgo: now.Sub(raffle.EndDate)}
	}

	totalCost := raffle.PointsPerTicket * int64(ticketCount)

	if user == nil {
		return 0, 0, ErrUserNotFound
	}
	if user.Points < totalCost {
		return 0, 0, &InsufficientPointsError{Required: totalCost, Available: user.Points}
	}

	remainingTickets := raffle.MaxTicketsPerUser - currentTickets
	if remainingTickets <= 0 {
		return 0, 0, &NoRemainingTicketsError{Limit: raffle.MaxTicketsPerUser}
	}
	if ticketCount > remainingTickets || currentTickets+ticketCount > raffle.MaxTicketsPerUser {
		return 0, 0, &MaxTicketsExceededError{
			Limit:     raffle.MaxTicketsPerUser,
			Current:   currentTickets,
			Requested: ticketCount,
		}
	}

	return totalCost, remainingTickets, nil
}
