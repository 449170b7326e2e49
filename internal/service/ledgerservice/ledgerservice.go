package ledgerservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nftperks/raffleport/internal/cache"
	"github.com/nftperks/raffleport/internal/domain"
	"github.com/nftperks/raffleport/internal/events"
	"github.com/nftperks/raffleport/internal/pg"
	"github.com/nftperks/raffleport/internal/service/validationservice"
	"github.com/nftperks/raffleport/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

const checkViolationCode = "23514"

var (
	// ErrCostMismatch means the caller's confirmed cost no longer matches the
	// locked raffle price, which should be impossible while prices are
	// immutable.
	ErrCostMismatch = errors.New("points to deduct do not match raffle price")
	ErrInvalidGrant = errors.New("grant amount must be a positive integer")
	ErrDatabase     = errors.New("database error")
)

type RaffleRepo interface {
	GetByID(ctx context.Context, raffleID int64) (*domain.Raffle, error)
}

type BalanceRepo interface {
	GetByWalletForUpdate(ctx context.Context, wallet string) (*domain.UserBalance, error)
	Create(ctx context.Context, wallet string, points int64) (*domain.UserBalance, error)
	Debit(ctx context.Context, wallet string, points int64) (int64, error)
	Credit(ctx context.Context, wallet string, points int64) (int64, error)
}

type EntryRepo interface {
	Insert(ctx context.Context, entry *domain.RaffleEntry) (*domain.RaffleEntry, error)
	SumTickets(ctx context.Context, raffleID int64, wallet string) (int, error)
}

type PurchaseResult struct {
	EntryID          int64
	TicketsPurchased int
	TotalTickets     int
	PointsSpent      int64
	RemainingPoints  int64
}

// Service is the only legal path to mutate a balance or a raffle's ticket
// tally. All other components treat those rows as read-only.
type Service struct {
	raffleRepo  RaffleRepo
	balanceRepo BalanceRepo
	entryRepo   EntryRepo
	txManager   pg.TXManager
	bus         *events.Bus
	clock       cache.Clock
}

func New(raffleRepo RaffleRepo, balanceRepo BalanceRepo, entryRepo EntryRepo, txManager pg.TXManager, bus *events.Bus, clock cache.Clock) *Service {
	return &Service{
		raffleRepo:  raffleRepo,
		balanceRepo: balanceRepo,
		entryRepo:   entryRepo,
		txManager:   txManager,
		bus:         bus,
		clock:       clock,
	}
}

// Purchase inserts a raffle entry and debits the wallet's balance inside one
// storage transaction. The balance row is locked FOR UPDATE before the
// business rules are re-checked, so concurrent purchases against the same
// wallet serialize and an earlier Validate result is never trusted.
// pointsToDeduct is the cost the caller confirmed; it must equal the locked
// price times ticketCount.
func (s *Service) Purchase(ctx context.Context, wallet string, raffleID int64, ticketCount int, pointsToDeduct int64) (*PurchaseResult, error) {
	if ticketCount <= 0 {
		return nil, validationservice.ErrInvalidTicketCount
	}
	if !validate.IsWalletAddress(wallet) {
		return nil, validationservice.ErrInvalidWallet
	}
	wallet = validate.Normalize(wallet)

	var result PurchaseResult

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		raffle, err := s.raffleRepo.GetByID(ctx, raffleID)
		if err != nil {
			return s.storageError(err)
		}

		// Locks the wallet row; every concurrent purchase for this wallet
		// waits here until we commit or roll back.
		user, err := s.balanceRepo.GetByWalletForUpdate(ctx, wallet)
		if err != nil {
			return s.storageError(err)
		}

		currentTickets, err := s.entryRepo.SumTickets(ctx, raffleID, wallet)
		if err != nil {
			return s.storageError(err)
		}

		totalCost, _, err := validationservice.CheckPurchase(raffle, user, currentTickets, ticketCount, s.clock.Now())
		if err != nil {
			return err
		}
		if totalCost != pointsToDeduct {
			return ErrCostMismatch
		}

		entry, err := s.entryRepo.Insert(ctx, &domain.RaffleEntry{
			WalletAddress: wallet,
			RaffleID:      raffleID,
			TicketCount:   ticketCount,
			PointsSpent:   totalCost,
		})
		if err != nil {
			return s.storageError(err)
		}

		remaining, err := s.balanceRepo.Debit(ctx, wallet, totalCost)
		if err != nil {
			return s.debitError(err, totalCost, user.Points)
		}

		result = PurchaseResult{
			EntryID:          entry.ID,
			TicketsPurchased: ticketCount,
			TotalTickets:     currentTickets + ticketCount,
			PointsSpent:      totalCost,
			RemainingPoints:  remaining,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.bus.PublishBalanceChanged(events.BalanceChanged{
		WalletAddress: wallet,
		Points:        result.RemainingPoints,
	})

	zap.L().Info("purchase committed",
		zap.String("wallet", wallet),
		zap.Int64("raffleID", raffleID),
		zap.Int("tickets", result.TicketsPurchased),
		zap.Int64("pointsSpent", result.PointsSpent),
	)
	return &result, nil
}

// GrantPoints credits a wallet's balance, creating the balance row on the
// first grant. This is the admin top-up path; Purchase stays the only debit
// path. The row lock keeps a grant from racing a concurrent purchase.
func (s *Service) GrantPoints(ctx context.Context, wallet string, points int64) (*domain.UserBalance, error) {
	if points <= 0 {
		return nil, ErrInvalidGrant
	}
	if !validate.IsWalletAddress(wallet) {
		return nil, validationservice.ErrInvalidWallet
	}
	wallet = validate.Normalize(wallet)

	var balance domain.UserBalance

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.balanceRepo.GetByWalletForUpdate(ctx, wallet)
		if err != nil {
			return s.storageError(err)
		}
		if user == nil {
			created, err := s.balanceRepo.Create(ctx, wallet, points)
			if err != nil {
				return s.storageError(err)
			}
			balance = *created
			return nil
		}
		remaining, err := s.balanceRepo.Credit(ctx, wallet, points)
		if err != nil {
			return s.storageError(err)
		}
		balance = domain.UserBalance{WalletAddress: wallet, Points: remaining}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.bus.PublishBalanceChanged(events.BalanceChanged{
		WalletAddress: wallet,
		Points:        balance.Points,
	})

	zap.L().Info("points granted",
		zap.String("wallet", wallet),
		zap.Int64("points", points),
		zap.Int64("balance", balance.Points),
	)
	return &balance, nil
}

// debitError maps the points >= 0 check-constraint violation back to the
// insufficient-points business error. It is an expected outcome, not a crash:
// the constraint is the storage-level backstop of the locked re-check above.
func (s *Service) debitError(err error, required, available int64) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == checkViolationCode {
		return &validationservice.InsufficientPointsError{Required: required, Available: available}
	}
	return s.storageError(err)
}

func (s *Service) storageError(err error) error {
	zap.L().Error("purchase transaction storage fault", zap.Error(err))
	return fmt.Errorf("%w: %v", ErrDatabase, err)
}
