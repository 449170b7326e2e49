package raffleservice

import (
	"context"
	"errors"
	"time"

	"github.com/nftperks/raffleport/internal/cache"
	"github.com/nftperks/raffleport/internal/domain"
	"github.com/nftperks/raffleport/internal/events"
	"go.uber.org/zap"
)

//go:generate mockgen -source=raffleservice.go -destination=mock_raffleservice.go -package=raffleservice

var (
	ErrRaffleNotFound    = errors.New("raffle not found")
	ErrInvalidRaffle     = errors.New("invalid raffle definition")
	ErrInvalidTransition = errors.New("raffle status does not allow this transition")
)

type Repo interface {
	Create(ctx context.Context, raffle *domain.Raffle) (*domain.Raffle, error)
	GetByID(ctx context.Context, raffleID int64) (*domain.Raffle, error)
	ListByStatus(ctx context.Context, status domain.RaffleStatus) ([]domain.Raffle, error)
	MarkDeployed(ctx context.Context, raffleID int64, txHash string, deployedAt time.Time) (*domain.Raffle, error)
	MarkBlockchainFailed(ctx context.Context, raffleID int64, errText string, failedAt time.Time) (*domain.Raffle, error)
	RecordBlockchainError(ctx context.Context, raffleID int64, errText string, failedAt time.Time) (*domain.Raffle, error)
	Complete(ctx context.Context, raffleID int64, winner *string, txHash string, endedAt time.Time) (*domain.Raffle, error)
	Cancel(ctx context.Context, raffleID int64) (*domain.Raffle, error)
}

type Service struct {
	repo  Repo
	bus   *events.Bus
	clock cache.Clock
}

func New(repo Repo, bus *events.Bus, clock cache.Clock) *Service {
	return &Service{repo: repo, bus: bus, clock: clock}
}

func (s *Service) Create(ctx context.Context, raffle *domain.Raffle) (*domain.Raffle, error) {
	if raffle.Title == "" || raffle.PointsPerTicket <= 0 || raffle.MaxTicketsPerUser <= 0 {
		return nil, ErrInvalidRaffle
	}
	if raffle.EndDate.Before(s.clock.Now()) {
		return nil, ErrInvalidRaffle
	}
	created, err := s.repo.Create(ctx, raffle)
	if err != nil {
		zap.L().Error("failed to create raffle", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, raffleID int64) (*domain.Raffle, error) {
	raffle, err := s.repo.GetByID(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	if raffle == nil {
		return nil, ErrRaffleNotFound
	}
	return raffle, nil
}

func (s *Service) ListActive(ctx context.Context) ([]domain.Raffle, error) {
	return s.repo.ListByStatus(ctx, domain.StatusActive)
}

// MarkBlockchainDeployed persists a successful deployment run: status ACTIVE,
// the create-and-activate tx hash, and the deployment time.
func (s *Service) MarkBlockchainDeployed(ctx context.Context, raffleID int64, txHash string) (*domain.Raffle, error) {
	raffle, err := s.repo.MarkDeployed(ctx, raffleID, txHash, s.clock.Now())
	return s.transitioned(ctx, raffleID, raffle, err)
}

// MarkBlockchainFailed records a failed orchestration run. The raffle is
// preserved so an admin can retry.
func (s *Service) MarkBlockchainFailed(ctx context.Context, raffleID int64, errText string) (*domain.Raffle, error) {
	raffle, err := s.repo.MarkBlockchainFailed(ctx, raffleID, errText, s.clock.Now())
	return s.transitioned(ctx, raffleID, raffle, err)
}

// RecordBlockchainError stores the error from a failed ending run while the
// raffle keeps its pre-ending status.
func (s *Service) RecordBlockchainError(ctx context.Context, raffleID int64, errText string) (*domain.Raffle, error) {
	raffle, err := s.repo.RecordBlockchainError(ctx, raffleID, errText, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if raffle == nil {
		return nil, ErrRaffleNotFound
	}
	return raffle, nil
}

// Complete closes a raffle. winner is nil for the zero-participant outcome.
func (s *Service) Complete(ctx context.Context, raffleID int64, winner *string, txHash string) (*domain.Raffle, error) {
	raffle, err := s.repo.Complete(ctx, raffleID, winner, txHash, s.clock.Now())
	return s.transitioned(ctx, raffleID, raffle, err)
}

func (s *Service) Cancel(ctx context.Context, raffleID int64) (*domain.Raffle, error) {
	raffle, err := s.repo.Cancel(ctx, raffleID)
	return s.transitioned(ctx, raffleID, raffle, err)
}

// transitioned distinguishes "no such raffle" from "status guard rejected the
// update" after a guarded UPDATE matched no row, and publishes the status
// change on success.
func (s *Service) transitioned(ctx context.Context, raffleID int64, raffle *domain.Raffle, err error) (*domain.Raffle, error) {
	if err != nil {
		return nil, err
	}
	if raffle == nil {
		existing, getErr := s.repo.GetByID(ctx, raffleID)
		if getErr != nil {
			return nil, getErr
		}
		if existing == nil {
			return nil, ErrRaffleNotFound
		}
		zap.L().Warn("rejected raffle status transition",
			zap.Int64("raffleID", raffleID),
			zap.String("status", string(existing.Status)))
		return nil, ErrInvalidTransition
	}

	s.bus.PublishRaffleStatusChanged(events.RaffleStatusChanged{
		RaffleID: raffle.ID,
		Status:   raffle.Status,
	})
	return raffle, nil
}
