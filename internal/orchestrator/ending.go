package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/nftperks/raffleport/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ending.go -destination=mock_ending.go -package=orchestrator

var ErrNotEndable = errors.New("raffle is not in an endable status")

type ParticipantRepo interface {
	AggregateParticipants(ctx context.Context, raffleID int64) ([]domain.Participant, error)
}

// EndingSummary is returned by PrepareEnd for the confirmation screen that
// gates the irreversible end call.
type EndingSummary struct {
	RaffleID          int64
	TotalParticipants int
	TotalTickets      int
	Participants      []domain.Participant
}

// EndingOrchestrator closes an ACTIVE raffle: aggregate entries, run the
// winner-selection call on-chain, persist the outcome. A failure leaves the
// raffle in its pre-ending status with the error recorded.
type EndingOrchestrator struct {
	raffles  RaffleService
	entries  ParticipantRepo
	executor Executor
	registry *runRegistry
}

func NewEnding(raffles RaffleService, entries ParticipantRepo, executor Executor) *EndingOrchestrator {
	return &EndingOrchestrator{
		raffles:  raffles,
		entries:  entries,
		executor: executor,
		registry: newRunRegistry(),
	}
}

func endingSteps() []Step {
	return []Step{
		{ID: StepFetchParticipants, Name: "Aggregate participants", Status: StepPending},
		{ID: StepEndRaffleOnChain, Name: "Select winner and transfer prize on-chain", Status: StepPending},
		{ID: StepUpdateDB, Name: "Persist raffle outcome", Status: StepPending},
	}
}

// PrepareEnd aggregates participants without touching the chain so the admin
// can confirm the irreversible ending.
func (o *EndingOrchestrator) PrepareEnd(ctx context.Context, raffleID int64) (*EndingSummary, error) {
	raffle, err := o.raffles.Get(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	if raffle.Status != domain.StatusActive {
		return nil, ErrNotEndable
	}

	participants, err := o.entries.AggregateParticipants(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	return summarize(raffleID, participants), nil
}

func summarize(raffleID int64, participants []domain.Participant) *EndingSummary {
	summary := &EndingSummary{
		RaffleID:          raffleID,
		TotalParticipants: len(participants),
		Participants:      participants,
	}
	for _, p := range participants {
		summary.TotalTickets += p.TicketCount
	}
	return summary
}

// End runs the full ending sequence. Zero participants is a valid outcome:
// the raffle still closes, with no winner. The caller is responsible for the
// explicit confirmation step that makes this reachable.
func (o *EndingOrchestrator) End(ctx context.Context, raffleID int64) (*Run, error) {
	raffle, err := o.raffles.Get(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	if raffle.Status != domain.StatusActive {
		return nil, ErrNotEndable
	}

	run, err := o.registry.begin(raffleID, endingSteps())
	if err != nil {
		return nil, err
	}
	defer run.finish()

	zap.L().Info("ending run started",
		zap.Int64("raffleID", raffleID), zap.String("runID", run.ID.String()))

	run.start(StepFetchParticipants)
	participants, err := o.entries.AggregateParticipants(ctx, raffleID)
	if err != nil {
		return run, o.abort(ctx, run, StepFetchParticipants, "", err)
	}
	summary := summarize(raffleID, participants)
	run.complete(StepFetchParticipants, "")
	zap.L().Info("participants aggregated",
		zap.Int64("raffleID", raffleID),
		zap.Int("participants", summary.TotalParticipants),
		zap.Int("tickets", summary.TotalTickets))

	run.start(StepEndRaffleOnChain)
	endHash, winner, err := o.executor.EndRaffle(ctx, raffleID, participants)
	if err != nil {
		return run, o.abort(ctx, run, StepEndRaffleOnChain, endHash, err)
	}
	run.complete(StepEndRaffleOnChain, endHash)

	run.start(StepUpdateDB)
	if _, err := o.raffles.Complete(ctx, raffleID, winner, endHash); err != nil {
		return run, o.abort(ctx, run, StepUpdateDB, "", err)
	}
	run.complete(StepUpdateDB, "")

	if winner != nil {
		zap.L().Info("ending run completed",
			zap.Int64("raffleID", raffleID), zap.String("winner", *winner))
	} else {
		zap.L().Info("ending run completed with no participants",
			zap.Int64("raffleID", raffleID))
	}
	return run, nil
}

// Progress returns the latest ending run for a raffle, if any.
func (o *EndingOrchestrator) Progress(raffleID int64) (*Run, bool) {
	return o.registry.get(raffleID)
}

// abort records the failure on the step and on the raffle row, but leaves the
// raffle in its pre-ending status: unlike deployment there is nothing to roll
// forward, only a retry to offer.
func (o *EndingOrchestrator) abort(ctx context.Context, run *Run, step StepID, txHash string, stepErr error) error {
	run.fail(step, txHash, stepErr.Error())

	zap.L().Error("ending step failed",
		zap.Int64("raffleID", run.RaffleID),
		zap.String("step", string(step)),
		zap.Error(stepErr))

	if _, recErr := o.raffles.RecordBlockchainError(ctx, run.RaffleID, stepErr.Error()); recErr != nil {
		zap.L().Error("failed to record raffle blockchain error",
			zap.Int64("raffleID", run.RaffleID), zap.Error(recErr))
	}
	return fmt.Errorf("ending step %s failed: %w", step, stepErr)
}
