package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/nftperks/raffleport/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=deployment.go -destination=mock_orchestrator.go -package=orchestrator

var (
	ErrNotDeployable = errors.New("raffle is not in a deployable status")
	ErrNoPrize       = errors.New("raffle has no configured prize")
)

// Executor submits the lifecycle transactions. The skipped return is true
// when a ground-truth read showed the step's on-chain effect already landed
// during an earlier run.
type Executor interface {
	EnsurePrizeApproval(ctx context.Context, raffle *domain.Raffle) (txHash string, skipped bool, err error)
	CreateAndActivate(ctx context.Context, raffle *domain.Raffle) (txHash string, skipped bool, err error)
	EndRaffle(ctx context.Context, raffleID int64, participants []domain.Participant) (txHash string, winner *string, err error)
}

type RaffleService interface {
	Get(ctx context.Context, raffleID int64) (*domain.Raffle, error)
	MarkBlockchainDeployed(ctx context.Context, raffleID int64, txHash string) (*domain.Raffle, error)
	MarkBlockchainFailed(ctx context.Context, raffleID int64, errText string) (*domain.Raffle, error)
	RecordBlockchainError(ctx context.Context, raffleID int64, errText string) (*domain.Raffle, error)
	Complete(ctx context.Context, raffleID int64, winner *string, txHash string) (*domain.Raffle, error)
}

// DeploymentOrchestrator drives a CREATED raffle through escrow approval and
// on-chain activation. Strictly sequential, one run per raffle at a time, one
// in-flight transaction at a time.
type DeploymentOrchestrator struct {
	raffles  RaffleService
	executor Executor
	registry *runRegistry
}

func NewDeployment(raffles RaffleService, executor Executor) *DeploymentOrchestrator {
	return &DeploymentOrchestrator{
		raffles:  raffles,
		executor: executor,
		registry: newRunRegistry(),
	}
}

func deploymentSteps() []Step {
	return []Step{
		{ID: StepApprove, Name: "Approve prize escrow", Status: StepPending},
		{ID: StepCreateAndActivate, Name: "Create and activate raffle on-chain", Status: StepPending},
		{ID: StepActivate, Name: "Confirm activation", Status: StepPending},
		{ID: StepUpdateDB, Name: "Persist deployment state", Status: StepPending},
	}
}

// Deploy runs the full deployment sequence. A step failure aborts the
// remaining steps and flags the raffle BLOCKCHAIN_FAILED; the raffle is
// preserved so the admin can retry, which restarts from APPROVE with the
// executor skipping effects that already landed on-chain.
func (o *DeploymentOrchestrator) Deploy(ctx context.Context, raffleID int64) (*Run, error) {
	raffle, err := o.raffles.Get(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	if raffle.Status != domain.StatusCreated && raffle.Status != domain.StatusBlockchainFailed {
		return nil, ErrNotDeployable
	}
	if !raffle.HasPrize() {
		return nil, ErrNoPrize
	}

	run, err := o.registry.begin(raffleID, deploymentSteps())
	if err != nil {
		return nil, err
	}
	defer run.finish()

	zap.L().Info("deployment run started",
		zap.Int64("raffleID", raffleID), zap.String("runID", run.ID.String()))

	run.start(StepApprove)
	approveHash, skipped, err := o.executor.EnsurePrizeApproval(ctx, raffle)
	if err != nil {
		return run, o.abort(ctx, run, StepApprove, approveHash, err)
	}
	if skipped {
		zap.L().Info("approve step satisfied by earlier run", zap.Int64("raffleID", raffleID))
	}
	run.complete(StepApprove, approveHash)

	run.start(StepCreateAndActivate)
	createHash, skipped, err := o.executor.CreateAndActivate(ctx, raffle)
	if err != nil {
		return run, o.abort(ctx, run, StepCreateAndActivate, createHash, err)
	}
	if skipped && raffle.BlockchainTxHash != nil {
		createHash = *raffle.BlockchainTxHash
	}
	run.complete(StepCreateAndActivate, createHash)

	// No separate chain call; the create call above already activated the
	// raffle. This marks that effect final.
	run.start(StepActivate)
	run.complete(StepActivate, "")

	run.start(StepUpdateDB)
	if _, err := o.raffles.MarkBlockchainDeployed(ctx, raffleID, createHash); err != nil {
		return run, o.abort(ctx, run, StepUpdateDB, "", err)
	}
	run.complete(StepUpdateDB, "")

	zap.L().Info("deployment run completed",
		zap.Int64("raffleID", raffleID), zap.String("txHash", createHash))
	return run, nil
}

// Progress returns the latest deployment run for a raffle, if any.
func (o *DeploymentOrchestrator) Progress(raffleID int64) (*Run, bool) {
	return o.registry.get(raffleID)
}

func (o *DeploymentOrchestrator) abort(ctx context.Context, run *Run, step StepID, txHash string, stepErr error) error {
	run.fail(step, txHash, stepErr.Error())

	zap.L().Error("deployment step failed",
		zap.Int64("raffleID", run.RaffleID),
		zap.String("step", string(step)),
		zap.Error(stepErr))

	if _, markErr := o.raffles.MarkBlockchainFailed(ctx, run.RaffleID, stepErr.Error()); markErr != nil {
		zap.L().Error("failed to flag raffle as blockchain-failed",
			zap.Int64("raffleID", run.RaffleID), zap.Error(markErr))
	}
	return fmt.Errorf("deployment step %s failed: %w", step, stepErr)
}
