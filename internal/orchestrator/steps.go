package orchestrator

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
)

type StepID string

const (
	StepApprove           StepID = "APPROVE"
	StepCreateAndActivate StepID = "CREATE_AND_ACTIVATE"
	StepActivate          StepID = "ACTIVATE"
	StepUpdateDB          StepID = "UPDATE_DB"
	StepFetchParticipants StepID = "FETCH_PARTICIPANTS"
	StepEndRaffleOnChain  StepID = "END_RAFFLE_ONCHAIN"
)

type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepInProgress StepStatus = "in_progress"
	StepCompleted  StepStatus = "completed"
	StepFailed     StepStatus = "failed"
)

var ErrRunInProgress = errors.New("an orchestration run for this raffle is already in progress")

// Step is a transient state machine record driving progress reporting. It is
// never persisted beyond the run that owns it.
type Step struct {
	ID     StepID     `json:"id"`
	Name   string     `json:"name"`
	Status StepStatus `json:"status"`
	TxHash string     `json:"txHash,omitempty"`
	Error  string     `json:"error,omitempty"`
}

// Run is one orchestration attempt for one raffle: a fixed step sequence
// executed strictly in order. A step failure aborts the rest, leaving them
// pending.
type Run struct {
	ID       uuid.UUID
	RaffleID int64

	mu    sync.Mutex
	steps []Step
	done  bool
}

// NewRun builds a run over the given step sequence. Steps are stored as
// provided, so callers control the initial statuses.
func NewRun(raffleID int64, steps []Step) *Run {
	return &Run{
		ID:       uuid.New(),
		RaffleID: raffleID,
		steps:    steps,
	}
}

func (r *Run) start(id StepID) {
	r.setStatus(id, StepInProgress, "", "")
}

func (r *Run) complete(id StepID, txHash string) {
	r.setStatus(id, StepCompleted, txHash, "")
}

func (r *Run) fail(id StepID, txHash string, errText string) {
	r.setStatus(id, StepFailed, txHash, errText)
}

func (r *Run) setStatus(id StepID, status StepStatus, txHash, errText string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.steps {
		if r.steps[i].ID == id {
			r.steps[i].Status = status
			if txHash != "" {
				r.steps[i].TxHash = txHash
			}
			r.steps[i].Error = errText
			return
		}
	}
}

func (r *Run) finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.done = true
}

func (r *Run) Done() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

// Snapshot returns a copy of the step list safe for concurrent progress
// reads while the run executes.
func (r *Run) Snapshot() []Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	steps := make([]Step, len(r.steps))
	copy(steps, r.steps)
	return steps
}

// runRegistry enforces single-flight orchestration per raffle and keeps the
// latest run around for progress display after it finishes.
type runRegistry struct {
	runs *xsync.MapOf[int64, *Run]
}

func newRunRegistry() *runRegistry {
	return &runRegistry{runs: xsync.NewMapOf[int64, *Run]()}
}

func (g *runRegistry) begin(raffleID int64, steps []Step) (*Run, error) {
	run := NewRun(raffleID, steps)
	var conflict bool
	g.runs.Compute(raffleID, func(existing *Run, loaded bool) (*Run, bool) {
		if loaded && !existing.Done() {
			conflict = true
			return existing, false
		}
		return run, false
	})
	if conflict {
		return nil, ErrRunInProgress
	}
	return run, nil
}

func (g *runRegistry) get(raffleID int64) (*Run, bool) {
	return g.runs.Load(raffleID)
}
