package rafflerepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nftperks/raffleport/internal/domain"
	"github.com/nftperks/raffleport/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const raffleColumns = `id, title, points_per_ticket, max_tickets_per_user, end_date, status,
	prize_token_address, prize_nft_id, prize_amount, winner,
	blockchain_tx_hash, blockchain_deployed_at, blockchain_error, blockchain_failed_at, created_at`

func scanRaffle(row pgx.Row) (*domain.Raffle, error) {
	var r domain.Raffle
	err := row.Scan(
		&r.ID, &r.Title, &r.PointsPerTicket, &r.MaxTicketsPerUser, &r.EndDate, &r.Status,
		&r.PrizeTokenAddress, &r.PrizeNFTID, &r.PrizeAmount, &r.Winner,
		&r.BlockchainTxHash, &r.BlockchainDeployedAt, &r.BlockchainError, &r.BlockchainFailedAt, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Repository) Create(ctx context.Context, raffle *domain.Raffle) (*domain.Raffle, error) {
	query := `
        INSERT INTO raffles (title, points_per_ticket, max_tickets_per_user, end_date, status,
            prize_token_address, prize_nft_id, prize_amount)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + raffleColumns
	row := r.db.QueryRow(ctx, query,
		raffle.Title, raffle.PointsPerTicket, raffle.MaxTicketsPerUser, raffle.EndDate,
		domain.StatusCreated, raffle.PrizeTokenAddress, raffle.PrizeNFTID, raffle.PrizeAmount,
	)
	created, err := scanRaffle(row)
	if err != nil {
		zap.L().Error("failed to create raffle", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, raffleID int64) (*domain.Raffle, error) {
	query := `SELECT ` + raffleColumns + ` FROM raffles WHERE id = $1`
	raffle, err := scanRaffle(r.db.QueryRow(ctx, query, raffleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get raffle", zap.Error(err))
		return nil, err
	}
	return raffle, nil
}

func (r *Repository) ListByStatus(ctx context.Context, status domain.RaffleStatus) ([]domain.Raffle, error) {
	query := `SELECT ` + raffleColumns + ` FROM raffles WHERE status = $1 ORDER BY end_date ASC`
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		zap.L().Error("failed to list raffles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var raffles []domain.Raffle
	for rows.Next() {
		raffle, err := scanRaffle(rows)
		if err != nil {
			zap.L().Error("can't scan raffle row", zap.Error(err))
			return nil, err
		}
		raffles = append(raffles, *raffle)
	}
	return raffles, rows.Err()
}

// MarkDeployed moves a raffle to ACTIVE. The status guard in the WHERE clause
// keeps a stale caller from reviving a terminal raffle. An empty txHash leaves
// the stored hash untouched: a retry over an already-landed deployment may
// have no hash of its own to record.
func (r *Repository) MarkDeployed(ctx context.Context, raffleID int64, txHash string, deployedAt time.Time) (*domain.Raffle, error) {
	query := `
        UPDATE raffles
        SET status = $2, blockchain_tx_hash = COALESCE(NULLIF($3, ''), blockchain_tx_hash),
            blockchain_deployed_at = $4,
            blockchain_error = NULL, blockchain_failed_at = NULL
        WHERE id = $1 AND status IN ($5, $6)
        RETURNING ` + raffleColumns
	raffle, err := scanRaffle(r.db.QueryRow(ctx, query,
		raffleID, domain.StatusActive, txHash, deployedAt,
		domain.StatusCreated, domain.StatusBlockchainFailed,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to mark raffle deployed", zap.Error(err))
		return nil, err
	}
	return raffle, nil
}

func (r *Repository) MarkBlockchainFailed(ctx context.Context, raffleID int64, errText string, failedAt time.Time) (*domain.Raffle, error) {
	query := `
        UPDATE raffles
        SET status = $2, blockchain_error = $3, blockchain_failed_at = $4
        WHERE id = $1 AND status IN ($5, $6, $7)
        RETURNING ` + raffleColumns
	raffle, err := scanRaffle(r.db.QueryRow(ctx, query,
		raffleID, domain.StatusBlockchainFailed, errText, failedAt,
		domain.StatusCreated, domain.StatusActive, domain.StatusBlockchainFailed,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to mark raffle blockchain-failed", zap.Error(err))
		return nil, err
	}
	return raffle, nil
}

// RecordBlockchainError stores the error text from a failed ending run
// without moving the raffle out of its pre-ending status.
func (r *Repository) RecordBlockchainError(ctx context.Context, raffleID int64, errText string, failedAt time.Time) (*domain.Raffle, error) {
	query := `
        UPDATE raffles
        SET blockchain_error = $2, blockchain_failed_at = $3
        WHERE id = $1
        RETURNING ` + raffleColumns
	raffle, err := scanRaffle(r.db.QueryRow(ctx, query, raffleID, errText, failedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to record raffle blockchain error", zap.Error(err))
		return nil, err
	}
	return raffle, nil
}

// Complete closes an ACTIVE raffle. winner is nil when the raffle had no
// participants.
func (r *Repository) Complete(ctx context.Context, raffleID int64, winner *string, txHash string, endedAt time.Time) (*domain.Raffle, error) {
	query := `
        UPDATE raffles
        SET status = $2, winner = $3, blockchain_tx_hash = $4, blockchain_deployed_at = COALESCE(blockchain_deployed_at, $5)
        WHERE id = $1 AND status = $6
        RETURNING ` + raffleColumns
	raffle, err := scanRaffle(r.db.QueryRow(ctx, query,
		raffleID, domain.StatusCompleted, winner, txHash, endedAt, domain.StatusActive,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to complete raffle", zap.Error(err))
		return nil, err
	}
	return raffle, nil
}

func (r *Repository) Cancel(ctx context.Context, raffleID int64) (*domain.Raffle, error) {
	query := `
        UPDATE raffles
        SET status = $2
        WHERE id = $1 AND status IN ($3, $4)
        RETURNING ` + raffleColumns
	raffle, err := scanRaffle(r.db.QueryRow(ctx, query,
		raffleID, domain.StatusCancelled, domain.StatusCreated, domain.StatusActive,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to cancel raffle", zap.Error(err))
		return nil, err
	}
	return raffle, nil
}
