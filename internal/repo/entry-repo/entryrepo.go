package entryrepo

import (
	"context"

	"github.com/nftperks/raffleport/internal/domain"
	"github.com/nftperks/raffleport/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Insert(ctx context.Context, entry *domain.RaffleEntry) (*domain.RaffleEntry, error) {
	query := `
        INSERT INTO raffle_entries (wallet_address, raffle_id, ticket_count, points_spent)
        VALUES ($1, $2, $3, $4)
        RETURNING id, wallet_address, raffle_id, ticket_count, points_spent, created_at
    `
	row := r.db.QueryRow(ctx, query, entry.WalletAddress, entry.RaffleID, entry.TicketCount, entry.PointsSpent)
	var created domain.RaffleEntry
	err := row.Scan(&created.ID, &created.WalletAddress, &created.RaffleID, &created.TicketCount, &created.PointsSpent, &created.CreatedAt)
	if err != nil {
		zap.L().Error("failed to insert raffle entry", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

// SumTickets returns the wallet's current ticket count for a raffle. A wallet
// with no entries sums to zero.
func (r *Repository) SumTickets(ctx context.Context, raffleID int64, wallet string) (int, error) {
	query := `
        SELECT COALESCE(SUM(ticket_count), 0)
        FROM raffle_entries
        WHERE raffle_id = $1 AND wallet_address = $2
    `
	var total int
	err := r.db.QueryRow(ctx, query, raffleID, wallet).Scan(&total)
	if err != nil {
		zap.L().Error("failed to sum raffle tickets", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// AggregateParticipants groups a raffle's entries by wallet, summing tickets
// and points. Ordered by ticket count so the largest holders come first.
func (r *Repository) AggregateParticipants(ctx context.Context, raffleID int64) ([]domain.Participant, error) {
	query := `
        SELECT wallet_address, SUM(ticket_count)::int, SUM(points_spent)
        FROM raffle_entries
        WHERE raffle_id = $1
        GROUP BY wallet_address
        ORDER BY SUM(ticket_count) DESC, wallet_address ASC
    `
	rows, err := r.db.Query(ctx, query, raffleID)
	if err != nil {
		zap.L().Error("failed to aggregate participants", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var participants []domain.Participant
	for rows.Next() {
		var p domain.Participant
		if err := rows.Scan(&p.WalletAddress, &p.TicketCount, &p.PointsSpent); err != nil {
			zap.L().Error("can't scan participant row", zap.Error(err))
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}
