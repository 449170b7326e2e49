package balancerepo

import (
	"context"
	"errors"

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

func (r *Repository) GetByWallet(ctx context.Context, wallet string) (*domain.UserBalance, error) {
	query := `
        SELECT wallet_address, points, updated_at
        FROM user_balances
        WHERE wallet_address = $1
    `
	return r.scanOne(ctx, query, wallet)
}

// GetByWalletForUpdate takes a row lock on the wallet's balance. Must run
// inside a TXManager transaction; it is what serializes concurrent purchases
// against the same wallet.
func (r *Repository) GetByWalletForUpdate(ctx context.Context, wallet string) (*domain.UserBalance, error) {
	query := `
        SELECT wallet_address, points, updated_at
        FROM user_balances
        WHERE wallet_address = $1
        FOR UPDATE
    `
	return r.scanOne(ctx, query, wallet)
}

func (r *Repository) scanOne(ctx context.Context, query, wallet string) (*domain.UserBalance, error) {
	row := r.db.QueryRow(ctx, query, wallet)
	var balance domain.UserBalance
	err := row.Scan(&balance.WalletAddress, &balance.Points, &balance.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) Create(ctx context.Context, wallet string, points int64) (*domain.UserBalance, error) {
	query := `
        INSERT INTO user_balances (wallet_address, points)
        VALUES ($1, $2)
        RETURNING wallet_address, points, updated_at
    `
	row := r.db.QueryRow(ctx, query, wallet, points)
	var balance domain.UserBalance
	err := row.Scan(&balance.WalletAddress, &balance.Points, &balance.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to create user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Debit subtracts points from the wallet's balance and returns the remaining
// points. The points >= 0 check constraint is the storage-level backstop: a
// debit that would go negative fails with a pgconn constraint violation.
func (r *Repository) Debit(ctx context.Context, wallet string, points int64) (int64, error) {
	query := `
        UPDATE user_balances
        SET points = points - $2, updated_at = NOW()
        WHERE wallet_address = $1
        RETURNING points
    `
	var remaining int64
	err := r.db.QueryRow(ctx, query, wallet, points).Scan(&remaining)
	if err != nil {
		zap.L().Error("failed to debit user balance", zap.Error(err))
		return 0, err
	}
	return remaining, nil
}

func (r *Repository) Credit(ctx context.Context, wallet string, points int64) (int64, error) {
	query := `
        UPDATE user_balances
        SET points = points + $2, updated_at = NOW()
        WHERE wallet_address = $1
        RETURNING points
    `
	var remaining int64
	err := r.db.QueryRow(ctx, query, wallet, points).Scan(&remaining)
	if err != nil {
		zap.L().Error("failed to credit user balance", zap.Error(err))
		return 0, err
	}
	return remaining, nil
}
