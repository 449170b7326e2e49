package entryrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/nftperks/raffleport/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	query := regexp.QuoteMeta(`
        INSERT INTO raffle_entries (wallet_address, raffle_id, ticket_count, points_spent)
        VALUES ($1, $2, $3, $4)
        RETURNING id, wallet_address, raffle_id, ticket_count, points_spent, created_at
    `)

	tests := []struct {
		name      string
		entry     *domain.RaffleEntry
		mockSetup func()
		expectErr bool
		result    *domain.RaffleEntry
	}{
		{
			name: "Inserts entry and returns generated fields",
			entry: &domain.RaffleEntry{
				WalletAddress: "0x1111111111111111111111111111111111111111",
				RaffleID:      7,
				TicketCount:   4,
				PointsSpent:   300,
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "wallet_address", "raffle_id", "ticket_count", "points_spent", "created_at"}).
					AddRow(int64(17), "0x1111111111111111111111111111111111111111", int64(7), 4, int64(300), createdAt)
				mock.ExpectQuery(query).
					WithArgs("0x1111111111111111111111111111111111111111", int64(7), 4, int64(300)).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.RaffleEntry{
				ID:            17,
				WalletAddress: "0x1111111111111111111111111111111111111111",
				RaffleID:      7,
				TicketCount:   4,
				PointsSpent:   300,
				CreatedAt:     createdAt,
			},
		},
		{
			name: "Database error",
			entry: &domain.RaffleEntry{
				WalletAddress: "0x1111111111111111111111111111111111111111",
				RaffleID:      7,
				TicketCount:   4,
				PointsSpent:   300,
			},
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("0x1111111111111111111111111111111111111111", int64(7), 4, int64(300)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Insert(context.Background(), tt.entry)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_SumTickets(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT COALESCE(SUM(ticket_count), 0)
        FROM raffle_entries
        WHERE raffle_id = $1 AND wallet_address = $2
    `)

	tests := []struct {
		name      string
		raffleID  int64
		wallet    string
		mockSetup func()
		expectErr bool
		total     int
	}{
		{
			name:     "Sums tickets across entries",
			raffleID: 7,
			wallet:   "0x1111111111111111111111111111111111111111",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"coalesce"}).AddRow(6)
				mock.ExpectQuery(query).
					WithArgs(int64(7), "0x1111111111111111111111111111111111111111").
					WillReturnRows(rows)
			},
			expectErr: false,
			total:     6,
		},
		{
			name:     "Wallet with no entries sums to zero",
			raffleID: 7,
			wallet:   "0x2222222222222222222222222222222222222222",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"coalesce"}).AddRow(0)
				mock.ExpectQuery(query).
					WithArgs(int64(7), "0x2222222222222222222222222222222222222222").
					WillReturnRows(rows)
			},
			expectErr: false,
			total:     0,
		},
		{
			name:     "Database error",
			raffleID: 7,
			wallet:   "0x1111111111111111111111111111111111111111",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(int64(7), "0x1111111111111111111111111111111111111111").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			total:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			total, err := repo.SumTickets(context.Background(), tt.raffleID, tt.wallet)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.total, total)
		})
	}
}

func TestRepository_AggregateParticipants(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT wallet_address, SUM(ticket_count)::int, SUM(points_spent)
        FROM raffle_entries
        WHERE raffle_id = $1
        GROUP BY wallet_address
        ORDER BY SUM(ticket_count) DESC, wallet_address ASC
    `)

	tests := []struct {
		name      string
		raffleID  int64
		mockSetup func()
		expectErr bool
		result    []domain.Participant
	}{
		{
			name:     "Aggregates per wallet ordered by tickets",
			raffleID: 7,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"wallet_address", "sum", "sum"}).
					AddRow("0x1111111111111111111111111111111111111111", 6, int64(450)).
					AddRow("0x2222222222222222222222222222222222222222", 2, int64(150))
				mock.ExpectQuery(query).WithArgs(int64(7)).WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.Participant{
				{WalletAddress: "0x1111111111111111111111111111111111111111", TicketCount: 6, PointsSpent: 450},
				{WalletAddress: "0x2222222222222222222222222222222222222222", TicketCount: 2, PointsSpent: 150},
			},
		},
		{
			name:     "Raffle with no entries returns empty",
			raffleID: 8,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"wallet_address", "sum", "sum"})
				mock.ExpectQuery(query).WithArgs(int64(8)).WillReturnRows(rows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:     "Database error",
			raffleID: 7,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(7)).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.AggregateParticipants(context.Background(), tt.raffleID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}
