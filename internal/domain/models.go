package domain

import "time"

type RaffleStatus string

const (
	StatusCreated          RaffleStatus = "CREATED"
	StatusActive           RaffleStatus = "ACTIVE"
	StatusCompleted        RaffleStatus = "COMPLETED"
	StatusCancelled        RaffleStatus = "CANCELLED"
	StatusBlockchainFailed RaffleStatus = "BLOCKCHAIN_FAILED"
)

// Raffle status moves only forward: CREATED -> ACTIVE -> {COMPLETED, CANCELLED},
// with BLOCKCHAIN_FAILED reachable from CREATED/ACTIVE and recoverable by a retry.
type Raffle struct {
	ID                   int64        `db:"id"`
	Title                string       `db:"title"`
	PointsPerTicket      int64        `db:"points_per_ticket"`
	MaxTicketsPerUser    int          `db:"max_tickets_per_user"`
	EndDate              time.Time    `db:"end_date"`
	Status               RaffleStatus `db:"status"`
	PrizeTokenAddress    string       `db:"prize_token_address"`
	PrizeNFTID           *int64       `db:"prize_nft_id"`
	PrizeAmount          *int64       `db:"prize_amount"`
	Winner               *string      `db:"winner"`
	BlockchainTxHash     *string      `db:"blockchain_tx_hash"`
	BlockchainDeployedAt *time.Time   `db:"blockchain_deployed_at"`
	BlockchainError      *string      `db:"blockchain_error"`
	BlockchainFailedAt   *time.Time   `db:"blockchain_failed_at"`
	CreatedAt            time.Time    `db:"created_at"`
}

// HasPrize reports whether the raffle carries a configured prize descriptor,
// a precondition for deployment.
func (r *Raffle) HasPrize() bool {
	return r.PrizeTokenAddress != "" && (r.PrizeNFTID != nil || r.PrizeAmount != nil)
}

func (r *Raffle) Ended(now time.Time) bool {
	return !now.Before(r.EndDate)
}

type UserBalance struct {
	WalletAddress string    `db:"wallet_address"`
	Points        int64     `db:"points"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// RaffleEntry rows are append-only; a wallet's ticket count for a raffle is the
// sum of its entries.
type RaffleEntry struct {
	ID            int64     `db:"id"`
	WalletAddress string    `db:"wallet_address"`
	RaffleID      int64     `db:"raffle_id"`
	TicketCount   int       `db:"ticket_count"`
	PointsSpent   int64     `db:"points_spent"`
	CreatedAt     time.Time `db:"created_at"`
}

// Participant is a per-wallet aggregation of a raffle's entries.
type Participant struct {
	WalletAddress string `db:"wallet_address"`
	TicketCount   int    `db:"ticket_count"`
	PointsSpent   int64  `db:"points_spent"`
}
