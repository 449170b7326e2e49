package dto

import "time"

type CreateRaffleRequestDTO struct {
	Title             string    `json:"title" example:"Genesis NFT Raffle"`
	PointsPerTicket   int64     `json:"points_per_ticket" example:"75"`
	MaxTicketsPerUser int       `json:"max_tickets_per_user" example:"10"`
	EndDate           time.Time `json:"end_date" example:"2026-09-30T00:00:00Z"`
	PrizeTokenAddress string    `json:"prize_token_address" example:"0x1af96a33ee18dc85a0071eb4d6b0a57449f57b5f"`
	PrizeNFTID        *int64    `json:"prize_nft_id,omitempty" example:"42"`
	PrizeAmount       *int64    `json:"prize_amount,omitempty"`
}

type RaffleResponseDTO struct {
	ID                int64      `json:"id" example:"1"`
	Title             string     `json:"title" example:"Genesis NFT Raffle"`
	PointsPerTicket   int64      `json:"points_per_ticket" example:"75"`
	MaxTicketsPerUser int        `json:"max_tickets_per_user" example:"10"`
	EndDate           time.Time  `json:"end_date"`
	Status            string     `json:"status" example:"ACTIVE"`
	PrizeTokenAddress string     `json:"prize_token_address"`
	PrizeNFTID        *int64     `json:"prize_nft_id,omitempty"`
	PrizeAmount       *int64     `json:"prize_amount,omitempty"`
	Winner            *string    `json:"winner,omitempty"`
	BlockchainTxHash  *string    `json:"blockchain_tx_hash,omitempty"`
	BlockchainError   *string    `json:"blockchain_error,omitempty"`
	DeployedAt        *time.Time `json:"blockchain_deployed_at,omitempty"`
}
