package dto

type StepDTO struct {
	ID     string `json:"id" example:"APPROVE"`
	Name   string `json:"name" example:"Approve prize escrow"`
	Status string `json:"status" example:"completed"`
	TxHash string `json:"tx_hash,omitempty"`
	Error  string `json:"error,omitempty"`
}

type OrchestrationResponseDTO struct {
	RunID  string    `json:"run_id"`
	Raffle int64     `json:"raffle_id"`
	Steps  []StepDTO `json:"steps"`
}

type ParticipantDTO struct {
	WalletAddress string `json:"wallet_address"`
	TicketCount   int    `json:"ticket_count"`
	PointsSpent   int64  `json:"points_spent"`
}

type EndingSummaryDTO struct {
	RaffleID          int64            `json:"raffle_id"`
	TotalParticipants int              `json:"total_participants"`
	TotalTickets      int              `json:"total_tickets"`
	Participants      []ParticipantDTO `json:"participants"`
}

type MarkFailedRequestDTO struct {
	Error string `json:"error"`
}

type MarkDeployedRequestDTO struct {
	TxHash string `json:"tx_hash"`
}

type GrantPointsRequestDTO struct {
	Points int64 `json:"points" example:"500"`
}

type BalanceResponseDTO struct {
	WalletAddress string `json:"wallet_address"`
	Points        int64  `json:"points" example:"500"`
}
