package dto

type ValidateRequestDTO struct {
	TicketCount int `json:"ticket_count" example:"4"`
}

type ValidationResponseDTO struct {
	TotalCost        int64 `json:"total_cost" example:"300"`
	RemainingPoints  int64 `json:"remaining_points" example:"200"`
	RemainingTickets int   `json:"remaining_tickets" example:"6"`
	CurrentTickets   int   `json:"current_tickets" example:"0"`
}

type PurchaseRequestDTO struct {
	TicketCount    int   `json:"ticket_count" example:"4"`
	PointsToDeduct int64 `json:"points_to_deduct" example:"300"`
}

type PurchaseResponseDTO struct {
	EntryID          int64 `json:"entry_id" example:"17"`
	TicketsPurchased int   `json:"tickets_purchased" example:"4"`
	TotalTickets     int   `json:"total_tickets" example:"4"`
	PointsSpent      int64 `json:"points_spent" example:"300"`
	RemainingPoints  int64 `json:"remaining_points" example:"200"`
}
