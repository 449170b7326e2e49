package raffles

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nftperks/raffleport/internal/domain"
	"github.com/nftperks/raffleport/internal/dto"
	"github.com/nftperks/raffleport/internal/service/ledgerservice"
	"github.com/nftperks/raffleport/internal/service/raffleservice"
	"github.com/nftperks/raffleport/internal/service/validationservice"
	"github.com/nftperks/raffleport/pkg/auth"
	"github.com/nftperks/raffleport/pkg/utils"
)

//go:generate mockgen -source=raffles.go -destination=mock_raffles.go -package=raffles

type ValidationService interface {
	Validate(ctx context.Context, raffleID int64, ticketCount int, wallet string) (*validationservice.ValidationResult, error)
}

type LedgerService interface {
	Purchase(ctx context.Context, wallet string, raffleID int64, ticketCount int, pointsToDeduct int64) (*ledgerservice.PurchaseResult, error)
}

type RaffleService interface {
	Get(ctx context.Context, raffleID int64) (*domain.Raffle, error)
	ListActive(ctx context.Context) ([]domain.Raffle, error)
}

type RaffleHandler struct {
	validationService ValidationService
	ledgerService     LedgerService
	raffleService     RaffleService
}

func New(validationService ValidationService, ledgerService LedgerService, raffleService RaffleService) *RaffleHandler {
	return &RaffleHandler{
		validationService: validationService,
		ledgerService:     ledgerService,
		raffleService:     raffleService,
	}
}

// ListActive godoc
//
//	@Summary		List active raffles
//	@Tags			Raffles
//	@Produce		json
//	@Success		200	{array}		dto.RaffleResponseDTO
//	@Failure		500	{object}	utils.Response
//	@Router			/api/raffles [get]
func (h *RaffleHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	raffles, err := h.raffleService.ListActive(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.RaffleResponseDTO, len(raffles))
	for i := range raffles {
		response[i] = toRaffleDTO(&raffles[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary		Get a raffle by id
//	@Tags			Raffles
//	@Produce		json
//	@Param			id	path		int	true	"Raffle ID"
//	@Success		200	{object}	dto.RaffleResponseDTO
//	@Failure		404	{object}	utils.Response
//	@Failure		500	{object}	utils.Response
//	@Router			/api/raffles/{id} [get]
func (h *RaffleHandler) Get(w http.ResponseWriter, r *http.Request) {
	raffleID, ok := raffleIDParam(w, r)
	if !ok {
		return
	}

	raffle, err := h.raffleService.Get(r.Context(), raffleID)
	if err != nil {
		if errors.Is(err, raffleservice.ErrRaffleNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Raffle not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRaffleDTO(raffle))
}

// Validate godoc
//
//	@Summary		Check whether a ticket purchase would be legal
//	@Description	Fast-fail feedback only; the purchase endpoint re-checks everything atomically.
//	@Tags			Raffles
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Raffle ID"
//	@Param			request	body		dto.ValidateRequestDTO	true	"Requested ticket count"
//	@Success		200		{object}	dto.ValidationResponseDTO
//	@Failure		400		{object}	utils.Response
//	@Failure		402		{object}	utils.Response
//	@Failure		404		{object}	utils.Response
//	@Failure		409		{object}	utils.Response
//	@Failure		410		{object}	utils.Response
//	@Router			/api/raffles/{id}/validate [post]
func (h *RaffleHandler) Validate(w http.ResponseWriter, r *http.Request) {
	raffleID, ok := raffleIDParam(w, r)
	if !ok {
		return
	}
	wallet := r.Context().Value(auth.WalletKey).(string)

	var req dto.ValidateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.validationService.Validate(r.Context(), raffleID, req.TicketCount, wallet)
	if err != nil {
		respondPurchaseError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ValidationResponseDTO{
		TotalCost:        result.TotalCost,
		RemainingPoints:  result.RemainingPoints,
		RemainingTickets: result.RemainingTickets,
		CurrentTickets:   result.CurrentTickets,
	})
}

// Purchase godoc
//
//	@Summary		Buy raffle tickets with points
//	@Description	The authoritative mutation: re-validates under a row lock and commits the entry and debit atomically.
//	@Tags			Raffles
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Raffle ID"
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase payload"
//	@Success		200		{object}	dto.PurchaseResponseDTO
//	@Failure		400		{object}	utils.Response
//	@Failure		402		{object}	utils.Response
//	@Failure		404		{object}	utils.Response
//	@Failure		409		{object}	utils.Response
//	@Failure		410		{object}	utils.Response
//	@Failure		500		{object}	utils.Response
//	@Router			/api/raffles/{id}/purchase [post]
func (h *RaffleHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	raffleID, ok := raffleIDParam(w, r)
	if !ok {
		return
	}
	wallet := r.Context().Value(auth.WalletKey).(string)

	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.ledgerService.Purchase(r.Context(), wallet, raffleID, req.TicketCount, req.PointsToDeduct)
	if err != nil {
		respondPurchaseError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		EntryID:          result.EntryID,
		TicketsPurchased: result.TicketsPurchased,
		TotalTickets:     result.TotalTickets,
		PointsSpent:      result.PointsSpent,
		RemainingPoints:  result.RemainingPoints,
	})
}

func respondPurchaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, validationservice.ErrInvalidTicketCount),
		errors.Is(err, validationservice.ErrInvalidWallet):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, validationservice.ErrRaffleNotFound),
		errors.Is(err, validationservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, validationservice.ErrRaffleEnded):
		utils.RespondWithError(w, http.StatusGone, err.Error())
	case errors.Is(err, validationservice.ErrInsufficientPoints):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, validationservice.ErrNoRemainingTickets),
		errors.Is(err, validationservice.ErrMaxTicketsExceeded),
		errors.Is(err, ledgerservice.ErrCostMismatch):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func raffleIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raffleID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || raffleID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid raffle id")
		return 0, false
	}
	return raffleID, true
}

func toRaffleDTO(raffle *domain.Raffle) dto.RaffleResponseDTO {
	return dto.RaffleResponseDTO{
		ID:                raffle.ID,
		Title:             raffle.Title,
		PointsPerTicket:   raffle.PointsPerTicket,
		MaxTicketsPerUser: raffle.MaxTicketsPerUser,
		EndDate:           raffle.EndDate,
		Status:            string(raffle.Status),
		PrizeTokenAddress: raffle.PrizeTokenAddress,
		PrizeNFTID:        raffle.PrizeNFTID,
		PrizeAmount:       raffle.PrizeAmount,
		Winner:            raffle.Winner,
		BlockchainTxHash:  raffle.BlockchainTxHash,
		BlockchainError:   raffle.BlockchainError,
		DeployedAt:        raffle.BlockchainDeployedAt,
	}
}
