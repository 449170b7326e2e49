package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nftperks/raffleport/internal/domain"
	"github.com/nftperks/raffleport/internal/dto"
	"github.com/nftperks/raffleport/internal/orchestrator"
	"github.com/nftperks/raffleport/internal/service/ledgerservice"
	"github.com/nftperks/raffleport/internal/service/raffleservice"
	"github.com/nftperks/raffleport/internal/service/validationservice"
	"github.com/nftperks/raffleport/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

type RaffleService interface {
	Create(ctx context.Context, raffle *domain.Raffle) (*domain.Raffle, error)
	Cancel(ctx context.Context, raffleID int64) (*domain.Raffle, error)
	MarkBlockchainDeployed(ctx context.Context, raffleID int64, txHash string) (*domain.Raffle, error)
	MarkBlockchainFailed(ctx context.Context, raffleID int64, errText string) (*domain.Raffle, error)
}

type LedgerService interface {
	GrantPoints(ctx context.Context, wallet string, points int64) (*domain.UserBalance, error)
}

type Deployment interface {
	Deploy(ctx context.Context, raffleID int64) (*orchestrator.Run, error)
	Progress(raffleID int64) (*orchestrator.Run, bool)
}

type Ending interface {
	PrepareEnd(ctx context.Context, raffleID int64) (*orchestrator.EndingSummary, error)
	End(ctx context.Context, raffleID int64) (*orchestrator.Run, error)
	Progress(raffleID int64) (*orchestrator.Run, bool)
}

type AdminHandler struct {
	raffleService RaffleService
	ledgerService LedgerService
	deployment    Deployment
	ending        Ending
}

func New(raffleService RaffleService, ledgerService LedgerService, deployment Deployment, ending Ending) *AdminHandler {
	return &AdminHandler{
		raffleService: raffleService,
		ledgerService: ledgerService,
		deployment:    deployment,
		ending:        ending,
	}
}

// CreateRaffle godoc
//
//	@Summary		Define a new raffle
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateRaffleRequestDTO	true	"Raffle definition"
//	@Success		201		{object}	dto.RaffleResponseDTO
//	@Failure		400		{object}	utils.Response
//	@Failure		500		{object}	utils.Response
//	@Router			/api/admin/raffles [post]
func (h *AdminHandler) CreateRaffle(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRaffleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	raffle, err := h.raffleService.Create(r.Context(), &domain.Raffle{
		Title:             req.Title,
		PointsPerTicket:   req.PointsPerTicket,
		MaxTicketsPerUser: req.MaxTicketsPerUser,
		EndDate:           req.EndDate,
		PrizeTokenAddress: req.PrizeTokenAddress,
		PrizeNFTID:        req.PrizeNFTID,
		PrizeAmount:       req.PrizeAmount,
	})
	if err != nil {
		if errors.Is(err, raffleservice.ErrInvalidRaffle) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toRaffleDTO(raffle))
}

// Deploy godoc
//
//	@Summary		Deploy a raffle on-chain
//	@Description	Runs escrow approval and create+activate. The step list is returned even when a step fails.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Raffle ID"
//	@Success		200	{object}	dto.OrchestrationResponseDTO
//	@Failure		404	{object}	utils.Response
//	@Failure		409	{object}	utils.Response
//	@Failure		422	{object}	utils.Response
//	@Failure		502	{object}	dto.OrchestrationResponseDTO
//	@Router			/api/admin/raffles/{id}/deploy [post]
func (h *AdminHandler) Deploy(w http.ResponseWriter, r *http.Request) {
	raffleID, ok := raffleIDParam(w, r)
	if !ok {
		return
	}

	run, err := h.deployment.Deploy(r.Context(), raffleID)
	h.respondRun(w, run, err)
}

// DeploymentProgress godoc
//
//	@Summary		Latest deployment run step list
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Raffle ID"
//	@Success		200	{object}	dto.OrchestrationResponseDTO
//	@Failure		404	{object}	utils.Response
//	@Router			/api/admin/raffles/{id}/deployment [get]
func (h *AdminHandler) DeploymentProgress(w http.ResponseWriter, r *http.Request) {
	raffleID, ok := raffleIDParam(w, r)
	if !ok {
		return
	}

	run, found := h.deployment.Progress(raffleID)
	if !found {
		utils.RespondWithError(w, http.StatusNotFound, "No deployment run for this raffle")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRunDTO(run))
}

// PrepareEnd godoc
//
//	@Summary		Aggregate participants before ending
//	@Description	Read-only confirmation data for the irreversible ending call.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Raffle ID"
//	@Success		200	{object}	dto.EndingSummaryDTO
//	@Failure		404	{object}	utils.Response
//	@Failure		409	{object}	utils.Response
//	@Router			/api/admin/raffles/{id}/prepare-end [post]
func (h *AdminHandler) PrepareEnd(w http.ResponseWriter, r *http.Request) {
	raffleID, ok := raffleIDParam(w, r)
	if !ok {
		return
	}

	summary, err := h.ending.PrepareEnd(r.Context(), raffleID)
	if err != nil {
		h.respondOrchestratorError(w, err)
		return
	}

	participants := make([]dto.ParticipantDTO, len(summary.Participants))
	for i, p := range summary.Participants {
		participants[i] = dto.ParticipantDTO{
			WalletAddress: p.WalletAddress,
			TicketCount:   p.TicketCount,
			PointsSpent:   p.PointsSpent,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EndingSummaryDTO{
		RaffleID:          summary.RaffleID,
		TotalParticipants: summary.TotalParticipants,
		TotalTickets:      summary.TotalTickets,
		Participants:      participants,
	})
}

// End godoc
//
//	@Summary		End a raffle on-chain
//	@Description	Winner selection and prize transfer. Destructive and irreversible; requires prior confirmation via prepare-end.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Raffle ID"
//	@Success		200	{object}	dto.OrchestrationResponseDTO
//	@Failure		404	{object}	utils.Response
//	@Failure		409	{object}	utils.Response
//	@Failure		502	{object}	dto.OrchestrationResponseDTO
//	@Router			/api/admin/raffles/{id}/end [post]
func (h *AdminHandler) End(w http.ResponseWriter, r *http.Request) {
	raffleID, ok := raffleIDParam(w, r)
	if !ok {
		return
	}

	run, err := h.ending.End(r.Context(), raffleID)
	h.respondRun(w, run, err)
}

// EndingProgress godoc
//
//	@Summary		Latest ending run step list
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Raffle ID"
//	@Success		200	{object}	dto.OrchestrationResponseDTO
//	@Failure		404	{object}	utils.Response
//	@Router			/api/admin/raffles/{id}/ending [get]
func (h *AdminHandler) EndingProgress(w http.ResponseWriter, r *http.Request) {
	raffleID, ok := raffleIDParam(w, r)
	if !ok {
		return
	}

	run, found := h.ending.Progress(raffleID)
	if !found {
		utils.RespondWithError(w, http.StatusNotFound, "No ending run for this raffle")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRunDTO(run))
}

// Cancel godoc
//
//	@Summary		Cancel a raffle before it completes
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Raffle ID"
//	@Success		200	{object}	dto.RaffleResponseDTO
//	@Failure		404	{object}	utils.Response
//	@Failure		409	{object}	utils.Response
//	@Router			/api/admin/raffles/{id}/cancel [post]
func (h *AdminHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	raffleID, ok := raffleIDParam(w, r)
	if !ok {
		return
	}

	raffle, err := h.raffleService.Cancel(r.Context(), raffleID)
	if err != nil {
		h.respondOrchestratorError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRaffleDTO(raffle))
}

// MarkFailed godoc
//
//	@Summary		Manually record a blockchain failure
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Raffle ID"
//	@Param			request	body		dto.MarkFailedRequestDTO	true	"Error description"
//	@Success		200		{object}	dto.RaffleResponseDTO
//	@Failure		404		{object}	utils.Response
//	@Router			/api/admin/raffles/{id}/mark-failed [post]
func (h *AdminHandler) MarkFailed(w http.ResponseWriter, r *http.Request) {
	raffleID, ok := raffleIDParam(w, r)
	if !ok {
		return
	}

	var req dto.MarkFailedRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	raffle, err := h.raffleService.MarkBlockchainFailed(r.Context(), raffleID, req.Error)
	if err != nil {
		h.respondOrchestratorError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRaffleDTO(raffle))
}

// MarkDeployed godoc
//
//	@Summary		Manually record a successful deployment
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Raffle ID"
//	@Param			request	body		dto.MarkDeployedRequestDTO	true	"Transaction hash"
//	@Success		200		{object}	dto.RaffleResponseDTO
//	@Failure		404		{object}	utils.Response
//	@Router			/api/admin/raffles/{id}/mark-deployed [post]
func (h *AdminHandler) MarkDeployed(w http.ResponseWriter, r *http.Request) {
	raffleID, ok := raffleIDParam(w, r)
	if !ok {
		return
	}

	var req dto.MarkDeployedRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	raffle, err := h.raffleService.MarkBlockchainDeployed(r.Context(), raffleID, req.TxHash)
	if err != nil {
		h.respondOrchestratorError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRaffleDTO(raffle))
}

// GrantPoints godoc
//
//	@Summary		Credit points to a wallet
//	@Description	Creates the balance row on first grant.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			wallet	path		string						true	"Wallet address"
//	@Param			request	body		dto.GrantPointsRequestDTO	true	"Points to credit"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		400		{object}	utils.Response
//	@Router			/api/admin/balances/{wallet}/grant [post]
func (h *AdminHandler) GrantPoints(w http.ResponseWriter, r *http.Request) {
	wallet := chi.URLParam(r, "wallet")

	var req dto.GrantPointsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	balance, err := h.ledgerService.GrantPoints(r.Context(), wallet, req.Points)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidGrant),
			errors.Is(err, validationservice.ErrInvalidWallet):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		WalletAddress: balance.WalletAddress,
		Points:        balance.Points,
	})
}

// respondRun reports an orchestration run. The step list is returned even on
// failure so the caller can show which step broke and with what error.
func (h *AdminHandler) respondRun(w http.ResponseWriter, run *orchestrator.Run, err error) {
	if err != nil {
		if run != nil {
			utils.RespondWithJSON(w, http.StatusBadGateway, toRunDTO(run))
			return
		}
		h.respondOrchestratorError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRunDTO(run))
}

func (h *AdminHandler) respondOrchestratorError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, raffleservice.ErrRaffleNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, orchestrator.ErrNoPrize):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, orchestrator.ErrRunInProgress),
		errors.Is(err, orchestrator.ErrNotDeployable),
		errors.Is(err, orchestrator.ErrNotEndable),
		errors.Is(err, raffleservice.ErrInvalidTransition):
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

func toRunDTO(run *orchestrator.Run) dto.OrchestrationResponseDTO {
	steps := run.Snapshot()
	stepDTOs := make([]dto.StepDTO, len(steps))
	for i, s := range steps {
		stepDTOs[i] = dto.StepDTO{
			ID:     string(s.ID),
			Name:   s.Name,
			Status: string(s.Status),
			TxHash: s.TxHash,
			Error:  s.Error,
		}
	}
	return dto.OrchestrationResponseDTO{
		RunID:  run.ID.String(),
		Raffle: run.RaffleID,
		Steps:  stepDTOs,
	}
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
