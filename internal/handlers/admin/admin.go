package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/zinlatt/betmart/internal/domain"
	"github.com/zinlatt/betmart/internal/dto"
	"github.com/zinlatt/betmart/internal/service/settlementservice"
	"github.com/zinlatt/betmart/pkg/utils"
)

type SettlementService interface {
	Settle(ctx context.Context, gameType, winNumber, session string, day time.Time) (*settlementservice.Outcome, error)
}

type SettingsService interface {
	All(ctx context.Context) (map[string]string, error)
	Update(ctx context.Context, settings map[string]string) error
}

type AccountService interface {
	Adjust(ctx context.Context, externalID int64, amount int64, description string) (int64, error)
}

type Metrics interface {
	TicketsSettled(status string, count int)
	PayoutPaid(amount int64)
}

type AdminHandler struct {
	settlementService SettlementService
	settingsService   SettingsService
	accountService    AccountService
	metrics           Metrics
}

func New(settlementService SettlementService, settingsService SettingsService, accountService AccountService, metrics Metrics) *AdminHandler {
	return &AdminHandler{
		settlementService: settlementService,
		settingsService:   settingsService,
		accountService:    accountService,
		metrics:           metrics,
	}
}

// Settle godoc
//
//	@Summary		Settle a session against the published number
//	@Description	Finalize every PENDING ticket for the game type, session and day. Safe to re-invoke: already settled tickets are skipped and a winner is never paid twice.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SettleRequestDTO	true	"Published result"
//	@Success		200		{object}	dto.SettleResponseDTO	"Batch counters"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"Not authorized"
//	@Failure		422		{object}	utils.Response			"Unknown game type"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/settle [post]
func (h *AdminHandler) Settle(w http.ResponseWriter, r *http.Request) {
	var req dto.SettleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var day time.Time
	if req.Day != "" {
		parsed, err := time.Parse("2006-01-02", req.Day)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "day must be YYYY-MM-DD")
			return
		}
		day = parsed
	}

	outcome, err := h.settlementService.Settle(r.Context(), req.GameType, req.WinNumber, req.Session, day)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownGameType) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "unknown game type")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.metrics.TicketsSettled(domain.TicketWon, outcome.Winners)
	h.metrics.TicketsSettled(domain.TicketLost, outcome.Losers)
	h.metrics.PayoutPaid(outcome.TotalPaid)

	utils.RespondWithJSON(w, http.StatusOK, dto.SettleResponseDTO{
		Session:   outcome.Session,
		Day:       outcome.Day.Format("2006-01-02"),
		Processed: outcome.Processed,
		Winners:   outcome.Winners,
		Losers:    outcome.Losers,
		Failed:    outcome.Failed,
		TotalPaid: outcome.TotalPaid,
	})
}

// GetSettings godoc
//
//	@Summary		Read the stored game settings
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SettingsResponseDTO	"Stored key/value pairs"
//	@Failure		401	{object}	utils.Response			"Not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/settings [get]
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.All(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettingsResponseDTO{Settings: settings})
}

// UpdateSettings godoc
//
//	@Summary		Update game settings
//	@Description	Upsert the given keys. The change is visible to the next wager or settlement immediately.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateSettingsRequestDTO	true	"Keys to upsert"
//	@Success		200		{object}	utils.Response					"Settings updated"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		401		{object}	utils.Response					"Not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/settings [post]
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSettingsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Settings) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "settings must not be empty")
		return
	}

	if err := h.settingsService.Update(r.Context(), req.Settings); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "settings updated"})
}

// Adjust godoc
//
//	@Summary		Adjust an account balance
//	@Description	Manual operator correction. Positive amounts credit, negative debit; one ledger row is appended either way.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdjustRequestDTO	true	"Adjustment"
//	@Success		200		{object}	dto.AdjustResponseDTO	"New balance"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"Not authorized"
//	@Failure		402		{object}	utils.Response			"Balance would go negative"
//	@Failure		404		{object}	utils.Response			"Account not found"
//	@Failure		422		{object}	utils.Response			"Zero amount"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/adjust [post]
func (h *AdminHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req dto.AdjustRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	newBalance, err := h.accountService.Adjust(r.Context(), req.ExternalID, req.Amount, req.Description)
	if err != nil {
		var validateErr *domain.ValidationError
		switch {
		case errors.As(err, &validateErr):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, validateErr.Error())
		case errors.Is(err, domain.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "account not found")
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, "balance would go negative")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdjustResponseDTO{NewBalance: newBalance})
}
