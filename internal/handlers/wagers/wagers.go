package wagers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/zinlatt/betmart/internal/domain"
	"github.com/zinlatt/betmart/internal/dto"
	"github.com/zinlatt/betmart/internal/notify"
	"github.com/zinlatt/betmart/internal/service/wagerservice"
	"github.com/zinlatt/betmart/pkg/betgrammar"
	"github.com/zinlatt/betmart/pkg/utils"
)

const historyLimit = 50

type Service interface {
	PlaceWagers(ctx context.Context, externalID int64, text string) (*wagerservice.Result, error)
	Headroom(ctx context.Context, number string) (int64, error)
	Tickets(ctx context.Context, externalID int64, limit int) ([]domain.WagerTicket, error)
}

type Notifier interface {
	WagerAccepted(confirmation notify.WagerConfirmation)
}

type Metrics interface {
	WagerAccepted()
	WagerRejected()
	ExposureRefused()
}

type WagerHandler struct {
	wagerService Service
	notifier     Notifier
	metrics      Metrics
}

func New(wagerService Service, notifier Notifier, metrics Metrics) *WagerHandler {
	return &WagerHandler{
		wagerService: wagerService,
		notifier:     notifier,
		metrics:      metrics,
	}
}

// PlaceWagers godoc
//
//	@Summary		Place a wager batch
//	@Description	Parse a bet line and commit every resulting ticket atomically. A rejected batch leaves no tickets, no debit and no ledger row.
//	@Tags			Wagers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PlaceWagersRequestDTO	true	"Bet line"
//	@Success		200		{object}	dto.PlaceWagersResponseDTO	"Committed tickets"
//	@Failure		400		{object}	utils.Response				"Malformed bet line"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Failure		403		{object}	utils.Response				"Betting window closed"
//	@Failure		404		{object}	utils.Response				"Account not found"
//	@Failure		409		{object}	utils.Response				"Number sold out"
//	@Failure		422		{object}	utils.Response				"Entry failed validation"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/wagers [post]
func (h *WagerHandler) PlaceWagers(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaceWagersRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.wagerService.PlaceWagers(r.Context(), req.ExternalID, req.Text)
	if err != nil {
		h.respondWagerError(w, err)
		return
	}

	h.metrics.WagerAccepted()

	tickets := make([]dto.WagerTicketDTO, 0, len(result.Tickets))
	numbers := make([]string, 0, len(result.Tickets))
	for _, t := range result.Tickets {
		tickets = append(tickets, dto.WagerTicketDTO{
			Ref:       t.Ref,
			GameType:  t.GameType,
			Number:    t.Number,
			Stake:     t.Stake,
			Session:   t.Session,
			Status:    t.Status,
			CreatedAt: t.CreatedAt,
		})
		numbers = append(numbers, t.Number)
	}

	h.notifier.WagerAccepted(notify.WagerConfirmation{
		ExternalID: req.ExternalID,
		Session:    result.Session,
		Numbers:    numbers,
		FaceTotal:  result.FaceTotal,
		Debited:    result.Debited,
		NewBalance: result.NewBalance,
	})

	utils.RespondWithJSON(w, http.StatusOK, dto.PlaceWagersResponseDTO{
		Tickets:    tickets,
		FaceTotal:  result.FaceTotal,
		Debited:    result.Debited,
		NewBalance: result.NewBalance,
		Session:    result.Session,
		Day:        result.Day.Format("2006-01-02"),
	})
}

// GetHeadroom godoc
//
//	@Summary		Remaining stake capacity for a number
//	@Description	How much more stake the current session can absorb on one number before the exposure cap refuses it.
//	@Tags			Wagers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			number	query		string					true	"Two digit number"
//	@Success		200		{object}	dto.HeadroomResponseDTO	"Remaining capacity"
//	@Failure		401		{object}	utils.Response			"Not authorized"
//	@Failure		403		{object}	utils.Response			"Betting window closed"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/wagers/headroom [get]
func (h *WagerHandler) GetHeadroom(w http.ResponseWriter, r *http.Request) {
	number := r.URL.Query().Get("number")
	if len(number) != 2 {
		utils.RespondWithError(w, http.StatusBadRequest, "number must be two digits")
		return
	}

	remaining, err := h.wagerService.Headroom(r.Context(), number)
	if err != nil {
		h.respondWagerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.HeadroomResponseDTO{
		Number:    number,
		Remaining: remaining,
	})
}

// GetTickets godoc
//
//	@Summary		List recent wager tickets
//	@Tags			Wagers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			externalID	path		int					true	"Messenger identity"
//	@Success		200			{array}		dto.WagerTicketDTO	"Tickets, newest first"
//	@Failure		401			{object}	utils.Response		"Not authorized"
//	@Failure		404			{object}	utils.Response		"Account not found"
//	@Failure		500			{object}	utils.Response		"Internal server error"
//	@Router			/api/accounts/{externalID}/tickets [get]
func (h *WagerHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	externalID, err := strconv.ParseInt(chi.URLParam(r, "externalID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid external id")
		return
	}

	tickets, err := h.wagerService.Tickets(r.Context(), externalID, historyLimit)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "account not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.WagerTicketDTO, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, dto.WagerTicketDTO{
			Ref:       t.Ref,
			GameType:  t.GameType,
			Number:    t.Number,
			Stake:     t.Stake,
			Session:   t.Session,
			Status:    t.Status,
			CreatedAt: t.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// respondWagerError maps the intake error taxonomy onto HTTP statuses. Every
// branch except the last counts as a rejection.
func (h *WagerHandler) respondWagerError(w http.ResponseWriter, err error) {
	var (
		parseErr    *betgrammar.ParseError
		validateErr *domain.ValidationError
		blockedErr  *domain.BlockedNumberError
		capErr      *domain.CapacityError
		windowErr   *domain.WindowClosedError
	)

	switch {
	case errors.As(err, &parseErr):
		h.metrics.WagerRejected()
		utils.RespondWithError(w, http.StatusBadRequest, parseErr.Error())
	case errors.As(err, &validateErr):
		h.metrics.WagerRejected()
		utils.RespondWithError(w, http.StatusUnprocessableEntity, validateErr.Error())
	case errors.As(err, &blockedErr):
		h.metrics.WagerRejected()
		utils.RespondWithError(w, http.StatusUnprocessableEntity, blockedErr.Error())
	case errors.As(err, &capErr):
		h.metrics.WagerRejected()
		h.metrics.ExposureRefused()
		utils.RespondWithError(w, http.StatusConflict, capErr.Error())
	case errors.As(err, &windowErr):
		h.metrics.WagerRejected()
		utils.RespondWithError(w, http.StatusForbidden, windowErr.Error())
	case errors.Is(err, domain.ErrAccountNotFound):
		h.metrics.WagerRejected()
		utils.RespondWithError(w, http.StatusNotFound, "account not found")
	case errors.Is(err, domain.ErrInsufficientFunds):
		h.metrics.WagerRejected()
		utils.RespondWithError(w, http.StatusPaymentRequired, "insufficient balance")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
