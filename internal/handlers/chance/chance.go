package chance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zinlatt/betmart/internal/domain"
	"github.com/zinlatt/betmart/internal/dto"
	"github.com/zinlatt/betmart/internal/service/chanceservice"
	"github.com/zinlatt/betmart/pkg/utils"
)

type Service interface {
	Play(ctx context.Context, externalID int64, stake int64, choice string) (*chanceservice.Result, error)
}

type Metrics interface {
	ChancePlayed(outcome string)
	PayoutPaid(amount int64)
}

type ChanceHandler struct {
	chanceService Service
	metrics       Metrics
}

func New(chanceService Service, metrics Metrics) *ChanceHandler {
	return &ChanceHandler{
		chanceService: chanceService,
		metrics:       metrics,
	}
}

// Play godoc
//
//	@Summary		Play one high/low round
//	@Description	Stake on HIGH (50-99) or LOW (00-49). The round settles immediately; the response carries the result number and the payout, if any.
//	@Tags			Chance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ChancePlayRequestDTO	true	"Stake and side"
//	@Success		200		{object}	dto.ChancePlayResponseDTO	"Finalized round"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Failure		404		{object}	utils.Response				"Account not found"
//	@Failure		422		{object}	utils.Response				"Stake out of bounds"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/chance/play [post]
func (h *ChanceHandler) Play(w http.ResponseWriter, r *http.Request) {
	var req dto.ChancePlayRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.chanceService.Play(r.Context(), req.ExternalID, req.Stake, req.Choice)
	if err != nil {
		var validateErr *domain.ValidationError
		switch {
		case errors.As(err, &validateErr):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, validateErr.Error())
		case errors.Is(err, domain.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "account not found")
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, "insufficient balance")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	outcome := "loss"
	if result.Win {
		outcome = "win"
		h.metrics.PayoutPaid(result.Payout)
	}
	h.metrics.ChancePlayed(outcome)

	utils.RespondWithJSON(w, http.StatusOK, dto.ChancePlayResponseDTO{
		Ref:        result.Ticket.Ref,
		Win:        result.Win,
		ResultNum:  result.ResultNum,
		ResultSide: result.ResultSide,
		Payout:     result.Payout,
		NewBalance: result.NewBalance,
	})
}
