package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/zinlatt/betmart/internal/domain"
	"github.com/zinlatt/betmart/internal/dto"
	"github.com/zinlatt/betmart/pkg/utils"
)

const historyLimit = 50

type Service interface {
	FindOrCreate(ctx context.Context, externalID int64, username string) (*domain.Account, error)
	Get(ctx context.Context, externalID int64) (*domain.Account, error)
	Transactions(ctx context.Context, externalID int64, limit int) ([]domain.LedgerTransaction, error)
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// CreateAccount godoc
//
//	@Summary		Provision an account
//	@Description	Create the account for a messenger identity on first contact, or refresh its username on later calls.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAccountRequestDTO	true	"Messenger identity"
//	@Success		200		{object}	dto.AccountResponseDTO		"Account state"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"Not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/accounts [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ExternalID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "external_id is required")
		return
	}

	account, err := h.accountService.FindOrCreate(r.Context(), req.ExternalID, req.Username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAccountDTO(account))
}

// GetBalance godoc
//
//	@Summary		Get account balance
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			externalID	path		int						true	"Messenger identity"
//	@Success		200			{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401			{object}	utils.Response			"Not authorized"
//	@Failure		404			{object}	utils.Response			"Account not found"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/{externalID}/balance [get]
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	externalID, err := pathExternalID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid external id")
		return
	}

	account, err := h.accountService.Get(r.Context(), externalID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "account not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: account.Balance})
}

// GetTransactions godoc
//
//	@Summary		List recent ledger transactions
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			externalID	path		int							true	"Messenger identity"
//	@Success		200			{array}		dto.TransactionResponseDTO	"Ledger rows, newest first"
//	@Failure		401			{object}	utils.Response				"Not authorized"
//	@Failure		404			{object}	utils.Response				"Account not found"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/accounts/{externalID}/transactions [get]
func (h *AccountHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	externalID, err := pathExternalID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid external id")
		return
	}

	transactions, err := h.accountService.Transactions(r.Context(), externalID, historyLimit)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "account not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.TransactionResponseDTO, 0, len(transactions))
	for _, tx := range transactions {
		resp = append(resp, dto.TransactionResponseDTO{
			Category:    tx.Category,
			Amount:      tx.Amount,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func toAccountDTO(account *domain.Account) dto.AccountResponseDTO {
	return dto.AccountResponseDTO{
		ExternalID:    account.ExternalID,
		Username:      account.Username,
		IsReseller:    account.IsReseller,
		CommissionPct: account.CommissionPct,
		Balance:       account.Balance,
	}
}

func pathExternalID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "externalID"), 10, 64)
}
