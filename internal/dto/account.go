package dto

import "time"

type CreateAccountRequestDTO struct {
	ExternalID int64  `json:"external_id" example:"784512036"`
	Username   string `json:"username" example:"maung_maung"`
}

type AccountResponseDTO struct {
	ExternalID    int64  `json:"external_id" example:"784512036"`
	Username      string `json:"username" example:"maung_maung"`
	IsReseller    bool   `json:"is_reseller" example:"false"`
	CommissionPct int    `json:"commission_pct,omitempty" example:"10"`
	Balance       int64  `json:"balance" example:"25000"`
}

type BalanceResponseDTO struct {
	Balance int64 `json:"balance" example:"25000"`
}

type TransactionResponseDTO struct {
	Category    string    `json:"category" example:"wager"`
	Amount      int64     `json:"amount" example:"-1500"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" example:"2025-06-09T08:12:33+06:30"`
}

type AdjustRequestDTO struct {
	ExternalID  int64  `json:"external_id" example:"784512036"`
	Amount      int64  `json:"amount" example:"5000"`
	Description string `json:"description" example:"top-up via KPay"`
}

type AdjustResponseDTO struct {
	NewBalance int64 `json:"new_balance" example:"30000"`
}
