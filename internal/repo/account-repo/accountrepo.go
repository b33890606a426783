package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/zinlatt/betmart/internal/domain"
	"github.com/zinlatt/betmart/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByExternalID(ctx context.Context, externalID int64) (*domain.Account, error) {
	query := `
        SELECT id, external_id, username, is_reseller, commission_pct, balance, created_at
        FROM accounts
        WHERE external_id = $1
    `
	row := r.db.QueryRow(ctx, query, externalID)
	var acc domain.Account
	err := row.Scan(&acc.ID, &acc.ExternalID, &acc.Username, &acc.IsReseller, &acc.CommissionPct, &acc.Balance, &acc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to find account", zap.Error(err))
		return nil, err
	}
	return &acc, nil
}

func (r *Repository) Upsert(ctx context.Context, externalID int64, username string) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (external_id, username)
        VALUES ($1, $2)
        ON CONFLICT (external_id) DO UPDATE SET username = EXCLUDED.username
        RETURNING id, external_id, username, is_reseller, commission_pct, balance, created_at
    `
	row := r.db.QueryRow(ctx, query, externalID, username)
	var acc domain.Account
	err := row.Scan(&acc.ID, &acc.ExternalID, &acc.Username, &acc.IsReseller, &acc.CommissionPct, &acc.Balance, &acc.CreatedAt)
	if err != nil {
		zap.L().Error("failed to upsert account", zap.Error(err))
		return nil, err
	}
	return &acc, nil
}

// Debit subtracts amount and returns the new balance. The balance guard in
// the WHERE clause keeps a committed balance from ever going negative; no
// matching row maps to domain.ErrInsufficientFunds.
func (r *Repository) Debit(ctx context.Context, accountID int, amount int64) (int64, error) {
	query := `
        UPDATE accounts
        SET balance = balance - $2
        WHERE id = $1 AND balance >= $2
        RETURNING balance
    `
	var balance int64
	err := r.db.QueryRow(ctx, query, accountID, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrInsufficientFunds
		}
		zap.L().Error("failed to debit account", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (r *Repository) Credit(ctx context.Context, accountID int, amount int64) (int64, error) {
	query := `
        UPDATE accounts
        SET balance = balance + $2
        WHERE id = $1
        RETURNING balance
    `
	var balance int64
	err := r.db.QueryRow(ctx, query, accountID, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrAccountNotFound
		}
		zap.L().Error("failed to credit account", zap.Error(err))
		return 0, err
	}
	return balance, nil
}
