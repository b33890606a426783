package ledgerrepo

import (
	"context"

	"github.com/zinlatt/betmart/internal/domain"
	"github.com/zinlatt/betmart/internal/pg"
	"go.uber.org/zap"
)

// Repository owns the append-only ledger. Rows are never updated or deleted.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, tx *domain.LedgerTransaction) error {
	query := `
        INSERT INTO ledger_transactions (account_id, category, amount, description, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, tx.AccountID, tx.Category, tx.Amount, tx.Description, tx.CreatedAt).Scan(&tx.ID)
	if err != nil {
		zap.L().Error("can't append ledger transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByAccountID(ctx context.Context, accountID, limit int) ([]domain.LedgerTransaction, error) {
	query := `
        SELECT id, account_id, category, amount, description, created_at
        FROM ledger_transactions
        WHERE account_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		zap.L().Error("failed to fetch ledger transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.LedgerTransaction
	for rows.Next() {
		var tx domain.LedgerTransaction
		err := rows.Scan(&tx.ID, &tx.AccountID, &tx.Category, &tx.Amount, &tx.Description, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan ledger row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
