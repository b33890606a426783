package chancerepo

import (
	"context"
	"time"

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

func (r *Repository) Create(ctx context.Context, ticket *domain.ChanceTicket) error {
	query := `
        INSERT INTO chance_tickets (ref, account_id, stake, choice, result_num, status, payout, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		ticket.Ref, ticket.AccountID, ticket.Stake, ticket.Choice,
		ticket.ResultNum, ticket.Status, ticket.Payout, ticket.CreatedAt,
	).Scan(&ticket.ID)
	if err != nil {
		zap.L().Error("can't save chance ticket", zap.Error(err))
		return err
	}
	return nil
}

// NetProfitSince is the account's payouts minus stakes over all plays since
// the given instant; the daily-profit ceiling reads it with the start of the
// civil day.
func (r *Repository) NetProfitSince(ctx context.Context, accountID int, since time.Time) (int64, error) {
	query := `
        SELECT COALESCE(SUM(payout - stake), 0)
        FROM chance_tickets
        WHERE account_id = $1 AND created_at >= $2
    `
	var profit int64
	err := r.db.QueryRow(ctx, query, accountID, since).Scan(&profit)
	if err != nil {
		zap.L().Error("failed to compute net profit", zap.Error(err))
		return 0, err
	}
	return profit, nil
}

func (r *Repository) LastStatuses(ctx context.Context, accountID, limit int) ([]string, error) {
	query := `
        SELECT status
        FROM chance_tickets
        WHERE account_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		zap.L().Error("failed to fetch recent play statuses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var statuses []string
	for rows.Next() {
		var status string
		if err := rows.Scan(&status); err != nil {
			zap.L().Error("can't scan play status row", zap.Error(err))
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
