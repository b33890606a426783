package ticketrepo

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

func (r *Repository) Create(ctx context.Context, ticket *domain.WagerTicket) error {
	query := `
        INSERT INTO wager_tickets (ref, account_id, game_type, number, stake, session, day, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		ticket.Ref, ticket.AccountID, ticket.GameType, ticket.Number,
		ticket.Stake, ticket.Session, ticket.Day, ticket.Status, ticket.CreatedAt,
	).Scan(&ticket.ID)
	if err != nil {
		zap.L().Error("can't save wager ticket", zap.Error(err))
		return err
	}
	return nil
}

// SumStake is the committed exposure for one (game, number, session, day)
// key. Run inside the intake transaction so the read and the ticket write it
// gates cannot race.
func (r *Repository) SumStake(ctx context.Context, gameType, number, session string, day time.Time) (int64, error) {
	query := `
        SELECT COALESCE(SUM(stake), 0)
        FROM wager_tickets
        WHERE game_type = $1 AND number = $2 AND session = $3 AND day = $4
    `
	var total int64
	err := r.db.QueryRow(ctx, query, gameType, number, session, day).Scan(&total)
	if err != nil {
		zap.L().Error("failed to aggregate number exposure", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) FindPending(ctx context.Context, gameType, session string, day time.Time) ([]domain.PendingWager, error) {
	query := `
        SELECT t.id, t.ref, t.account_id, t.game_type, t.number, t.stake, t.session, t.day, t.status, t.created_at,
               a.external_id
        FROM wager_tickets t
        JOIN accounts a ON a.id = t.account_id
        WHERE t.status = 'PENDING' AND t.game_type = $1 AND t.session = $2 AND t.day = $3
        ORDER BY t.id ASC
    `
	rows, err := r.db.Query(ctx, query, gameType, session, day)
	if err != nil {
		zap.L().Error("can't get pending tickets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var pending []domain.PendingWager
	for rows.Next() {
		var p domain.PendingWager
		err := rows.Scan(
			&p.Ticket.ID, &p.Ticket.Ref, &p.Ticket.AccountID, &p.Ticket.GameType, &p.Ticket.Number,
			&p.Ticket.Stake, &p.Ticket.Session, &p.Ticket.Day, &p.Ticket.Status, &p.Ticket.CreatedAt,
			&p.ExternalID,
		)
		if err != nil {
			zap.L().Error("can't scan pending ticket row", zap.Error(err))
			return nil, err
		}
		pending = append(pending, p)
	}
	return pending, nil
}

// UpdateStatus finalizes a ticket; the PENDING guard makes settlement
// re-runs skip tickets that were already finalized.
func (r *Repository) UpdateStatus(ctx context.Context, ticketID int, status string) error {
	query := `
        UPDATE wager_tickets
        SET status = $1
        WHERE id = $2 AND status = 'PENDING'
    `
	_, err := r.db.Exec(ctx, query, status, ticketID)
	if err != nil {
		zap.L().Error("failed to update ticket status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByAccountID(ctx context.Context, accountID int, limit int) ([]domain.WagerTicket, error) {
	query := `
        SELECT id, ref, account_id, game_type, number, stake, session, day, status, created_at
        FROM wager_tickets
        WHERE account_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		zap.L().Error("can't get account tickets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tickets []domain.WagerTicket
	for rows.Next() {
		var t domain.WagerTicket
		err := rows.Scan(&t.ID, &t.Ref, &t.AccountID, &t.GameType, &t.Number, &t.Stake, &t.Session, &t.Day, &t.Status, &t.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan ticket row", zap.Error(err))
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
