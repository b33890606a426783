package accountservice

import (
	"context"
	"fmt"
	"time"

	"github.com/zinlatt/betmart/internal/domain"
	"github.com/zinlatt/betmart/internal/pg"
	"go.uber.org/zap"
)

type AccountRepo interface {
	FindByExternalID(ctx context.Context, externalID int64) (*domain.Account, error)
	Upsert(ctx context.Context, externalID int64, username string) (*domain.Account, error)
	Debit(ctx context.Context, accountID int, amount int64) (int64, error)
	Credit(ctx context.Context, accountID int, amount int64) (int64, error)
}

type LedgerRepo interface {
	Create(ctx context.Context, tx *domain.LedgerTransaction) error
	FindByAccountID(ctx context.Context, accountID, limit int) ([]domain.LedgerTransaction, error)
}

type Service struct {
	accountRepo AccountRepo
	ledgerRepo  LedgerRepo
	txManager   pg.TXManager
}

func New(accountRepo AccountRepo, ledgerRepo LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		txManager:   txManager,
	}
}

// FindOrCreate provisions the account the first time the messenger identity
// shows up and refreshes the username on later calls.
func (s *Service) FindOrCreate(ctx context.Context, externalID int64, username string) (*domain.Account, error) {
	account, err := s.accountRepo.Upsert(ctx, externalID, username)
	if err != nil {
		zap.L().Error("can't provision account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (s *Service) Get(ctx context.Context, externalID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) Transactions(ctx context.Context, externalID int64, limit int) ([]domain.LedgerTransaction, error) {
	account, err := s.Get(ctx, externalID)
	if err != nil {
		return nil, err
	}
	return s.ledgerRepo.FindByAccountID(ctx, account.ID, limit)
}

// Adjust is the operator's manual balance correction. Positive amounts
// credit, negative debit; either way exactly one ledger row is appended in
// the same transaction.
func (s *Service) Adjust(ctx context.Context, externalID int64, amount int64, description string) (int64, error) {
	if amount == 0 {
		return 0, &domain.ValidationError{Reason: "adjustment amount must be non-zero"}
	}

	account, err := s.Get(ctx, externalID)
	if err != nil {
		return 0, err
	}

	var newBalance int64
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if amount > 0 {
			newBalance, err = s.accountRepo.Credit(ctx, account.ID, amount)
		} else {
			newBalance, err = s.accountRepo.Debit(ctx, account.ID, -amount)
		}
		if err != nil {
			return err
		}
		return s.ledgerRepo.Create(ctx, &domain.LedgerTransaction{
			AccountID:   account.ID,
			Category:    domain.CategoryAdjustment,
			Amount:      amount,
			Description: description,
			CreatedAt:   time.Now(),
		})
	})
	if err != nil {
		zap.L().Error("balance adjustment failed",
			zap.Int64("externalID", externalID),
			zap.Int64("amount", amount),
			zap.Error(err),
		)
		return 0, fmt.Errorf("can't adjust balance: %w", err)
	}
	return newBalance, nil
}
