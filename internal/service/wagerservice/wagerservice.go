package wagerservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zinlatt/betmart/internal/domain"
	"github.com/zinlatt/betmart/internal/pg"
	"github.com/zinlatt/betmart/internal/service/settingsservice"
	"github.com/zinlatt/betmart/pkg/betgrammar"
	"github.com/zinlatt/betmart/pkg/gametime"
	"go.uber.org/zap"
)

type AccountRepo interface {
	FindByExternalID(ctx context.Context, externalID int64) (*domain.Account, error)
	Debit(ctx context.Context, accountID int, amount int64) (int64, error)
}

type TicketRepo interface {
	Create(ctx context.Context, ticket *domain.WagerTicket) error
	SumStake(ctx context.Context, gameType, number, session string, day time.Time) (int64, error)
	FindByAccountID(ctx context.Context, accountID int, limit int) ([]domain.WagerTicket, error)
}

type LedgerRepo interface {
	Create(ctx context.Context, tx *domain.LedgerTransaction) error
}

type Settings interface {
	GameSettings(ctx context.Context) (*settingsservice.GameSettings, error)
	BlockedNumbers() []string
}

type Service struct {
	accountRepo AccountRepo
	ticketRepo  TicketRepo
	ledgerRepo  LedgerRepo
	settings    Settings
	txManager   pg.TXManager
	loc         *time.Location
	now         func() time.Time
}

func New(accountRepo AccountRepo, ticketRepo TicketRepo, ledgerRepo LedgerRepo, settings Settings, txManager pg.TXManager, loc *time.Location) *Service {
	return &Service{
		accountRepo: accountRepo,
		ticketRepo:  ticketRepo,
		ledgerRepo:  ledgerRepo,
		settings:    settings,
		txManager:   txManager,
		loc:         loc,
		now:         time.Now,
	}
}

// Result is the committed outcome of one wager batch.
type Result struct {
	Tickets    []domain.WagerTicket
	FaceTotal  int64
	Debited    int64
	NewBalance int64
	Session    string
	Day        time.Time
}

// PlaceWagers parses a bet line and commits the whole batch atomically:
// window re-check, denylist, static bounds, dynamic exposure, debit, ledger
// row and PENDING tickets. Any failed check leaves no side effects, and a
// batch is never partially accepted.
func (s *Service) PlaceWagers(ctx context.Context, externalID int64, text string) (*Result, error) {
	gs, err := s.settings.GameSettings(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := betgrammar.Parse(text, gs.Sets)
	if err != nil {
		return nil, err
	}

	if err := s.validateEntries(entries, gs); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}

	var faceTotal int64
	for _, e := range entries {
		faceTotal += e.Amount
	}
	debited := faceTotal
	if account.IsReseller {
		debited = faceTotal * int64(100-account.CommissionPct) / 100
	}

	result := &Result{FaceTotal: faceTotal, Debited: debited}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		// The window is resolved again here: the prompt the user answered
		// may predate a session cutoff, and this call is the authoritative one.
		now := s.now().In(s.loc)
		status, err := gametime.Resolve(now, gs.Windows)
		if err != nil {
			return err
		}
		if !status.Open {
			return &domain.WindowClosedError{Reason: status.Reason}
		}
		day := gametime.Day(now)
		result.Session = status.Session
		result.Day = day

		for _, e := range entries {
			committed, err := s.ticketRepo.SumStake(ctx, domain.GameType2D, e.Number, status.Session, day)
			if err != nil {
				return err
			}
			if committed+e.Amount > gs.LimitPerNumber {
				remaining := gs.LimitPerNumber - committed
				if remaining < 0 {
					remaining = 0
				}
				return &domain.CapacityError{Number: e.Number, Remaining: remaining}
			}
		}

		newBalance, err := s.accountRepo.Debit(ctx, account.ID, debited)
		if err != nil {
			return err
		}
		result.NewBalance = newBalance

		err = s.ledgerRepo.Create(ctx, &domain.LedgerTransaction{
			AccountID:   account.ID,
			Category:    domain.CategoryWager,
			Amount:      -debited,
			Description: fmt.Sprintf("2D %s wager, %d numbers, face %d", status.Session, len(entries), faceTotal),
			CreatedAt:   now,
		})
		if err != nil {
			return err
		}

		for _, e := range entries {
			ticket := domain.WagerTicket{
				Ref:       uuid.NewString(),
				AccountID: account.ID,
				GameType:  domain.GameType2D,
				Number:    e.Number,
				Stake:     e.Amount,
				Session:   status.Session,
				Day:       day,
				Status:    domain.TicketPending,
				CreatedAt: now,
			}
			if err := s.ticketRepo.Create(ctx, &ticket); err != nil {
				return err
			}
			result.Tickets = append(result.Tickets, ticket)
		}
		return nil
	})
	if err != nil {
		zap.L().Info("wager batch rejected",
			zap.Int64("externalID", externalID),
			zap.Error(err),
		)
		return nil, err
	}

	zap.L().Info("wager batch accepted",
		zap.Int64("externalID", externalID),
		zap.Int("tickets", len(result.Tickets)),
		zap.Int64("debited", debited),
	)
	return result, nil
}

// validateEntries is the static layer: denylist and per-entry stake bounds,
// no I/O.
func (s *Service) validateEntries(entries []betgrammar.Entry, gs *settingsservice.GameSettings) error {
	blocked := make(map[string]bool)
	for _, number := range s.settings.BlockedNumbers() {
		blocked[number] = true
	}

	for _, e := range entries {
		if blocked[e.Number] {
			return &domain.BlockedNumberError{Number: e.Number}
		}
		if e.Amount < gs.MinStake {
			return &domain.ValidationError{
				Number: e.Number,
				Amount: e.Amount,
				Reason: fmt.Sprintf("stake below minimum %d", gs.MinStake),
			}
		}
		if e.Amount > gs.MaxStakePerEntry {
			return &domain.ValidationError{
				Number: e.Number,
				Amount: e.Amount,
				Reason: fmt.Sprintf("stake above maximum %d", gs.MaxStakePerEntry),
			}
		}
	}
	return nil
}

// Headroom reports the stake the market still accepts on a number for the
// current session; used by the front-end to propose a reduced stake after a
// capacity rejection.
func (s *Service) Headroom(ctx context.Context, number string) (int64, error) {
	gs, err := s.settings.GameSettings(ctx)
	if err != nil {
		return 0, err
	}

	now := s.now().In(s.loc)
	status, err := gametime.Resolve(now, gs.Windows)
	if err != nil {
		return 0, err
	}
	if !status.Open {
		return 0, &domain.WindowClosedError{Reason: status.Reason}
	}

	committed, err := s.ticketRepo.SumStake(ctx, domain.GameType2D, number, status.Session, gametime.Day(now))
	if err != nil {
		return 0, err
	}
	remaining := gs.LimitPerNumber - committed
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// WindowStatus resolves the current session window for display.
func (s *Service) WindowStatus(ctx context.Context) (gametime.Status, error) {
	gs, err := s.settings.GameSettings(ctx)
	if err != nil {
		return gametime.Status{}, err
	}
	return gametime.Resolve(s.now().In(s.loc), gs.Windows)
}

// Tickets lists an account's recent wager tickets.
func (s *Service) Tickets(ctx context.Context, externalID int64, limit int) ([]domain.WagerTicket, error) {
	account, err := s.accountRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return s.ticketRepo.FindByAccountID(ctx, account.ID, limit)
}
