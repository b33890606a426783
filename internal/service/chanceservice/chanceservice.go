package chanceservice

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/zinlatt/betmart/internal/domain"
	"github.com/zinlatt/betmart/internal/pg"
	"github.com/zinlatt/betmart/internal/service/settingsservice"
	"github.com/zinlatt/betmart/pkg/gametime"
	"go.uber.org/zap"
)

type AccountRepo interface {
	FindByExternalID(ctx context.Context, externalID int64) (*domain.Account, error)
	Debit(ctx context.Context, accountID int, amount int64) (int64, error)
	Credit(ctx context.Context, accountID int, amount int64) (int64, error)
}

type ChanceRepo interface {
	Create(ctx context.Context, ticket *domain.ChanceTicket) error
	NetProfitSince(ctx context.Context, accountID int, since time.Time) (int64, error)
	LastStatuses(ctx context.Context, accountID, limit int) ([]string, error)
}

type LedgerRepo interface {
	Create(ctx context.Context, tx *domain.LedgerTransaction) error
}

type Settings interface {
	GameSettings(ctx context.Context) (*settingsservice.GameSettings, error)
}

type Service struct {
	accountRepo AccountRepo
	chanceRepo  ChanceRepo
	ledgerRepo  LedgerRepo
	settings    Settings
	txManager   pg.TXManager
	loc         *time.Location
	now         func() time.Time
	randInt     func(n int) int
}

func New(accountRepo AccountRepo, chanceRepo ChanceRepo, ledgerRepo LedgerRepo, settings Settings, txManager pg.TXManager, loc *time.Location) *Service {
	return &Service{
		accountRepo: accountRepo,
		chanceRepo:  chanceRepo,
		ledgerRepo:  ledgerRepo,
		settings:    settings,
		txManager:   txManager,
		loc:         loc,
		now:         time.Now,
		randInt:     rand.Intn,
	}
}

type Result struct {
	Ticket     domain.ChanceTicket
	Win        bool
	ResultNum  int
	ResultSide string
	Payout     int64
	NewBalance int64
}

// Play runs one high/low round: decide the outcome under the house rules,
// generate a result number consistent with that decision, then apply all
// ledger effects in a single transaction. The round has no pending state;
// the ticket is written already finalized.
//
// The decision ladder and the payout ceilings are deliberate house-edge
// business rules, not a fairness mechanism.
func (s *Service) Play(ctx context.Context, externalID int64, stake int64, choice string) (*Result, error) {
	if choice != domain.ChoiceHigh && choice != domain.ChoiceLow {
		return nil, &domain.ValidationError{Amount: stake, Reason: fmt.Sprintf("unknown choice %q", choice)}
	}

	gs, err := s.settings.GameSettings(ctx)
	if err != nil {
		return nil, err
	}
	if stake < gs.MinStake {
		return nil, &domain.ValidationError{Amount: stake, Reason: fmt.Sprintf("stake below minimum %d", gs.MinStake)}
	}
	if stake > gs.MaxStakePerEntry {
		return nil, &domain.ValidationError{Amount: stake, Reason: fmt.Sprintf("stake above maximum %d", gs.MaxStakePerEntry)}
	}

	account, err := s.accountRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	if account.Balance < stake {
		return nil, domain.ErrInsufficientFunds
	}

	now := s.now().In(s.loc)

	dayProfit, err := s.chanceRepo.NetProfitSince(ctx, account.ID, gametime.Day(now))
	if err != nil {
		return nil, err
	}
	recent, err := s.chanceRepo.LastStatuses(ctx, account.ID, gs.LossStreak)
	if err != nil {
		return nil, err
	}

	potential := stake * gs.PayoutMultiplierPct / 100
	win := s.decide(gs, dayProfit, recent, potential, stake)

	resultNum := s.resultNumber(win, choice)
	resultSide := domain.ChoiceLow
	if resultNum >= 50 {
		resultSide = domain.ChoiceHigh
	}

	var payout int64
	status := domain.TicketLost
	if win {
		payout = potential
		status = domain.TicketWon
	}

	result := &Result{
		Win:        win,
		ResultNum:  resultNum,
		ResultSide: resultSide,
		Payout:     payout,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		newBalance, err := s.accountRepo.Debit(ctx, account.ID, stake)
		if err != nil {
			return err
		}
		err = s.ledgerRepo.Create(ctx, &domain.LedgerTransaction{
			AccountID:   account.ID,
			Category:    domain.CategoryChanceWager,
			Amount:      -stake,
			Description: fmt.Sprintf("high/low stake, choice %s", choice),
			CreatedAt:   now,
		})
		if err != nil {
			return err
		}

		ticket := domain.ChanceTicket{
			Ref:       uuid.NewString(),
			AccountID: account.ID,
			Stake:     stake,
			Choice:    choice,
			ResultNum: resultNum,
			Status:    status,
			Payout:    payout,
			CreatedAt: now,
		}
		if err := s.chanceRepo.Create(ctx, &ticket); err != nil {
			return err
		}
		result.Ticket = ticket

		if win {
			newBalance, err = s.accountRepo.Credit(ctx, account.ID, payout)
			if err != nil {
				return err
			}
			err = s.ledgerRepo.Create(ctx, &domain.LedgerTransaction{
				AccountID:   account.ID,
				Category:    domain.CategoryChancePayout,
				Amount:      payout,
				Description: fmt.Sprintf("high/low payout, result %02d", resultNum),
				CreatedAt:   now,
			})
			if err != nil {
				return err
			}
		}
		result.NewBalance = newBalance
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("high/low play finished",
		zap.Int64("externalID", externalID),
		zap.Int64("stake", stake),
		zap.Bool("win", win),
		zap.Int("result", resultNum),
	)
	return result, nil
}

// decide applies the house rules in their fixed precedence order; the first
// matching rule wins.
func (s *Service) decide(gs *settingsservice.GameSettings, dayProfit int64, recent []string, potential, stake int64) bool {
	switch {
	case gs.WinRatio >= 100:
		return true
	case dayProfit >= gs.ProfitLimit:
		return false
	case len(recent) >= gs.LossStreak && allLost(recent[:gs.LossStreak]):
		return true
	default:
		win := s.randInt(100) < gs.WinRatio
		if win && (potential > gs.MaxWinAmount || potential > stake*gs.WinCapMultiple) {
			win = false
		}
		return win
	}
}

// resultNumber draws a number from the half of the range that matches the
// already-fixed decision and the player's side. The decision is never
// re-rolled.
func (s *Service) resultNumber(win bool, choice string) int {
	high := choice == domain.ChoiceHigh
	if win == high {
		return s.randInt(50) + 50
	}
	return s.randInt(50)
}

func allLost(statuses []string) bool {
	for _, status := range statuses {
		if status != domain.TicketLost {
			return false
		}
	}
	return true
}
