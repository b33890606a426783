package settlementservice

import (
	"context"
	"fmt"
	"time"

	"github.com/zinlatt/betmart/internal/domain"
	"github.com/zinlatt/betmart/internal/pg"
	"github.com/zinlatt/betmart/internal/service/settingsservice"
	"github.com/zinlatt/betmart/pkg/gametime"
	"go.uber.org/zap"
)

type TicketRepo interface {
	FindPending(ctx context.Context, gameType, session string, day time.Time) ([]domain.PendingWager, error)
	UpdateStatus(ctx context.Context, ticketID int, status string) error
}

type AccountRepo interface {
	Credit(ctx context.Context, accountID int, amount int64) (int64, error)
}

type LedgerRepo interface {
	Create(ctx context.Context, tx *domain.LedgerTransaction) error
}

type Settings interface {
	GameSettings(ctx context.Context) (*settingsservice.GameSettings, error)
}

// Notifier receives the per-account summaries after the batch finishes.
// Delivery is best-effort and never affects the settled state.
type Notifier interface {
	SettlementPublished(gameType, session, winNumber string, summaries []AccountSummary)
}

type Service struct {
	ticketRepo  TicketRepo
	accountRepo AccountRepo
	ledgerRepo  LedgerRepo
	settings    Settings
	txManager   pg.TXManager
	notifier    Notifier
	loc         *time.Location
	now         func() time.Time
}

func New(ticketRepo TicketRepo, accountRepo AccountRepo, ledgerRepo LedgerRepo, settings Settings, txManager pg.TXManager, notifier Notifier, loc *time.Location) *Service {
	return &Service{
		ticketRepo:  ticketRepo,
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		settings:    settings,
		txManager:   txManager,
		notifier:    notifier,
		loc:         loc,
		now:         time.Now,
	}
}

// AccountSummary aggregates one account's settlement outcome for the
// notification dispatcher.
type AccountSummary struct {
	ExternalID  int64
	WinNumbers  []string
	LoseNumbers []string
	TotalPayout int64
}

// Outcome are the batch counters returned to the operator.
type Outcome struct {
	Session   string
	Day       time.Time
	Processed int
	Winners   int
	Losers    int
	Failed    int
	TotalPaid int64
	Summaries []AccountSummary
}

// Settle finalizes every PENDING ticket for (gameType, session, day) against
// the published winning number. Each ticket is settled in its own
// transaction: a failure is logged, the ticket stays PENDING for a retry
// pass, and the batch continues. Because only PENDING tickets are fetched,
// re-invoking with the same arguments settles the remainder and never pays a
// winner twice.
func (s *Service) Settle(ctx context.Context, gameType, winNumber, session string, day time.Time) (*Outcome, error) {
	if gameType != domain.GameType2D && gameType != domain.GameType3D {
		return nil, domain.ErrUnknownGameType
	}

	gs, err := s.settings.GameSettings(ctx)
	if err != nil {
		return nil, err
	}
	multiplier, ok := gs.Multipliers[gameType]
	if !ok {
		return nil, domain.ErrUnknownGameType
	}

	now := s.now().In(s.loc)
	if session == "" {
		session = gametime.DefaultSession(now, gs.Windows)
	}
	if day.IsZero() {
		day = gametime.Day(now)
	}

	pending, err := s.ticketRepo.FindPending(ctx, gameType, session, day)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{Session: session, Day: day}
	byAccount := make(map[int64]*AccountSummary)
	var order []int64

	summaryFor := func(externalID int64) *AccountSummary {
		if summary, ok := byAccount[externalID]; ok {
			return summary
		}
		summary := &AccountSummary{ExternalID: externalID}
		byAccount[externalID] = summary
		order = append(order, externalID)
		return summary
	}

	for _, p := range pending {
		ticket := p.Ticket
		summary := summaryFor(p.ExternalID)

		if ticket.Number == winNumber {
			payout := ticket.Stake * multiplier
			err := s.txManager.Begin(ctx, func(ctx context.Context) error {
				if _, err := s.accountRepo.Credit(ctx, ticket.AccountID, payout); err != nil {
					return err
				}
				err := s.ledgerRepo.Create(ctx, &domain.LedgerTransaction{
					AccountID:   ticket.AccountID,
					Category:    domain.CategoryPayout,
					Amount:      payout,
					Description: fmt.Sprintf("%s %s winning number %s", gameType, session, winNumber),
					CreatedAt:   now,
				})
				if err != nil {
					return err
				}
				return s.ticketRepo.UpdateStatus(ctx, ticket.ID, domain.TicketWon)
			})
			if err != nil {
				// ticket is left PENDING; a retry pass picks it up
				zap.L().Error("failed to settle winning ticket",
					zap.Int("ticketID", ticket.ID),
					zap.Error(err),
				)
				outcome.Failed++
				continue
			}
			summary.WinNumbers = append(summary.WinNumbers, ticket.Number)
			summary.TotalPayout += payout
			outcome.Winners++
			outcome.TotalPaid += payout
		} else {
			err := s.txManager.Begin(ctx, func(ctx context.Context) error {
				return s.ticketRepo.UpdateStatus(ctx, ticket.ID, domain.TicketLost)
			})
			if err != nil {
				zap.L().Error("failed to settle losing ticket",
					zap.Int("ticketID", ticket.ID),
					zap.Error(err),
				)
				outcome.Failed++
				continue
			}
			summary.LoseNumbers = append(summary.LoseNumbers, ticket.Number)
			outcome.Losers++
		}
		outcome.Processed++
	}

	for _, externalID := range order {
		outcome.Summaries = append(outcome.Summaries, *byAccount[externalID])
	}

	if s.notifier != nil && len(outcome.Summaries) > 0 {
		s.notifier.SettlementPublished(gameType, session, winNumber, outcome.Summaries)
	}

	zap.L().Info("settlement finished",
		zap.String("gameType", gameType),
		zap.String("session", session),
		zap.String("winNumber", winNumber),
		zap.Int("processed", outcome.Processed),
		zap.Int("winners", outcome.Winners),
		zap.Int("failed", outcome.Failed),
		zap.Int64("totalPaid", outcome.TotalPaid),
	)
	return outcome, nil
}
