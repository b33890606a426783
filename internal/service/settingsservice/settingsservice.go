package settingsservice

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"sync"

	"github.com/zinlatt/betmart/pkg/betgrammar"
	"github.com/zinlatt/betmart/pkg/gametime"
	"go.uber.org/zap"
)

type Repo interface {
	Get(ctx context.Context, key string) (string, error)
	GetAll(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, key, value string) error
}

// Setting keys, as the operator dashboard writes them.
const (
	KeyMinBet           = "minBet"
	KeyMaxBetPerNumber  = "maxBetPerNumber"
	KeyLimitPerNumber   = "limitPerNumber"
	KeyBlockedNumbers   = "blockedNumbers"
	KeyMultiplier2D     = "multiplier2D"
	KeyMultiplier3D     = "multiplier3D"
	KeyWinRatio         = "winRatio"
	KeyPayoutMultiplier = "payoutMultiplier"
	KeyMaxWinAmount     = "maxWinAmount"
	KeyWinCapMultiple   = "winCapMultiple"
	KeyProfitLimit      = "profitLimit"
	KeyLossStreak       = "lossStreak"
	KeyMorningOpen      = "morningOpen"
	KeyMorningClose     = "morningClose"
	KeyEveningOpen      = "eveningOpen"
	KeyEveningClose     = "eveningClose"
)

// GameSettings is one consistent snapshot of the operator-editable
// parameters, read fresh at each engine invocation.
type GameSettings struct {
	MinStake         int64
	MaxStakePerEntry int64
	LimitPerNumber   int64
	// Multipliers by game type, whole units per staked unit.
	Multipliers map[string]int64
	// WinRatio is the high/low win chance in percent.
	WinRatio int
	// PayoutMultiplierPct is the high/low multiplier in hundredths: 1.8x is 180.
	PayoutMultiplierPct int64
	MaxWinAmount        int64
	WinCapMultiple      int64
	ProfitLimit         int64
	LossStreak          int
	Windows             gametime.Windows
	Sets                map[string][]string
}

type Service struct {
	repo Repo

	mu      sync.RWMutex
	blocked []string
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// GameSettings loads the settings table and applies defaults for missing
// keys. Never cached: a settlement or intake running right after an admin
// edit must see the new values.
func (s *Service) GameSettings(ctx context.Context) (*GameSettings, error) {
	raw, err := s.repo.GetAll(ctx)
	if err != nil {
		zap.L().Error("failed to load settings", zap.Error(err))
		return nil, err
	}

	gs := &GameSettings{
		MinStake:         parseInt64(raw[KeyMinBet], 500),
		MaxStakePerEntry: parseInt64(raw[KeyMaxBetPerNumber], 500000),
		LimitPerNumber:   parseInt64(raw[KeyLimitPerNumber], 500000),
		Multipliers: map[string]int64{
			"2D": parseInt64(raw[KeyMultiplier2D], 80),
			"3D": parseInt64(raw[KeyMultiplier3D], 500),
		},
		WinRatio:            int(parseInt64(raw[KeyWinRatio], 40)),
		PayoutMultiplierPct: parseMultiplierPct(raw[KeyPayoutMultiplier], 180),
		MaxWinAmount:        parseInt64(raw[KeyMaxWinAmount], 30000),
		WinCapMultiple:      parseInt64(raw[KeyWinCapMultiple], 2),
		ProfitLimit:         parseInt64(raw[KeyProfitLimit], 15000),
		LossStreak:          int(parseInt64(raw[KeyLossStreak], 5)),
		Windows: gametime.Windows{
			Morning: gametime.Window{
				Open:  orDefault(raw[KeyMorningOpen], "07:00"),
				Close: orDefault(raw[KeyMorningClose], "11:55"),
			},
			Evening: gametime.Window{
				Open:  orDefault(raw[KeyEveningOpen], "12:01"),
				Close: orDefault(raw[KeyEveningClose], "16:25"),
			},
		},
		Sets: betgrammar.DefaultSets,
	}

	return gs, nil
}

// LoadDenylist fills the in-memory blocked-numbers cache; called once at
// startup and again after every admin settings update.
func (s *Service) LoadDenylist(ctx context.Context) error {
	value, err := s.repo.Get(ctx, KeyBlockedNumbers)
	if err != nil {
		return err
	}

	blocked := []string{"00", "11", "99"}
	if value != "" {
		if err := json.Unmarshal([]byte(value), &blocked); err != nil {
			zap.L().Error("bad blockedNumbers value, keeping defaults", zap.Error(err))
		}
	}

	s.mu.Lock()
	s.blocked = blocked
	s.mu.Unlock()

	zap.L().Info("blocked numbers loaded", zap.Strings("numbers", blocked))
	return nil
}

// BlockedNumbers reads the cache; no database round-trip.
func (s *Service) BlockedNumbers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.blocked))
	copy(out, s.blocked)
	return out
}

// All returns the raw stored key/value pairs for the operator dashboard.
func (s *Service) All(ctx context.Context) (map[string]string, error) {
	return s.repo.GetAll(ctx)
}

// Update upserts the given keys and refreshes the denylist cache so the next
// wager sees the edit immediately.
func (s *Service) Update(ctx context.Context, settings map[string]string) error {
	for key, value := range settings {
		if err := s.repo.Upsert(ctx, key, value); err != nil {
			return err
		}
	}
	return s.LoadDenylist(ctx)
}

func parseInt64(value string, def int64) int64 {
	if value == "" {
		return def
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// parseMultiplierPct reads a decimal multiplier like "1.8" into hundredths so
// payout arithmetic stays in exact integers.
func parseMultiplierPct(value string, def int64) int64 {
	if value == "" {
		return def
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 {
		return def
	}
	return int64(math.Round(f * 100))
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
