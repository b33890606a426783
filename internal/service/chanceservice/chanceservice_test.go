package chanceservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zinlatt/betmart/internal/domain"
	"github.com/zinlatt/betmart/internal/pg"
	"github.com/zinlatt/betmart/internal/service/settingsservice"
	gomock "go.uber.org/mock/gomock"
)

var mmt = time.FixedZone("MMT", 6*3600+30*60)

type mocks struct {
	accountRepo *MockAccountRepo
	chanceRepo  *MockChanceRepo
	ledgerRepo  *MockLedgerRepo
	settings    *MockSettings
	txManager   *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		accountRepo: NewMockAccountRepo(ctrl),
		chanceRepo:  NewMockChanceRepo(ctrl),
		ledgerRepo:  NewMockLedgerRepo(ctrl),
		settings:    NewMockSettings(ctrl),
		txManager:   pg.NewMockTXManager(ctrl),
	}
	service := New(m.accountRepo, m.chanceRepo, m.ledgerRepo, m.settings, m.txManager, mmt)
	service.now = func() time.Time {
		return time.Date(2025, 6, 9, 14, 0, 0, 0, mmt)
	}
	return service, m
}

func testSettings() *settingsservice.GameSettings {
	return &settingsservice.GameSettings{
		MinStake:            500,
		MaxStakePerEntry:    500000,
		WinRatio:            40,
		PayoutMultiplierPct: 180,
		MaxWinAmount:        30000,
		WinCapMultiple:      2,
		ProfitLimit:         15000,
		LossStreak:          5,
	}
}

func passthroughTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestPlayValidation(t *testing.T) {
	tests := []struct {
		name        string
		stake       int64
		choice      string
		prepareMock func(m *mocks)
	}{
		{
			name:   "unknown choice",
			stake:  1000,
			choice: "SIDEWAYS",
		},
		{
			name:   "stake below minimum",
			stake:  100,
			choice: domain.ChoiceHigh,
			prepareMock: func(m *mocks) {
				m.settings.EXPECT().GameSettings(gomock.Any()).Return(testSettings(), nil)
			},
		},
		{
			name:   "stake above maximum",
			stake:  600000,
			choice: domain.ChoiceLow,
			prepareMock: func(m *mocks) {
				m.settings.EXPECT().GameSettings(gomock.Any()).Return(testSettings(), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(m)
			}

			result, err := service.Play(context.Background(), 42, tt.stake, tt.choice)
			assert.Nil(t, result)
			var validateErr *domain.ValidationError
			assert.ErrorAs(t, err, &validateErr)
		})
	}
}

func TestPlayInsufficientBalance(t *testing.T) {
	service, m := NewMock(t)
	m.settings.EXPECT().GameSettings(gomock.Any()).Return(testSettings(), nil)
	m.accountRepo.EXPECT().FindByExternalID(gomock.Any(), int64(42)).Return(&domain.Account{ID: 7, Balance: 200}, nil)

	result, err := service.Play(context.Background(), 42, 1000, domain.ChoiceHigh)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestPlayWin(t *testing.T) {
	service, m := NewMock(t)
	day := time.Date(2025, 6, 9, 0, 0, 0, 0, mmt)

	m.settings.EXPECT().GameSettings(gomock.Any()).Return(testSettings(), nil)
	m.accountRepo.EXPECT().FindByExternalID(gomock.Any(), int64(42)).Return(&domain.Account{ID: 7, Balance: 50000}, nil)
	m.chanceRepo.EXPECT().NetProfitSince(gomock.Any(), 7, day).Return(int64(0), nil)
	m.chanceRepo.EXPECT().LastStatuses(gomock.Any(), 7, 5).Return(nil, nil)

	// draw below the win ratio
	service.randInt = func(n int) int {
		if n == 100 {
			return 10
		}
		return 23 // result number 50+23 for a HIGH win
	}

	passthroughTx(m)
	m.accountRepo.EXPECT().Debit(gomock.Any(), 7, int64(1000)).Return(int64(49000), nil)
	m.ledgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.chanceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ticket *domain.ChanceTicket) error {
			assert.Equal(t, domain.TicketWon, ticket.Status)
			assert.Equal(t, int64(1800), ticket.Payout)
			return nil
		},
	)
	m.accountRepo.EXPECT().Credit(gomock.Any(), 7, int64(1800)).Return(int64(50800), nil)

	result, err := service.Play(context.Background(), 42, 1000, domain.ChoiceHigh)
	assert.NoError(t, err)
	assert.True(t, result.Win)
	assert.Equal(t, 73, result.ResultNum)
	assert.Equal(t, domain.ChoiceHigh, result.ResultSide)
	assert.Equal(t, int64(1800), result.Payout)
	assert.Equal(t, int64(50800), result.NewBalance)
}

func TestPlayLossResultOnOppositeSide(t *testing.T) {
	service, m := NewMock(t)
	day := time.Date(2025, 6, 9, 0, 0, 0, 0, mmt)

	m.settings.EXPECT().GameSettings(gomock.Any()).Return(testSettings(), nil)
	m.accountRepo.EXPECT().FindByExternalID(gomock.Any(), int64(42)).Return(&domain.Account{ID: 7, Balance: 50000}, nil)
	m.chanceRepo.EXPECT().NetProfitSince(gomock.Any(), 7, day).Return(int64(0), nil)
	m.chanceRepo.EXPECT().LastStatuses(gomock.Any(), 7, 5).Return(nil, nil)

	// draw at or above the win ratio loses
	service.randInt = func(n int) int {
		if n == 100 {
			return 80
		}
		return 7
	}

	passthroughTx(m)
	m.accountRepo.EXPECT().Debit(gomock.Any(), 7, int64(1000)).Return(int64(49000), nil)
	m.ledgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.chanceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.Play(context.Background(), 42, 1000, domain.ChoiceHigh)
	assert.NoError(t, err)
	assert.False(t, result.Win)
	// HIGH player losing must see a LOW result
	assert.Equal(t, 7, result.ResultNum)
	assert.Equal(t, domain.ChoiceLow, result.ResultSide)
	assert.Zero(t, result.Payout)
	assert.Equal(t, int64(49000), result.NewBalance)
}

func TestPlayForcedLossAtProfitCeiling(t *testing.T) {
	service, m := NewMock(t)
	day := time.Date(2025, 6, 9, 0, 0, 0, 0, mmt)

	m.settings.EXPECT().GameSettings(gomock.Any()).Return(testSettings(), nil)
	m.accountRepo.EXPECT().FindByExternalID(gomock.Any(), int64(42)).Return(&domain.Account{ID: 7, Balance: 50000}, nil)
	m.chanceRepo.EXPECT().NetProfitSince(gomock.Any(), 7, day).Return(int64(15000), nil)
	m.chanceRepo.EXPECT().LastStatuses(gomock.Any(), 7, 5).Return(nil, nil)

	// the draw would win, but the profit ceiling overrides it
	service.randInt = func(n int) int { return 0 }

	passthroughTx(m)
	m.accountRepo.EXPECT().Debit(gomock.Any(), 7, int64(1000)).Return(int64(49000), nil)
	m.ledgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.chanceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.Play(context.Background(), 42, 1000, domain.ChoiceHigh)
	assert.NoError(t, err)
	assert.False(t, result.Win)
}

func TestPlayMercyWinAfterLossStreak(t *testing.T) {
	service, m := NewMock(t)
	day := time.Date(2025, 6, 9, 0, 0, 0, 0, mmt)

	m.settings.EXPECT().GameSettings(gomock.Any()).Return(testSettings(), nil)
	m.accountRepo.EXPECT().FindByExternalID(gomock.Any(), int64(42)).Return(&domain.Account{ID: 7, Balance: 50000}, nil)
	m.chanceRepo.EXPECT().NetProfitSince(gomock.Any(), 7, day).Return(int64(0), nil)
	m.chanceRepo.EXPECT().LastStatuses(gomock.Any(), 7, 5).Return(
		[]string{domain.TicketLost, domain.TicketLost, domain.TicketLost, domain.TicketLost, domain.TicketLost}, nil)

	// draw would lose, but the streak rule forces a win
	service.randInt = func(n int) int {
		if n == 100 {
			return 99
		}
		return 0 // result number 50 for a HIGH win
	}

	passthroughTx(m)
	m.accountRepo.EXPECT().Debit(gomock.Any(), 7, int64(1000)).Return(int64(49000), nil)
	m.ledgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.chanceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.accountRepo.EXPECT().Credit(gomock.Any(), 7, int64(1800)).Return(int64(50800), nil)

	result, err := service.Play(context.Background(), 42, 1000, domain.ChoiceHigh)
	assert.NoError(t, err)
	assert.True(t, result.Win)
	assert.Equal(t, 50, result.ResultNum)
}

func TestPlayWinDowngradedByPayoutCeiling(t *testing.T) {
	service, m := NewMock(t)
	day := time.Date(2025, 6, 9, 0, 0, 0, 0, mmt)

	// potential 20000*1.8 = 36000 exceeds maxWinAmount 30000
	m.settings.EXPECT().GameSettings(gomock.Any()).Return(testSettings(), nil)
	m.accountRepo.EXPECT().FindByExternalID(gomock.Any(), int64(42)).Return(&domain.Account{ID: 7, Balance: 100000}, nil)
	m.chanceRepo.EXPECT().NetProfitSince(gomock.Any(), 7, day).Return(int64(0), nil)
	m.chanceRepo.EXPECT().LastStatuses(gomock.Any(), 7, 5).Return(nil, nil)

	service.randInt = func(n int) int { return 0 }

	passthroughTx(m)
	m.accountRepo.EXPECT().Debit(gomock.Any(), 7, int64(20000)).Return(int64(80000), nil)
	m.ledgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.chanceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.Play(context.Background(), 42, 20000, domain.ChoiceHigh)
	assert.NoError(t, err)
	assert.False(t, result.Win)
	assert.Zero(t, result.Payout)
}

func TestPlayGuaranteedWinAtFullRatio(t *testing.T) {
	service, m := NewMock(t)
	day := time.Date(2025, 6, 9, 0, 0, 0, 0, mmt)

	gs := testSettings()
	gs.WinRatio = 100
	m.settings.EXPECT().GameSettings(gomock.Any()).Return(gs, nil)
	m.accountRepo.EXPECT().FindByExternalID(gomock.Any(), int64(42)).Return(&domain.Account{ID: 7, Balance: 50000}, nil)
	m.chanceRepo.EXPECT().NetProfitSince(gomock.Any(), 7, day).Return(int64(999999), nil)
	m.chanceRepo.EXPECT().LastStatuses(gomock.Any(), 7, 5).Return(nil, nil)

	service.randInt = func(n int) int { return 0 }

	passthroughTx(m)
	m.accountRepo.EXPECT().Debit(gomock.Any(), 7, int64(1000)).Return(int64(49000), nil)
	m.ledgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.chanceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.accountRepo.EXPECT().Credit(gomock.Any(), 7, int64(1800)).Return(int64(50800), nil)

	result, err := service.Play(context.Background(), 42, 1000, domain.ChoiceLow)
	assert.NoError(t, err)
	assert.True(t, result.Win)
	// LOW winner must see a LOW result
	assert.Less(t, result.ResultNum, 50)
}
