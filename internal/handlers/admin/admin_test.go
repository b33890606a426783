package admin

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zinlatt/betmart/internal/domain"
	"github.com/zinlatt/betmart/internal/dto"
	"github.com/zinlatt/betmart/internal/service/settlementservice"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	settlement *MockSettlementService
	settings   *MockSettingsService
	accounts   *MockAccountService
	metrics    *MockMetrics
}

func NewMock(t *testing.T) (*AdminHandler, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		settlement: NewMockSettlementService(ctrl),
		settings:   NewMockSettingsService(ctrl),
		accounts:   NewMockAccountService(ctrl),
		metrics:    NewMockMetrics(ctrl),
	}
	handler := New(m.settlement, m.settings, m.accounts, m.metrics)
	defer ctrl.Finish()
	return handler, m
}

func TestSettleHandler(t *testing.T) {
	day := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	t.Run("Settles the batch and reports counters", func(t *testing.T) {
		handler, m := NewMock(t)

		m.settlement.EXPECT().
			Settle(gomock.Any(), domain.GameType2D, "48", "MORNING", day).
			Return(&settlementservice.Outcome{
				Session:   "MORNING",
				Day:       day,
				Processed: 120,
				Winners:   7,
				Losers:    113,
				TotalPaid: 280000,
			}, nil)
		m.metrics.EXPECT().TicketsSettled(domain.TicketWon, 7)
		m.metrics.EXPECT().TicketsSettled(domain.TicketLost, 113)
		m.metrics.EXPECT().PayoutPaid(int64(280000))

		r := httptest.NewRequest(http.MethodPost, "/api/admin/settle",
			bytes.NewBufferString(`{"game_type":"2D","win_number":"48","session":"MORNING","day":"2025-06-09"}`))
		w := httptest.NewRecorder()
		handler.Settle(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.SettleResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, dto.SettleResponseDTO{
			Session:   "MORNING",
			Day:       "2025-06-09",
			Processed: 120,
			Winners:   7,
			Losers:    113,
			TotalPaid: 280000,
		}, body)
	})

	t.Run("Empty day defaults downstream", func(t *testing.T) {
		handler, m := NewMock(t)

		m.settlement.EXPECT().
			Settle(gomock.Any(), domain.GameType2D, "48", "", time.Time{}).
			Return(&settlementservice.Outcome{Session: "EVENING", Day: day}, nil)
		m.metrics.EXPECT().TicketsSettled(domain.TicketWon, 0)
		m.metrics.EXPECT().TicketsSettled(domain.TicketLost, 0)
		m.metrics.EXPECT().PayoutPaid(int64(0))

		r := httptest.NewRequest(http.MethodPost, "/api/admin/settle",
			bytes.NewBufferString(`{"game_type":"2D","win_number":"48"}`))
		w := httptest.NewRecorder()
		handler.Settle(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unknown game type", func(t *testing.T) {
		handler, m := NewMock(t)

		m.settlement.EXPECT().
			Settle(gomock.Any(), "5D", "48", "", time.Time{}).
			Return(nil, domain.ErrUnknownGameType)

		r := httptest.NewRequest(http.MethodPost, "/api/admin/settle",
			bytes.NewBufferString(`{"game_type":"5D","win_number":"48"}`))
		w := httptest.NewRecorder()
		handler.Settle(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Bad day format", func(t *testing.T) {
		handler, _ := NewMock(t)

		r := httptest.NewRequest(http.MethodPost, "/api/admin/settle",
			bytes.NewBufferString(`{"game_type":"2D","win_number":"48","day":"09-06-2025"}`))
		w := httptest.NewRecorder()
		handler.Settle(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Malformed body", func(t *testing.T) {
		handler, _ := NewMock(t)

		r := httptest.NewRequest(http.MethodPost, "/api/admin/settle", bytes.NewBufferString(`{"game_type":`))
		w := httptest.NewRecorder()
		handler.Settle(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetSettingsHandler(t *testing.T) {
	t.Run("Returns stored pairs", func(t *testing.T) {
		handler, m := NewMock(t)

		m.settings.EXPECT().
			All(gomock.Any()).
			Return(map[string]string{"winRatio": "40", "minBet": "500"}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/admin/settings", nil)
		w := httptest.NewRecorder()
		handler.GetSettings(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.SettingsResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, "40", body.Settings["winRatio"])
	})

	t.Run("Internal server error", func(t *testing.T) {
		handler, m := NewMock(t)

		m.settings.EXPECT().
			All(gomock.Any()).
			Return(nil, errors.New("error"))

		r := httptest.NewRequest(http.MethodGet, "/api/admin/settings", nil)
		w := httptest.NewRecorder()
		handler.GetSettings(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestUpdateSettingsHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(m mocks)
		expectedCode int
	}{
		{
			name: "Upserts the given keys",
			body: `{"settings":{"winRatio":"45"}}`,
			prepareMock: func(m mocks) {
				m.settings.EXPECT().
					Update(gomock.Any(), map[string]string{"winRatio": "45"}).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Empty settings",
			body:         `{"settings":{}}`,
			prepareMock:  func(m mocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Malformed body",
			body:         `{"settings":`,
			prepareMock:  func(m mocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"settings":{"winRatio":"45"}}`,
			prepareMock: func(m mocks) {
				m.settings.EXPECT().
					Update(gomock.Any(), map[string]string{"winRatio": "45"}).
					Return(errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, m := NewMock(t)
			tt.prepareMock(m)

			r := httptest.NewRequest(http.MethodPost, "/api/admin/settings", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.UpdateSettings(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestAdjustHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(m mocks)
		expectedCode int
		expectedBody dto.AdjustResponseDTO
	}{
		{
			name: "Credit adjustment",
			body: `{"external_id":784512036,"amount":5000,"description":"top-up via KPay"}`,
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().
					Adjust(gomock.Any(), int64(784512036), int64(5000), "top-up via KPay").
					Return(int64(30000), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.AdjustResponseDTO{NewBalance: 30000},
		},
		{
			name: "Zero amount",
			body: `{"external_id":784512036,"amount":0}`,
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().
					Adjust(gomock.Any(), int64(784512036), int64(0), "").
					Return(int64(0), &domain.ValidationError{Reason: "amount must not be zero"})
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Unknown account",
			body: `{"external_id":999,"amount":5000}`,
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().
					Adjust(gomock.Any(), int64(999), int64(5000), "").
					Return(int64(0), domain.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Balance would go negative",
			body: `{"external_id":784512036,"amount":-90000}`,
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().
					Adjust(gomock.Any(), int64(784512036), int64(-90000), "").
					Return(int64(0), domain.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name:         "Malformed body",
			body:         `{"external_id":`,
			prepareMock:  func(m mocks) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, m := NewMock(t)
			tt.prepareMock(m)

			r := httptest.NewRequest(http.MethodPost, "/api/admin/adjust", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Adjust(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.AdjustResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
