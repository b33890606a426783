package chance

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zinlatt/betmart/internal/domain"
	"github.com/zinlatt/betmart/internal/dto"
	"github.com/zinlatt/betmart/internal/service/chanceservice"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ChanceHandler, *MockService, *MockMetrics) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	metrics := NewMockMetrics(ctrl)
	handler := New(service, metrics)
	defer ctrl.Finish()
	return handler, service, metrics
}

func TestPlayHandler(t *testing.T) {
	t.Run("Winning round pays out", func(t *testing.T) {
		handler, service, metrics := NewMock(t)

		service.EXPECT().
			Play(gomock.Any(), int64(784512036), int64(1000), domain.ChoiceHigh).
			Return(&chanceservice.Result{
				Ticket:     domain.ChanceTicket{Ref: "ref-1"},
				Win:        true,
				ResultNum:  73,
				ResultSide: domain.ChoiceHigh,
				Payout:     1800,
				NewBalance: 25800,
			}, nil)
		metrics.EXPECT().PayoutPaid(int64(1800))
		metrics.EXPECT().ChancePlayed("win")

		r := httptest.NewRequest(http.MethodPost, "/api/chance/play",
			bytes.NewBufferString(`{"external_id":784512036,"stake":1000,"choice":"HIGH"}`))
		w := httptest.NewRecorder()
		handler.Play(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.ChancePlayResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, dto.ChancePlayResponseDTO{
			Ref:        "ref-1",
			Win:        true,
			ResultNum:  73,
			ResultSide: domain.ChoiceHigh,
			Payout:     1800,
			NewBalance: 25800,
		}, body)
	})

	t.Run("Losing round only counts", func(t *testing.T) {
		handler, service, metrics := NewMock(t)

		service.EXPECT().
			Play(gomock.Any(), int64(784512036), int64(1000), domain.ChoiceLow).
			Return(&chanceservice.Result{
				Ticket:     domain.ChanceTicket{Ref: "ref-2"},
				ResultNum:  81,
				ResultSide: domain.ChoiceHigh,
				NewBalance: 24000,
			}, nil)
		metrics.EXPECT().ChancePlayed("loss")

		r := httptest.NewRequest(http.MethodPost, "/api/chance/play",
			bytes.NewBufferString(`{"external_id":784512036,"stake":1000,"choice":"LOW"}`))
		w := httptest.NewRecorder()
		handler.Play(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.ChancePlayResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.False(t, body.Win)
		assert.Equal(t, int64(0), body.Payout)
	})

	errorCases := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{
			name:         "Stake out of bounds",
			err:          &domain.ValidationError{Amount: 100, Reason: "below minimum stake"},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Unknown account",
			err:          domain.ErrAccountNotFound,
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Insufficient balance",
			err:          domain.ErrInsufficientFunds,
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name:         "Internal server error",
			err:          errors.New("error"),
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			handler, service, _ := NewMock(t)

			service.EXPECT().
				Play(gomock.Any(), int64(784512036), int64(1000), domain.ChoiceHigh).
				Return(nil, tt.err)

			r := httptest.NewRequest(http.MethodPost, "/api/chance/play",
				bytes.NewBufferString(`{"external_id":784512036,"stake":1000,"choice":"HIGH"}`))
			w := httptest.NewRecorder()
			handler.Play(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}

	t.Run("Malformed body", func(t *testing.T) {
		handler, _, _ := NewMock(t)

		r := httptest.NewRequest(http.MethodPost, "/api/chance/play", bytes.NewBufferString(`{"stake":`))
		w := httptest.NewRecorder()
		handler.Play(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
