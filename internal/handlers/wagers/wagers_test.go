package wagers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/zinlatt/betmart/internal/domain"
	"github.com/zinlatt/betmart/internal/dto"
	"github.com/zinlatt/betmart/internal/notify"
	"github.com/zinlatt/betmart/internal/service/wagerservice"
	"github.com/zinlatt/betmart/pkg/betgrammar"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*WagerHandler, *MockService, *MockNotifier, *MockMetrics) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	notifier := NewMockNotifier(ctrl)
	metrics := NewMockMetrics(ctrl)
	handler := New(service, notifier, metrics)
	defer ctrl.Finish()
	return handler, service, notifier, metrics
}

func TestPlaceWagersHandler(t *testing.T) {
	day := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	now := time.Now().Truncate(time.Second)

	t.Run("Committed batch confirms and counts", func(t *testing.T) {
		handler, service, notifier, metrics := NewMock(t)

		service.EXPECT().
			PlaceWagers(gomock.Any(), int64(784512036), "12-500 34-1000").
			Return(&wagerservice.Result{
				Tickets: []domain.WagerTicket{
					{Ref: "ref-1", GameType: domain.GameType2D, Number: "12", Stake: 500, Session: "MORNING", Status: domain.TicketPending, CreatedAt: now},
					{Ref: "ref-2", GameType: domain.GameType2D, Number: "34", Stake: 1000, Session: "MORNING", Status: domain.TicketPending, CreatedAt: now},
				},
				FaceTotal:  1500,
				Debited:    1500,
				NewBalance: 23500,
				Session:    "MORNING",
				Day:        day,
			}, nil)
		metrics.EXPECT().WagerAccepted()
		notifier.EXPECT().WagerAccepted(notify.WagerConfirmation{
			ExternalID: 784512036,
			Session:    "MORNING",
			Numbers:    []string{"12", "34"},
			FaceTotal:  1500,
			Debited:    1500,
			NewBalance: 23500,
		})

		r := httptest.NewRequest(http.MethodPost, "/api/wagers",
			bytes.NewBufferString(`{"external_id":784512036,"text":"12-500 34-1000"}`))
		w := httptest.NewRecorder()
		handler.PlaceWagers(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.PlaceWagersResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body.Tickets, 2)
		assert.Equal(t, int64(1500), body.FaceTotal)
		assert.Equal(t, "2025-06-09", body.Day)
	})

	t.Run("Malformed body", func(t *testing.T) {
		handler, _, _, _ := NewMock(t)

		r := httptest.NewRequest(http.MethodPost, "/api/wagers", bytes.NewBufferString(`{"text":`))
		w := httptest.NewRecorder()
		handler.PlaceWagers(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	rejections := []struct {
		name            string
		err             error
		expectedCode    int
		exposureRefused bool
	}{
		{
			name:         "Parse error",
			err:          &betgrammar.ParseError{Token: "12x", Reason: "missing amount"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Stake below minimum",
			err:          &domain.ValidationError{Number: "12", Amount: 100, Reason: "below minimum stake"},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Blocked number",
			err:          &domain.BlockedNumberError{Number: "11"},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:            "Number sold out",
			err:             &domain.CapacityError{Number: "12", Remaining: 500},
			expectedCode:    http.StatusConflict,
			exposureRefused: true,
		},
		{
			name:         "Window closed",
			err:          &domain.WindowClosedError{Reason: "between sessions"},
			expectedCode: http.StatusForbidden,
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
	}

	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			handler, service, _, metrics := NewMock(t)

			service.EXPECT().
				PlaceWagers(gomock.Any(), int64(784512036), "12-500").
				Return(nil, tt.err)
			metrics.EXPECT().WagerRejected()
			if tt.exposureRefused {
				metrics.EXPECT().ExposureRefused()
			}

			r := httptest.NewRequest(http.MethodPost, "/api/wagers",
				bytes.NewBufferString(`{"external_id":784512036,"text":"12-500"}`))
			w := httptest.NewRecorder()
			handler.PlaceWagers(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}

	t.Run("Internal error is not a rejection", func(t *testing.T) {
		handler, service, _, _ := NewMock(t)

		service.EXPECT().
			PlaceWagers(gomock.Any(), int64(784512036), "12-500").
			Return(nil, errors.New("error"))

		r := httptest.NewRequest(http.MethodPost, "/api/wagers",
			bytes.NewBufferString(`{"external_id":784512036,"text":"12-500"}`))
		w := httptest.NewRecorder()
		handler.PlaceWagers(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetHeadroomHandler(t *testing.T) {
	tests := []struct {
		name         string
		number       string
		prepareMock  func(service *MockService, metrics *MockMetrics)
		expectedCode int
		expectedBody dto.HeadroomResponseDTO
	}{
		{
			name:   "Remaining capacity",
			number: "12",
			prepareMock: func(service *MockService, metrics *MockMetrics) {
				service.EXPECT().
					Headroom(gomock.Any(), "12").
					Return(int64(350000), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.HeadroomResponseDTO{Number: "12", Remaining: 350000},
		},
		{
			name:         "Number must be two digits",
			number:       "123",
			prepareMock:  func(service *MockService, metrics *MockMetrics) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Window closed",
			number: "12",
			prepareMock: func(service *MockService, metrics *MockMetrics) {
				service.EXPECT().
					Headroom(gomock.Any(), "12").
					Return(int64(0), &domain.WindowClosedError{Reason: "closed for the day"})
				metrics.EXPECT().WagerRejected()
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service, _, metrics := NewMock(t)
			tt.prepareMock(service, metrics)

			r := httptest.NewRequest(http.MethodGet, "/api/wagers/headroom?number="+tt.number, nil)
			w := httptest.NewRecorder()
			handler.GetHeadroom(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.HeadroomResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetTicketsHandler(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	t.Run("Tickets newest first", func(t *testing.T) {
		handler, service, _, _ := NewMock(t)

		service.EXPECT().
			Tickets(gomock.Any(), int64(784512036), historyLimit).
			Return([]domain.WagerTicket{
				{Ref: "ref-2", GameType: domain.GameType2D, Number: "48", Stake: 1000, Session: "EVENING", Status: domain.TicketWon, CreatedAt: now},
				{Ref: "ref-1", GameType: domain.GameType2D, Number: "12", Stake: 500, Session: "MORNING", Status: domain.TicketLost, CreatedAt: now},
			}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/accounts/784512036/tickets", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("externalID", "784512036")
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
		w := httptest.NewRecorder()
		handler.GetTickets(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.WagerTicketDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 2)
		assert.Equal(t, domain.TicketWon, body[0].Status)
	})

	t.Run("Account not found", func(t *testing.T) {
		handler, service, _, _ := NewMock(t)

		service.EXPECT().
			Tickets(gomock.Any(), int64(999), historyLimit).
			Return(nil, domain.ErrAccountNotFound)

		r := httptest.NewRequest(http.MethodGet, "/api/accounts/999/tickets", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("externalID", "999")
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
		w := httptest.NewRecorder()
		handler.GetTickets(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
