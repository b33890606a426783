package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zinlatt/betmart/internal/dto"
	"github.com/zinlatt/betmart/pkg/gametime"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*SessionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetSessionHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.SessionResponseDTO
	}{
		{
			name: "Open morning window",
			prepareMock: func() {
				service.EXPECT().
					WindowStatus(gomock.Any()).
					Return(gametime.Status{Open: true, Session: "MORNING"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.SessionResponseDTO{Open: true, Session: "MORNING"},
		},
		{
			name: "Closed between sessions",
			prepareMock: func() {
				service.EXPECT().
					WindowStatus(gomock.Any()).
					Return(gametime.Status{Reason: gametime.ReasonBetweenSessions}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.SessionResponseDTO{Reason: gametime.ReasonBetweenSessions},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					WindowStatus(gomock.Any()).
					Return(gametime.Status{}, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/session", nil)
			w := httptest.NewRecorder()
			handler.GetSession(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.SessionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
