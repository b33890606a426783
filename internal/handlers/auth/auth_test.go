package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zinlatt/betmart/internal/dto"
	"github.com/zinlatt/betmart/internal/service/authservice"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.LoginResponseDTO
	}{
		{
			name: "Successful login",
			body: `{"login":"operator","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Login(gomock.Any(), "operator", "secret").
					Return("token-123", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.LoginResponseDTO{Token: "token-123"},
		},
		{
			name: "Invalid credentials",
			body: `{"login":"operator","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().
					Login(gomock.Any(), "operator", "wrong").
					Return("", authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Malformed body",
			body:         `{"login":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"login":"operator","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Login(gomock.Any(), "operator", "secret").
					Return("", errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.LoginResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
