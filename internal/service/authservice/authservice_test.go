package authservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zinlatt/betmart/internal/config"
	"github.com/zinlatt/betmart/pkg/auth"
)

func newTestService(t *testing.T) *Service {
	hashService := &auth.HashService{}
	hash, err := hashService.HashPassword("hunter2")
	assert.NoError(t, err)

	auth.SetSecret("test-secret")
	cfg := &config.Config{
		AdminLogin:    "operator",
		AdminPassHash: hash,
	}
	return New(cfg, hashService, &auth.JWTService{})
}

func TestLogin(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		name          string
		login         string
		password      string
		expectedError error
	}{
		{name: "valid credentials", login: "operator", password: "hunter2"},
		{name: "wrong password", login: "operator", password: "letmein", expectedError: ErrInvalidCredentials},
		{name: "wrong login", login: "admin", password: "hunter2", expectedError: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.Login(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := (&auth.JWTService{}).ValidateToken(token)
			assert.NoError(t, err)
			assert.Equal(t, 1, claims.ActorID)
		})
	}
}
