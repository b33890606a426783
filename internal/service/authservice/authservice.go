package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/zinlatt/betmart/internal/config"
	"github.com/zinlatt/betmart/pkg/auth"
	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 12 * time.Hour

// Service authenticates the operator dashboard and the bot gateway against
// the configured credentials and issues the bearer token the API middleware
// checks.
type Service struct {
	login       string
	passHash    string
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(cfg *config.Config, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		login:       cfg.AdminLogin,
		passHash:    cfg.AdminPassHash,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) Login(_ context.Context, login, password string) (string, error) {
	if login != s.login || !s.hashService.ComparePassword(s.passHash, password) {
		zap.L().Info("rejected login attempt", zap.String("login", login))
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateJWT(1, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
