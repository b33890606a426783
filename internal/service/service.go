package service

import (
	"time"

	"github.com/zinlatt/betmart/internal/config"
	"github.com/zinlatt/betmart/internal/handlers/accounts"
	"github.com/zinlatt/betmart/internal/handlers/admin"
	"github.com/zinlatt/betmart/internal/handlers/auth"
	"github.com/zinlatt/betmart/internal/handlers/chance"
	"github.com/zinlatt/betmart/internal/handlers/session"
	"github.com/zinlatt/betmart/internal/handlers/wagers"
	"github.com/zinlatt/betmart/internal/pg"
	"github.com/zinlatt/betmart/internal/repo"
	"github.com/zinlatt/betmart/internal/service/accountservice"
	"github.com/zinlatt/betmart/internal/service/authservice"
	"github.com/zinlatt/betmart/internal/service/chanceservice"
	"github.com/zinlatt/betmart/internal/service/settingsservice"
	"github.com/zinlatt/betmart/internal/service/settlementservice"
	"github.com/zinlatt/betmart/internal/service/wagerservice"
	pkgauth "github.com/zinlatt/betmart/pkg/auth"
)

type Services struct {
	AuthService       auth.Service
	AccountService    accounts.Service
	WagerService      wagers.Service
	ChanceService     chance.Service
	SettlementService admin.SettlementService
	SettingsService   admin.SettingsService
	AdjustService     admin.AccountService
	SessionService    session.Service

	Settings *settingsservice.Service
}

func New(cfg *config.Config, repos *repo.Repositories, txManager pg.TXManager, notifier settlementservice.Notifier, loc *time.Location) *Services {
	settingsService := settingsservice.New(repos.SettingsRepo)
	accountService := accountservice.New(repos.AccountRepo, repos.LedgerRepo, txManager)
	wagerService := wagerservice.New(repos.AccountRepo, repos.TicketRepo, repos.LedgerRepo, settingsService, txManager, loc)
	chanceService := chanceservice.New(repos.AccountRepo, repos.ChanceRepo, repos.LedgerRepo, settingsService, txManager, loc)
	settlementService := settlementservice.New(repos.TicketRepo, repos.AccountRepo, repos.LedgerRepo, settingsService, txManager, notifier, loc)
	authService := authservice.New(cfg, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:       authService,
		AccountService:    accountService,
		WagerService:      wagerService,
		ChanceService:     chanceService,
		SettlementService: settlementService,
		SettingsService:   settingsService,
		AdjustService:     accountService,
		SessionService:    wagerService,
		Settings:          settingsService,
	}
}
