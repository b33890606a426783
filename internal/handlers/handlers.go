package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/zinlatt/betmart/docs"
	accountshandlers "github.com/zinlatt/betmart/internal/handlers/accounts"
	adminhandlers "github.com/zinlatt/betmart/internal/handlers/admin"
	authhandlers "github.com/zinlatt/betmart/internal/handlers/auth"
	chancehandlers "github.com/zinlatt/betmart/internal/handlers/chance"
	sessionhandlers "github.com/zinlatt/betmart/internal/handlers/session"
	wagershandlers "github.com/zinlatt/betmart/internal/handlers/wagers"
	"github.com/zinlatt/betmart/internal/notify"
	"github.com/zinlatt/betmart/internal/service"
	"github.com/zinlatt/betmart/pkg/auth"
	"github.com/zinlatt/betmart/pkg/metrics"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	CreateAccount(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type WagerHandler interface {
	PlaceWagers(w http.ResponseWriter, r *http.Request)
	GetHeadroom(w http.ResponseWriter, r *http.Request)
	GetTickets(w http.ResponseWriter, r *http.Request)
}

type ChanceHandler interface {
	Play(w http.ResponseWriter, r *http.Request)
}

type SessionHandler interface {
	GetSession(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Settle(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	Adjust(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	AccountHandler AccountHandler
	WagerHandler   WagerHandler
	ChanceHandler  ChanceHandler
	SessionHandler SessionHandler
	AdminHandler   AdminHandler

	metrics *metrics.Collector
}

func New(s *service.Services, notifier *notify.Service, collector *metrics.Collector) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		AccountHandler: accountshandlers.New(s.AccountService),
		WagerHandler:   wagershandlers.New(s.WagerService, notifier, collector),
		ChanceHandler:  chancehandlers.New(s.ChanceService, collector),
		SessionHandler: sessionhandlers.New(s.SessionService),
		AdminHandler:   adminhandlers.New(s.SettlementService, s.SettingsService, s.AdjustService, collector),
		metrics:        collector,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", h.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/accounts", func(r chi.Router) {
				r.Post("/", h.AccountHandler.CreateAccount)
				r.Get("/{externalID}/balance", h.AccountHandler.GetBalance)
				r.Get("/{externalID}/transactions", h.AccountHandler.GetTransactions)
				r.Get("/{externalID}/tickets", h.WagerHandler.GetTickets)
			})
			r.Route("/wagers", func(r chi.Router) {
				r.Post("/", h.WagerHandler.PlaceWagers)
				r.Get("/headroom", h.WagerHandler.GetHeadroom)
			})
			r.Post("/chance/play", h.ChanceHandler.Play)
			r.Get("/session", h.SessionHandler.GetSession)
			r.Route("/admin", func(r chi.Router) {
				r.Post("/settle", h.AdminHandler.Settle)
				r.Get("/settings", h.AdminHandler.GetSettings)
				r.Post("/settings", h.AdminHandler.UpdateSettings)
				r.Post("/adjust", h.AdminHandler.Adjust)
			})
		})
	})

	return r
}
