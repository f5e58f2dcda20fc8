package api

import (
	"log/slog"
	"net/http"

	"github.com/andres-erbsen/clock"
	"github.com/go-chi/chi/v5"
	"github.com/pandodao/carbon-wallet/core"
	"github.com/pandodao/carbon-wallet/form"
	"github.com/pandodao/carbon-wallet/notify"
	"github.com/pandodao/carbon-wallet/session"
)

func New(
	credits core.CreditService,
	transactions core.TransactionService,
	storage core.StorageService,
	theme *session.Theme,
	wallet *session.Wallet,
	toasts *notify.Center,
	clk clock.Clock,
	logger *slog.Logger,
) *Server {
	logger = logger.With("server", "api")

	return &Server{
		credits:      credits,
		transactions: transactions,
		storage:      storage,
		theme:        theme,
		wallet:       wallet,
		toasts:       toasts,
		clock:        clk,
		logger:       logger,
		mintGuard:    form.NewGuard("mint", logger),
		tradeGuard:   form.NewGuard("trade", logger),
		verifyGuard:  form.NewGuard("verify", logger),
	}
}

type Server struct {
	credits      core.CreditService
	transactions core.TransactionService
	storage      core.StorageService
	theme        *session.Theme
	wallet       *session.Wallet
	toasts       *notify.Center
	clock        clock.Clock
	logger       *slog.Logger

	mintGuard   *form.Guard
	tradeGuard  *form.Guard
	verifyGuard *form.Guard
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/dashboard", s.dashboard)

	r.Route("/mint", func(r chi.Router) {
		r.Get("/", s.mintForm)
		r.Post("/", s.mintCredits)
		r.Post("/preview", s.mintPreview)
	})

	r.Route("/credits", func(r chi.Router) {
		r.Get("/", s.listCredits)
		r.Get("/{asset_id}", s.creditDetails)
	})

	r.Post("/trade", s.tradeCredits)
	r.Post("/verify", s.verifyCredit)
	r.Get("/profile", s.profile)

	r.Route("/settings", func(r chi.Router) {
		r.Get("/", s.settings)
		r.Post("/theme", s.setTheme)
		r.Put("/network", s.setNetwork)
	})

	r.Get("/about", s.about)

	r.Route("/wallet", func(r chi.Router) {
		r.Post("/connect", s.connectWallet)
		r.Post("/disconnect", s.disconnectWallet)
	})

	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", s.listNotifications)
		r.Post("/{id}/pause", s.pauseNotification)
		r.Post("/{id}/resume", s.resumeNotification)
		r.Delete("/{id}", s.closeNotification)
	})

	r.NotFound(NotFound)
	return r
}

// NotFound answers unknown routes with a json error.
func NotFound(w http.ResponseWriter, r *http.Request) {
	renderError(w, http.StatusNotFound, "page not found: "+r.URL.Path)
}
