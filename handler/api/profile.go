package api

import (
	"net/http"

	"github.com/pandodao/carbon-wallet/core"
	"github.com/pandodao/carbon-wallet/format"
)

type profileView struct {
	Connected    bool                      `json:"connected"`
	Address      string                    `json:"address,omitempty"`
	ShortAddress string                    `json:"short_address,omitempty"`
	Balance      string                    `json:"balance,omitempty"`
	Network      core.Network              `json:"network"`
	Transactions []*core.TransactionRecord `json:"transactions"`
	Page         int                       `json:"page"`
	Pages        int                       `json:"pages"`
}

func (s *Server) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	wallet := s.wallet.Snapshot()

	view := profileView{
		Connected:    wallet.Connected,
		Network:      wallet.Network,
		Transactions: []*core.TransactionRecord{},
		Page:         1,
		Pages:        1,
	}

	if !wallet.Connected {
		renderJSON(w, http.StatusOK, view)
		return
	}

	// a failed refresh keeps the last known balance
	if balance, err := s.credits.Balance(ctx, wallet.Address); err == nil {
		s.wallet.UpdateBalance(balance)
		wallet.Balance = balance
	}

	history, _ := s.credits.History(ctx, wallet.Address)

	view.Address = wallet.Address
	view.ShortAddress = format.Address(wallet.Address)
	view.Balance = format.Currency(wallet.Balance, "")
	view.Transactions, view.Page, view.Pages = paginate(history, pageParam(r), core.ActivitiesPerPage)

	renderJSON(w, http.StatusOK, view)
}

func (s *Server) connectWallet(w http.ResponseWriter, r *http.Request) {
	state, err := s.wallet.Connect(r.Context())
	if err != nil {
		s.toasts.Error("Failed to connect wallet")
		renderError(w, http.StatusBadGateway, err.Error())
		return
	}

	s.toasts.Success("Wallet connected")
	renderJSON(w, http.StatusOK, state)
}

func (s *Server) disconnectWallet(w http.ResponseWriter, r *http.Request) {
	s.wallet.Disconnect()
	s.toasts.Info("Wallet disconnected")
	renderJSON(w, http.StatusOK, s.wallet.Snapshot())
}
