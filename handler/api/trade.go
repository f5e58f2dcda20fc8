package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pandodao/carbon-wallet/core"
	"github.com/pandodao/carbon-wallet/form"
	"github.com/pandodao/carbon-wallet/format"
)

const notePreviewLength = 64

type tradeView struct {
	Summary string                  `json:"summary"`
	Note    string                  `json:"note,omitempty"`
	Result  *core.TransactionResult `json:"result"`
}

func (s *Server) tradeCredits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var data form.TradeData
	if err := decodeBody(r, &data); err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	address, err := s.wallet.Address()
	if err != nil {
		s.toasts.Error("Connect your wallet to trade credits")
		renderJSON(w, http.StatusOK, tradeView{Result: &core.TransactionResult{
			Status:  core.TransactionStatusFailed,
			Message: "Wallet not connected",
		}})
		return
	}

	var available uint64
	if data.AssetID > 0 {
		credits, _ := s.credits.ListCredits(ctx, address)
		available = core.Available(credits, uint64(data.AssetID))
	}

	validate := func(d form.TradeData) form.Errors {
		return form.ValidateTrade(d, available)
	}

	var view tradeView
	err = form.Submit(ctx, s.tradeGuard, data, validate, func(ctx context.Context, d form.TradeData) error {
		view.Summary = fmt.Sprintf("Transfer %d credits to %s", d.Amount, format.Address(d.RecipientAddress))
		view.Note = format.Truncate(d.Message, notePreviewLength)
		view.Result = s.transactions.Transfer(ctx, &core.TransferRequest{
			From:      address,
			AssetID:   uint64(d.AssetID),
			Recipient: d.RecipientAddress,
			Amount:    uint64(d.Amount),
			Note:      d.Message,
		})

		switch view.Result.Status {
		case core.TransactionStatusSuccess:
			s.toasts.Success("Credits transferred successfully!")
		case core.TransactionStatusPending:
			s.toasts.Info(view.Result.Message)
		default:
			s.toasts.Error("Failed to transfer credits")
		}

		return nil
	})

	if err != nil {
		if renderSubmitError(w, err) {
			return
		}

		s.toasts.Error("Error during transfer")
		renderJSON(w, http.StatusInternalServerError, tradeView{Result: &core.TransactionResult{
			Status:  core.TransactionStatusFailed,
			Message: err.Error(),
		}})
		return
	}

	renderJSON(w, http.StatusOK, view)
}
