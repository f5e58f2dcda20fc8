package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pandodao/carbon-wallet/core"
	"github.com/pandodao/carbon-wallet/form"
)

type verifyView struct {
	AssetID      uint64             `json:"asset_id"`
	Verification *core.Verification `json:"verification"`
}

func (s *Server) verifyCredit(w http.ResponseWriter, r *http.Request) {
	var data form.VerifyData
	if err := decodeBody(r, &data); err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	var view verifyView
	err := form.Submit(r.Context(), s.verifyGuard, data, form.ValidateVerify, func(ctx context.Context, d form.VerifyData) error {
		assetID, err := strconv.ParseUint(d.AssetID, 10, 64)
		if err != nil {
			return form.Errors{"asset_id": "Asset ID must be a valid number"}
		}

		v, err := s.credits.Verify(ctx, assetID)
		if err != nil {
			return err
		}

		if v.Verified {
			s.toasts.Success("NFT verification successful")
		} else {
			s.toasts.Error("NFT verification failed")
		}

		view.AssetID = assetID
		view.Verification = v
		return nil
	})

	if err != nil {
		if renderSubmitError(w, err) {
			return
		}

		s.toasts.Error("Error during verification")
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	renderJSON(w, http.StatusOK, view)
}
