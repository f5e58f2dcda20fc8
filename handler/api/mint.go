package api

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/pandodao/carbon-wallet/core"
	"github.com/pandodao/carbon-wallet/form"
	"github.com/pandodao/carbon-wallet/format"
	"github.com/pandodao/carbon-wallet/service/storage"
	"github.com/shopspring/decimal"
)

type certificateUpload struct {
	Name    string `json:"name"`
	Content []byte `json:"content"`
}

type mintRequest struct {
	form.MintData
	Certificate *certificateUpload `json:"certificate,omitempty"`
}

type mintFormView struct {
	Defaults         form.MintData `json:"defaults"`
	CertificateTypes []string      `json:"certificate_types"`
	MinCreditAmount  int64         `json:"min_credit_amount"`
	MaxCreditAmount  int64         `json:"max_credit_amount"`
}

type mintPreviewView struct {
	form.MintData
	CreditAmountDisplay string `json:"credit_amount_display"`
	CO2Offset           uint64 `json:"co2_offset"`
}

type mintView struct {
	Result      *core.TransactionResult `json:"result"`
	Certificate *core.StorageObject     `json:"certificate,omitempty"`
	Metadata    *core.StorageObject     `json:"metadata,omitempty"`
}

func (s *Server) mintForm(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, mintFormView{
		Defaults:         form.NewMintData(s.clock.Now()),
		CertificateTypes: form.CertificateTypes,
		MinCreditAmount:  core.MinCreditAmount,
		MaxCreditAmount:  core.MaxCreditAmount,
	})
}

func (s *Server) mintPreview(w http.ResponseWriter, r *http.Request) {
	var data form.MintData
	if err := decodeBody(r, &data); err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	if errs := form.ValidateMint(data); !errs.Valid() {
		renderSubmitError(w, errs)
		return
	}

	renderJSON(w, http.StatusOK, mintPreviewView{
		MintData:            data,
		CreditAmountDisplay: format.Number(decimal.NewFromInt(data.CreditAmount)),
		CO2Offset:           format.CO2Offset(uint64(data.CreditAmount)),
	})
}

func (s *Server) mintCredits(w http.ResponseWriter, r *http.Request) {
	var req mintRequest
	if err := decodeBody(r, &req); err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	var view mintView
	err := form.Submit(r.Context(), s.mintGuard, req.MintData, form.ValidateMint, func(ctx context.Context, data form.MintData) error {
		address, err := s.wallet.Address()
		if err != nil {
			s.toasts.Error("Connect your wallet to mint credits")
			view.Result = &core.TransactionResult{
				Status:  core.TransactionStatusFailed,
				Message: "Wallet not connected",
			}

			return nil
		}

		var certificateHash string
		if c := req.Certificate; c != nil && len(c.Content) > 0 {
			obj, err := s.storage.Upload(ctx, c.Name, bytes.NewReader(c.Content))
			if err != nil {
				s.logger.Error("storage.Upload", "name", c.Name, "err", err)
				s.toasts.Error("Failed to upload certificate")
			} else {
				view.Certificate = obj
				certificateHash = obj.Hash
				s.toasts.Success("Certificate uploaded to IPFS")
			}
		}

		now := s.clock.Now()
		metadata := storage.NewCreditMetadata(storage.CreditMetadata{
			Name:            data.OrganizationName,
			Description:     data.Description,
			Organization:    data.OrganizationName,
			Amount:          uint64(data.CreditAmount),
			CertificateHash: certificateHash,
			Extra: map[string]any{
				"certificateType": data.CertificateType,
				"issueDate":       data.IssueDate,
				"location":        data.Location,
				"createdAt":       now.UTC().Format(time.RFC3339),
			},
		}, now)

		obj, err := s.storage.UploadMetadata(ctx, metadata)
		if err != nil {
			return err
		}

		view.Metadata = obj
		view.Result = s.transactions.Mint(ctx, &core.MintRequest{
			From:             address,
			OrganizationName: data.OrganizationName,
			CreditAmount:     uint64(data.CreditAmount),
			Description:      data.Description,
			StorageHash:      obj.Hash,
		})

		switch view.Result.Status {
		case core.TransactionStatusSuccess:
			s.toasts.Success("Carbon credit NFT minted successfully!")
		case core.TransactionStatusPending:
			s.toasts.Info(view.Result.Message)
		default:
			s.toasts.Error("Failed to mint NFT")
		}

		return nil
	})

	if err != nil {
		if renderSubmitError(w, err) {
			return
		}

		s.toasts.Error("Error during minting process")
		view.Result = &core.TransactionResult{
			Status:  core.TransactionStatusFailed,
			Message: err.Error(),
		}

		renderJSON(w, http.StatusInternalServerError, view)
		return
	}

	renderJSON(w, http.StatusOK, view)
}
