package api

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pandodao/carbon-wallet/core"
	"github.com/pandodao/carbon-wallet/format"
	"github.com/pandodao/carbon-wallet/service/storage"
)

type creditsView struct {
	Connected     bool           `json:"connected"`
	Credits       []*core.Credit `json:"credits"`
	Page          int            `json:"page"`
	Pages         int            `json:"pages"`
	TotalCount    int            `json:"total_count"`
	VerifiedCount int            `json:"verified_count"`
	TotalAmount   uint64         `json:"total_amount"`
}

type creditDetailsView struct {
	*core.Credit
	CO2Offset        uint64 `json:"co2_offset"`
	IssueDateDisplay string `json:"issue_date_display"`
	GatewayURL       string `json:"gateway_url,omitempty"`
}

// creditSorts orders the credits list; the empty key keeps the ledger order.
var creditSorts = map[string]func(a, b *core.Credit) bool{
	"": nil,
	"date": func(a, b *core.Credit) bool {
		return a.IssueDate > b.IssueDate
	},
	"amount": func(a, b *core.Credit) bool {
		return a.Amount > b.Amount
	},
	"organization": func(a, b *core.Credit) bool {
		return a.Organization < b.Organization
	},
}

// filterCredits copies the credits matching the verified filter, all of them
// when it is nil.
func filterCredits(credits []*core.Credit, verified *bool) []*core.Credit {
	out := make([]*core.Credit, 0, len(credits))
	for _, c := range credits {
		if verified == nil || c.Verified == *verified {
			out = append(out, c)
		}
	}

	return out
}

func (s *Server) listCredits(w http.ResponseWriter, r *http.Request) {
	view := creditsView{
		Credits: []*core.Credit{},
		Page:    1,
		Pages:   1,
	}

	address, err := s.wallet.Address()
	if err != nil {
		renderJSON(w, http.StatusOK, view)
		return
	}

	q := r.URL.Query()
	less, ok := creditSorts[q.Get("sort")]
	if !ok {
		renderError(w, http.StatusBadRequest, "unknown sort: "+q.Get("sort"))
		return
	}

	var verified *bool
	if raw := q.Get("verified"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			renderError(w, http.StatusBadRequest, "invalid verified filter: "+raw)
			return
		}

		verified = &v
	}

	credits, _ := s.credits.ListCredits(r.Context(), address)

	view.Connected = true
	view.TotalCount = len(credits)
	view.TotalAmount = core.TotalOffset(credits)
	for _, c := range credits {
		if c.Verified {
			view.VerifiedCount++
		}
	}

	listed := filterCredits(credits, verified)
	if less != nil {
		sort.SliceStable(listed, func(i, j int) bool { return less(listed[i], listed[j]) })
	}

	view.Credits, view.Page, view.Pages = paginate(listed, pageParam(r), core.CreditsPerPage)
	renderJSON(w, http.StatusOK, view)
}

func (s *Server) creditDetails(w http.ResponseWriter, r *http.Request) {
	assetID, ok := format.ParseAssetID(chi.URLParam(r, "asset_id"))
	if !ok {
		renderError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	credit, err := s.credits.Details(r.Context(), assetID)
	if err != nil {
		renderError(w, http.StatusBadGateway, "failed to load credit details")
		return
	}

	renderJSON(w, http.StatusOK, creditDetailsView{
		Credit:           credit,
		CO2Offset:        format.CO2Offset(credit.Amount),
		IssueDateDisplay: displayDate(credit.IssueDate),
		GatewayURL:       storage.GatewayURL(credit.StorageHash),
	})
}
