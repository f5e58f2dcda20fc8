package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pandodao/carbon-wallet/core"
	"github.com/pandodao/carbon-wallet/format"
	"github.com/pandodao/generic"
	"github.com/shopspring/decimal"
)

const dashboardActivities = 5

type statsView struct {
	TotalCredits  uint64 `json:"total_credits"`
	TotalOffset   uint64 `json:"total_offset"`
	CreditsHeld   uint64 `json:"credits_held"`
	CreditsTraded uint64 `json:"credits_traded"`
}

type sliceView struct {
	Label string `json:"label"`
	Value uint64 `json:"value"`
}

type activityView struct {
	ID          string               `json:"id"`
	Type        core.TransactionKind `json:"type"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Date        string               `json:"date"`
	DisplayDate string               `json:"display_date"`
	Status      core.RecordStatus    `json:"status"`
	Amount      uint64               `json:"amount"`
}

type dashboardView struct {
	Connected    bool            `json:"connected"`
	Address      string          `json:"address,omitempty"`
	Balance      decimal.Decimal `json:"balance"`
	Stats        statsView       `json:"stats"`
	Distribution []sliceView     `json:"distribution"`
	Activities   []activityView  `json:"activities"`
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	wallet := s.wallet.Snapshot()

	view := dashboardView{
		Connected:  wallet.Connected,
		Address:    wallet.Address,
		Balance:    wallet.Balance,
		Activities: []activityView{},
	}

	if wallet.Connected {
		credits, _ := s.credits.ListCredits(ctx, wallet.Address)
		history, _ := s.credits.History(ctx, wallet.Address)

		view.Stats = buildStats(credits, history)
		view.Activities = generic.MapSlice(history[:min(len(history), dashboardActivities)], viewActivity)
	}

	view.Distribution = []sliceView{
		{Label: "Credits Held", Value: view.Stats.CreditsHeld},
		{Label: "Credits Traded", Value: view.Stats.CreditsTraded},
	}

	renderJSON(w, http.StatusOK, view)
}

func buildStats(credits []*core.Credit, history []*core.TransactionRecord) statsView {
	total := core.TotalOffset(credits)

	var traded uint64
	for _, h := range history {
		if h.Kind == core.TransactionKindTransfer {
			traded += h.Amount
		}
	}

	stats := statsView{
		TotalCredits:  total,
		TotalOffset:   total,
		CreditsTraded: traded,
	}

	if total > traded {
		stats.CreditsHeld = total - traded
	}

	return stats
}

func viewActivity(h *core.TransactionRecord) activityView {
	title := "Received Credits"
	switch h.Kind {
	case core.TransactionKindMint:
		title = "Minted Carbon Credits"
	case core.TransactionKindTransfer:
		title = "Transferred Credits"
	}

	return activityView{
		ID:          h.ID,
		Type:        h.Kind,
		Title:       title,
		Description: fmt.Sprintf("%d MT CO₂ • Asset ID: %d", h.Amount, h.AssetID),
		Date:        h.Date,
		DisplayDate: displayDate(h.Date),
		Status:      h.Status,
		Amount:      h.Amount,
	}
}

// displayDate renders a ledger date for display, passing through values that
// aren't plain dates.
func displayDate(date string) string {
	t, err := time.Parse(core.DateLayout, date)
	if err != nil {
		return date
	}

	return format.Date(t)
}
