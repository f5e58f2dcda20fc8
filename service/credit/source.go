package credit

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/andres-erbsen/clock"
	"github.com/pandodao/carbon-wallet/core"
	"github.com/zyedidia/generic/mapset"
)

// NewLedgerSource lists the credits an address holds on the ledger. Every
// held asset counts as a credit; assets that can't be looked up are skipped.
func NewLedgerSource(ledger core.LedgerClient, clk clock.Clock, logger *slog.Logger) core.CreditSource {
	return &ledgerSource{
		ledger: ledger,
		clock:  clk,
		logger: logger.With("source", "ledger"),
	}
}

type ledgerSource struct {
	ledger core.LedgerClient
	clock  clock.Clock
	logger *slog.Logger
}

func (s *ledgerSource) ListCredits(ctx context.Context, address string) ([]*core.Credit, error) {
	account, err := s.ledger.AccountInformation(ctx, address)
	if err != nil {
		return nil, err
	}

	var (
		credits []*core.Credit
		seen    = mapset.New[uint64]()
	)

	for _, h := range account.Assets {
		if seen.Has(h.AssetID) {
			continue
		}

		seen.Put(h.AssetID)

		asset, err := s.ledger.AssetByID(ctx, h.AssetID)
		if err != nil {
			s.logger.Debug("ledger.AssetByID", "asset", h.AssetID, "err", err)
			continue
		}

		credits = append(credits, s.toCredit(h, asset))
	}

	return credits, nil
}

func (s *ledgerSource) toCredit(h *core.Holding, asset *core.Asset) *core.Credit {
	name := asset.Name
	if name == "" {
		name = core.AssetNamePrefix + strconv.FormatUint(h.AssetID, 10)
	}

	c := &core.Credit{
		AssetID:      h.AssetID,
		Name:         name,
		Amount:       h.Amount,
		Organization: asset.Creator,
		IssueDate:    asset.IssueDate(s.clock.Now()),
		Verified:     true,
		Metadata: map[string]string{
			"unitName": asset.UnitName,
			"url":      asset.URL,
		},
	}

	if hash, ok := asset.StorageHash(); ok {
		c.StorageHash = hash
	}

	return c
}
