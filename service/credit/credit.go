package credit

import (
	"context"
	"log/slog"

	"github.com/andres-erbsen/clock"
	"github.com/pandodao/carbon-wallet/core"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// Sources are the data sources behind the read operations. Fallback answers
// ListCredits when Primary has nothing for the address.
type Sources struct {
	Primary  core.CreditSource
	Fallback core.CreditSource
	Details  core.DetailSource
	History  core.HistorySource
}

func New(
	ledger core.LedgerClient,
	sources Sources,
	clk clock.Clock,
	logger *slog.Logger,
) core.CreditService {
	return &service{
		ledger:  ledger,
		sources: sources,
		clock:   clk,
		logger:  logger.With("service", "credit"),
		sf:      &singleflight.Group{},
	}
}

type service struct {
	ledger  core.LedgerClient
	sources Sources
	clock   clock.Clock
	logger  *slog.Logger
	sf      *singleflight.Group
}

// Balance returns the account balance in display units.
func (s *service) Balance(ctx context.Context, address string) (decimal.Decimal, error) {
	account, err := s.ledger.AccountInformation(ctx, address)
	if err != nil {
		s.logger.Error("ledger.AccountInformation", "address", address, "err", err)
		return decimal.Zero, err
	}

	return account.Balance(), nil
}

// ListCredits never fails: a primary source error yields an empty list, an
// empty primary result yields the fallback list.
func (s *service) ListCredits(ctx context.Context, address string) ([]*core.Credit, error) {
	// the call is shared, one caller going away must not fail the others
	ctx = context.WithoutCancel(ctx)

	v, _, _ := s.sf.Do("credits:"+address, func() (any, error) {
		credits, err := s.sources.Primary.ListCredits(ctx, address)
		if err != nil {
			s.logger.Error("primary.ListCredits", "address", address, "err", err)
			return []*core.Credit{}, nil
		}

		if len(credits) > 0 {
			return credits, nil
		}

		credits, err = s.sources.Fallback.ListCredits(ctx, address)
		if err != nil {
			s.logger.Error("fallback.ListCredits", "address", address, "err", err)
			return []*core.Credit{}, nil
		}

		return credits, nil
	})

	return v.([]*core.Credit), nil
}

func (s *service) Details(ctx context.Context, assetID uint64) (*core.Credit, error) {
	credit, err := s.sources.Details.FindCredit(ctx, assetID)
	if err != nil {
		s.logger.Error("details.FindCredit", "asset", assetID, "err", err)
		return nil, err
	}

	return credit, nil
}

// Verify reports an asset as verified when the ledger knows its creator. A
// failed lookup degrades to an unverified result.
func (s *service) Verify(ctx context.Context, assetID uint64) (*core.Verification, error) {
	asset, err := s.ledger.AssetByID(ctx, assetID)
	if err != nil {
		s.logger.Error("ledger.AssetByID", "asset", assetID, "err", err)
		return &core.Verification{Metadata: map[string]string{}}, nil
	}

	metadata := map[string]string{}
	if hash, ok := asset.StorageHash(); ok {
		metadata["ipfs"] = hash
	} else if asset.URL != "" {
		metadata["url"] = asset.URL
	}

	return &core.Verification{
		Verified:     asset.Creator != "",
		Metadata:     metadata,
		Creator:      asset.Creator,
		CreationDate: asset.IssueDate(s.clock.Now()),
	}, nil
}

func (s *service) History(ctx context.Context, address string) ([]*core.TransactionRecord, error) {
	records, err := s.sources.History.ListTransactions(ctx, address)
	if err != nil {
		s.logger.Error("history.ListTransactions", "address", address, "err", err)
		return []*core.TransactionRecord{}, nil
	}

	return records, nil
}
