package core

import (
	"context"

	"github.com/shopspring/decimal"
)

type Credit struct {
	AssetID      uint64            `json:"asset_id"`
	Name         string            `json:"name"`
	Amount       uint64            `json:"amount"`
	Organization string            `json:"organization"`
	IssueDate    string            `json:"issue_date"`
	Verified     bool              `json:"verified"`
	Metadata     map[string]string `json:"metadata"`
	StorageHash  string            `json:"storage_hash,omitempty"`
}

type Verification struct {
	Verified     bool              `json:"verified"`
	Metadata     map[string]string `json:"metadata"`
	Creator      string            `json:"creator"`
	CreationDate string            `json:"creation_date"`
}

// CreditSource lists the credits held by an address. A source returning an
// empty list means it has nothing for the address, not that it failed.
type CreditSource interface {
	ListCredits(ctx context.Context, address string) ([]*Credit, error)
}

type DetailSource interface {
	FindCredit(ctx context.Context, assetID uint64) (*Credit, error)
}

type HistorySource interface {
	ListTransactions(ctx context.Context, address string) ([]*TransactionRecord, error)
}

type CreditService interface {
	Balance(ctx context.Context, address string) (decimal.Decimal, error)
	ListCredits(ctx context.Context, address string) ([]*Credit, error)
	Details(ctx context.Context, assetID uint64) (*Credit, error)
	Verify(ctx context.Context, assetID uint64) (*Verification, error)
	History(ctx context.Context, address string) ([]*TransactionRecord, error)
}

// TotalOffset sums the amounts of the credits; one credit offsets one metric
// ton of CO2.
func TotalOffset(credits []*Credit) uint64 {
	var total uint64
	for _, c := range credits {
		total += c.Amount
	}

	return total
}

// Available returns the amount of the asset held among the credits.
func Available(credits []*Credit, assetID uint64) uint64 {
	for _, c := range credits {
		if c.AssetID == assetID {
			return c.Amount
		}
	}

	return 0
}
