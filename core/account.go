package core

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/shopspring/decimal"
)

type Network string

const (
	NetworkTestnet Network = "testnet"
	NetworkMainnet Network = "mainnet"
)

func (n Network) Valid() bool {
	return n == NetworkTestnet || n == NetworkMainnet
}

// Endpoint returns the algod base url of the network, falling back to testnet.
func (n Network) Endpoint() string {
	if n == NetworkMainnet {
		return MainnetEndpoint
	}

	return TestnetEndpoint
}

func ParseNetwork(s string) (Network, error) {
	n := Network(s)
	if !n.Valid() {
		return "", fmt.Errorf("unknown network %q", s)
	}

	return n, nil
}

type Holding struct {
	AssetID uint64 `json:"asset_id"`
	Amount  uint64 `json:"amount"`
	Frozen  bool   `json:"frozen,omitempty"`
}

type Account struct {
	Address string     `json:"address"`
	Amount  uint64     `json:"amount"`
	Assets  []*Holding `json:"assets,omitempty"`
}

// Balance converts the micro unit amount into display units.
func (a *Account) Balance() decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(a.Amount), -MicroUnits)
}

type Asset struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name,omitempty"`
	UnitName  string    `json:"unit_name,omitempty"`
	Total     uint64    `json:"total"`
	Decimals  uint64    `json:"decimals"`
	Creator   string    `json:"creator,omitempty"`
	URL       string    `json:"url,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// StorageHash returns the content id the asset url points at, if the url uses
// the storage scheme.
func (a *Asset) StorageHash() (string, bool) {
	hash, ok := strings.CutPrefix(a.URL, StorageScheme)
	return hash, ok && hash != ""
}

// IssueDate returns the creation date of the asset, or today when the ledger
// does not report one.
func (a *Asset) IssueDate(now time.Time) string {
	if a.CreatedAt.IsZero() {
		return now.UTC().Format(DateLayout)
	}

	return a.CreatedAt.UTC().Format(DateLayout)
}

type LedgerClient interface {
	AccountInformation(ctx context.Context, address string) (*Account, error)
	AssetByID(ctx context.Context, id uint64) (*Asset, error)
	SuggestedParams(ctx context.Context) (types.SuggestedParams, error)
}
