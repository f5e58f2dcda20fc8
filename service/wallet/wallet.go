package wallet

import (
	"context"

	"github.com/asaskevich/govalidator"
	"github.com/pandodao/carbon-wallet/core"
	"github.com/pandodao/carbon-wallet/format"
)

// ExampleAddress is the account every handshake resolves to.
const ExampleAddress = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAY5HFKQ"

type Config struct {
	Address string `valid:"required"`
	// Balance in micro units
	Balance uint64
}

func DefaultConfig() Config {
	return Config{
		Address: ExampleAddress,
		Balance: 1000 * 1_000_000,
	}
}

// New returns a connector that skips the wallet handshake and reports the
// configured account on any network.
func New(cfg Config) core.WalletConnector {
	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		panic(err)
	}

	if !format.IsValidAddress(cfg.Address) {
		panic("wallet: malformed address " + cfg.Address)
	}

	return &connector{cfg: cfg}
}

type connector struct {
	cfg Config
}

func (c *connector) Connect(ctx context.Context, network core.Network) (*core.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &core.Account{
		Address: c.cfg.Address,
		Amount:  c.cfg.Balance,
	}, nil
}
