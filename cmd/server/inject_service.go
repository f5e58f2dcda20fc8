package main

import (
	"context"
	"log/slog"

	"github.com/andres-erbsen/clock"
	"github.com/google/wire"
	"github.com/pandodao/carbon-wallet/core"
	"github.com/pandodao/carbon-wallet/notify"
	"github.com/pandodao/carbon-wallet/service/credit"
	"github.com/pandodao/carbon-wallet/service/fixture"
	"github.com/pandodao/carbon-wallet/service/ledger"
	"github.com/pandodao/carbon-wallet/service/signer"
	"github.com/pandodao/carbon-wallet/service/storage"
	"github.com/pandodao/carbon-wallet/service/transaction"
	"github.com/pandodao/carbon-wallet/service/wallet"
	"github.com/pandodao/carbon-wallet/session"
	"github.com/spf13/viper"
)

var serviceSet = wire.NewSet(
	provideClock,
	provideNetwork,
	provideLedgerConfig,
	ledger.New,
	fixture.New,
	provideCreditSources,
	credit.New,
	provideSigner,
	transaction.New,
	storage.New,
	provideWalletConfig,
	wallet.New,
)

var sessionSet = wire.NewSet(
	provideTheme,
	provideWallet,
	provideNotifyConfig,
	provideToasts,
)

func provideClock() clock.Clock {
	return clock.New()
}

func provideNetwork(v *viper.Viper) (core.Network, error) {
	v.SetDefault("ledger.network", string(core.NetworkTestnet))
	return core.ParseNetwork(v.GetString("ledger.network"))
}

func provideLedgerConfig(v *viper.Viper, network core.Network) ledger.Config {
	v.SetDefault("ledger.endpoint", network.Endpoint())

	return ledger.Config{
		Endpoint: v.GetString("ledger.endpoint"),
		APIKey:   v.GetString("ledger.api_key"),
	}
}

func provideCreditSources(
	client core.LedgerClient,
	fixtures *fixture.Source,
	clk clock.Clock,
	logger *slog.Logger,
) credit.Sources {
	return credit.Sources{
		Primary:  credit.NewLedgerSource(client, clk, logger),
		Fallback: fixtures,
		Details:  fixtures,
		History:  fixtures,
	}
}

func provideSigner(v *viper.Viper) (core.Signer, error) {
	v.SetDefault("signer.kind", string(core.SignerKindNoop))
	return signer.New(core.SignerKind(v.GetString("signer.kind")))
}

func provideWalletConfig(v *viper.Viper) wallet.Config {
	cfg := wallet.DefaultConfig()
	v.SetDefault("wallet.address", cfg.Address)
	v.SetDefault("wallet.balance", cfg.Balance)

	return wallet.Config{
		Address: v.GetString("wallet.address"),
		Balance: v.GetUint64("wallet.balance"),
	}
}

func provideTheme(v *viper.Viper, properties core.PropertyStore, logger *slog.Logger) (*session.Theme, func(), error) {
	v.SetDefault("theme.dark", false)

	theme, err := session.LoadTheme(context.Background(), properties, v.GetBool("theme.dark"), logger)
	if err != nil {
		return nil, nil, err
	}

	return theme, func() { _ = theme.Close() }, nil
}

func provideWallet(connector core.WalletConnector, network core.Network, logger *slog.Logger) (*session.Wallet, func()) {
	w := session.NewWallet(connector, network, logger)
	return w, func() { _ = w.Close() }
}

func provideNotifyConfig(v *viper.Viper) notify.Config {
	cfg := notify.DefaultConfig()
	v.SetDefault("notify.duration", cfg.Duration)
	v.SetDefault("notify.exit_delay", cfg.ExitDelay)

	return notify.Config{
		Duration:  v.GetDuration("notify.duration"),
		ExitDelay: v.GetDuration("notify.exit_delay"),
	}
}

func provideToasts(clk clock.Clock, cfg notify.Config, logger *slog.Logger) (*notify.Center, func()) {
	c := notify.New(clk, cfg, logger)
	return c, c.Shutdown
}
