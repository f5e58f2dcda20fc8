package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pandodao/carbon-wallet/core"
	"github.com/shopspring/decimal"
)

type WalletState struct {
	Connected bool            `json:"connected"`
	Address   string          `json:"address"`
	Balance   decimal.Decimal `json:"balance"`
	Network   core.Network    `json:"network"`
}

type Wallet struct {
	connector core.WalletConnector
	logger    *slog.Logger

	// ctx lives as long as the session; Close cancels it and with it every
	// connect still in flight.
	ctx    context.Context
	cancel context.CancelFunc

	mux   sync.RWMutex
	state WalletState
}

func NewWallet(connector core.WalletConnector, network core.Network, logger *slog.Logger) *Wallet {
	if !network.Valid() {
		network = core.NetworkTestnet
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Wallet{
		connector: connector,
		logger:    logger.With("session", "wallet"),
		ctx:       ctx,
		cancel:    cancel,
		state: WalletState{
			Balance: decimal.Zero,
			Network: network,
		},
	}
}

// Connect runs the wallet handshake on the selected network and stores the
// account it reports.
func (w *Wallet) Connect(ctx context.Context) (WalletState, error) {
	if err := w.ctx.Err(); err != nil {
		return WalletState{}, ErrClosed
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stop := context.AfterFunc(w.ctx, cancel)
	defer stop()

	network := w.Snapshot().Network
	account, err := w.connector.Connect(ctx, network)
	if err != nil {
		if w.ctx.Err() != nil {
			return WalletState{}, ErrClosed
		}

		w.logger.Error("connector.Connect", "network", network, "err", err)
		return w.Snapshot(), fmt.Errorf("connect wallet: %w", err)
	}

	w.mux.Lock()
	defer w.mux.Unlock()

	// the session may have been closed while the handshake was running
	if w.ctx.Err() != nil {
		return WalletState{}, ErrClosed
	}

	w.state.Connected = true
	w.state.Address = account.Address
	w.state.Balance = account.Balance()

	w.logger.Info("wallet connected", "address", account.Address, "network", w.state.Network)
	return w.state, nil
}

// Disconnect clears the connection flag, address and balance.
func (w *Wallet) Disconnect() {
	w.mux.Lock()
	defer w.mux.Unlock()

	w.state.Connected = false
	w.state.Address = ""
	w.state.Balance = decimal.Zero
}

// SetNetwork selects the network. The connected address is not checked
// against it.
func (w *Wallet) SetNetwork(network core.Network) error {
	if !network.Valid() {
		return fmt.Errorf("unknown network %q", network)
	}

	w.mux.Lock()
	w.state.Network = network
	w.mux.Unlock()

	return nil
}

func (w *Wallet) UpdateBalance(balance decimal.Decimal) {
	w.mux.Lock()
	w.state.Balance = balance
	w.mux.Unlock()
}

func (w *Wallet) Snapshot() WalletState {
	w.mux.RLock()
	defer w.mux.RUnlock()

	return w.state
}

// Address returns the connected address, or core.ErrNotConnected.
func (w *Wallet) Address() (string, error) {
	s := w.Snapshot()
	if !s.Connected {
		return "", core.ErrNotConnected
	}

	return s.Address, nil
}

// Close cancels pending connects and clears the session.
func (w *Wallet) Close() error {
	w.cancel()
	w.Disconnect()
	return nil
}
