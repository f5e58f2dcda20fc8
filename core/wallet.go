package core

import (
	"context"
	"errors"
)

var ErrNotConnected = errors.New("wallet not connected")

// WalletConnector performs the wallet handshake and reports the connected
// account.
type WalletConnector interface {
	Connect(ctx context.Context, network Network) (*Account, error)
}
