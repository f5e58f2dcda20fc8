package wallet

import (
	"context"
	"testing"

	"github.com/pandodao/carbon-wallet/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	c := New(DefaultConfig())

	for _, network := range []core.Network{core.NetworkTestnet, core.NetworkMainnet} {
		account, err := c.Connect(context.Background(), network)
		require.NoError(t, err)
		assert.Equal(t, ExampleAddress, account.Address)
		assert.Equal(t, "1000", account.Balance().String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Connect(ctx, core.NetworkTestnet)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_InvalidConfig(t *testing.T) {
	assert.Panics(t, func() { New(Config{}) })
	assert.Panics(t, func() { New(Config{Address: "short"}) })
}
