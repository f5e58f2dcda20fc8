package transaction

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/andres-erbsen/clock"
	"github.com/pandodao/carbon-wallet/core"
	"github.com/pandodao/carbon-wallet/service/signer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLedger struct {
	calls int
	err   error
}

func (f *fakeLedger) AccountInformation(context.Context, string) (*core.Account, error) {
	return nil, errors.New("not used")
}

func (f *fakeLedger) AssetByID(context.Context, uint64) (*core.Asset, error) {
	return nil, errors.New("not used")
}

func (f *fakeLedger) SuggestedParams(context.Context) (types.SuggestedParams, error) {
	f.calls++
	if f.err != nil {
		return types.SuggestedParams{}, f.err
	}

	return types.SuggestedParams{
		Fee:             0,
		MinFee:          1000,
		FirstRoundValid: 1000,
		LastRoundValid:  2000,
		GenesisID:       "testnet-v1.0",
		GenesisHash:     make([]byte, 32),
	}, nil
}

type stubSigner struct {
	payload []byte
	err     error
}

func (s stubSigner) Kind() core.SignerKind { return "stub" }

func (s stubSigner) Sign(context.Context, types.Transaction) ([]byte, error) {
	return s.payload, s.err
}

type fixedClock struct {
	clock.Clock
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

var (
	discard = slog.New(slog.NewTextHandler(io.Discard, nil))
	now     = fixedClock{now: time.UnixMilli(1_700_000_000_000)}
)

func TestMint_WithoutSender(t *testing.T) {
	ledger := &fakeLedger{}
	s := New(ledger, signer.Noop(), now, discard)

	result := s.Mint(context.Background(), &core.MintRequest{CreditAmount: 10})
	assert.Equal(t, core.TransactionStatusFailed, result.Status)
	assert.Equal(t, msgMintNoSender, result.Message)
	assert.Zero(t, ledger.calls, "no ledger call without a sender")
}

func TestMint_Prepared(t *testing.T) {
	from := crypto.GenerateAccount().Address.String()
	s := New(&fakeLedger{}, signer.Noop(), now, discard)

	result := s.Mint(context.Background(), &core.MintRequest{
		From:             from,
		OrganizationName: "GreenTech Solar",
		CreditAmount:     500,
		Description:      "Rooftop solar, 2024",
		StorageHash:      "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
	})

	require.Equal(t, core.TransactionStatusPending, result.Status)
	assert.Equal(t, msgMintPrepared, result.Message)
	assert.Empty(t, result.TxID, "nothing was submitted")

	require.NotNil(t, result.Unsigned)
	assert.Equal(t, core.TransactionKindMint, result.Unsigned.Kind)
	assert.NotEmpty(t, result.Unsigned.Raw)
	assert.Equal(t, crypto.GetTxID(result.Unsigned.Txn), result.Unsigned.TxID)

	params := result.Unsigned.Txn.AssetParams
	assert.EqualValues(t, 500, params.Total)
	assert.EqualValues(t, 0, params.Decimals)
	assert.False(t, params.DefaultFrozen)
	assert.Equal(t, "CARB", params.UnitName)
	assert.Equal(t, "CARBON_CREDIT_1700000000000", params.AssetName)
	assert.Equal(t, "ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG", params.URL)
	assert.Equal(t, "GreenTech Solar: Rooftop solar, 2024", string(result.Unsigned.Txn.Note))
}

func TestMint_Failures(t *testing.T) {
	from := crypto.GenerateAccount().Address.String()

	tests := []struct {
		name   string
		ledger *fakeLedger
		signer core.Signer
		from   string
	}{
		{"params unavailable", &fakeLedger{err: errors.New("timeout")}, signer.Noop(), from},
		{"malformed sender", &fakeLedger{}, signer.Noop(), strings.Repeat("A", 58)},
		{"signer broke", &fakeLedger{}, stubSigner{err: errors.New("device unplugged")}, from},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.ledger, tt.signer, now, discard)
			result := s.Mint(context.Background(), &core.MintRequest{From: tt.from, CreditAmount: 1})

			assert.Equal(t, core.TransactionStatusFailed, result.Status)
			assert.Equal(t, msgMintFailed, result.Message)
			assert.Nil(t, result.Unsigned)
		})
	}
}

func TestMint_SignerVariants(t *testing.T) {
	from := crypto.GenerateAccount().Address.String()
	req := &core.MintRequest{From: from, CreditAmount: 1}

	result := New(&fakeLedger{}, signer.Extension(), now, discard).Mint(context.Background(), req)
	assert.Equal(t, core.TransactionStatusPending, result.Status)
	assert.Equal(t, msgMintPrepared, result.Message)

	result = New(&fakeLedger{}, stubSigner{payload: []byte{1}}, now, discard).Mint(context.Background(), req)
	assert.Equal(t, core.TransactionStatusPending, result.Status, "signed transactions are never broadcast")
	assert.Equal(t, msgMintSigned, result.Message)
}

func TestTransfer(t *testing.T) {
	from := crypto.GenerateAccount().Address.String()
	to := crypto.GenerateAccount().Address.String()
	ctx := context.Background()

	ledger := &fakeLedger{}
	s := New(ledger, signer.Hardware(), now, discard)

	result := s.Transfer(ctx, &core.TransferRequest{AssetID: 1001, Recipient: to, Amount: 5})
	assert.Equal(t, core.TransactionStatusFailed, result.Status)
	assert.Equal(t, msgTransferNoSender, result.Message)
	assert.EqualValues(t, 1001, result.AssetID)
	assert.Zero(t, ledger.calls)

	result = s.Transfer(ctx, &core.TransferRequest{From: from, AssetID: 1001, Recipient: to, Amount: 5, Note: "thanks"})
	require.Equal(t, core.TransactionStatusPending, result.Status)
	assert.Equal(t, msgTransferPrepared, result.Message)
	assert.EqualValues(t, 1001, result.AssetID)

	txn := result.Unsigned.Txn
	assert.EqualValues(t, 1001, txn.XferAsset)
	assert.EqualValues(t, 5, txn.AssetAmount)
	assert.Equal(t, to, txn.AssetReceiver.String())
	assert.Equal(t, "thanks", string(txn.Note))

	result = s.Transfer(ctx, &core.TransferRequest{From: from, AssetID: 1001, Recipient: "nope", Amount: 5})
	assert.Equal(t, core.TransactionStatusFailed, result.Status)
	assert.Equal(t, msgTransferFailed, result.Message)
	assert.Zero(t, result.AssetID)
}

func TestBuildNote(t *testing.T) {
	assert.Nil(t, buildNote("", ""))
	assert.Equal(t, "Org", string(buildNote("Org", "")))
	assert.Equal(t, "desc", string(buildNote("", "desc")))
	assert.Len(t, buildNote("Org", strings.Repeat("x", 4096)), maxNoteSize)
}
