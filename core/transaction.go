package core

import (
	"context"
	"errors"

	"github.com/algorand/go-algorand-sdk/v2/types"
)

type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "success"
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusFailed  TransactionStatus = "failed"
)

type TransactionKind string

const (
	TransactionKindMint     TransactionKind = "mint"
	TransactionKindTransfer TransactionKind = "transfer"
	TransactionKindReceive  TransactionKind = "receive"
)

type RecordStatus string

const (
	RecordStatusConfirmed RecordStatus = "confirmed"
	RecordStatusPending   RecordStatus = "pending"
)

type TransactionRecord struct {
	ID           string          `json:"id"`
	Kind         TransactionKind `json:"type"`
	Amount       uint64          `json:"amount"`
	Date         string          `json:"date"`
	AssetID      uint64          `json:"asset_id"`
	Counterparty string          `json:"counterparty"`
	Status       RecordStatus    `json:"status"`
}

// UnsignedTxn is a fully formed ledger request that still needs the holder's
// signature.
type UnsignedTxn struct {
	TxID string          `json:"tx_id"`
	Kind TransactionKind `json:"kind"`
	Raw  []byte          `json:"raw"`

	Txn types.Transaction `json:"-"`
}

type TransactionResult struct {
	TxID     string            `json:"tx_id"`
	AssetID  uint64            `json:"asset_id,omitempty"`
	Status   TransactionStatus `json:"status"`
	Message  string            `json:"message"`
	Unsigned *UnsignedTxn      `json:"unsigned,omitempty"`
}

type MintRequest struct {
	From             string
	OrganizationName string
	CreditAmount     uint64
	Description      string
	StorageHash      string
}

type TransferRequest struct {
	From      string
	AssetID   uint64
	Recipient string
	Amount    uint64
	Note      string
}

type TransactionService interface {
	Mint(ctx context.Context, req *MintRequest) *TransactionResult
	Transfer(ctx context.Context, req *TransferRequest) *TransactionResult
}

type SignerKind string

const (
	SignerKindExtension SignerKind = "extension"
	SignerKindHardware  SignerKind = "hardware"
	SignerKindNoop      SignerKind = "noop"
)

var ErrSignerUnavailable = errors.New("signer unavailable")

// Signer authorizes prepared transactions on behalf of the holder. A nil
// payload with a nil error leaves the transaction unsigned.
type Signer interface {
	Kind() SignerKind
	Sign(ctx context.Context, txn types.Transaction) ([]byte, error)
}
