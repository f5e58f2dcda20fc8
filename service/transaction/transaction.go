package transaction

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/algorand/go-algorand-sdk/v2/transaction"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/andres-erbsen/clock"
	"github.com/pandodao/carbon-wallet/core"
)

const (
	msgMintNoSender     = "Sender address required to prepare asset creation transaction. Connect a wallet and provide the address."
	msgMintPrepared     = "Asset creation transaction prepared. Sign and submit using a connected wallet."
	msgMintSigned       = "Asset creation transaction signed. Submission is not available yet."
	msgMintFailed       = "Failed to mint NFT"
	msgTransferNoSender = "Sender address required to prepare asset transfer transaction. Connect a wallet and provide the address."
	msgTransferPrepared = "Asset transfer transaction prepared. Sign and submit using a connected wallet."
	msgTransferSigned   = "Asset transfer transaction signed. Submission is not available yet."
	msgTransferFailed   = "Failed to transfer NFT"
)

// maxNoteSize is the largest note the ledger accepts on a transaction.
const maxNoteSize = 1024

func New(
	ledger core.LedgerClient,
	signer core.Signer,
	clk clock.Clock,
	logger *slog.Logger,
) core.TransactionService {
	return &service{
		ledger: ledger,
		signer: signer,
		clock:  clk,
		logger: logger.With("service", "transaction"),
	}
}

type service struct {
	ledger core.LedgerClient
	signer core.Signer
	clock  clock.Clock
	logger *slog.Logger
}

// Mint prepares the asset creation transaction of a new credit certificate.
// Nothing is ever submitted, so a result is at best pending.
func (s *service) Mint(ctx context.Context, req *core.MintRequest) *core.TransactionResult {
	if req.From == "" {
		return &core.TransactionResult{
			Status:  core.TransactionStatusFailed,
			Message: msgMintNoSender,
		}
	}

	failed := &core.TransactionResult{
		Status:  core.TransactionStatusFailed,
		Message: msgMintFailed,
	}

	params, err := s.ledger.SuggestedParams(ctx)
	if err != nil {
		s.logger.Error("ledger.SuggestedParams", "err", err)
		return failed
	}

	var url string
	if req.StorageHash != "" {
		url = core.StorageScheme + req.StorageHash
	}

	assetName := core.AssetNamePrefix + strconv.FormatInt(s.clock.Now().UnixMilli(), 10)
	note := buildNote(req.OrganizationName, req.Description)

	txn, err := transaction.MakeAssetCreateTxn(
		req.From,
		note,
		params,
		req.CreditAmount,
		0,     // decimals
		false, // default frozen
		"", "", "", "",
		core.CreditUnitName,
		assetName,
		url,
		"",
	)
	if err != nil {
		s.logger.Error("transaction.MakeAssetCreateTxn", "from", req.From, "err", err)
		return failed
	}

	result, err := s.sign(ctx, core.TransactionKindMint, txn, msgMintPrepared, msgMintSigned)
	if err != nil {
		return failed
	}

	return result
}

// Transfer prepares the asset transfer of amount units to the recipient.
func (s *service) Transfer(ctx context.Context, req *core.TransferRequest) *core.TransactionResult {
	if req.From == "" {
		return &core.TransactionResult{
			AssetID: req.AssetID,
			Status:  core.TransactionStatusFailed,
			Message: msgTransferNoSender,
		}
	}

	failed := &core.TransactionResult{
		Status:  core.TransactionStatusFailed,
		Message: msgTransferFailed,
	}

	params, err := s.ledger.SuggestedParams(ctx)
	if err != nil {
		s.logger.Error("ledger.SuggestedParams", "err", err)
		return failed
	}

	txn, err := transaction.MakeAssetTransferTxn(
		req.From,
		req.Recipient,
		req.Amount,
		truncateNote([]byte(req.Note)),
		params,
		"",
		req.AssetID,
	)
	if err != nil {
		s.logger.Error("transaction.MakeAssetTransferTxn", "from", req.From, "to", req.Recipient, "err", err)
		return failed
	}

	result, err := s.sign(ctx, core.TransactionKindTransfer, txn, msgTransferPrepared, msgTransferSigned)
	if err != nil {
		return failed
	}

	result.AssetID = req.AssetID
	return result
}

func (s *service) sign(ctx context.Context, kind core.TransactionKind, txn types.Transaction, prepared, signed string) (*core.TransactionResult, error) {
	result := &core.TransactionResult{
		Status:  core.TransactionStatusPending,
		Message: prepared,
		Unsigned: &core.UnsignedTxn{
			TxID: crypto.GetTxID(txn),
			Kind: kind,
			Raw:  msgpack.Encode(txn),
			Txn:  txn,
		},
	}

	payload, err := s.signer.Sign(ctx, txn)
	switch {
	case errors.Is(err, core.ErrSignerUnavailable):
		s.logger.Info("transaction left unsigned", "signer", s.signer.Kind(), "tx", result.Unsigned.TxID, "err", err)
	case err != nil:
		s.logger.Error("signer.Sign", "signer", s.signer.Kind(), "err", err)
		return nil, err
	case payload != nil:
		// there is no broadcast path, a signed transaction stays pending
		result.Message = signed
	}

	return result, nil
}

func buildNote(organization, description string) []byte {
	if organization == "" && description == "" {
		return nil
	}

	note := organization
	if description != "" {
		if note != "" {
			note += ": "
		}

		note += description
	}

	return truncateNote([]byte(note))
}

func truncateNote(note []byte) []byte {
	if len(note) == 0 {
		return nil
	}

	if len(note) > maxNoteSize {
		return note[:maxNoteSize]
	}

	return note
}
