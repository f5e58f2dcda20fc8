// Package signer provides the ways a prepared transaction can be authorized.
// No wallet integration is available to this process, so the extension and
// hardware signers always report core.ErrSignerUnavailable and the noop
// signer leaves the transaction unsigned.
package signer

import (
	"context"
	"fmt"

	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/pandodao/carbon-wallet/core"
)

// New returns the signer of the given kind.
func New(kind core.SignerKind) (core.Signer, error) {
	switch kind {
	case core.SignerKindExtension:
		return Extension(), nil
	case core.SignerKindHardware:
		return Hardware(), nil
	case core.SignerKindNoop, "":
		return Noop(), nil
	default:
		return nil, fmt.Errorf("unknown signer kind %q", kind)
	}
}

func Extension() core.Signer {
	return unavailable{kind: core.SignerKindExtension, reason: "no browser extension connected"}
}

func Hardware() core.Signer {
	return unavailable{kind: core.SignerKindHardware, reason: "no hardware device attached"}
}

type unavailable struct {
	kind   core.SignerKind
	reason string
}

func (s unavailable) Kind() core.SignerKind {
	return s.kind
}

func (s unavailable) Sign(ctx context.Context, _ types.Transaction) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return nil, fmt.Errorf("%s signer: %s: %w", s.kind, s.reason, core.ErrSignerUnavailable)
}

func Noop() core.Signer {
	return noop{}
}

type noop struct{}

func (noop) Kind() core.SignerKind {
	return core.SignerKindNoop
}

func (noop) Sign(context.Context, types.Transaction) ([]byte, error) {
	return nil, nil
}
