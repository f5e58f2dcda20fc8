package form

import (
	"fmt"
	"strings"

	"github.com/pandodao/carbon-wallet/format"
)

type TradeData struct {
	AssetID          int64  `json:"asset_id"`
	RecipientAddress string `json:"recipient_address"`
	Amount           int64  `json:"amount"`
	Message          string `json:"message,omitempty"`
}

// ValidateTrade checks a transfer against the amount of the asset the caller
// holds. Only the recipient's length is checked, not its alphabet or existence.
func ValidateTrade(d TradeData, available uint64) Errors {
	errs := Errors{}

	if d.AssetID <= 0 {
		errs["asset_id"] = "Asset ID is required"
	}

	if strings.TrimSpace(d.RecipientAddress) == "" {
		errs["recipient_address"] = "Recipient address is required"
	} else if len(d.RecipientAddress) != format.AddressLength {
		errs["recipient_address"] = "Invalid Algorand address format"
	}

	switch {
	case d.Amount <= 0:
		errs["amount"] = "Amount must be greater than 0"
	case uint64(d.Amount) > available:
		errs["amount"] = fmt.Sprintf("Cannot exceed available amount (%d)", available)
	}

	return errs
}
