package form

import (
	"strings"

	"github.com/asaskevich/govalidator"
)

type VerifyData struct {
	AssetID string `json:"asset_id"`
}

func ValidateVerify(d VerifyData) Errors {
	errs := Errors{}

	switch {
	case strings.TrimSpace(d.AssetID) == "":
		errs["asset_id"] = "Asset ID is required"
	case !govalidator.IsNumeric(d.AssetID):
		errs["asset_id"] = "Asset ID must be a valid number"
	}

	return errs
}
