package form

import (
	"fmt"
	"strings"
	"time"

	"github.com/pandodao/carbon-wallet/core"
	"github.com/pandodao/carbon-wallet/format"
	"github.com/shopspring/decimal"
)

var CertificateTypes = []string{"Gold Standard", "VCS", "ACR", "Other"}

type MintData struct {
	OrganizationName string `json:"organization_name"`
	CreditAmount     int64  `json:"credit_amount"`
	Description      string `json:"description"`
	CertificateType  string `json:"certificate_type"`
	IssueDate        string `json:"issue_date"`
	Location         string `json:"location"`
}

// NewMintData returns the initial state of the mint form.
func NewMintData(now time.Time) MintData {
	return MintData{
		CertificateType: CertificateTypes[0],
		IssueDate:       now.UTC().Format(core.DateLayout),
	}
}

func ValidateMint(d MintData) Errors {
	errs := Errors{}

	if strings.TrimSpace(d.OrganizationName) == "" {
		errs["organization_name"] = "Organization name is required"
	}

	switch {
	case d.CreditAmount < core.MinCreditAmount:
		errs["credit_amount"] = "Credit amount must be greater than 0"
	case d.CreditAmount > core.MaxCreditAmount:
		errs["credit_amount"] = fmt.Sprintf("Credit amount cannot exceed %s", format.Number(decimal.NewFromInt(core.MaxCreditAmount)))
	}

	if strings.TrimSpace(d.Description) == "" {
		errs["description"] = "Description is required"
	}

	if strings.TrimSpace(d.Location) == "" {
		errs["location"] = "Location is required"
	}

	return errs
}
