// Package fixture serves the canned credits, credit details and history used
// when the ledger has nothing to show and by the views no ledger query backs.
package fixture

import (
	"context"
	_ "embed"

	"github.com/andres-erbsen/clock"
	"github.com/pandodao/carbon-wallet/core"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// selfPlaceholder marks a counterparty that is the queried address itself.
const selfPlaceholder = "$self"

type credit struct {
	AssetID      uint64            `yaml:"asset_id"`
	Name         string            `yaml:"name"`
	Amount       uint64            `yaml:"amount"`
	Organization string            `yaml:"organization"`
	IssueDate    string            `yaml:"issue_date"`
	Verified     bool              `yaml:"verified"`
	StorageHash  string            `yaml:"storage_hash"`
	Metadata     map[string]string `yaml:"metadata"`
}

type record struct {
	ID           string `yaml:"id"`
	Type         string `yaml:"type"`
	Amount       uint64 `yaml:"amount"`
	AgeDays      int    `yaml:"age_days"`
	AssetID      uint64 `yaml:"asset_id"`
	Counterparty string `yaml:"counterparty"`
	Status       string `yaml:"status"`
}

type fixtures struct {
	Credits []credit `yaml:"credits"`
	Details credit   `yaml:"details"`
	History []record `yaml:"history"`
}

type Source struct {
	clock    clock.Clock
	fixtures fixtures
}

// New parses the embedded fixtures. History entries are dated relative to
// clk.
func New(clk clock.Clock) *Source {
	var f fixtures
	if err := yaml.Unmarshal(fixturesYAML, &f); err != nil {
		panic(err)
	}

	return &Source{clock: clk, fixtures: f}
}

func (s *Source) ListCredits(_ context.Context, _ string) ([]*core.Credit, error) {
	credits := make([]*core.Credit, 0, len(s.fixtures.Credits))
	for _, c := range s.fixtures.Credits {
		credits = append(credits, c.toCredit(c.AssetID))
	}

	return credits, nil
}

// FindCredit returns the canned details under the requested asset id.
func (s *Source) FindCredit(_ context.Context, assetID uint64) (*core.Credit, error) {
	return s.fixtures.Details.toCredit(assetID), nil
}

func (s *Source) ListTransactions(_ context.Context, address string) ([]*core.TransactionRecord, error) {
	today := s.clock.Now().UTC()

	records := make([]*core.TransactionRecord, 0, len(s.fixtures.History))
	for _, r := range s.fixtures.History {
		counterparty := r.Counterparty
		if counterparty == selfPlaceholder {
			counterparty = address
		}

		records = append(records, &core.TransactionRecord{
			ID:           r.ID,
			Kind:         core.TransactionKind(r.Type),
			Amount:       r.Amount,
			Date:         today.AddDate(0, 0, -r.AgeDays).Format(core.DateLayout),
			AssetID:      r.AssetID,
			Counterparty: counterparty,
			Status:       core.RecordStatus(r.Status),
		})
	}

	return records, nil
}

func (c credit) toCredit(assetID uint64) *core.Credit {
	metadata := make(map[string]string, len(c.Metadata))
	for k, v := range c.Metadata {
		metadata[k] = v
	}

	return &core.Credit{
		AssetID:      assetID,
		Name:         c.Name,
		Amount:       c.Amount,
		Organization: c.Organization,
		IssueDate:    c.IssueDate,
		Verified:     c.Verified,
		Metadata:     metadata,
		StorageHash:  c.StorageHash,
	}
}
