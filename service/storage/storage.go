// Package storage stands in for the decentralized file store. Content ids are
// derived from the bytes exactly as the network would derive a CIDv0, but
// nothing leaves the process.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"time"

	"github.com/andres-erbsen/clock"
	"github.com/mr-tron/base58"
	"github.com/pandodao/carbon-wallet/core"
)

var hashPattern = regexp.MustCompile(`^Qm[a-zA-Z0-9]{44}$|^bafy[a-zA-Z0-9]{55}$`)

// multihash prefix of a sha2-256 digest
var sha256Prefix = []byte{0x12, 0x20}

func New(clk clock.Clock, logger *slog.Logger) core.StorageService {
	return &service{
		clock:  clk,
		logger: logger.With("service", "storage"),
	}
}

type service struct {
	clock  clock.Clock
	logger *slog.Logger
}

func (s *service) Upload(ctx context.Context, name string, r io.Reader) (*core.StorageObject, error) {
	h := sha256.New()
	n, err := io.Copy(h, r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	obj := newObject(h.Sum(nil), n)
	s.logger.Debug("file stored", "name", name, "hash", obj.Hash, "size", obj.Size)
	return obj, nil
}

func (s *service) UploadMetadata(ctx context.Context, metadata map[string]any) (*core.StorageObject, error) {
	b, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sum := sha256.Sum256(b)
	return newObject(sum[:], int64(len(b))), nil
}

// Fetch returns the gateway url the content is served from.
func (s *service) Fetch(_ context.Context, hash string) (string, error) {
	return core.StorageGateway + hash, nil
}

// FetchMetadata returns the canned certificate metadata; no content is
// resolved.
func (s *service) FetchMetadata(_ context.Context, _ string) (map[string]any, error) {
	return map[string]any{
		"name":          "Carbon Credit NFT",
		"description":   "Verified carbon credit from renewable energy project",
		"organization":  "GreenTech Energy",
		"amount":        100,
		"unit":          "metric tons CO2",
		"issueDate":     s.clock.Now().UTC().Format(core.DateLayout),
		"certification": "Gold Standard",
		"projectType":   "Solar Energy",
		"location":      "California, USA",
	}, nil
}

func (s *service) Pin(_ context.Context, hash string) (bool, error) {
	s.logger.Debug("pinned", "hash", hash)
	return true, nil
}

func newObject(digest []byte, size int64) *core.StorageObject {
	mh := make([]byte, 0, len(sha256Prefix)+len(digest))
	mh = append(mh, sha256Prefix...)
	mh = append(mh, digest...)

	hash := base58.Encode(mh)
	return &core.StorageObject{
		Hash: hash,
		URL:  core.StorageGateway + hash,
		Size: size,
	}
}

// IsValidHash reports whether hash looks like a v0 or base32 v1 content id.
func IsValidHash(hash string) bool {
	return hashPattern.MatchString(hash)
}

// GatewayURL returns the gateway url of hash, or "" for malformed hashes.
func GatewayURL(hash string) string {
	if !IsValidHash(hash) {
		return ""
	}

	return core.StorageGateway + hash
}

// CreditMetadata is the document stored alongside a minted certificate.
type CreditMetadata struct {
	Name            string
	Description     string
	Organization    string
	Amount          uint64
	CertificateHash string
	Extra           map[string]any
}

// NewCreditMetadata renders m into the stored document. Extra keys override
// the standard ones.
func NewCreditMetadata(m CreditMetadata, now time.Time) map[string]any {
	doc := map[string]any{
		"name":            m.Name,
		"description":     m.Description,
		"organization":    m.Organization,
		"amount":          m.Amount,
		"unit":            "metric tons CO2",
		"issueDate":       now.UTC().Format(core.DateLayout),
		"certificateHash": m.CertificateHash,
		"type":            "CarbonCredit",
		"standard":        "ISO 14064-2",
	}

	for k, v := range m.Extra {
		doc[k] = v
	}

	return doc
}
