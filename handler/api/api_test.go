package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/andres-erbsen/clock"
	"github.com/pandodao/carbon-wallet/core"
	"github.com/pandodao/carbon-wallet/notify"
	"github.com/pandodao/carbon-wallet/service/credit"
	"github.com/pandodao/carbon-wallet/service/fixture"
	"github.com/pandodao/carbon-wallet/service/signer"
	"github.com/pandodao/carbon-wallet/service/storage"
	"github.com/pandodao/carbon-wallet/service/transaction"
	"github.com/pandodao/carbon-wallet/service/wallet"
	"github.com/pandodao/carbon-wallet/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLedger struct {
	assets map[uint64]*core.Asset
}

func (f *fakeLedger) AccountInformation(_ context.Context, address string) (*core.Account, error) {
	return &core.Account{Address: address, Amount: 2_000_000}, nil
}

func (f *fakeLedger) AssetByID(_ context.Context, id uint64) (*core.Asset, error) {
	if asset, ok := f.assets[id]; ok {
		return asset, nil
	}

	return nil, errors.New("asset not found")
}

func (f *fakeLedger) SuggestedParams(context.Context) (types.SuggestedParams, error) {
	return types.SuggestedParams{
		MinFee:          1000,
		FirstRoundValid: 1000,
		LastRoundValid:  2000,
		GenesisID:       "testnet-v1.0",
		GenesisHash:     make([]byte, 32),
	}, nil
}

type memoryProperties struct {
	mux    sync.Mutex
	values map[string]any
}

func (m *memoryProperties) Get(context.Context, string, any) error {
	return nil
}

func (m *memoryProperties) Set(_ context.Context, key string, value any) error {
	m.mux.Lock()
	defer m.mux.Unlock()

	if m.values == nil {
		m.values = map[string]any{}
	}

	m.values[key] = value
	return nil
}

type testServer struct {
	handler http.Handler
	toasts  *notify.Center
	ledger  *fakeLedger
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	mock := clock.NewMock()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ledger := &fakeLedger{assets: map[uint64]*core.Asset{}}
	fixtures := fixture.New(mock)

	credits := credit.New(ledger, credit.Sources{
		Primary:  credit.NewLedgerSource(ledger, mock, logger),
		Fallback: fixtures,
		Details:  fixtures,
		History:  fixtures,
	}, mock, logger)

	theme, err := session.NewTheme(context.Background(), &memoryProperties{}, false, logger)
	require.NoError(t, err)

	w := session.NewWallet(wallet.New(wallet.DefaultConfig()), core.NetworkTestnet, logger)
	t.Cleanup(func() { _ = w.Close() })

	toasts := notify.New(mock, notify.DefaultConfig(), logger)
	t.Cleanup(toasts.Shutdown)

	s := New(
		credits,
		transaction.New(ledger, signer.Noop(), mock, logger),
		storage.New(mock, logger),
		theme,
		w,
		toasts,
		mock,
		logger,
	)

	return &testServer{handler: s.Handler(), toasts: toasts, ledger: ledger}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, r)
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

func (ts *testServer) connect(t *testing.T) {
	t.Helper()
	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/wallet/connect", nil).Code)
}

func (ts *testServer) toastMessages() []string {
	var messages []string
	for _, toast := range ts.toasts.List() {
		messages = append(messages, toast.Message)
	}

	return messages
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestDashboard(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[dashboardView](t, w)
	assert.False(t, view.Connected)
	assert.Empty(t, view.Activities)
	assert.Len(t, view.Distribution, 2)

	ts.connect(t)

	view = decode[dashboardView](t, ts.do(t, http.MethodGet, "/dashboard", nil))
	assert.True(t, view.Connected)
	assert.Equal(t, wallet.ExampleAddress, view.Address)
	assert.Equal(t, statsView{
		TotalCredits:  150,
		TotalOffset:   150,
		CreditsHeld:   125,
		CreditsTraded: 25,
	}, view.Stats)

	require.Len(t, view.Activities, 2)
	assert.Equal(t, "Minted Carbon Credits", view.Activities[0].Title)
	assert.Equal(t, "100 MT CO₂ • Asset ID: 1001", view.Activities[0].Description)
	assert.NotEmpty(t, view.Activities[0].DisplayDate)
	assert.NotEqual(t, view.Activities[0].Date, view.Activities[0].DisplayDate)
	assert.Equal(t, "Transferred Credits", view.Activities[1].Title)
}

func TestMint(t *testing.T) {
	ts := newTestServer(t)

	data := map[string]any{
		"organization_name": "GreenTech Solar",
		"credit_amount":     500,
		"description":       "Rooftop solar",
		"certificate_type":  "Gold Standard",
		"issue_date":        "2024-01-15",
		"location":          "California, USA",
		"certificate": map[string]any{
			"name":    "certificate.pdf",
			"content": []byte("%PDF-1.7"),
		},
	}

	w := ts.do(t, http.MethodPost, "/mint", data)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[mintView](t, w)
	assert.Equal(t, core.TransactionStatusFailed, view.Result.Status)
	assert.Equal(t, "Wallet not connected", view.Result.Message)
	assert.Contains(t, ts.toastMessages(), "Connect your wallet to mint credits")

	ts.connect(t)

	w = ts.do(t, http.MethodPost, "/mint", data)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	view = decode[mintView](t, w)

	assert.Equal(t, core.TransactionStatusPending, view.Result.Status)
	assert.Equal(t, "Asset creation transaction prepared. Sign and submit using a connected wallet.", view.Result.Message)
	require.NotNil(t, view.Certificate)
	require.NotNil(t, view.Metadata)
	assert.True(t, storage.IsValidHash(view.Metadata.Hash))
	require.NotNil(t, view.Result.Unsigned)
	assert.NotEmpty(t, view.Result.Unsigned.TxID)

	messages := ts.toastMessages()
	assert.Contains(t, messages, "Certificate uploaded to IPFS")
	assert.Contains(t, messages, view.Result.Message)
}

func TestMint_Invalid(t *testing.T) {
	ts := newTestServer(t)
	ts.connect(t)

	w := ts.do(t, http.MethodPost, "/mint", map[string]any{
		"organization_name": "GreenTech Solar",
		"credit_amount":     1_000_001,
		"description":       "Rooftop solar",
		"location":          "California, USA",
	})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	view := decode[errorView](t, w)
	assert.Equal(t, "Credit amount cannot exceed 1,000,000", view.Fields["credit_amount"])

	w = ts.do(t, http.MethodPost, "/mint", "not an object")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMintFormAndPreview(t *testing.T) {
	ts := newTestServer(t)

	form := decode[mintFormView](t, ts.do(t, http.MethodGet, "/mint", nil))
	assert.Equal(t, "Gold Standard", form.Defaults.CertificateType)
	assert.EqualValues(t, 1_000_000, form.MaxCreditAmount)

	w := ts.do(t, http.MethodPost, "/mint/preview", map[string]any{
		"organization_name": "WindFarm Global",
		"credit_amount":     25000,
		"description":       "Offshore wind",
		"location":          "Texas, USA",
	})
	require.Equal(t, http.StatusOK, w.Code)
	preview := decode[mintPreviewView](t, w)
	assert.Equal(t, "25,000", preview.CreditAmountDisplay)
	assert.EqualValues(t, 25000, preview.CO2Offset)

	w = ts.do(t, http.MethodPost, "/mint/preview", map[string]any{"credit_amount": 0})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	fields := decode[errorView](t, w).Fields
	assert.Equal(t, "Credit amount must be greater than 0", fields["credit_amount"])
	assert.Contains(t, fields, "organization_name")
}

func TestCredits(t *testing.T) {
	ts := newTestServer(t)

	view := decode[creditsView](t, ts.do(t, http.MethodGet, "/credits", nil))
	assert.False(t, view.Connected)
	assert.Empty(t, view.Credits)

	ts.connect(t)

	view = decode[creditsView](t, ts.do(t, http.MethodGet, "/credits?page=3", nil))
	assert.True(t, view.Connected)
	require.Len(t, view.Credits, 2)
	assert.Equal(t, 2, view.VerifiedCount)
	assert.EqualValues(t, 150, view.TotalAmount)
	assert.Equal(t, 1, view.Page, "pages past the end clamp to the last")
	assert.Equal(t, 1, view.Pages)

	w := ts.do(t, http.MethodGet, "/credits/1001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	details := decode[creditDetailsView](t, w)
	assert.EqualValues(t, 1001, details.AssetID)
	assert.EqualValues(t, 100, details.CO2Offset)
	assert.Equal(t, "Jan 15, 2024", details.IssueDateDisplay)
	assert.Empty(t, details.GatewayURL, "the canned hash is not a content id")

	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, "/credits/abc", nil).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, "/credits/0", nil).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, "/credits/+5", nil).Code)
}

func TestCredits_SortAndFilter(t *testing.T) {
	ts := newTestServer(t)
	ts.connect(t)

	ids := func(view creditsView) []uint64 {
		var out []uint64
		for _, c := range view.Credits {
			out = append(out, c.AssetID)
		}

		return out
	}

	tests := []struct {
		query string
		want  []uint64
	}{
		{"", []uint64{1001, 1002}},
		{"?sort=date", []uint64{1002, 1001}},
		{"?sort=amount", []uint64{1001, 1002}},
		{"?sort=organization", []uint64{1001, 1002}},
		{"?verified=true&sort=date", []uint64{1002, 1001}},
		{"?verified=false", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := ts.do(t, http.MethodGet, "/credits"+tt.query, nil)
			require.Equal(t, http.StatusOK, w.Code)

			view := decode[creditsView](t, w)
			assert.Equal(t, tt.want, ids(view))
			assert.Equal(t, 2, view.TotalCount, "totals cover every held credit")
			assert.Equal(t, 2, view.VerifiedCount)
		})
	}

	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, "/credits?sort=color", nil).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, "/credits?verified=maybe", nil).Code)
}

func TestTrade(t *testing.T) {
	ts := newTestServer(t)
	recipient := crypto.GenerateAccount().Address.String()

	trade := map[string]any{
		"asset_id":          1001,
		"recipient_address": recipient,
		"amount":            25,
	}

	w := ts.do(t, http.MethodPost, "/trade", trade)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[tradeView](t, w)
	assert.Equal(t, core.TransactionStatusFailed, view.Result.Status)
	assert.Equal(t, "Wallet not connected", view.Result.Message)
	assert.Contains(t, ts.toastMessages(), "Connect your wallet to trade credits")

	ts.connect(t)

	w = ts.do(t, http.MethodPost, "/trade", map[string]any{
		"asset_id":          1001,
		"recipient_address": recipient,
		"amount":            101,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Cannot exceed available amount (100)", decode[errorView](t, w).Fields["amount"])

	trade["message"] = strings.Repeat("offset ", 20)
	w = ts.do(t, http.MethodPost, "/trade", trade)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	view = decode[tradeView](t, w)
	assert.Equal(t, core.TransactionStatusPending, view.Result.Status)
	assert.EqualValues(t, 1001, view.Result.AssetID)
	assert.Contains(t, view.Summary, "Transfer 25 credits to ")
	assert.Len(t, view.Note, notePreviewLength+len("..."))
	assert.Contains(t, ts.toastMessages(), "Asset transfer transaction prepared. Sign and submit using a connected wallet.")

	w = ts.do(t, http.MethodPost, "/trade", map[string]any{
		"asset_id":          1001,
		"recipient_address": "TOO-SHORT",
		"amount":            1,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Invalid Algorand address format", decode[errorView](t, w).Fields["recipient_address"])
}

func TestVerify(t *testing.T) {
	ts := newTestServer(t)
	ts.ledger.assets[77] = &core.Asset{ID: 77, Creator: wallet.ExampleAddress, URL: "ipfs://QmHash"}

	w := ts.do(t, http.MethodPost, "/verify", map[string]any{"asset_id": "77"})
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[verifyView](t, w)
	assert.True(t, view.Verification.Verified)
	assert.Equal(t, "QmHash", view.Verification.Metadata["ipfs"])
	assert.Contains(t, ts.toastMessages(), "NFT verification successful")

	w = ts.do(t, http.MethodPost, "/verify", map[string]any{"asset_id": "78"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[verifyView](t, w).Verification.Verified)
	assert.Contains(t, ts.toastMessages(), "NFT verification failed")

	w = ts.do(t, http.MethodPost, "/verify", map[string]any{"asset_id": "12a"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Asset ID must be a valid number", decode[errorView](t, w).Fields["asset_id"])

	w = ts.do(t, http.MethodPost, "/verify", map[string]any{"asset_id": ""})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Asset ID is required", decode[errorView](t, w).Fields["asset_id"])
}

func TestProfile(t *testing.T) {
	ts := newTestServer(t)

	view := decode[profileView](t, ts.do(t, http.MethodGet, "/profile", nil))
	assert.False(t, view.Connected)
	assert.Equal(t, core.NetworkTestnet, view.Network)

	ts.connect(t)

	view = decode[profileView](t, ts.do(t, http.MethodGet, "/profile", nil))
	assert.True(t, view.Connected)
	assert.Equal(t, "AAAAAAAA...AAY5HFKQ", view.ShortAddress)
	assert.Equal(t, "A 2", view.Balance, "balance refreshed from the ledger")
	assert.Len(t, view.Transactions, 2)

	w := ts.do(t, http.MethodPost, "/wallet/disconnect", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[session.WalletState](t, w).Connected)
	assert.Contains(t, ts.toastMessages(), "Wallet disconnected")
}

func TestSettings(t *testing.T) {
	ts := newTestServer(t)

	view := decode[settingsView](t, ts.do(t, http.MethodGet, "/settings", nil))
	assert.Equal(t, "light", view.Theme)
	assert.Len(t, view.Networks, 2)

	view = decode[settingsView](t, ts.do(t, http.MethodPost, "/settings/theme", nil))
	assert.True(t, view.Dark)
	view = decode[settingsView](t, ts.do(t, http.MethodPost, "/settings/theme", nil))
	assert.False(t, view.Dark, "toggling twice restores the theme")

	view = decode[settingsView](t, ts.do(t, http.MethodPost, "/settings/theme", map[string]any{"dark": true}))
	assert.Equal(t, "dark", view.Theme)

	w := ts.do(t, http.MethodPut, "/settings/network", map[string]any{"network": "mainnet"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, core.NetworkMainnet, decode[settingsView](t, w).Network)

	w = ts.do(t, http.MethodPut, "/settings/network", map[string]any{"network": "betanet"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	about := decode[aboutView](t, ts.do(t, http.MethodGet, "/about", nil))
	assert.Equal(t, core.AppName, about.Name)
}

func TestNotifications(t *testing.T) {
	ts := newTestServer(t)
	ts.connect(t)

	toasts := decode[[]notify.Toast](t, ts.do(t, http.MethodGet, "/notifications", nil))
	require.Len(t, toasts, 1)
	id := toasts[0].ID
	assert.Equal(t, "Wallet connected", toasts[0].Message)

	toast := decode[notify.Toast](t, ts.do(t, http.MethodPost, "/notifications/"+id+"/pause", nil))
	assert.Equal(t, notify.StatePaused, toast.State)

	toast = decode[notify.Toast](t, ts.do(t, http.MethodPost, "/notifications/"+id+"/resume", nil))
	assert.Equal(t, notify.StateScheduled, toast.State)

	toast = decode[notify.Toast](t, ts.do(t, http.MethodDelete, "/notifications/"+id, nil))
	assert.Equal(t, notify.StateExiting, toast.State)

	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodPost, "/notifications/nope/pause", nil).Code)
}

func TestNotFound(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/nowhere", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "page not found: /nowhere", decode[errorView](t, w).Error)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, n, pages := paginate(items, 2, 2)
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, pages)

	page, n, _ = paginate(items, 9, 2)
	assert.Equal(t, []int{5}, page)
	assert.Equal(t, 3, n)

	page, n, pages = paginate([]int{}, 1, 10)
	assert.Empty(t, page)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, pages)
}
