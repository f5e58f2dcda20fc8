package core

import "time"

const (
	AppName        = "Carbon Credit Tracker"
	AppDescription = "Track, mint, verify, and trade carbon credit NFTs on Algorand"
)

const (
	TestnetEndpoint = "https://testnet-api.algonode.cloud"
	MainnetEndpoint = "https://mainnet-api.algonode.cloud"
	APIKeyHeader    = "X-API-Key"
)

const (
	AssetNamePrefix = "CARBON_CREDIT_"
	CreditUnitName  = "CARB"
	StorageScheme   = "ipfs://"
	StorageGateway  = "https://ipfs.io/ipfs/"
)

const (
	CreditsPerPage    = 12
	ActivitiesPerPage = 10
)

const (
	MinCreditAmount = 1
	MaxCreditAmount = 1_000_000
)

const (
	ToastDuration  = 5 * time.Second
	ToastExitDelay = 300 * time.Millisecond
)

// ThemeKey is the property key the theme flag is persisted under.
const ThemeKey = "theme"

// MicroUnits is the number of smallest currency units in one display unit.
const MicroUnits = 6

// DateLayout renders calendar dates the way the ledger views expect them.
const DateLayout = "2006-01-02"
