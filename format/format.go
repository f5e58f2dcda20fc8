// Package format renders ledger values for display and checks the formats
// of user supplied identifiers.
package format

import (
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	AddressLength = 58

	// maxSafeInteger is the largest integer a double represents exactly;
	// asset ids beyond it can't round trip through json clients.
	maxSafeInteger = 1<<53 - 1
)

var (
	addressPattern = regexp.MustCompile(`^[A-Z2-7]+$`)
	digitsPattern  = regexp.MustCompile(`^[0-9]+$`)
	printer        = message.NewPrinter(language.AmericanEnglish)
)

// Address shortens an address to its first and last eight characters.
func Address(address string) string {
	if address == "" {
		return ""
	}

	head, tail := address, address
	if len(address) > 8 {
		head, tail = address[:8], address[len(address)-8:]
	}

	return head + "..." + tail
}

func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// Number renders n with en-US digit grouping and at most two fraction digits.
func Number(n decimal.Decimal) string {
	return printer.Sprint(number.Decimal(n.InexactFloat64(), number.MaxFractionDigits(2)))
}

func Currency(n decimal.Decimal, symbol string) string {
	if symbol == "" {
		symbol = "A"
	}

	return symbol + " " + Number(n)
}

// CO2Offset returns the metric tons of CO2 a credit amount offsets.
func CO2Offset(creditAmount uint64) uint64 {
	return creditAmount
}

// IsValidAddress reports whether address has the length and base32 alphabet
// of a ledger address. Checksums are not verified.
func IsValidAddress(address string) bool {
	return len(address) == AddressLength && addressPattern.MatchString(address)
}

// ParseAssetID parses a digit-only asset id. Signs, zero and ids a json
// client can't represent are rejected.
func ParseAssetID(assetID string) (uint64, bool) {
	if !digitsPattern.MatchString(assetID) {
		return 0, false
	}

	id, err := strconv.ParseUint(assetID, 10, 64)
	if err != nil || id == 0 || id >= maxSafeInteger {
		return 0, false
	}

	return id, true
}


// Truncate cuts s to length runes, marking the cut with an ellipsis.
func Truncate(s string, length int) string {
	if utf8.RuneCountInString(s) <= length {
		return s
	}

	return string([]rune(s)[:length]) + "..."
}
