package units

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
)

var (
	satsPattern    = regexp.MustCompile(`^[0-9]+$`)
	bitcoinPattern = regexp.MustCompile(`^([0-9]+)(?:\.([0-9]+))?$`)
)

// ValidateSats reports whether s is a plain digit string
func ValidateSats(s string) error {
	if !satsPattern.MatchString(s) {
		return fmt.Errorf("%w: %q is not a satoshi amount", ErrInvalidFormat, s)
	}
	return nil
}

// ValidateBitcoin reports whether s is a decimal bitcoin amount with at
// most 8 fractional digits
func ValidateBitcoin(s string) error {
	m := bitcoinPattern.FindStringSubmatch(s)
	if m == nil {
		return fmt.Errorf("%w: %q is not a bitcoin amount", ErrInvalidFormat, s)
	}
	if len(m[2]) > Bitcoin.Decimals() {
		return fmt.Errorf("%w: %q", ErrExcessPrecision, s)
	}
	return nil
}

// ParseSats validates a satoshi digit string and returns it as an Amount
func ParseSats(s string) (btcutil.Amount, error) {
	if err := ValidateSats(s); err != nil {
		return 0, err
	}
	normalized := stripLeftZeros(s)
	// anything longer than MaxSatoshi's 16 digits cannot be in range
	if len(normalized) > len(strconv.FormatInt(btcutil.MaxSatoshi, 10)) {
		return 0, fmt.Errorf("%w: %s sats", ErrAmountOutOfRange, normalized)
	}
	v, err := strconv.ParseInt(normalized, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if v > btcutil.MaxSatoshi {
		return 0, fmt.Errorf("%w: %s sats", ErrAmountOutOfRange, normalized)
	}
	return btcutil.Amount(v), nil
}

// ParseBitcoin validates a bitcoin decimal string and returns it as an Amount
func ParseBitcoin(s string) (btcutil.Amount, error) {
	if err := ValidateBitcoin(s); err != nil {
		return 0, err
	}
	return ParseSats(ToSats(s))
}

// FromAmount renders an Amount as a normalized bitcoin decimal string
func FromAmount(a btcutil.Amount) string {
	if a < 0 {
		return "-" + FromSats(strconv.FormatInt(-int64(a), 10))
	}
	return FromSats(strconv.FormatInt(int64(a), 10))
}

// Convert re-expresses value, given in denomination from, in denomination
// to. Input is validated; converting to the same denomination normalizes.
func Convert(value string, from, to Denomination) (string, error) {
	var amount btcutil.Amount
	var err error

	value = strings.TrimSpace(value)
	switch from {
	case Satoshis:
		amount, err = ParseSats(value)
	case Bitcoin:
		amount, err = ParseBitcoin(value)
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownDenomination, from)
	}
	if err != nil {
		return "", err
	}

	switch to {
	case Satoshis:
		return strconv.FormatInt(int64(amount), 10), nil
	case Bitcoin:
		return FromAmount(amount), nil
	}
	return "", fmt.Errorf("%w: %v", ErrUnknownDenomination, to)
}
