// Package units converts amounts between satoshis and whole bitcoin and
// renders them for display.
//
// The lenient functions (FromSats, ToSats, Format) never fail: malformed
// input produces meaningless output rather than an error. Use the Parse and
// Validate functions when input comes from outside the program.
package units

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// stripLeftZeros removes leading zeros, collapsing an all-zero string to "0"
func stripLeftZeros(s string) string {
	stripped := strings.TrimLeft(s, "0")
	if stripped == "" {
		return "0"
	}
	return stripped
}

// stripRightZeros removes trailing zeros; an all-zero string becomes empty
func stripRightZeros(s string) string {
	return strings.TrimRight(s, "0")
}

// FromSats converts a satoshi digit string into a normalized bitcoin
// decimal string, e.g. "150000000" -> "1.5" and "1" -> "0.00000001"
func FromSats(sats string) string {
	dec := Bitcoin.Decimals()
	padded := sats
	if len(padded) < dec+1 {
		padded = strings.Repeat("0", dec+1-len(padded)) + padded
	}

	integerPart := stripLeftZeros(padded[:len(padded)-dec])
	fractionPart := stripRightZeros(padded[len(padded)-dec:])
	if fractionPart == "" {
		return integerPart
	}
	return integerPart + "." + fractionPart
}

// FromSatsNumeric converts a satoshi digit string into a bitcoin value
func FromSatsNumeric(sats string) (float64, error) {
	coins, err := strconv.ParseFloat(FromSats(sats), 64)
	if err != nil {
		return 0, &ConversionError{Input: sats, Err: err}
	}
	if math.IsNaN(coins) {
		return 0, &ConversionError{Input: sats, Err: strconv.ErrSyntax}
	}
	return coins, nil
}

// ToSats converts a bitcoin decimal string into a satoshi digit string.
// Fractions longer than 8 digits are kept as-is and inflate the result;
// ParseBitcoin rejects them instead.
func ToSats(bitcoins string) string {
	parts := strings.Split(bitcoins, ".")
	integerPart := parts[0]
	fractionPart := ""
	if len(parts) > 1 {
		fractionPart = parts[1]
	}

	dec := Bitcoin.Decimals()
	if len(fractionPart) < dec {
		fractionPart += strings.Repeat("0", dec-len(fractionPart))
	}
	return stripLeftZeros(integerPart + fractionPart)
}

// ToSatsFloat converts a bitcoin value into a satoshi digit string. The
// value is rounded to whole satoshis before conversion so binary float
// artifacts never leak into the result.
func ToSatsFloat(bitcoins float64) string {
	if math.IsNaN(bitcoins) || math.IsInf(bitcoins, 0) {
		return ToSats(strconv.FormatFloat(bitcoins, 'f', -1, 64))
	}
	coins := decimal.NewFromFloat(bitcoins).Round(int32(Bitcoin.Decimals()))
	return ToSats(coins.String())
}
