package units

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat indicates the input is not a well-formed digit or decimal string
	ErrInvalidFormat = errors.New("invalid amount format")

	// ErrExcessPrecision indicates a bitcoin amount with more than 8 fractional digits
	ErrExcessPrecision = errors.New("amount has more precision than one satoshi")

	// ErrAmountOutOfRange indicates an amount above the maximum bitcoin supply
	ErrAmountOutOfRange = errors.New("amount exceeds maximum satoshi supply")

	// ErrUnknownDenomination indicates an unrecognised unit name
	ErrUnknownDenomination = errors.New("unknown denomination")
)

// ConversionError is returned when a satoshi value cannot be turned into a
// numeric bitcoin value
type ConversionError struct {
	Input string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("unable to convert '%s' sats into a numeric value", e.Input)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
