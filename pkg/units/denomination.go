package units

import (
	"fmt"
	"strings"
)

// Denomination is a unit of account an amount can be expressed in
type Denomination int

const (
	Satoshis Denomination = iota
	Bitcoin
)

// decimals holds the number of fractional digits each denomination carries
// relative to satoshis. Read-only after init.
var decimals = map[Denomination]int{
	Satoshis: 0,
	Bitcoin:  8,
}

// Decimals returns the number of fractional digits of the denomination
// when expressed in satoshis
func (d Denomination) Decimals() int {
	return decimals[d]
}

func (d Denomination) String() string {
	switch d {
	case Satoshis:
		return "sats"
	case Bitcoin:
		return "BTC"
	}
	return fmt.Sprintf("Denomination(%d)", int(d))
}

// ParseDenomination resolves a user supplied unit name
func ParseDenomination(s string) (Denomination, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sats", "sat", "satoshi", "satoshis":
		return Satoshis, nil
	case "btc", "bitcoin", "bitcoins":
		return Bitcoin, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDenomination, s)
}
