package utils

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/brewgator/sats-units/pkg/units"
)

const satsPerBitcoin = btcutil.Amount(btcutil.SatoshiPerBitcoin)

// FormatSats formats satoshi amounts in a human-readable way
// Whole-coin amounts are shown exactly in BTC, smaller ones as grouped sats
func FormatSats(amount btcutil.Amount) string {
	if abs(amount) >= satsPerBitcoin {
		return FormatIn(amount, units.Bitcoin)
	}
	return FormatIn(amount, units.Satoshis)
}

// FormatSatsCompact formats satoshi amounts in a compact way for tables
func FormatSatsCompact(amount btcutil.Amount) string {
	a := abs(amount)
	switch {
	case a >= satsPerBitcoin:
		return fmt.Sprintf("%.3f BTC", amount.ToBTC())
	case a >= 1000000:
		return fmt.Sprintf("%.1fM", float64(amount)/1000000)
	case a >= 1000:
		return fmt.Sprintf("%.0fK", float64(amount)/1000)
	}
	return fmt.Sprintf("%d", int64(amount))
}

// FormatIn renders amount in the given denomination with its unit suffix,
// e.g. "1.5 BTC" or "150,000,000 sats"
func FormatIn(amount btcutil.Amount, d units.Denomination) string {
	if d == units.Bitcoin {
		return units.FromAmount(amount) + " " + d.String()
	}
	return units.FormatFloat(float64(amount)) + " " + d.String()
}

func abs(a btcutil.Amount) btcutil.Amount {
	if a < 0 {
		return -a
	}
	return a
}
