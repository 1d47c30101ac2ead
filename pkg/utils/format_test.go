package utils

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/assert"

	"github.com/brewgator/sats-units/pkg/units"
)

func TestFormatSats(t *testing.T) {
	tests := []struct {
		amount btcutil.Amount
		want   string
	}{
		{0, "0 sats"},
		{999, "999 sats"},
		{12345, "12,345 sats"},
		{99999999, "99,999,999 sats"},
		{100000000, "1 BTC"},
		{150000000, "1.5 BTC"},
		{123456789, "1.23456789 BTC"},
		{-150000000, "-1.5 BTC"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSats(tt.amount), "amount %d", int64(tt.amount))
	}
}

func TestFormatSatsCompact(t *testing.T) {
	assert.Equal(t, "999", FormatSatsCompact(999))
	assert.Equal(t, "12K", FormatSatsCompact(12345))
	assert.Equal(t, "1.5M", FormatSatsCompact(1500000))
	assert.Equal(t, "1.500 BTC", FormatSatsCompact(150000000))
}

func TestFormatIn(t *testing.T) {
	assert.Equal(t, "150,000,000 sats", FormatIn(150000000, units.Satoshis))
	assert.Equal(t, "0.00000001 BTC", FormatIn(1, units.Bitcoin))
}
