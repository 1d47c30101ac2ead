package units

import (
	"strconv"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, ValidateSats("0"))
	assert.NoError(t, ValidateSats("00123"))
	assert.ErrorIs(t, ValidateSats(""), ErrInvalidFormat)
	assert.ErrorIs(t, ValidateSats("1.5"), ErrInvalidFormat)
	assert.ErrorIs(t, ValidateSats("-5"), ErrInvalidFormat)
	assert.ErrorIs(t, ValidateSats("abc"), ErrInvalidFormat)

	assert.NoError(t, ValidateBitcoin("1"))
	assert.NoError(t, ValidateBitcoin("1.5"))
	assert.NoError(t, ValidateBitcoin("0.00000001"))
	assert.ErrorIs(t, ValidateBitcoin("1."), ErrInvalidFormat)
	assert.ErrorIs(t, ValidateBitcoin(".5"), ErrInvalidFormat)
	assert.ErrorIs(t, ValidateBitcoin("1.2.3"), ErrInvalidFormat)
	assert.ErrorIs(t, ValidateBitcoin("0.000000001"), ErrExcessPrecision)
}

func TestParseSats(t *testing.T) {
	amount, err := ParseSats("150000000")
	require.NoError(t, err)
	assert.Equal(t, btcutil.Amount(150000000), amount)

	amount, err = ParseSats(strconv.FormatInt(btcutil.MaxSatoshi, 10))
	require.NoError(t, err)
	assert.Equal(t, btcutil.Amount(btcutil.MaxSatoshi), amount)

	_, err = ParseSats(strconv.FormatInt(btcutil.MaxSatoshi+1, 10))
	assert.ErrorIs(t, err, ErrAmountOutOfRange)

	_, err = ParseSats("99999999999999999999999")
	assert.ErrorIs(t, err, ErrAmountOutOfRange)

	_, err = ParseSats("1e8")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseBitcoin(t *testing.T) {
	amount, err := ParseBitcoin("1.5")
	require.NoError(t, err)
	assert.Equal(t, btcutil.Amount(150000000), amount)
	assert.Equal(t, 1.5, amount.ToBTC())

	amount, err = ParseBitcoin("21000000")
	require.NoError(t, err)
	assert.Equal(t, btcutil.Amount(btcutil.MaxSatoshi), amount)

	_, err = ParseBitcoin("21000000.00000001")
	assert.ErrorIs(t, err, ErrAmountOutOfRange)

	_, err = ParseBitcoin("1.000000001")
	assert.ErrorIs(t, err, ErrExcessPrecision)
}

func TestFromAmount(t *testing.T) {
	assert.Equal(t, "1.5", FromAmount(btcutil.Amount(150000000)))
	assert.Equal(t, "0", FromAmount(0))
	assert.Equal(t, "-0.00000001", FromAmount(-1))

	// agrees with btcutil's own float rendering
	for _, a := range []btcutil.Amount{1, 12345, 100000000, 123456789} {
		assert.Equal(t, strconv.FormatFloat(a.ToBTC(), 'f', -1, 64), FromAmount(a))
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		value string
		from  Denomination
		to    Denomination
		want  string
	}{
		{"sats to btc", "150000000", Satoshis, Bitcoin, "1.5"},
		{"btc to sats", "1.5", Bitcoin, Satoshis, "150000000"},
		{"sats normalize", "000100", Satoshis, Satoshis, "100"},
		{"btc normalize", "01.50", Bitcoin, Bitcoin, "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Convert("1.5", Satoshis, Bitcoin)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = Convert("1", Denomination(7), Bitcoin)
	assert.ErrorIs(t, err, ErrUnknownDenomination)
}
