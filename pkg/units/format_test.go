package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "1,234,567", FormatFloat(1234567))
	assert.Equal(t, FormatFloat(1234567), Format("1234567"))
	assert.Equal(t, "999", FormatFloat(999))
	assert.Equal(t, "0", FormatFloat(0))
	assert.Equal(t, "1,234.5", Format("1234.5"))
	assert.Equal(t, "21,000,000", Format(" 21000000 "))
}

func TestFormatNonNumeric(t *testing.T) {
	assert.Equal(t, "NaN", Format("abc"))
	assert.Equal(t, "NaN", FormatFloat(math.NaN()))
	assert.Equal(t, "∞", FormatFloat(math.Inf(1)))
	assert.Equal(t, "-∞", FormatFloat(math.Inf(-1)))
}

func TestFormatterLocale(t *testing.T) {
	tag, err := ParseLocale("de")
	require.NoError(t, err)

	f := NewFormatter(tag)
	assert.Equal(t, "de", f.Locale().String())
	assert.Equal(t, "1.234.567", f.FormatFloat(1234567))
	assert.Equal(t, f.FormatFloat(1234567), f.Format("1234567"))

	_, err = ParseLocale("not a locale!")
	assert.Error(t, err)
}
