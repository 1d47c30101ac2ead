package units

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxDisplayFractionDigits matches the usual default precision of number
// formatting for display
const maxDisplayFractionDigits = 3

// DefaultLocale is used by Format and FormatFloat
var DefaultLocale = language.English

// Formatter renders numbers with the grouping conventions of a locale
type Formatter struct {
	tag language.Tag
}

// NewFormatter returns a Formatter for the given locale
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{tag: tag}
}

// ParseLocale resolves a BCP 47 tag such as "en", "de-CH" or "fr"
func ParseLocale(s string) (language.Tag, error) {
	return language.Parse(s)
}

// Locale returns the formatter's locale
func (f *Formatter) Locale() language.Tag {
	return f.tag
}

// Format parses value as a number and renders it with grouping separators.
// Unparseable input renders as "NaN".
func (f *Formatter) Format(value string) string {
	num, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		num = math.NaN()
	}
	return f.FormatFloat(num)
}

// FormatFloat renders value with grouping separators, e.g. 1234567 -> "1,234,567"
func (f *Formatter) FormatFloat(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "∞"
	case math.IsInf(value, -1):
		return "-∞"
	}
	p := message.NewPrinter(f.tag)
	return p.Sprintf("%v", number.Decimal(value, number.MaxFractionDigits(maxDisplayFractionDigits)))
}

// Format adds grouping separators to a numeric string using DefaultLocale
func Format(value string) string {
	return NewFormatter(DefaultLocale).Format(value)
}

// FormatFloat adds grouping separators to value using DefaultLocale
func FormatFloat(value float64) string {
	return NewFormatter(DefaultLocale).FormatFloat(value)
}
