package display

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	wholeUnits = money.NewFormatter(0, ".", ",", "", "1")
	english    = message.NewPrinter(language.English)
	minInt64   = decimal.NewFromInt(-(1<<63 - 1))
	maxInt64   = decimal.NewFromInt(1<<63 - 1)
)

// MarketCapText is the market capitalization line of a card.
func MarketCapText(raw string) string {
	return "Market Cap: $" + GroupedAmount(raw)
}

// GroupedAmount parses raw, rounds it half away from zero to a whole number
// and groups thousands with commas. Input that is not a number gives "NaN".
// Amounts beyond int64 are grouped from their float64 value, as a browser
// would show them.
func GroupedAmount(raw string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return "NaN"
	}
	d = d.Round(0)
	if d.LessThan(minInt64) || d.GreaterThan(maxInt64) {
		return english.Sprintf("%.0f", d.InexactFloat64())
	}
	return wholeUnits.Format(d.IntPart())
}
