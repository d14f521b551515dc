package ledger_core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultRate applies to any country missing from the schedule, in percent.
var DefaultRate = decimal.NewFromFloat(2.0)

// FeeSchedule maps ISO country codes to a cross-border fee rate in
// percent. Lookups never fail; unknown countries get DefaultRate.
type FeeSchedule struct {
	rates map[string]decimal.Decimal
	def   decimal.Decimal
}

func NewFeeSchedule(rates map[string]decimal.Decimal) *FeeSchedule {
	fs := &FeeSchedule{
		rates: map[string]decimal.Decimal{},
		def:   DefaultRate,
	}
	for country, rate := range rates {
		fs.rates[normalizeCountry(country)] = rate
	}
	return fs
}

// DefaultFeeSchedule returns the built-in rate table.
func DefaultFeeSchedule() *FeeSchedule {
	return NewFeeSchedule(map[string]decimal.Decimal{
		"US": decimal.NewFromFloat(1.5),
		"CA": decimal.NewFromFloat(1.4),
		"GB": decimal.NewFromFloat(2.0),
		"DE": decimal.NewFromFloat(1.0),
		"FR": decimal.NewFromFloat(1.2),
		"SG": decimal.NewFromFloat(0.8),
		"JP": decimal.NewFromFloat(1.0),
		"IN": decimal.NewFromFloat(2.5),
		"BR": decimal.NewFromFloat(2.8),
		"NG": decimal.NewFromFloat(3.0),
	})
}

// Rate returns the percentage rate for a country.
func (fs *FeeSchedule) Rate(country string) decimal.Decimal {
	if rate, ok := fs.rates[normalizeCountry(country)]; ok {
		return rate
	}
	return fs.def
}

// CrossBorderFee computes the fee charged on top of amount. Same-country
// transfers are free. Otherwise the sender and receiver rates are
// averaged, applied as a percentage, and rounded to currency precision
// (2 decimal places, half-up).
func (fs *FeeSchedule) CrossBorderFee(senderCountry, receiverCountry string, amount decimal.Decimal) (decimal.Decimal, bool) {
	if normalizeCountry(senderCountry) == normalizeCountry(receiverCountry) {
		return decimal.Zero, false
	}

	avg := fs.Rate(senderCountry).
		Add(fs.Rate(receiverCountry)).
		Div(decimal.NewFromInt(2))

	fee := avg.
		Div(decimal.NewFromInt(100)).
		Mul(amount).
		Round(2)

	return fee, true
}

func normalizeCountry(country string) string {
	return strings.ToUpper(strings.TrimSpace(country))
}
