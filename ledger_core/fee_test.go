package ledger_core_test

import (
	"testing"

	"github.com/arnavseth183/CrossBorderTransactionChain/ledger_core"
	"github.com/shopspring/decimal"
	"github.com/zeebo/assert"
)

func testSchedule() *ledger_core.FeeSchedule {
	return ledger_core.NewFeeSchedule(map[string]decimal.Decimal{
		"AA": decimal.NewFromFloat(1.5),
		"BB": decimal.NewFromFloat(2.0),
	})
}

func TestRateLookup(t *testing.T) {
	fees := testSchedule()

	assert.Equal(t, "1.5", fees.Rate("AA").String())
	assert.Equal(t, "1.5", fees.Rate(" aa ").String())
	assert.Equal(t, ledger_core.DefaultRate.String(), fees.Rate("ZZ").String())
}

func TestSameCountryIsFree(t *testing.T) {
	fees := testSchedule()

	fee, cross := fees.CrossBorderFee("AA", "AA", decimal.NewFromInt(100))
	assert.False(t, cross)
	assert.True(t, fee.IsZero())

	// unknown countries still count as the same country
	fee, cross = fees.CrossBorderFee("ZZ", "zz", decimal.NewFromInt(100))
	assert.False(t, cross)
	assert.True(t, fee.IsZero())
}

func TestCrossBorderFeeAveragesRates(t *testing.T) {
	fees := testSchedule()

	// (1.5 + 2.0) / 2 = 1.75% of 100.00
	fee, cross := fees.CrossBorderFee("AA", "BB", decimal.NewFromInt(100))
	assert.True(t, cross)
	assert.Equal(t, "1.75", fee.StringFixed(2))
}

func TestCrossBorderFeeRoundsHalfUp(t *testing.T) {
	fees := testSchedule()

	// 1.75% of 10.00 = 0.175, half-up to 0.18
	fee, _ := fees.CrossBorderFee("AA", "BB", decimal.NewFromInt(10))
	assert.Equal(t, "0.18", fee.StringFixed(2))

	// 1.75% of 2.00 = 0.035, half-up to 0.04
	fee, _ = fees.CrossBorderFee("AA", "BB", decimal.NewFromInt(2))
	assert.Equal(t, "0.04", fee.StringFixed(2))
}
