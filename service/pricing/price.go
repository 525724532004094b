package pricing

import (
	"github.com/QuangTung97/promo-pricing/model"
	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of minor-unit digits of the currency
const DefaultPrecision int32 = 2

// PriceEngine ...
type PriceEngine struct {
	precision int32
}

// NewPriceEngine ...
func NewPriceEngine(precision int32) PriceEngine {
	return PriceEngine{precision: precision}
}

// Price applies the winning campaign to basePrice.
// Rounding is half-to-even, applied once on the final value.
func (e PriceEngine) Price(basePrice decimal.Decimal, winner model.NullCampaign) decimal.Decimal {
	if !winner.Valid {
		return basePrice
	}

	c := winner.Campaign
	v := Clamp(c, basePrice)

	var final decimal.Decimal
	switch c.DiscountType {
	case model.DiscountTypePercentage:
		final = basePrice.Mul(hundred.Sub(v)).Shift(-2)
	case model.DiscountTypeFixed:
		final = basePrice.Sub(v)
	default:
		return basePrice
	}

	if final.IsNegative() {
		return decimal.Zero
	}
	return final.RoundBank(e.precision)
}

// Savings is basePrice minus the rounded price if c were the winner
func (e PriceEngine) Savings(basePrice decimal.Decimal, c model.Campaign) decimal.Decimal {
	final := e.Price(basePrice, model.NullCampaign{Valid: true, Campaign: c})
	return basePrice.Sub(final)
}
