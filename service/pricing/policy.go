package pricing

import (
	"github.com/QuangTung97/promo-pricing/model"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Policy selects at most one campaign from campaigns already ordered by rank
type Policy interface {
	Resolve(ordered []model.Campaign) model.NullCampaign
}

// HighestRankedWins never stacks discounts, only the first campaign is applied
type HighestRankedWins struct {
}

var _ Policy = HighestRankedWins{}

// Resolve ...
func (HighestRankedWins) Resolve(ordered []model.Campaign) model.NullCampaign {
	if len(ordered) == 0 {
		return model.NullCampaign{}
	}
	return model.NullCampaign{
		Valid:    true,
		Campaign: ordered[0],
	}
}

// Clamp returns the discount value actually applicable to basePrice:
// percentage into [0, 100], fixed into [0, basePrice]
func Clamp(c model.Campaign, basePrice decimal.Decimal) decimal.Decimal {
	upper := hundred
	if c.DiscountType == model.DiscountTypeFixed {
		upper = basePrice
	}

	v := c.DiscountValue
	if v.IsNegative() {
		return decimal.Zero
	}
	if v.GreaterThan(upper) {
		return upper
	}
	return v
}

// ProjectSavings is the exact amount c would take off basePrice, before rounding
func ProjectSavings(c model.Campaign, basePrice decimal.Decimal) decimal.Decimal {
	v := Clamp(c, basePrice)
	if c.DiscountType == model.DiscountTypePercentage {
		return basePrice.Mul(v).Shift(-2)
	}
	return v
}
