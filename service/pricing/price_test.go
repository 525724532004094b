package pricing

import (
	"testing"

	"github.com/QuangTung97/promo-pricing/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func applied(c model.Campaign) model.NullCampaign {
	return model.NullCampaign{Valid: true, Campaign: c}
}

func TestPriceEngine_No_Campaign(t *testing.T) {
	e := NewPriceEngine(2)
	assert.Equal(t, "19.99", e.Price(newDecimal("19.99"), model.NullCampaign{}).String())
}

func TestPriceEngine_Percentage(t *testing.T) {
	e := NewPriceEngine(2)

	table := []struct {
		name     string
		base     string
		value    string
		expected string
	}{
		{name: "ten percent", base: "100.00", value: "10", expected: "90"},
		{name: "fraction percent", base: "19.99", value: "12.5", expected: "17.49"},
		{name: "zero percent", base: "50.00", value: "0", expected: "50"},
		{name: "hundred percent", base: "50.00", value: "100", expected: "0"},
		{name: "above hundred clamped", base: "50.00", value: "150", expected: "0"},
		{name: "negative clamped", base: "50.00", value: "-20", expected: "50"},
		{name: "half to even down", base: "0.25", value: "50", expected: "0.12"},
		{name: "half to even up", base: "0.75", value: "50", expected: "0.38"},
	}
	for _, entry := range table {
		tc := entry
		t.Run(tc.name, func(t *testing.T) {
			price := e.Price(newDecimal(tc.base), applied(percentCampaign(1, tc.value)))
			assert.True(t, newDecimal(tc.expected).Equal(price), price.String())
			assert.False(t, price.IsNegative())
		})
	}
}

func TestPriceEngine_Fixed(t *testing.T) {
	e := NewPriceEngine(2)

	table := []struct {
		name     string
		base     string
		value    string
		expected string
	}{
		{name: "normal", base: "100.00", value: "5.00", expected: "95"},
		{name: "equal to base", base: "5.00", value: "5.00", expected: "0"},
		{name: "greater than base floored", base: "3.00", value: "5.00", expected: "0"},
		{name: "negative clamped", base: "3.00", value: "-1", expected: "3"},
		{name: "sub cent rounded once", base: "10.00", value: "0.005", expected: "10.00"},
		{name: "sub cent rounded to even", base: "10.00", value: "0.015", expected: "9.98"},
	}
	for _, entry := range table {
		tc := entry
		t.Run(tc.name, func(t *testing.T) {
			price := e.Price(newDecimal(tc.base), applied(fixedCampaign(1, tc.value)))
			assert.True(t, newDecimal(tc.expected).Equal(price), price.String())
		})
	}
}

func TestPriceEngine_Precision(t *testing.T) {
	e := NewPriceEngine(0)
	price := e.Price(newDecimal("105"), applied(percentCampaign(1, "10")))
	assert.Equal(t, "94", price.String())
}

func TestPriceEngine_Percentage_Property(t *testing.T) {
	e := NewPriceEngine(2)

	for base := int64(0); base <= 2000; base += 37 {
		for d := int64(0); d <= 100; d += 7 {
			basePrice := decimal.New(base, -2)
			value := decimal.NewFromInt(d)

			expected := basePrice.Mul(decimal.NewFromInt(1).Sub(value.Div(decimal.NewFromInt(100)))).RoundBank(2)
			price := e.Price(basePrice, applied(percentCampaign(1, value.String())))

			assert.True(t, expected.Equal(price), "base=%s d=%s price=%s", basePrice, value, price)
			assert.False(t, price.IsNegative())
		}
	}
}

func TestPriceEngine_Savings(t *testing.T) {
	e := NewPriceEngine(2)
	s := e.Savings(newDecimal("100.00"), percentCampaign(1, "10"))
	assert.True(t, newDecimal("10").Equal(s))

	s = e.Savings(newDecimal("3.00"), fixedCampaign(1, "5"))
	assert.True(t, newDecimal("3").Equal(s))
}

func TestClamp(t *testing.T) {
	base := newDecimal("40")

	assert.Equal(t, "100", Clamp(percentCampaign(1, "250"), base).String())
	assert.Equal(t, "0", Clamp(percentCampaign(1, "-1"), base).String())
	assert.Equal(t, "15.5", Clamp(percentCampaign(1, "15.5"), base).String())

	assert.Equal(t, "40", Clamp(fixedCampaign(1, "41"), base).String())
	assert.Equal(t, "0", Clamp(fixedCampaign(1, "-3"), base).String())
	assert.Equal(t, "12", Clamp(fixedCampaign(1, "12"), base).String())
}

func TestProjectSavings(t *testing.T) {
	base := newDecimal("100.00")

	assert.True(t, newDecimal("10").Equal(ProjectSavings(percentCampaign(1, "10"), base)))
	assert.True(t, newDecimal("5").Equal(ProjectSavings(fixedCampaign(1, "5"), base)))
	assert.True(t, newDecimal("100").Equal(ProjectSavings(fixedCampaign(1, "500"), base)))
}

func TestHighestRankedWins(t *testing.T) {
	p := HighestRankedWins{}

	assert.Equal(t, model.NullCampaign{}, p.Resolve(nil))

	a := percentCampaign(1, "10")
	b := fixedCampaign(2, "5")
	assert.Equal(t, applied(a), p.Resolve([]model.Campaign{a, b}))
}
