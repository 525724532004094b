package pricing

import (
	"time"

	"github.com/QuangTung97/promo-pricing/model"
	"github.com/shopspring/decimal"
)

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func newDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newFixedClock(s string) *ClockMock {
	now := newTime(s)
	return &ClockMock{
		NowFunc: func() time.Time {
			return now
		},
	}
}

func percentCampaign(id int64, value string, targets ...int64) model.Campaign {
	return model.Campaign{
		ID:                 id,
		Name:               "campaign",
		DiscountType:       model.DiscountTypePercentage,
		DiscountValue:      newDecimal(value),
		StartAt:            newTime("2024-01-01T00:00:00Z"),
		EndAt:              newTime("2024-01-08T00:00:00Z"),
		IsActive:           true,
		CampaignCategoryID: 1,
		TargetCategoryIDs:  targets,
	}
}

func fixedCampaign(id int64, value string, targets ...int64) model.Campaign {
	c := percentCampaign(id, value, targets...)
	c.DiscountType = model.DiscountTypeFixed
	return c
}

func newTestCatalog() *Catalog {
	c := NewCatalog()
	err := c.Replace([]model.ProductCategory{
		{ID: 11, Name: "books"},
		{ID: 12, Name: "shoes"},
	}, []model.Product{
		{ID: 101, Name: "book", CategoryID: 11, BasePrice: newDecimal("100.00")},
		{ID: 102, Name: "sneaker", CategoryID: 12, BasePrice: newDecimal("3.00")},
		{ID: 103, Name: "free booklet", CategoryID: 11, BasePrice: newDecimal("0.00")},
	})
	if err != nil {
		panic(err)
	}
	return c
}
