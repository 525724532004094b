package memtable

import (
	"testing"
	"time"

	"github.com/QuangTung97/promo-pricing/model"
	"github.com/QuangTung97/promo-pricing/service/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func TestPriceCache(t *testing.T) {
	m := New(1024 * 1024)

	key1 := pricing.PriceCacheKey{StoreVersion: 3, CatalogVersion: 1, ProductID: 101}
	key2 := pricing.PriceCacheKey{StoreVersion: 4, CatalogVersion: 1, ProductID: 101}

	m.SetPrice(key1, pricing.CachedPrice{
		FinalPrice:        decimal.RequireFromString("90.00"),
		AppliedCampaignID: model.NewNullInt64(7),
		ValidFrom:         newTime("2024-01-01T00:00:00Z"),
		ValidUntil:        newTime("2024-01-08T00:00:00Z"),
	})

	p, ok := m.GetPrice(key1)
	assert.Equal(t, true, ok)
	assert.Equal(t, "90.00", p.FinalPrice.StringFixed(2))
	assert.Equal(t, model.NewNullInt64(7), p.AppliedCampaignID)
	assert.Equal(t, newTime("2024-01-01T00:00:00Z"), p.ValidFrom)
	assert.Equal(t, newTime("2024-01-08T00:00:00Z"), p.ValidUntil)

	p, ok = m.GetPrice(key2)
	assert.Equal(t, false, ok)
	assert.Equal(t, pricing.CachedPrice{}, p)

	assert.Equal(t, int64(1), m.EntryCount())
}

func TestPriceCache_Unbounded_Without_Campaign(t *testing.T) {
	m := New(1024 * 1024)
	key := pricing.PriceCacheKey{StoreVersion: 1, CatalogVersion: 1, ProductID: 5}

	m.SetPrice(key, pricing.CachedPrice{
		FinalPrice: decimal.RequireFromString("12.34"),
	})

	p, ok := m.GetPrice(key)
	assert.Equal(t, true, ok)
	assert.Equal(t, "12.34", p.FinalPrice.String())
	assert.Equal(t, model.NullInt64{}, p.AppliedCampaignID)
	assert.True(t, p.ValidFrom.IsZero())
	assert.True(t, p.ValidUntil.IsZero())
	assert.True(t, p.Covers(newTime("2030-01-01T00:00:00Z")))
}

func TestPriceCache_Invalid_Entry(t *testing.T) {
	m := New(1024 * 1024)
	key := pricing.PriceCacheKey{StoreVersion: 1, CatalogVersion: 1, ProductID: 5}

	_ = m.cache.Set(marshalKey(key), []byte("aa"), 0)

	_, ok := m.GetPrice(key)
	assert.Equal(t, false, ok)
}
