package pricing

import (
	"context"
	"time"

	"github.com/QuangTung97/promo-pricing/model"
	"github.com/shopspring/decimal"
)

//go:generate otelwrap --out engine_wrappers.go . IEngine
//go:generate moq -out engine_mocks.go . IEngine PriceCache

// IEngine ...
type IEngine interface {
	GetEffectivePrice(ctx context.Context, productID int64) (EffectivePrice, error)
	ExplainEligibility(ctx context.Context, productID int64, t time.Time) ([]Explanation, error)
}

// EffectivePrice ...
type EffectivePrice struct {
	ProductID         int64
	BasePrice         decimal.Decimal
	FinalPrice        decimal.Decimal
	AppliedCampaignID model.NullInt64
	EvaluatedAt       time.Time
}

// Explanation ...
type Explanation struct {
	CampaignID       int64
	DiscountType     model.DiscountType
	DiscountValue    decimal.Decimal
	ProjectedSavings decimal.Decimal
}

// PriceCacheKey changes whenever the catalog or campaign store is mutated
type PriceCacheKey struct {
	StoreVersion   uint64
	CatalogVersion uint64
	ProductID      int64
}

// CachedPrice is valid for instants in [ValidFrom, ValidUntil), zero times mean unbounded
type CachedPrice struct {
	FinalPrice        decimal.Decimal
	AppliedCampaignID model.NullInt64
	ValidFrom         time.Time
	ValidUntil        time.Time
}

// Covers ...
func (c CachedPrice) Covers(t time.Time) bool {
	return validity{from: c.ValidFrom, until: c.ValidUntil}.contains(t)
}

// PriceCache ...
type PriceCache interface {
	GetPrice(key PriceCacheKey) (CachedPrice, bool)
	SetPrice(key PriceCacheKey, price CachedPrice)
}

// Engine answers pricing queries from the current catalog and campaign snapshots
type Engine struct {
	resolver *Resolver
	prices   PriceEngine
	opts     engineOptions
}

var _ IEngine = &Engine{}

// NewEngine ...
func NewEngine(catalog *Catalog, store *Store, options ...Option) *Engine {
	opts := newEngineOptions(options...)
	return &Engine{
		resolver: NewResolver(catalog, store),
		prices:   NewPriceEngine(opts.precision),
		opts:     opts,
	}
}

// Resolver ...
func (e *Engine) Resolver() *Resolver {
	return e.resolver
}

// GetEffectivePrice prices the product at the current instant of the clock
func (e *Engine) GetEffectivePrice(_ context.Context, productID int64) (EffectivePrice, error) {
	start := time.Now()
	now := e.opts.clock.Now()

	view, err := e.resolver.view(productID)
	if err != nil {
		e.opts.metrics.ObservePriceQuery("not_found", time.Since(start))
		return EffectivePrice{}, err
	}
	product := view.product

	key := PriceCacheKey{
		StoreVersion:   view.store.version,
		CatalogVersion: view.catalogVersion,
		ProductID:      productID,
	}

	if e.opts.cache != nil {
		cached, ok := e.opts.cache.GetPrice(key)
		if ok && cached.Covers(now) {
			e.opts.metrics.ObservePriceQuery("hit", time.Since(start))
			return EffectivePrice{
				ProductID:         productID,
				BasePrice:         product.BasePrice,
				FinalPrice:        cached.FinalPrice,
				AppliedCampaignID: cached.AppliedCampaignID,
				EvaluatedAt:       now,
			}, nil
		}
	}

	ranked, valid := view.rank(now)
	ordered := make([]model.Campaign, 0, len(ranked))
	for _, rc := range ranked {
		ordered = append(ordered, rc.campaign)
	}

	winner := e.opts.policy.Resolve(ordered)
	result := EffectivePrice{
		ProductID:   productID,
		BasePrice:   product.BasePrice,
		FinalPrice:  e.prices.Price(product.BasePrice, winner),
		EvaluatedAt: now,
	}
	if winner.Valid {
		result.AppliedCampaignID = model.NewNullInt64(winner.Campaign.ID)
	}

	if e.opts.cache != nil {
		e.opts.cache.SetPrice(key, CachedPrice{
			FinalPrice:        result.FinalPrice,
			AppliedCampaignID: result.AppliedCampaignID,
			ValidFrom:         valid.from,
			ValidUntil:        valid.until,
		})
	}

	e.opts.metrics.ObservePriceQuery("miss", time.Since(start))
	return result, nil
}

// ExplainEligibility lists the campaigns eligible at t in rank order with the savings each would give
func (e *Engine) ExplainEligibility(_ context.Context, productID int64, t time.Time) ([]Explanation, error) {
	view, err := e.resolver.view(productID)
	if err != nil {
		return nil, err
	}
	product := view.product

	ranked, _ := view.rank(t)

	result := make([]Explanation, 0, len(ranked))
	for _, rc := range ranked {
		result = append(result, Explanation{
			CampaignID:       rc.campaign.ID,
			DiscountType:     rc.campaign.DiscountType,
			DiscountValue:    rc.campaign.DiscountValue,
			ProjectedSavings: e.prices.Savings(product.BasePrice, rc.campaign),
		})
	}
	return result, nil
}
