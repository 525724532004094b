package pricing

import (
	"sort"
	"time"

	"github.com/QuangTung97/promo-pricing/model"
	"github.com/shopspring/decimal"
)

// Resolver finds the campaigns eligible for a product at an instant
type Resolver struct {
	catalog *Catalog
	store   *Store
}

// NewResolver ...
func NewResolver(catalog *Catalog, store *Store) *Resolver {
	return &Resolver{
		catalog: catalog,
		store:   store,
	}
}

type rankedCampaign struct {
	campaign model.Campaign
	savings  decimal.Decimal
}

// validity is the instant range [from, until) in which the ranking of a product cannot change.
// Zero times mean unbounded.
type validity struct {
	from  time.Time
	until time.Time
}

func (v validity) contains(t time.Time) bool {
	if !v.from.IsZero() && t.Before(v.from) {
		return false
	}
	if !v.until.IsZero() && !t.Before(v.until) {
		return false
	}
	return true
}

func (v *validity) observe(boundary time.Time, t time.Time) {
	if t.Before(boundary) {
		if v.until.IsZero() || boundary.Before(v.until) {
			v.until = boundary
		}
		return
	}
	if boundary.After(v.from) {
		v.from = boundary
	}
}

// resolverView pins one product together with the catalog and store snapshots it was read from
type resolverView struct {
	product        model.Product
	catalogVersion uint64
	store          *storeSnapshot
}

func (r *Resolver) view(productID int64) (resolverView, error) {
	catalogSnap := r.catalog.load()
	product, err := catalogSnap.getProduct(productID)
	if err != nil {
		return resolverView{}, err
	}
	return resolverView{
		product:        product,
		catalogVersion: catalogSnap.version,
		store:          r.store.snapshot(),
	}, nil
}

func (v resolverView) rank(t time.Time) ([]rankedCampaign, validity) {
	return rankCampaigns(v.store, v.product, t)
}

// Eligible returns campaigns eligible for the product at t, best first
func (r *Resolver) Eligible(productID int64, t time.Time) ([]model.Campaign, error) {
	v, err := r.view(productID)
	if err != nil {
		return nil, err
	}

	ranked, _ := v.rank(t)
	if len(ranked) == 0 {
		return nil, nil
	}

	result := make([]model.Campaign, 0, len(ranked))
	for _, rc := range ranked {
		result = append(result, rc.campaign.Clone())
	}
	return result, nil
}

func rankCampaigns(snap *storeSnapshot, product model.Product, t time.Time) ([]rankedCampaign, validity) {
	var valid validity
	var ranked []rankedCampaign

	for _, id := range snap.index.Lookup(product.CategoryID) {
		c, ok := snap.campaigns[id]
		if !ok || !c.IsActive {
			continue
		}

		valid.observe(c.StartAt, t)
		valid.observe(c.EndAt, t)

		if !c.EligibleAt(t) {
			continue
		}
		ranked = append(ranked, rankedCampaign{
			campaign: c,
			savings:  ProjectSavings(c, product.BasePrice),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		return rankLess(ranked[i], ranked[j])
	})
	return ranked, valid
}

// rankLess orders by savings descending, then earliest start_at, then lowest id
func rankLess(a, b rankedCampaign) bool {
	if cmp := a.savings.Cmp(b.savings); cmp != 0 {
		return cmp > 0
	}
	if !a.campaign.StartAt.Equal(b.campaign.StartAt) {
		return a.campaign.StartAt.Before(b.campaign.StartAt)
	}
	return a.campaign.ID < b.campaign.ID
}
