package pricing

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/QuangTung97/promo-pricing/model"
	"github.com/stretchr/testify/assert"
)

func newContext() context.Context {
	return context.Background()
}

type engineTest struct {
	catalog *Catalog
	store   *Store
	clock   *ClockMock
	engine  *Engine
}

func newEngineTest(now string, options ...Option) *engineTest {
	catalog := newTestCatalog()
	store := NewStore()
	clock := newFixedClock(now)

	options = append([]Option{WithClock(clock)}, options...)
	return &engineTest{
		catalog: catalog,
		store:   store,
		clock:   clock,
		engine:  NewEngine(catalog, store, options...),
	}
}

func (e *engineTest) insert(campaigns ...model.Campaign) {
	for _, c := range campaigns {
		if _, err := e.store.Insert(c); err != nil {
			panic(err)
		}
	}
}

func (e *engineTest) setNow(s string) {
	now := newTime(s)
	e.clock.NowFunc = func() time.Time {
		return now
	}
}

func TestEngine_No_Campaign_Returns_Base_Price(t *testing.T) {
	e := newEngineTest("2024-01-03T00:00:00Z")

	price, err := e.engine.GetEffectivePrice(newContext(), 101)
	assert.Equal(t, nil, err)
	assert.Equal(t, EffectivePrice{
		ProductID:   101,
		BasePrice:   newDecimal("100.00"),
		FinalPrice:  newDecimal("100.00"),
		EvaluatedAt: newTime("2024-01-03T00:00:00Z"),
	}, price)
}

func TestEngine_Product_Not_Found(t *testing.T) {
	e := newEngineTest("2024-01-03T00:00:00Z")

	_, err := e.engine.GetEffectivePrice(newContext(), 999)
	assert.Equal(t, ErrProductNotFound, err)

	_, err = e.engine.ExplainEligibility(newContext(), 999, newTime("2024-01-03T00:00:00Z"))
	assert.Equal(t, ErrProductNotFound, err)

	_, err = e.engine.Resolver().Eligible(999, newTime("2024-01-03T00:00:00Z"))
	assert.Equal(t, ErrProductNotFound, err)
}

func TestEngine_Scenario_Percentage_Beats_Fixed(t *testing.T) {
	e := newEngineTest("2024-01-03T00:00:00Z")

	campaignA := percentCampaign(1, "10", 11)
	campaignB := fixedCampaign(2, "5.00")
	e.insert(campaignA, campaignB)

	price, err := e.engine.GetEffectivePrice(newContext(), 101)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NewNullInt64(1), price.AppliedCampaignID)
	assert.Equal(t, "90.00", price.FinalPrice.StringFixed(2))
	assert.Equal(t, "100.00", price.BasePrice.StringFixed(2))

	explain, err := e.engine.ExplainEligibility(newContext(), 101, newTime("2024-01-03T00:00:00Z"))
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(explain))
	assert.Equal(t, int64(1), explain[0].CampaignID)
	assert.Equal(t, "10.00", explain[0].ProjectedSavings.StringFixed(2))
	assert.Equal(t, int64(2), explain[1].CampaignID)
	assert.Equal(t, "5.00", explain[1].ProjectedSavings.StringFixed(2))
}

func TestEngine_Fixed_Beats_Percentage_On_Cheap_Product(t *testing.T) {
	e := newEngineTest("2024-01-03T00:00:00Z")
	e.insert(
		percentCampaign(1, "10"),
		fixedCampaign(2, "1.00"),
	)

	// 10% of 3.00 is 0.30, less than 1.00
	price, err := e.engine.GetEffectivePrice(newContext(), 102)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NewNullInt64(2), price.AppliedCampaignID)
	assert.Equal(t, "2.00", price.FinalPrice.StringFixed(2))
}

func TestEngine_Fixed_Greater_Than_Base_Floors_At_Zero(t *testing.T) {
	e := newEngineTest("2024-01-03T00:00:00Z")
	e.insert(fixedCampaign(1, "5.00", 12))

	price, err := e.engine.GetEffectivePrice(newContext(), 102)
	assert.Equal(t, nil, err)
	assert.True(t, price.FinalPrice.IsZero())
	assert.Equal(t, model.NewNullInt64(1), price.AppliedCampaignID)
}

func TestEngine_Apply_To_All_Covers_Every_Category(t *testing.T) {
	e := newEngineTest("2024-01-03T00:00:00Z")
	e.insert(percentCampaign(1, "50"))

	for _, p := range e.catalog.ListProducts() {
		campaigns, err := e.engine.Resolver().Eligible(p.ID, newTime("2024-01-03T00:00:00Z"))
		assert.Equal(t, nil, err)
		assert.Equal(t, 1, len(campaigns))
		assert.Equal(t, int64(1), campaigns[0].ID)
	}
}

func TestEngine_Targeted_Campaign_Does_Not_Apply_To_Other_Category(t *testing.T) {
	e := newEngineTest("2024-01-03T00:00:00Z")
	e.insert(percentCampaign(1, "50", 11))

	price, err := e.engine.GetEffectivePrice(newContext(), 102)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullInt64{}, price.AppliedCampaignID)
	assert.Equal(t, "3.00", price.FinalPrice.StringFixed(2))
}

func TestEngine_Window_Boundaries(t *testing.T) {
	e := newEngineTest("2024-01-01T00:00:00Z")
	e.insert(percentCampaign(1, "10", 11))

	resolver := e.engine.Resolver()

	campaigns, err := resolver.Eligible(101, newTime("2024-01-01T00:00:00Z"))
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(campaigns))

	campaigns, err = resolver.Eligible(101, newTime("2023-12-31T23:59:59Z"))
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(campaigns))

	campaigns, err = resolver.Eligible(101, newTime("2024-01-07T23:59:59Z"))
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(campaigns))

	campaigns, err = resolver.Eligible(101, newTime("2024-01-08T00:00:00Z"))
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(campaigns))

	e.setNow("2024-01-08T00:00:00Z")
	price, err := e.engine.GetEffectivePrice(newContext(), 101)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullInt64{}, price.AppliedCampaignID)
	assert.Equal(t, "100.00", price.FinalPrice.StringFixed(2))
}

func TestEngine_Inactive_And_Reactivated_Expired_Campaign(t *testing.T) {
	e := newEngineTest("2024-01-03T00:00:00Z")
	e.insert(percentCampaign(1, "10", 11))

	_, err := e.store.SetActive(1, false)
	assert.Equal(t, nil, err)

	price, err := e.engine.GetEffectivePrice(newContext(), 101)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullInt64{}, price.AppliedCampaignID)

	// reactivated after expiry: still not eligible
	e.setNow("2024-02-01T00:00:00Z")
	_, err = e.store.SetActive(1, true)
	assert.Equal(t, nil, err)

	price, err = e.engine.GetEffectivePrice(newContext(), 101)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullInt64{}, price.AppliedCampaignID)
	assert.Equal(t, "100.00", price.FinalPrice.StringFixed(2))
}

func TestEngine_Tie_Break_By_Start_Then_ID(t *testing.T) {
	e := newEngineTest("2024-01-03T00:00:00Z")

	late := percentCampaign(1, "10", 11)
	late.StartAt = newTime("2024-01-02T00:00:00Z")

	early := fixedCampaign(5, "10.00")
	sameStartHigherID := fixedCampaign(7, "10.00", 11)

	e.insert(late, early, sameStartHigherID)

	campaigns, err := e.engine.Resolver().Eligible(101, newTime("2024-01-03T00:00:00Z"))
	assert.Equal(t, nil, err)

	var ids []int64
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{5, 7, 1}, ids)

	price, err := e.engine.GetEffectivePrice(newContext(), 101)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NewNullInt64(5), price.AppliedCampaignID)
	assert.Equal(t, "90.00", price.FinalPrice.StringFixed(2))
}

func TestEngine_No_Stacking(t *testing.T) {
	e := newEngineTest("2024-01-03T00:00:00Z")
	e.insert(
		percentCampaign(1, "20", 11),
		percentCampaign(2, "20", 11),
		fixedCampaign(3, "20.00"),
	)

	price, err := e.engine.GetEffectivePrice(newContext(), 101)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NewNullInt64(1), price.AppliedCampaignID)
	assert.Equal(t, "80.00", price.FinalPrice.StringFixed(2))
}

func TestEngine_Idempotent(t *testing.T) {
	e := newEngineTest("2024-01-03T00:00:00Z")
	e.insert(percentCampaign(1, "15", 11), fixedCampaign(2, "3.50"))

	first, err := e.engine.GetEffectivePrice(newContext(), 101)
	assert.Equal(t, nil, err)

	second, err := e.engine.GetEffectivePrice(newContext(), 101)
	assert.Equal(t, nil, err)
	assert.Equal(t, first, second)
}

func TestEngine_Zero_Base_Price(t *testing.T) {
	e := newEngineTest("2024-01-03T00:00:00Z")
	e.insert(fixedCampaign(1, "5.00"), percentCampaign(2, "10"))

	price, err := e.engine.GetEffectivePrice(newContext(), 103)
	assert.Equal(t, nil, err)
	assert.True(t, price.FinalPrice.IsZero())
	// both save nothing, earlier start equal, lowest id wins
	assert.Equal(t, model.NewNullInt64(1), price.AppliedCampaignID)
}

func TestEngine_Explain_Empty(t *testing.T) {
	e := newEngineTest("2024-01-03T00:00:00Z")

	explain, err := e.engine.ExplainEligibility(newContext(), 101, newTime("2024-01-03T00:00:00Z"))
	assert.Equal(t, nil, err)
	assert.Equal(t, []Explanation{}, explain)
}

func TestEngine_Concurrent_Queries_And_Mutations(t *testing.T) {
	e := newEngineTest("2024-01-03T00:00:00Z")
	e.insert(percentCampaign(1, "10", 11))

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		for i := int64(2); i < 100; i++ {
			_, _ = e.store.Insert(fixedCampaign(i, "1.00", 12))
			_, _ = e.store.SetActive(i, i%2 == 0)
		}
	}()

	for th := 0; th < 3; th++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				price, err := e.engine.GetEffectivePrice(newContext(), 101)
				assert.Equal(t, nil, err)
				assert.Equal(t, model.NewNullInt64(1), price.AppliedCampaignID)
				assert.Equal(t, "90.00", price.FinalPrice.StringFixed(2))
			}
		}()
	}

	wg.Wait()
}

func TestEngine_Agrees_With_Resolver(t *testing.T) {
	e := newEngineTest("2024-01-03T00:00:00Z")
	e.insert(
		percentCampaign(1, "10"),
		fixedCampaign(2, "5.00", 11),
		fixedCampaign(3, "2.50", 12),
	)

	resolver := e.engine.Resolver()
	assert.Same(t, resolver, e.engine.Resolver())

	at := newTime("2024-01-03T00:00:00Z")
	for _, p := range e.catalog.ListProducts() {
		campaigns, err := resolver.Eligible(p.ID, at)
		assert.Equal(t, nil, err)

		price, err := e.engine.GetEffectivePrice(newContext(), p.ID)
		assert.Equal(t, nil, err)

		explanations, err := e.engine.ExplainEligibility(newContext(), p.ID, at)
		assert.Equal(t, nil, err)
		assert.Equal(t, len(campaigns), len(explanations))

		for i, c := range campaigns {
			assert.Equal(t, c.ID, explanations[i].CampaignID)
		}
		if len(campaigns) > 0 {
			assert.Equal(t, model.NewNullInt64(campaigns[0].ID), price.AppliedCampaignID)
		} else {
			assert.Equal(t, model.NullInt64{}, price.AppliedCampaignID)
		}
	}
}

func TestResolver_View_Pins_Snapshots(t *testing.T) {
	e := newEngineTest("2024-01-03T00:00:00Z")
	e.insert(percentCampaign(1, "10"))

	view, err := e.engine.Resolver().view(101)
	assert.Equal(t, nil, err)
	assert.Equal(t, e.catalog.Version(), view.catalogVersion)
	assert.Equal(t, e.store.Version(), view.store.version)

	e.insert(percentCampaign(2, "50"))

	ranked, _ := view.rank(newTime("2024-01-03T00:00:00Z"))
	assert.Equal(t, 1, len(ranked))
	assert.Equal(t, int64(1), ranked[0].campaign.ID)
}
