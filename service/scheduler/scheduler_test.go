package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/QuangTung97/promo-pricing/model"
	"github.com/QuangTung97/promo-pricing/pkg/metrics"
	"github.com/QuangTung97/promo-pricing/service/pricing"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newContext() context.Context {
	return context.Background()
}

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func newCampaign(id int64, endAt string, active bool) model.Campaign {
	return model.Campaign{
		ID:            id,
		Name:          "campaign",
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: decimal.NewFromInt(10),
		StartAt:       newTime("2024-01-01T00:00:00Z"),
		EndAt:         newTime(endAt),
		IsActive:      active,
	}
}

type schedulerTest struct {
	mut sync.Mutex
	now time.Time

	store    *pricing.Store
	switcher *CampaignSwitchMock
	metrics  *metrics.Metrics

	scheduler *Scheduler
}

func newSchedulerTest(campaigns ...model.Campaign) *schedulerTest {
	s := &schedulerTest{
		store:   pricing.NewStore(),
		metrics: metrics.New(),
	}
	if err := s.store.Replace(campaigns); err != nil {
		panic(err)
	}

	s.switcher = &CampaignSwitchMock{
		ActivateCampaignFunc: func(ctx context.Context, id int64) (model.Campaign, error) {
			return s.store.SetActive(id, true)
		},
		DeactivateCampaignFunc: func(ctx context.Context, id int64) (model.Campaign, error) {
			return s.store.SetActive(id, false)
		},
	}

	clock := &pricing.ClockMock{
		NowFunc: func() time.Time {
			s.mut.Lock()
			defer s.mut.Unlock()
			return s.now
		},
	}

	s.scheduler = New(s.store, s.switcher, clock, time.Hour, zap.NewNop(), s.metrics)
	return s
}

func (s *schedulerTest) setNow(v string) {
	s.mut.Lock()
	s.now = newTime(v)
	s.mut.Unlock()
}

func TestScheduler_Sweep_Deactivates_Expired_Only(t *testing.T) {
	s := newSchedulerTest(
		newCampaign(1, "2024-01-08T00:00:00Z", true),
		newCampaign(2, "2024-01-10T00:00:00Z", true),
		newCampaign(3, "2024-01-05T00:00:00Z", false),
	)
	s.setNow("2024-01-08T00:00:00Z")

	result := s.scheduler.Sweep(newContext())
	assert.Equal(t, SweepResult{Deactivated: 1}, result)

	calls := s.switcher.DeactivateCampaignCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, int64(1), calls[0].Id)

	c, err := s.store.Get(1)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, c.IsActive)

	c, err = s.store.Get(2)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, c.IsActive)

	// idempotent
	result = s.scheduler.Sweep(newContext())
	assert.Equal(t, SweepResult{}, result)
	assert.Equal(t, 1, len(s.switcher.DeactivateCampaignCalls()))
}

func TestScheduler_Sweep_Before_End_Does_Nothing(t *testing.T) {
	s := newSchedulerTest(newCampaign(1, "2024-01-08T00:00:00Z", true))
	s.setNow("2024-01-07T23:59:59Z")

	result := s.scheduler.Sweep(newContext())
	assert.Equal(t, SweepResult{}, result)
	assert.Equal(t, 0, len(s.switcher.DeactivateCampaignCalls()))
}

func TestScheduler_Sweep_Failure_Retried_Next_Sweep(t *testing.T) {
	s := newSchedulerTest(
		newCampaign(1, "2024-01-08T00:00:00Z", true),
		newCampaign(2, "2024-01-08T00:00:00Z", true),
	)
	s.setNow("2024-01-09T00:00:00Z")

	failing := true
	s.switcher.DeactivateCampaignFunc = func(ctx context.Context, id int64) (model.Campaign, error) {
		if id == 1 && failing {
			return model.Campaign{}, errors.New("database down")
		}
		return s.store.SetActive(id, false)
	}

	result := s.scheduler.Sweep(newContext())
	assert.Equal(t, SweepResult{Deactivated: 1, Failed: 1}, result)

	c, err := s.store.Get(1)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, c.IsActive)

	failing = false
	result = s.scheduler.Sweep(newContext())
	assert.Equal(t, SweepResult{Deactivated: 1}, result)

	c, err = s.store.Get(1)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, c.IsActive)

	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.SweepDeactivated))
}

func TestScheduler_Sweep_Deleted_Concurrently(t *testing.T) {
	s := newSchedulerTest(newCampaign(1, "2024-01-08T00:00:00Z", true))
	s.setNow("2024-01-09T00:00:00Z")

	s.switcher.DeactivateCampaignFunc = func(ctx context.Context, id int64) (model.Campaign, error) {
		return model.Campaign{}, pricing.ErrCampaignNotFound
	}

	result := s.scheduler.Sweep(newContext())
	assert.Equal(t, SweepResult{}, result)
}

func TestScheduler_Reactivate_Expired_Stays_Ineligible(t *testing.T) {
	s := newSchedulerTest()

	catalog := pricing.NewCatalog()
	err := catalog.Replace(
		[]model.ProductCategory{{ID: 11, Name: "books"}},
		[]model.Product{{ID: 101, CategoryID: 11, BasePrice: decimal.NewFromInt(100)}},
	)
	assert.Equal(t, nil, err)

	_, err = s.store.Insert(newCampaign(1, "2024-01-08T00:00:00Z", true))
	assert.Equal(t, nil, err)

	s.setNow("2024-01-09T00:00:00Z")
	s.scheduler.Sweep(newContext())

	c, err := s.scheduler.Reactivate(newContext(), 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, c.IsActive)

	engine := pricing.NewEngine(catalog, s.store,
		pricing.WithClock(&pricing.ClockMock{
			NowFunc: func() time.Time { return newTime("2024-01-09T00:00:00Z") },
		}),
	)
	price, err := engine.GetEffectivePrice(newContext(), 101)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, price.AppliedCampaignID.Valid)
	assert.Equal(t, "100.00", price.FinalPrice.StringFixed(2))
}

func TestScheduler_Start_Stop(t *testing.T) {
	s := newSchedulerTest(newCampaign(1, "2024-01-08T00:00:00Z", true))
	s.setNow("2024-01-09T00:00:00Z")

	s.scheduler.Start(newContext())

	assert.Eventually(t, func() bool {
		c, err := s.store.Get(1)
		return err == nil && !c.IsActive
	}, time.Second, 5*time.Millisecond)

	s.scheduler.Stop()
}

func TestScheduler_New_Non_Positive_Interval_Uses_Default(t *testing.T) {
	s := newSchedulerTest(newCampaign(1, "2024-01-08T00:00:00Z", true))
	s.setNow("2024-01-09T00:00:00Z")

	clock := &pricing.ClockMock{
		NowFunc: func() time.Time { return newTime("2024-01-09T00:00:00Z") },
	}

	for _, interval := range []time.Duration{0, -time.Second} {
		sched := New(s.store, s.switcher, clock, interval, zap.NewNop(), nil)
		assert.Equal(t, DefaultSweepInterval, sched.interval)

		sched.Start(newContext())
		sched.Stop()
	}

	c, err := s.store.Get(1)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, c.IsActive)
}
