package loader

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/QuangTung97/promo-pricing/model"
	"github.com/QuangTung97/promo-pricing/pkg/metrics"
	"github.com/QuangTung97/promo-pricing/repository"
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

type loaderTest struct {
	campaignRepo *repository.CampaignMock
	categoryRepo *repository.CategoryMock
	productRepo  *repository.ProductMock

	catalog *pricing.Catalog
	store   *pricing.Store
	metrics *metrics.Metrics

	loader *Loader
}

func newLoaderTest(interval time.Duration) *loaderTest {
	provider := &repository.ProviderMock{
		ReadonlyFunc: func(ctx context.Context) context.Context {
			return ctx
		},
	}

	l := &loaderTest{
		campaignRepo: &repository.CampaignMock{},
		categoryRepo: &repository.CategoryMock{},
		productRepo:  &repository.ProductMock{},

		catalog: pricing.NewCatalog(),
		store:   pricing.NewStore(),
		metrics: metrics.New(),
	}

	l.categoryRepo.ListProductCategoriesFunc = func(ctx context.Context) ([]model.ProductCategory, error) {
		return []model.ProductCategory{{ID: 11, Name: "books"}}, nil
	}
	l.productRepo.ListProductsFunc = func(ctx context.Context) ([]model.Product, error) {
		return []model.Product{
			{ID: 101, Name: "book", CategoryID: 11, BasePrice: decimal.NewFromInt(100)},
		}, nil
	}
	l.campaignRepo.ListCampaignsFunc = func(ctx context.Context) ([]model.Campaign, error) {
		return []model.Campaign{
			{
				ID:                1,
				DiscountType:      model.DiscountTypePercentage,
				DiscountValue:     decimal.NewFromInt(10),
				StartAt:           newTime("2024-01-01T00:00:00Z"),
				EndAt:             newTime("2024-01-08T00:00:00Z"),
				IsActive:          true,
				TargetCategoryIDs: []int64{11},
			},
		}, nil
	}

	l.loader = New(provider, l.campaignRepo, l.categoryRepo, l.productRepo,
		l.catalog, l.store, interval, zap.NewNop(), l.metrics)
	return l
}

func TestLoader_Load(t *testing.T) {
	l := newLoaderTest(0)

	result, err := l.loader.Load(newContext())
	assert.Equal(t, nil, err)
	assert.Equal(t, LoadResult{CatalogReplaced: true, StoreReplaced: true}, result)

	p, err := l.catalog.GetProduct(101)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(11), p.CategoryID)

	c, err := l.store.Get(1)
	assert.Equal(t, nil, err)
	assert.Equal(t, []int64{11}, c.TargetCategoryIDs)

	assert.Equal(t, 1.0, testutil.ToFloat64(l.metrics.SnapshotLoadTotal.WithLabelValues("ok")))
}

func TestLoader_Load_Error(t *testing.T) {
	l := newLoaderTest(0)

	l.campaignRepo.ListCampaignsFunc = func(ctx context.Context) ([]model.Campaign, error) {
		return nil, errors.New("connection refused")
	}

	_, err := l.loader.Load(newContext())
	assert.Equal(t, errors.New("connection refused"), err)
	assert.Equal(t, uint64(0), l.catalog.Version())
	assert.Equal(t, uint64(0), l.store.Version())

	assert.Equal(t, 1.0, testutil.ToFloat64(l.metrics.SnapshotLoadTotal.WithLabelValues("failed")))
}

func TestLoader_Load_Concurrent_Mutation_Wins(t *testing.T) {
	l := newLoaderTest(0)

	l.campaignRepo.ListCampaignsFunc = func(ctx context.Context) ([]model.Campaign, error) {
		// an admin mutation lands while the database is being read
		_, err := l.store.Insert(model.Campaign{
			ID:            2,
			DiscountType:  model.DiscountTypeFixed,
			DiscountValue: decimal.NewFromInt(5),
			StartAt:       newTime("2024-01-01T00:00:00Z"),
			EndAt:         newTime("2024-01-08T00:00:00Z"),
		})
		if err != nil {
			panic(err)
		}
		return nil, nil
	}

	result, err := l.loader.Load(newContext())
	assert.Equal(t, nil, err)
	assert.Equal(t, LoadResult{CatalogReplaced: true, StoreReplaced: false}, result)

	_, err = l.store.Get(2)
	assert.Equal(t, nil, err)
}

func TestLoader_Start_Stop(t *testing.T) {
	l := newLoaderTest(5 * time.Millisecond)

	l.loader.Start(newContext())

	assert.Eventually(t, func() bool {
		_, err := l.store.Get(1)
		return err == nil
	}, time.Second, 5*time.Millisecond)

	l.loader.Stop()
}
