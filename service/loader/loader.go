package loader

import (
	"context"
	"sync"
	"time"

	"github.com/QuangTung97/promo-pricing/pkg/metrics"
	"github.com/QuangTung97/promo-pricing/repository"
	"github.com/QuangTung97/promo-pricing/service/pricing"
	"go.uber.org/zap"
)

// LoadResult ...
type LoadResult struct {
	CatalogReplaced bool
	StoreReplaced   bool
}

// Loader reloads the catalog and the campaign store from the database.
// A snapshot mutated while loading is kept, the next load picks up both changes.
type Loader struct {
	provider     repository.Provider
	campaignRepo repository.Campaign
	categoryRepo repository.Category
	productRepo  repository.Product

	catalog *pricing.Catalog
	store   *pricing.Store

	interval time.Duration
	logger   *zap.Logger
	metrics  *metrics.Metrics

	wg       sync.WaitGroup
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a loader, metrics can be nil
func New(
	provider repository.Provider,
	campaignRepo repository.Campaign,
	categoryRepo repository.Category,
	productRepo repository.Product,
	catalog *pricing.Catalog,
	store *pricing.Store,
	interval time.Duration,
	logger *zap.Logger,
	m *metrics.Metrics,
) *Loader {
	return &Loader{
		provider:     provider,
		campaignRepo: campaignRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,

		catalog: catalog,
		store:   store,

		interval: interval,
		logger:   logger,
		metrics:  m,
		done:     make(chan struct{}),
	}
}

// Load reads everything in one pass and swaps the snapshots
func (l *Loader) Load(ctx context.Context) (LoadResult, error) {
	result, err := l.load(ctx)
	l.metrics.ObserveSnapshotLoad(err)
	return result, err
}

func (l *Loader) load(ctx context.Context) (LoadResult, error) {
	catalogVersion := l.catalog.Version()
	storeVersion := l.store.Version()

	ctx = l.provider.Readonly(ctx)

	categories, err := l.categoryRepo.ListProductCategories(ctx)
	if err != nil {
		return LoadResult{}, err
	}
	products, err := l.productRepo.ListProducts(ctx)
	if err != nil {
		return LoadResult{}, err
	}
	campaigns, err := l.campaignRepo.ListCampaigns(ctx)
	if err != nil {
		return LoadResult{}, err
	}

	var result LoadResult

	result.CatalogReplaced, err = l.catalog.ReplaceIfVersion(catalogVersion, categories, products)
	if err != nil {
		return LoadResult{}, err
	}

	result.StoreReplaced, err = l.store.ReplaceIfVersion(storeVersion, campaigns)
	if err != nil {
		return result, err
	}

	l.logger.Info("snapshots loaded",
		zap.Int("categories", len(categories)),
		zap.Int("products", len(products)),
		zap.Int("campaigns", len(campaigns)),
		zap.Bool("catalogReplaced", result.CatalogReplaced),
		zap.Bool("storeReplaced", result.StoreReplaced),
	)
	return result, nil
}

// Start reloads on every interval until Stop or ctx is done
func (l *Loader) Start(ctx context.Context) {
	if l.interval <= 0 {
		return
	}

	l.wg.Add(1)
	go l.loop(ctx)
}

// Stop ...
func (l *Loader) Stop() {
	l.stopOnce.Do(func() {
		close(l.done)
	})
	l.wg.Wait()
}

func (l *Loader) loop(ctx context.Context) {
	defer l.wg.Done()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.done:
			return
		case <-ticker.C:
			if _, err := l.Load(ctx); err != nil {
				l.logger.Error("reload snapshots", zap.Error(err))
			}
		}
	}
}
