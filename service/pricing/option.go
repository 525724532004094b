package pricing

import "github.com/QuangTung97/promo-pricing/pkg/metrics"

type engineOptions struct {
	clock     Clock
	policy    Policy
	precision int32
	cache     PriceCache
	metrics   *metrics.Metrics
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		clock:     NewSystemClock(),
		policy:    HighestRankedWins{},
		precision: DefaultPrecision,
	}
}

func newEngineOptions(options ...Option) engineOptions {
	opts := defaultEngineOptions()
	for _, fn := range options {
		fn(&opts)
	}
	return opts
}

// Option ...
type Option func(opts *engineOptions)

// WithClock ...
func WithClock(clock Clock) Option {
	return func(opts *engineOptions) {
		opts.clock = clock
	}
}

// WithPolicy ...
func WithPolicy(policy Policy) Option {
	return func(opts *engineOptions) {
		opts.policy = policy
	}
}

// WithPrecision sets the number of decimal places of final prices
func WithPrecision(precision int32) Option {
	return func(opts *engineOptions) {
		opts.precision = precision
	}
}

// WithPriceCache caches effective prices, a nil cache disables caching
func WithPriceCache(cache PriceCache) Option {
	return func(opts *engineOptions) {
		opts.cache = cache
	}
}

// WithMetrics ...
func WithMetrics(m *metrics.Metrics) Option {
	return func(opts *engineOptions) {
		opts.metrics = m
	}
}
