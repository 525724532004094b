package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/QuangTung97/promo-pricing/model"
	"github.com/QuangTung97/promo-pricing/pkg/metrics"
	"github.com/QuangTung97/promo-pricing/service/pricing"
	"go.uber.org/zap"
)

//go:generate moq -out scheduler_mocks.go . CampaignLister CampaignSwitch

// CampaignLister returns the campaigns currently known, satisfied by *pricing.Store
type CampaignLister interface {
	List() []model.Campaign
}

// CampaignSwitch is the admin activation path, persisting before publishing
type CampaignSwitch interface {
	ActivateCampaign(ctx context.Context, id int64) (model.Campaign, error)
	DeactivateCampaign(ctx context.Context, id int64) (model.Campaign, error)
}

// SweepResult ...
type SweepResult struct {
	Deactivated int
	Failed      int
}

// Scheduler periodically deactivates active campaigns whose window has ended.
// Pricing never depends on it, expired campaigns are ineligible regardless.
type Scheduler struct {
	lister   CampaignLister
	switcher CampaignSwitch
	clock    pricing.Clock
	interval time.Duration
	logger   *zap.Logger
	metrics  *metrics.Metrics

	wg       sync.WaitGroup
	done     chan struct{}
	stopOnce sync.Once
}

// DefaultSweepInterval is used when the configured interval is not positive
const DefaultSweepInterval = time.Minute

// New creates a scheduler, metrics can be nil
func New(
	lister CampaignLister, switcher CampaignSwitch, clock pricing.Clock,
	interval time.Duration, logger *zap.Logger, m *metrics.Metrics,
) *Scheduler {
	if interval <= 0 {
		logger.Warn("invalid sweep interval, using default",
			zap.Duration("interval", interval), zap.Duration("default", DefaultSweepInterval))
		interval = DefaultSweepInterval
	}

	return &Scheduler{
		lister:   lister,
		switcher: switcher,
		clock:    clock,
		interval: interval,
		logger:   logger,
		metrics:  m,
		done:     make(chan struct{}),
	}
}

// Start runs a sweep immediately and then on every interval until Stop or ctx is done
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.loop(ctx)

	s.logger.Info("scheduler started", zap.Duration("interval", s.interval))
}

// Stop waits for the running sweep to finish
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
	s.wg.Wait()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep deactivates every campaign observed with IsActive && EndAt <= now.
// Failures are logged and retried on the next sweep.
func (s *Scheduler) Sweep(ctx context.Context) SweepResult {
	now := s.clock.Now()

	var result SweepResult
	for _, c := range s.lister.List() {
		if !c.IsActive || !c.ExpiredAt(now) {
			continue
		}

		_, err := s.switcher.DeactivateCampaign(ctx, c.ID)
		if err == pricing.ErrCampaignNotFound {
			continue
		}
		if err != nil {
			result.Failed++
			s.logger.Error("deactivate expired campaign",
				zap.Int64("campaignID", c.ID), zap.Error(err))
			continue
		}

		result.Deactivated++
		s.logger.Info("expired campaign deactivated",
			zap.Int64("campaignID", c.ID), zap.Time("endAt", c.EndAt))
	}

	s.metrics.ObserveSweep(result.Deactivated, result.Failed)
	return result
}

// Reactivate flips the campaign back to active, its time window is unchanged
func (s *Scheduler) Reactivate(ctx context.Context, id int64) (model.Campaign, error) {
	return s.switcher.ActivateCampaign(ctx, id)
}
