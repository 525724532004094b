package admin

import (
	"context"
	"strings"

	"github.com/QuangTung97/promo-pricing/model"
	"github.com/QuangTung97/promo-pricing/service/pricing"
	"go.uber.org/zap"
)

// ListCampaigns returns the campaigns of the current store snapshot
func (s *Service) ListCampaigns(_ context.Context) ([]model.Campaign, error) {
	return s.store.List(), nil
}

func (s *Service) checkCampaignReferences(ctx context.Context, c model.Campaign) error {
	for _, id := range c.TargetCategoryIDs {
		if _, err := s.catalog.GetCategory(id); err != nil {
			return err
		}
	}

	categories, err := s.categoryRepo.FindCampaignCategory(s.provider.Readonly(ctx), c.CampaignCategoryID)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		return ErrCampaignCategoryNotFound
	}
	return nil
}

// CreateCampaign validates the window and discount type, then persists and publishes the campaign
func (s *Service) CreateCampaign(ctx context.Context, input CampaignInput) (model.Campaign, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Campaign{}, ErrEmptyName
	}

	discountType, err := ParseDiscountType(input.DiscountType)
	if err != nil {
		return model.Campaign{}, err
	}

	now := s.clock.Now()
	campaign := model.Campaign{
		Name:          name,
		Description:   input.Description,
		DiscountType:  discountType,
		DiscountValue: input.DiscountValue,

		StartAt:  input.StartAt.UTC(),
		EndAt:    input.EndAt.UTC(),
		IsActive: input.IsActive,

		CampaignCategoryID: input.CampaignCategoryID,
		TargetCategoryIDs:  pricing.NormalizeTargets(input.TargetCategoryIDs),

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := pricing.ValidateCampaign(campaign); err != nil {
		return model.Campaign{}, err
	}
	if err := s.checkCampaignReferences(ctx, campaign); err != nil {
		return model.Campaign{}, err
	}

	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		id, err := s.campaignRepo.InsertCampaign(ctx, campaign)
		if err != nil {
			return err
		}
		campaign.ID = id
		return s.campaignRepo.InsertCampaignTargets(ctx, id, campaign.TargetCategoryIDs)
	})
	if err != nil {
		return model.Campaign{}, err
	}

	result, err := s.store.Insert(campaign)
	if err != nil {
		return model.Campaign{}, err
	}

	s.logger.Info("campaign created",
		zap.Int64("campaignID", result.ID),
		zap.Stringer("discountType", result.DiscountType),
		zap.Time("startAt", result.StartAt),
		zap.Time("endAt", result.EndAt),
	)
	return result, nil
}

// ActivateCampaign only flips is_active, an expired campaign stays ineligible
func (s *Service) ActivateCampaign(ctx context.Context, id int64) (model.Campaign, error) {
	return s.setActive(ctx, id, true)
}

// DeactivateCampaign ...
func (s *Service) DeactivateCampaign(ctx context.Context, id int64) (model.Campaign, error) {
	return s.setActive(ctx, id, false)
}

func (s *Service) setActive(ctx context.Context, id int64, active bool) (model.Campaign, error) {
	var persisted model.Campaign
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		found, err := s.campaignRepo.FindCampaign(ctx, id)
		if err != nil {
			return err
		}
		if !found.Valid {
			return pricing.ErrCampaignNotFound
		}

		if err := s.campaignRepo.LockCampaign(ctx, id); err != nil {
			return err
		}
		if err := s.campaignRepo.UpdateCampaignActive(ctx, id, active); err != nil {
			return err
		}

		persisted = found.Campaign
		persisted.IsActive = active
		return nil
	})
	if err != nil {
		return model.Campaign{}, err
	}

	result, err := s.store.SetActive(id, active)
	if err == pricing.ErrCampaignNotFound {
		// not yet loaded into the store
		result, err = s.store.Insert(persisted)
	}
	if err != nil {
		return model.Campaign{}, err
	}

	s.logger.Info("campaign active changed",
		zap.Int64("campaignID", id), zap.Bool("active", active))
	return result, nil
}

// DeleteCampaign is a hard delete
func (s *Service) DeleteCampaign(ctx context.Context, id int64) error {
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		found, err := s.campaignRepo.FindCampaign(ctx, id)
		if err != nil {
			return err
		}
		if !found.Valid {
			return pricing.ErrCampaignNotFound
		}
		return s.campaignRepo.DeleteCampaign(ctx, id)
	})
	if err != nil {
		return err
	}

	if err := s.store.Delete(id); err != nil && err != pricing.ErrCampaignNotFound {
		return err
	}
	s.logger.Info("campaign deleted", zap.Int64("campaignID", id))
	return nil
}
