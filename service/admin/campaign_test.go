package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/QuangTung97/promo-pricing/model"
	"github.com/QuangTung97/promo-pricing/service/pricing"
	"github.com/stretchr/testify/assert"
)

func newCampaignInput() CampaignInput {
	return CampaignInput{
		Name:          "new year",
		DiscountType:  "percentage",
		DiscountValue: newDecimal("10"),

		StartAt:  newTime("2024-01-01T00:00:00Z"),
		EndAt:    newTime("2024-01-08T00:00:00Z"),
		IsActive: true,

		CampaignCategoryID: 1,
		TargetCategoryIDs:  []int64{12, 11},
	}
}

func (s *serviceTest) stubCampaignCreation(id int64) {
	s.categoryRepo.FindCampaignCategoryFunc = func(
		ctx context.Context, categoryID int64,
	) ([]model.CampaignCategory, error) {
		if categoryID == 1 {
			return []model.CampaignCategory{{ID: 1, Name: "seasonal"}}, nil
		}
		return nil, nil
	}
	s.campaignRepo.InsertCampaignFunc = func(ctx context.Context, campaign model.Campaign) (int64, error) {
		return id, nil
	}
	s.campaignRepo.InsertCampaignTargetsFunc = func(
		ctx context.Context, campaignID int64, categoryIDs []int64,
	) error {
		return nil
	}
}

func TestService_CreateCampaign(t *testing.T) {
	s := newServiceTest()
	s.stubCampaignCreation(7)

	campaign, err := s.service.CreateCampaign(newContext(), newCampaignInput())
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(7), campaign.ID)
	assert.Equal(t, model.DiscountTypePercentage, campaign.DiscountType)
	assert.Equal(t, []int64{11, 12}, campaign.TargetCategoryIDs)

	targetCalls := s.campaignRepo.InsertCampaignTargetsCalls()
	assert.Equal(t, 1, len(targetCalls))
	assert.Equal(t, int64(7), targetCalls[0].CampaignID)

	stored, err := s.store.Get(7)
	assert.Equal(t, nil, err)
	assert.Equal(t, "new year", stored.Name)

	campaigns, err := s.service.ListCampaigns(newContext())
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(campaigns))
}

func TestService_CreateCampaign_Duplicated_Targets(t *testing.T) {
	s := newServiceTest()
	s.stubCampaignCreation(8)

	input := newCampaignInput()
	input.TargetCategoryIDs = []int64{12, 11, 12, 11}

	campaign, err := s.service.CreateCampaign(newContext(), input)
	assert.Equal(t, nil, err)
	assert.Equal(t, []int64{11, 12}, campaign.TargetCategoryIDs)
	assert.Equal(t, []int64{12, 11, 12, 11}, input.TargetCategoryIDs)

	targetCalls := s.campaignRepo.InsertCampaignTargetsCalls()
	assert.Equal(t, 1, len(targetCalls))
	assert.Equal(t, []int64{11, 12}, targetCalls[0].CategoryIDs)
}

func TestService_CreateCampaign_Validation(t *testing.T) {
	s := newServiceTest()
	s.stubCampaignCreation(7)

	input := newCampaignInput()
	input.EndAt = input.StartAt
	_, err := s.service.CreateCampaign(newContext(), input)
	assert.Equal(t, pricing.ErrInvalidRange, err)

	input = newCampaignInput()
	input.DiscountType = "userPoint"
	_, err = s.service.CreateCampaign(newContext(), input)
	assert.Equal(t, ErrUnsupportedDiscountType, err)

	input = newCampaignInput()
	input.TargetCategoryIDs = []int64{11, 99}
	_, err = s.service.CreateCampaign(newContext(), input)
	assert.Equal(t, pricing.ErrCategoryNotFound, err)

	input = newCampaignInput()
	input.CampaignCategoryID = 2
	_, err = s.service.CreateCampaign(newContext(), input)
	assert.Equal(t, ErrCampaignCategoryNotFound, err)

	assert.Equal(t, 0, len(s.campaignRepo.InsertCampaignCalls()))
	assert.Equal(t, 0, len(s.store.List()))
}

func TestService_Activate_Deactivate(t *testing.T) {
	s := newServiceTest()
	s.stubCampaignCreation(7)

	created, err := s.service.CreateCampaign(newContext(), newCampaignInput())
	assert.Equal(t, nil, err)

	s.campaignRepo.FindCampaignFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		if campaignID != 7 {
			return model.NullCampaign{}, nil
		}
		return model.NullCampaign{Valid: true, Campaign: created}, nil
	}
	s.campaignRepo.LockCampaignFunc = func(ctx context.Context, campaignID int64) error {
		return nil
	}
	s.campaignRepo.UpdateCampaignActiveFunc = func(ctx context.Context, campaignID int64, active bool) error {
		return nil
	}

	campaign, err := s.service.DeactivateCampaign(newContext(), 7)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, campaign.IsActive)

	campaign, err = s.service.ActivateCampaign(newContext(), 7)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, campaign.IsActive)
	assert.Equal(t, created.EndAt, campaign.EndAt)

	calls := s.campaignRepo.UpdateCampaignActiveCalls()
	assert.Equal(t, 2, len(calls))
	assert.Equal(t, false, calls[0].Active)
	assert.Equal(t, true, calls[1].Active)

	_, err = s.service.ActivateCampaign(newContext(), 8)
	assert.Equal(t, pricing.ErrCampaignNotFound, err)
}

func TestService_Activate_Not_Yet_In_Store(t *testing.T) {
	s := newServiceTest()

	persisted := model.Campaign{
		ID:            9,
		Name:          "loaded later",
		DiscountType:  model.DiscountTypeFixed,
		DiscountValue: newDecimal("5"),
		StartAt:       newTime("2024-01-01T00:00:00Z"),
		EndAt:         newTime("2024-01-08T00:00:00Z"),
	}
	s.campaignRepo.FindCampaignFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{Valid: true, Campaign: persisted}, nil
	}
	s.campaignRepo.LockCampaignFunc = func(ctx context.Context, campaignID int64) error {
		return nil
	}
	s.campaignRepo.UpdateCampaignActiveFunc = func(ctx context.Context, campaignID int64, active bool) error {
		return nil
	}

	campaign, err := s.service.ActivateCampaign(newContext(), 9)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, campaign.IsActive)

	stored, err := s.store.Get(9)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, stored.IsActive)
}

func TestService_SetActive_Persist_Error_Keeps_Store(t *testing.T) {
	s := newServiceTest()
	s.stubCampaignCreation(7)

	created, err := s.service.CreateCampaign(newContext(), newCampaignInput())
	assert.Equal(t, nil, err)
	version := s.store.Version()

	s.campaignRepo.FindCampaignFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{Valid: true, Campaign: created}, nil
	}
	s.campaignRepo.LockCampaignFunc = func(ctx context.Context, campaignID int64) error {
		return errors.New("lock timeout")
	}

	_, err = s.service.DeactivateCampaign(newContext(), 7)
	assert.Equal(t, errors.New("lock timeout"), err)
	assert.Equal(t, version, s.store.Version())
}

func TestService_DeleteCampaign(t *testing.T) {
	s := newServiceTest()
	s.stubCampaignCreation(7)

	created, err := s.service.CreateCampaign(newContext(), newCampaignInput())
	assert.Equal(t, nil, err)

	s.campaignRepo.FindCampaignFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		if campaignID != 7 {
			return model.NullCampaign{}, nil
		}
		return model.NullCampaign{Valid: true, Campaign: created}, nil
	}
	s.campaignRepo.DeleteCampaignFunc = func(ctx context.Context, campaignID int64) error {
		return nil
	}

	err = s.service.DeleteCampaign(newContext(), 8)
	assert.Equal(t, pricing.ErrCampaignNotFound, err)

	err = s.service.DeleteCampaign(newContext(), 7)
	assert.Equal(t, nil, err)

	_, err = s.store.Get(7)
	assert.Equal(t, pricing.ErrCampaignNotFound, err)
	assert.Equal(t, 1, len(s.campaignRepo.DeleteCampaignCalls()))
}
