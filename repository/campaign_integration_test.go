//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"github.com/QuangTung97/promo-pricing/model"
	"github.com/QuangTung97/promo-pricing/pkg/integration"
	"github.com/stretchr/testify/assert"
)

type campaignTest struct {
	tc       *integration.TestCase
	provider Provider
	repo     Campaign
}

func newCampaignTest() *campaignTest {
	tc := integration.NewTestCase()
	tc.Truncate("campaign", "campaign_target_category")
	return &campaignTest{
		tc:       tc,
		provider: NewProvider(tc.DB),
		repo:     NewCampaign(),
	}
}

func clearCampaignTimestamps(campaigns []model.Campaign) []model.Campaign {
	for i := range campaigns {
		campaigns[i].CreatedAt = newTime("2000-01-01T00:00:00Z")
		campaigns[i].UpdatedAt = newTime("2000-01-01T00:00:00Z")
	}
	return campaigns
}

func (c *campaignTest) insert(t *testing.T, campaign model.Campaign) int64 {
	var id int64
	err := c.provider.Transact(newContext(), func(ctx context.Context) error {
		var err error
		id, err = c.repo.InsertCampaign(ctx, campaign)
		if err != nil {
			return err
		}
		return c.repo.InsertCampaignTargets(ctx, id, campaign.TargetCategoryIDs)
	})
	assert.Equal(t, nil, err)
	return id
}

func newRepoCampaign() model.Campaign {
	return model.Campaign{
		Name:          "summer sale",
		Description:   "ten percent off",
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: newDecimal("10"),

		StartAt:  newTime("2024-01-01T00:00:00Z"),
		EndAt:    newTime("2024-01-08T00:00:00Z"),
		IsActive: true,

		CampaignCategoryID: 1,
		TargetCategoryIDs:  []int64{11, 12},
	}
}

func TestCampaign_Insert_List_Find(t *testing.T) {
	c := newCampaignTest()
	ctx := c.provider.Readonly(newContext())

	campaigns, err := c.repo.ListCampaigns(ctx)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(campaigns))

	campaign01 := newRepoCampaign()
	id := c.insert(t, campaign01)
	assert.Equal(t, int64(1), id)

	campaign02 := newRepoCampaign()
	campaign02.Name = "fixed"
	campaign02.DiscountType = model.DiscountTypeFixed
	campaign02.DiscountValue = newDecimal("5.00")
	campaign02.TargetCategoryIDs = nil
	c.insert(t, campaign02)

	campaigns, err = c.repo.ListCampaigns(ctx)
	assert.Equal(t, nil, err)

	campaign01.ID = 1
	campaign02.ID = 2
	campaign01.DiscountValue = newDecimal("10.0000")
	campaign02.DiscountValue = newDecimal("5.0000")
	assert.Equal(t, clearCampaignTimestamps([]model.Campaign{campaign01, campaign02}),
		clearCampaignTimestamps(campaigns))

	found, err := c.repo.FindCampaign(ctx, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, found.Valid)
	assert.Equal(t, []int64{11, 12}, found.Campaign.TargetCategoryIDs)

	found, err = c.repo.FindCampaign(ctx, 3)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullCampaign{}, found)
}

func TestCampaign_UpdateActive_Delete(t *testing.T) {
	c := newCampaignTest()
	id := c.insert(t, newRepoCampaign())

	err := c.provider.Transact(newContext(), func(ctx context.Context) error {
		if err := c.repo.LockCampaign(ctx, id); err != nil {
			return err
		}
		return c.repo.UpdateCampaignActive(ctx, id, false)
	})
	assert.Equal(t, nil, err)

	ctx := c.provider.Readonly(newContext())
	found, err := c.repo.FindCampaign(ctx, id)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, found.Campaign.IsActive)

	count, err := c.repo.CountTargetsByProductCategory(ctx, 11)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), count)

	count, err = c.repo.CountCampaignsByCategory(ctx, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), count)

	err = c.provider.Transact(newContext(), func(ctx context.Context) error {
		return c.repo.DeleteCampaign(ctx, id)
	})
	assert.Equal(t, nil, err)

	found, err = c.repo.FindCampaign(ctx, id)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, found.Valid)

	count, err = c.repo.CountTargetsByProductCategory(ctx, 11)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(0), count)
}
