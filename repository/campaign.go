package repository

import (
	"context"

	"github.com/QuangTung97/promo-pricing/model"
)

//go:generate moq -out campaign_mocks.go . Campaign

// Campaign ...
type Campaign interface {
	ListCampaigns(ctx context.Context) ([]model.Campaign, error)
	FindCampaign(ctx context.Context, campaignID int64) (model.NullCampaign, error)
	LockCampaign(ctx context.Context, campaignID int64) error

	InsertCampaign(ctx context.Context, campaign model.Campaign) (int64, error)
	InsertCampaignTargets(ctx context.Context, campaignID int64, categoryIDs []int64) error
	UpdateCampaignActive(ctx context.Context, campaignID int64, active bool) error
	DeleteCampaign(ctx context.Context, campaignID int64) error

	CountCampaignsByCategory(ctx context.Context, campaignCategoryID int64) (int64, error)
	CountTargetsByProductCategory(ctx context.Context, productCategoryID int64) (int64, error)
}

type campaignImpl struct {
}

// NewCampaign ...
func NewCampaign() Campaign {
	return &campaignImpl{}
}

const selectCampaignColumns = `
SELECT id, name, description, discount_type, discount_value,
	start_at, end_at, is_active, campaign_category_id,
	created_at, updated_at
FROM campaign
`

func attachTargets(campaigns []model.Campaign, targets []model.CampaignTargetCategory) {
	pos := make(map[int64]int, len(campaigns))
	for i, c := range campaigns {
		pos[c.ID] = i
	}
	for _, t := range targets {
		i, ok := pos[t.CampaignID]
		if !ok {
			continue
		}
		campaigns[i].TargetCategoryIDs = append(campaigns[i].TargetCategoryIDs, t.ProductCategoryID)
	}
}

// ListCampaigns returns every campaign with its target categories
func (c *campaignImpl) ListCampaigns(ctx context.Context) ([]model.Campaign, error) {
	db := GetReadonly(ctx)

	var campaigns []model.Campaign
	err := db.SelectContext(ctx, &campaigns, selectCampaignColumns+`ORDER BY id`)
	if err != nil {
		return nil, err
	}

	query := `
SELECT campaign_id, product_category_id FROM campaign_target_category
ORDER BY campaign_id, product_category_id
`
	var targets []model.CampaignTargetCategory
	err = db.SelectContext(ctx, &targets, query)
	if err != nil {
		return nil, err
	}

	attachTargets(campaigns, targets)
	return campaigns, nil
}

// FindCampaign ...
func (c *campaignImpl) FindCampaign(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
	db := GetReadonly(ctx)

	var campaigns []model.Campaign
	err := db.SelectContext(ctx, &campaigns, selectCampaignColumns+`WHERE id = ?`, campaignID)
	if err != nil {
		return model.NullCampaign{}, err
	}
	if len(campaigns) == 0 {
		return model.NullCampaign{}, nil
	}

	query := `
SELECT campaign_id, product_category_id FROM campaign_target_category
WHERE campaign_id = ? ORDER BY product_category_id
`
	var targets []model.CampaignTargetCategory
	err = db.SelectContext(ctx, &targets, query, campaignID)
	if err != nil {
		return model.NullCampaign{}, err
	}

	attachTargets(campaigns, targets)
	return model.NullCampaign{
		Valid:    true,
		Campaign: campaigns[0],
	}, nil
}

// LockCampaign ...
func (c *campaignImpl) LockCampaign(ctx context.Context, campaignID int64) error {
	query := `SELECT id FROM campaign WHERE id = ? FOR UPDATE`
	var id int64
	return GetTx(ctx).GetContext(ctx, &id, query, campaignID)
}

// InsertCampaign returns the auto increment id
func (c *campaignImpl) InsertCampaign(ctx context.Context, campaign model.Campaign) (int64, error) {
	query := `
INSERT INTO campaign (
	name, description, discount_type, discount_value,
	start_at, end_at, is_active, campaign_category_id
) VALUES (
	:name, :description, :discount_type, :discount_value,
	:start_at, :end_at, :is_active, :campaign_category_id
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// InsertCampaignTargets ...
func (c *campaignImpl) InsertCampaignTargets(ctx context.Context, campaignID int64, categoryIDs []int64) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	targets := make([]model.CampaignTargetCategory, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		targets = append(targets, model.CampaignTargetCategory{
			CampaignID:        campaignID,
			ProductCategoryID: id,
		})
	}

	query := `
INSERT INTO campaign_target_category (campaign_id, product_category_id)
VALUES (:campaign_id, :product_category_id)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, targets)
	return err
}

// UpdateCampaignActive ...
func (c *campaignImpl) UpdateCampaignActive(ctx context.Context, campaignID int64, active bool) error {
	query := `UPDATE campaign SET is_active = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, active, campaignID)
	return err
}

// DeleteCampaign deletes the campaign together with its targets
func (c *campaignImpl) DeleteCampaign(ctx context.Context, campaignID int64) error {
	tx := GetTx(ctx)

	_, err := tx.ExecContext(ctx, `DELETE FROM campaign_target_category WHERE campaign_id = ?`, campaignID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM campaign WHERE id = ?`, campaignID)
	return err
}

// CountCampaignsByCategory ...
func (c *campaignImpl) CountCampaignsByCategory(ctx context.Context, campaignCategoryID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM campaign WHERE campaign_category_id = ?`
	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count, query, campaignCategoryID)
	return count, err
}

// CountTargetsByProductCategory ...
func (c *campaignImpl) CountTargetsByProductCategory(ctx context.Context, productCategoryID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM campaign_target_category WHERE product_category_id = ?`
	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count, query, productCategoryID)
	return count, err
}
