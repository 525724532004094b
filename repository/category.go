package repository

import (
	"context"

	"github.com/QuangTung97/promo-pricing/model"
	"github.com/QuangTung97/promo-pricing/pkg/util"
)

//go:generate moq -out category_mocks.go . Category

// Category for both product categories and campaign categories.
// Names are looked up through the name_hash index.
type Category interface {
	ListProductCategories(ctx context.Context) ([]model.ProductCategory, error)
	FindProductCategoriesByName(ctx context.Context, name string) ([]model.ProductCategory, error)
	InsertProductCategory(ctx context.Context, category model.ProductCategory) (int64, error)
	DeleteProductCategory(ctx context.Context, categoryID int64) error

	ListCampaignCategories(ctx context.Context) ([]model.CampaignCategory, error)
	FindCampaignCategory(ctx context.Context, categoryID int64) ([]model.CampaignCategory, error)
	FindCampaignCategoriesByName(ctx context.Context, name string) ([]model.CampaignCategory, error)
	InsertCampaignCategory(ctx context.Context, category model.CampaignCategory) (int64, error)
	DeleteCampaignCategory(ctx context.Context, categoryID int64) error
}

type categoryImpl struct {
}

// NewCategory ...
func NewCategory() Category {
	return &categoryImpl{}
}

// ListProductCategories ...
func (c *categoryImpl) ListProductCategories(ctx context.Context) ([]model.ProductCategory, error) {
	query := `SELECT id, name, created_at, updated_at FROM product_category ORDER BY id`
	var result []model.ProductCategory
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}

// FindProductCategoriesByName ...
func (c *categoryImpl) FindProductCategoriesByName(ctx context.Context, name string) ([]model.ProductCategory, error) {
	query := `
SELECT id, name, created_at, updated_at FROM product_category
WHERE name_hash = ? AND name = ?
`
	var result []model.ProductCategory
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, util.HashFunc(name), name)
	return result, err
}

// InsertProductCategory ...
func (c *categoryImpl) InsertProductCategory(ctx context.Context, category model.ProductCategory) (int64, error) {
	query := `INSERT INTO product_category (name, name_hash) VALUES (?, ?)`
	result, err := GetTx(ctx).ExecContext(ctx, query, category.Name, util.HashFunc(category.Name))
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// DeleteProductCategory ...
func (c *categoryImpl) DeleteProductCategory(ctx context.Context, categoryID int64) error {
	query := `DELETE FROM product_category WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, categoryID)
	return err
}

// ListCampaignCategories ...
func (c *categoryImpl) ListCampaignCategories(ctx context.Context) ([]model.CampaignCategory, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM campaign_category ORDER BY id`
	var result []model.CampaignCategory
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}

// FindCampaignCategory ...
func (c *categoryImpl) FindCampaignCategory(ctx context.Context, categoryID int64) ([]model.CampaignCategory, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM campaign_category WHERE id = ?`
	var result []model.CampaignCategory
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, categoryID)
	return result, err
}

// FindCampaignCategoriesByName ...
func (c *categoryImpl) FindCampaignCategoriesByName(ctx context.Context, name string) ([]model.CampaignCategory, error) {
	query := `
SELECT id, name, description, created_at, updated_at FROM campaign_category
WHERE name_hash = ? AND name = ?
`
	var result []model.CampaignCategory
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, util.HashFunc(name), name)
	return result, err
}

// InsertCampaignCategory ...
func (c *categoryImpl) InsertCampaignCategory(ctx context.Context, category model.CampaignCategory) (int64, error) {
	query := `INSERT INTO campaign_category (name, name_hash, description) VALUES (?, ?, ?)`
	result, err := GetTx(ctx).ExecContext(ctx, query,
		category.Name, util.HashFunc(category.Name), category.Description)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// DeleteCampaignCategory ...
func (c *categoryImpl) DeleteCampaignCategory(ctx context.Context, categoryID int64) error {
	query := `DELETE FROM campaign_category WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, categoryID)
	return err
}
