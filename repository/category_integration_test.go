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

func TestCategory_ProductCategories(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("product_category", "product")

	provider := NewProvider(tc.DB)
	repo := NewCategory()
	productRepo := NewProduct()

	var booksID int64
	err := provider.Transact(newContext(), func(ctx context.Context) error {
		var err error
		booksID, err = repo.InsertProductCategory(ctx, model.ProductCategory{Name: "books"})
		if err != nil {
			return err
		}
		_, err = repo.InsertProductCategory(ctx, model.ProductCategory{Name: "shoes"})
		return err
	})
	assert.Equal(t, nil, err)

	ctx := provider.Readonly(newContext())

	categories, err := repo.ListProductCategories(ctx)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(categories))
	assert.Equal(t, "books", categories[0].Name)
	assert.Equal(t, "shoes", categories[1].Name)

	found, err := repo.FindProductCategoriesByName(ctx, "books")
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(found))
	assert.Equal(t, booksID, found[0].ID)

	found, err = repo.FindProductCategoriesByName(ctx, "toys")
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(found))

	err = provider.Transact(newContext(), func(ctx context.Context) error {
		_, err := productRepo.InsertProduct(ctx, model.Product{
			Name:       "go book",
			CategoryID: booksID,
			BasePrice:  newDecimal("100.00"),
		})
		return err
	})
	assert.Equal(t, nil, err)

	count, err := productRepo.CountProductsByCategory(ctx, booksID)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), count)

	products, err := productRepo.ListProducts(ctx)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(products))
	assert.Equal(t, "100.0000", products[0].BasePrice.StringFixed(4))

	err = provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.DeleteProductCategory(ctx, booksID)
	})
	assert.Equal(t, nil, err)

	categories, err = repo.ListProductCategories(ctx)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(categories))
}

func TestCategory_CampaignCategories(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("campaign_category")

	provider := NewProvider(tc.DB)
	repo := NewCategory()

	var id int64
	err := provider.Transact(newContext(), func(ctx context.Context) error {
		var err error
		id, err = repo.InsertCampaignCategory(ctx, model.CampaignCategory{
			Name:        "seasonal",
			Description: "seasonal campaigns",
		})
		return err
	})
	assert.Equal(t, nil, err)

	ctx := provider.Readonly(newContext())

	found, err := repo.FindCampaignCategory(ctx, id)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(found))
	assert.Equal(t, "seasonal campaigns", found[0].Description)

	found, err = repo.FindCampaignCategoriesByName(ctx, "seasonal")
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(found))

	err = provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.DeleteCampaignCategory(ctx, id)
	})
	assert.Equal(t, nil, err)

	categories, err := repo.ListCampaignCategories(ctx)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(categories))
}
