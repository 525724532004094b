package repository

import (
	"context"

	"github.com/QuangTung97/promo-pricing/model"
)

//go:generate moq -out product_mocks.go . Product

// Product ...
type Product interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	InsertProduct(ctx context.Context, product model.Product) (int64, error)
	CountProductsByCategory(ctx context.Context, categoryID int64) (int64, error)
}

type productImpl struct {
}

// NewProduct ...
func NewProduct() Product {
	return &productImpl{}
}

// ListProducts ...
func (p *productImpl) ListProducts(ctx context.Context) ([]model.Product, error) {
	query := `
SELECT id, name, category_id, base_price, created_at, updated_at
FROM product ORDER BY id
`
	var result []model.Product
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}

// InsertProduct ...
func (p *productImpl) InsertProduct(ctx context.Context, product model.Product) (int64, error) {
	query := `
INSERT INTO product (name, category_id, base_price)
VALUES (:name, :category_id, :base_price)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, product)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// CountProductsByCategory ...
func (p *productImpl) CountProductsByCategory(ctx context.Context, categoryID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM product WHERE category_id = ?`
	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count, query, categoryID)
	return count, err
}
