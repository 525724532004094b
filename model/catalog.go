package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product ...
type Product struct {
	ID         int64           `db:"id"`
	Name       string          `db:"name"`
	CategoryID int64           `db:"category_id"`
	BasePrice  decimal.Decimal `db:"base_price"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ProductCategory ...
type ProductCategory struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CampaignCategory is an organizational tag, it does not affect eligibility
type CampaignCategory struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NullInt64 ...
type NullInt64 struct {
	Valid bool
	Num   int64
}

// NewNullInt64 ...
func NewNullInt64(n int64) NullInt64 {
	return NullInt64{Valid: true, Num: n}
}
