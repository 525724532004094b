package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign ...
type Campaign struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`

	DiscountType  DiscountType    `db:"discount_type"`
	DiscountValue decimal.Decimal `db:"discount_value"`

	StartAt  time.Time `db:"start_at"`
	EndAt    time.Time `db:"end_at"`
	IsActive bool      `db:"is_active"`

	CampaignCategoryID int64 `db:"campaign_category_id"`

	// TargetCategoryIDs empty means the campaign applies to every product category
	TargetCategoryIDs []int64 `db:"-"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// AppliesToAll ...
func (c Campaign) AppliesToAll() bool {
	return len(c.TargetCategoryIDs) == 0
}

// EligibleAt checks the activation flag and the half-open window [StartAt, EndAt)
func (c Campaign) EligibleAt(t time.Time) bool {
	if !c.IsActive {
		return false
	}
	if t.Before(c.StartAt) {
		return false
	}
	return t.Before(c.EndAt)
}

// ExpiredAt ...
func (c Campaign) ExpiredAt(t time.Time) bool {
	return !t.Before(c.EndAt)
}

// State returns the time state of the campaign, independent of IsActive
func (c Campaign) State(t time.Time) CampaignState {
	if t.Before(c.StartAt) {
		return CampaignStateScheduled
	}
	if t.Before(c.EndAt) {
		return CampaignStateRunning
	}
	return CampaignStateExpired
}

// Clone returns a copy not sharing the target slice
func (c Campaign) Clone() Campaign {
	if c.TargetCategoryIDs != nil {
		ids := make([]int64, len(c.TargetCategoryIDs))
		copy(ids, c.TargetCategoryIDs)
		c.TargetCategoryIDs = ids
	}
	return c
}

// NullCampaign ...
type NullCampaign struct {
	Valid    bool
	Campaign Campaign
}

// CampaignTargetCategory ...
type CampaignTargetCategory struct {
	CampaignID        int64 `db:"campaign_id"`
	ProductCategoryID int64 `db:"product_category_id"`
}

// DiscountType ...
type DiscountType int

const (
	// DiscountTypePercentage ...
	DiscountTypePercentage DiscountType = 1

	// DiscountTypeFixed ...
	DiscountTypeFixed DiscountType = 2
)

// String ...
func (t DiscountType) String() string {
	switch t {
	case DiscountTypePercentage:
		return "percentage"
	case DiscountTypeFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// CampaignState ...
type CampaignState int

const (
	// CampaignStateScheduled before start_at
	CampaignStateScheduled CampaignState = 1

	// CampaignStateRunning inside [start_at, end_at)
	CampaignStateRunning CampaignState = 2

	// CampaignStateExpired at or after end_at
	CampaignStateExpired CampaignState = 3
)

// String ...
func (s CampaignState) String() string {
	switch s {
	case CampaignStateScheduled:
		return "scheduled"
	case CampaignStateRunning:
		return "running"
	case CampaignStateExpired:
		return "expired"
	default:
		return "unknown"
	}
}
