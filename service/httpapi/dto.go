package httpapi

import (
	"time"

	"github.com/QuangTung97/promo-pricing/model"
	"github.com/QuangTung97/promo-pricing/service/admin"
	"github.com/QuangTung97/promo-pricing/service/pricing"
	"github.com/shopspring/decimal"
)

type productCategoryRequest struct {
	Name string `json:"name"`
}

type campaignCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type productRequest struct {
	Name       string          `json:"name"`
	CategoryID int64           `json:"category_id"`
	BasePrice  decimal.Decimal `json:"base_price"`
}

func (r productRequest) toInput() admin.ProductInput {
	return admin.ProductInput{
		Name:       r.Name,
		CategoryID: r.CategoryID,
		BasePrice:  r.BasePrice,
	}
}

type campaignRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`

	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`

	// IsActive defaults to true when omitted
	IsActive *bool `json:"is_active"`

	CampaignCategoryID int64   `json:"campaign_category_id"`
	TargetCategoryIDs  []int64 `json:"target_category_ids"`
}

func (r campaignRequest) toInput() admin.CampaignInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return admin.CampaignInput{
		Name:          r.Name,
		Description:   r.Description,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,

		StartAt:  r.StartAt,
		EndAt:    r.EndAt,
		IsActive: active,

		CampaignCategoryID: r.CampaignCategoryID,
		TargetCategoryIDs:  r.TargetCategoryIDs,
	}
}

type productCategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type campaignCategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type productResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CategoryID int64  `json:"category_id"`
	BasePrice  string `json:"base_price"`
}

type campaignResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	DiscountType  string `json:"discount_type"`
	DiscountValue string `json:"discount_value"`

	StartAt  string `json:"start_at"`
	EndAt    string `json:"end_at"`
	IsActive bool   `json:"is_active"`
	State    string `json:"state"`

	CampaignCategoryID int64   `json:"campaign_category_id"`
	TargetCategoryIDs  []int64 `json:"target_category_ids"`
}

type priceResponse struct {
	ProductID         int64  `json:"product_id"`
	BasePrice         string `json:"base_price"`
	FinalPrice        string `json:"final_price"`
	AppliedCampaignID *int64 `json:"applied_campaign_id"`
	EvaluatedAt       string `json:"evaluated_at"`
}

type explanationResponse struct {
	CampaignID       int64  `json:"campaign_id"`
	DiscountType     string `json:"discount_type"`
	DiscountValue    string `json:"discount_value"`
	ProjectedSavings string `json:"projected_savings"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func (h *Handler) formatMoney(d decimal.Decimal) string {
	return d.StringFixed(h.precision)
}

func toProductCategoryResponse(c model.ProductCategory) productCategoryResponse {
	return productCategoryResponse{ID: c.ID, Name: c.Name}
}

func toCampaignCategoryResponse(c model.CampaignCategory) campaignCategoryResponse {
	return campaignCategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}

func (h *Handler) toProductResponse(p model.Product) productResponse {
	return productResponse{
		ID:         p.ID,
		Name:       p.Name,
		CategoryID: p.CategoryID,
		BasePrice:  h.formatMoney(p.BasePrice),
	}
}

func (h *Handler) toCampaignResponse(c model.Campaign, now time.Time) campaignResponse {
	targets := c.TargetCategoryIDs
	if targets == nil {
		targets = []int64{}
	}
	return campaignResponse{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		DiscountType:  c.DiscountType.String(),
		DiscountValue: c.DiscountValue.String(),

		StartAt:  formatTime(c.StartAt),
		EndAt:    formatTime(c.EndAt),
		IsActive: c.IsActive,
		State:    c.State(now).String(),

		CampaignCategoryID: c.CampaignCategoryID,
		TargetCategoryIDs:  targets,
	}
}

func (h *Handler) toPriceResponse(p pricing.EffectivePrice) priceResponse {
	var applied *int64
	if p.AppliedCampaignID.Valid {
		id := p.AppliedCampaignID.Num
		applied = &id
	}
	return priceResponse{
		ProductID:         p.ProductID,
		BasePrice:         h.formatMoney(p.BasePrice),
		FinalPrice:        h.formatMoney(p.FinalPrice),
		AppliedCampaignID: applied,
		EvaluatedAt:       formatTime(p.EvaluatedAt),
	}
}

func (h *Handler) toExplanationResponse(e pricing.Explanation) explanationResponse {
	return explanationResponse{
		CampaignID:       e.CampaignID,
		DiscountType:     e.DiscountType.String(),
		DiscountValue:    e.DiscountValue.String(),
		ProjectedSavings: h.formatMoney(e.ProjectedSavings),
	}
}
