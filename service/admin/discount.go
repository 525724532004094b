package admin

import (
	"strings"

	"github.com/QuangTung97/promo-pricing/model"
	"github.com/QuangTung97/promo-pricing/service/pricing"
)

// ParseDiscountType accepts the names used by clients, "percent" is kept for older clients
func ParseDiscountType(s string) (model.DiscountType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "percentage", "percent":
		return model.DiscountTypePercentage, nil
	case "fixed":
		return model.DiscountTypeFixed, nil
	case "userpoint":
		return 0, ErrUnsupportedDiscountType
	default:
		return 0, pricing.ErrInvalidDiscountType
	}
}
