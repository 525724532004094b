package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/QuangTung97/promo-pricing/pkg/otellib"
	"github.com/QuangTung97/promo-pricing/service/admin"
	"github.com/QuangTung97/promo-pricing/service/pricing"
)

// ErrInvalidID ...
var ErrInvalidID = errors.New("invalid id")

// ErrInvalidBody ...
var ErrInvalidBody = errors.New("invalid request body")

// ErrInvalidTime ...
var ErrInvalidTime = errors.New("invalid time, must be RFC3339")

type errorResponse struct {
	Error string `json:"error"`
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, pricing.ErrProductNotFound),
		errors.Is(err, pricing.ErrCampaignNotFound),
		errors.Is(err, pricing.ErrCategoryNotFound),
		errors.Is(err, admin.ErrCampaignCategoryNotFound):
		return http.StatusNotFound

	case errors.Is(err, pricing.ErrInvalidRange),
		errors.Is(err, pricing.ErrInvalidDiscountType),
		errors.Is(err, pricing.ErrNegativePrice),
		errors.Is(err, admin.ErrUnsupportedDiscountType),
		errors.Is(err, admin.ErrEmptyName),
		errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrInvalidBody),
		errors.Is(err, ErrInvalidTime):
		return http.StatusBadRequest

	case errors.Is(err, admin.ErrDuplicateName),
		errors.Is(err, admin.ErrCategoryInUse),
		errors.Is(err, pricing.ErrCampaignExisted):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError hides unexpected errors from clients and logs them instead
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		otellib.WrapError(ctx, err)
		writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
