package pricing

import "errors"

// ErrProductNotFound ...
var ErrProductNotFound = errors.New("product not found")

// ErrCampaignNotFound ...
var ErrCampaignNotFound = errors.New("campaign not found")

// ErrCategoryNotFound ...
var ErrCategoryNotFound = errors.New("product category not found")

// ErrInvalidRange when start_at is not before end_at
var ErrInvalidRange = errors.New("campaign start_at must be before end_at")

// ErrInvalidDiscountType ...
var ErrInvalidDiscountType = errors.New("invalid discount type")

// ErrCampaignExisted ...
var ErrCampaignExisted = errors.New("campaign already existed")

// ErrNegativePrice ...
var ErrNegativePrice = errors.New("base price must not be negative")

// errStaleIndex is never returned to callers, readers retry against a newer snapshot
var errStaleIndex = errors.New("target index is stale")
