package admin

import "errors"

// ErrDuplicateName ...
var ErrDuplicateName = errors.New("name already existed")

// ErrEmptyName ...
var ErrEmptyName = errors.New("name must not be empty")

// ErrCategoryInUse is returned when deleting a category still referenced by products or campaigns
var ErrCategoryInUse = errors.New("category is in use")

// ErrCampaignCategoryNotFound ...
var ErrCampaignCategoryNotFound = errors.New("campaign category not found")

// ErrUnsupportedDiscountType for discount types that can not be priced, e.g. userPoint
var ErrUnsupportedDiscountType = errors.New("unsupported discount type")
