package admin

import (
	"context"
	"strings"
	"time"

	"github.com/QuangTung97/promo-pricing/model"
	"github.com/QuangTung97/promo-pricing/pkg/util"
	"github.com/QuangTung97/promo-pricing/repository"
	"github.com/QuangTung97/promo-pricing/service/pricing"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate otelwrap --out service_wrappers.go . IService
//go:generate moq -out service_mocks.go . IService

// IService is the administration of catalog and campaigns.
// Every mutation is persisted first, then published to the in-memory catalog or store.
type IService interface {
	ListProductCategories(ctx context.Context) ([]model.ProductCategory, error)
	CreateProductCategory(ctx context.Context, name string) (model.ProductCategory, error)
	DeleteProductCategory(ctx context.Context, id int64) error

	ListCampaignCategories(ctx context.Context) ([]model.CampaignCategory, error)
	CreateCampaignCategory(ctx context.Context, input CampaignCategoryInput) (model.CampaignCategory, error)
	DeleteCampaignCategory(ctx context.Context, id int64) error

	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, input ProductInput) (model.Product, error)

	ListCampaigns(ctx context.Context) ([]model.Campaign, error)
	CreateCampaign(ctx context.Context, input CampaignInput) (model.Campaign, error)
	ActivateCampaign(ctx context.Context, id int64) (model.Campaign, error)
	DeactivateCampaign(ctx context.Context, id int64) (model.Campaign, error)
	DeleteCampaign(ctx context.Context, id int64) error
}

// CampaignCategoryInput ...
type CampaignCategoryInput struct {
	Name        string
	Description string
}

// ProductInput ...
type ProductInput struct {
	Name       string
	CategoryID int64
	BasePrice  decimal.Decimal
}

// CampaignInput ...
type CampaignInput struct {
	Name          string
	Description   string
	DiscountType  string
	DiscountValue decimal.Decimal

	StartAt  time.Time
	EndAt    time.Time
	IsActive bool

	CampaignCategoryID int64
	TargetCategoryIDs  []int64
}

// Service ...
type Service struct {
	provider     repository.Provider
	campaignRepo repository.Campaign
	categoryRepo repository.Category
	productRepo  repository.Product

	catalog *pricing.Catalog
	store   *pricing.Store
	clock   pricing.Clock
	logger  *zap.Logger
}

var _ IService = &Service{}

// NewService ...
func NewService(
	provider repository.Provider,
	campaignRepo repository.Campaign,
	categoryRepo repository.Category,
	productRepo repository.Product,
	catalog *pricing.Catalog,
	store *pricing.Store,
	clock pricing.Clock,
	logger *zap.Logger,
) *Service {
	return &Service{
		provider:     provider,
		campaignRepo: campaignRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,

		catalog: catalog,
		store:   store,
		clock:   clock,
		logger:  logger,
	}
}

// ListProductCategories ...
func (s *Service) ListProductCategories(_ context.Context) ([]model.ProductCategory, error) {
	return s.catalog.ListCategories(), nil
}

// CreateProductCategory ...
func (s *Service) CreateProductCategory(ctx context.Context, name string) (model.ProductCategory, error) {
	name = util.NormalizeName(name)
	if name == "" {
		return model.ProductCategory{}, ErrEmptyName
	}

	now := s.clock.Now()
	category := model.ProductCategory{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		existed, err := s.categoryRepo.FindProductCategoriesByName(ctx, name)
		if err != nil {
			return err
		}
		if len(existed) > 0 {
			return ErrDuplicateName
		}

		id, err := s.categoryRepo.InsertProductCategory(ctx, category)
		if err != nil {
			return err
		}
		category.ID = id
		return nil
	})
	if err != nil {
		return model.ProductCategory{}, err
	}

	s.catalog.UpsertCategory(category)
	s.logger.Info("product category created",
		zap.Int64("categoryID", category.ID), zap.String("name", name))
	return category, nil
}

// DeleteProductCategory ...
func (s *Service) DeleteProductCategory(ctx context.Context, id int64) error {
	if _, err := s.catalog.GetCategory(id); err != nil {
		return err
	}

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		count, err := s.productRepo.CountProductsByCategory(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrCategoryInUse
		}

		count, err = s.campaignRepo.CountTargetsByProductCategory(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrCategoryInUse
		}

		return s.categoryRepo.DeleteProductCategory(ctx, id)
	})
	if err != nil {
		return err
	}

	if err := s.catalog.DeleteCategory(id); err != nil && err != pricing.ErrCategoryNotFound {
		return err
	}
	s.logger.Info("product category deleted", zap.Int64("categoryID", id))
	return nil
}

// ListCampaignCategories ...
func (s *Service) ListCampaignCategories(ctx context.Context) ([]model.CampaignCategory, error) {
	categories, err := s.categoryRepo.ListCampaignCategories(s.provider.Readonly(ctx))
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []model.CampaignCategory{}
	}
	return categories, nil
}

// CreateCampaignCategory ...
func (s *Service) CreateCampaignCategory(
	ctx context.Context, input CampaignCategoryInput,
) (model.CampaignCategory, error) {
	name := util.NormalizeName(input.Name)
	if name == "" {
		return model.CampaignCategory{}, ErrEmptyName
	}

	now := s.clock.Now()
	category := model.CampaignCategory{
		Name:        name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		existed, err := s.categoryRepo.FindCampaignCategoriesByName(ctx, name)
		if err != nil {
			return err
		}
		if len(existed) > 0 {
			return ErrDuplicateName
		}

		id, err := s.categoryRepo.InsertCampaignCategory(ctx, category)
		if err != nil {
			return err
		}
		category.ID = id
		return nil
	})
	if err != nil {
		return model.CampaignCategory{}, err
	}

	s.logger.Info("campaign category created",
		zap.Int64("categoryID", category.ID), zap.String("name", name))
	return category, nil
}

// DeleteCampaignCategory ...
func (s *Service) DeleteCampaignCategory(ctx context.Context, id int64) error {
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		existed, err := s.categoryRepo.FindCampaignCategory(ctx, id)
		if err != nil {
			return err
		}
		if len(existed) == 0 {
			return ErrCampaignCategoryNotFound
		}

		count, err := s.campaignRepo.CountCampaignsByCategory(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrCategoryInUse
		}

		return s.categoryRepo.DeleteCampaignCategory(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("campaign category deleted", zap.Int64("categoryID", id))
	return nil
}

// ListProducts ...
func (s *Service) ListProducts(_ context.Context) ([]model.Product, error) {
	return s.catalog.ListProducts(), nil
}

// CreateProduct ...
func (s *Service) CreateProduct(ctx context.Context, input ProductInput) (model.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Product{}, ErrEmptyName
	}
	if input.BasePrice.IsNegative() {
		return model.Product{}, pricing.ErrNegativePrice
	}
	if _, err := s.catalog.GetCategory(input.CategoryID); err != nil {
		return model.Product{}, err
	}

	now := s.clock.Now()
	product := model.Product{
		Name:       name,
		CategoryID: input.CategoryID,
		BasePrice:  input.BasePrice,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		id, err := s.productRepo.InsertProduct(ctx, product)
		if err != nil {
			return err
		}
		product.ID = id
		return nil
	})
	if err != nil {
		return model.Product{}, err
	}

	if err := s.catalog.UpsertProduct(product); err != nil {
		return model.Product{}, err
	}
	s.logger.Info("product created",
		zap.Int64("productID", product.ID), zap.Int64("categoryID", product.CategoryID))
	return product, nil
}
