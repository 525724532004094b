package pricing

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/QuangTung97/promo-pricing/model"
)

// CatalogReader is the catalog collaborator used for pricing
type CatalogReader interface {
	GetProduct(id int64) (model.Product, error)
}

type catalogSnapshot struct {
	version    uint64
	products   map[int64]model.Product
	categories map[int64]model.ProductCategory
}

func (s *catalogSnapshot) getProduct(id int64) (model.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return model.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Catalog is a read-mostly index from product id to category and base price.
// Readers never lock, writers copy the maps and swap the snapshot.
type Catalog struct {
	mu      sync.Mutex
	current atomic.Value // *catalogSnapshot
}

var _ CatalogReader = &Catalog{}

// NewCatalog ...
func NewCatalog() *Catalog {
	c := &Catalog{}
	c.current.Store(&catalogSnapshot{
		products:   map[int64]model.Product{},
		categories: map[int64]model.ProductCategory{},
	})
	return c
}

func (c *Catalog) load() *catalogSnapshot {
	return c.current.Load().(*catalogSnapshot)
}

// Version ...
func (c *Catalog) Version() uint64 {
	return c.load().version
}

// GetProduct ...
func (c *Catalog) GetProduct(id int64) (model.Product, error) {
	return c.load().getProduct(id)
}

// GetCategory ...
func (c *Catalog) GetCategory(id int64) (model.ProductCategory, error) {
	cat, ok := c.load().categories[id]
	if !ok {
		return model.ProductCategory{}, ErrCategoryNotFound
	}
	return cat, nil
}

// ListProducts sorted by id
func (c *Catalog) ListProducts() []model.Product {
	snap := c.load()
	result := make([]model.Product, 0, len(snap.products))
	for _, p := range snap.products {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// ListCategories sorted by id
func (c *Catalog) ListCategories() []model.ProductCategory {
	snap := c.load()
	result := make([]model.ProductCategory, 0, len(snap.categories))
	for _, cat := range snap.categories {
		result = append(result, cat)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Replace swaps the whole catalog
func (c *Catalog) Replace(categories []model.ProductCategory, products []model.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.replaceLocked(c.load().version, categories, products)
}

// ReplaceIfVersion swaps the whole catalog only if nothing changed since version was observed
func (c *Catalog) ReplaceIfVersion(
	version uint64, categories []model.ProductCategory, products []model.Product,
) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.load().version != version {
		return false, nil
	}
	return true, c.replaceLocked(version, categories, products)
}

func (c *Catalog) replaceLocked(version uint64, categories []model.ProductCategory, products []model.Product) error {
	next := &catalogSnapshot{
		version:    version + 1,
		products:   make(map[int64]model.Product, len(products)),
		categories: make(map[int64]model.ProductCategory, len(categories)),
	}
	for _, cat := range categories {
		next.categories[cat.ID] = cat
	}
	for _, p := range products {
		if err := validateProduct(next, p); err != nil {
			return err
		}
		next.products[p.ID] = p
	}

	c.current.Store(next)
	return nil
}

func validateProduct(snap *catalogSnapshot, p model.Product) error {
	if _, ok := snap.categories[p.CategoryID]; !ok {
		return ErrCategoryNotFound
	}
	if p.BasePrice.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

func (c *Catalog) cloneLocked() *catalogSnapshot {
	prev := c.load()
	next := &catalogSnapshot{
		version:    prev.version + 1,
		products:   make(map[int64]model.Product, len(prev.products)+1),
		categories: make(map[int64]model.ProductCategory, len(prev.categories)+1),
	}
	for k, v := range prev.products {
		next.products[k] = v
	}
	for k, v := range prev.categories {
		next.categories[k] = v
	}
	return next
}

// UpsertCategory ...
func (c *Catalog) UpsertCategory(cat model.ProductCategory) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.cloneLocked()
	next.categories[cat.ID] = cat
	c.current.Store(next)
}

// DeleteCategory ...
func (c *Catalog) DeleteCategory(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.load().categories[id]; !ok {
		return ErrCategoryNotFound
	}

	next := c.cloneLocked()
	delete(next.categories, id)
	c.current.Store(next)
	return nil
}

// UpsertProduct ...
func (c *Catalog) UpsertProduct(p model.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := validateProduct(c.load(), p); err != nil {
		return err
	}

	next := c.cloneLocked()
	next.products[p.ID] = p
	c.current.Store(next)
	return nil
}
