package memtable

import (
	"encoding/binary"
	"errors"
	"time"

	"github.com/QuangTung97/promo-pricing/model"
	"github.com/QuangTung97/promo-pricing/service/pricing"
	"github.com/coocood/freecache"
	"github.com/shopspring/decimal"
)

// PriceCache stores effective prices in freecache, bounded by size in bytes
type PriceCache struct {
	cache *freecache.Cache
}

var _ pricing.PriceCache = &PriceCache{}

// New creates freecache with size
func New(size int) *PriceCache {
	return &PriceCache{
		cache: freecache.NewCache(size),
	}
}

const keySize = 8 + 8 + 8

func marshalKey(key pricing.PriceCacheKey) []byte {
	var data [keySize]byte
	binary.LittleEndian.PutUint64(data[0:], key.StoreVersion)
	binary.LittleEndian.PutUint64(data[8:], key.CatalogVersion)
	binary.LittleEndian.PutUint64(data[16:], uint64(key.ProductID))
	return data[:]
}

// GetPrice ...
func (m *PriceCache) GetPrice(key pricing.PriceCacheKey) (pricing.CachedPrice, bool) {
	data, err := m.cache.Get(marshalKey(key))
	if err != nil {
		return pricing.CachedPrice{}, false
	}
	price, err := unmarshalPrice(data)
	if err != nil {
		return pricing.CachedPrice{}, false
	}
	return price, true
}

// SetPrice ...
func (m *PriceCache) SetPrice(key pricing.PriceCacheKey, price pricing.CachedPrice) {
	data, err := marshalPrice(price)
	if err != nil {
		return
	}
	_ = m.cache.Set(marshalKey(key), data, 0)
}

// EntryCount ...
func (m *PriceCache) EntryCount() int64 {
	return m.cache.EntryCount()
}

const (
	flagApplied    = 1 << 0
	flagValidFrom  = 1 << 1
	flagValidUntil = 1 << 2
)

const headerSize = 1 + 8 + 8 + 8

func marshalPrice(p pricing.CachedPrice) ([]byte, error) {
	priceData, err := p.FinalPrice.MarshalBinary()
	if err != nil {
		return nil, err
	}

	data := make([]byte, headerSize, headerSize+len(priceData))

	var flags byte
	if p.AppliedCampaignID.Valid {
		flags |= flagApplied
		binary.LittleEndian.PutUint64(data[1:], uint64(p.AppliedCampaignID.Num))
	}
	if !p.ValidFrom.IsZero() {
		flags |= flagValidFrom
		binary.LittleEndian.PutUint64(data[9:], uint64(p.ValidFrom.UnixNano()))
	}
	if !p.ValidUntil.IsZero() {
		flags |= flagValidUntil
		binary.LittleEndian.PutUint64(data[17:], uint64(p.ValidUntil.UnixNano()))
	}
	data[0] = flags

	return append(data, priceData...), nil
}

var errInvalidEntry = errors.New("memtable: invalid price entry")

func unmarshalPrice(data []byte) (pricing.CachedPrice, error) {
	if len(data) <= headerSize {
		return pricing.CachedPrice{}, errInvalidEntry
	}

	var result pricing.CachedPrice
	flags := data[0]
	if flags&flagApplied != 0 {
		result.AppliedCampaignID = model.NewNullInt64(int64(binary.LittleEndian.Uint64(data[1:])))
	}
	if flags&flagValidFrom != 0 {
		result.ValidFrom = time.Unix(0, int64(binary.LittleEndian.Uint64(data[9:]))).UTC()
	}
	if flags&flagValidUntil != 0 {
		result.ValidUntil = time.Unix(0, int64(binary.LittleEndian.Uint64(data[17:]))).UTC()
	}

	var price decimal.Decimal
	if err := price.UnmarshalBinary(data[headerSize:]); err != nil {
		return pricing.CachedPrice{}, err
	}
	result.FinalPrice = price
	return result, nil
}
