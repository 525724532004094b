package pricing

import (
	"sort"

	"github.com/QuangTung97/promo-pricing/model"
)

// TargetIndex maps product category id to the ids of campaigns targeting it.
// Campaigns with an empty target set are kept in a separate apply-to-all bucket.
// A TargetIndex is immutable after construction.
type TargetIndex struct {
	version    uint64
	byCategory map[int64][]int64
	all        []int64
}

// BuildTargetIndex ...
func BuildTargetIndex(version uint64, campaigns []model.Campaign) *TargetIndex {
	idx := &TargetIndex{
		version:    version,
		byCategory: map[int64][]int64{},
	}
	for _, c := range campaigns {
		if c.AppliesToAll() {
			idx.all = append(idx.all, c.ID)
			continue
		}
		for _, categoryID := range c.TargetCategoryIDs {
			idx.byCategory[categoryID] = append(idx.byCategory[categoryID], c.ID)
		}
	}

	idx.all = sortUnique(idx.all)
	for categoryID, ids := range idx.byCategory {
		idx.byCategory[categoryID] = sortUnique(ids)
	}
	return idx
}

// Version of the campaign store this index was built for
func (idx *TargetIndex) Version() uint64 {
	return idx.version
}

// Lookup returns targeting campaigns plus all apply-to-all campaigns, ascending by id
func (idx *TargetIndex) Lookup(categoryID int64) []int64 {
	return mergeSorted(idx.byCategory[categoryID], idx.all)
}

// Apply returns a new index patched for the event, the receiver is left untouched
func (idx *TargetIndex) Apply(event model.CampaignEvent) *TargetIndex {
	next := &TargetIndex{
		version:    event.Version,
		byCategory: idx.byCategory,
		all:        idx.all,
	}

	c := event.Campaign
	switch event.Type {
	case model.CampaignEventTypeCreated:
		if c.AppliesToAll() {
			next.all = insertSorted(idx.all, c.ID)
			return next
		}
		next.byCategory = copyCategoryMap(idx.byCategory)
		for _, categoryID := range c.TargetCategoryIDs {
			next.byCategory[categoryID] = insertSorted(next.byCategory[categoryID], c.ID)
		}

	case model.CampaignEventTypeDeleted:
		if c.AppliesToAll() {
			next.all = removeSorted(idx.all, c.ID)
			return next
		}
		next.byCategory = copyCategoryMap(idx.byCategory)
		for _, categoryID := range c.TargetCategoryIDs {
			ids := removeSorted(next.byCategory[categoryID], c.ID)
			if len(ids) == 0 {
				delete(next.byCategory, categoryID)
				continue
			}
			next.byCategory[categoryID] = ids
		}

	default:
		// activation changes do not change targeting
	}
	return next
}

func copyCategoryMap(m map[int64][]int64) map[int64][]int64 {
	result := make(map[int64][]int64, len(m)+1)
	for k, v := range m {
		result[k] = v
	}
	return result
}

// NormalizeTargets returns the ids sorted without duplicates, nil when empty. ids is not modified.
func NormalizeTargets(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	result := make([]int64, len(ids))
	copy(result, ids)
	return sortUnique(result)
}

func sortUnique(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := ids[:1]
	for _, id := range ids[1:] {
		if id != result[len(result)-1] {
			result = append(result, id)
		}
	}
	return result
}

// insertSorted always allocates, the input may be shared with older snapshots
func insertSorted(ids []int64, id int64) []int64 {
	pos := sort.Search(len(ids), func(i int) bool { return ids[i] >= id })
	if pos < len(ids) && ids[pos] == id {
		return ids
	}

	result := make([]int64, 0, len(ids)+1)
	result = append(result, ids[:pos]...)
	result = append(result, id)
	result = append(result, ids[pos:]...)
	return result
}

func removeSorted(ids []int64, id int64) []int64 {
	pos := sort.Search(len(ids), func(i int) bool { return ids[i] >= id })
	if pos >= len(ids) || ids[pos] != id {
		return ids
	}

	result := make([]int64, 0, len(ids)-1)
	result = append(result, ids[:pos]...)
	result = append(result, ids[pos+1:]...)
	return result
}

func mergeSorted(a, b []int64) []int64 {
	if len(a)+len(b) == 0 {
		return nil
	}
	result := make([]int64, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			result = append(result, a[i])
			i++
		case a[i] > b[j]:
			result = append(result, b[j])
			j++
		default:
			result = append(result, a[i])
			i++
			j++
		}
	}
	result = append(result, a[i:]...)
	result = append(result, b[j:]...)
	return result
}
