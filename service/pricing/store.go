package pricing

import (
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/QuangTung97/promo-pricing/model"
)

const maxStaleIndexRetries = 3

type storeSnapshot struct {
	version   uint64
	campaigns map[int64]model.Campaign
	index     *TargetIndex
}

func (s *storeSnapshot) validate() error {
	if s.index == nil || s.index.version != s.version {
		return errStaleIndex
	}
	return nil
}

func (s *storeSnapshot) list() []model.Campaign {
	result := make([]model.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Store holds campaigns as a versioned copy-on-write snapshot together with
// the TargetIndex built for exactly that version.
// Mutations are serialized, readers never block.
type Store struct {
	mu      sync.Mutex
	current atomic.Value // *storeSnapshot

	subMut      sync.Mutex
	subscribers []chan model.CampaignEvent
}

// NewStore ...
func NewStore() *Store {
	s := &Store{}
	s.current.Store(&storeSnapshot{
		campaigns: map[int64]model.Campaign{},
		index:     BuildTargetIndex(0, nil),
	})
	return s
}

func (s *Store) snapshot() *storeSnapshot {
	for i := 0; i < maxStaleIndexRetries; i++ {
		snap := s.current.Load().(*storeSnapshot)
		if err := snap.validate(); err == nil {
			return snap
		}
		runtime.Gosched()
	}

	snap := s.current.Load().(*storeSnapshot)
	if err := snap.validate(); err == nil {
		return snap
	}
	return &storeSnapshot{
		version:   snap.version,
		campaigns: snap.campaigns,
		index:     BuildTargetIndex(snap.version, snap.list()),
	}
}

// Version ...
func (s *Store) Version() uint64 {
	return s.snapshot().version
}

// Get ...
func (s *Store) Get(id int64) (model.Campaign, error) {
	c, ok := s.snapshot().campaigns[id]
	if !ok {
		return model.Campaign{}, ErrCampaignNotFound
	}
	return c.Clone(), nil
}

// List returns campaigns ordered by id
func (s *Store) List() []model.Campaign {
	campaigns := s.snapshot().list()
	for i := range campaigns {
		campaigns[i] = campaigns[i].Clone()
	}
	return campaigns
}

// Subscribe returns a channel receiving every event after it has been published.
// Events are dropped for a subscriber whose buffer is full.
func (s *Store) Subscribe(buffer int) <-chan model.CampaignEvent {
	ch := make(chan model.CampaignEvent, buffer)

	s.subMut.Lock()
	s.subscribers = append(s.subscribers, ch)
	s.subMut.Unlock()

	return ch
}

func (s *Store) publish(event model.CampaignEvent) {
	s.subMut.Lock()
	defer s.subMut.Unlock()

	for _, ch := range s.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// ValidateCampaign checks the fields required at creation
func ValidateCampaign(c model.Campaign) error {
	if !c.StartAt.Before(c.EndAt) {
		return ErrInvalidRange
	}
	if c.DiscountType != model.DiscountTypePercentage && c.DiscountType != model.DiscountTypeFixed {
		return ErrInvalidDiscountType
	}
	return nil
}

func normalizeCampaign(c model.Campaign) model.Campaign {
	c = c.Clone()
	c.StartAt = c.StartAt.UTC()
	c.EndAt = c.EndAt.UTC()

	ids := sortUnique(c.TargetCategoryIDs)
	if len(ids) == 0 {
		ids = nil
	}
	c.TargetCategoryIDs = ids
	return c
}

func copyCampaigns(prev map[int64]model.Campaign) map[int64]model.Campaign {
	result := make(map[int64]model.Campaign, len(prev)+1)
	for k, v := range prev {
		result[k] = v
	}
	return result
}

// commitLocked must be called with s.mu held
func (s *Store) commitLocked(
	prev *storeSnapshot, campaigns map[int64]model.Campaign, event model.CampaignEvent,
) model.CampaignEvent {
	event.Version = prev.version + 1
	s.current.Store(&storeSnapshot{
		version:   event.Version,
		campaigns: campaigns,
		index:     prev.index.Apply(event),
	})
	return event
}

// Insert adds a campaign, an id of zero is assigned the next free id
func (s *Store) Insert(c model.Campaign) (model.Campaign, error) {
	if err := ValidateCampaign(c); err != nil {
		return model.Campaign{}, err
	}
	c = normalizeCampaign(c)

	s.mu.Lock()
	prev := s.snapshot()

	if c.ID == 0 {
		c.ID = nextCampaignID(prev.campaigns)
	}
	if _, existed := prev.campaigns[c.ID]; existed {
		s.mu.Unlock()
		return model.Campaign{}, ErrCampaignExisted
	}

	campaigns := copyCampaigns(prev.campaigns)
	campaigns[c.ID] = c

	event := s.commitLocked(prev, campaigns, model.CampaignEvent{
		Type:     model.CampaignEventTypeCreated,
		Campaign: c,
	})
	s.mu.Unlock()

	s.publish(event)
	return c.Clone(), nil
}

func nextCampaignID(campaigns map[int64]model.Campaign) int64 {
	var maxID int64
	for id := range campaigns {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// SetActive only changes the is_active flag, the time window is never touched
func (s *Store) SetActive(id int64, active bool) (model.Campaign, error) {
	s.mu.Lock()
	prev := s.snapshot()

	c, ok := prev.campaigns[id]
	if !ok {
		s.mu.Unlock()
		return model.Campaign{}, ErrCampaignNotFound
	}
	c.IsActive = active

	campaigns := copyCampaigns(prev.campaigns)
	campaigns[id] = c

	eventType := model.CampaignEventTypeDeactivated
	if active {
		eventType = model.CampaignEventTypeActivated
	}
	event := s.commitLocked(prev, campaigns, model.CampaignEvent{
		Type:     eventType,
		Campaign: c,
	})
	s.mu.Unlock()

	s.publish(event)
	return c.Clone(), nil
}

// Delete ...
func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	prev := s.snapshot()

	c, ok := prev.campaigns[id]
	if !ok {
		s.mu.Unlock()
		return ErrCampaignNotFound
	}

	campaigns := copyCampaigns(prev.campaigns)
	delete(campaigns, id)

	event := s.commitLocked(prev, campaigns, model.CampaignEvent{
		Type:     model.CampaignEventTypeDeleted,
		Campaign: c,
	})
	s.mu.Unlock()

	s.publish(event)
	return nil
}

// Replace swaps every campaign and rebuilds the index from scratch
func (s *Store) Replace(campaigns []model.Campaign) error {
	s.mu.Lock()
	prev := s.snapshot()
	event, err := s.replaceLocked(prev, campaigns)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.publish(event)
	return nil
}

// ReplaceIfVersion replaces only if no mutation happened since version was observed
func (s *Store) ReplaceIfVersion(version uint64, campaigns []model.Campaign) (bool, error) {
	s.mu.Lock()
	prev := s.snapshot()
	if prev.version != version {
		s.mu.Unlock()
		return false, nil
	}
	event, err := s.replaceLocked(prev, campaigns)
	s.mu.Unlock()

	if err != nil {
		return false, err
	}
	s.publish(event)
	return true, nil
}

func (s *Store) replaceLocked(prev *storeSnapshot, campaigns []model.Campaign) (model.CampaignEvent, error) {
	next := make(map[int64]model.Campaign, len(campaigns))
	list := make([]model.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if err := ValidateCampaign(c); err != nil {
			return model.CampaignEvent{}, err
		}
		c = normalizeCampaign(c)
		if _, existed := next[c.ID]; existed {
			return model.CampaignEvent{}, ErrCampaignExisted
		}
		next[c.ID] = c
		list = append(list, c)
	}

	version := prev.version + 1
	s.current.Store(&storeSnapshot{
		version:   version,
		campaigns: next,
		index:     BuildTargetIndex(version, list),
	})
	return model.CampaignEvent{
		Type:    model.CampaignEventTypeReplaced,
		Version: version,
	}, nil
}
