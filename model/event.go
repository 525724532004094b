package model

// CampaignEvent describes one mutation of the campaign store
type CampaignEvent struct {
	Type     CampaignEventType
	Version  uint64
	Campaign Campaign
}

// CampaignEventType ...
type CampaignEventType int

const (
	// CampaignEventTypeCreated ...
	CampaignEventTypeCreated CampaignEventType = 1

	// CampaignEventTypeActivated ...
	CampaignEventTypeActivated CampaignEventType = 2

	// CampaignEventTypeDeactivated ...
	CampaignEventTypeDeactivated CampaignEventType = 3

	// CampaignEventTypeDeleted ...
	CampaignEventTypeDeleted CampaignEventType = 4

	// CampaignEventTypeReplaced when the whole store is reloaded
	CampaignEventTypeReplaced CampaignEventType = 5
)

// String ...
func (t CampaignEventType) String() string {
	switch t {
	case CampaignEventTypeCreated:
		return "created"
	case CampaignEventTypeActivated:
		return "activated"
	case CampaignEventTypeDeactivated:
		return "deactivated"
	case CampaignEventTypeDeleted:
		return "deleted"
	case CampaignEventTypeReplaced:
		return "replaced"
	default:
		return "unknown"
	}
}
