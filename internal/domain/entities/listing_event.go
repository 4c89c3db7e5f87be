package entities

import "time"

const ListingSubmittedEventType = "listing.submitted"

// ListingSubmittedEvent is published after the listings API accepted a
// submission.
type ListingSubmittedEvent struct {
	EventType   string        `json:"eventType"`
	ListingID   string        `json:"listingId"`
	ProviderID  string        `json:"providerId"`
	SessionID   string        `json:"sessionId"`
	Type        ListingType   `json:"type"`
	Status      ListingStatus `json:"status"`
	Editing     bool          `json:"editing"`
	SubmittedAt time.Time     `json:"submittedAt"`
}

func NewListingSubmittedEvent(sessionID string, l Listing, editing bool, at time.Time) ListingSubmittedEvent {
	return ListingSubmittedEvent{
		EventType:   ListingSubmittedEventType,
		ListingID:   l.ID,
		ProviderID:  l.ProviderID,
		SessionID:   sessionID,
		Type:        l.Type,
		Status:      l.Status,
		Editing:     editing,
		SubmittedAt: at.UTC(),
	}
}
