package wizard

import (
	"errors"
	"time"

	"vitrine/internal/domain/entities"
)

// ErrSessionConflict means the session changed since it was loaded; the
// caller should reload and try again.
var ErrSessionConflict = errors.New("wizard session changed concurrently")

// Session is one mounted wizard: the draft it owns, where the user is, and
// whether a submission is in flight.
//
// Storage model (DynamoDB):
//   - PK: id
//   - draft and steps stored as JSON documents
//   - version: bumped on every save, a save carrying an older version is
//     rejected with ErrSessionConflict
//
// A session is never shared between providers; it is deleted after a
// successful submission or when the wizard is discarded.
type Session struct {
	ID         string         `json:"id"`
	ProviderID string         `json:"providerId"`
	ListingID  string         `json:"listingId,omitempty"`
	Steps      StepController `json:"steps"`
	Draft      entities.Draft `json:"draft"`
	Loading    bool           `json:"loading"`
	LastError  string         `json:"lastError,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	Version    int64          `json:"version"`
}

func (s Session) IsEditing() bool {
	return s.Steps.Mode == ModeEdit
}

// CurrentView renders the step the user is on.
func (s Session) CurrentView() StepView {
	return Render(s.Steps.Current, s.Draft)
}
