package interfaces

import (
	"context"
	"vitrine/internal/domain/wizard"
)

// IWizardSessionRepository abstracts DynamoDB persistence for wizard sessions.
//
// GetByID returns a zero Session (empty ID) when nothing is stored under id.
// Save is conditional on the version the session was loaded with: it returns
// a zero Session when the item is gone and wizard.ErrSessionConflict when the
// stored version moved on.

type IWizardSessionRepository interface {
	Create(ctx context.Context, s wizard.Session) (wizard.Session, error)
	GetByID(ctx context.Context, id string) (wizard.Session, error)
	Save(ctx context.Context, s wizard.Session) (wizard.Session, error)
	Delete(ctx context.Context, id string) error
}
