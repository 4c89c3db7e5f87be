package interfaces

import (
	"context"
	"vitrine/internal/domain/entities"
)

type IListingEventPublisher interface {
	PublishSubmitted(ctx context.Context, evt entities.ListingSubmittedEvent) error
}
