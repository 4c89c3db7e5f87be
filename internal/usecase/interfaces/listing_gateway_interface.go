package interfaces

import (
	"context"
	"vitrine/internal/domain/entities"
)

// IListingGateway abstracts the listings API (GET/POST/PUT /listings).
//
// Non-2xx answers come back as errors whose Error() is the message the API
// sent, ready to be shown to the provider.
type IListingGateway interface {
	Get(ctx context.Context, id string) (entities.Listing, error)
	Create(ctx context.Context, l entities.Listing) (entities.Listing, error)
	Update(ctx context.Context, id string, l entities.Listing) (entities.Listing, error)
}
