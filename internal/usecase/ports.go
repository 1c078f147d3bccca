package usecase

import (
	"context"

	"github.com/totegamma/linksera/internal/domain"
)

// ListingRepository defines storage operations for listings.
type ListingRepository interface {
	Append(ctx context.Context, listing domain.Listing) (domain.Listing, error)
	UpdateByID(ctx context.Context, id string, listing domain.Listing) (domain.Listing, error)
	GetAll(ctx context.Context) ([]domain.Listing, error)
	GetByID(ctx context.Context, id string) (domain.Listing, error)
}

// SignalPublisher broadcasts collection changes to open views.
type SignalPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
