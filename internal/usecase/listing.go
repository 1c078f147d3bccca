package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/linksera/internal/domain"
	"github.com/totegamma/linksera/internal/form"
)

var tracer = otel.Tracer("usecase")

type ListingUsecase struct {
	repo   ListingRepository
	signal SignalPublisher
}

func NewListingUsecase(repo ListingRepository, signal SignalPublisher) *ListingUsecase {
	return &ListingUsecase{repo: repo, signal: signal}
}

// Form returns the values the form opens with: defaults for a new listing,
// or the stored listing when id is set.
func (uc *ListingUsecase) Form(ctx context.Context, id string) (form.Values, error) {
	if id == "" {
		return form.Defaults(), nil
	}
	listing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return form.Values{}, err
	}
	return form.FromListing(listing), nil
}

func (uc *ListingUsecase) Get(ctx context.Context, id string) (domain.Listing, error) {
	return uc.repo.GetByID(ctx, id)
}

// Submit validates the values and appends a listing, or replaces the listing
// with the given id. Nothing is written when validation fails.
func (uc *ListingUsecase) Submit(ctx context.Context, id string, values form.Values) (domain.Listing, error) {
	ctx, span := tracer.Start(ctx, "Listing.Usecase.Submit")
	defer span.End()
	span.SetAttributes(attribute.String("id", id))

	var existing domain.Listing
	if id != "" {
		var err error
		existing, err = uc.repo.GetByID(ctx, id)
		if err != nil {
			span.RecordError(err)
			return domain.Listing{}, err
		}
	}
	values.AcceptPreconditions = form.AcceptPreconditions(existing.AcceptPreconditions, values.AcceptPreconditions)

	listing, err := form.Validate(values)
	if err != nil {
		span.RecordError(err)
		return domain.Listing{}, err
	}

	event := domain.Event{Type: domain.EventListingCreated}
	if id == "" {
		listing, err = uc.repo.Append(ctx, listing)
	} else {
		event.Type = domain.EventListingUpdated
		listing, err = uc.repo.UpdateByID(ctx, id, listing)
	}
	if err != nil {
		span.RecordError(err)
		return domain.Listing{}, errors.Wrap(err, "ListingUsecase.Submit")
	}

	event.ID = listing.ID
	event.At = time.Now()
	uc.publish(ctx, event)

	return listing, nil
}

func (uc *ListingUsecase) publish(ctx context.Context, event domain.Event) {
	if uc.signal == nil {
		return
	}
	if err := uc.signal.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish listing event",
			slog.String("error", err.Error()),
			slog.String("type", event.Type),
			slog.String("module", "usecase"),
		)
	}
}
