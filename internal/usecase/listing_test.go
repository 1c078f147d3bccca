package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/totegamma/linksera/internal/domain"
	"github.com/totegamma/linksera/internal/form"
)

func validForm() form.Values {
	v := form.Defaults()
	v.WebsiteURL = "https://example.com"
	v.Description = strings.Repeat("d", 350)
	v.HomepageLinkDescription = strings.Repeat("h", 350)
	return v
}

func TestListingUsecaseSubmitCreates(t *testing.T) {
	repo := &mockListingRepo{}
	signal := &mockSignal{}
	uc := NewListingUsecase(repo, signal)

	listing, err := uc.Submit(context.Background(), "", validForm())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if listing.ID == "" {
		t.Fatalf("expected an id to be assigned")
	}
	if repo.appends != 1 {
		t.Fatalf("expected one append got %d", repo.appends)
	}
	if len(signal.events) != 1 || signal.events[0].Type != domain.EventListingCreated || signal.events[0].ID != listing.ID {
		t.Fatalf("unexpected events %+v", signal.events)
	}
}

func TestListingUsecaseSubmitInvalidWritesNothing(t *testing.T) {
	repo := &mockListingRepo{}
	signal := &mockSignal{}
	uc := NewListingUsecase(repo, signal)

	v := validForm()
	v.WebsiteURL = ""

	_, err := uc.Submit(context.Background(), "", v)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error got %v", err)
	}
	if repo.appends != 0 || len(signal.events) != 0 {
		t.Fatalf("expected nothing to be written")
	}
}

func TestListingUsecaseSubmitUpdates(t *testing.T) {
	repo := &mockListingRepo{}
	signal := &mockSignal{}
	uc := NewListingUsecase(repo, signal)
	ctx := context.Background()

	created, err := uc.Submit(ctx, "", validForm())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	v, err := uc.Form(ctx, created.ID)
	if err != nil {
		t.Fatalf("form failed: %v", err)
	}
	v.WebsiteURL = "https://changed.example"

	updated, err := uc.Submit(ctx, created.ID, v)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != created.ID || repo.updates != 1 || len(repo.items) != 1 {
		t.Fatalf("expected in place update, got %+v", repo.items)
	}
	if repo.items[0].WebsiteURL != "https://changed.example" {
		t.Fatalf("expected new url got %s", repo.items[0].WebsiteURL)
	}
	if signal.events[1].Type != domain.EventListingUpdated {
		t.Fatalf("expected update event got %s", signal.events[1].Type)
	}
}

func TestListingUsecaseSubmitUnknownID(t *testing.T) {
	uc := NewListingUsecase(&mockListingRepo{}, nil)

	_, err := uc.Submit(context.Background(), "missing", validForm())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found got %v", err)
	}
}

func TestListingUsecasePreconditionsStayAccepted(t *testing.T) {
	repo := &mockListingRepo{}
	uc := NewListingUsecase(repo, nil)
	ctx := context.Background()

	v := validForm()
	v.AcceptPreconditions = true
	created, err := uc.Submit(ctx, "", v)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	v.AcceptPreconditions = false
	updated, err := uc.Submit(ctx, created.ID, v)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.AcceptPreconditions {
		t.Fatalf("expected accepted preconditions to stick")
	}
}

func TestListingUsecaseFormDefaults(t *testing.T) {
	uc := NewListingUsecase(&mockListingRepo{}, nil)

	v, err := uc.Form(context.Background(), "")
	if err != nil {
		t.Fatalf("form failed: %v", err)
	}
	if v.Language != "en-GB" || v.NormalOfferGuestPosting != "54" {
		t.Fatalf("unexpected defaults %+v", v)
	}

	if _, err := uc.Form(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found got %v", err)
	}
}
