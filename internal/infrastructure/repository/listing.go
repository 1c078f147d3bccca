package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/totegamma/linksera/internal/domain"
)

// BlobStore loads and saves one named serialized document.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// ListingRepository keeps every listing of the session in insertion order.
// Memory is authoritative; the whole collection is written to the blob store
// after each mutation.
type ListingRepository struct {
	mu    sync.RWMutex
	items []domain.Listing
	index map[string]int

	blob BlobStore
	key  string

	now   func() time.Time
	newID func() string
}

func NewListingRepository(ctx context.Context, blob BlobStore, key string) (*ListingRepository, error) {
	r := &ListingRepository{
		index: make(map[string]int),
		blob:  blob,
		key:   key,
		now:   time.Now,
		newID: uuid.NewString,
	}

	if err := r.load(ctx); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *ListingRepository) load(ctx context.Context) error {
	raw, err := r.blob.Load(ctx, r.key)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "ListingRepository.load")
	}

	var items []domain.Listing
	if err := json.Unmarshal(raw, &items); err != nil {
		return errors.Wrap(err, "ListingRepository.load")
	}

	for _, item := range items {
		if item.ID == "" {
			item.ID = r.newID()
		}
		if _, dup := r.index[item.ID]; dup {
			continue
		}
		r.index[item.ID] = len(r.items)
		r.items = append(r.items, item)
	}

	slog.InfoContext(ctx, "listings loaded",
		slog.Int("count", len(r.items)),
		slog.String("module", "store"),
	)
	return nil
}

// Append stores a new listing at the end and returns it with its assigned id.
func (r *ListingRepository) Append(ctx context.Context, listing domain.Listing) (domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	listing.ID = r.newID()
	listing.CreatedAt = now
	listing.UpdatedAt = now

	r.index[listing.ID] = len(r.items)
	r.items = append(r.items, listing.Clone())

	r.persist(ctx)
	return listing, nil
}

// UpdateByID replaces the listing with the given id, keeping its position.
func (r *ListingRepository) UpdateByID(ctx context.Context, id string, listing domain.Listing) (domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return domain.Listing{}, domain.NotFoundError{Resource: "listing"}
	}

	listing.ID = id
	listing.CreatedAt = r.items[i].CreatedAt
	listing.UpdatedAt = r.now()
	r.items[i] = listing.Clone()

	r.persist(ctx)
	return listing, nil
}

// GetAll returns a copy of every listing in insertion order.
func (r *ListingRepository) GetAll(ctx context.Context) ([]domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Listing, len(r.items))
	for i, item := range r.items {
		out[i] = item.Clone()
	}
	return out, nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return domain.Listing{}, domain.NotFoundError{Resource: "listing"}
	}
	return r.items[i].Clone(), nil
}

func (r *ListingRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// persist writes the collection; callers hold the write lock.
// A failed write is logged and memory stays ahead of the blob.
func (r *ListingRepository) persist(ctx context.Context) {
	raw, err := json.Marshal(r.items)
	if err == nil {
		err = r.blob.Save(context.WithoutCancel(ctx), r.key, raw)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to persist listings",
			slog.String("error", errors.Wrap(err, "ListingRepository.persist").Error()),
			slog.String("module", "store"),
		)
	}
}
