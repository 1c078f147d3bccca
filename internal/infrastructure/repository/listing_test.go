package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/totegamma/linksera/internal/domain"
	"github.com/totegamma/linksera/internal/infrastructure/blob"
)

type failingBlob struct {
	saves int
}

func (f *failingBlob) Load(ctx context.Context, key string) ([]byte, error) {
	return nil, domain.ErrNotFound
}

func (f *failingBlob) Save(ctx context.Context, key string, value []byte) error {
	f.saves++
	return fmt.Errorf("disk full")
}

func newTestRepository(t *testing.T, store BlobStore) *ListingRepository {
	t.Helper()
	repo, err := NewListingRepository(context.Background(), store, "listings")
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}
	seq := 0
	repo.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return repo
}

func TestAppendKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, blob.NewMemoryStore())

	for _, u := range []string{"https://a.example", "https://b.example", "https://c.example"} {
		if _, err := repo.Append(ctx, domain.Listing{WebsiteURL: u}); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all failed: %v", err)
	}
	if len(all) != 3 || all[0].WebsiteURL != "https://a.example" || all[2].WebsiteURL != "https://c.example" {
		t.Fatalf("unexpected order %+v", all)
	}
	if all[1].ID != "id-2" {
		t.Fatalf("expected id-2 got %s", all[1].ID)
	}
}

func TestUpdateByIDPreservesPosition(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, blob.NewMemoryStore())

	first, _ := repo.Append(ctx, domain.Listing{WebsiteURL: "https://a.example"})
	repo.Append(ctx, domain.Listing{WebsiteURL: "https://b.example"})

	updated, err := repo.UpdateByID(ctx, first.ID, domain.Listing{WebsiteURL: "https://z.example"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != first.ID || !updated.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("expected id and creation time to be kept")
	}

	all, _ := repo.GetAll(ctx)
	if len(all) != 2 || all[0].WebsiteURL != "https://z.example" {
		t.Fatalf("expected first row replaced in place, got %+v", all)
	}
}

func TestUpdateByIDUnknown(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, blob.NewMemoryStore())
	repo.Append(ctx, domain.Listing{WebsiteURL: "https://a.example"})

	_, err := repo.UpdateByID(ctx, "missing", domain.Listing{WebsiteURL: "https://z.example"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found got %v", err)
	}
	if repo.Count(ctx) != 1 {
		t.Fatalf("expected store unchanged")
	}
}

func TestGetAllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, blob.NewMemoryStore())
	repo.Append(ctx, domain.Listing{WebsiteURL: "https://a.example"})

	all, _ := repo.GetAll(ctx)
	all[0].WebsiteURL = "mutated"

	got, err := repo.GetByID(ctx, "id-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.WebsiteURL != "https://a.example" {
		t.Fatalf("expected store to be isolated from callers")
	}
}

func TestReadsDoNotShareState(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, blob.NewMemoryStore())

	categories := []string{"art", "gaming"}
	price := 54.0
	repo.Append(ctx, domain.Listing{WebsiteURL: "https://a.example", MainCategories: categories, HomepageLinkPrice: &price})
	categories[0] = "changed-by-caller"
	price = 1

	all, _ := repo.GetAll(ctx)
	all[0].MainCategories[1] = "changed-from-list"

	one, _ := repo.GetByID(ctx, "id-1")
	one.MainCategories[0] = "changed-from-get"
	*one.HomepageLinkPrice = 2

	got, err := repo.GetByID(ctx, "id-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.MainCategories[0] != "art" || got.MainCategories[1] != "gaming" {
		t.Fatalf("expected stored categories untouched, got %v", got.MainCategories)
	}
	if *got.HomepageLinkPrice != 54 {
		t.Fatalf("expected stored price untouched, got %v", *got.HomepageLinkPrice)
	}
}

func TestPersistAndReload(t *testing.T) {
	ctx := context.Background()
	store := blob.NewMemoryStore()
	repo := newTestRepository(t, store)

	repo.Append(ctx, domain.Listing{WebsiteURL: "https://a.example", MainCategories: []string{"art"}})
	repo.Append(ctx, domain.Listing{WebsiteURL: "https://b.example"})

	raw, err := store.Load(ctx, "listings")
	if err != nil {
		t.Fatalf("expected blob to be written: %v", err)
	}
	var saved []domain.Listing
	if err := json.Unmarshal(raw, &saved); err != nil {
		t.Fatalf("blob is not a listing array: %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("expected 2 saved listings got %d", len(saved))
	}

	reloaded, err := NewListingRepository(ctx, store, "listings")
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	got, err := reloaded.GetByID(ctx, "id-1")
	if err != nil {
		t.Fatalf("expected id-1 after reload: %v", err)
	}
	if got.PrimaryCategory() != "art" {
		t.Fatalf("expected categories to survive reload")
	}
}

func TestPersistFailureKeepsMemory(t *testing.T) {
	ctx := context.Background()
	store := &failingBlob{}
	repo := newTestRepository(t, store)

	if _, err := repo.Append(ctx, domain.Listing{WebsiteURL: "https://a.example"}); err != nil {
		t.Fatalf("append should not fail on persist errors: %v", err)
	}
	if store.saves != 1 {
		t.Fatalf("expected one save attempt got %d", store.saves)
	}
	if repo.Count(ctx) != 1 {
		t.Fatalf("expected memory to keep the listing")
	}
}

func TestLoadRejectsCorruptBlob(t *testing.T) {
	ctx := context.Background()
	store := blob.NewMemoryStore()
	store.Save(ctx, "listings", []byte("{not json"))

	if _, err := NewListingRepository(ctx, store, "listings"); err == nil {
		t.Fatalf("expected corrupt blob to fail loading")
	}
}
