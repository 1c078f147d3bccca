package usecase

import (
	"context"
	"fmt"

	"github.com/totegamma/linksera/internal/domain"
)

type mockListingRepo struct {
	items   []domain.Listing
	appends int
	updates int
}

func (m *mockListingRepo) Append(ctx context.Context, l domain.Listing) (domain.Listing, error) {
	m.appends++
	l.ID = fmt.Sprintf("id-%d", len(m.items)+1)
	m.items = append(m.items, l)
	return l, nil
}

func (m *mockListingRepo) UpdateByID(ctx context.Context, id string, l domain.Listing) (domain.Listing, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			m.updates++
			l.ID = id
			m.items[i] = l
			return l, nil
		}
	}
	return domain.Listing{}, domain.ErrNotFound
}

func (m *mockListingRepo) GetAll(ctx context.Context) ([]domain.Listing, error) {
	return append([]domain.Listing(nil), m.items...), nil
}

func (m *mockListingRepo) GetByID(ctx context.Context, id string) (domain.Listing, error) {
	for _, l := range m.items {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Listing{}, domain.ErrNotFound
}

type mockSignal struct {
	events []domain.Event
}

func (m *mockSignal) Publish(ctx context.Context, event domain.Event) error {
	m.events = append(m.events, event)
	return nil
}
