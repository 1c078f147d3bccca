package service

import (
	"context"
	"testing"
	"time"

	"github.com/totegamma/linksera/internal/domain"
)

func TestSignalServiceLocalBroadcast(t *testing.T) {
	s := NewSignalService(nil)

	first, releaseFirst := s.Subscribe()
	defer releaseFirst()
	second, releaseSecond := s.Subscribe()

	event := domain.Event{Type: domain.EventListingCreated, ID: "abc"}
	if err := s.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	for _, ch := range []<-chan domain.Event{first, second} {
		select {
		case got := <-ch:
			if got.ID != "abc" || got.Type != domain.EventListingCreated {
				t.Fatalf("unexpected event %+v", got)
			}
		case <-time.After(time.Second):
			t.Fatalf("event not delivered")
		}
	}

	releaseSecond()
	releaseSecond()
	if _, ok := <-second; ok {
		t.Fatalf("expected released channel to be closed")
	}

	if err := s.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish after release failed: %v", err)
	}
}
