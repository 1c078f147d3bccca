package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/totegamma/linksera/internal/domain"
)

const signalChannel = "linksera:listings"

// SignalService fans listing events out to subscribers.
// With a redis client the events travel over pub/sub, so every instance
// sharing the redis sees them; without one they stay in process.
type SignalService struct {
	rdb *redis.Client

	mu   sync.Mutex
	subs map[chan domain.Event]struct{}
}

func NewSignalService(redisClient *redis.Client) *SignalService {
	return &SignalService{
		rdb:  redisClient,
		subs: make(map[chan domain.Event]struct{}),
	}
}

func (s *SignalService) Publish(ctx context.Context, event domain.Event) error {
	if s.rdb == nil {
		s.broadcast(event)
		return nil
	}

	jsonstr, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.rdb.Publish(ctx, signalChannel, jsonstr).Err()
	if err != nil {
		return errors.Wrap(err, "SignalService.Publish")
	}

	return nil
}

// Subscribe returns a channel of events and a function releasing it.
func (s *SignalService) Subscribe() (<-chan domain.Event, func()) {
	ch := make(chan domain.Event, 16)

	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, ch)
			s.mu.Unlock()
			close(ch)
		})
	}
}

// Run relays redis messages to local subscribers until ctx is done.
// It is a no-op without redis.
func (s *SignalService) Run(ctx context.Context) {
	if s.rdb == nil {
		return
	}

	pubsub := s.rdb.Subscribe(ctx, signalChannel)
	defer pubsub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-pubsub.Channel():
			if !ok {
				return
			}
			var event domain.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				slog.Warn("invalid signal payload",
					slog.String("error", err.Error()),
					slog.String("module", "signal"),
				)
				continue
			}
			s.broadcast(event)
		}
	}
}

// broadcast never blocks; a subscriber that is not keeping up misses events.
func (s *SignalService) broadcast(event domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ch := range s.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
