package blob

import (
	"context"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"

	"github.com/totegamma/linksera/internal/domain"
)

// MemcachedStore keeps blobs in memcached. Entries never expire but may be
// evicted, so it suits demos and shared scratch deployments.
type MemcachedStore struct {
	mc     *memcache.Client
	prefix string
}

func NewMemcachedStore(mc *memcache.Client, prefix string) *MemcachedStore {
	return &MemcachedStore{mc: mc, prefix: prefix}
}

func (s *MemcachedStore) Load(_ context.Context, key string) ([]byte, error) {
	item, err := s.mc.Get(s.prefix + key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, domain.NotFoundError{Resource: "blob " + key}
	}
	if err != nil {
		return nil, errors.Wrap(err, "memcached load")
	}
	return item.Value, nil
}

func (s *MemcachedStore) Save(_ context.Context, key string, value []byte) error {
	err := s.mc.Set(&memcache.Item{
		Key:   s.prefix + key,
		Value: value,
	})
	if err != nil {
		return errors.Wrap(err, "memcached save")
	}
	return nil
}
