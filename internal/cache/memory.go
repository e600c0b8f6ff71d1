package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/cloud-ru/mcp-financing-go/internal/financing"
)

// MemoryStore хранит результаты в памяти процесса. Get и Set работают с копиями,
// поэтому изменения у вызывающего не попадают в кэш.
type MemoryStore struct {
	items *gocache.Cache
}

// NewMemoryStore создает хранилище с заданным временем жизни записей
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{items: gocache.New(ttl, 2*ttl)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (*financing.Result, bool) {
	cached, found := s.items.Get(key)
	if !found {
		return nil, false
	}
	result, ok := cached.(*financing.Result)
	if !ok {
		return nil, false
	}
	return result.Clone(), true
}

func (s *MemoryStore) Set(_ context.Context, key string, result *financing.Result) error {
	s.items.Set(key, result.Clone(), gocache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) Backend() string {
	return "memory"
}
