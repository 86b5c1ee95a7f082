package common

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// CacheService keeps portal state in process when no Redis address is
// configured: registration progress, revoked token ids and the blog category
// list. Everything in it is lost on restart.
type CacheService struct {
	items *cache.Cache
}

var _ CacheInterface = (*CacheService)(nil)

// NewCacheService builds the cache. Entries stored without a positive duration
// live for defaultTTLSeconds; expired entries are swept every sweepSeconds.
func NewCacheService(defaultTTLSeconds, sweepSeconds int) *CacheService {
	return &CacheService{
		items: cache.New(
			time.Duration(defaultTTLSeconds)*time.Second,
			time.Duration(sweepSeconds)*time.Second,
		),
	}
}

func (cs *CacheService) Set(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		ttl = cache.DefaultExpiration
	}
	cs.items.Set(key, value, ttl)
}

func (cs *CacheService) Get(key string) (interface{}, bool) {
	return cs.items.Get(key)
}

func (cs *CacheService) Delete(key string) {
	cs.items.Delete(key)
}

// Close has nothing to release.
func (cs *CacheService) Close() error {
	return nil
}
