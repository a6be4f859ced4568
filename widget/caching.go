package widget

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

// CachingConfigurator memoizes results of a configurator. This is
// correct only because Configure is a pure function of options. Every
// caller gets its own copy of a cached result.
type CachingConfigurator struct {
	configurator *Configurator
	cache        *ristretto.Cache
	ttl          time.Duration
}

func (c *CachingConfigurator) Configure(options Options) Result {
	cacheKey := options.Fingerprint().String()

	if value, ok := c.cache.Get(cacheKey); ok {
		return value.(Result).clone()
	}

	result := c.configurator.Configure(options)

	c.cache.SetWithTTL(cacheKey, result.clone(), 1, c.ttl)

	return result
}

// Close stops cache goroutines.
func (c *CachingConfigurator) Close() {
	c.cache.Close()
}

// NewCachingConfigurator wraps configurator with a cache for itemsCount
// results. Zero ttl means that results never expire.
func NewCachingConfigurator(configurator *Configurator, itemsCount uint, ttl time.Duration) *CachingConfigurator {
	cacheConfig := &ristretto.Config{
		MaxCost:            int64(itemsCount),
		NumCounters:        10 * int64(itemsCount),
		Metrics:            false,
		BufferItems:        64,
		IgnoreInternalCost: true,
	}

	cache, err := ristretto.NewCache(cacheConfig)
	if err != nil {
		panic(err)
	}

	return &CachingConfigurator{
		configurator: configurator,
		cache:        cache,
		ttl:          ttl,
	}
}
