package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

const defaultHomeCacheTTL = 5 * time.Minute

// HomeCache keeps the home page data in memory for a short while.
type HomeCache struct {
	fetcher port.CatalogFetcher
	ttl     time.Duration
	now     func() time.Time

	mu        sync.Mutex
	data      domain.HomeData
	fetchedAt time.Time
	valid     bool
}

// NewHomeCache builds a cache; a non-positive ttl means 5 minutes, a nil now means time.Now.
func NewHomeCache(fetcher port.CatalogFetcher, ttl time.Duration, now func() time.Time) (*HomeCache, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("fetcher is nil")
	}
	if ttl <= 0 {
		ttl = defaultHomeCacheTTL
	}
	if now == nil {
		now = time.Now
	}

	return &HomeCache{fetcher: fetcher, ttl: ttl, now: now}, nil
}

// Get serves fresh cached data or refetches. A failed fetch keeps the previous entry untouched.
func (c *HomeCache) Get(ctx context.Context) (domain.HomeData, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.data, nil
	}

	data, err := c.fetcher.FetchHome(ctx)
	if err != nil {
		return domain.HomeData{}, fmt.Errorf("fetcher.FetchHome: %w", err)
	}

	c.data = data
	c.fetchedAt = c.now()
	c.valid = true

	return data, nil
}

func (c *HomeCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
}
