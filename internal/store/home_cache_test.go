package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	calls int
	err   error
}

func (f *stubFetcher) FetchHome(context.Context) (domain.HomeData, error) {
	f.calls++
	if f.err != nil {
		return domain.HomeData{}, f.err
	}
	return domain.HomeData{
		Categories: []domain.Category{{ID: "c1", Name: "Shoes"}},
	}, nil
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func TestHomeCacheServesWithinTTL(t *testing.T) {
	fetcher := &stubFetcher{}
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

	cache, err := store.NewHomeCache(fetcher, time.Minute, clock.Now)
	require.NoError(t, err)

	_, err = cache.Get(t.Context())
	require.NoError(t, err)

	clock.now = clock.now.Add(59 * time.Second)
	data, err := cache.Get(t.Context())
	require.NoError(t, err)
	assert.Len(t, data.Categories, 1)
	assert.Equal(t, 1, fetcher.calls)

	clock.now = clock.now.Add(time.Second)
	_, err = cache.Get(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls)

	cache.Invalidate()
	_, err = cache.Get(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 3, fetcher.calls)
}

func TestHomeCacheFetchFailure(t *testing.T) {
	fetchErr := errors.New("offline")
	fetcher := &stubFetcher{err: fetchErr}

	cache, err := store.NewHomeCache(fetcher, 0, nil)
	require.NoError(t, err)

	_, err = cache.Get(t.Context())
	require.ErrorIs(t, err, fetchErr)

	fetcher.err = nil
	_, err = cache.Get(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls)
}
