// internal/daily/service_test.go
package daily

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royalehaus/royalehaus/internal/rotation"
)

// memStore mirrors the Postgres DailyStore in memory: selections are
// created under one lock, so the check-then-create is atomic.
type memStore struct {
	mu         sync.Mutex
	eligible   map[int64]bool
	states     map[string]rotation.State
	selections map[string]int64
	draws      int
}

func newMemStore(ids ...int64) *memStore {
	eligible := make(map[int64]bool, len(ids))
	for _, id := range ids {
		eligible[id] = true
	}
	return &memStore{
		eligible:   eligible,
		states:     make(map[string]rotation.State),
		selections: make(map[string]int64),
	}
}

func key(day, game string) string { return day + "|" + game }

func (m *memStore) GetSelection(_ context.Context, day, game string) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.selections[key(day, game)]
	return id, ok, nil
}

func (m *memStore) DrawSelection(_ context.Context, day, game string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.selections[key(day, game)]; ok {
		return id, nil
	}
	id, next, err := rotation.Draw(m.states[game], m.eligible, rotation.Seed(game, day))
	if err != nil {
		return 0, err
	}
	m.states[game] = next
	m.selections[key(day, game)] = id
	m.draws++
	return id, nil
}

type memCache struct {
	mu   sync.Mutex
	data map[string]int64
	hits int
}

func (c *memCache) GetSelection(_ context.Context, day, game string) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, ok := c.data[key(day, game)]
	if ok {
		c.hits++
	}
	return id, ok
}

func (c *memCache) SetSelection(_ context.Context, day, game string, id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		c.data = make(map[string]int64)
	}
	c.data[key(day, game)] = id
}

func TestGetDailyCardRejectsBadInput(t *testing.T) {
	svc := NewService(newMemStore(1), nil)

	_, err := svc.GetDailyCard(context.Background(), "2024-01-01", "chess")
	assert.ErrorIs(t, err, ErrBadInput)

	_, err = svc.GetDailyCard(context.Background(), "01/02/2024", "royaledle")
	assert.ErrorIs(t, err, ErrBadInput)

	_, err = svc.GetDailyCard(context.Background(), "2024-1-1", "royaledle")
	assert.ErrorIs(t, err, ErrBadInput)
}

func TestGetDailyCardIdempotentPerDay(t *testing.T) {
	store := newMemStore(1, 2, 3, 4)
	svc := NewService(store, nil)
	ctx := context.Background()

	first, err := svc.GetDailyCard(ctx, "2024-01-01", "royaledle")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := svc.GetDailyCard(ctx, "2024-01-01", "royaledle")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, 1, store.draws)
}

func TestGetDailyCardCoversPoolThenRepeats(t *testing.T) {
	store := newMemStore(1, 2, 3)
	svc := NewService(store, nil)
	ctx := context.Background()

	seen := make(map[int64]bool)
	for day := 1; day <= 3; day++ {
		id, err := svc.GetDailyCard(ctx, fmt.Sprintf("2024-01-%02d", day), "royaledle")
		require.NoError(t, err)
		assert.False(t, seen[id], "card %d repeated before pool exhausted", id)
		seen[id] = true
	}
	assert.Len(t, seen, 3)

	// 4th distinct day begins a fresh epoch from the same pool
	id, err := svc.GetDailyCard(ctx, "2024-01-04", "royaledle")
	require.NoError(t, err)
	assert.True(t, seen[id])
}

func TestGetDailyCardIndependentPerGameType(t *testing.T) {
	store := newMemStore(1, 2, 3, 4, 5)
	svc := NewService(store, nil)
	ctx := context.Background()

	a, err := svc.GetDailyCard(ctx, "2024-01-01", "royaledle")
	require.NoError(t, err)
	b, err := svc.GetDailyCard(ctx, "2024-01-01", "higherlower")
	require.NoError(t, err)

	// separate bags: drawing for one game does not consume from the other
	assert.Len(t, store.states["royaledle"].UsedIDs, 1)
	assert.Len(t, store.states["higherlower"].UsedIDs, 1)
	_, _ = a, b
}

func TestGetDailyCardConcurrentFirstCalls(t *testing.T) {
	store := newMemStore(1, 2, 3, 4, 5, 6, 7, 8)
	svc := NewService(store, nil)

	const callers = 16
	results := make([]int64, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.GetDailyCard(context.Background(), "2024-01-01", "impostor")
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
	assert.Equal(t, 1, store.draws, "exactly one draw despite %d racing callers", callers)
}

func TestGetDailyCardEmptyCatalog(t *testing.T) {
	svc := NewService(newMemStore(), nil)
	_, err := svc.GetDailyCard(context.Background(), "2024-01-01", "royaledle")
	assert.ErrorIs(t, err, rotation.ErrNoEligibleCards)
}

func TestGetDailyCardUsesCache(t *testing.T) {
	store := newMemStore(1, 2, 3)
	cache := &memCache{}
	svc := NewService(store, cache)
	ctx := context.Background()

	id, err := svc.GetDailyCard(ctx, "2024-01-01", "royaledle")
	require.NoError(t, err)

	again, err := svc.GetDailyCard(ctx, "2024-01-01", "royaledle")
	require.NoError(t, err)
	assert.Equal(t, id, again)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, 1, store.draws)
}
