package variables

import (
	"context"
	"errors"
	"maps"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	mu      sync.Mutex
	data    map[int64]map[string]int64
	saves   int
	saveErr error
}

func newMemRepo() *memRepo {
	return &memRepo{data: make(map[int64]map[string]int64)}
}

func (m *memRepo) LoadVariables(_ context.Context, charID int64) (map[string]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.data[charID]), nil
}

func (m *memRepo) SaveVariables(_ context.Context, charID int64, vars map[string]int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.data[charID] = maps.Clone(vars)
	return nil
}

func TestRegistry_GetSet(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)
	assert.Zero(t, r.Get(1, "ap_hp_pct"), "unknown character reads 0")

	r.Set(1, "ap_hp_pct", 40)
	assert.Equal(t, int64(40), r.Get(1, "ap_hp_pct"))
	assert.Zero(t, r.Get(2, "ap_hp_pct"))

	r.Set(1, "ap_hp_pct", 60)
	assert.Equal(t, int64(60), r.Get(1, "ap_hp_pct"), "last write wins")

	r.Delete(1, "ap_hp_pct")
	assert.Zero(t, r.Get(1, "ap_hp_pct"))
	assert.Empty(t, r.Vars(1))
}

func TestRegistry_DirtyTracking(t *testing.T) {
	t.Parallel()

	r := NewRegistry(newMemRepo())
	assert.False(t, r.IsDirty(1))

	r.Set(1, "ap_tp_mobs", 5)
	assert.True(t, r.IsDirty(1))

	require.NoError(t, r.Flush(context.Background(), 1))
	assert.False(t, r.IsDirty(1))

	r.Set(1, "ap_tp_mobs", 5)
	assert.False(t, r.IsDirty(1), "same value is not a change")

	r.Set(1, "ap_missing", 0)
	assert.False(t, r.IsDirty(1), "deleting absent variable is not a change")
}

func TestRegistry_LoadFlushRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newMemRepo()
	repo.data[7] = map[string]int64{"ap_buff_60": 1, "ap_search_radius": 12}

	r := NewRegistry(repo)
	require.NoError(t, r.Load(ctx, 7))
	assert.Equal(t, int64(12), r.Get(7, "ap_search_radius"))

	r.Set(7, "ap_search_radius", 5)
	r.Delete(7, "ap_buff_60")
	require.NoError(t, r.Flush(ctx, 7))
	assert.Equal(t, map[string]int64{"ap_search_radius": 5}, repo.data[7])

	// nothing changed → no second save
	require.NoError(t, r.Flush(ctx, 7))
	assert.Equal(t, 1, repo.saves)

	r.Evict(7)
	assert.Zero(t, r.Count())
	assert.Zero(t, r.Get(7, "ap_search_radius"))
}

func TestRegistry_FlushAllJoinsErrors(t *testing.T) {
	t.Parallel()

	repo := newMemRepo()
	repo.saveErr = errors.New("db down")
	r := NewRegistry(repo)
	r.Set(1, "a", 1)
	r.Set(2, "b", 2)

	err := r.FlushAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.saveErr)
	assert.True(t, r.IsDirty(1))
	assert.True(t, r.IsDirty(2))
}

func TestRegistry_NoRepository(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)
	r.Set(1, "a", 1)
	assert.NoError(t, r.Load(context.Background(), 1))
	assert.NoError(t, r.Flush(context.Background(), 1))
	assert.Equal(t, int64(1), r.Get(1, "a"), "load without repository keeps memory")
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	r := NewRegistry(newMemRepo())
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := range 100 {
				r.Set(int64(i%4), "v", int64(j))
				_ = r.Get(int64(i%4), "v")
			}
			_ = r.FlushAll(context.Background())
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 4, r.Count())
}
