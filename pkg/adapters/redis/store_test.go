package redis_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/algotrace/pkg/adapters/redis"
	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/ports"
)

func newStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	store := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newStore(t)
	ports.RunHistoryStoreContract(t, store)
}

func TestRedisStore_Prefix(t *testing.T) {
	store, mr := newStore(t, redis.WithPrefix("test:"))
	ctx := context.Background()

	err := store.RecordExecution(ctx, domain.ExecutionRecord{ID: "abc", AlgorithmType: domain.Merge, Timestamp: time.Now()})
	require.NoError(t, err)

	assert.True(t, mr.Exists("test:execution:abc"))
	assert.True(t, mr.Exists("test:executions"))
	assert.True(t, mr.Exists("test:executions:merge"))
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	store, mr := newStore(t, redis.WithTTL(time.Second), redis.WithClock(clock))
	ctx := context.Background()

	rec := domain.ExecutionRecord{ID: "ttl", AlgorithmType: domain.Quick, Timestamp: now}
	require.NoError(t, store.RecordExecution(ctx, rec))

	entries, total, err := store.ListExecutions(ctx, domain.HistoryFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, entries, 1)

	// miniredis expires the value; the store clock moves past the TTL for the index.
	mr.FastForward(2 * time.Second)
	now = now.Add(2 * time.Second)

	_, err = store.GetExecution(ctx, rec.ID)
	assert.ErrorIs(t, err, domain.ErrExecutionNotFound)

	entries, total, err = store.ListExecutions(ctx, domain.HistoryFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, entries)
}

func TestRedisStore_TTL_PrunesEveryIndex(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	store, mr := newStore(t, redis.WithTTL(time.Second), redis.WithClock(clock))
	ctx := context.Background()

	for i := range 5 {
		id := fmt.Sprintf("old-%d", i)
		require.NoError(t, store.RecordAnalysis(ctx, domain.ComplexityRecord{ID: id, AlgorithmType: domain.Merge, Timestamp: now}))
		require.NoError(t, store.RecordQuery(ctx, domain.AssistantRecord{ID: id, UserQuery: "why?", Timestamp: now}))
		require.NoError(t, store.RecordExecution(ctx, domain.ExecutionRecord{ID: id, AlgorithmType: domain.Bubble, Timestamp: now}))
	}

	mr.FastForward(time.Hour)
	now = now.Add(time.Hour)

	// Untouched indexes expire on their own.
	assert.False(t, mr.Exists(redis.DefaultPrefix+"analysis-index"))
	assert.False(t, mr.Exists(redis.DefaultPrefix+"query-index"))
	assert.False(t, mr.Exists(redis.DefaultPrefix+"executions:bubble"))

	require.NoError(t, store.RecordExecution(ctx, domain.ExecutionRecord{ID: "new", AlgorithmType: domain.Quick, Timestamp: now}))
	require.NoError(t, store.RecordAnalysis(ctx, domain.ComplexityRecord{ID: "new", AlgorithmType: domain.Quick, Timestamp: now}))

	members, err := mr.ZMembers(redis.DefaultPrefix + "executions")
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, members)

	members, err = mr.ZMembers(redis.DefaultPrefix + "analysis-index")
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, members)

	entries, total, err := store.ListExecutions(ctx, domain.HistoryFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, entries, 1)
	assert.Equal(t, "new", entries[0].ID)
}

func TestRedisStore_WritePrunesStaleMembers(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	store, mr := newStore(t, redis.WithTTL(time.Minute), redis.WithClock(clock))
	ctx := context.Background()

	require.NoError(t, store.RecordExecution(ctx, domain.ExecutionRecord{ID: "a", AlgorithmType: domain.Bubble, Timestamp: now}))

	// The index key is refreshed by the next write, but its stale member must go.
	mr.FastForward(50 * time.Second)
	now = now.Add(50 * time.Second)
	require.NoError(t, store.RecordExecution(ctx, domain.ExecutionRecord{ID: "b", AlgorithmType: domain.Bubble, Timestamp: now}))
	mr.FastForward(20 * time.Second)
	now = now.Add(20 * time.Second)
	require.NoError(t, store.RecordExecution(ctx, domain.ExecutionRecord{ID: "c", AlgorithmType: domain.Bubble, Timestamp: now}))

	members, err := mr.ZMembers(redis.DefaultPrefix + "executions:bubble")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"b", "c"}, members)
}

func TestRedisStore_SameMillisecondOrder(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	ts := time.Now()

	ids := []string{"z", "m", "a", "q"}
	for _, id := range ids {
		require.NoError(t, store.RecordExecution(ctx, domain.ExecutionRecord{ID: id, AlgorithmType: domain.Insertion, Timestamp: ts}))
	}

	entries, _, err := store.ListExecutions(ctx, domain.HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, entries, len(ids))
	for i, e := range entries {
		assert.Equal(t, ids[len(ids)-1-i], e.ID)
	}
}

func TestRedisStore_DanglingIndexEntry(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordExecution(ctx, domain.ExecutionRecord{ID: "gone", AlgorithmType: domain.Bubble, Timestamp: time.Now()}))
	mr.Del(redis.DefaultPrefix + "execution:gone")

	entries, total, err := store.ListExecutions(ctx, domain.HistoryFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, entries)
}

func TestNewFromURL(t *testing.T) {
	_, err := redis.NewFromURL("not a url")
	assert.Error(t, err)

	mr := miniredis.RunT(t)
	store, err := redis.NewFromURL("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, _, err = store.ListExecutions(context.Background(), domain.HistoryFilter{})
	assert.NoError(t, err)
}
