package ports

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/algotrace/pkg/domain"
)

// RunHistoryStoreContract runs a suite of tests to verify that a HistoryStore
// implementation adheres to the interface contract. The store must be empty.
func RunHistoryStoreContract(t *testing.T, store HistoryStore) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	suffix := base.Format("20060102150405")

	records := []domain.ExecutionRecord{
		{ID: "exec-1-" + suffix, AlgorithmType: domain.Bubble, AlgorithmName: "Bubble Sort", ArraySize: 3, Comparisons: 3, Swaps: 2, Category: domain.CategorySorting, Timestamp: base},
		{ID: "exec-2-" + suffix, AlgorithmType: domain.Binary, AlgorithmName: "Binary Search", ArraySize: 4, Comparisons: 3, Category: domain.CategorySearching, Timestamp: base.Add(time.Minute)},
		{ID: "exec-3-" + suffix, AlgorithmType: domain.Bubble, AlgorithmName: "Bubble Sort", ArraySize: 5, Comparisons: 10, Swaps: 4, Category: domain.CategorySorting, Timestamp: base.Add(2 * time.Minute)},
	}

	t.Run("Record and Get", func(t *testing.T) {
		for _, rec := range records {
			require.NoError(t, store.RecordExecution(ctx, rec), "RecordExecution should not return error")
		}

		got, err := store.GetExecution(ctx, records[0].ID)
		require.NoError(t, err)
		assert.Equal(t, records[0].ID, got.ID)
		assert.Equal(t, records[0].AlgorithmType, got.AlgorithmType)
		assert.Equal(t, records[0].AlgorithmName, got.AlgorithmName)
		assert.Equal(t, records[0].ArraySize, got.ArraySize)
		assert.Equal(t, records[0].Comparisons, got.Comparisons)
		assert.Equal(t, records[0].Swaps, got.Swaps)
		assert.Equal(t, records[0].Category, got.Category)
		assert.True(t, records[0].Timestamp.Equal(got.Timestamp), "timestamp round-trips: want %v, got %v", records[0].Timestamp, got.Timestamp)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.GetExecution(ctx, "missing-"+suffix)
		assert.ErrorIs(t, err, domain.ErrExecutionNotFound)
	})

	t.Run("List Newest First", func(t *testing.T) {
		entries, total, err := store.ListExecutions(ctx, domain.HistoryFilter{})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, entries, 3)
		assert.Equal(t, records[2].ID, entries[0].ID)
		assert.Equal(t, records[1].ID, entries[1].ID)
		assert.Equal(t, records[0].ID, entries[2].ID)
	})

	t.Run("Filter By Algorithm", func(t *testing.T) {
		entries, total, err := store.ListExecutions(ctx, domain.HistoryFilter{AlgorithmType: domain.Bubble})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, entries, 2)
		for _, e := range entries {
			assert.Equal(t, domain.Bubble, e.AlgorithmType)
		}

		entries, total, err = store.ListExecutions(ctx, domain.HistoryFilter{AlgorithmType: domain.Merge})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, entries)
	})

	t.Run("Limit Keeps Total", func(t *testing.T) {
		entries, total, err := store.ListExecutions(ctx, domain.HistoryFilter{Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, 3, total, "total counts the filtered set, not the page")
		require.Len(t, entries, 1)
		assert.Equal(t, records[2].ID, entries[0].ID)
	})

	t.Run("Invalid Filter", func(t *testing.T) {
		_, _, err := store.ListExecutions(ctx, domain.HistoryFilter{Limit: domain.MaxHistoryLimit + 1})
		assert.ErrorIs(t, err, domain.ErrInvalidLimit)

		_, _, err = store.ListExecutions(ctx, domain.HistoryFilter{Limit: -1})
		assert.ErrorIs(t, err, domain.ErrInvalidLimit)

		_, _, err = store.ListExecutions(ctx, domain.HistoryFilter{AlgorithmType: "heap"})
		assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
	})

	t.Run("Record Analysis And Query", func(t *testing.T) {
		err := store.RecordAnalysis(ctx, domain.ComplexityRecord{
			ID:                  "analysis-" + suffix,
			AlgorithmType:       domain.Merge,
			AlgorithmName:       "Merge Sort",
			ArraySize:           16,
			EstimatedOperations: 64,
			Timestamp:           base,
		})
		require.NoError(t, err)

		err = store.RecordQuery(ctx, domain.AssistantRecord{
			ID:        "query-" + suffix,
			UserQuery: "Why is merge sort stable?",
			Response:  "Ties take the left element.",
			Context:   "merge",
			Timestamp: base,
		})
		require.NoError(t, err)

		_, total, err := store.ListExecutions(ctx, domain.HistoryFilter{})
		require.NoError(t, err)
		assert.Equal(t, 3, total, "analyses and queries are not executions")
	})

	t.Run("Concurrent Writers", func(t *testing.T) {
		const writers = 10
		errs := make(chan error, writers)
		for i := range writers {
			go func() {
				errs <- store.RecordExecution(ctx, domain.ExecutionRecord{
					ID:            fmt.Sprintf("concurrent-%d-%s", i, suffix),
					AlgorithmType: domain.Linear,
					AlgorithmName: "Linear Search",
					ArraySize:     i,
					Category:      domain.CategorySearching,
					Timestamp:     base.Add(time.Hour + time.Duration(i)*time.Second),
				})
			}()
		}
		for range writers {
			require.NoError(t, <-errs)
		}

		entries, total, err := store.ListExecutions(ctx, domain.HistoryFilter{AlgorithmType: domain.Linear})
		require.NoError(t, err)
		assert.Equal(t, writers, total)
		require.Len(t, entries, writers)
		for i := 1; i < len(entries); i++ {
			assert.False(t, entries[i].Timestamp.After(entries[i-1].Timestamp), "entries are newest first")
		}
	})

	t.Run("Equal Timestamps", func(t *testing.T) {
		ts := base.Add(2 * time.Hour)
		for _, id := range []string{"tie-first-" + suffix, "tie-second-" + suffix} {
			require.NoError(t, store.RecordExecution(ctx, domain.ExecutionRecord{
				ID:            id,
				AlgorithmType: domain.Selection,
				AlgorithmName: "Selection Sort",
				ArraySize:     2,
				Category:      domain.CategorySorting,
				Timestamp:     ts,
			}))
		}

		entries, _, err := store.ListExecutions(ctx, domain.HistoryFilter{Limit: 2})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "tie-second-"+suffix, entries[0].ID, "most recently recorded first")
		assert.Equal(t, "tie-first-"+suffix, entries[1].ID)
	})
}
