package algotrace_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/algotrace"
	"github.com/aretw0/algotrace/pkg/adapters/memory"
	"github.com/aretw0/algotrace/pkg/domain"
)

var fixedNow = time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type failingStore struct {
	*memory.Store
}

func (failingStore) RecordExecution(context.Context, domain.ExecutionRecord) error {
	return errors.New("disk full")
}

type echoAssistant struct {
	query, context string
}

func (a *echoAssistant) Ask(_ context.Context, query, algorithmContext string) (string, error) {
	a.query, a.context = query, algorithmContext
	return "answer to " + query, nil
}

func TestEngine_Execute(t *testing.T) {
	store := memory.NewStore()
	eng, err := algotrace.New(algotrace.WithHistory(store), algotrace.WithClock(fixedClock))
	require.NoError(t, err)

	target := 8
	exec, err := eng.Execute(context.Background(), algotrace.ExecuteRequest{
		Algorithm: " Binary ",
		Array:     []int{5, 3, 8, 1},
		Target:    &target,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Binary, exec.AlgorithmType)
	assert.Equal(t, "Binary Search", exec.AlgorithmName)
	assert.Equal(t, domain.CategorySearching, exec.Category)
	assert.Equal(t, "O(log n)", exec.Complexity.TimeAverage)
	assert.Equal(t, 3, exec.TotalComparisons)
	assert.Zero(t, exec.TotalSwaps)
	assert.Equal(t, fixedNow, exec.Timestamp)

	_, err = uuid.Parse(exec.HistoryID)
	require.NoError(t, err, "history id is a uuid")

	rec, err := eng.HistoryEntry(context.Background(), exec.HistoryID)
	require.NoError(t, err)
	assert.Equal(t, 4, rec.ArraySize)
	assert.Equal(t, 3, rec.Comparisons)
	assert.Equal(t, domain.CategorySearching, rec.Category)
}

func TestEngine_ExecuteErrors(t *testing.T) {
	eng, err := algotrace.New(algotrace.WithMaxInputSize(3))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = eng.Execute(ctx, algotrace.ExecuteRequest{Algorithm: "heap", Array: []int{1}})
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)

	_, err = eng.Execute(ctx, algotrace.ExecuteRequest{Algorithm: "linear", Array: []int{1}})
	assert.ErrorIs(t, err, domain.ErrMissingSearchTarget)

	_, err = eng.Execute(ctx, algotrace.ExecuteRequest{Algorithm: "quick", Array: []int{4, 3, 2, 1}})
	assert.ErrorIs(t, err, domain.ErrInputTooLarge)
	assert.Equal(t, 3, eng.MaxInputSize())
}

func TestEngine_HistoryFailureIsNotFatal(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	eng, err := algotrace.New(
		algotrace.WithHistory(failingStore{memory.NewStore()}),
		algotrace.WithLogger(logger),
	)
	require.NoError(t, err)

	exec, err := eng.Execute(context.Background(), algotrace.ExecuteRequest{Algorithm: "merge", Array: []int{2, 1}})
	require.NoError(t, err)
	assert.Empty(t, exec.HistoryID)
	assert.Contains(t, logs.String(), "failed to record execution")
	assert.Contains(t, logs.String(), "component=engine")
}

func TestEngine_Analyze(t *testing.T) {
	store := memory.NewStore()
	eng, err := algotrace.New(algotrace.WithHistory(store))
	require.NoError(t, err)

	analysis, err := eng.Analyze(context.Background(), "merge", 8)
	require.NoError(t, err)
	assert.Equal(t, domain.OperationEstimate{Best: 24, Average: 24, Worst: 24}, analysis.EstimatedOperations)
	assert.Equal(t, 8, analysis.ArraySize)

	recorded := store.Analyses()
	require.Len(t, recorded, 1)
	assert.Equal(t, 24, recorded[0].EstimatedOperations)

	_, err = eng.Analyze(context.Background(), "merge", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArraySize)

	_, err = eng.Analyze(context.Background(), "tim", 10)
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}

func TestEngine_Ask(t *testing.T) {
	eng, err := algotrace.New()
	require.NoError(t, err)
	assert.False(t, eng.HasAssistant())

	_, err = eng.Ask(context.Background(), "why?", "")
	assert.ErrorIs(t, err, domain.ErrAssistantUnavailable)

	store := memory.NewStore()
	assistant := &echoAssistant{}
	eng, err = algotrace.New(algotrace.WithAssistant(assistant), algotrace.WithHistory(store), algotrace.WithClock(fixedClock))
	require.NoError(t, err)

	_, err = eng.Ask(context.Background(), "   ", "bubble")
	assert.ErrorIs(t, err, domain.ErrEmptyQuery)

	answer, err := eng.Ask(context.Background(), " Is it stable? ", "bubble")
	require.NoError(t, err)
	assert.Equal(t, "answer to Is it stable?", answer.Response)
	assert.Equal(t, fixedNow, answer.Timestamp)
	assert.Equal(t, "bubble", assistant.context)

	queries := store.Queries()
	require.Len(t, queries, 1)
	assert.Equal(t, "Is it stable?", queries[0].UserQuery)
	assert.Equal(t, "answer to Is it stable?", queries[0].Response)

	_, err = eng.Ask(context.Background(), "bad \xff byte", "")
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	answer, err = eng.Ask(context.Background(), "why\x1b[0m?", "quick\x00")
	require.NoError(t, err)
	assert.Equal(t, "answer to why[0m?", answer.Response)
	assert.Equal(t, "quick", assistant.context)
}

func TestEngine_HistoryWithoutStore(t *testing.T) {
	eng, err := algotrace.New()
	require.NoError(t, err)

	page, err := eng.History(context.Background(), domain.HistoryFilter{})
	require.NoError(t, err)
	assert.NotNil(t, page.Entries)
	assert.Zero(t, page.Total)

	_, err = eng.History(context.Background(), domain.HistoryFilter{Limit: 500})
	assert.ErrorIs(t, err, domain.ErrInvalidLimit)

	_, err = eng.HistoryEntry(context.Background(), "anything")
	assert.ErrorIs(t, err, domain.ErrExecutionNotFound)
}

func TestEngine_LifecycleHooks(t *testing.T) {
	var finished []domain.ExecutionEvent
	eng, err := algotrace.New(algotrace.WithLifecycleHooks(domain.LifecycleHooks{
		OnExecutionFinish: func(_ context.Context, e *domain.ExecutionEvent) {
			finished = append(finished, *e)
		},
	}))
	require.NoError(t, err)

	_, _ = eng.Execute(context.Background(), algotrace.ExecuteRequest{Algorithm: "selection", Array: []int{2, 1}})
	_, _ = eng.Execute(context.Background(), algotrace.ExecuteRequest{Algorithm: "shell", Array: []int{2, 1}})

	require.Len(t, finished, 2)
	assert.NoError(t, finished[0].Err)
	assert.Equal(t, 1, finished[0].Swaps)
	assert.ErrorIs(t, finished[1].Err, domain.ErrUnknownAlgorithm)
}

func TestEngine_StaticQueries(t *testing.T) {
	eng, err := algotrace.New()
	require.NoError(t, err)

	algorithms := eng.Algorithms()
	require.Len(t, algorithms, 7)
	assert.Equal(t, domain.Bubble, algorithms[0].ID)

	meta, err := eng.Metadata("INSERTION")
	require.NoError(t, err)
	assert.Equal(t, "Insertion Sort", meta.Name)

	cx, err := eng.Complexity("quick")
	require.NoError(t, err)
	assert.Equal(t, "O(n²)", cx.TimeWorst)
	assert.False(t, cx.Stable)

	est, err := eng.EstimateOperations("linear", 10)
	require.NoError(t, err)
	assert.Equal(t, domain.OperationEstimate{Best: 1, Average: 5, Worst: 10}, est)

	_, err = eng.Complexity("radix")
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}
