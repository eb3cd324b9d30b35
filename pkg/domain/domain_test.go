package domain_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithmID(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.AlgorithmID
		wantErr bool
	}{
		{in: "bubble", want: domain.Bubble},
		{in: "  Binary ", want: domain.Binary},
		{in: "MERGE", want: domain.Merge},
		{in: "heap", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseAlgorithmID(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAlgorithmIDs_CanonicalOrder(t *testing.T) {
	ids := domain.AlgorithmIDs()
	assert.Equal(t, []domain.AlgorithmID{
		domain.Bubble, domain.Quick, domain.Merge, domain.Selection,
		domain.Insertion, domain.Linear, domain.Binary,
	}, ids)

	// Mutating the returned slice must not leak into the package.
	ids[0] = "tampered"
	assert.Equal(t, domain.Bubble, domain.AlgorithmIDs()[0])
}

func TestAlgorithmID_IsSearch(t *testing.T) {
	for _, id := range domain.AlgorithmIDs() {
		want := id == domain.Linear || id == domain.Binary
		assert.Equal(t, want, id.IsSearch(), id)
	}
}

func TestAnnotatedElement_JSONShape(t *testing.T) {
	el := domain.AnnotatedElement{
		Element: domain.Element{Value: 7, ID: 2},
		Flags:   domain.Flags{Comparing: true, Sorted: true},
	}

	data, err := json.Marshal(el)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":7,"id":2,"isComparing":true,"isSorted":true}`, string(data))
}

func TestTrace_FinalAndTotals(t *testing.T) {
	var empty domain.Trace
	_, ok := empty.Final()
	assert.False(t, ok)
	c, s := empty.Totals()
	assert.Zero(t, c)
	assert.Zero(t, s)

	tr := domain.Trace{
		{Comparisons: 1, Swaps: 0},
		{Comparisons: 3, Swaps: 2, Description: "done"},
	}
	last, ok := tr.Final()
	require.True(t, ok)
	assert.Equal(t, "done", last.Description)
	c, s = tr.Totals()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, s)
}

func TestNewElements(t *testing.T) {
	els := domain.NewElements([]int{5, 5, 1})
	assert.Equal(t, []domain.Element{{Value: 5, ID: 0}, {Value: 5, ID: 1}, {Value: 1, ID: 2}}, els)
}

func TestHistoryFilter_Normalize(t *testing.T) {
	f, err := domain.HistoryFilter{}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultHistoryLimit, f.Limit)

	f, err = domain.HistoryFilter{AlgorithmType: "Quick", Limit: 100}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, domain.Quick, f.AlgorithmType)

	_, err = domain.HistoryFilter{Limit: 101}.Normalize()
	assert.ErrorIs(t, err, domain.ErrInvalidLimit)

	_, err = domain.HistoryFilter{Limit: -1}.Normalize()
	assert.ErrorIs(t, err, domain.ErrInvalidLimit)

	_, err = domain.HistoryFilter{AlgorithmType: "shell"}.Normalize()
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{
		OnExecutionStart: func(context.Context, *domain.ExecutionEvent) { calls = append(calls, "a-start") },
	}
	b := domain.LifecycleHooks{
		OnExecutionStart:  func(context.Context, *domain.ExecutionEvent) { calls = append(calls, "b-start") },
		OnExecutionFinish: func(context.Context, *domain.ExecutionEvent) { calls = append(calls, "b-finish") },
	}

	merged := a.Merge(b)
	merged.OnExecutionStart(context.Background(), &domain.ExecutionEvent{})
	merged.OnExecutionFinish(context.Background(), &domain.ExecutionEvent{})

	assert.Equal(t, []string{"a-start", "b-start", "b-finish"}, calls)
	assert.Nil(t, domain.LifecycleHooks{}.Merge(domain.LifecycleHooks{}).OnExecutionStart)
}
