package middleware_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/algotrace/pkg/adapters/memory"
	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/persistence/middleware"
	"github.com/aretw0/algotrace/pkg/ports"
)

func TestRedactionMiddleware_Masking(t *testing.T) {
	underlying := memory.NewStore()
	mw, err := middleware.NewRedactionMiddleware([]string{`[\w.]+@[\w.]+`, `sk-[A-Za-z0-9]+`})
	require.NoError(t, err)
	store := mw(underlying)

	rec := domain.AssistantRecord{
		ID:        "q1",
		UserQuery: "mail me at jane.doe@example.com, key sk-abc123",
		Response:  "I cannot email jane.doe@example.com",
		Context:   "quick",
		Timestamp: time.Now(),
	}
	require.NoError(t, store.RecordQuery(context.Background(), rec))

	assert.Equal(t, "mail me at jane.doe@example.com, key sk-abc123", rec.UserQuery, "caller's record must not change")

	stored := underlying.Queries()
	require.Len(t, stored, 1)
	assert.Equal(t, "mail me at ***, key ***", stored[0].UserQuery)
	assert.Equal(t, "I cannot email ***", stored[0].Response)
	assert.Equal(t, "quick", stored[0].Context)
}

func TestRedactionMiddleware_InvalidPattern(t *testing.T) {
	_, err := middleware.NewRedactionMiddleware([]string{"("})
	assert.ErrorContains(t, err, "invalid redaction pattern")
}

func TestRedactionMiddleware_Contract(t *testing.T) {
	mw, err := middleware.NewRedactionMiddleware([]string{"secret"})
	require.NoError(t, err)
	ports.RunHistoryStoreContract(t, middleware.Chain(memory.NewStore(), mw))
}

func TestChain_Order(t *testing.T) {
	var order []string
	tag := func(name string) middleware.Middleware {
		return func(next ports.HistoryStore) ports.HistoryStore {
			return &recordingStore{HistoryStore: next, name: name, order: &order}
		}
	}

	store := middleware.Chain(memory.NewStore(), tag("outer"), tag("inner"))
	require.NoError(t, store.RecordAnalysis(context.Background(), domain.ComplexityRecord{ID: "a"}))
	assert.Equal(t, []string{"outer", "inner"}, order)
}

type recordingStore struct {
	ports.HistoryStore
	name  string
	order *[]string
}

func (s *recordingStore) RecordAnalysis(ctx context.Context, rec domain.ComplexityRecord) error {
	*s.order = append(*s.order, s.name)
	return s.HistoryStore.RecordAnalysis(ctx, rec)
}
