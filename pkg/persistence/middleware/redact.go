package middleware

import (
	"context"
	"fmt"
	"regexp"

	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/ports"
)

// Mask replaces every redacted match.
const Mask = "***"

type redactMiddleware struct {
	ports.HistoryStore
	patterns []*regexp.Regexp
}

// NewRedactionMiddleware creates a middleware that masks text matching any of
// the patterns in assistant exchanges before they are stored. Execution and
// analysis records carry no free text and pass through unchanged.
func NewRedactionMiddleware(patternStrings []string) (Middleware, error) {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid redaction pattern %q: %w", p, err)
		}
		patterns[i] = re
	}
	return func(next ports.HistoryStore) ports.HistoryStore {
		return &redactMiddleware{HistoryStore: next, patterns: patterns}
	}, nil
}

func (m *redactMiddleware) RecordQuery(ctx context.Context, rec domain.AssistantRecord) error {
	// rec is a copy; the caller's answer is untouched.
	rec.UserQuery = m.mask(rec.UserQuery)
	rec.Response = m.mask(rec.Response)
	rec.Context = m.mask(rec.Context)
	return m.HistoryStore.RecordQuery(ctx, rec)
}

func (m *redactMiddleware) mask(s string) string {
	for _, p := range m.patterns {
		s = p.ReplaceAllString(s, Mask)
	}
	return s
}
