package ports

import "context"

// Assistant answers questions about the algorithms.
// algorithmContext names the algorithm the user is currently looking at and may be empty.
type Assistant interface {
	Ask(ctx context.Context, query, algorithmContext string) (string, error)
}
