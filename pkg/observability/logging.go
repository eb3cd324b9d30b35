package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/algotrace/pkg/domain"
)

// LogHooks writes one structured line per execution event.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnExecutionStart: func(ctx context.Context, e *domain.ExecutionEvent) {
			logger.DebugContext(ctx, "execution_start",
				"algorithm", e.Algorithm,
				"size", e.InputSize,
			)
		},
		OnExecutionFinish: func(ctx context.Context, e *domain.ExecutionEvent) {
			if e.Err != nil {
				logger.WarnContext(ctx, "execution_rejected",
					"algorithm", e.Algorithm,
					"size", e.InputSize,
					"err", e.Err,
				)
				return
			}
			logger.InfoContext(ctx, "execution_finish",
				"algorithm", e.Algorithm,
				"size", e.InputSize,
				"steps", e.Steps,
				"comparisons", e.Comparisons,
				"swaps", e.Swaps,
				"duration", e.Duration,
			)
		},
	}
}
