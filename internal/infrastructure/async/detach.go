package async

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"orderflow/internal/event"
)

var ErrPoolClosed = errors.New("async: worker pool is shut down")

// Detach wraps h so that it runs on the pool instead of the dispatching
// goroutine. The wrapper returns once the task is queued; failures of h are
// only logged. Dispatch cannot observe a StopPropagation made by h.
//
// The task context is derived from the pool, not from the dispatch, so it
// outlives the request that triggered the event. The trace span is carried
// over.
func Detach(pool *WorkerPool, h event.Handler) event.Handler {
	if h == nil {
		return nil
	}
	return func(ctx context.Context, e event.Event) error {
		span := trace.SpanFromContext(ctx)
		ok := pool.Submit(ctx, func(taskCtx context.Context) {
			taskCtx = trace.ContextWithSpan(taskCtx, span)
			if err := h(taskCtx, e); err != nil {
				pool.log.Warn("detached event handler failed",
					zap.String("event_type", eventType(e)),
					zap.Error(err),
				)
			}
		})
		if !ok {
			if err := ctx.Err(); err != nil {
				return err
			}
			return ErrPoolClosed
		}
		return nil
	}
}
