package ctxutil

import (
	"context"
	"errors"
	"time"
)

// TimeoutContext returns a context bounded by the given duration.
// A non-positive duration provides an unbounded, but still cancelable,
// context.
func TimeoutContext(ctx context.Context, duration time.Duration) context.Context {
	if duration <= 0 {
		return CancelContext(ctx)
	}
	return cancelContext(context.WithTimeout(ctx, duration))
}

// IsTimeout checks whether err is caused by an expired deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
