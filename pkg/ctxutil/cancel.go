package ctxutil

import (
	"context"
)

type SimpleKey string

func (k SimpleKey) String() string {
	return string(k)
}

var cancelkey = SimpleKey("cancel")

// CancelContext provides a cancelable context, which can be canceled
// with Cancel.
func CancelContext(ctx context.Context) context.Context {
	return cancelContext(context.WithCancel(ctx))
}

func cancelContext(ctx context.Context, cancel context.CancelFunc) context.Context {
	return context.WithValue(ctx, cancelkey, cancel)
}

// Cancel cancels a context created by this package.
// For other contexts it does nothing.
func Cancel(ctx context.Context) {
	if c, ok := ctx.Value(cancelkey).(context.CancelFunc); ok {
		c()
	}
}
