// Package contextkey provides typed keys for request scoped values.
package contextkey

import "context"

// Key stores and retrieves a value of type T in a context.
type Key[T any] string

func (k Key[T]) WithValue(ctx context.Context, t T) context.Context {
	return context.WithValue(ctx, k, t)
}

func (k Key[T]) Value(ctx context.Context) (T, bool) {
	t, ok := ctx.Value(k).(T)
	return t, ok
}
