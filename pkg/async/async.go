package async

import (
	"context"
	"fmt"
)

// Future holds the eventual outcome of a function started with Go.
type Future[T any] struct {
	value T
	err   error
	done  chan struct{}
}

// Go runs fn in its own goroutine and returns a Future for its outcome.
// A context that is already canceled completes the future without calling fn.
// A panic inside fn is recovered and reported as ErrPanicked.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				var zero T
				f.value = zero
				f.err = fmt.Errorf("%w: %v", ErrPanicked, r)
			}
		}()

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.value, f.err = fn(ctx)
	}()

	return f
}

// Done is closed once the future has completed.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future completes or ctx is done.
// When ctx ends first the zero value is returned with ErrAbandoned joined to ctx.Err().
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrAbandoned, ctx.Err())
	}
}

// AwaitAll waits for every future in order and returns their values.
// Values of futures that failed are left at their zero value;
// the first error encountered is returned after all futures finished.
func AwaitAll[T any](ctx context.Context, futures ...*Future[T]) ([]T, error) {
	values := make([]T, len(futures))
	var first error
	for i, f := range futures {
		v, err := f.Await(ctx)
		if err != nil {
			if first == nil {
				first = err
			}
			continue
		}
		values[i] = v
	}
	return values, first
}
