package async_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunahq/luna/pkg/async"
)

func TestGo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("returns value", func(t *testing.T) {
		t.Parallel()
		f := async.Go(ctx, func(context.Context) (int, error) { return 42, nil })
		v, err := f.Await(ctx)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
		select {
		case <-f.Done():
		default:
			t.Fatal("Done not closed after Await returned")
		}
	})

	t.Run("returns error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		f := async.Go(ctx, func(context.Context) (string, error) { return "partial", boom })
		v, err := f.Await(ctx)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, "partial", v)
	})

	t.Run("pre-canceled context skips the call", func(t *testing.T) {
		t.Parallel()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		var called atomic.Bool
		f := async.Go(cctx, func(context.Context) (int, error) {
			called.Store(true)
			return 1, nil
		})
		<-f.Done()

		_, err := f.Await(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called.Load())
	})

	t.Run("panic is recovered", func(t *testing.T) {
		t.Parallel()
		f := async.Go(ctx, func(context.Context) (int, error) { panic("oops") })
		v, err := f.Await(ctx)
		assert.ErrorIs(t, err, async.ErrPanicked)
		assert.Contains(t, err.Error(), "oops")
		assert.Zero(t, v)
	})
}

func TestFuture_AwaitAbandoned(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)

	f := async.Go(context.Background(), func(context.Context) (int, error) {
		<-release
		return 1, nil
	})
	select {
	case <-f.Done():
		t.Fatal("future completed before release")
	default:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, async.ErrAbandoned)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAwaitAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("collects in order", func(t *testing.T) {
		t.Parallel()
		futures := []*async.Future[int]{
			async.Go(ctx, func(context.Context) (int, error) {
				time.Sleep(20 * time.Millisecond)
				return 1, nil
			}),
			async.Go(ctx, func(context.Context) (int, error) { return 2, nil }),
			async.Go(ctx, func(context.Context) (int, error) { return 3, nil }),
		}
		values, err := async.AwaitAll(ctx, futures...)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, values)
	})

	t.Run("failure does not hide other values", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		values, err := async.AwaitAll(ctx,
			async.Go(ctx, func(context.Context) (int, error) { return 1, nil }),
			async.Go(ctx, func(context.Context) (int, error) { return 9, boom }),
			async.Go(ctx, func(context.Context) (int, error) { return 3, nil }),
		)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []int{1, 0, 3}, values)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		values, err := async.AwaitAll[int](ctx)
		require.NoError(t, err)
		assert.Empty(t, values)
	})
}
