package async_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/casegauge/pkg/utils/async"
)

func TestMap(t *testing.T) {
	t.Run("Keep input order", func(t *testing.T) {
		items := []int{5, 4, 3, 2, 1}
		results, err := async.Map(context.Background(), items, 3, func(ctx context.Context, n int) (int, error) {
			time.Sleep(time.Duration(n) * time.Millisecond)
			return n * 10, nil
		})
		gt.NoError(t, err)
		gt.Equal(t, results, []int{50, 40, 30, 20, 10})
	})

	t.Run("Empty input", func(t *testing.T) {
		results, err := async.Map(context.Background(), []string{}, 4, func(ctx context.Context, s string) (string, error) {
			return s, nil
		})
		gt.NoError(t, err)
		gt.Equal(t, len(results), 0)
	})

	t.Run("Limit concurrency", func(t *testing.T) {
		var running, peak atomic.Int32
		items := make([]int, 20)
		_, err := async.Map(context.Background(), items, 2, func(ctx context.Context, _ int) (struct{}, error) {
			n := running.Add(1)
			defer running.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			return struct{}{}, nil
		})
		gt.NoError(t, err)
		gt.True(t, peak.Load() <= 2)
	})

	t.Run("Zero workers run sequentially", func(t *testing.T) {
		results, err := async.Map(context.Background(), []int{1, 2}, 0, func(ctx context.Context, n int) (int, error) {
			return n + 1, nil
		})
		gt.NoError(t, err)
		gt.Equal(t, results, []int{2, 3})
	})

	t.Run("Return first error", func(t *testing.T) {
		sentinel := goerr.New("render failed")
		_, err := async.Map(context.Background(), []int{1, 2, 3}, 1, func(ctx context.Context, n int) (int, error) {
			if n == 2 {
				return 0, sentinel
			}
			return n, nil
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, sentinel))
	})

	t.Run("Recover panic", func(t *testing.T) {
		_, err := async.Map(context.Background(), []int{1}, 1, func(ctx context.Context, n int) (int, error) {
			panic("boom")
		})
		gt.Error(t, err)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var calls atomic.Int32
		_, err := async.Map(ctx, []int{1, 2, 3}, 1, func(ctx context.Context, n int) (int, error) {
			calls.Add(1)
			return n, nil
		})
		gt.Error(t, err)
		gt.Equal(t, calls.Load(), int32(0))
	})
}
