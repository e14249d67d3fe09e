package nullz

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestApplyAll(t *testing.T) {
	half := AndThen[maybe[int]](func(x int) maybe[int] {
		if x%2 != 0 {
			return none[int]()
		}
		return some(x / 2)
	})

	t.Run("Preserves Input Order", func(t *testing.T) {
		inputs := []maybe[int]{some(8), some(3), none[int](), some(10), some(0)}
		want := []maybe[int]{some(4), none[int](), none[int](), some(5), some(0)}

		for _, limit := range []int{0, 1, 2, 10} {
			got, err := ApplyAll(context.Background(), half, inputs, limit)
			if err != nil {
				t.Fatalf("limit %d: unexpected error: %v", limit, err)
			}
			if len(got) != len(want) {
				t.Fatalf("limit %d: expected %d results, got %d", limit, len(want), len(got))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("limit %d: result %d: expected %+v, got %+v", limit, i, want[i], got[i])
				}
			}
		}
	})

	t.Run("Respects Limit", func(t *testing.T) {
		var running, peak atomic.Int64
		slow := AndThen[maybe[int]](func(x int) maybe[int] {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			return some(x)
		})

		inputs := make([]maybe[int], 12)
		for i := range inputs {
			inputs[i] = some(i)
		}

		if _, err := ApplyAll(context.Background(), slow, inputs, 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := peak.Load(); got > 3 {
			t.Errorf("expected at most 3 concurrent applications, got %d", got)
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		got, err := ApplyAll(context.Background(), half, nil, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no results, got %d", len(got))
		}
	})

	t.Run("Canceled Context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		got, err := ApplyAll(ctx, half, []maybe[int]{some(2), some(4)}, 1)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if got != nil {
			t.Errorf("expected no results, got %v", got)
		}
	})

	t.Run("Zero Pipeline", func(t *testing.T) {
		var empty Pipeline[maybe[int], maybe[int]]
		if _, err := ApplyAll(context.Background(), empty, []maybe[int]{some(1)}, 0); !errors.Is(err, ErrEmptyPipeline) {
			t.Errorf("expected ErrEmptyPipeline, got %v", err)
		}
	})
}
