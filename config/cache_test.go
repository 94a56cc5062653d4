package config

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestMemoSingleFlight(t *testing.T) {
	var cache Memo[string]
	var calls int32
	var release sync.WaitGroup
	release.Add(1)

	load := func() (string, error) {
		atomic.AddInt32(&calls, 1)
		release.Wait()
		return "value", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := cache.Get(load)
			if err != nil {
				t.Errorf("Get error: %v", err)
			}
			if v != "value" {
				t.Errorf("unexpected value %q", v)
			}
		}()
	}

	release.Done()
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected 1 loader call, got %d", got)
	}
}

func TestMemoFailedLoadRetries(t *testing.T) {
	var cache Memo[int]
	calls := 0

	_, err := cache.Get(func() (int, error) {
		calls++
		return 0, errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected error from failed load")
	}

	v, err := cache.Get(func() (int, error) {
		calls++
		return 42, nil
	})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if v != 42 {
		t.Fatalf("expected 42, got %d", v)
	}
	if calls != 2 {
		t.Fatalf("expected 2 loader calls, got %d", calls)
	}
}

func TestMemoInvalidate(t *testing.T) {
	var cache Memo[int]
	calls := 0
	load := func() (int, error) {
		calls++
		return calls, nil
	}

	if v, _ := cache.Get(load); v != 1 {
		t.Fatalf("expected 1, got %d", v)
	}
	if v, _ := cache.Get(load); v != 1 {
		t.Fatalf("expected cached 1, got %d", v)
	}

	cache.Invalidate()

	if v, _ := cache.Get(load); v != 2 {
		t.Fatalf("expected reload to 2, got %d", v)
	}
}
