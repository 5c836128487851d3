package registry

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

type closeRecorder struct {
	name   string
	closed *[]string
}

func (c *closeRecorder) Close() error {
	*c.closed = append(*c.closed, c.name)
	return nil
}

func TestGetLoadsOnce(t *testing.T) {
	r := New()
	var loads int32
	r.Register("speech", func(ctx context.Context) (any, error) {
		atomic.AddInt32(&loads, 1)
		return "model", nil
	})

	ctx := context.Background()
	for range 3 {
		v, err := r.Get(ctx, "speech")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if v != "model" {
			t.Fatalf("Get() = %v, want model", v)
		}
	}

	if loads != 1 {
		t.Errorf("loader ran %d times, want 1", loads)
	}
}

func TestGetConcurrent(t *testing.T) {
	r := New()
	var loads int32
	r.Register("speech", func(ctx context.Context) (any, error) {
		atomic.AddInt32(&loads, 1)
		return "model", nil
	})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Get(context.Background(), "speech"); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if loads != 1 {
		t.Errorf("loader ran %d times under concurrency, want 1", loads)
	}
}

func TestGetUnknownName(t *testing.T) {
	r := New()
	if _, err := r.Get(context.Background(), "nope"); err == nil {
		t.Error("Get() error = nil, want error for unknown name")
	}
}

func TestFailedLoadIsRetried(t *testing.T) {
	r := New()
	var loads int32
	r.Register("speech", func(ctx context.Context) (any, error) {
		if atomic.AddInt32(&loads, 1) == 1 {
			return nil, errors.New("transient")
		}
		return "model", nil
	})

	ctx := context.Background()
	if _, err := r.Get(ctx, "speech"); err == nil {
		t.Fatal("first Get() should fail")
	}
	if _, err := r.Get(ctx, "speech"); err != nil {
		t.Fatalf("second Get() error = %v, want retry success", err)
	}
}

func TestShutdownClosesInReverseOrder(t *testing.T) {
	r := New()
	var closed []string
	r.Register("first", func(ctx context.Context) (any, error) {
		return &closeRecorder{name: "first", closed: &closed}, nil
	})
	r.Register("second", func(ctx context.Context) (any, error) {
		return &closeRecorder{name: "second", closed: &closed}, nil
	})

	ctx := context.Background()
	if _, err := r.Get(ctx, "first"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Get(ctx, "second"); err != nil {
		t.Fatal(err)
	}

	if err := r.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	if len(closed) != 2 || closed[0] != "second" || closed[1] != "first" {
		t.Errorf("close order = %v, want [second first]", closed)
	}
}

func TestRegisterReplacementClosesOldInstance(t *testing.T) {
	r := New()
	var closed []string
	r.Register("speech", func(ctx context.Context) (any, error) {
		return &closeRecorder{name: "old", closed: &closed}, nil
	})

	ctx := context.Background()
	if _, err := r.Get(ctx, "speech"); err != nil {
		t.Fatal(err)
	}

	r.Register("speech", func(ctx context.Context) (any, error) {
		return "new", nil
	})

	if len(closed) != 1 || closed[0] != "old" {
		t.Errorf("closed = %v, want the displaced instance closed", closed)
	}
	if v, _ := r.Get(ctx, "speech"); v != "new" {
		t.Errorf("Get() = %v, want instance from the replacement loader", v)
	}
}

func TestReload(t *testing.T) {
	r := New()
	var loads int32
	r.Register("speech", func(ctx context.Context) (any, error) {
		return atomic.AddInt32(&loads, 1), nil
	})

	ctx := context.Background()
	if v, _ := r.Get(ctx, "speech"); v != int32(1) {
		t.Fatalf("Get() = %v, want 1", v)
	}

	if err := r.Reload("speech"); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if v, _ := r.Get(ctx, "speech"); v != int32(2) {
		t.Errorf("Get() after Reload = %v, want fresh instance", v)
	}
}
