package throttle

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestGateRefusesReentry(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var runs atomic.Int32
	g := New(func(ctx context.Context) (bool, error) {
		runs.Add(1)
		close(started)
		<-release
		return false, nil
	})
	done := make(chan error)
	go func() { done <- g.Do(context.Background()) }()
	<-started
	if !g.Closed() {
		t.Error("gate open while running")
	}
	if err := g.Do(context.Background()); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if g.Closed() {
		t.Error("gate should re-open")
	}
	if runs.Load() != 1 {
		t.Errorf("runs = %d", runs.Load())
	}
}

func TestGateStaysClosed(t *testing.T) {
	n := 0
	do := New(func(context.Context) (bool, error) {
		n++
		return true, nil
	})
	if err := do.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := do.Do(context.Background()); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}
	do.Open()
	if err := do.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("n = %d", n)
	}
}

func TestGateError(t *testing.T) {
	boom := errors.New("boom")
	f := Throttle(func(context.Context) (bool, error) { return false, boom })
	if err := f(context.Background()); !errors.Is(err, boom) {
		t.Errorf("got %v", err)
	}
	if err := f(context.Background()); !errors.Is(err, boom) {
		t.Errorf("gate did not re-open after error: %v", err)
	}
}

func TestGateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := New(func(context.Context) (bool, error) {
		t.Error("action ran")
		return false, nil
	})
	if err := g.Do(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v", err)
	}
}

func TestGateConcurrent(t *testing.T) {
	var inFlight, maxInFlight atomic.Int32
	g := New(func(context.Context) (bool, error) {
		cur := inFlight.Add(1)
		for {
			m := maxInFlight.Load()
			if cur <= m || maxInFlight.CompareAndSwap(m, cur) {
				break
			}
		}
		inFlight.Add(-1)
		return false, nil
	})
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = g.Do(context.Background())
			}
		}()
	}
	wg.Wait()
	if maxInFlight.Load() != 1 {
		t.Errorf("max in flight = %d", maxInFlight.Load())
	}
}
