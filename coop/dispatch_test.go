package coop

import (
	"context"
	"testing"
	"time"
)

func TestSingleThreadYieldsThenReturns(t *testing.T) {
	s := NewScheduler(DefaultConfig(), nil, nil, nil)
	var yields int
	if _, err := s.Schedule(func(any) {
		for i := 0; i < 3; i++ {
			yields++
			s.Yield()
		}
	}, "solo", 0, nil); err != nil {
		t.Fatalf("Schedule() err = %v, want nil", err)
	}

	if err := s.Service(context.Background()); err != nil {
		t.Fatalf("Service() err = %v, want nil", err)
	}
	if yields != 3 {
		t.Fatalf("yields = %d, want 3", yields)
	}
}

func TestTwoThreadsInterleave(t *testing.T) {
	s := NewScheduler(DefaultConfig(), nil, nil, nil)
	var order []string
	s.Schedule(func(any) {
		order = append(order, "a1")
		s.Yield()
		order = append(order, "a2")
	}, "a", 0, nil)
	s.Schedule(func(any) {
		order = append(order, "b1")
		s.Yield()
		order = append(order, "b2")
	}, "b", 0, nil)

	if err := s.Service(context.Background()); err != nil {
		t.Fatalf("Service() err = %v, want nil", err)
	}

	want := []string{"a1", "b1", "a2", "b2"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestServiceDrainReinitializesPool(t *testing.T) {
	s := NewScheduler(DefaultConfig(), nil, nil, nil)
	s.Schedule(func(any) {}, "a", 0, nil)
	if err := s.Service(context.Background()); err != nil {
		t.Fatalf("Service() err = %v, want nil", err)
	}
	if s.busyN != 0 || s.holeN != 0 || s.idleN != 0 || s.depth != 0 {
		t.Fatalf("scheduler not reinitialized after drain: busyN=%d holeN=%d idleN=%d depth=%d",
			s.busyN, s.holeN, s.idleN, s.depth)
	}
	if s.curThrd != noThread {
		t.Fatalf("curThrd = %d, want noThread", s.curThrd)
	}
}

func TestServiceCancelledByContext(t *testing.T) {
	s := NewScheduler(DefaultConfig(), nil, nil, nil)
	s.Schedule(func(any) {
		for {
			s.Yield()
		}
	}, "looper", 0, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Service(ctx) }()

	cancel()

	select {
	case err := <-done:
		if err == nil {
			t.Fatalf("Service() err = nil, want non-nil after cancellation")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Service did not return after context cancellation")
	}
}

func TestServiceNilContextDefaultsToBackground(t *testing.T) {
	s := NewScheduler(DefaultConfig(), nil, nil, nil)
	var ran bool
	s.Schedule(func(any) { ran = true }, "a", 0, nil)
	if err := s.Service(nil); err != nil {
		t.Fatalf("Service(nil) err = %v, want nil", err)
	}
	if !ran {
		t.Fatalf("thread did not run with a nil context")
	}
}
