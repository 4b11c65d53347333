package coop

import "testing"

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.MaxThreads != 32 {
		t.Fatalf("MaxThreads = %d, want 32", c.MaxThreads)
	}
	if c.DefaultStackSize != 256 {
		t.Fatalf("DefaultStackSize = %d, want 256", c.DefaultStackSize)
	}
	if !c.EnableIdle || !c.EnableWait || !c.EnableYieldAfter {
		t.Fatalf("expected all optional features enabled by default, got %+v", c)
	}
}

func TestConfigNormalizeFillsZeroes(t *testing.T) {
	c := Config{}.normalize()
	if want := DefaultConfig().MaxThreads; c.MaxThreads != want {
		t.Fatalf("MaxThreads = %d, want %d", c.MaxThreads, want)
	}
	if want := DefaultConfig().DefaultStackSize; c.DefaultStackSize != want {
		t.Fatalf("DefaultStackSize = %d, want %d", c.DefaultStackSize, want)
	}
}

func TestConfigNormalizeKeepsExplicitValues(t *testing.T) {
	c := Config{MaxThreads: 4, DefaultStackSize: 64}.normalize()
	if c.MaxThreads != 4 {
		t.Fatalf("MaxThreads = %d, want 4", c.MaxThreads)
	}
	if c.DefaultStackSize != 64 {
		t.Fatalf("DefaultStackSize = %d, want 64", c.DefaultStackSize)
	}
}

func TestIdleFunc(t *testing.T) {
	var got Tick
	var s IdleSleeper = IdleFunc(func(ticks Tick) { got = ticks })
	s.Idle(7)
	if got != 7 {
		t.Fatalf("got = %d, want 7", got)
	}
}
