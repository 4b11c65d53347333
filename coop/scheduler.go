package coop

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Scheduler is the cooperative threading core: a fixed-size pool of
// Thread Control Blocks plus the counters and dispatch state the
// service loop needs. The zero value is not usable; construct one with
// NewScheduler.
type Scheduler struct {
	cfg   Config
	clock Clock
	idle  IdleSleeper
	log   Logger

	pool []tcb

	curThrd ThreadID
	busyN   int
	holeN   int
	idleN   int
	depth   int
}

// NewScheduler creates an independent scheduler instance. Most programs
// only ever need the package-level default scheduler (see Schedule,
// Service, ...); NewScheduler exists for tests and for programs that
// deliberately want more than one independent pool, a generalization
// the source library's single static instance did not offer.
//
// A nil clock, idle or log argument falls back to a wall-clock backed
// Clock, a time.Sleep-backed IdleSleeper, and NopLogger respectively.
func NewScheduler(cfg Config, clock Clock, idle IdleSleeper, log Logger) *Scheduler {
	cfg = cfg.normalize()
	if clock == nil {
		clock = wallClock{}
	}
	if idle == nil {
		idle = wallIdle{}
	}
	if log == nil {
		log = NopLogger
	}
	s := &Scheduler{cfg: cfg, clock: clock, idle: idle, log: log}
	s.reinit()
	return s
}

// wallClock reports ticks as milliseconds since process start. It never
// wraps in practice (time.Since saturates after ~292 years) — plenty for
// tests, and a reasonable stand-in for a hardware millisecond timer.
type wallClock struct{}

var processStart = time.Now()

func (wallClock) Now() Tick { return Tick(time.Since(processStart).Milliseconds()) }

type wallIdle struct{}

func (wallIdle) Idle(ticks Tick) { time.Sleep(time.Duration(ticks) * time.Millisecond) }

func (s *Scheduler) reinit() {
	s.pool = make([]tcb, s.cfg.MaxThreads)
	s.curThrd = noThread
	s.busyN = 0
	s.holeN = 0
	s.idleN = 0
	s.depth = 0
}

// Schedule reserves the first free slot for proc, initializing it to
// NEW. A zero stackSz is replaced by the configured default. Schedule
// is legal both before Service has been called and from within any
// currently running thread.
func (s *Scheduler) Schedule(proc ThreadFunc, name string, stackSz int, arg any) (ThreadID, error) {
	if proc == nil {
		return noThread, ErrInvalidArg
	}
	if stackSz <= 0 {
		stackSz = s.cfg.DefaultStackSize
	}

	for i := range s.pool {
		if s.pool[i].state == stateEmpty {
			s.pool[i] = tcb{
				proc:     proc,
				name:     name,
				arg:      arg,
				stackSz:  stackSz,
				state:    stateNew,
				resumeCh: make(chan struct{}),
				doneCh:   make(chan yieldResult),
			}
			s.busyN++
			s.log.Debugf("coop: scheduled thread #%d %q (stack=%d)", i, name, stackSz)
			return ThreadID(i), nil
		}
	}
	return noThread, ErrLimit
}

// CurrentName returns the display name of the currently executing
// thread, or "" if called outside of a running thread.
func (s *Scheduler) CurrentName() string {
	t, ok := s.currentLocked()
	if !ok {
		return ""
	}
	return t.name
}

// CurrentID returns the slot index of the currently executing thread.
func (s *Scheduler) CurrentID() (ThreadID, bool) {
	if s.curThrd == noThread || int(s.curThrd) >= len(s.pool) {
		return noThread, false
	}
	return s.curThrd, true
}

func (s *Scheduler) currentLocked() (*tcb, bool) {
	if s.curThrd == noThread || int(s.curThrd) >= len(s.pool) {
		return nil, false
	}
	return &s.pool[s.curThrd], true
}

func (s *Scheduler) debugf(format string, args ...any) {
	s.log.Debugf(format, args...)
}

func featureErr(feature string) error {
	return fmt.Errorf("%w: %s", ErrFeatureDisabled, feature)
}

// --- package-level default scheduler -------------------------------------

var (
	defaultOnce  sync.Once
	defaultSched *Scheduler
)

// Default returns the lazily-initialized package-level scheduler, the
// equivalent of the source library's single static sched instance.
func Default() *Scheduler {
	defaultOnce.Do(func() {
		defaultSched = NewScheduler(DefaultConfig(), nil, nil, nil)
	})
	return defaultSched
}

// Schedule schedules proc on the default scheduler. See (*Scheduler).Schedule.
func Schedule(proc ThreadFunc, name string, stackSz int, arg any) (ThreadID, error) {
	return Default().Schedule(proc, name, stackSz, arg)
}

// CurrentName returns the running thread's name on the default scheduler.
func CurrentName() string { return Default().CurrentName() }

// CurrentID returns the running thread's slot on the default scheduler.
func CurrentID() (ThreadID, bool) { return Default().CurrentID() }

// Service drives the default scheduler. See (*Scheduler).Service.
func Service(ctx context.Context) error { return Default().Service(ctx) }
