// Command coopdemo drives a handful of canned scenarios through the coop
// scheduler and prints its debug trace, so the round-robin dispatch,
// idle collapsing, and hole-coalescing behavior can be watched rather than
// only read about.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"coopthreads/coop"
	"coopthreads/internal/buildinfo"
)

type stdLogger struct{ prefix string }

func (l stdLogger) Debugf(format string, args ...any) {
	log.Printf(l.prefix+format, args...)
}

func main() {
	var (
		scenario = flag.String("scenario", "interleave", "scenario to run: interleave, holes, idle, wait")
		version  = flag.Bool("version", false, "print build info and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Short())
		return
	}

	cfg := coop.DefaultConfig()
	sched := coop.NewScheduler(cfg, nil, nil, stdLogger{prefix: "coopdemo: "})

	if err := runScenario(sched, *scenario); err != nil {
		fmt.Fprintf(os.Stderr, "coopdemo: %v\n", err)
		os.Exit(1)
	}
}

func runScenario(s *coop.Scheduler, name string) error {
	switch name {
	case "interleave":
		return interleaveScenario(s)
	case "holes":
		return holesScenario(s)
	case "idle":
		return idleScenario(s)
	case "wait":
		return waitScenario(s)
	default:
		return fmt.Errorf("unknown scenario %q", name)
	}
}

func interleaveScenario(s *coop.Scheduler) error {
	worker := func(name string) coop.ThreadFunc {
		return func(any) {
			for i := 0; i < 3; i++ {
				fmt.Printf("%s: step %d\n", name, i)
				s.Yield()
			}
		}
	}
	if _, err := s.Schedule(worker("alpha"), "alpha", 0, nil); err != nil {
		return err
	}
	if _, err := s.Schedule(worker("beta"), "beta", 0, nil); err != nil {
		return err
	}
	return s.Service(context.Background())
}

func holesScenario(s *coop.Scheduler) error {
	outer := func(any) {
		fmt.Println("outer: starting")
		s.Yield()
		fmt.Println("outer: finishing under a live inner thread (leaves a hole)")
	}
	inner := func(any) {
		fmt.Println("inner: starting")
		s.Yield()
		fmt.Println("inner: finishing (reclaims itself and the hole beneath it)")
	}
	if _, err := s.Schedule(outer, "outer", 0, nil); err != nil {
		return err
	}
	if _, err := s.Schedule(inner, "inner", 0, nil); err != nil {
		return err
	}
	return s.Service(context.Background())
}

func idleScenario(s *coop.Scheduler) error {
	sleeper := func(period coop.Tick) coop.ThreadFunc {
		return func(any) {
			fmt.Printf("sleeping for %d ticks\n", period)
			if err := s.Idle(period); err != nil {
				fmt.Fprintf(os.Stderr, "idle failed: %v\n", err)
				return
			}
			fmt.Println("woke up")
		}
	}
	if _, err := s.Schedule(sleeper(50), "long-sleeper", 0, nil); err != nil {
		return err
	}
	if _, err := s.Schedule(sleeper(10), "short-sleeper", 0, nil); err != nil {
		return err
	}
	return s.Service(context.Background())
}

func waitScenario(s *coop.Scheduler) error {
	const sem = 1
	waiter := func(any) {
		fmt.Println("waiter: blocking on semaphore")
		woken, err := s.Wait(sem, coop.Tick(2*time.Second/time.Millisecond))
		if err != nil {
			fmt.Fprintf(os.Stderr, "wait failed: %v\n", err)
			return
		}
		fmt.Printf("waiter: woken=%v\n", woken)
	}
	notifier := func(any) {
		s.Yield()
		fmt.Println("notifier: waking the waiter")
		if err := s.Notify(sem); err != nil {
			fmt.Fprintf(os.Stderr, "notify failed: %v\n", err)
		}
	}
	if _, err := s.Schedule(waiter, "waiter", 0, nil); err != nil {
		return err
	}
	if _, err := s.Schedule(notifier, "notifier", 0, nil); err != nil {
		return err
	}
	return s.Service(context.Background())
}
