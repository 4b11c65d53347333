package coop

import "context"

// Service drives the scheduler until every scheduled thread has
// terminated (busy_n reaches zero) or ctx is cancelled. On normal drain
// it force-reinitializes scheduler state so a fresh session can begin,
// mirroring the source library's _sched_init(true).
//
// Service may be called again after it returns; it may not be called
// concurrently with itself on the same Scheduler (the source library's
// single-threaded cooperative model has no notion of two dispatchers
// sharing one pool).
func (s *Scheduler) Service(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	for s.busyN > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.curThrd = (s.curThrd + 1) % ThreadID(len(s.pool))
		t := &s.pool[s.curThrd]

		if s.cfg.EnableIdle {
			s.collapseIdle()
			// collapseIdle may have promoted the current slot; re-read
			// nothing needed since t is a pointer into s.pool.
		}

		switch t.state {
		case stateEmpty, stateHole:
			continue

		case stateIdle:
			if !s.cfg.EnableIdle {
				continue
			}
			if !IsTickOver(s.clock.Now(), t.idleTo) {
				continue
			}
			t.state = stateRun
			s.idleN--
			s.resume(t)

		case stateWait:
			if !s.cfg.EnableWait {
				continue
			}
			if t.infinite || !IsTickOver(s.clock.Now(), t.waitTo) {
				continue
			}
			t.state = stateRun
			s.resume(t)

		case stateRun:
			s.resume(t)

		case stateNew:
			s.depth++
			t.depth = s.depth
			t.switchTick = s.clock.Now()
			s.debugf("coop: dispatch NEW thread #%d %q at depth %d", s.curThrd, t.name, t.depth)
			s.launch(s.curThrd, t)
			s.awaitResult(s.curThrd, t)
		}
	}

	s.reinit()
	return nil
}

// resume hands the baton to an already-carved thread and blocks until it
// yields back or terminates.
func (s *Scheduler) resume(t *tcb) {
	t.resumeCh <- struct{}{}
	s.awaitResult(s.curThrd, t)
}

// awaitResult blocks for one round-trip response from id's goroutine and
// applies its effect: a suspend is a no-op (the loop simply continues),
// a return or panic runs the termination/unwind path.
func (s *Scheduler) awaitResult(id ThreadID, t *tcb) {
	res := <-t.doneCh
	switch res.kind {
	case yieldSuspend:
		s.debugf("coop: thread #%d %q suspended in state %s", id, t.name, t.state)
	case yieldReturn:
		s.debugf("coop: thread #%d %q returned", id, t.name)
		s.terminate(id, t)
	case yieldPanic:
		s.debugf("coop: thread #%d %q panicked: %v", id, t.name, res.panicInfo.Value)
		s.terminate(id, t)
	}
}
