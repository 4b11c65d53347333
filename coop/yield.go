package coop

// Yield cooperatively reschedules the calling thread: RUN -> RUN. It
// must be called from inside a scheduled thread's entry routine. The
// very first call a thread makes to any suspension primitive (Yield,
// Idle or Wait) carves its stack footprint; this call is otherwise
// identical to any later one.
func (s *Scheduler) Yield() {
	t, ok := s.currentLocked()
	if !ok {
		s.log.Debugf("coop: Yield called with no running thread")
		return
	}
	s.suspend(t, stateRun)
}

// YieldAfter yields and returns true only if at least limit ticks have
// elapsed since the thread was last resumed; otherwise it returns false
// immediately without yielding. It is meant for voluntary time-sliced
// yielding inside a tight loop.
func (s *Scheduler) YieldAfter(limit Tick) (bool, error) {
	if !s.cfg.EnableYieldAfter {
		return false, featureErr("yield_after")
	}
	t, ok := s.currentLocked()
	if !ok {
		return false, ErrNotRunning
	}
	if !IsTickOver(s.clock.Now(), t.switchTick+limit) {
		return false, nil
	}
	s.suspend(t, stateRun)
	return true, nil
}

// Idle transitions the calling thread RUN -> IDLE for period ticks. A
// zero period degrades to a plain Yield.
func (s *Scheduler) Idle(period Tick) error {
	if !s.cfg.EnableIdle {
		return featureErr("idle")
	}
	t, ok := s.currentLocked()
	if !ok {
		return ErrNotRunning
	}
	if period == 0 {
		s.suspend(t, stateRun)
		return nil
	}
	t.idleTo = s.clock.Now() + period
	s.idleN++
	s.suspend(t, stateIdle)
	return nil
}

// Wait transitions the calling thread RUN -> WAIT on semID. A zero
// timeout waits indefinitely. It returns true if the thread was woken
// by Notify/NotifyAll, false if it timed out.
func (s *Scheduler) Wait(semID uint32, timeout Tick) (bool, error) {
	if !s.cfg.EnableWait {
		return false, featureErr("wait")
	}
	t, ok := s.currentLocked()
	if !ok {
		return false, ErrNotRunning
	}
	t.semID = semID
	t.notified = false
	if timeout == 0 {
		t.infinite = true
	} else {
		t.infinite = false
		t.waitTo = s.clock.Now() + timeout
	}
	s.suspend(t, stateWait)
	return t.notified, nil
}

// Notify wakes the lowest-index thread currently WAITing on semID, if
// any. A notification issued with no matching waiter is discarded.
func (s *Scheduler) Notify(semID uint32) error {
	if !s.cfg.EnableWait {
		return featureErr("notify")
	}
	for i := range s.pool {
		t := &s.pool[i]
		if t.state == stateWait && t.semID == semID {
			t.notified = true
			t.state = stateRun
			s.debugf("coop: notify woke thread #%d on sem %d", i, semID)
			return nil
		}
	}
	return nil
}

// NotifyAll wakes every thread currently WAITing on semID.
func (s *Scheduler) NotifyAll(semID uint32) error {
	if !s.cfg.EnableWait {
		return featureErr("notify_all")
	}
	for i := range s.pool {
		t := &s.pool[i]
		if t.state == stateWait && t.semID == semID {
			t.notified = true
			t.state = stateRun
			s.debugf("coop: notify_all woke thread #%d on sem %d", i, semID)
		}
	}
	return nil
}

// --- package-level default scheduler wrappers -----------------------------

func Yield()                              { Default().Yield() }
func YieldAfter(limit Tick) (bool, error) { return Default().YieldAfter(limit) }
func Idle(period Tick) error              { return Default().Idle(period) }
func Wait(semID uint32, timeout Tick) (bool, error) {
	return Default().Wait(semID, timeout)
}
func Notify(semID uint32) error    { return Default().Notify(semID) }
func NotifyAll(semID uint32) error { return Default().NotifyAll(semID) }
