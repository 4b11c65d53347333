package coop

// launch starts id's entry routine on its own goroutine. The goroutine
// is the stand-in for the source library's carved main-stack frame: it
// owns a real, independently growable Go stack for the thread's entire
// lifetime, which is what makes the baton handoff in suspend/resume
// safe to park and resume in any order.
//
// launch does not itself allocate the diagnostic stackFootprint buffer;
// that happens in carve, invoked the first time the thread suspends
// (see suspend below), exactly where the source library performs its
// alloca — not before, since a thread that never yields never needs one.
func (s *Scheduler) launch(id ThreadID, t *tcb) {
	proc, arg, name := t.proc, t.arg, t.name

	go func() {
		defer func() {
			if r := recover(); r != nil {
				info := &PanicInfo{ThreadID: id, Name: name, Value: r, Stack: captureStack()}
				t.doneCh <- yieldResult{kind: yieldPanic, panicInfo: info}
			}
		}()
		proc(arg)
		t.doneCh <- yieldResult{kind: yieldReturn}
	}()
}

// carve reserves and zero-initializes the thread's diagnostic stack
// footprint. It runs exactly once per thread, at first suspension.
func (s *Scheduler) carve(t *tcb) {
	t.stackFootprint = make([]byte, t.stackSz)
	s.debugf("coop: carved %d-byte footprint for thread #%d %q at depth %d", t.stackSz, s.curThrd, t.name, t.depth)
}

// suspend is the common body of Yield, Idle and Wait: it transitions the
// calling thread to nextState, carving its footprint on first use, hands
// the baton back to the dispatcher, and blocks until resumed.
//
// It must be called only from the goroutine currently holding the
// baton — i.e. from inside a running thread's entry routine.
func (s *Scheduler) suspend(t *tcb, nextState state) {
	if t.state == stateNew {
		s.carve(t)
	}
	t.state = nextState
	t.doneCh <- yieldResult{kind: yieldSuspend}
	<-t.resumeCh
	t.switchTick = s.clock.Now()
}
