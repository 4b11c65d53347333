package coop

// terminate handles a thread's entry routine returning (or panicking,
// which is treated identically once recovered). It implements the
// source library's two termination cases:
//
//   - not topmost: the slot becomes a HOLE, buried under a still-live
//     thread's stack, and nothing else changes.
//   - topmost: the slot is freed, and every contiguous HOLE directly
//     beneath it is coalesced and freed too, in one step.
//
// In the source library this ends with a longjmp that physically
// unwinds the shared main stack back to the reclaimed region. This
// rendition has no shared main stack to unwind (each thread already has
// its own goroutine stack, reclaimed independently by the Go runtime),
// so the "unwind" here is exactly the bookkeeping half of the
// algorithm: recomputing depth, coalescing holes, and releasing the
// diagnostic stackFootprint buffers of every slot that becomes EMPTY.
func (s *Scheduler) terminate(id ThreadID, t *tcb) {
	if t.depth < s.depth {
		t.state = stateHole
		s.holeN++
		s.debugf("coop: thread #%d %q became a hole at depth %d (top=%d)", id, t.name, t.depth, s.depth)
		return
	}

	s.reclaimTopmost(id, t)
}

// reclaimTopmost implements _mark_unwind_thrds: the terminating slot is
// topmost, so free it, recompute the new top-of-stack depth over the
// remaining started (RUN/IDLE/WAIT) slots, and free every HOLE above
// that new depth. The hole immediately above the new depth, if any, is
// reported as the unwind target purely for diagnostics — nothing is
// jumped to in this rendition.
func (s *Scheduler) reclaimTopmost(id ThreadID, t *tcb) {
	t.stackFootprint = nil
	t.state = stateEmpty
	s.busyN--

	newDepth := 0
	for i := range s.pool {
		switch s.pool[i].state {
		case stateRun, stateIdle, stateWait:
			if s.pool[i].depth > newDepth {
				newDepth = s.pool[i].depth
			}
		}
	}

	unwindTarget := id
	if newDepth+1 < s.depth {
		for i := range s.pool {
			h := &s.pool[i]
			if h.state != stateHole {
				continue
			}
			if h.depth <= newDepth {
				continue
			}
			if h.depth == newDepth+1 {
				unwindTarget = ThreadID(i)
			}
			h.stackFootprint = nil
			h.state = stateEmpty
			s.busyN--
			s.holeN--
		}
	}

	s.depth = newDepth
	s.debugf("coop: thread #%d %q reclaimed at depth %d, new top=%d, unwind target=#%d",
		id, t.name, t.depth, s.depth, unwindTarget)

	*t = tcb{state: stateEmpty}
}
