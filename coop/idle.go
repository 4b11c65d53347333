package coop

// collapseIdle implements the system-idle collapse pass (spec §4.4):
// when every non-hole busy thread is IDLE, there is no work until the
// earliest idle deadline elapses, so the dispatcher sleeps once for the
// minimum remaining period (wrap-safe) rather than busy-spinning through
// the pool. It repeats until at least one thread becomes RUN or no
// slots remain idle-only, and promotes any slot whose deadline has
// already passed without sleeping at all.
func (s *Scheduler) collapseIdle() {
	for {
		nonHoleBusy := s.busyN - s.holeN
		if s.idleN == 0 || s.idleN != nonHoleBusy {
			return
		}

		now := s.clock.Now()
		var minRemaining Tick
		haveMin := false
		anyDue := false

		for i := range s.pool {
			t := &s.pool[i]
			if t.state != stateIdle {
				continue
			}
			if IsTickOver(now, t.idleTo) {
				anyDue = true
				continue
			}
			remaining := t.idleTo - now
			if !haveMin || remaining < minRemaining {
				minRemaining = remaining
				haveMin = true
			}
		}

		if !anyDue && haveMin {
			s.debugf("coop: system idle for %d ticks (%d idle threads)", minRemaining, s.idleN)
			s.idle.Idle(minRemaining)
			now = s.clock.Now()
		}

		promoted := false
		for i := range s.pool {
			t := &s.pool[i]
			if t.state != stateIdle {
				continue
			}
			if IsTickOver(now, t.idleTo) {
				t.state = stateRun
				s.idleN--
				promoted = true
			}
		}
		if !promoted {
			return
		}
	}
}
