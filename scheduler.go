package reel

// scheduledAction is one pending delayed call: a remaining delay in update
// steps and the action to run when it elapses.
type scheduledAction struct {
	remaining float64
	fn        func()
}

// After schedules fn to run once the given delay has elapsed, measured in
// the registry's time units (ticks, or seconds in elapsed-time mode). The
// typical use is staggering transition starts:
//
//	for i, key := range keys {
//		r.After(float64(i)*0.1, func() { r.Play(key) })
//	}
//
// A delay <= 0 runs on the next Update. Actions scheduled from inside a
// fired action wait for a later tick.
func (r *Registry) After(delay float64, fn func()) {
	if fn == nil {
		return
	}
	r.scheduled = append(r.scheduled, scheduledAction{remaining: delay, fn: fn})
}

// runScheduled decrements every pending delay by one step and fires the due
// actions. Only entries present at the start of the tick are considered, so
// an action rescheduling itself cannot run twice in one tick.
func (r *Registry) runScheduled(step float64) {
	n := len(r.scheduled)
	if n == 0 {
		return
	}
	var due []func()
	for i := 0; i < n; i++ {
		r.scheduled[i].remaining -= step
		if r.scheduled[i].remaining <= 0 {
			due = append(due, r.scheduled[i].fn)
			r.scheduled[i].fn = nil
		}
	}
	kept := r.scheduled[:0]
	for _, s := range r.scheduled {
		if s.fn != nil {
			kept = append(kept, s)
		}
	}
	r.scheduled = kept
	for _, fn := range due {
		fn()
	}
}
