package reel

import "math"

// seqState is the completion state of a transition. The explicit tri-state
// makes rescue semantics testable: a completion callback that rewinds or
// seeks its own manager moves it to seqRescued, which prevents removal.
type seqState uint8

const (
	seqRunning seqState = iota
	seqFinished
	seqRescued
)

// Transition is the live playback state for one named animation chain: its
// track queue, playback cursor, speed, pause flag, and current interpolated
// value. Transitions are created through [Registry.Transition] and driven by
// [Registry.Update]; hosts steer them through the registry's playback
// controls and read results with [Registry.Value].
type Transition struct {
	key    string
	reg    *Registry
	tracks []*track // index 0 always exists

	// Playback cursor. While settled, 0 <= timer <= duration of the current
	// track; transient violations trigger boundary resolution and are fixed
	// up before any engine call returns.
	index int
	timer float64
	dir   float64 // +1 or -1; flips under ping-pong
	loops int     // mirrors the current track's budget; -1 = unbounded

	speed     float64
	paused    bool
	autoStart bool
	value     Value
	lerp      LerpFunc

	onSequenceEnd func()
	state         seqState
	finishing     bool // inside the end-of-sequence callback
	gen           uint64
}

// Key returns the registry key this transition was created under.
func (tr *Transition) Key() string { return tr.key }

// Current returns the most recently computed interpolated value.
func (tr *Transition) Current() Value { return tr.value }

// advance moves the cursor by one host step and resolves any boundary
// crossings. It reports whether the chain finished during this call and the
// manager should be removed from the registry.
func (tr *Transition) advance(step float64) bool {
	if tr.paused || tr.state == seqFinished {
		return false
	}
	tr.timer += step * tr.speed * tr.dir
	tr.resolve(false)
	if tr.state == seqFinished {
		return true
	}
	tr.refreshValue()
	return false
}

// seek adds an arbitrary signed amount to the timer and resolves every
// resulting boundary crossing. Unlike advance, running off the end pauses
// the manager instead of removing it, so a scrubbed-to-the-end transition
// stays inspectable.
func (tr *Transition) seek(amount float64) {
	tr.gen++
	tr.reviveFromFinished()
	tr.timer += amount
	tr.resolve(true)
	if tr.state != seqFinished {
		tr.refreshValue()
	}
}

// rewind reinitializes the cursor to the start of the chain and re-applies
// the auto-start-derived pause state.
func (tr *Transition) rewind() {
	tr.gen++
	tr.initTrack(0, 0, false)
	tr.refreshValue()
	tr.paused = !tr.autoStart
}

// fastForward jumps straight to the end of the chain: last track, timer at
// duration, no loops remaining, current value set to the final to-value
// without easing. The caller removes the manager; there is no rescue path.
func (tr *Transition) fastForward() {
	tr.gen++
	last := len(tr.tracks) - 1
	t := tr.tracks[last]
	tr.index = last
	tr.timer = t.duration
	tr.dir = 1
	tr.loops = 0
	if !t.wait {
		tr.value = t.to
	}
	tr.state = seqFinished
	if tr.onSequenceEnd != nil {
		tr.onSequenceEnd()
	}
}

// reviveFromFinished clears a finished flag when the manager is explicitly
// reinitialized. Inside the end-of-sequence callback this marks a rescue;
// anywhere else it simply puts a parked manager back into play.
func (tr *Transition) reviveFromFinished() {
	if tr.state != seqFinished {
		return
	}
	if tr.finishing {
		tr.state = seqRescued
	} else {
		tr.state = seqRunning
	}
}

// initTrack places the cursor on the given track. A forward entry starts at
// timer = carry (carried overflow, >= 0); a backward entry starts at
// timer = duration + carry (carried underflow, <= 0), with direction -1 for
// ping-pong tracks so their return phase is traversed first. Callers refresh
// the value once the cursor settles, so the observed output never skips a
// step.
func (tr *Transition) initTrack(index int, carry float64, backward bool) {
	tr.gen++
	tr.reviveFromFinished()
	tr.index = index
	t := tr.tracks[index]
	tr.loops = t.cursorLoops()
	if backward {
		tr.timer = t.duration + carry
		if t.mode == PingPong {
			tr.dir = -1
		} else {
			tr.dir = 1
		}
	} else {
		tr.timer = carry
		tr.dir = 1
	}
}

// refreshValue recomputes the interpolated value for the current cursor
// position. Pure in the cursor: the same timer always reproduces the same
// value. Wait segments compute nothing.
func (tr *Transition) refreshValue() {
	t := tr.tracks[tr.index]
	if t.wait {
		return
	}
	p := 1.0
	if t.duration > 0 {
		p = tr.timer / t.duration
		if p < 0 {
			p = 0
		} else if p > 1 {
			p = 1
		}
	}
	e := p
	if t.ease != nil {
		e = t.ease(p)
	}
	tr.value = tr.lerp(t.from, t.to, e)
	if t.onUpdate != nil {
		t.onUpdate(tr.value)
	}
}

// resolve settles the timer back into the current track's [0, duration]
// range, crossing as many track boundaries as the accumulated offset
// demands. Seeks use a strict > threshold so a seek can park exactly on an
// edge, and resolve loop/ping-pong wraps by modulo so arbitrarily large
// amounts settle in constant time.
func (tr *Transition) resolve(seeking bool) {
	for {
		t := tr.tracks[tr.index]
		crossed := tr.timer >= t.duration
		if seeking {
			crossed = tr.timer > t.duration
		}
		switch {
		case crossed:
			if !tr.resolveForward(t, seeking) {
				return
			}
		case tr.timer < 0:
			if !tr.resolveBackward(t, seeking) {
				return
			}
		default:
			return
		}
	}
}

// resolveForward handles one forward boundary crossing. It reports whether
// resolution should continue on the (possibly new) current track.
func (tr *Transition) resolveForward(t *track, seeking bool) bool {
	over := tr.timer - t.duration
	switch t.mode {
	case Hold:
		tr.timer = t.duration
		return false
	case Loop:
		if seeking && tr.loops != 0 {
			tr.wrapInPlace(t)
			return false
		}
		if !seeking {
			if tr.loops > 0 {
				tr.loops--
			}
			if tr.loops != 0 {
				if t.duration <= 0 {
					tr.timer = 0
					tr.dir = 1
					return false
				}
				tr.timer = over
				tr.dir = 1
				return true
			}
		}
	case PingPong:
		if seeking && tr.loops != 0 {
			tr.wrapInPlace(t)
			return false
		}
		if !seeking && tr.loops != 0 {
			if t.duration <= 0 {
				tr.timer = 0
				tr.dir = 1
				return false
			}
			tr.timer = t.duration - over
			if tr.dir > 0 {
				// Far-edge reflection begins the return phase and consumes
				// one cycle from the budget.
				if tr.loops > 0 {
					tr.loops--
				}
				tr.dir = -1
			} else {
				// Rewound out of the return phase back into the forward
				// phase; nothing is consumed.
				tr.dir = 1
			}
			return true
		}
		if tr.loops == 0 && tr.dir < 0 {
			// Exhausted ping-pong scrubbed up out of its return phase:
			// chain-backward motion into the forward phase.
			tr.timer = t.duration - over
			tr.dir = 1
			return true
		}
	}
	return tr.advanceNext(over, seeking)
}

// resolveBackward handles one backward boundary crossing, symmetric to
// resolveForward. At track 0 the cursor settles against the wall; backward
// motion never completes a chain.
func (tr *Transition) resolveBackward(t *track, seeking bool) bool {
	switch t.mode {
	case Hold:
		tr.timer = 0
		return false
	case Loop:
		if seeking && tr.loops != 0 {
			tr.wrapInPlace(t)
			return false
		}
		if !seeking {
			if tr.loops > 0 {
				tr.loops--
			}
			if tr.loops != 0 {
				if t.duration <= 0 {
					tr.timer = 0
					tr.dir = 1
					return false
				}
				tr.timer = t.duration + tr.timer
				tr.dir = 1
				return true
			}
		}
		return tr.retreat(tr.timer)
	case PingPong:
		if seeking && tr.loops != 0 {
			tr.wrapInPlace(t)
			return false
		}
		if tr.loops != 0 {
			if t.duration <= 0 {
				tr.timer = 0
				tr.dir = 1
				return false
			}
			// Near-edge reflection; the budget is only consumed at the far
			// edge, so a full cycle counts once.
			tr.timer = -tr.timer
			tr.dir = -tr.dir
			return true
		}
		if tr.dir < 0 {
			// The final return phase ran out past the start: the cycle is
			// complete and the chain moves forward.
			return tr.advanceNext(-tr.timer, seeking)
		}
		return tr.retreat(tr.timer)
	}
	return tr.retreat(tr.timer)
}

// wrapInPlace is the constant-time seek fast path: loop and ping-pong tracks
// with budget remaining absorb any offset by modulo arithmetic, with no
// track change and no budget consumption.
func (tr *Transition) wrapInPlace(t *track) {
	if t.duration <= 0 {
		tr.timer = 0
		tr.dir = 1
		return
	}
	switch t.mode {
	case Loop:
		tr.timer = floorMod(tr.timer, t.duration)
		tr.dir = 1
	case PingPong:
		w := floorMod(tr.timer, 2*t.duration)
		if w > t.duration {
			tr.timer = t.duration - (w - t.duration)
			tr.dir = -1
		} else {
			tr.timer = w
			tr.dir = 1
		}
	}
}

// advanceNext completes the current track going chain-forward: fires its end
// callback, then either initializes the next track with the carried overflow
// or finishes the whole sequence. Reports whether resolution continues.
func (tr *Transition) advanceNext(carry float64, seeking bool) bool {
	t := tr.tracks[tr.index]
	// Show the completed track's edge value before moving on, so observers
	// see the endpoint even when the next segment is a wait (which computes
	// no value of its own).
	if tr.timer < 0 {
		tr.timer = 0
	} else if tr.timer > t.duration {
		tr.timer = t.duration
	}
	tr.refreshValue()
	if t.onEnd != nil {
		g := tr.gen
		t.onEnd()
		if tr.gen != g || !tr.attached() {
			// The callback redirected playback or removed the manager.
			return false
		}
	}
	if tr.index+1 < len(tr.tracks) {
		tr.initTrack(tr.index+1, carry, false)
		return true
	}
	tr.finish(seeking)
	return false
}

// retreat moves the cursor chain-backward into the previous track, entered
// at its far edge with the carried underflow (<= 0). At track 0 the cursor
// hits the wall: timer 0, direction forward, chain not completed.
func (tr *Transition) retreat(carry float64) bool {
	if tr.index == 0 {
		tr.timer = 0
		tr.dir = 1
		return false
	}
	tr.initTrack(tr.index-1, carry, true)
	return true
}

// finish marks the chain complete at the end of the last track, recomputes
// the final value, and fires onSequenceEnd. A callback that rewinds or seeks
// during the call rescues the manager: the finished state is cleared and the
// caller must not remove or pause it.
func (tr *Transition) finish(seeking bool) {
	last := tr.tracks[len(tr.tracks)-1]
	tr.timer = last.duration
	tr.dir = 1
	tr.loops = 0
	tr.state = seqFinished
	tr.refreshValue()
	if tr.onSequenceEnd != nil {
		tr.finishing = true
		tr.onSequenceEnd()
		tr.finishing = false
	}
	if tr.state == seqRescued {
		tr.state = seqRunning
		return
	}
	if seeking {
		tr.paused = true
	}
}

// attached reports whether this manager is still the registry's entry for
// its key (a callback may have stopped or replaced it mid-resolution).
func (tr *Transition) attached() bool {
	return tr.reg != nil && tr.reg.managers[tr.key] == tr
}

// floorMod returns x modulo m with the result in [0, m), for m > 0.
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
