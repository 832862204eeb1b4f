package reel

import "fmt"

// Builder is the fluent configurator returned by [Registry.Transition].
// Calls apply to the chain's current (last) track; [Builder.Next] and
// [Builder.Wait] append further tracks. Builders are only for assembling a
// chain before playback and are discarded afterward.
//
// A new track inherits its from-value from the previous track's to-value, so
// chains continue where the last segment left off unless From overrides it.
type Builder struct {
	tr     *Transition
	virgin bool // current track has not been configured yet
}

func (b *Builder) cur() *track {
	return b.tr.tracks[len(b.tr.tracks)-1]
}

// rejectWait aborts on configuration misuse: value state on a pure
// time-delay segment is a programmer error, not a recoverable condition.
func (b *Builder) rejectWait(what string) {
	t := b.cur()
	if !t.wait {
		return
	}
	panic(fmt.Sprintf("reel: cannot set %s on a wait segment (transition %q)", what, b.tr.key))
}

// syncCursor mirrors budget changes on the first track into the live
// cursor, which was initialized before the builder ran.
func (b *Builder) syncCursor() {
	if len(b.tr.tracks) == 1 {
		b.tr.loops = b.cur().cursorLoops()
	}
}

// Label sets a diagnostic name for the current track.
func (b *Builder) Label(name string) *Builder {
	b.cur().label = name
	return b
}

// From sets the current track's starting endpoint.
func (b *Builder) From(v Value) *Builder {
	b.rejectWait("a from value")
	b.cur().from = v
	b.virgin = false
	b.tr.refreshValue()
	return b
}

// To sets the current track's ending endpoint.
func (b *Builder) To(v Value) *Builder {
	b.rejectWait("a to value")
	b.cur().to = v
	b.virgin = false
	b.tr.refreshValue()
	return b
}

// Duration sets the current track's duration in ticks (frames, or seconds
// in elapsed-time mode). Durations <= 0 make the track instant.
func (b *Builder) Duration(d float64) *Builder {
	b.cur().duration = d
	b.virgin = false
	b.tr.refreshValue()
	return b
}

// Ease sets the current track's easing curve. Nil means linear.
func (b *Builder) Ease(fn EaseFunc) *Builder {
	b.rejectWait("an easing curve")
	b.cur().ease = fn
	b.virgin = false
	b.tr.refreshValue()
	return b
}

// Loop makes the current track repeat times extra plays beyond the first
// (so Loop(2) plays three times in total). A negative count loops forever.
func (b *Builder) Loop(times int) *Builder {
	t := b.cur()
	t.mode = Loop
	if times < 0 {
		t.budget = -1
	} else {
		t.budget = times + 1
	}
	b.virgin = false
	b.syncCursor()
	return b
}

// PingPong makes the current track play out and back for the given number
// of full cycles. A negative count ping-pongs forever.
func (b *Builder) PingPong(cycles int) *Builder {
	t := b.cur()
	t.mode = PingPong
	if cycles < 0 {
		t.budget = -1
	} else {
		t.budget = cycles
	}
	b.virgin = false
	b.syncCursor()
	return b
}

// Hold parks the current track at its edge indefinitely once reached,
// without completing, looping, or firing callbacks.
func (b *Builder) Hold() *Builder {
	b.cur().mode = Hold
	b.virgin = false
	b.syncCursor()
	return b
}

// Wait appends a pure time-delay segment of the given duration. The
// transition's value is not recomputed while a wait segment plays. If the
// current track is still unconfigured it becomes the wait segment instead.
func (b *Builder) Wait(d float64) *Builder {
	if b.virgin {
		t := b.cur()
		t.wait = true
		t.duration = d
		b.virgin = false
		return b
	}
	b.tr.tracks = append(b.tr.tracks, &track{budget: 1, wait: true, duration: d})
	return b
}

// Next appends a new track and makes it current. The new track starts from
// the most recent non-wait track's to-value.
func (b *Builder) Next() *Builder {
	t := &track{budget: 1}
	for i := len(b.tr.tracks) - 1; i >= 0; i-- {
		if prev := b.tr.tracks[i]; !prev.wait {
			t.from = prev.to
			break
		}
	}
	b.tr.tracks = append(b.tr.tracks, t)
	b.virgin = true
	return b
}

// OnTrackEnd sets a callback fired when the current track completes going
// chain-forward (by stepping, seeking, or skipping past it).
func (b *Builder) OnTrackEnd(fn func()) *Builder {
	b.cur().onEnd = fn
	return b
}

// OnUpdate sets a callback receiving the freshly computed value every time
// the current track's value is recomputed.
func (b *Builder) OnUpdate(fn func(Value)) *Builder {
	b.rejectWait("an update callback")
	b.cur().onUpdate = fn
	b.virgin = false
	return b
}

// OnSequenceEnd sets the callback fired once when the whole chain completes
// going forward. Firing on Stop is the default; StopSilent skips it. A
// callback that rewinds or seeks its own transition rescues it from removal.
func (b *Builder) OnSequenceEnd(fn func()) *Builder {
	b.tr.onSequenceEnd = fn
	return b
}

// Bind writes each named field of the tweened composite value into the
// matching destination pointer on every update of the current track.
func (b *Builder) Bind(dest map[string]*float64) *Builder {
	return b.OnUpdate(Bind(dest))
}

// BindFloat writes the tweened scalar value into dest on every update of
// the current track.
func (b *Builder) BindFloat(dest *float64) *Builder {
	return b.OnUpdate(BindFloat(dest))
}

// Speed sets the transition's playback speed multiplier.
func (b *Builder) Speed(v float64) *Builder {
	b.tr.speed = v
	return b
}

// Start begins playback immediately, regardless of the registry's AutoStart
// setting.
func (b *Builder) Start() *Builder {
	b.tr.paused = false
	return b
}

// Paused leaves the transition paused until Play, regardless of the
// registry's AutoStart setting.
func (b *Builder) Paused() *Builder {
	b.tr.paused = true
	return b
}

// Key returns the registry key of the transition under construction.
func (b *Builder) Key() string {
	return b.tr.key
}
