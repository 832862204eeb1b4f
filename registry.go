package reel

// Config controls a Registry's time mode and defaults. The zero value is a
// valid configuration: unit time steps, transitions created paused, and the
// standard linear interpolation strategy.
type Config struct {
	// UseElapsedTime selects elapsed-time mode: Update consumes its dt
	// argument as the step. When false, every Update call is one unit tick
	// and dt is ignored.
	UseElapsedTime bool
	// AutoStart makes newly created transitions begin playing immediately
	// instead of waiting for Play.
	AutoStart bool
	// DefaultLerp is the interpolation strategy used by transitions that do
	// not supply their own. Nil means [Lerp].
	DefaultLerp LerpFunc
}

// Registry multiplexes many independent named transitions through one
// per-tick Update call. Registries are plain values owned by whoever drives
// the update loop — one per animation domain, or one app-wide; there is no
// hidden global instance.
//
// All methods must be called from the host's single update goroutine; the
// registry does no locking. Callbacks fired during Update may freely create,
// stop, or reinitialize transitions, including their own.
type Registry struct {
	cfg       Config
	managers  map[string]*Transition
	order     []string // insertion order, for deterministic iteration
	scheduled []scheduledAction
}

// New creates a Registry with the given configuration.
func New(cfg Config) *Registry {
	return &Registry{
		cfg:      cfg,
		managers: make(map[string]*Transition),
	}
}

// Transition creates (or replaces) the transition under key and returns a
// builder for configuring its track chain. An optional interpolation
// strategy overrides the registry default for this transition only.
func (r *Registry) Transition(key string, lerp ...LerpFunc) *Builder {
	lf := r.cfg.DefaultLerp
	if lf == nil {
		lf = Lerp
	}
	if len(lerp) > 0 && lerp[0] != nil {
		lf = lerp[0]
	}
	tr := &Transition{
		key:       key,
		reg:       r,
		tracks:    []*track{{budget: 1}},
		dir:       1,
		loops:     1,
		speed:     1,
		paused:    !r.cfg.AutoStart,
		autoStart: r.cfg.AutoStart,
		lerp:      lf,
	}
	if _, exists := r.managers[key]; !exists {
		r.order = append(r.order, key)
	}
	r.managers[key] = tr
	return &Builder{tr: tr, virgin: true}
}

// Update advances every unpaused transition by one step and runs due
// scheduled actions. In elapsed-time mode the step is dt; otherwise each
// call is one unit tick. Transitions whose chains complete during the pass
// are removed, unless a completion callback rescues them.
func (r *Registry) Update(dt float64) {
	step := 1.0
	if r.cfg.UseElapsedTime {
		step = dt
	}
	r.runScheduled(step)
	// Snapshot the key list: callbacks may add or remove managers mid-pass,
	// and each key is re-checked before use so nothing is double-processed.
	keys := append([]string(nil), r.order...)
	for _, k := range keys {
		tr, ok := r.managers[k]
		if !ok {
			continue
		}
		if tr.advance(step) {
			r.removeManager(tr)
		}
	}
}

// each applies fn to every resolved manager. With no keys it applies to all
// active managers; missing keys are skipped silently.
func (r *Registry) each(keys []string, fn func(*Transition)) {
	if len(keys) == 0 {
		keys = append([]string(nil), r.order...)
	}
	for _, k := range keys {
		if tr, ok := r.managers[k]; ok {
			fn(tr)
		}
	}
}

// removeManager deletes a manager, but only while it is still the current
// entry for its key — a callback may already have replaced it.
func (r *Registry) removeManager(tr *Transition) {
	if cur, ok := r.managers[tr.key]; !ok || cur != tr {
		return
	}
	delete(r.managers, tr.key)
	for i, k := range r.order {
		if k == tr.key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Play resumes the named transitions, or all of them with no keys.
func (r *Registry) Play(keys ...string) {
	r.each(keys, func(tr *Transition) { tr.paused = false })
}

// Pause suspends the named transitions, or all of them with no keys.
// Update is a no-op for a paused transition; pause is level-triggered.
func (r *Registry) Pause(keys ...string) {
	r.each(keys, func(tr *Transition) { tr.paused = true })
}

// Stop removes the named transitions immediately, firing each one's
// end-of-sequence callback first. Use StopSilent to skip the callbacks.
func (r *Registry) Stop(keys ...string) { r.stop(true, keys) }

// StopSilent removes the named transitions immediately without firing their
// end-of-sequence callbacks.
func (r *Registry) StopSilent(keys ...string) { r.stop(false, keys) }

func (r *Registry) stop(trigger bool, keys []string) {
	r.each(keys, func(tr *Transition) {
		if trigger && tr.state == seqRunning && !tr.finishing && tr.onSequenceEnd != nil {
			tr.onSequenceEnd()
		}
		r.removeManager(tr)
	})
}

// FastForward jumps the named transitions straight to their final values,
// fires their end-of-sequence callbacks, and removes them. Unlike natural
// completion there is no rescue path.
func (r *Registry) FastForward(keys ...string) {
	r.each(keys, func(tr *Transition) {
		tr.fastForward()
		r.removeManager(tr)
	})
}

// Rewind reinitializes the named transitions to the start of their chains.
// The pause state is re-derived from the registry's AutoStart setting.
func (r *Registry) Rewind(keys ...string) {
	r.each(keys, func(tr *Transition) { tr.rewind() })
}

// Skip moves the named transitions one track forward. Skipping the last
// track behaves like FastForward for that transition.
func (r *Registry) Skip(keys ...string) {
	r.each(keys, func(tr *Transition) {
		if tr.index+1 < len(tr.tracks) {
			tr.initTrack(tr.index+1, 0, false)
			tr.refreshValue()
			return
		}
		tr.fastForward()
		r.removeManager(tr)
	})
}

// Back moves the named transitions one track backward, or restarts the
// first track when already on it.
func (r *Registry) Back(keys ...string) {
	r.each(keys, func(tr *Transition) {
		if tr.index > 0 {
			tr.initTrack(tr.index-1, 0, false)
		} else {
			tr.initTrack(0, 0, false)
		}
		tr.refreshValue()
	})
}

// Seek scrubs the named transitions by a signed amount, resolving every
// boundary crossing the offset implies. A seek that runs off the end leaves
// the transition finished and paused rather than removing it.
func (r *Registry) Seek(amount float64, keys ...string) {
	r.each(keys, func(tr *Transition) { tr.seek(amount) })
}

// SetSpeed sets the playback speed multiplier for the named transitions.
// Negative speeds play backward; magnitude scales the time step.
func (r *Registry) SetSpeed(v float64, keys ...string) {
	r.each(keys, func(tr *Transition) { tr.speed = v })
}

// Speed returns the playback speed of the named transition and whether it
// exists.
func (r *Registry) Speed(key string) (float64, bool) {
	tr, ok := r.managers[key]
	if !ok {
		return 0, false
	}
	return tr.speed, true
}

// ReactSpeed eases the named transition's playback speed toward target by
// the given smoothing factor in [0, 1]. Call it once per tick to make speed
// follow an input spring-like; it is a convenience over SetSpeed.
func (r *Registry) ReactSpeed(key string, target, smoothing float64) {
	tr, ok := r.managers[key]
	if !ok {
		return
	}
	if smoothing < 0 {
		smoothing = 0
	} else if smoothing > 1 {
		smoothing = 1
	}
	tr.speed += (target - tr.speed) * smoothing
}

// Value returns the named transition's current value, or fallback if no
// such transition is active.
func (r *Registry) Value(key string, fallback Value) Value {
	if tr, ok := r.managers[key]; ok {
		return tr.value
	}
	return fallback
}

// Float returns the named transition's current scalar value, or fallback if
// the transition is missing or its value is a composite.
func (r *Registry) Float(key string, fallback float64) float64 {
	if tr, ok := r.managers[key]; ok && tr.value.IsScalar() {
		return tr.value.Float()
	}
	return fallback
}

// IsActive reports whether every named transition is active. With no keys it
// reports whether any transition is active at all.
func (r *Registry) IsActive(keys ...string) bool {
	if len(keys) == 0 {
		return len(r.managers) > 0
	}
	for _, k := range keys {
		if _, ok := r.managers[k]; !ok {
			return false
		}
	}
	return true
}

// IsPaused reports whether the named transition exists and is paused.
func (r *Registry) IsPaused(key string) bool {
	tr, ok := r.managers[key]
	return ok && tr.paused
}

// ActiveKeys returns the active transition keys in creation order.
func (r *Registry) ActiveKeys() []string {
	return append([]string(nil), r.order...)
}
