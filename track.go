package reel

// RepeatMode controls what happens when the playback cursor reaches the edge
// of a track.
type RepeatMode uint8

const (
	// Once plays the track a single time, then moves on.
	Once RepeatMode = iota
	// Loop wraps back to the start while plays remain in the budget.
	Loop
	// PingPong reflects at the far edge and plays back to the start,
	// consuming one budget entry per full out-and-back cycle.
	PingPong
	// Hold clamps at the edge indefinitely without completing or looping.
	Hold
)

// track is one segment of an animation chain. Tracks are configured through
// the builder before playback and are not mutated by the playback engine.
type track struct {
	label    string
	from, to Value
	duration float64 // <= 0 means instant: progress is always 1
	ease     EaseFunc
	mode     RepeatMode
	budget   int // Loop: total plays; PingPong: full cycles; -1 = unbounded
	wait     bool
	onEnd    func()
	onUpdate func(Value)
}

// cursorLoops returns the loop counter a fresh cursor on this track starts
// with. Once tracks always count a single play regardless of budget.
func (t *track) cursorLoops() int {
	if t.mode == Once {
		return 1
	}
	return t.budget
}
