// Package reel is a keyframe-free tween and animation-sequencing engine for
// step-driven hosts such as [Ebitengine].
//
// Reel animates named values over time. Each named transition owns a chain of
// tracks — segments with their own endpoints, duration, easing curve, and
// repeat mode — and a playback cursor that can be driven like a tape deck:
// play, pause, seek, rewind, skip, back, and fast-forward all work at any
// point, whether the chain got there by per-frame stepping or by an arbitrary
// scrub.
//
// # Quick start
//
// Create a [Registry], configure a transition with the fluent builder, and
// call [Registry.Update] once per host tick:
//
//	r := reel.New(reel.Config{UseElapsedTime: true, AutoStart: true})
//
//	r.Transition("fade").
//		From(reel.Num(0)).To(reel.Num(1)).
//		Duration(0.5).Ease(reel.OutQuad)
//
//	// each frame:
//	r.Update(dt)
//	alpha := r.Float("fade", 1)
//
// Chains are built by appending tracks with [Builder.Next] and
// [Builder.Wait]:
//
//	r.Transition("bounce").
//		From(reel.Num(0)).To(reel.Num(120)).Duration(0.8).Ease(reel.OutBounce).
//		Next().Wait(0.25).
//		Next().To(reel.Num(0)).Duration(0.4).Ease(reel.InQuad).
//		OnSequenceEnd(func() { log.Println("done") })
//
// Values are either scalars ([Num]) or one-level named-field composites
// ([Fields]), interpolated field-wise:
//
//	r.Transition("pos").
//		From(reel.Fields(map[string]float64{"x": 0, "y": 0})).
//		To(reel.Fields(map[string]float64{"x": 10, "y": 20})).
//		Duration(1)
//
// # Repeat modes
//
// Tracks play once by default. [Builder.Loop] repeats a track (n extra
// plays, or forever with a negative count), [Builder.PingPong] reflects at
// the far edge, and [Builder.Hold] parks at the end value indefinitely.
// Loops and ping-pongs absorb arbitrarily large seeks in constant time.
//
// # Easing
//
// The full catalog of standard curves is included (sine, quad, cubic, quart,
// quint, expo, circ, elastic, back, bounce — each In/Out/InOut), plus
// adapters for externally authored curve assets ([CurveEase], [LoadCurves])
// and for [gween] easing functions ([FromGween]).
//
// # Playback model
//
// Everything is single-threaded and cooperative: all mutation happens inside
// calls the host makes from its own update loop. Callbacks fired during an
// update may freely stop, rewind, or replace transitions — including their
// own — and a completion callback that rewinds or seeks its manager rescues
// it from removal.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package reel
