package reel

import (
	"strings"
	"testing"
)

func mustPanic(t *testing.T, contains string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic mentioning %q", contains)
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, contains) {
			t.Fatalf("panic = %v, want message mentioning %q", r, contains)
		}
	}()
	fn()
}

func TestWaitSegmentRejectsValueState(t *testing.T) {
	r := elapsed()

	mustPanic(t, "from value", func() {
		r.Transition("a").From(Num(0)).To(Num(1)).Duration(1).Wait(1).From(Num(2))
	})
	mustPanic(t, "to value", func() {
		r.Transition("b").From(Num(0)).To(Num(1)).Duration(1).Wait(1).To(Num(2))
	})
	mustPanic(t, "easing curve", func() {
		r.Transition("c").From(Num(0)).To(Num(1)).Duration(1).Wait(1).Ease(Linear)
	})
	mustPanic(t, "update callback", func() {
		r.Transition("d").From(Num(0)).To(Num(1)).Duration(1).Wait(1).OnUpdate(func(Value) {})
	})
}

func TestWaitConvertsVirginTrack(t *testing.T) {
	r := elapsed()
	r.Transition("x").Wait(2).Next().From(Num(0)).To(Num(1)).Duration(1)

	tr := r.managers["x"]
	if len(tr.tracks) != 2 {
		t.Fatalf("track count = %d, want 2 (wait reuses the initial track)", len(tr.tracks))
	}
	if !tr.tracks[0].wait || tr.tracks[0].duration != 2 {
		t.Error("first track should be the wait segment itself")
	}
}

func TestWaitAppendsAfterConfiguredTrack(t *testing.T) {
	r := elapsed()
	r.Transition("x").From(Num(0)).To(Num(1)).Duration(1).Wait(2)

	tr := r.managers["x"]
	if len(tr.tracks) != 2 {
		t.Fatalf("track count = %d, want 2", len(tr.tracks))
	}
	if tr.tracks[0].wait || !tr.tracks[1].wait {
		t.Error("wait after a configured track should append a new segment")
	}
}

func TestNextInheritsFromLastNonWaitTo(t *testing.T) {
	r := elapsed()
	r.Transition("x").
		From(Num(0)).To(Num(7)).Duration(1).
		Wait(1).
		Next().To(Num(10)).Duration(1)

	tr := r.managers["x"]
	if got := tr.tracks[2].from.Float(); got != 7 {
		t.Errorf("inherited from = %g, want 7 (skipping the wait segment)", got)
	}
}

func TestFirstTrackBudgetReachesLiveCursor(t *testing.T) {
	r := elapsed()
	r.Transition("x").From(Num(0)).To(Num(1)).Duration(1).Loop(-1)

	tr := r.managers["x"]
	if tr.loops != -1 {
		t.Errorf("cursor loops = %d, want -1 mirrored from the builder", tr.loops)
	}

	r.Transition("y").From(Num(0)).To(Num(1)).Duration(1).PingPong(3)
	if got := r.managers["y"].loops; got != 3 {
		t.Errorf("cursor loops = %d, want 3", got)
	}
}

func TestBuilderValueTracksConfiguration(t *testing.T) {
	r := elapsed()
	b := r.Transition("x").From(Num(40)).To(Num(90)).Duration(10)

	// Before any update the value sits at the start of the chain.
	if got := r.Float("x", -1); got != 40 {
		t.Errorf("value = %g, want the from value 40", got)
	}
	if b.Key() != "x" {
		t.Errorf("Key() = %q, want x", b.Key())
	}
}

func TestLabelIsDiagnosticOnly(t *testing.T) {
	r := elapsed()
	r.Transition("x").Label("intro").From(Num(0)).To(Num(1)).Duration(10)

	tr := r.managers["x"]
	if tr.tracks[0].label != "intro" {
		t.Errorf("label = %q, want intro", tr.tracks[0].label)
	}
	r.Update(5)
	if got := r.Float("x", -1); got != 0.5 {
		t.Errorf("value = %g, want 0.5 (label has no playback effect)", got)
	}
}
