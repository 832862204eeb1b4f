package reel

import (
	"math"
	"testing"
)

const easeEps = 1e-9

var allEases = []struct {
	name string
	fn   EaseFunc
}{
	{"Linear", Linear},
	{"InSine", InSine}, {"OutSine", OutSine}, {"InOutSine", InOutSine},
	{"InQuad", InQuad}, {"OutQuad", OutQuad}, {"InOutQuad", InOutQuad},
	{"InCubic", InCubic}, {"OutCubic", OutCubic}, {"InOutCubic", InOutCubic},
	{"InQuart", InQuart}, {"OutQuart", OutQuart}, {"InOutQuart", InOutQuart},
	{"InQuint", InQuint}, {"OutQuint", OutQuint}, {"InOutQuint", InOutQuint},
	{"InExpo", InExpo}, {"OutExpo", OutExpo}, {"InOutExpo", InOutExpo},
	{"InCirc", InCirc}, {"OutCirc", OutCirc}, {"InOutCirc", InOutCirc},
	{"InBack", InBack}, {"OutBack", OutBack}, {"InOutBack", InOutBack},
	{"InElastic", InElastic}, {"OutElastic", OutElastic}, {"InOutElastic", InOutElastic},
	{"InBounce", InBounce}, {"OutBounce", OutBounce}, {"InOutBounce", InOutBounce},
}

func TestEaseEndpoints(t *testing.T) {
	for _, e := range allEases {
		if got := e.fn(0); math.Abs(got) > easeEps {
			t.Errorf("%s(0) = %g, want 0", e.name, got)
		}
		if got := e.fn(1); math.Abs(got-1) > easeEps {
			t.Errorf("%s(1) = %g, want 1", e.name, got)
		}
	}
}

func TestEaseKnownValues(t *testing.T) {
	// Exact polynomial midpoints.
	if got := InQuad(0.5); got != 0.25 {
		t.Errorf("InQuad(0.5) = %g, want 0.25", got)
	}
	if got := InCubic(0.5); got != 0.125 {
		t.Errorf("InCubic(0.5) = %g, want 0.125", got)
	}
	if got := Linear(0.3); got != 0.3 {
		t.Errorf("Linear(0.3) = %g, want 0.3", got)
	}
	// In/Out symmetry for the polynomial families.
	for _, p := range []float64{0.1, 0.25, 0.4, 0.7, 0.95} {
		if in, out := InQuart(p), 1-OutQuart(1-p); math.Abs(in-out) > easeEps {
			t.Errorf("InQuart(%g) = %g, want reflection %g", p, in, out)
		}
	}
}

func TestEaseOvershoot(t *testing.T) {
	// Back pulls below zero early on; elastic overshoots past one.
	if got := InBack(0.2); got >= 0 {
		t.Errorf("InBack(0.2) = %g, want negative overshoot", got)
	}
	if got := OutBack(0.8); got <= 1 {
		t.Errorf("OutBack(0.8) = %g, want overshoot past 1", got)
	}
	if got := OutElastic(0.1); got <= 1 {
		t.Errorf("OutElastic(0.1) = %g, want overshoot past 1", got)
	}
}

func TestOutBounceBranchContinuity(t *testing.T) {
	// At each piecewise threshold, the formulas on both sides must agree.
	branch := func(p, offset, add float64) float64 {
		q := p - offset
		return bounceScale*q*q + add
	}
	cases := []struct {
		p      float64
		lo, hi float64 // values via the lower and upper branch formulas
	}{
		{1 / bounceDiv, bounceScale * (1 / bounceDiv) * (1 / bounceDiv), branch(1/bounceDiv, 1.5/bounceDiv, 0.75)},
		{2 / bounceDiv, branch(2/bounceDiv, 1.5/bounceDiv, 0.75), branch(2/bounceDiv, 2.25/bounceDiv, 0.9375)},
		{2.5 / bounceDiv, branch(2.5/bounceDiv, 2.25/bounceDiv, 0.9375), branch(2.5/bounceDiv, 2.625/bounceDiv, 0.984375)},
	}
	for _, c := range cases {
		if math.Abs(c.lo-c.hi) > easeEps {
			t.Errorf("OutBounce branches disagree at %g: %g vs %g", c.p, c.lo, c.hi)
		}
		if got := OutBounce(c.p); math.Abs(got-c.lo) > easeEps {
			t.Errorf("OutBounce(%g) = %g, want %g", c.p, got, c.lo)
		}
	}
}

func TestInBounceIsReflectedOutBounce(t *testing.T) {
	for p := 0.0; p <= 1.0; p += 0.01 {
		want := 1 - OutBounce(1-p)
		if got := InBounce(p); math.Abs(got-want) > easeEps {
			t.Errorf("InBounce(%g) = %g, want %g", p, got, want)
		}
	}
}

func TestInOutBounceHalves(t *testing.T) {
	// First half mirrors InBounce, second half mirrors OutBounce.
	if got, want := InOutBounce(0.25), (1-OutBounce(0.5))/2; math.Abs(got-want) > easeEps {
		t.Errorf("InOutBounce(0.25) = %g, want %g", got, want)
	}
	if got, want := InOutBounce(0.75), (1+OutBounce(0.5))/2; math.Abs(got-want) > easeEps {
		t.Errorf("InOutBounce(0.75) = %g, want %g", got, want)
	}
}

func TestEaseByName(t *testing.T) {
	fn := EaseByName("OutBounce")
	if fn == nil {
		t.Fatal("EaseByName(OutBounce) returned nil")
	}
	if got := fn(0.5); math.Abs(got-OutBounce(0.5)) > easeEps {
		t.Errorf("catalog OutBounce(0.5) = %g, want %g", got, OutBounce(0.5))
	}
	if EaseByName("NoSuchCurve") != nil {
		t.Error("EaseByName should return nil for unknown names")
	}
}
