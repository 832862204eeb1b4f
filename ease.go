package reel

import "math"

// EaseFunc maps a normalized progress value in [0, 1] to an interpolation
// weight. Outputs usually stay in [0, 1], but elastic and back curves
// overshoot transiently; every curve satisfies f(0) == 0 and f(1) == 1.
type EaseFunc func(p float64) float64

const (
	backOvershoot      = 1.70158
	backOvershootInOut = backOvershoot * 1.525
	elasticPeriod      = 2 * math.Pi / 3
	elasticPeriodInOut = 2 * math.Pi / 4.5
	bounceScale        = 7.5625
	bounceDiv          = 2.75
)

// Linear returns progress unchanged.
func Linear(p float64) float64 { return p }

// InSine eases in along a quarter sine wave.
func InSine(p float64) float64 { return 1 - math.Cos(p*math.Pi/2) }

// OutSine eases out along a quarter sine wave.
func OutSine(p float64) float64 { return math.Sin(p * math.Pi / 2) }

// InOutSine eases in and out along a half sine wave.
func InOutSine(p float64) float64 { return -(math.Cos(math.Pi*p) - 1) / 2 }

// InQuad eases in quadratically.
func InQuad(p float64) float64 { return p * p }

// OutQuad eases out quadratically.
func OutQuad(p float64) float64 { return 1 - (1-p)*(1-p) }

// InOutQuad eases in and out quadratically.
func InOutQuad(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}
	q := -2*p + 2
	return 1 - q*q/2
}

// InCubic eases in cubically.
func InCubic(p float64) float64 { return p * p * p }

// OutCubic eases out cubically.
func OutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

// InOutCubic eases in and out cubically.
func InOutCubic(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	q := -2*p + 2
	return 1 - q*q*q/2
}

// InQuart eases in with a fourth-power curve.
func InQuart(p float64) float64 { return p * p * p * p }

// OutQuart eases out with a fourth-power curve.
func OutQuart(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q*q
}

// InOutQuart eases in and out with a fourth-power curve.
func InOutQuart(p float64) float64 {
	if p < 0.5 {
		return 8 * p * p * p * p
	}
	q := -2*p + 2
	return 1 - q*q*q*q/2
}

// InQuint eases in with a fifth-power curve.
func InQuint(p float64) float64 { return p * p * p * p * p }

// OutQuint eases out with a fifth-power curve.
func OutQuint(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q*q*q
}

// InOutQuint eases in and out with a fifth-power curve.
func InOutQuint(p float64) float64 {
	if p < 0.5 {
		return 16 * p * p * p * p * p
	}
	q := -2*p + 2
	return 1 - q*q*q*q*q/2
}

// InExpo eases in exponentially.
func InExpo(p float64) float64 {
	if p == 0 {
		return 0
	}
	return math.Pow(2, 10*p-10)
}

// OutExpo eases out exponentially.
func OutExpo(p float64) float64 {
	if p == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*p)
}

// InOutExpo eases in and out exponentially.
func InOutExpo(p float64) float64 {
	switch {
	case p == 0:
		return 0
	case p == 1:
		return 1
	case p < 0.5:
		return math.Pow(2, 20*p-10) / 2
	default:
		return (2 - math.Pow(2, -20*p+10)) / 2
	}
}

// InCirc eases in along a circular arc.
func InCirc(p float64) float64 { return 1 - math.Sqrt(1-p*p) }

// OutCirc eases out along a circular arc.
func OutCirc(p float64) float64 { return math.Sqrt(1 - (p-1)*(p-1)) }

// InOutCirc eases in and out along circular arcs.
func InOutCirc(p float64) float64 {
	if p < 0.5 {
		return (1 - math.Sqrt(1-4*p*p)) / 2
	}
	q := -2*p + 2
	return (math.Sqrt(1-q*q) + 1) / 2
}

// InBack eases in, pulling back past the start before moving forward.
func InBack(p float64) float64 {
	c := backOvershoot + 1
	return c*p*p*p - backOvershoot*p*p
}

// OutBack eases out, overshooting the end before settling.
func OutBack(p float64) float64 {
	c := backOvershoot + 1
	q := p - 1
	return 1 + c*q*q*q + backOvershoot*q*q
}

// InOutBack eases in and out with overshoot at both ends.
func InOutBack(p float64) float64 {
	c := backOvershootInOut
	if p < 0.5 {
		q := 2 * p
		return q * q * ((c+1)*q - c) / 2
	}
	q := 2*p - 2
	return (q*q*((c+1)*q+c) + 2) / 2
}

// InElastic eases in with a damped oscillation.
func InElastic(p float64) float64 {
	switch p {
	case 0:
		return 0
	case 1:
		return 1
	}
	return -math.Pow(2, 10*p-10) * math.Sin((10*p-10.75)*elasticPeriod)
}

// OutElastic eases out with a damped oscillation.
func OutElastic(p float64) float64 {
	switch p {
	case 0:
		return 0
	case 1:
		return 1
	}
	return math.Pow(2, -10*p)*math.Sin((10*p-0.75)*elasticPeriod) + 1
}

// InOutElastic eases in and out with damped oscillations.
func InOutElastic(p float64) float64 {
	switch {
	case p == 0:
		return 0
	case p == 1:
		return 1
	case p < 0.5:
		return -math.Pow(2, 20*p-10) * math.Sin((20*p-11.125)*elasticPeriodInOut) / 2
	default:
		return math.Pow(2, -20*p+10)*math.Sin((20*p-11.125)*elasticPeriodInOut)/2 + 1
	}
}

// OutBounce eases out with a series of decaying bounces.
func OutBounce(p float64) float64 {
	switch {
	case p < 1/bounceDiv:
		return bounceScale * p * p
	case p < 2/bounceDiv:
		p -= 1.5 / bounceDiv
		return bounceScale*p*p + 0.75
	case p < 2.5/bounceDiv:
		p -= 2.25 / bounceDiv
		return bounceScale*p*p + 0.9375
	default:
		p -= 2.625 / bounceDiv
		return bounceScale*p*p + 0.984375
	}
}

// InBounce is OutBounce reflected through the midpoint.
func InBounce(p float64) float64 { return 1 - OutBounce(1-p) }

// InOutBounce bounces in for the first half and out for the second.
func InOutBounce(p float64) float64 {
	if p < 0.5 {
		return (1 - OutBounce(1-2*p)) / 2
	}
	return (1 + OutBounce(2*p-1)) / 2
}

// easeCatalog maps curve names to functions for data-driven lookup.
// Names match the exported identifiers.
var easeCatalog = map[string]EaseFunc{
	"Linear":       Linear,
	"InSine":       InSine,
	"OutSine":      OutSine,
	"InOutSine":    InOutSine,
	"InQuad":       InQuad,
	"OutQuad":      OutQuad,
	"InOutQuad":    InOutQuad,
	"InCubic":      InCubic,
	"OutCubic":     OutCubic,
	"InOutCubic":   InOutCubic,
	"InQuart":      InQuart,
	"OutQuart":     OutQuart,
	"InOutQuart":   InOutQuart,
	"InQuint":      InQuint,
	"OutQuint":     OutQuint,
	"InOutQuint":   InOutQuint,
	"InExpo":       InExpo,
	"OutExpo":      OutExpo,
	"InOutExpo":    InOutExpo,
	"InCirc":       InCirc,
	"OutCirc":      OutCirc,
	"InOutCirc":    InOutCirc,
	"InBack":       InBack,
	"OutBack":      OutBack,
	"InOutBack":    InOutBack,
	"InElastic":    InElastic,
	"OutElastic":   OutElastic,
	"InOutElastic": InOutElastic,
	"InBounce":     InBounce,
	"OutBounce":    OutBounce,
	"InOutBounce":  InOutBounce,
}

// EaseByName returns the catalog curve with the given exported name
// (e.g. "OutBounce"), or nil if no such curve exists. Useful for
// data-driven configuration such as curves loaded from YAML.
func EaseByName(name string) EaseFunc {
	return easeCatalog[name]
}
