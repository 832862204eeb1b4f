package reel

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// CurvePoint is one sample of an authored curve channel. Position is the
// normalized progress in [0, 1] at which the channel takes Value.
type CurvePoint struct {
	Position float64 `yaml:"position"`
	Value    float64 `yaml:"value"`
}

// Channel is a named sequence of curve points, sampled by linear
// interpolation between neighbors. Points must be ordered by Position.
type Channel struct {
	Name   string       `yaml:"name"`
	Points []CurvePoint `yaml:"points"`
}

// Curve is an externally authored easing asset with one or more channels,
// the counterpart of an animation-curve resource in an asset pipeline.
type Curve struct {
	Name     string    `yaml:"name"`
	Channels []Channel `yaml:"channels"`
}

// Evaluate samples the channel at progress p. Before the first point it
// returns the first point's value, after the last the last's; between
// points it interpolates linearly. An empty channel evaluates to 0.
func (c Channel) Evaluate(p float64) float64 {
	pts := c.Points
	if len(pts) == 0 {
		return 0
	}
	if p <= pts[0].Position {
		return pts[0].Value
	}
	last := pts[len(pts)-1]
	if p >= last.Position {
		return last.Value
	}
	i := sort.Search(len(pts), func(i int) bool { return pts[i].Position > p })
	a, b := pts[i-1], pts[i]
	span := b.Position - a.Position
	if span <= 0 {
		return b.Value
	}
	t := (p - a.Position) / span
	return a.Value + (b.Value-a.Value)*t
}

// CurveEase wraps one channel of a curve asset as an EaseFunc. It returns
// nil when the curve is nil, has no channels, or the channel index is out of
// range; callers must check before use.
func CurveEase(c *Curve, channel int) EaseFunc {
	if c == nil || channel < 0 || channel >= len(c.Channels) {
		return nil
	}
	ch := c.Channels[channel]
	return ch.Evaluate
}

// LoadCurves parses YAML curve assets. The document is a list of curves:
//
//	- name: pop
//	  channels:
//	    - name: scale
//	      points:
//	        - {position: 0, value: 0}
//	        - {position: 0.6, value: 1.2}
//	        - {position: 1, value: 1}
func LoadCurves(data []byte) ([]*Curve, error) {
	var curves []*Curve
	if err := yaml.Unmarshal(data, &curves); err != nil {
		return nil, fmt.Errorf("reel: parsing curve assets: %w", err)
	}
	for _, c := range curves {
		for _, ch := range c.Channels {
			for i := 1; i < len(ch.Points); i++ {
				if ch.Points[i].Position < ch.Points[i-1].Position {
					return nil, fmt.Errorf("reel: curve %q channel %q: points out of order at index %d", c.Name, ch.Name, i)
				}
			}
		}
	}
	return curves, nil
}

// FromGween adapts a gween easing function to the reel easing contract, so
// curves written for [gween] (or for willow's TweenGroup) can drive tracks
// unchanged.
//
// [gween]: https://github.com/tanema/gween
func FromGween(fn ease.TweenFunc) EaseFunc {
	return func(p float64) float64 {
		return float64(fn(float32(p), 0, 1, 1))
	}
}
