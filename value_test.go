package reel

import (
	"math"
	"testing"
)

func TestLerpScalar(t *testing.T) {
	got := Lerp(Num(0), Num(100), 0.25)
	if !got.IsScalar() {
		t.Fatal("scalar lerp should produce a scalar")
	}
	if got.Float() != 25 {
		t.Errorf("Lerp(0, 100, 0.25) = %g, want 25", got.Float())
	}
}

func TestLerpComposite(t *testing.T) {
	from := Fields(map[string]float64{"x": 0, "y": 0})
	to := Fields(map[string]float64{"x": 10, "y": 20})

	got := Lerp(from, to, 0.5)
	if got.IsScalar() {
		t.Fatal("composite lerp should produce a composite")
	}
	if x, _ := got.Field("x"); x != 5 {
		t.Errorf("x = %g, want 5", x)
	}
	if y, _ := got.Field("y"); y != 10 {
		t.Errorf("y = %g, want 10", y)
	}
}

func TestLerpMissingFromFieldMaterializesAtTarget(t *testing.T) {
	from := Fields(map[string]float64{"x": 0})
	to := Fields(map[string]float64{"x": 10, "y": 20})

	got := Lerp(from, to, 0.5)
	if x, _ := got.Field("x"); x != 5 {
		t.Errorf("x = %g, want 5", x)
	}
	// y has no from-side value: it takes the to-value immediately.
	if y, ok := got.Field("y"); !ok || y != 20 {
		t.Errorf("y = %g (ok=%v), want 20 at any progress", y, ok)
	}
}

func TestLerpScalarFromAgainstCompositeTo(t *testing.T) {
	// Shape dispatch follows to; a scalar from contributes nothing, so every
	// field materializes at the target.
	got := Lerp(Num(3), Fields(map[string]float64{"x": 10}), 0.1)
	if x, _ := got.Field("x"); x != 10 {
		t.Errorf("x = %g, want 10", x)
	}
}

func TestValueAccessors(t *testing.T) {
	v := Num(4.5)
	if !v.IsScalar() || v.Float() != 4.5 {
		t.Errorf("Num(4.5) = %#v", v)
	}
	if v.FieldNames() != nil {
		t.Error("scalar should have no field names")
	}

	c := Fields(map[string]float64{"b": 2, "a": 1})
	names := c.FieldNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("FieldNames = %v, want [a b]", names)
	}
	if c.Float() != 0 {
		t.Error("Float on a composite should return 0")
	}
	if _, ok := c.Field("missing"); ok {
		t.Error("missing field should not be found")
	}
}

func TestFieldsCopiesInput(t *testing.T) {
	m := map[string]float64{"x": 1}
	v := Fields(m)
	m["x"] = 99
	if x, _ := v.Field("x"); x != 1 {
		t.Errorf("x = %g, want 1 (input map must be copied)", x)
	}
}

func TestZeroValueIsScalarZero(t *testing.T) {
	var v Value
	if !v.IsScalar() || v.Float() != 0 {
		t.Errorf("zero Value = %#v, want scalar 0", v)
	}
	if got := Lerp(v, Num(10), 0.5); math.Abs(got.Float()-5) > 1e-12 {
		t.Errorf("lerp from zero Value = %g, want 5", got.Float())
	}
}
