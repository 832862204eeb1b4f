package reel

import "sort"

// Value is an animatable quantity: either a single scalar or a one-level
// composite of named scalar fields. Composites are flat — fields are always
// scalars, never nested composites.
//
// The zero Value is a scalar 0.
type Value struct {
	fields map[string]float64 // nil for scalars
	scalar float64
}

// Num returns a scalar Value.
func Num(v float64) Value {
	return Value{scalar: v}
}

// Fields returns a composite Value with the given named fields.
// The map is copied; later mutation of m does not affect the Value.
func Fields(m map[string]float64) Value {
	f := make(map[string]float64, len(m))
	for k, v := range m {
		f[k] = v
	}
	return Value{fields: f}
}

// IsScalar reports whether v is a scalar rather than a composite.
func (v Value) IsScalar() bool { return v.fields == nil }

// Float returns the scalar value. For composites it returns 0; use
// [Value.Field] instead.
func (v Value) Float() float64 {
	if v.fields != nil {
		return 0
	}
	return v.scalar
}

// Field returns the named field of a composite Value and whether it exists.
func (v Value) Field(name string) (float64, bool) {
	f, ok := v.fields[name]
	return f, ok
}

// FieldNames returns the composite's field names in sorted order, or nil
// for a scalar.
func (v Value) FieldNames() []string {
	if v.fields == nil {
		return nil
	}
	names := make([]string, 0, len(v.fields))
	for k := range v.fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LerpFunc combines an eased progress weight with a from/to endpoint pair.
// Implementations must dispatch on the shape of to: when to is a composite,
// a field missing from from takes to's own value for that field (the value
// materializes at the target immediately) rather than failing.
type LerpFunc func(from, to Value, t float64) Value

// Lerp is the default interpolation strategy: standard linear interpolation,
// applied per field for composites. Missing from-fields fall back to the
// corresponding to-field, so mismatched shapes degrade instead of erroring.
func Lerp(from, to Value, t float64) Value {
	if to.fields == nil {
		f := from.scalar
		if from.fields != nil {
			f = 0
		}
		return Value{scalar: f + (to.scalar-f)*t}
	}
	out := make(map[string]float64, len(to.fields))
	for name, tv := range to.fields {
		fv, ok := from.fields[name]
		if !ok {
			fv = tv
		}
		out[name] = fv + (tv-fv)*t
	}
	return Value{fields: out}
}
