package reel

// Bind returns an update callback that writes each named field of a
// composite value into the matching destination pointer, so tweened values
// flow straight into host struct fields each tick. Fields without a
// destination, and destinations without a field, are left alone.
func Bind(dest map[string]*float64) func(Value) {
	return func(v Value) {
		for name, p := range dest {
			if p == nil {
				continue
			}
			if f, ok := v.Field(name); ok {
				*p = f
			}
		}
	}
}

// BindFloat returns an update callback that writes a scalar value into
// dest. Composite values are ignored.
func BindFloat(dest *float64) func(Value) {
	return func(v Value) {
		if v.IsScalar() {
			*dest = v.Float()
		}
	}
}
