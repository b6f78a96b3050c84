package argparse

// Result holds the typed values of one successful parse. Each argument name
// appears in at most one of the typed maps. Absent means the argument was not
// bound; a bound zero or empty value is still present.
type Result struct {
	strings map[string]string
	ints    map[string]int
	floats  map[string]float32
	doubles map[string]float64
	bools   map[string]bool
}

func newResult() *Result {
	return &Result{
		strings: make(map[string]string),
		ints:    make(map[string]int),
		floats:  make(map[string]float32),
		doubles: make(map[string]float64),
		bools:   make(map[string]bool),
	}
}

// String returns the value of a String argument.
func (r *Result) String(name string) (string, bool) {
	v, ok := r.strings[name]
	return v, ok
}

// Int returns the value of an Int argument.
func (r *Result) Int(name string) (int, bool) {
	v, ok := r.ints[name]
	return v, ok
}

// Float returns the value of a Float argument.
func (r *Result) Float(name string) (float32, bool) {
	v, ok := r.floats[name]
	return v, ok
}

// Double returns the value of a Double argument.
func (r *Result) Double(name string) (float64, bool) {
	v, ok := r.doubles[name]
	return v, ok
}

// Bool returns the value of a StoreTrue or StoreFalse argument. Flags are
// always present after a successful parse.
func (r *Result) Bool(name string) (bool, bool) {
	v, ok := r.bools[name]
	return v, ok
}

// Has reports whether name has a value of any type.
func (r *Result) Has(name string) bool {
	_, ok := r.Value(name)
	return ok
}

// Value returns the value of name as an interface, whatever its type.
func (r *Result) Value(name string) (interface{}, bool) {
	if v, ok := r.strings[name]; ok {
		return v, true
	}
	if v, ok := r.ints[name]; ok {
		return v, true
	}
	if v, ok := r.floats[name]; ok {
		return v, true
	}
	if v, ok := r.doubles[name]; ok {
		return v, true
	}
	if v, ok := r.bools[name]; ok {
		return v, true
	}
	return nil, false
}

// Get stores the value of name into target, which must be a *string, *int,
// *float32, *float64 or *bool matching the argument's type. It reports whether
// a value was stored; target is left untouched otherwise.
func (r *Result) Get(name string, target interface{}) bool {
	switch t := target.(type) {
	case *string:
		v, ok := r.String(name)
		if ok {
			*t = v
		}
		return ok
	case *int:
		v, ok := r.Int(name)
		if ok {
			*t = v
		}
		return ok
	case *float32:
		v, ok := r.Float(name)
		if ok {
			*t = v
		}
		return ok
	case *float64:
		v, ok := r.Double(name)
		if ok {
			*t = v
		}
		return ok
	case *bool:
		v, ok := r.Bool(name)
		if ok {
			*t = v
		}
		return ok
	}
	return false
}
