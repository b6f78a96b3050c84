package argparse

import (
	"strconv"
	"strings"
)

// convert builds the typed result from the bindings. It fails only for
// numeric arguments whose raw value is malformed.
func (b *bindings) convert() (*Result, error) {
	res := newResult()
	for i, spec := range b.reg.specs {
		v := b.values[i]
		if !v.bound {
			switch spec.Type {
			case StoreTrue:
				res.bools[spec.Name] = false
			case StoreFalse:
				res.bools[spec.Name] = true
			}
			continue
		}

		switch spec.Type {
		case String:
			res.strings[spec.Name] = v.raw
		case Int:
			if !isInteger(v.raw) {
				return nil, convertError(spec, v.raw)
			}
			n, err := strconv.Atoi(v.raw)
			if err != nil {
				return nil, convertError(spec, v.raw)
			}
			res.ints[spec.Name] = n
		case Float:
			if !isDecimal(v.raw) {
				return nil, convertError(spec, v.raw)
			}
			f, err := strconv.ParseFloat(v.raw, 32)
			if err != nil {
				return nil, convertError(spec, v.raw)
			}
			res.floats[spec.Name] = float32(f)
		case Double:
			if !isDecimal(v.raw) {
				return nil, convertError(spec, v.raw)
			}
			f, err := strconv.ParseFloat(v.raw, 64)
			if err != nil {
				return nil, convertError(spec, v.raw)
			}
			res.doubles[spec.Name] = f
		case StoreTrue:
			res.bools[spec.Name] = true
		case StoreFalse:
			res.bools[spec.Name] = false
		}
	}
	return res, nil
}

func convertError(spec ArgumentSpec, raw string) *Error {
	return newError(KindConvertArg, spec.Name, "can't convert argument '%s' to %s | provided value: %s",
		spec.Name, spec.Type, raw)
}

// isInteger matches one or more ASCII digits.
func isInteger(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isDecimal matches digits, or digits '.' digits.
func isDecimal(s string) bool {
	intPart, frac, found := strings.Cut(s, ".")
	if !isInteger(intPart) {
		return false
	}
	return !found || isInteger(frac)
}
