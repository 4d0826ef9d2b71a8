package accessor

import "reflect"

// Cast converts an untyped member value to P for generated setters.
//
// An untyped nil becomes the zero value of P, so a nil write to a pointer,
// slice, map or interface member clears it. Any other value must hold
// exactly P; a mismatch panics like an ordinary type assertion, since the
// caller has broken the setter's contract.
func Cast[P any](v any) P {
	if v == nil {
		var zero P
		return zero
	}
	return v.(P)
}

// Box converts a member value to an untyped value for generated getters.
//
// Nil pointers, slices, maps, channels, funcs and interfaces come back as an
// untyped nil rather than a typed nil wrapped in a non-nil interface. The
// generator only routes members whose dynamic kind is unknown at generation
// time (interfaces, type parameters, named types) through Box; members it can classify are
// boxed inline.
func Box[P any](v P) any {
	a := any(v)
	if a == nil {
		return nil
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		if rv.IsNil() {
			return nil
		}
	}
	return a
}
