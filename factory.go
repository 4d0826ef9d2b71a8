package accessor

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrMemberNotFound is reported when a type has no accessor of the
	// requested kind for a member name.
	ErrMemberNotFound = errors.New("accessor: member not found")
	// ErrTypeMismatch is reported when a typed accessor exists for a member
	// but the requested property type differs from the member's type.
	ErrTypeMismatch = errors.New("accessor: member type mismatch")
)

// Getter reads one member from obj, which must be a pointer to the bound
// type.
type Getter func(obj any) any

// Setter writes one member of obj, which must be a pointer to the bound
// type. An untyped nil value writes the member's zero value.
type Setter func(obj any, value any)

// Factory provides the accessors generated for one concrete type.
//
// All lookups return nil (or false) when name does not identify a member
// with an accessor of that kind. A Factory is immutable and safe for
// concurrent use.
type Factory interface {
	// Type returns the struct type the factory is bound to.
	Type() reflect.Type
	// Members returns the member names in declaration order.
	Members() []string

	Getter(name string) Getter
	Setter(name string) Setter

	// TypedGetter returns the strongly typed getter as an opaque value,
	// a func(*T) P. Use GetterOf to recover it.
	TypedGetter(name string) any
	// TypedSetter returns the strongly typed setter as an opaque value,
	// a func(*T, P). Use SetterOf to recover it.
	TypedSetter(name string) any

	// GetValue reads member name of obj. It reports false if obj is not a
	// pointer to the bound type or the member is not readable.
	GetValue(obj any, name string) (any, bool)
	// SetValue writes member name of obj. It reports false if obj is not
	// a pointer to the bound type or the member is not writable. A value
	// of the wrong type panics, as it does for the Setter itself.
	SetValue(obj any, name string, value any) bool
}

// TypedFactory is a Factory bound to T at compile time.
type TypedFactory[T any] interface {
	Factory
	// New allocates a zero T.
	New() *T
}

// FactoryProvider is implemented by pointers to instantiated generic types
// that were generated in their open form. The registry uses it to obtain
// the factory of an instantiation it has no explicit registration for.
type FactoryProvider interface {
	NewAccessorFactory() Factory
}

// GetterOf returns the typed getter of member name, or nil if there is no
// such getter or the member's type is not P.
func GetterOf[P, T any](f TypedFactory[T], name string) func(*T) P {
	if f == nil {
		return nil
	}
	fn, _ := f.TypedGetter(name).(func(*T) P)
	return fn
}

// SetterOf returns the typed setter of member name, or nil if there is no
// such setter or the member's type is not P.
func SetterOf[P, T any](f TypedFactory[T], name string) func(*T, P) {
	if f == nil {
		return nil
	}
	fn, _ := f.TypedSetter(name).(func(*T, P))
	return fn
}

// CheckTyped explains why GetterOf (write false) or SetterOf (write true)
// would return nil for member name and property type P. It returns nil when
// the accessor is available.
func CheckTyped[P, T any](f TypedFactory[T], name string, write bool) error {
	if f == nil {
		return fmt.Errorf("%w: %q", ErrMemberNotFound, name)
	}
	var raw any
	var ok bool
	if write {
		raw = f.TypedSetter(name)
		_, ok = raw.(func(*T, P))
	} else {
		raw = f.TypedGetter(name)
		_, ok = raw.(func(*T) P)
	}
	switch {
	case raw == nil:
		return fmt.Errorf("%w: %s.%s", ErrMemberNotFound, f.Type(), name)
	case !ok:
		return fmt.Errorf("%w: %s.%s is %s, not %s", ErrTypeMismatch,
			f.Type(), name, memberType(raw, write), reflect.TypeFor[P]())
	}
	return nil
}

// memberType recovers the member's declared type from a typed accessor.
func memberType(fn any, write bool) reflect.Type {
	ft := reflect.TypeOf(fn)
	if write {
		return ft.In(1)
	}
	return ft.Out(0)
}
