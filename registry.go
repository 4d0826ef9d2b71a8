package accessor

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"sync"

	"github.com/signadot/go-accessor/debug"
)

var (
	// ErrNilType is returned when a registration names no type.
	ErrNilType = errors.New("accessor: nil type")
	// ErrNilConstructor is returned when a registration has no constructor.
	ErrNilConstructor = errors.New("accessor: nil constructor")
	// ErrInvalidGenericKey is returned by RegisterGeneric for a key with an
	// arity below one.
	ErrInvalidGenericKey = errors.New("accessor: invalid generic key")
)

// Constructor builds the factory of one concrete type.
type Constructor func() Factory

// GenericKey identifies an open generic type: its package path, its name
// without type arguments and its number of type parameters.
type GenericKey struct {
	Package string
	Name    string
	Arity   int
}

func (k GenericKey) String() string {
	return fmt.Sprintf("%s.%s[%d]", k.Package, k.Name, k.Arity)
}

// Entry describes one registration, for diagnostics.
type Entry struct {
	// Type is set for concrete registrations.
	Type reflect.Type
	// Generic is set for open generic registrations.
	Generic GenericKey
	// Resolved reports whether a factory has been built for Type.
	Resolved bool
}

// Registry maps types to their generated accessor factories.
//
// Registrations are expected to happen once, from the generated
// RegisterAccessors functions, before the first lookup. Resolve is safe for
// concurrent use: cache hits are lock-free and misses are serialized by a
// single mutex, so concurrent first lookups of a type all observe the same
// fully built factory.
type Registry struct {
	log *slog.Logger

	mu       sync.Mutex
	ctors    map[reflect.Type]Constructor
	generics map[GenericKey]bool

	// cache maps reflect.Type to Factory.
	cache sync.Map
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used to report failed instantiations.
func WithLogger(log *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		log:      slog.Default(),
		ctors:    map[reflect.Type]Constructor{},
		generics: map[GenericKey]bool{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register associates t with the constructor of its factory. The first
// registration of t wins; later ones are ignored, which keeps repeated
// RegisterAccessors calls harmless.
func (r *Registry) Register(t reflect.Type, ctor Constructor) error {
	if t == nil {
		return ErrNilType
	}
	if ctor == nil {
		return ErrNilConstructor
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ctors[t]; ok {
		return nil
	}
	r.ctors[t] = ctor
	return nil
}

// Register is the type safe form of Registry.Register.
func Register[T any](r *Registry, ctor func() TypedFactory[T]) error {
	if ctor == nil {
		return ErrNilConstructor
	}
	return r.Register(reflect.TypeFor[T](), func() Factory { return ctor() })
}

// RegisterGeneric records an open generic type. Instantiations of it
// without a registration of their own are resolved through the
// FactoryProvider method generated for the type.
func (r *Registry) RegisterGeneric(key GenericKey) error {
	if key.Name == "" {
		return ErrNilType
	}
	if key.Arity < 1 {
		return fmt.Errorf("%w: %s", ErrInvalidGenericKey, key)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generics[key] = true
	return nil
}

// Resolve returns the factory for t, or false if none is registered or it
// could not be built. A pointer type resolves to the factory of its
// element type.
func (r *Registry) Resolve(t reflect.Type) (Factory, bool) {
	if t == nil {
		return nil, false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if f, ok := r.cache.Load(t); ok {
		return f.(Factory), true
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.cache.Load(t); ok {
		return f.(Factory), true
	}

	f, err := r.build(t)
	if err != nil {
		if debug.Resolve() {
			debug.Logf("resolve %s: %v\n", t, err)
		}
		if !errors.Is(err, errNotRegistered) {
			r.log.Warn("accessor factory instantiation failed", "type", t.String(), "error", err)
		}
		return nil, false
	}
	if debug.Resolve() {
		debug.Logf("resolve %s: built %T\n", t, f)
	}
	r.cache.Store(t, f)
	return f, true
}

// Resolve returns the typed factory for T.
func Resolve[T any](r *Registry) (TypedFactory[T], bool) {
	f, ok := r.Resolve(reflect.TypeFor[T]())
	if !ok {
		return nil, false
	}
	tf, ok := f.(TypedFactory[T])
	return tf, ok
}

var errNotRegistered = errors.New("not registered")

// build must be called with r.mu held.
func (r *Registry) build(t reflect.Type) (f Factory, err error) {
	if ctor, ok := r.ctors[t]; ok {
		return instantiate(t, ctor)
	}
	key, ok := genericKeyOf(t)
	if !ok || !r.generics[key] {
		return nil, errNotRegistered
	}
	return instantiate(t, func() Factory {
		p, ok := reflect.New(t).Interface().(FactoryProvider)
		if !ok {
			panic(fmt.Sprintf("*%s does not provide an accessor factory", t))
		}
		return p.NewAccessorFactory()
	})
}

func instantiate(t reflect.Type, ctor Constructor) (f Factory, err error) {
	defer func() {
		if p := recover(); p != nil {
			f = nil
			err = fmt.Errorf("constructor panicked: %v", p)
		}
	}()
	f = ctor()
	if f == nil {
		return nil, fmt.Errorf("constructor returned nil")
	}
	if f.Type() != t {
		return nil, fmt.Errorf("constructor built a factory for %s", f.Type())
	}
	return f, nil
}

func genericKeyOf(t reflect.Type) (GenericKey, bool) {
	base, args, ok := SplitGenericName(t.Name())
	if !ok {
		return GenericKey{}, false
	}
	return GenericKey{Package: t.PkgPath(), Name: base, Arity: len(args)}, true
}

// Len returns the number of registrations, concrete and generic.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ctors) + len(r.generics)
}

// Entries returns a snapshot of the registrations, concrete types first,
// each group sorted by name.
func (r *Registry) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]Entry, 0, len(r.ctors)+len(r.generics))
	for t := range r.ctors {
		_, resolved := r.cache.Load(t)
		res = append(res, Entry{Type: t, Resolved: resolved})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Type.String() < res[j].Type.String() })
	n := len(res)
	for k := range r.generics {
		res = append(res, Entry{Generic: k})
	}
	gen := res[n:]
	sort.Slice(gen, func(i, j int) bool { return gen[i].Generic.String() < gen[j].Generic.String() })
	return res
}
