package accessor

import (
	"reflect"
	"slices"
)

// Table is the Factory implementation returned by generated constructors.
// It holds four name-indexed lookup tables which are never modified after
// Build.
type Table[T any] struct {
	typ          reflect.Type
	names        []string
	getters      map[string]Getter
	setters      map[string]Setter
	typedGetters map[string]any
	typedSetters map[string]any
}

var _ TypedFactory[struct{}] = (*Table[struct{}])(nil)

// TableBuilder accumulates the accessors of one type. It is not safe for
// concurrent use; generated constructors use it once and discard it.
type TableBuilder[T any] struct {
	t    *Table[T]
	seen map[string]bool
}

// NewTable starts a table for T.
func NewTable[T any]() *TableBuilder[T] {
	return &TableBuilder[T]{
		t: &Table[T]{
			typ:          reflect.TypeFor[T](),
			getters:      map[string]Getter{},
			setters:      map[string]Setter{},
			typedGetters: map[string]any{},
			typedSetters: map[string]any{},
		},
		seen: map[string]bool{},
	}
}

func (b *TableBuilder[T]) member(name string) {
	if b.seen[name] {
		return
	}
	b.seen[name] = true
	b.t.names = append(b.t.names, name)
}

// Getter adds the untyped getter of member name.
func (b *TableBuilder[T]) Getter(name string, fn Getter) *TableBuilder[T] {
	b.member(name)
	b.t.getters[name] = fn
	return b
}

// Setter adds the untyped setter of member name.
func (b *TableBuilder[T]) Setter(name string, fn Setter) *TableBuilder[T] {
	b.member(name)
	b.t.setters[name] = fn
	return b
}

// TypedGetter adds the typed getter of member name; fn must be a
// func(*T) P where P is the member's type.
func (b *TableBuilder[T]) TypedGetter(name string, fn any) *TableBuilder[T] {
	b.member(name)
	b.t.typedGetters[name] = fn
	return b
}

// TypedSetter adds the typed setter of member name; fn must be a
// func(*T, P) where P is the member's type.
func (b *TableBuilder[T]) TypedSetter(name string, fn any) *TableBuilder[T] {
	b.member(name)
	b.t.typedSetters[name] = fn
	return b
}

// Build returns the finished table. The builder must not be used afterwards.
func (b *TableBuilder[T]) Build() *Table[T] {
	t := b.t
	b.t = nil
	b.seen = nil
	return t
}

func (t *Table[T]) Type() reflect.Type { return t.typ }

func (t *Table[T]) Members() []string { return slices.Clone(t.names) }

func (t *Table[T]) Getter(name string) Getter { return t.getters[name] }

func (t *Table[T]) Setter(name string) Setter { return t.setters[name] }

func (t *Table[T]) TypedGetter(name string) any { return t.typedGetters[name] }

func (t *Table[T]) TypedSetter(name string) any { return t.typedSetters[name] }

func (t *Table[T]) New() *T { return new(T) }

func (t *Table[T]) GetValue(obj any, name string) (any, bool) {
	p, ok := obj.(*T)
	if !ok || p == nil {
		return nil, false
	}
	get := t.getters[name]
	if get == nil {
		return nil, false
	}
	return get(p), true
}

func (t *Table[T]) SetValue(obj any, name string, value any) bool {
	p, ok := obj.(*T)
	if !ok || p == nil {
		return false
	}
	set := t.setters[name]
	if set == nil {
		return false
	}
	set(p, value)
	return true
}
