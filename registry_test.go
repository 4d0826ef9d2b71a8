package accessor_test

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	accessor "github.com/signadot/go-accessor"
	"github.com/signadot/go-accessor/internal/fixtures/models"
)

const modelsPath = "github.com/signadot/go-accessor/internal/fixtures/models"

func newModelsRegistry(t *testing.T) *accessor.Registry {
	t.Helper()
	r := accessor.NewRegistry()
	models.RegisterAccessors(r)
	return r
}

func TestDataScenario(t *testing.T) {
	r := newModelsRegistry(t)
	f, ok := accessor.Resolve[models.Data](r)
	if !ok {
		t.Fatal("no factory for Data")
	}
	d := f.New()
	f.Setter("Id")(d, 42)
	f.Setter("Name")(d, "abc")
	if d.Id != 42 || d.Name != "abc" {
		t.Errorf("got %+v", *d)
	}
	if got := f.Getter("Id")(d); got != 42 {
		t.Errorf("Id = %v, want 42", got)
	}
	if got := f.Getter("Name")(d); got != "abc" {
		t.Errorf("Name = %v, want abc", got)
	}

	getID := accessor.GetterOf[int](f, "Id")
	setName := accessor.SetterOf[string](f, "Name")
	if getID == nil || setName == nil {
		t.Fatal("missing typed accessors")
	}
	setName(d, "typed")
	if getID(d) != 42 || d.Name != "typed" {
		t.Errorf("got %+v", *d)
	}

	if diff := cmp.Diff([]string{"Id", "Name"}, f.Members()); diff != "" {
		t.Errorf("Members() mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	r := newModelsRegistry(t)
	s := "x"
	tests := []struct {
		name   string
		obj    any
		member string
		value  any
	}{
		{name: "Data.Id", obj: &models.Data{}, member: "Id", value: 7},
		{name: "Data.Name", obj: &models.Data{}, member: "Name", value: "n"},
		{name: "NullableData.Name", obj: &models.NullableData{}, member: "Name", value: &s},
		{name: "NullableData.Tags", obj: &models.NullableData{}, member: "Tags", value: []string{"a"}},
		{name: "NullableData.Any", obj: &models.NullableData{}, member: "Any", value: 1.5},
		{name: "Account.Created", obj: &models.Account{}, member: "Created", value: time.Unix(10, 0)},
		{name: "Box[int].Value", obj: &models.Box[int]{}, member: "Value", value: 3},
		{name: "Box[float64].Value", obj: &models.Box[float64]{}, member: "Value", value: 2.5},
		{name: "Pair[string,int].Key", obj: &models.Pair[string, int]{}, member: "Key", value: "k"},
		{name: "Pair[int,bool].Value", obj: &models.Pair[int, bool]{}, member: "Value", value: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := r.Resolve(reflect.TypeOf(tt.obj))
			if !ok {
				t.Fatalf("no factory for %T", tt.obj)
			}
			if !f.SetValue(tt.obj, tt.member, tt.value) {
				t.Fatalf("SetValue(%s) failed", tt.member)
			}
			got, ok := f.GetValue(tt.obj, tt.member)
			if !ok {
				t.Fatalf("GetValue(%s) failed", tt.member)
			}
			if diff := cmp.Diff(tt.value, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNullableMembers(t *testing.T) {
	r := newModelsRegistry(t)
	f, ok := accessor.Resolve[models.NullableData](r)
	if !ok {
		t.Fatal("no factory for NullableData")
	}
	d := &models.NullableData{Count: 1}
	for _, name := range []string{"Name", "Tags", "Attrs", "Any"} {
		if got := f.Getter(name)(d); got != nil {
			t.Errorf("%s = %#v, want untyped nil", name, got)
		}
	}
	if got := f.Getter("Count")(d); got != 1 {
		t.Errorf("Count = %v, want 1", got)
	}

	d.Tags = []string{"a"}
	f.Setter("Tags")(d, nil)
	if d.Tags != nil {
		t.Errorf("Tags = %v after nil set", d.Tags)
	}
	f.Setter("Count")(d, nil)
	if d.Count != 0 {
		t.Errorf("Count = %d after nil set", d.Count)
	}

	d.Any = (*int)(nil)
	if got := f.Getter("Any")(d); got != nil {
		t.Errorf("Any holding a nil pointer = %#v, want untyped nil", got)
	}
}

func TestGenericParameterNil(t *testing.T) {
	r := newModelsRegistry(t)
	f, ok := accessor.Resolve[models.Box[*int]](r)
	if !ok {
		t.Fatal("no factory for Box[*int]")
	}
	if got := f.Getter("Value")(&models.Box[*int]{}); got != nil {
		t.Errorf("Value = %#v, want untyped nil", got)
	}
}

func TestAccountTags(t *testing.T) {
	r := newModelsRegistry(t)
	f, ok := accessor.Resolve[models.Account](r)
	if !ok {
		t.Fatal("no factory for Account")
	}
	if diff := cmp.Diff([]string{"ID", "Secret", "Created", "OwnerName"}, f.Members()); diff != "" {
		t.Errorf("Members() mismatch (-want +got):\n%s", diff)
	}
	a := &models.Account{ID: "id", Owner: "me"}
	if f.Setter("ID") != nil {
		t.Error("read-only ID has a setter")
	}
	if f.Getter("Secret") != nil {
		t.Error("write-only Secret has a getter")
	}
	f.Setter("Secret")(a, "s")
	if a.Secret != "s" {
		t.Errorf("Secret = %q", a.Secret)
	}
	if got := f.Getter("OwnerName")(a); got != "me" {
		t.Errorf("OwnerName = %v", got)
	}
	for _, name := range []string{"Owner", "Internal", "Meta", "Note", "balance"} {
		if f.Getter(name) != nil || f.Setter(name) != nil {
			t.Errorf("unexpected member %s", name)
		}
	}
}

func TestUnknownMember(t *testing.T) {
	r := newModelsRegistry(t)
	f, ok := accessor.Resolve[models.Data](r)
	if !ok {
		t.Fatal("no factory for Data")
	}
	if f.Getter("Missing") != nil || f.Setter("Missing") != nil {
		t.Error("accessors for unknown member")
	}
	if accessor.GetterOf[int](f, "Missing") != nil {
		t.Error("typed getter for unknown member")
	}
	if accessor.GetterOf[string](f, "Id") != nil {
		t.Error("typed getter with wrong property type")
	}
	if err := accessor.CheckTyped[string](f, "Id", false); !errors.Is(err, accessor.ErrTypeMismatch) {
		t.Errorf("CheckTyped = %v, want ErrTypeMismatch", err)
	}
}

func TestUnregisteredType(t *testing.T) {
	r := newModelsRegistry(t)
	if _, ok := r.Resolve(reflect.TypeFor[models.Meta]()); ok {
		t.Error("resolved unmarked type")
	}
	if _, ok := r.Resolve(reflect.TypeFor[int]()); ok {
		t.Error("resolved int")
	}
	if _, ok := r.Resolve(nil); ok {
		t.Error("resolved nil type")
	}
	if _, ok := accessor.Resolve[models.Data](accessor.NewRegistry()); ok {
		t.Error("resolved on empty registry")
	}
}

func TestResolveDeterminism(t *testing.T) {
	r := newModelsRegistry(t)
	for _, typ := range []reflect.Type{
		reflect.TypeFor[models.Data](),
		reflect.TypeFor[models.Box[time.Time]](),
		reflect.TypeFor[models.Box[float64]](),
	} {
		a, ok := r.Resolve(typ)
		if !ok {
			t.Fatalf("no factory for %v", typ)
		}
		b, _ := r.Resolve(typ)
		c, _ := r.Resolve(reflect.PointerTo(typ))
		if a != b || a != c {
			t.Errorf("%v resolved to different factories", typ)
		}
	}
}

func TestCompileScopeInstantiation(t *testing.T) {
	r := newModelsRegistry(t)
	var found bool
	for _, e := range r.Entries() {
		if e.Type == reflect.TypeFor[models.Box[time.Time]]() {
			found = true
		}
	}
	if !found {
		t.Fatal("Box[time.Time] was not registered eagerly")
	}

	f, ok := accessor.Resolve[models.Box[time.Time]](r)
	if !ok {
		t.Fatal("no factory for Box[time.Time]")
	}
	now := time.Now()
	b := f.New()
	accessor.SetterOf[time.Time](f, "Value")(b, now)
	if got := accessor.GetterOf[time.Time](f, "Value")(b); !got.Equal(now) {
		t.Errorf("Value = %v, want %v", got, now)
	}
}

func TestGenericFallback(t *testing.T) {
	r := newModelsRegistry(t)
	typ := reflect.TypeFor[models.Box[float64]]()
	for _, e := range r.Entries() {
		if e.Type == typ {
			t.Fatal("Box[float64] registered explicitly")
		}
	}
	f, ok := accessor.Resolve[models.Box[float64]](r)
	if !ok {
		t.Fatal("no factory for Box[float64]")
	}
	if f.Type() != typ {
		t.Errorf("Type() = %v, want %v", f.Type(), typ)
	}
	b := &models.Box[float64]{Value: 1.5}
	if got := accessor.GetterOf[float64](f, "Value")(b); got != 1.5 {
		t.Errorf("Value = %v", got)
	}
	if accessor.GetterOf[int](f, "Value") != nil {
		t.Error("typed getter with wrong type argument")
	}

	for _, e := range r.Entries() {
		if e.Type == typ {
			t.Error("fallback became a registration")
		}
	}
}

func TestEntriesResolved(t *testing.T) {
	r := newModelsRegistry(t)
	resolved := func() bool {
		for _, e := range r.Entries() {
			if e.Type == reflect.TypeFor[models.Data]() {
				return e.Resolved
			}
		}
		t.Fatal("Data not registered")
		return false
	}
	if resolved() {
		t.Error("Data resolved before lookup")
	}
	accessor.Resolve[models.Data](r)
	if !resolved() {
		t.Error("Data not resolved after lookup")
	}
}

func TestGenericNotRegistered(t *testing.T) {
	r := accessor.NewRegistry()
	if err := accessor.Register(r, func() accessor.TypedFactory[models.Data] {
		return accessor.NewTable[models.Data]().Build()
	}); err != nil {
		t.Fatal(err)
	}
	// Box provides a factory but its open form was never registered.
	if _, ok := accessor.Resolve[models.Box[int]](r); ok {
		t.Error("resolved Box[int] without a generic registration")
	}
}

func TestRegisterAccessorsIdempotent(t *testing.T) {
	r := newModelsRegistry(t)
	n := r.Len()
	f1, _ := accessor.Resolve[models.Data](r)
	models.RegisterAccessors(r)
	if r.Len() != n {
		t.Errorf("Len() = %d after second registration, want %d", r.Len(), n)
	}
	f2, _ := accessor.Resolve[models.Data](r)
	if f1 != f2 {
		t.Error("second registration replaced the factory")
	}
	// 7 concrete, 2 generic
	if n != 9 {
		t.Errorf("Len() = %d, want 9", n)
	}
}

func TestRegisterErrors(t *testing.T) {
	r := accessor.NewRegistry()
	if err := r.Register(nil, func() accessor.Factory { return nil }); !errors.Is(err, accessor.ErrNilType) {
		t.Errorf("Register(nil) = %v", err)
	}
	if err := r.Register(reflect.TypeFor[models.Data](), nil); !errors.Is(err, accessor.ErrNilConstructor) {
		t.Errorf("Register(nil ctor) = %v", err)
	}
	if err := r.RegisterGeneric(accessor.GenericKey{}); !errors.Is(err, accessor.ErrNilType) {
		t.Errorf("RegisterGeneric(empty) = %v", err)
	}
	err := r.RegisterGeneric(accessor.GenericKey{Package: modelsPath, Name: "Box"})
	if !errors.Is(err, accessor.ErrInvalidGenericKey) {
		t.Errorf("RegisterGeneric(arity 0) = %v", err)
	}
}

func TestFailedConstructor(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	r := accessor.NewRegistry(accessor.WithLogger(log))

	calls := 0
	r.Register(reflect.TypeFor[models.Data](), func() accessor.Factory {
		calls++
		panic("boom")
	})
	r.Register(reflect.TypeFor[models.Meta](), func() accessor.Factory {
		// factory bound to the wrong type
		return accessor.NewTable[models.Data]().Build()
	})

	if _, ok := r.Resolve(reflect.TypeFor[models.Data]()); ok {
		t.Error("resolved a panicking constructor")
	}
	if _, ok := r.Resolve(reflect.TypeFor[models.Data]()); ok {
		t.Error("resolved a panicking constructor")
	}
	if calls != 2 {
		t.Errorf("constructor called %d times, want 2 (misses are not cached)", calls)
	}
	if _, ok := r.Resolve(reflect.TypeFor[models.Meta]()); ok {
		t.Error("resolved a factory of the wrong type")
	}
	out := buf.String()
	if !strings.Contains(out, "boom") || !strings.Contains(out, "level=WARN") {
		t.Errorf("unexpected log output:\n%s", out)
	}
}

func TestEntries(t *testing.T) {
	r := newModelsRegistry(t)
	entries := r.Entries()
	var generics []accessor.GenericKey
	concrete := 0
	for _, e := range entries {
		if e.Type != nil {
			if len(generics) > 0 {
				t.Error("concrete entry after generic entries")
			}
			concrete++
			continue
		}
		generics = append(generics, e.Generic)
	}
	want := []accessor.GenericKey{
		{Package: modelsPath, Name: "Box", Arity: 1},
		{Package: modelsPath, Name: "Pair", Arity: 2},
	}
	if diff := cmp.Diff(want, generics); diff != "" {
		t.Errorf("generic entries mismatch (-want +got):\n%s", diff)
	}
	if concrete != 7 {
		t.Errorf("%d concrete entries, want 7", concrete)
	}
}

func TestConcurrentResolve(t *testing.T) {
	r := newModelsRegistry(t)
	types := []reflect.Type{
		reflect.TypeFor[models.Data](),
		reflect.TypeFor[models.Box[float64]](),
		reflect.TypeFor[models.Pair[int, string]](),
		reflect.TypeFor[models.Box[[]byte]](),
	}
	const n = 32
	results := make([][]accessor.Factory, len(types))
	for i := range results {
		results[i] = make([]accessor.Factory, n)
	}

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			for j, typ := range types {
				f, ok := r.Resolve(typ)
				if !ok {
					t.Errorf("no factory for %v", typ)
					return
				}
				results[j][i] = f
			}
		}(i)
	}
	close(start)
	wg.Wait()

	for j, fs := range results {
		for i := 1; i < n; i++ {
			if fs[i] != fs[0] {
				t.Errorf("%v: goroutine %d observed a different factory", types[j], i)
			}
		}
	}
}

func TestDefaultRegistry(t *testing.T) {
	if accessor.Default() != accessor.Default() {
		t.Error("Default() is not a singleton")
	}
}
