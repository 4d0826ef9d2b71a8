package codegen

import (
	"strings"
	"testing"
)

func TestEmitRegistry(t *testing.T) {
	s := scanSources(t, nil, genericSrc)
	closed, _ := CollectInstantiations(s.Markers, s.Types)
	code, err := EmitRegistry(testPkg, s.Types, closed, nil)
	if err != nil {
		t.Fatalf("EmitRegistry failed: %v", err)
	}
	src := string(code)

	want := strings.Join([]string{
		"func RegisterAccessors(r *accessor.Registry) {",
		`	r.RegisterGeneric(accessor.GenericKey{Package: "example.com/models", Name: "Box", Arity: 1})`,
		"	accessor.Register(r, newAccessorFactoryForBox[time.Time])",
		"	accessor.Register(r, newAccessorFactoryForBox[int])",
		`	r.RegisterGeneric(accessor.GenericKey{Package: "example.com/models", Name: "Pair", Arity: 2})`,
		"	accessor.Register(r, newAccessorFactoryForPair[string, map[string]int])",
		"	accessor.Register(r, newAccessorFactoryForData)",
		"}",
	}, "\n")
	if !strings.Contains(src, want) {
		t.Errorf("Expected registration body %q, got:\n%s", want, src)
	}
	if !strings.Contains(src, "\t\"time\"\n") {
		t.Errorf("Expected time import, got:\n%s", src)
	}
	if strings.Contains(src, "func init()") {
		t.Errorf("Unexpected init, got:\n%s", src)
	}
}

func TestEmitRegistryInit(t *testing.T) {
	s := scanSources(t, nil, dataSrc)
	code, err := EmitRegistry(testPkg, s.Types, nil, &CodegenConfig{Init: true})
	if err != nil {
		t.Fatalf("EmitRegistry failed: %v", err)
	}
	src := string(code)
	if !strings.Contains(src, "func init() {\n\tRegisterAccessors(accessor.Default())\n}") {
		t.Errorf("Expected init, got:\n%s", src)
	}
	if !strings.Contains(src, `import accessor "github.com/signadot/go-accessor"`) {
		t.Errorf("Expected single runtime import, got:\n%s", src)
	}
}

func TestEmitRegistryEmpty(t *testing.T) {
	code, err := EmitRegistry(testPkg, nil, nil, nil)
	if err != nil || code != nil {
		t.Errorf("EmitRegistry() = %q, %v, want nil", code, err)
	}
}

func TestEmitRegistryOrphanClosed(t *testing.T) {
	s := scanSources(t, nil, genericSrc)
	closed, _ := CollectInstantiations(s.Markers, s.Types)
	// only Data is emitted
	code, err := EmitRegistry(testPkg, []*TypeInfo{findType(t, s, "Data")}, closed, nil)
	if err != nil {
		t.Fatalf("EmitRegistry failed: %v", err)
	}
	if strings.Contains(string(code), "Box") {
		t.Errorf("closed instantiation of a type that is not emitted, got:\n%s", code)
	}
}
