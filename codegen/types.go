package codegen

import (
	"go/ast"
	"go/token"
	"strings"
)

// Nullability classifies whether a member's values can be nil.
type Nullability int

const (
	// NullNever marks value types (builtin scalars, arrays, struct literals).
	NullNever Nullability = iota
	// NullAlways marks pointers, slices, maps, channels and funcs.
	NullAlways
	// NullUnknown marks interfaces, type parameters and named types, whose
	// dynamic kind is not visible from the declaration.
	NullUnknown
)

func (n Nullability) String() string {
	switch n {
	case NullNever:
		return "never"
	case NullAlways:
		return "always"
	default:
		return "unknown"
	}
}

// MemberInfo describes one accessible struct field.
type MemberInfo struct {
	// Name is the lookup name, the field name unless renamed by a tag.
	Name string

	// Field is the Go field name.
	Field string

	// Type is the field type as Go source.
	Type string

	// ASTType is the field type expression.
	ASTType ast.Expr

	Readable bool
	Writable bool

	Nullable Nullability
}

// TypeParam is one entry of a generic type's parameter list.
type TypeParam struct {
	Name       string
	Constraint string
}

// TypeInfo describes one struct type marked with //accessor:generate.
type TypeInfo struct {
	// Namespace is the package import path.
	Namespace string

	// Package is the package name.
	Package string

	// Name is the bare type name.
	Name string

	// TypeParams is the declaration's own type parameter list, in order.
	TypeParams []TypeParam

	// Members holds the accessible fields in declaration order.
	Members []*MemberInfo

	// Methods holds the names of methods declared on the type anywhere in
	// its package.
	Methods map[string]bool

	// Imports maps package names to import paths for the declaring file.
	Imports map[string]string

	// Constraints holds the constraint expressions, parallel to TypeParams.
	Constraints []ast.Expr

	FilePath string
	Pos      token.Position
}

// Arity is the number of type parameters, zero for non-generic types.
func (t *TypeInfo) Arity() int {
	return len(t.TypeParams)
}

// IsGeneric reports whether the type declares type parameters.
func (t *TypeInfo) IsGeneric() bool {
	return len(t.TypeParams) > 0
}

// SimpleName renders the type name with its parameter names, e.g.
// "Pair[K, V]".
func (t *TypeInfo) SimpleName() string {
	if !t.IsGeneric() {
		return t.Name
	}
	return t.Name + "[" + strings.Join(t.ParamNames(), ", ") + "]"
}

// ParamNames returns the type parameter names in order.
func (t *TypeInfo) ParamNames() []string {
	names := make([]string, len(t.TypeParams))
	for i, p := range t.TypeParams {
		names[i] = p.Name
	}
	return names
}

// MemberNames returns the lookup names of the members in order.
func (t *TypeInfo) MemberNames() []string {
	names := make([]string, len(t.Members))
	for i, m := range t.Members {
		names[i] = m.Name
	}
	return names
}

// InstantiationMarker is one //accessor:instantiate directive as found in
// the source, before validation.
type InstantiationMarker struct {
	// Expr is the directive argument, e.g. "Box[time.Time]".
	Expr string

	// Owner is the name of the type whose doc comment carries the marker,
	// empty for markers at file scope.
	Owner string

	// Namespace is the import path of the package containing the marker.
	Namespace string

	// Imports maps package names to import paths for the marker's file.
	Imports map[string]string

	Pos token.Position
}

// ClosedInfo is a validated request to register one instantiation of an
// open generic type.
type ClosedInfo struct {
	// Namespace is the package import path of the generic type.
	Namespace string

	// Name is the base name of the generic type.
	Name string

	// TypeArgs holds the type arguments as Go source, in order.
	TypeArgs []string

	// Imports maps package names used by TypeArgs to their import paths.
	Imports map[string]string

	Pos token.Position
}

// ClosedName renders the instantiated type, e.g. "Pair[string, int]".
func (c *ClosedInfo) ClosedName() string {
	return c.Name + "[" + strings.Join(c.TypeArgs, ", ") + "]"
}

// PackageInfo holds information about a Go package.
type PackageInfo struct {
	// Path is the package import path (e.g., "github.com/user/project/models")
	Path string

	// Dir is the directory containing the package
	Dir string

	// Name is the package name (e.g., "models")
	Name string

	// Files contains paths to all .go files in the package
	Files []string
}

// CodegenConfig holds configuration for code generation.
type CodegenConfig struct {
	// FileSuffix is appended to the lower-cased type name to form the
	// accessor file name (default: _accessor_gen.go).
	FileSuffix string

	// RegistryFile is the name of the registry file (default:
	// accessor_registry_gen.go).
	RegistryFile string

	// Init emits an init function registering the package's accessors
	// with accessor.Default().
	Init bool

	// Unexported includes unexported fields of every marked type, as if
	// each directive carried the unexported option.
	Unexported bool

	// Filter, if set, selects which marked types are generated.
	Filter *Filter

	// Check compares instead of writing.
	Check bool
}

const (
	DefaultFileSuffix   = "_accessor_gen.go"
	DefaultRegistryFile = "accessor_registry_gen.go"

	// RuntimeImport is the import path of the accessor runtime.
	RuntimeImport = "github.com/signadot/go-accessor"
)

func (c *CodegenConfig) fileSuffix() string {
	if c == nil || c.FileSuffix == "" {
		return DefaultFileSuffix
	}
	return c.FileSuffix
}

func (c *CodegenConfig) registryFile() string {
	if c == nil || c.RegistryFile == "" {
		return DefaultRegistryFile
	}
	return c.RegistryFile
}

// AccessorFileName returns the name of the file generated for t.
func (c *CodegenConfig) AccessorFileName(t *TypeInfo) string {
	return strings.ToLower(t.Name) + c.fileSuffix()
}
