package codegen

import (
	"bytes"
	"fmt"
	"go/ast"
	"path"
	"sort"
	"strings"

	"github.com/signadot/go-accessor/debug"
)

const generatedHeader = "// Code generated by accessor-gen. DO NOT EDIT.\n"

// runtimeName is the name the generated code uses for the runtime package.
const runtimeName = "accessor"

// FactoryTypeName is the name of the generated factory type of t.
func FactoryTypeName(t *TypeInfo) string {
	return "accessorFactoryFor" + t.Name
}

// ConstructorName is the name of the generated factory constructor of t.
func ConstructorName(t *TypeInfo) string {
	return "newAccessorFactoryFor" + t.Name
}

// EmitAccessor generates the accessor file of t: the factory type, its
// constructor, the per member helpers and, for generic types, the
// NewAccessorFactory method used by the registry to instantiate the type at
// runtime.
func EmitAccessor(t *TypeInfo, cfg *CodegenConfig) ([]byte, error) {
	e := &emitter{}
	e.header(t.Package, typeImports(t))

	tparams := typeParamList(t)
	args := typeArgList(t)
	self := t.Name + args
	factory := FactoryTypeName(t) + args

	e.printf("type %s%s struct{}\n\n", FactoryTypeName(t), tparams)

	e.printf("func %s%s() %s.TypedFactory[%s] {\n", ConstructorName(t), tparams, runtimeName, self)
	if len(t.Members) == 0 {
		e.printf("\treturn %s.NewTable[%s]().Build()\n}\n", runtimeName, self)
	} else {
		e.printf("\tvar f %s\n", factory)
		e.printf("\treturn %s.NewTable[%s]().\n", runtimeName, self)
		for _, m := range t.Members {
			if m.Readable {
				e.printf("\t\tGetter(%q, f.untypedGetter%s).\n", m.Name, m.Field)
			}
			if m.Writable {
				e.printf("\t\tSetter(%q, f.untypedSetter%s).\n", m.Name, m.Field)
			}
			if m.Readable {
				e.printf("\t\tTypedGetter(%q, f.typedGetter%s).\n", m.Name, m.Field)
			}
			if m.Writable {
				e.printf("\t\tTypedSetter(%q, f.typedSetter%s).\n", m.Name, m.Field)
			}
		}
		e.printf("\t\tBuild()\n}\n")
	}

	for _, m := range t.Members {
		if m.Readable {
			e.printf("\nfunc (%s) untypedGetter%s(obj any) any {\n", factory, m.Field)
			switch m.Nullable {
			case NullAlways:
				e.printf("\tif v := obj.(*%s).%s; v != nil {\n\t\treturn v\n\t}\n\treturn nil\n}\n", self, m.Field)
			case NullUnknown:
				e.printf("\treturn %s.Box(obj.(*%s).%s)\n}\n", runtimeName, self, m.Field)
			default:
				e.printf("\treturn obj.(*%s).%s\n}\n", self, m.Field)
			}
		}
		if m.Writable {
			e.printf("\nfunc (%s) untypedSetter%s(obj any, v any) {\n", factory, m.Field)
			e.printf("\tobj.(*%s).%s = %s.Cast[%s](v)\n}\n", self, m.Field, runtimeName, m.Type)
		}
		if m.Readable {
			e.printf("\nfunc (%s) typedGetter%s(x *%s) %s {\n", factory, m.Field, self, m.Type)
			e.printf("\treturn x.%s\n}\n", m.Field)
		}
		if m.Writable {
			e.printf("\nfunc (%s) typedSetter%s(x *%s, v %s) {\n", factory, m.Field, self, m.Type)
			e.printf("\tx.%s = v\n}\n", m.Field)
		}
	}

	if t.IsGeneric() {
		e.printf("\n// %s returns the accessor factory of this instantiation of %s.\n", providerMethod, t.Name)
		e.printf("func (*%s) %s() %s.Factory {\n", self, providerMethod, runtimeName)
		e.printf("\treturn %s%s()\n}\n", ConstructorName(t), args)
	}

	filename := cfg.AccessorFileName(t)
	if debug.Emit() {
		debug.Logf("emit %s: %s (%d members)\n", t.SimpleName(), filename, len(t.Members))
	}
	return Format(filename, e.Bytes())
}

// EmitClosedConstructor renders the constructor of the closed
// instantiation c of parent, e.g. newAccessorFactoryForBox[time.Time].
func EmitClosedConstructor(c *ClosedInfo, parent *TypeInfo) string {
	return ConstructorName(parent) + "[" + strings.Join(c.TypeArgs, ", ") + "]"
}

// CheckCollisions returns the types of s that can be emitted without
// clashing with identifiers already declared in the package, and a
// diagnostic for each one that cannot.
func CheckCollisions(s *Scan, typeInfos []*TypeInfo, cfg *CodegenConfig) ([]*TypeInfo, []*Diagnostic) {
	var (
		res   []*TypeInfo
		diags []*Diagnostic
	)
	var clash string
	switch {
	case s.TopLevel[registerFunc]:
		clash = registerFunc + " is already declared in package %s"
	case s.TopLevel[runtimeName]:
		clash = runtimeName + " is already declared in package %s"
	case s.SourceFiles[cfg.registryFile()]:
		clash = "registry file " + cfg.registryFile() + " is not generated in package %s"
	}
	if clash != "" {
		for _, t := range typeInfos {
			diags = append(diags, warnf(NameCollision, t.Pos, clash, t.Package))
		}
		return nil, diags
	}
	files := map[string]string{cfg.registryFile(): registerFunc}
	for name := range s.SourceFiles {
		files[name] = "a source file"
	}
	for _, t := range typeInfos {
		if d := collision(s, t, files, cfg); d != nil {
			diags = append(diags, d)
			continue
		}
		files[cfg.AccessorFileName(t)] = t.Name
		res = append(res, t)
	}
	return res, diags
}

// reservedNames are the identifiers generated code declares or imports
// inside the scope of a type's parameters.
var reservedNames = map[string]bool{runtimeName: true, "f": true, "obj": true, "v": true, "x": true}

func collision(s *Scan, t *TypeInfo, files map[string]string, cfg *CodegenConfig) *Diagnostic {
	for _, id := range []string{FactoryTypeName(t), ConstructorName(t)} {
		if s.TopLevel[id] {
			return warnf(NameCollision, t.Pos, "%s: generated identifier %s is already declared", t.Name, id)
		}
	}
	for _, p := range t.TypeParams {
		if reservedNames[p.Name] {
			return warnf(NameCollision, t.Pos, "%s: type parameter %s clashes with a generated identifier", t.Name, p.Name)
		}
	}
	if _, ok := typeImports(t)[runtimeName]; ok {
		return warnf(NameCollision, t.Pos, "%s: member types import a package named %s", t.Name, runtimeName)
	}
	if t.IsGeneric() {
		if t.Methods[providerMethod] {
			return warnf(NameCollision, t.Pos, "%s already has a method %s", t.Name, providerMethod)
		}
		for _, m := range t.Members {
			if m.Field == providerMethod {
				return warnf(NameCollision, t.Pos, "%s has a field %s", t.Name, providerMethod)
			}
		}
	}
	name := cfg.AccessorFileName(t)
	if other, ok := files[name]; ok {
		return warnf(NameCollision, t.Pos, "%s: output file %s is already used by %s", t.Name, name, other)
	}
	return nil
}

func typeParamList(t *TypeInfo) string {
	if !t.IsGeneric() {
		return ""
	}
	parts := make([]string, len(t.TypeParams))
	for i, p := range t.TypeParams {
		parts[i] = p.Name + " " + p.Constraint
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func typeArgList(t *TypeInfo) string {
	if !t.IsGeneric() {
		return ""
	}
	return "[" + strings.Join(t.ParamNames(), ", ") + "]"
}

// typeImports returns the imports needed by the member types and type
// parameter constraints of t.
func typeImports(t *TypeInfo) map[string]string {
	exprs := make([]ast.Expr, 0, len(t.Members)+len(t.Constraints))
	for _, m := range t.Members {
		exprs = append(exprs, m.ASTType)
	}
	exprs = append(exprs, t.Constraints...)
	return selectorImports(exprs, t.Imports)
}

func selectorImports(exprs []ast.Expr, imports map[string]string) map[string]string {
	res := map[string]string{}
	for _, expr := range exprs {
		if expr == nil {
			continue
		}
		ast.Inspect(expr, func(n ast.Node) bool {
			sel, ok := n.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			if id, ok := sel.X.(*ast.Ident); ok {
				if p, ok := imports[id.Name]; ok {
					res[id.Name] = p
				}
			}
			return false
		})
	}
	return res
}

type emitter struct {
	bytes.Buffer
}

func (e *emitter) printf(format string, args ...any) {
	fmt.Fprintf(&e.Buffer, format, args...)
}

// header writes the generated file header, package clause and imports. The
// runtime package is always imported, in a group of its own.
func (e *emitter) header(pkgName string, imports map[string]string) {
	e.printf("%s\npackage %s\n\n", generatedHeader, pkgName)
	if len(imports) == 0 {
		e.printf("import %s %q\n\n", runtimeName, RuntimeImport)
		return
	}
	names := make([]string, 0, len(imports))
	for name := range imports {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return imports[names[i]] < imports[names[j]] })
	e.printf("import (\n")
	for _, name := range names {
		p := imports[name]
		if path.Base(p) == name {
			e.printf("\t%q\n", p)
		} else {
			e.printf("\t%s %q\n", name, p)
		}
	}
	e.printf("\n\t%s %q\n)\n\n", runtimeName, RuntimeImport)
}
