package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"

	"github.com/signadot/go-accessor/debug"
)

// ExtractInstantiationMarkers finds the //accessor:instantiate directives of
// file. A directive in the doc comment of a type declaration is owned by
// that type; every other top level directive applies to the whole package.
// Directives inside declarations, such as on struct fields or in function
// bodies, are ignored.
func ExtractInstantiationMarkers(fset *token.FileSet, file *ast.File, pkg *PackageInfo) []*InstantiationMarker {
	owners := map[*ast.CommentGroup]string{}
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)
			if doc := typeDoc(genDecl, typeSpec); doc != nil {
				owners[doc] = typeSpec.Name.Name
			}
		}
	}

	imports := ExtractImports(file)
	var res []*InstantiationMarker
	for _, group := range file.Comments {
		owner, owned := owners[group]
		if !owned && insideDecl(file, group) {
			continue
		}
		for _, c := range group.List {
			arg, ok := directiveArg(c.Text, instantiateDirective)
			if !ok {
				continue
			}
			res = append(res, &InstantiationMarker{
				Expr:      arg,
				Owner:     owner,
				Namespace: pkg.Path,
				Imports:   imports,
				Pos:       fset.Position(c.Pos()),
			})
		}
	}
	return res
}

func insideDecl(file *ast.File, group *ast.CommentGroup) bool {
	for _, decl := range file.Decls {
		if decl.Pos() <= group.Pos() && group.End() <= decl.End() {
			return true
		}
	}
	return false
}

// CollectInstantiations validates markers against the marked types and
// returns one ClosedInfo per distinct valid request. Invalid markers are
// reported and dropped.
func CollectInstantiations(markers []*InstantiationMarker, typeInfos []*TypeInfo) ([]*ClosedInfo, []*Diagnostic) {
	var (
		res   []*ClosedInfo
		diags []*Diagnostic
	)
	seen := map[string]bool{}
	for _, m := range markers {
		c, d := collectOne(m, typeInfos)
		if d != nil {
			if debug.Collect() {
				debug.Logf("collect %q: dropped: %s\n", m.Expr, d.Message)
			}
			diags = append(diags, d)
			continue
		}
		key := c.Namespace + "." + c.ClosedName()
		if seen[key] {
			continue
		}
		seen[key] = true
		if debug.Collect() {
			debug.Logf("collect %q: %s\n", m.Expr, key)
		}
		res = append(res, c)
	}
	return res, diags
}

func collectOne(m *InstantiationMarker, typeInfos []*TypeInfo) (*ClosedInfo, *Diagnostic) {
	if m.Expr == "" {
		return nil, warnf(MalformedInstantiation, m.Pos, "%s requires a type argument", instantiateDirective)
	}
	expr, err := parser.ParseExpr(m.Expr)
	if err != nil {
		return nil, warnf(MalformedInstantiation, m.Pos, "%q is not a type expression: %v", m.Expr, err)
	}

	var (
		base ast.Expr
		args []ast.Expr
	)
	switch x := expr.(type) {
	case *ast.IndexExpr:
		base, args = x.X, []ast.Expr{x.Index}
	case *ast.IndexListExpr:
		base, args = x.X, x.Indices
	case *ast.Ident:
		if t := lookupType(typeInfos, m.Namespace, x.Name); t != nil && t.IsGeneric() {
			return nil, warnf(OpenTypeArgument, m.Pos, "type must be closed. type=[%s]", t.SimpleName())
		}
		return nil, warnf(InvalidTypeArgument, m.Pos, "type must be generic type. type=[%s]", m.Expr)
	case *ast.SelectorExpr:
		return nil, warnf(InvalidTypeArgument, m.Pos, "type must be generic type. type=[%s]", m.Expr)
	default:
		return nil, warnf(MalformedInstantiation, m.Pos, "%q is not a named generic type", m.Expr)
	}

	ident, ok := base.(*ast.Ident)
	if !ok {
		return nil, warnf(UnknownGenericType, m.Pos, "%s must name a generic type declared in this package", types.ExprString(base))
	}
	name := ident.Name
	target := lookupType(typeInfos, m.Namespace, name)
	if target != nil && !target.IsGeneric() {
		return nil, warnf(InvalidTypeArgument, m.Pos, "type must be generic type. type=[%s]", name)
	}
	if m.Owner != "" && m.Owner != name {
		return nil, warnf(InvalidAttributeLocation, m.Pos, "attribute must be in the same location as the target type. type=[%s] location=[%s]", name, m.Owner)
	}
	if target == nil {
		return nil, warnf(UnknownGenericType, m.Pos, "no generic type %s marked with %s", name, generateDirective)
	}
	if len(args) != target.Arity() {
		return nil, warnf(ArityMismatch, m.Pos, "%s takes %d type arguments, got %d", target.SimpleName(), target.Arity(), len(args))
	}

	params := map[string]bool{}
	for _, p := range target.TypeParams {
		params[p.Name] = true
	}
	c := &ClosedInfo{
		Namespace: m.Namespace,
		Name:      name,
		Imports:   map[string]string{},
		Pos:       m.Pos,
	}
	for _, arg := range args {
		var bad *Diagnostic
		ast.Inspect(arg, func(n ast.Node) bool {
			if bad != nil {
				return false
			}
			switch x := n.(type) {
			case *ast.SelectorExpr:
				pkgIdent, ok := x.X.(*ast.Ident)
				if !ok {
					return true
				}
				path, ok := m.Imports[pkgIdent.Name]
				if !ok {
					bad = warnf(MalformedInstantiation, m.Pos, "package %s is not imported by %s", pkgIdent.Name, m.Pos.Filename)
					return false
				}
				c.Imports[pkgIdent.Name] = path
				return false
			case *ast.Ident:
				if params[x.Name] {
					bad = warnf(OpenTypeArgument, m.Pos, "type argument %s of %s is a type parameter", x.Name, m.Expr)
				}
			}
			return true
		})
		if bad != nil {
			return nil, bad
		}
		c.TypeArgs = append(c.TypeArgs, types.ExprString(arg))
	}
	return c, nil
}

func lookupType(typeInfos []*TypeInfo, namespace, name string) *TypeInfo {
	for _, t := range typeInfos {
		if t.Namespace == namespace && t.Name == name {
			return t
		}
	}
	return nil
}
