package codegen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/go-accessor/debug"
)

const (
	generateDirective    = "//accessor:generate"
	instantiateDirective = "//accessor:instantiate"

	// providerMethod is the method generated on open generic types.
	providerMethod = "NewAccessorFactory"
)

// Scan holds everything extracted from one package.
type Scan struct {
	Package *PackageInfo
	Fset    *token.FileSet

	// Types are the marked struct types in source order.
	Types []*TypeInfo

	// Markers are the unvalidated //accessor:instantiate directives.
	Markers []*InstantiationMarker

	// TopLevel holds every package level identifier declared outside of
	// generated files.
	TopLevel map[string]bool

	// SourceFiles holds the base names of the package files this generator
	// did not write. They must never be overwritten.
	SourceFiles map[string]bool

	Diagnostics []*Diagnostic
}

// ParseFile parses a Go source file and returns its AST.
func ParseFile(filename string) (*ast.File, *token.FileSet, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse file %q: %w", filename, err)
	}
	return file, fset, nil
}

// ScanPackage parses the non-generated files of pkg and extracts its marked
// types and instantiation markers. cfg may be nil.
func ScanPackage(pkg *PackageInfo, cfg *CodegenConfig) (*Scan, error) {
	fset := token.NewFileSet()
	var (
		files   []*ast.File
		foreign []string
	)
	for _, path := range pkg.Files {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", path, err)
		}
		file, err := parser.ParseFile(fset, path, src, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("failed to parse file %q: %w", path, err)
		}
		if ast.IsGenerated(file) {
			if !bytes.HasPrefix(src, []byte(generatedHeader)) {
				foreign = append(foreign, filepath.Base(path))
			}
			continue
		}
		files = append(files, file)
	}
	s := ScanFiles(fset, pkg, files, cfg)
	for _, name := range foreign {
		s.SourceFiles[name] = true
	}
	return s, nil
}

// ScanFiles extracts marked types and markers from already parsed files of
// one package. cfg may be nil.
func ScanFiles(fset *token.FileSet, pkg *PackageInfo, files []*ast.File, cfg *CodegenConfig) *Scan {
	s := &Scan{
		Package:     pkg,
		Fset:        fset,
		TopLevel:    map[string]bool{},
		SourceFiles: map[string]bool{},
	}
	methods := map[string]map[string]bool{}
	for _, file := range files {
		collectTopLevel(file, s.TopLevel, methods)
		if !ast.IsGenerated(file) {
			s.SourceFiles[filepath.Base(fset.Position(file.Package).Filename)] = true
		}
	}
	for _, file := range files {
		types, diags := extractTypes(fset, file, pkg, cfg != nil && cfg.Unexported)
		for _, t := range types {
			t.Methods = methods[t.Name]
		}
		s.Types = append(s.Types, types...)
		s.Diagnostics = append(s.Diagnostics, diags...)
		s.Markers = append(s.Markers, ExtractInstantiationMarkers(fset, file, pkg)...)
	}
	return s
}

// ExtractTypes extracts the struct types of file carrying the generate
// directive. Only fields declared directly on each struct are captured;
// embedded fields are not followed.
func ExtractTypes(fset *token.FileSet, file *ast.File, pkg *PackageInfo) ([]*TypeInfo, []*Diagnostic) {
	return extractTypes(fset, file, pkg, false)
}

func extractTypes(fset *token.FileSet, file *ast.File, pkg *PackageInfo, unexportedAll bool) ([]*TypeInfo, []*Diagnostic) {
	var (
		res   []*TypeInfo
		diags []*Diagnostic
	)
	imports := ExtractImports(file)
	filePath := fset.Position(file.Pos()).Filename

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)
			opts, marked, err := generateOptions(typeDoc(genDecl, typeSpec))
			if !marked {
				continue
			}
			pos := fset.Position(typeSpec.Pos())
			if err != nil {
				diags = append(diags, warnf(UnsupportedType, pos, "type %s: bad %s options: %v", typeSpec.Name.Name, generateDirective, err))
				continue
			}
			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok || typeSpec.Assign.IsValid() {
				diags = append(diags, warnf(UnsupportedType, pos, "type %s is not a struct type", typeSpec.Name.Name))
				continue
			}

			info := &TypeInfo{
				Namespace: pkg.Path,
				Package:   pkg.Name,
				Name:      typeSpec.Name.Name,
				Imports:   imports,
				FilePath:  filePath,
				Pos:       pos,
			}
			if typeSpec.TypeParams != nil {
				for _, field := range typeSpec.TypeParams.List {
					for _, name := range field.Names {
						info.TypeParams = append(info.TypeParams, TypeParam{
							Name:       name.Name,
							Constraint: types.ExprString(field.Type),
						})
						info.Constraints = append(info.Constraints, field.Type)
					}
				}
			}
			_, unexported := opts["unexported"]
			members, mdiags := extractMembers(fset, structType, info, unexported || unexportedAll)
			info.Members = members
			diags = append(diags, mdiags...)

			if debug.Extract() {
				debug.Logf("extract %s.%s: %d members %v\n", info.Namespace, info.SimpleName(), len(members), info.MemberNames())
			}
			res = append(res, info)
		}
	}
	return res, diags
}

// typeDoc returns the doc comment of a type spec; for an unparenthesized
// declaration the comment is attached to the GenDecl.
func typeDoc(genDecl *ast.GenDecl, spec *ast.TypeSpec) *ast.CommentGroup {
	if spec.Doc != nil {
		return spec.Doc
	}
	if !genDecl.Lparen.IsValid() {
		return genDecl.Doc
	}
	return nil
}

// generateOptions finds the generate directive in doc and parses its
// options, e.g. "//accessor:generate unexported".
func generateOptions(doc *ast.CommentGroup) (map[string]string, bool, error) {
	if doc == nil {
		return nil, false, nil
	}
	for _, c := range doc.List {
		rest, ok := directiveArg(c.Text, generateDirective)
		if !ok {
			continue
		}
		opts, err := ParseStructTag(rest)
		return opts, true, err
	}
	return nil, false, nil
}

// directiveArg reports whether text is the given directive and returns its
// argument.
func directiveArg(text, directive string) (string, bool) {
	if !strings.HasPrefix(text, directive) {
		return "", false
	}
	rest := text[len(directive):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

func extractMembers(fset *token.FileSet, st *ast.StructType, info *TypeInfo, unexported bool) ([]*MemberInfo, []*Diagnostic) {
	if st.Fields == nil {
		return nil, nil
	}
	params := map[string]bool{}
	for _, p := range info.TypeParams {
		params[p.Name] = true
	}

	var (
		members []*MemberInfo
		diags   []*Diagnostic
	)
	seen := map[string]bool{}
	for _, field := range st.Fields.List {
		// embedded fields belong to another type
		if len(field.Names) == 0 {
			continue
		}
		var parsed map[string]string
		if field.Tag != nil {
			if raw, ok := fieldTag(field.Tag.Value); ok {
				var err error
				parsed, err = ParseStructTag(raw)
				if err != nil {
					diags = append(diags, warnf(InvalidMemberTag, fset.Position(field.Pos()), "%s: %v", info.Name, err))
					continue
				}
			}
		}
		if _, ok := parsed["-"]; ok {
			continue
		}
		_, readonly := parsed["readonly"]
		_, writeonly := parsed["writeonly"]

		for _, name := range field.Names {
			if name.Name == "_" || (!name.IsExported() && !unexported) {
				continue
			}
			pos := fset.Position(name.Pos())
			if readonly && writeonly {
				diags = append(diags, warnf(InvalidMemberTag, pos, "%s.%s is both readonly and writeonly", info.Name, name.Name))
				continue
			}
			lookup := name.Name
			if alias, ok := parsed["name"]; ok {
				if alias == "" {
					diags = append(diags, warnf(InvalidMemberTag, pos, "%s.%s: empty name", info.Name, name.Name))
					continue
				}
				lookup = alias
			}
			if seen[lookup] {
				diags = append(diags, warnf(DuplicateMember, pos, "%s: member name %q already used", info.Name, lookup))
				continue
			}
			seen[lookup] = true
			members = append(members, &MemberInfo{
				Name:     lookup,
				Field:    name.Name,
				Type:     types.ExprString(field.Type),
				ASTType:  field.Type,
				Readable: !writeonly,
				Writable: !readonly,
				Nullable: classifyNullability(field.Type, params),
			})
		}
	}
	return members, diags
}

var valueBuiltins = map[string]bool{
	"bool": true, "string": true, "byte": true, "rune": true, "uintptr": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"float32": true, "float64": true, "complex64": true, "complex128": true,
}

func classifyNullability(expr ast.Expr, params map[string]bool) Nullability {
	switch x := expr.(type) {
	case *ast.StarExpr, *ast.MapType, *ast.ChanType, *ast.FuncType:
		return NullAlways
	case *ast.InterfaceType:
		return NullUnknown
	case *ast.ArrayType:
		if x.Len == nil {
			return NullAlways
		}
		return NullNever
	case *ast.StructType:
		return NullNever
	case *ast.ParenExpr:
		return classifyNullability(x.X, params)
	case *ast.Ident:
		switch {
		case params[x.Name]:
			return NullUnknown
		case valueBuiltins[x.Name]:
			return NullNever
		}
	}
	return NullUnknown
}

// ExtractImports extracts imports from an AST file.
// Returns a map of package name -> import path. Blank and dot imports are
// left out since generated code cannot refer to them by name.
func ExtractImports(file *ast.File) map[string]string {
	imports := make(map[string]string)
	for _, imp := range file.Imports {
		path := strings.Trim(imp.Path.Value, "\"`")
		var name string
		if imp.Name != nil {
			name = imp.Name.Name
		} else {
			name = filepath.Base(path)
			// gopkg.in/yaml.v3 style paths
			if i := strings.IndexByte(name, '.'); i > 0 {
				name = name[:i]
			}
		}
		if name == "_" || name == "." {
			continue
		}
		imports[name] = path
	}
	return imports
}

// collectTopLevel records package level identifiers and the methods
// declared per receiver type.
func collectTopLevel(file *ast.File, names map[string]bool, methods map[string]map[string]bool) {
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil || len(d.Recv.List) == 0 {
				names[d.Name.Name] = true
				continue
			}
			recv := receiverTypeName(d.Recv.List[0].Type)
			if recv == "" {
				continue
			}
			if methods[recv] == nil {
				methods[recv] = map[string]bool{}
			}
			methods[recv][d.Name.Name] = true
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					names[s.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range s.Names {
						names[n.Name] = true
					}
				}
			}
		}
	}
}

func receiverTypeName(expr ast.Expr) string {
	switch x := expr.(type) {
	case *ast.StarExpr:
		return receiverTypeName(x.X)
	case *ast.ParenExpr:
		return receiverTypeName(x.X)
	case *ast.IndexExpr:
		return receiverTypeName(x.X)
	case *ast.IndexListExpr:
		return receiverTypeName(x.X)
	case *ast.Ident:
		return x.Name
	}
	return ""
}
