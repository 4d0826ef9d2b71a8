package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"
)

var testPkg = &PackageInfo{Path: "example.com/models", Name: "models"}

// scanSources scans source files of one package, keyed by file name.
func scanSources(t *testing.T, cfg *CodegenConfig, srcs ...string) *Scan {
	t.Helper()
	fset := token.NewFileSet()
	var files []*ast.File
	for i, src := range srcs {
		file, err := parser.ParseFile(fset, fileName(i), src, parser.ParseComments)
		if err != nil {
			t.Fatalf("failed to parse source %d: %v", i, err)
		}
		files = append(files, file)
	}
	return ScanFiles(fset, testPkg, files, cfg)
}

func fileName(i int) string {
	return string(rune('a'+i)) + ".go"
}

func findType(t *testing.T, s *Scan, name string) *TypeInfo {
	t.Helper()
	for _, ti := range s.Types {
		if ti.Name == name {
			return ti
		}
	}
	t.Fatalf("type %s not extracted", name)
	return nil
}

func diagCodes(ds []*Diagnostic) []DiagnosticCode {
	var res []DiagnosticCode
	for _, d := range ds {
		res = append(res, d.Code)
	}
	return res
}

func mustParse(t *testing.T, src string) *ast.File {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "x.go", src, parser.ParseComments)
	if err != nil {
		t.Fatal(err)
	}
	return file
}
