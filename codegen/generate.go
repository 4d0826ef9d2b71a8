package codegen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Result is the generated output of one package. Nothing is written until
// Write is called.
type Result struct {
	Package *PackageInfo

	// Types are the types accessors were generated for.
	Types []*TypeInfo

	// Closed are the validated closed instantiations.
	Closed []*ClosedInfo

	// Files maps file names, relative to the package directory, to their
	// generated content.
	Files map[string][]byte

	// Stale lists earlier generated files which are no longer produced.
	Stale []string

	Diagnostics []*Diagnostic
}

// FileNames returns the names of the generated files, sorted.
func (r *Result) FileNames() []string {
	names := make([]string, 0, len(r.Files))
	for name := range r.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GeneratePackage runs extraction, collection and emission for pkg.
func GeneratePackage(ctx context.Context, pkg *PackageInfo, cfg *CodegenConfig) (*Result, error) {
	if cfg == nil {
		cfg = &CodegenConfig{}
	}
	scan, err := ScanPackage(pkg, cfg)
	if err != nil {
		return nil, err
	}
	return GenerateScan(ctx, scan, cfg)
}

// GenerateScan emits the files of an already scanned package.
func GenerateScan(ctx context.Context, scan *Scan, cfg *CodegenConfig) (*Result, error) {
	if cfg == nil {
		cfg = &CodegenConfig{}
	}
	res := &Result{
		Package:     scan.Package,
		Files:       map[string][]byte{},
		Diagnostics: append([]*Diagnostic(nil), scan.Diagnostics...),
	}

	selected, err := cfg.Filter.Apply(scan.Types)
	if err != nil {
		return nil, err
	}
	selected, diags := CheckCollisions(scan, selected, cfg)
	res.Diagnostics = append(res.Diagnostics, diags...)

	// markers are validated against every marked type so that filtering a
	// type out does not turn its markers into diagnostics
	closed, diags := CollectInstantiations(scan.Markers, scan.Types)
	res.Diagnostics = append(res.Diagnostics, diags...)
	emitted := map[string]bool{}
	for _, t := range selected {
		emitted[t.Name] = true
	}
	for _, c := range closed {
		if emitted[c.Name] {
			res.Closed = append(res.Closed, c)
		}
	}
	res.Types = selected

	for _, t := range selected {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		src, err := EmitAccessor(t, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to generate accessors for %s: %w", t.Name, err)
		}
		res.Files[cfg.AccessorFileName(t)] = src
	}
	src, err := EmitRegistry(scan.Package, selected, res.Closed, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate registry for %s: %w", scan.Package.Path, err)
	}
	if src != nil {
		res.Files[cfg.registryFile()] = src
	}

	stale, err := staleFiles(scan.Package.Dir, res.Files, cfg)
	if err != nil {
		return nil, err
	}
	res.Stale = stale
	SortDiagnostics(res.Diagnostics)
	return res, nil
}

// staleFiles lists the files in dir that look like earlier output of the
// generator and are not in files.
func staleFiles(dir string, files map[string][]byte, cfg *CodegenConfig) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}
	var res []string
	for _, ent := range entries {
		name := ent.Name()
		if ent.IsDir() || files[name] != nil {
			continue
		}
		if !strings.HasSuffix(name, cfg.fileSuffix()) && name != cfg.registryFile() {
			continue
		}
		ok, err := isGeneratedFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, name)
		}
	}
	return res, nil
}

func isGeneratedFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()
	buf := make([]byte, len(generatedHeader))
	n, _ := f.Read(buf)
	return string(buf[:n]) == generatedHeader, nil
}

// Write writes the generated files and removes stale ones.
func (r *Result) Write() error {
	for _, name := range r.FileNames() {
		path := filepath.Join(r.Package.Dir, name)
		if err := os.WriteFile(path, r.Files[name], 0644); err != nil {
			return fmt.Errorf("failed to write output file %q: %w", path, err)
		}
	}
	for _, name := range r.Stale {
		path := filepath.Join(r.Package.Dir, name)
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove stale file %q: %w", path, err)
		}
	}
	return nil
}

// Check compares the generated files with what is on disk. It returns a
// diff per out of date file name and ErrStale if there is any.
func (r *Result) Check() (map[string]string, error) {
	diffs := map[string]string{}
	for _, name := range r.FileNames() {
		path := filepath.Join(r.Package.Dir, name)
		have, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %q: %w", path, err)
		}
		if bytes.Equal(have, r.Files[name]) {
			continue
		}
		diffs[name] = LineDiff(string(have), string(r.Files[name]))
	}
	for _, name := range r.Stale {
		have, err := os.ReadFile(filepath.Join(r.Package.Dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", name, err)
		}
		diffs[name] = LineDiff(string(have), "")
	}
	if len(diffs) > 0 {
		return diffs, fmt.Errorf("%w: %d files in %s", ErrStale, len(diffs), r.Package.Path)
	}
	return diffs, nil
}

// Generate generates every package in pkgs, calling report with each
// result before it is written (or checked). Packages are handled one at a
// time; a package's files are only written once all of them were emitted.
func Generate(ctx context.Context, pkgs []*PackageInfo, cfg *CodegenConfig, report func(*Result, map[string]string)) error {
	var stale error
	for _, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := GeneratePackage(ctx, pkg, cfg)
		if err != nil {
			return fmt.Errorf("failed to process package %q: %w", pkg.Path, err)
		}
		var diffs map[string]string
		if cfg != nil && cfg.Check {
			diffs, err = res.Check()
			if err != nil {
				if !errors.Is(err, ErrStale) {
					return err
				}
				stale = err
			}
		}
		if report != nil {
			report(res, diffs)
		}
		if cfg != nil && cfg.Check {
			continue
		}
		if err := res.Write(); err != nil {
			return err
		}
	}
	return stale
}
