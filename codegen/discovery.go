package codegen

import (
	"fmt"
	"go/build"
	"os"
	"path/filepath"
	"strings"
)

// DiscoverPackages discovers Go packages in the given directory.
// If recursive is true, it scans subdirectories recursively. Import paths
// are resolved with loader, which may be nil to use a fresh one.
func DiscoverPackages(dir string, recursive bool, loader *PackageLoader) ([]*PackageInfo, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %q: %w", dir, err)
	}
	if loader == nil {
		loader = NewPackageLoader()
	}

	var packages []*PackageInfo
	visited := make(map[string]bool)

	err = filepath.Walk(absDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		// Skip hidden, underscore and vendor directories, as the go tool does
		base := filepath.Base(path)
		if path != absDir && (strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_") || base == "vendor" || base == "testdata") {
			return filepath.SkipDir
		}

		if !recursive && path != absDir {
			return filepath.SkipDir
		}

		pkg, err := build.ImportDir(path, 0)
		if err != nil {
			// Not a valid Go package, skip
			return nil
		}
		if len(pkg.GoFiles) == 0 {
			return nil
		}

		importPath, err := loader.ImportPath(path)
		if err != nil {
			return err
		}
		if visited[importPath] {
			return nil
		}
		visited[importPath] = true

		files := make([]string, 0, len(pkg.GoFiles))
		for _, f := range pkg.GoFiles {
			files = append(files, filepath.Join(path, f))
		}

		packages = append(packages, &PackageInfo{
			Path:  importPath,
			Dir:   path,
			Name:  pkg.Name,
			Files: files,
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %q: %w", dir, err)
	}

	return packages, nil
}
