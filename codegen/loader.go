package codegen

import (
	"fmt"
	"path/filepath"
	"sync"

	"golang.org/x/tools/go/packages"
)

// PackageLoader resolves package directories to import paths and caches
// the results.
type PackageLoader struct {
	cache map[string]string
	mu    sync.RWMutex
}

// NewPackageLoader creates a new PackageLoader.
func NewPackageLoader() *PackageLoader {
	return &PackageLoader{
		cache: make(map[string]string),
	}
}

// ImportPath returns the import path of the package in dir, as the go
// command sees it from the enclosing module.
func (l *PackageLoader) ImportPath(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for %q: %w", dir, err)
	}

	l.mu.RLock()
	if p, ok := l.cache[absDir]; ok {
		l.mu.RUnlock()
		return p, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Check again in case it was loaded while we were waiting for the lock
	if p, ok := l.cache[absDir]; ok {
		return p, nil
	}

	cfg := &packages.Config{
		Mode: packages.NeedName,
		Dir:  absDir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return "", fmt.Errorf("failed to load package in %q: %w", absDir, err)
	}
	if len(pkgs) == 0 || pkgs[0].PkgPath == "" {
		return "", fmt.Errorf("no package found in %q", absDir)
	}

	p := pkgs[0].PkgPath
	l.cache[absDir] = p
	return p, nil
}
