package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/signadot/go-accessor/codegen"
)

type printer struct {
	w      io.Writer
	pos    func(string, ...any) string
	warn   func(string, ...any) string
	info   func(string, ...any) string
	add    func(string, ...any) string
	remove func(string, ...any) string
}

func newPrinter(w io.Writer, noColor bool) *printer {
	p := &printer{
		w:      w,
		pos:    fmt.Sprintf,
		warn:   fmt.Sprintf,
		info:   fmt.Sprintf,
		add:    fmt.Sprintf,
		remove: fmt.Sprintf,
	}
	if noColor || !isTerminal(w) {
		return p
	}
	p.pos = colorFunc(color.Bold)
	p.warn = colorFunc(color.FgYellow)
	p.info = colorFunc(color.FgCyan)
	p.add = colorFunc(color.FgGreen)
	p.remove = colorFunc(color.FgRed)
	return p
}

// colorFunc ignores color.NoColor, which only reflects stdout.
func colorFunc(attrs ...color.Attribute) func(string, ...any) string {
	c := color.New(attrs...)
	c.EnableColor()
	return c.SprintfFunc()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// diagnostics prints ds as file:line:col: severity code: message.
func (p *printer) diagnostics(ds []*codegen.Diagnostic) {
	for _, d := range ds {
		sev := p.warn
		if d.Severity == codegen.SeverityInfo {
			sev = p.info
		}
		fmt.Fprintf(p.w, "%s: %s: %s\n", p.pos("%s", d.Pos), sev("%s %s", d.Severity, d.Code), d.Message)
	}
}

func (p *printer) diffs(res *codegen.Result, diffs map[string]string) {
	names := make([]string, 0, len(diffs))
	for name := range diffs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		diff := diffs[name]
		fmt.Fprintf(p.w, "%s is out of date\n", filepath.Join(res.Package.Dir, name))
		for _, ln := range strings.SplitAfter(diff, "\n") {
			switch {
			case strings.HasPrefix(ln, "+"):
				fmt.Fprint(p.w, p.add("%s", ln))
			case strings.HasPrefix(ln, "-"):
				fmt.Fprint(p.w, p.remove("%s", ln))
			default:
				fmt.Fprint(p.w, ln)
			}
		}
	}
}

func relPath(root, dir, name string) string {
	path := filepath.Join(dir, name)
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
