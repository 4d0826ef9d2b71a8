package codegen

import (
	"errors"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// ErrStale is returned in check mode when a generated file is missing, out
// of date or no longer generated.
var ErrStale = errors.New("codegen: generated files are stale")

// LineDiff renders a line oriented diff turning have into want. Removed
// lines are prefixed "-", added lines "+"; unchanged lines are omitted. It
// returns "" when the inputs are equal.
func LineDiff(have, want string) string {
	if have == want {
		return ""
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToRunes(have, want)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), lines)

	var buf strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffEqual:
			continue
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(ln)
			if !strings.HasSuffix(ln, "\n") {
				buf.WriteByte('\n')
			}
		}
	}
	return buf.String()
}
