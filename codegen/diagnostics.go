package codegen

import (
	"fmt"
	"go/token"
	"sort"
)

// DiagnosticCode identifies a category of generation problem.
type DiagnosticCode string

const (
	// InvalidTypeArgument: an instantiation marker names a type that is
	// not generic.
	InvalidTypeArgument DiagnosticCode = "ACC0001"
	// InvalidAttributeLocation: a type-level instantiation marker names a
	// type other than the one it is attached to.
	InvalidAttributeLocation DiagnosticCode = "ACC0002"
	// MalformedInstantiation: the marker argument is not a type expression.
	MalformedInstantiation DiagnosticCode = "ACC0003"
	// UnknownGenericType: no marked generic type of that name exists in
	// the marker's package.
	UnknownGenericType DiagnosticCode = "ACC0004"
	// UnsupportedType: //accessor:generate on something other than a struct.
	UnsupportedType DiagnosticCode = "ACC0005"
	// InvalidMemberTag: a field tag that cannot be honored.
	InvalidMemberTag DiagnosticCode = "ACC0006"
	// DuplicateMember: two fields share a lookup name.
	DuplicateMember DiagnosticCode = "ACC0007"
	// ArityMismatch: wrong number of type arguments.
	ArityMismatch DiagnosticCode = "ACC0008"
	// OpenTypeArgument: a type argument refers to a type parameter.
	OpenTypeArgument DiagnosticCode = "ACC0009"
	// NameCollision: a generated identifier or file would clash.
	NameCollision DiagnosticCode = "ACC0010"
)

var codeTitles = map[DiagnosticCode]string{
	InvalidTypeArgument:      "invalid type argument",
	InvalidAttributeLocation: "invalid attribute location",
	MalformedInstantiation:   "malformed instantiation",
	UnknownGenericType:       "unknown generic type",
	UnsupportedType:          "unsupported type",
	InvalidMemberTag:         "invalid member tag",
	DuplicateMember:          "duplicate member",
	ArityMismatch:            "arity mismatch",
	OpenTypeArgument:         "open type argument",
	NameCollision:            "name collision",
}

// Title returns a short human readable name for the code.
func (c DiagnosticCode) Title() string {
	if t, ok := codeTitles[c]; ok {
		return t
	}
	return string(c)
}

// Severity of a diagnostic. Neither level aborts generation.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityInfo
)

func (s Severity) String() string {
	if s == SeverityInfo {
		return "info"
	}
	return "warning"
}

// Diagnostic is a non-fatal problem found while generating. The offending
// marker, member or type is dropped and generation continues.
type Diagnostic struct {
	Code     DiagnosticCode
	Severity Severity
	Pos      token.Position
	Message  string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s %s: %s", d.Pos, d.Severity, d.Code, d.Message)
}

func warnf(code DiagnosticCode, pos token.Position, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Code:     code,
		Severity: SeverityWarning,
		Pos:      pos,
		Message:  fmt.Sprintf(format, args...),
	}
}

// SortDiagnostics orders diagnostics by file position.
func SortDiagnostics(ds []*Diagnostic) {
	sort.SliceStable(ds, func(i, j int) bool {
		a, b := ds[i].Pos, ds[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}
