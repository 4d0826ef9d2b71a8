package codegen

import (
	"fmt"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// FilterEnv is the environment a filter expression is evaluated in, once
// per marked type.
type FilterEnv struct {
	Package   string   `expr:"Package"`
	Namespace string   `expr:"Namespace"`
	Name      string   `expr:"Name"`
	Arity     int      `expr:"Arity"`
	Members   []string `expr:"Members"`
}

// Filter selects marked types with a boolean expr-lang expression, e.g.
//
//	Arity == 0 && Name startsWith "Data"
//	hasMember(Members, "Id")
type Filter struct {
	src     string
	program *vm.Program
}

// CompileFilter compiles src. An empty src yields a nil filter, which
// accepts everything.
func CompileFilter(src string) (*Filter, error) {
	if src == "" {
		return nil, nil
	}
	program, err := expr.Compile(src, filterOpts()...)
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", src, err)
	}
	return &Filter{src: src, program: program}, nil
}

func filterOpts() []expr.Option {
	return []expr.Option{
		expr.Env(FilterEnv{}),
		expr.AsBool(),
		expr.Function("hasMember", func(params ...any) (any, error) {
			members, _ := params[0].([]string)
			return slices.Contains(members, params[1].(string)), nil
		},
			new(func([]string, string) bool)),
	}
}

func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.src
}

// Match reports whether t passes the filter.
func (f *Filter) Match(t *TypeInfo) (bool, error) {
	if f == nil {
		return true, nil
	}
	env := FilterEnv{
		Package:   t.Package,
		Namespace: t.Namespace,
		Name:      t.Name,
		Arity:     t.Arity(),
		Members:   t.MemberNames(),
	}
	res, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("filter %q on %s: %w", f.src, t.Name, err)
	}
	return res.(bool), nil
}

// Apply returns the types of typeInfos accepted by f.
func (f *Filter) Apply(typeInfos []*TypeInfo) ([]*TypeInfo, error) {
	if f == nil {
		return typeInfos, nil
	}
	var res []*TypeInfo
	for _, t := range typeInfos {
		ok, err := f.Match(t)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, t)
		}
	}
	return res, nil
}
