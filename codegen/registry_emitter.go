package codegen

import (
	"github.com/signadot/go-accessor/debug"
)

// registerFunc is the name of the generated registration routine.
const registerFunc = "RegisterAccessors"

// EmitRegistry generates the registry file of pkg. Its RegisterAccessors
// function registers every non-generic type, records every generic type
// for runtime instantiation and registers each requested closed
// instantiation eagerly. It returns nil if there is nothing to register.
func EmitRegistry(pkg *PackageInfo, typeInfos []*TypeInfo, closed []*ClosedInfo, cfg *CodegenConfig) ([]byte, error) {
	if len(typeInfos) == 0 {
		return nil, nil
	}
	imports := map[string]string{}
	for _, c := range closed {
		for name, p := range c.Imports {
			imports[name] = p
		}
	}

	e := &emitter{}
	e.header(pkg.Name, imports)
	e.printf("// %s registers the accessor factories of package %s with r.\n", registerFunc, pkg.Name)
	e.printf("func %s(r *%s.Registry) {\n", registerFunc, runtimeName)
	n := 0
	for _, t := range typeInfos {
		if !t.IsGeneric() {
			e.printf("\t%s.Register(r, %s)\n", runtimeName, ConstructorName(t))
			n++
			continue
		}
		e.printf("\tr.RegisterGeneric(%s.GenericKey{Package: %q, Name: %q, Arity: %d})\n",
			runtimeName, t.Namespace, t.Name, t.Arity())
		n++
		for _, c := range closed {
			if c.Namespace != t.Namespace || c.Name != t.Name {
				continue
			}
			e.printf("\t%s.Register(r, %s)\n", runtimeName, EmitClosedConstructor(c, t))
			n++
		}
	}
	e.printf("}\n")

	if cfg != nil && cfg.Init {
		e.printf("\nfunc init() {\n\t%s(%s.Default())\n}\n", registerFunc, runtimeName)
	}

	filename := cfg.registryFile()
	if debug.Emit() {
		debug.Logf("emit %s: %s (%d registrations)\n", pkg.Path, filename, n)
	}
	return Format(filename, e.Bytes())
}
