// Package codegen generates member accessors for Go struct types.
//
// Struct types marked with an //accessor:generate doc comment directive get
// a <type>_accessor_gen.go file holding an accessor factory: untyped and
// typed getters and setters for each member, collected into an
// accessor.Table. Each package also gets an accessor_registry_gen.go file
// with a RegisterAccessors function.
//
// Generic types are generated in their open form together with a
// NewAccessorFactory method, which lets the registry build the factory of
// any instantiation at runtime. Instantiations known ahead of time can be
// registered eagerly with //accessor:instantiate directives:
//
//	//accessor:instantiate Box[time.Time]
//
// Problems with directives or tags are reported as Diagnostic values and
// never stop generation.
//
// # Related Packages
//
//   - github.com/signadot/go-accessor - Runtime registry and accessor contract
package codegen
