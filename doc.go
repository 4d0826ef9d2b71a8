// Package accessor resolves generated, reflection-free member accessors for
// Go struct types.
//
// Accessor code is produced ahead of time by accessor-gen (see
// cmd/accessor-gen and the codegen package) for every struct type whose doc
// comment carries the directive
//
//	//accessor:generate
//
// Each generated package exposes a RegisterAccessors function which binds its
// factories into a Registry. Callers then resolve a factory by type and ask it
// for getters and setters by member name:
//
//	reg := accessor.NewRegistry()
//	models.RegisterAccessors(reg)
//
//	f, ok := accessor.Resolve[models.Data](reg)
//	getName := accessor.GetterOf[string](f, "Name")
//	name := getName(&data)
//
// # Generic types
//
// Generic struct types are generated once in their open form. Instantiations
// named by an //accessor:instantiate directive are registered explicitly;
// every other instantiation is resolved on first use through the open
// registration, by calling the generated NewAccessorFactory method on a fresh
// value of the requested type. The Go compiler supplies the specialized code
// for each instantiation, nothing is generated at run time.
//
// # Misses
//
// Unknown types and unknown member names are ordinary outcomes: Resolve
// reports false and member lookups return nil.
package accessor
