package resolver

import "reflect"

// Container is the untyped surface of the Resolver. It is also the
// self-reference sentinel: an injection hook parameter declared with this
// type receives the resolving container itself, which lets dependents
// perform dynamic lookups after construction.
type Container interface {
	// Register binds an interface type to a concrete implementation type.
	// Re-registering the same interface overwrites the previous binding.
	Register(iface, impl reflect.Type) error

	// Resolve builds a fully wired instance of the concrete type t.
	// Explicit args are passed to the registered constructor, if any.
	Resolve(t reflect.Type, args ...any) (any, error)

	// ResolveByInterface resolves the implementation bound to iface.
	// It returns (nil, nil) when no binding exists.
	ResolveByInterface(iface reflect.Type) (any, error)
}

// Singleton is a capability marker. A registered type implementing it is
// constructed at most once; the first instance is cached and reused for the
// lifetime of the container. The same capability can be granted at
// registration time with the AsSingleton option.
type Singleton interface {
	Singleton()
}

// Optional declares a nullable injection hook parameter. When the wrapped
// dependency cannot be resolved (an interface with no registered binding),
// the hook receives the zero Optional instead of a resolution failure.
type Optional[T any] struct {
	Value   T
	Present bool
}

// Some wraps a value in a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Present: true}
}

var (
	containerType = reflect.TypeOf((*Container)(nil)).Elem()
	singletonType = reflect.TypeOf((*Singleton)(nil)).Elem()
	errorType     = reflect.TypeOf((*error)(nil)).Elem()
)
