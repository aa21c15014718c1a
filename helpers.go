package resolver

import (
	"fmt"
	"reflect"
)

// RegisterType records the concrete struct type T in the type registry under
// its pointer identity *T.
func RegisterType[T any](r *Resolver, opts ...TypeOption) error {
	return r.types.addConcrete(reflect.TypeOf((*T)(nil)), opts...)
}

// RegisterInterface records the interface type I in the type registry.
func RegisterInterface[I any](r *Resolver) error {
	return r.types.addInterface(reflect.TypeOf((*I)(nil)).Elem())
}

// Register binds interface I to implementation *T.
func Register[I any, T any](r *Resolver) error {
	return r.Register(reflect.TypeOf((*I)(nil)).Elem(), reflect.TypeOf((*T)(nil)))
}

// Resolve builds a fully wired *T. Explicit args are forwarded to the
// registered constructor of *T.
func Resolve[T any](r *Resolver, args ...any) (*T, error) {
	inst, err := r.Resolve(reflect.TypeOf((*T)(nil)), args...)
	if err != nil {
		return nil, err
	}
	typed, ok := inst.(*T)
	if !ok {
		return nil, &TypeMismatchError{
			Expected: reflect.TypeOf((*T)(nil)).String(),
			Got:      fmt.Sprintf("%T", inst),
		}
	}
	return typed, nil
}

// MustResolve is Resolve panicking on error.
func MustResolve[T any](r *Resolver, args ...any) *T {
	inst, err := Resolve[T](r, args...)
	if err != nil {
		panic(err)
	}
	return inst
}

// ResolveByInterface resolves the implementation bound to I. The zero I with
// a nil error means no binding exists.
func ResolveByInterface[I any](r *Resolver) (I, error) {
	var zero I
	inst, err := r.ResolveByInterface(reflect.TypeOf((*I)(nil)).Elem())
	if err != nil || inst == nil {
		return zero, err
	}
	typed, ok := inst.(I)
	if !ok {
		return zero, &TypeMismatchError{
			Expected: reflect.TypeOf((*I)(nil)).Elem().String(),
			Got:      fmt.Sprintf("%T", inst),
		}
	}
	return typed, nil
}
