package resolver

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/jrivets/log4g"
)

// Resolver is the inversion-of-control container. It owns the interface
// binding map, the singleton instance cache, and the type registry, and it
// delegates dependency enumeration to an Introspector.
//
// All operations are safe for concurrent use. Registration and the first
// construction of a singleton are treated as critical sections; two
// goroutines racing on the same singleton observe the same instance.
type Resolver struct {
	mu        sync.RWMutex
	bindings  map[reflect.Type]reflect.Type
	instances map[reflect.Type]any

	types        *TypeRegistry
	introspector Introspector
	hookName     string
	logger       log4g.Logger
}

// Option configures a Resolver at construction time.
type Option func(*Resolver)

// WithIntrospector replaces the default reflection-based dependency
// introspector.
func WithIntrospector(i Introspector) Option {
	return func(r *Resolver) {
		r.introspector = i
	}
}

// WithHookName changes the injection hook method name (default "Inject").
func WithHookName(name string) Option {
	return func(r *Resolver) {
		r.hookName = name
	}
}

// New creates an empty container.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		bindings:  make(map[reflect.Type]reflect.Type, 16),
		instances: make(map[reflect.Type]any, 16),
		types:     newTypeRegistry(),
		hookName:  DefaultHookName,
		logger:    log4g.GetLogger("resolver.Resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.introspector == nil {
		r.introspector = NewHookIntrospector(r.hookName)
	}
	return r
}

// Types exposes the type registry for existence and capability queries.
func (r *Resolver) Types() *TypeRegistry {
	return r.types
}

// Register binds an interface type to a concrete implementation type.
// Both identities must be known to the type registry and impl must satisfy
// iface. Re-registering the same interface overwrites the previous binding.
func (r *Resolver) Register(iface, impl reflect.Type) error {
	if !r.types.HasInterface(iface) {
		return &InterfaceNotFoundError{Type: typeName(iface)}
	}
	if !r.types.HasType(impl) {
		return &ClassNotFoundError{Type: typeName(impl)}
	}
	if !impl.Implements(iface) {
		return &TypeMismatchError{Expected: iface.String(), Got: impl.String()}
	}

	r.mu.Lock()
	prev, rebound := r.bindings[iface]
	r.bindings[iface] = impl
	r.mu.Unlock()

	if rebound && prev != impl {
		r.logger.Info("Register(): rebinding ", iface, " from ", prev, " to ", impl)
	} else {
		r.logger.Info("Register(): binding ", iface, " to ", impl)
	}
	return nil
}

// ResolveByInterface resolves the implementation bound to iface. Absence of
// a binding is a normal outcome: it returns (nil, nil) and the caller
// decides whether that is fatal.
func (r *Resolver) ResolveByInterface(iface reflect.Type) (any, error) {
	return r.resolveByInterface(newResolutionState(), iface)
}

// Resolve builds a fully wired instance of the concrete type t. Explicit
// args are forwarded to the type's registered constructor.
//
// When t already has a cached singleton instance, that instance is returned
// and args are ignored: singleton construction arguments are fixed by the
// first call for the lifetime of the container.
func (r *Resolver) Resolve(t reflect.Type, args ...any) (any, error) {
	return r.resolve(newResolutionState(), t, args)
}

// Bound reports whether iface currently has a registered binding.
func (r *Resolver) Bound(iface reflect.Type) bool {
	r.mu.RLock()
	_, ok := r.bindings[iface]
	r.mu.RUnlock()
	return ok
}

// Resolved reports whether a singleton instance of t has been constructed.
func (r *Resolver) Resolved(t reflect.Type) bool {
	r.mu.RLock()
	_, ok := r.instances[t]
	r.mu.RUnlock()
	return ok
}

// Reset clears all bindings, cached instances, and registered types.
// It is intended for tests.
func (r *Resolver) Reset() {
	r.mu.Lock()
	r.bindings = make(map[reflect.Type]reflect.Type, 16)
	r.instances = make(map[reflect.Type]any, 16)
	r.mu.Unlock()
	r.types.reset()
}

// resolutionState tracks the types under construction in one top-level
// resolution, so a cycle fails fast instead of recursing without bound.
type resolutionState struct {
	chain map[reflect.Type]bool
	stack []reflect.Type
}

func newResolutionState() *resolutionState {
	return &resolutionState{chain: make(map[reflect.Type]bool, 8)}
}

func (st *resolutionState) enter(t reflect.Type) error {
	if st.chain[t] {
		chain := make([]string, 0, len(st.stack)+1)
		for _, s := range st.stack {
			chain = append(chain, s.String())
		}
		chain = append(chain, t.String())
		return &CircularDependencyError{Type: t.String(), Chain: chain}
	}
	st.chain[t] = true
	st.stack = append(st.stack, t)
	return nil
}

func (st *resolutionState) leave(t reflect.Type) {
	delete(st.chain, t)
	st.stack = st.stack[:len(st.stack)-1]
}

func (r *Resolver) resolveByInterface(st *resolutionState, iface reflect.Type) (any, error) {
	r.mu.RLock()
	impl, ok := r.bindings[iface]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return r.resolve(st, impl, nil)
}

func (r *Resolver) resolve(st *resolutionState, t reflect.Type, args []any) (any, error) {
	r.mu.RLock()
	cached, ok := r.instances[t]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	entry, ok := r.types.entry(t)
	if !ok {
		return nil, &ClassNotFoundError{Type: typeName(t)}
	}

	if err := st.enter(t); err != nil {
		r.logger.Warn("resolve(): ", err)
		return nil, err
	}
	defer st.leave(t)

	deps, err := r.introspector.Dependencies(t)
	if err != nil {
		return nil, err
	}

	values := make([]reflect.Value, 0, len(deps))
	for _, d := range deps {
		v, err := r.resolveDependency(st, t, d)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	inst, err := r.construct(entry, args)
	if err != nil {
		return nil, err
	}
	if len(deps) > 0 {
		if err := r.invokeHook(entry, inst, values); err != nil {
			return nil, err
		}
	}

	if entry.singleton {
		r.mu.Lock()
		if existing, ok := r.instances[t]; ok {
			// Another goroutine finished first; keep its instance.
			inst = existing
		} else {
			r.instances[t] = inst
		}
		r.mu.Unlock()
	}

	r.logger.Debug("resolve(): built ", t, " with ", len(deps), " dependencies")
	return inst, nil
}

// resolveDependency produces the value for one hook parameter of owner.
func (r *Resolver) resolveDependency(st *resolutionState, owner reflect.Type, d Dependency) (reflect.Value, error) {
	switch d.Kind {
	case KindContainer:
		return wrapParam(d, r), nil

	case KindInterface:
		inst, err := r.resolveByInterface(st, d.Type)
		if err != nil {
			return reflect.Value{}, err
		}
		if inst == nil {
			if !d.Optional {
				return reflect.Value{}, &ImplementationNotFoundError{Interface: typeName(d.Type)}
			}
			r.logger.Debug("resolve(): no binding for optional ", d.Type, " of ", owner)
			return reflect.Zero(d.Param), nil
		}
		return wrapParam(d, inst), nil

	case KindConcrete:
		inst, err := r.resolve(st, d.Type, nil)
		if err != nil {
			return reflect.Value{}, err
		}
		return wrapParam(d, inst), nil

	default:
		return reflect.Value{}, &ClassNotFoundError{Type: typeName(d.Type)}
	}
}

// wrapParam shapes a resolved value to the declared parameter type,
// wrapping it into a present Optional when the parameter is nullable.
func wrapParam(d Dependency, inst any) reflect.Value {
	if !d.Optional {
		return reflect.ValueOf(inst)
	}
	opt := reflect.New(d.Param).Elem()
	opt.FieldByName("Value").Set(reflect.ValueOf(inst))
	opt.FieldByName("Present").SetBool(true)
	return opt
}

var errArgsWithoutConstructor = errors.New("explicit arguments require a registered constructor")

func (r *Resolver) construct(e *typeEntry, args []any) (inst any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			inst = nil
			err = &ConstructionError{Type: e.typ.String(), Err: fmt.Errorf("panic during construction: %v", rec)}
		}
	}()

	if !e.ctor.IsValid() {
		if len(args) > 0 {
			return nil, &ConstructionError{Type: e.typ.String(), Err: errArgsWithoutConstructor}
		}
		return reflect.New(e.typ.Elem()).Interface(), nil
	}

	in, err := constructorArgs(e, args)
	if err != nil {
		return nil, err
	}
	out := e.ctor.Call(in)
	if e.ctorErr && !out[1].IsNil() {
		return nil, &ConstructionError{Type: e.typ.String(), Err: out[1].Interface().(error)}
	}
	return out[0].Interface(), nil
}

func constructorArgs(e *typeEntry, args []any) ([]reflect.Value, error) {
	ct := e.ctorType
	fixed := ct.NumIn()
	if ct.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, &ConstructionError{
				Type: e.typ.String(),
				Err:  fmt.Errorf("constructor needs at least %d arguments, got %d", fixed, len(args)),
			}
		}
	} else if len(args) != fixed {
		return nil, &ConstructionError{
			Type: e.typ.String(),
			Err:  fmt.Errorf("constructor needs %d arguments, got %d", fixed, len(args)),
		}
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var pt reflect.Type
		if i < fixed {
			pt = ct.In(i)
		} else {
			pt = ct.In(ct.NumIn() - 1).Elem()
		}
		if a == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(a)
		if !av.Type().AssignableTo(pt) {
			return nil, &ConstructionError{
				Type: e.typ.String(),
				Err:  fmt.Errorf("argument %d: %s is not assignable to %s", i, av.Type(), pt),
			}
		}
		in[i] = av
	}
	return in, nil
}

func (r *Resolver) invokeHook(e *typeEntry, inst any, values []reflect.Value) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &ConstructionError{Type: e.typ.String(), Err: fmt.Errorf("panic during injection: %v", rec)}
		}
	}()

	m := reflect.ValueOf(inst).MethodByName(r.hookName)
	if !m.IsValid() {
		return &ConstructionError{
			Type: e.typ.String(),
			Err:  fmt.Errorf("injection hook %s not found", r.hookName),
		}
	}

	out := m.Call(values)
	if n := len(out); n > 0 && out[n-1].Type().Implements(errorType) && !out[n-1].IsNil() {
		return &ConstructionError{Type: e.typ.String(), Err: out[n-1].Interface().(error)}
	}
	return nil
}
