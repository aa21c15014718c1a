package resolver

import (
	"fmt"
	"reflect"
	"sync"
)

// typeEntry describes one concrete type known to the registry: its identity,
// the optional constructor used to build it, and its capability set.
type typeEntry struct {
	typ       reflect.Type // pointer to struct
	ctor      reflect.Value
	ctorType  reflect.Type
	ctorErr   bool // constructor has a trailing error result
	singleton bool
}

// TypeRegistry records which concrete types and interface types exist for
// the container, together with per-type capabilities. A type the registry
// does not know does not exist as far as resolution is concerned.
type TypeRegistry struct {
	mu         sync.RWMutex
	concrete   map[reflect.Type]*typeEntry
	interfaces map[reflect.Type]struct{}
}

func newTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		concrete:   make(map[reflect.Type]*typeEntry, 16),
		interfaces: make(map[reflect.Type]struct{}, 16),
	}
}

// TypeOption configures a concrete type registration.
type TypeOption func(*typeEntry) error

// AsSingleton grants the singleton capability at registration time. The same
// effect is achieved by implementing the Singleton marker interface.
func AsSingleton() TypeOption {
	return func(e *typeEntry) error {
		e.singleton = true
		return nil
	}
}

// WithConstructor registers a constructor function for the type. The
// function must return the registered pointer type, optionally followed by
// an error. Explicit arguments passed to Resolve are forwarded to it.
func WithConstructor(fn any) TypeOption {
	return func(e *typeEntry) error {
		if fn == nil {
			return &RegistrationError{Type: e.typ.String(), Reason: "constructor is nil"}
		}
		v := reflect.ValueOf(fn)
		t := v.Type()
		if t.Kind() != reflect.Func {
			return &RegistrationError{Type: e.typ.String(), Reason: "constructor must be a function"}
		}
		switch t.NumOut() {
		case 1:
			if t.Out(0) != e.typ {
				return &RegistrationError{
					Type:   e.typ.String(),
					Reason: fmt.Sprintf("constructor returns %s", t.Out(0)),
				}
			}
		case 2:
			if t.Out(0) != e.typ || t.Out(1) != errorType {
				return &RegistrationError{
					Type:   e.typ.String(),
					Reason: fmt.Sprintf("constructor returns (%s, %s)", t.Out(0), t.Out(1)),
				}
			}
			e.ctorErr = true
		default:
			return &RegistrationError{Type: e.typ.String(), Reason: "constructor must return the type or (type, error)"}
		}
		e.ctor = v
		e.ctorType = t
		return nil
	}
}

// addConcrete records a concrete pointer-to-struct type. Re-registration
// replaces the previous entry.
func (r *TypeRegistry) addConcrete(t reflect.Type, opts ...TypeOption) error {
	if t == nil || t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
		return &RegistrationError{Type: typeName(t), Reason: "concrete type must be a pointer to struct"}
	}

	entry := &typeEntry{typ: t}
	for _, opt := range opts {
		if err := opt(entry); err != nil {
			return err
		}
	}
	if t.Implements(singletonType) {
		entry.singleton = true
	}

	r.mu.Lock()
	r.concrete[t] = entry
	r.mu.Unlock()
	return nil
}

// addInterface records an interface type.
func (r *TypeRegistry) addInterface(t reflect.Type) error {
	if t == nil || t.Kind() != reflect.Interface {
		return &RegistrationError{Type: typeName(t), Reason: "not an interface type"}
	}

	r.mu.Lock()
	r.interfaces[t] = struct{}{}
	r.mu.Unlock()
	return nil
}

func (r *TypeRegistry) entry(t reflect.Type) (*typeEntry, bool) {
	r.mu.RLock()
	e, ok := r.concrete[t]
	r.mu.RUnlock()
	return e, ok
}

// HasType reports whether the concrete type t is registered.
func (r *TypeRegistry) HasType(t reflect.Type) bool {
	_, ok := r.entry(t)
	return ok
}

// HasInterface reports whether the interface type t is registered.
func (r *TypeRegistry) HasInterface(t reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Interface {
		return false
	}
	r.mu.RLock()
	_, ok := r.interfaces[t]
	r.mu.RUnlock()
	return ok
}

// Implements reports whether registered concrete type impl satisfies iface.
// Both identities must be known to the registry.
func (r *TypeRegistry) Implements(impl, iface reflect.Type) bool {
	if !r.HasType(impl) || !r.HasInterface(iface) {
		return false
	}
	return impl.Implements(iface)
}

// IsSingleton reports whether t carries the singleton capability.
func (r *TypeRegistry) IsSingleton(t reflect.Type) bool {
	e, ok := r.entry(t)
	return ok && e.singleton
}

func (r *TypeRegistry) reset() {
	r.mu.Lock()
	r.concrete = make(map[reflect.Type]*typeEntry, 16)
	r.interfaces = make(map[reflect.Type]struct{}, 16)
	r.mu.Unlock()
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
