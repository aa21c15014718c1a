package resolver

import (
	"reflect"
	"strings"
	"sync"
)

// DependencyKind classifies one injection hook parameter.
type DependencyKind int

const (
	// KindPrimitive is a parameter that names neither a registered type nor
	// an interface; such dependencies cannot be resolved.
	KindPrimitive DependencyKind = iota
	// KindContainer is the container self-reference sentinel.
	KindContainer
	// KindInterface is an interface-typed dependency resolved through the
	// binding map.
	KindInterface
	// KindConcrete is a pointer-to-struct dependency resolved recursively.
	KindConcrete
)

// Dependency describes one parameter of a type's injection hook.
// Go reflection does not expose parameter names, so Name carries the
// parameter's type string. Type is the resolution target (for Optional
// parameters, the wrapped type); Param is the declared parameter type as it
// must be passed to the hook.
type Dependency struct {
	Name     string
	Kind     DependencyKind
	Type     reflect.Type
	Param    reflect.Type
	Optional bool
}

// Introspector enumerates the injectable dependencies a type declares.
// Implementations must return an empty list, not an error, when the type
// declares no injection hook.
type Introspector interface {
	Dependencies(t reflect.Type) ([]Dependency, error)
}

// DefaultHookName is the well-known injection hook method name.
const DefaultHookName = "Inject"

// hookIntrospector reflects over the hook method's parameters. Descriptor
// lists are memoized per type; they only depend on the static method
// signature.
type hookIntrospector struct {
	hook  string
	cache sync.Map // reflect.Type -> []Dependency
}

// NewHookIntrospector returns the reflection-based Introspector used by
// default. An empty hook name selects DefaultHookName.
func NewHookIntrospector(hook string) Introspector {
	if hook == "" {
		hook = DefaultHookName
	}
	return &hookIntrospector{hook: hook}
}

func (hi *hookIntrospector) Dependencies(t reflect.Type) ([]Dependency, error) {
	if cached, ok := hi.cache.Load(t); ok {
		return cached.([]Dependency), nil
	}

	deps := hi.inspect(t)
	hi.cache.Store(t, deps)
	return deps, nil
}

func (hi *hookIntrospector) inspect(t reflect.Type) []Dependency {
	if t == nil {
		return nil
	}
	m, ok := t.MethodByName(hi.hook)
	if !ok {
		return nil
	}

	mt := m.Func.Type()
	// First input is the receiver.
	deps := make([]Dependency, 0, mt.NumIn()-1)
	for i := 1; i < mt.NumIn(); i++ {
		deps = append(deps, describeParam(mt.In(i)))
	}
	return deps
}

func describeParam(param reflect.Type) Dependency {
	target := param
	optional := false
	if isOptionalType(param) {
		optional = true
		if f, ok := param.FieldByName("Value"); ok {
			target = f.Type
		}
	}

	d := Dependency{
		Name:     target.String(),
		Type:     target,
		Param:    param,
		Optional: optional,
	}

	switch {
	case target == containerType:
		d.Kind = KindContainer
	case target.Kind() == reflect.Interface:
		d.Kind = KindInterface
	case target.Kind() == reflect.Ptr && target.Elem().Kind() == reflect.Struct:
		d.Kind = KindConcrete
	default:
		d.Kind = KindPrimitive
	}
	return d
}

var optionalPkgPath = reflect.TypeOf(Dependency{}).PkgPath()

func isOptionalType(t reflect.Type) bool {
	return t.Kind() == reflect.Struct &&
		t.PkgPath() == optionalPkgPath &&
		strings.HasPrefix(t.Name(), "Optional[")
}
