package resolver

import (
	"fmt"
	"strings"
)

// ClassNotFoundError reports a concrete type identity that is not known to
// the type registry.
type ClassNotFoundError struct {
	Type string
}

func (e *ClassNotFoundError) Error() string {
	return fmt.Sprintf("concrete type not registered: %s", e.Type)
}

// InterfaceNotFoundError reports an interface identity that is not known to
// the type registry or is not interface-shaped.
type InterfaceNotFoundError struct {
	Type string
}

func (e *InterfaceNotFoundError) Error() string {
	return fmt.Sprintf("interface not registered: %s", e.Type)
}

// ImplementationNotFoundError reports a required interface dependency with
// no registered binding.
type ImplementationNotFoundError struct {
	Interface string
}

func (e *ImplementationNotFoundError) Error() string {
	return fmt.Sprintf("no implementation bound for interface: %s", e.Interface)
}

// TypeMismatchError reports an implementation that does not satisfy the
// interface it is being bound or asserted to.
type TypeMismatchError struct {
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Got)
}

// CircularDependencyError reports a dependency cycle detected during
// resolution. Chain holds the resolution path, ending with the type that
// closed the cycle.
type CircularDependencyError struct {
	Type  string
	Chain []string
}

func (e *CircularDependencyError) Error() string {
	if len(e.Chain) == 0 {
		return fmt.Sprintf("circular dependency detected for type: %s", e.Type)
	}
	return fmt.Sprintf("circular dependency detected for type %s: %s",
		e.Type, strings.Join(e.Chain, " -> "))
}

// ConstructionError reports a failure while constructing an instance or
// running its injection hook.
type ConstructionError struct {
	Type string
	Err  error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("construction failed for type %s: %v", e.Type, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// RegistrationError reports invalid input to type or interface registration.
type RegistrationError struct {
	Type   string
	Reason string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("invalid registration for type %s: %s", e.Type, e.Reason)
}
