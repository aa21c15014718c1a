package resolver_test

import (
	"reflect"
	"testing"

	resolver "github.com/centraunit/goallin_resolver"
	"github.com/centraunit/goallin_resolver/mock"
	"github.com/stretchr/testify/suite"
)

type IntrospectTestSuite struct {
	suite.Suite
	in resolver.Introspector
}

func (s *IntrospectTestSuite) SetupTest() {
	s.in = resolver.NewHookIntrospector("")
}

func (s *IntrospectTestSuite) TestNoHookYieldsEmptyList() {
	deps, err := s.in.Dependencies(reflect.TypeOf((*mock.Counter)(nil)))
	s.NoError(err)
	s.Empty(deps)
}

func (s *IntrospectTestSuite) TestInterfaceDependencies() {
	deps, err := s.in.Dependencies(reflect.TypeOf((*mock.OrderedConsumer)(nil)))
	s.NoError(err)
	s.Len(deps, 2)

	s.Equal(resolver.KindInterface, deps[0].Kind)
	s.Equal(reflect.TypeOf((*mock.First)(nil)).Elem(), deps[0].Type)
	s.False(deps[0].Optional)

	s.Equal(resolver.KindInterface, deps[1].Kind)
	s.Equal(reflect.TypeOf((*mock.Second)(nil)).Elem(), deps[1].Type)
}

func (s *IntrospectTestSuite) TestOptionalDependency() {
	deps, err := s.in.Dependencies(reflect.TypeOf((*mock.OptionalConsumer)(nil)))
	s.NoError(err)
	s.Len(deps, 1)
	s.True(deps[0].Optional)
	s.Equal(resolver.KindInterface, deps[0].Kind)
	s.Equal(reflect.TypeOf((*mock.Logger)(nil)).Elem(), deps[0].Type)
}

func (s *IntrospectTestSuite) TestContainerSentinel() {
	deps, err := s.in.Dependencies(reflect.TypeOf((*mock.ContainerAware)(nil)))
	s.NoError(err)
	s.Len(deps, 1)
	s.Equal(resolver.KindContainer, deps[0].Kind)
}

func (s *IntrospectTestSuite) TestConcreteDependency() {
	deps, err := s.in.Dependencies(reflect.TypeOf((*mock.DeepB)(nil)))
	s.NoError(err)
	s.Len(deps, 1)
	s.Equal(resolver.KindConcrete, deps[0].Kind)
	s.Equal(reflect.TypeOf((*mock.DeepA)(nil)), deps[0].Type)
}

func (s *IntrospectTestSuite) TestPrimitiveDependency() {
	deps, err := s.in.Dependencies(reflect.TypeOf((*mock.PrimitiveConsumer)(nil)))
	s.NoError(err)
	s.Len(deps, 1)
	s.Equal(resolver.KindPrimitive, deps[0].Kind)
}

func (s *IntrospectTestSuite) TestMemoizationIsStable() {
	t := reflect.TypeOf((*mock.OrderedConsumer)(nil))
	first, err := s.in.Dependencies(t)
	s.NoError(err)
	second, err := s.in.Dependencies(t)
	s.NoError(err)
	s.Equal(first, second)
}

func (s *IntrospectTestSuite) TestCustomHookName() {
	in := resolver.NewHookIntrospector("Wire")
	deps, err := in.Dependencies(reflect.TypeOf((*mock.WireConsumer)(nil)))
	s.NoError(err)
	s.Len(deps, 1)
	s.Equal(resolver.KindInterface, deps[0].Kind)

	// The default hook name finds nothing on this type.
	deps, err = s.in.Dependencies(reflect.TypeOf((*mock.WireConsumer)(nil)))
	s.NoError(err)
	s.Empty(deps)
}

func TestIntrospectSuite(t *testing.T) {
	suite.Run(t, new(IntrospectTestSuite))
}
