package resolver_test

import (
	"reflect"
	"testing"

	resolver "github.com/centraunit/goallin_resolver"
	"github.com/centraunit/goallin_resolver/mock"
	"github.com/stretchr/testify/suite"
)

type BindingTestSuite struct {
	suite.Suite
	r *resolver.Resolver
}

func (s *BindingTestSuite) SetupTest() {
	s.r = resolver.New()
	s.NoError(resolver.RegisterInterface[mock.Logger](s.r))
	s.NoError(resolver.RegisterType[mock.ConsoleLogger](s.r))
	s.NoError(resolver.RegisterType[mock.NoopLogger](s.r))
}

func (s *BindingTestSuite) TestUnboundInterfaceYieldsNothing() {
	logger, err := resolver.ResolveByInterface[mock.Logger](s.r)
	s.NoError(err)
	s.Nil(logger)
}

func (s *BindingTestSuite) TestRegisterIsIdempotent() {
	s.NoError(resolver.Register[mock.Logger, mock.ConsoleLogger](s.r))
	s.NoError(resolver.Register[mock.Logger, mock.ConsoleLogger](s.r))

	logger, err := resolver.ResolveByInterface[mock.Logger](s.r)
	s.NoError(err)
	s.IsType(&mock.ConsoleLogger{}, logger)
}

func (s *BindingTestSuite) TestReRegistrationReplacesBinding() {
	s.NoError(resolver.Register[mock.Logger, mock.NoopLogger](s.r))
	s.NoError(resolver.Register[mock.Logger, mock.ConsoleLogger](s.r))

	logger, err := resolver.ResolveByInterface[mock.Logger](s.r)
	s.NoError(err)
	s.IsType(&mock.ConsoleLogger{}, logger)
}

func (s *BindingTestSuite) TestBound() {
	ifaceType := reflect.TypeOf((*mock.Logger)(nil)).Elem()
	s.False(s.r.Bound(ifaceType))

	s.NoError(resolver.Register[mock.Logger, mock.ConsoleLogger](s.r))
	s.True(s.r.Bound(ifaceType))
}

func (s *BindingTestSuite) TestOptionalDependencyWithoutBinding() {
	s.NoError(resolver.RegisterType[mock.OptionalConsumer](s.r))

	c, err := resolver.Resolve[mock.OptionalConsumer](s.r)
	s.NoError(err)
	s.False(c.Log.Present)
	s.Nil(c.Log.Value)
}

func (s *BindingTestSuite) TestOptionalDependencyWithBinding() {
	s.NoError(resolver.RegisterType[mock.OptionalConsumer](s.r))
	s.NoError(resolver.Register[mock.Logger, mock.ConsoleLogger](s.r))

	c, err := resolver.Resolve[mock.OptionalConsumer](s.r)
	s.NoError(err)
	s.True(c.Log.Present)
	s.IsType(&mock.ConsoleLogger{}, c.Log.Value)
}

func (s *BindingTestSuite) TestTypeRegistryQueries() {
	types := s.r.Types()
	loggerIface := reflect.TypeOf((*mock.Logger)(nil)).Elem()
	consoleType := reflect.TypeOf((*mock.ConsoleLogger)(nil))

	s.True(types.HasInterface(loggerIface))
	s.True(types.HasType(consoleType))
	s.True(types.Implements(consoleType, loggerIface))
	s.True(types.IsSingleton(consoleType))

	storageIface := reflect.TypeOf((*mock.Storage)(nil)).Elem()
	s.False(types.HasInterface(storageIface))
	s.False(types.Implements(consoleType, storageIface))
}

func (s *BindingTestSuite) TestReset() {
	s.NoError(resolver.Register[mock.Logger, mock.ConsoleLogger](s.r))
	logger, err := resolver.ResolveByInterface[mock.Logger](s.r)
	s.NoError(err)
	s.NotNil(logger)

	s.r.Reset()

	logger, err = resolver.ResolveByInterface[mock.Logger](s.r)
	s.NoError(err)
	s.Nil(logger)
	s.False(s.r.Types().HasType(reflect.TypeOf((*mock.ConsoleLogger)(nil))))
}

func TestBindingSuite(t *testing.T) {
	suite.Run(t, new(BindingTestSuite))
}
