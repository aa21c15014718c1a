// Package resolver provides a minimal inversion-of-control container.
//
// The container maps interface types to concrete implementations and builds
// fully wired instances on demand. A concrete type declares its dependencies
// through an injection hook, a well-known method (by default named Inject)
// whose parameters are resolved recursively and passed in declared order:
//
//	type FileStorage struct {
//		log Logger
//	}
//
//	func (s *FileStorage) Inject(log Logger) {
//		s.log = log
//	}
//
// Types and interfaces are made known to the container through a type
// registry, resolution happens by concrete type or through a registered
// interface binding:
//
//	r := resolver.New()
//	resolver.RegisterInterface[Logger](r)
//	resolver.RegisterType[ConsoleLogger](r, resolver.AsSingleton())
//	resolver.RegisterType[FileStorage](r)
//	resolver.Register[Logger, ConsoleLogger](r)
//
//	storage, err := resolver.Resolve[FileStorage](r)
//
// Types marked singleton (either via the Singleton marker interface or the
// AsSingleton registration option) are constructed once; the first instance is
// cached and shared for the lifetime of the container.
package resolver
