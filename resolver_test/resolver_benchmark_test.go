package resolver_test

import (
	"testing"

	resolver "github.com/centraunit/goallin_resolver"
	"github.com/centraunit/goallin_resolver/mock"
)

func BenchmarkResolve(b *testing.B) {
	b.Run("Transient", func(b *testing.B) {
		r := resolver.New()
		_ = resolver.RegisterType[mock.Counter](r)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = resolver.Resolve[mock.Counter](r)
		}
	})

	b.Run("SingletonCacheHit", func(b *testing.B) {
		r := resolver.New()
		_ = resolver.RegisterType[mock.ConsoleLogger](r)
		_, _ = resolver.Resolve[mock.ConsoleLogger](r)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = resolver.Resolve[mock.ConsoleLogger](r)
		}
	})

	b.Run("Graph", func(b *testing.B) {
		r := resolver.New()
		_ = resolver.RegisterInterface[mock.Logger](r)
		_ = resolver.RegisterType[mock.ConsoleLogger](r)
		_ = resolver.RegisterType[mock.FileStorage](r)
		_ = resolver.Register[mock.Logger, mock.ConsoleLogger](r)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = resolver.Resolve[mock.FileStorage](r)
		}
	})
}

func BenchmarkRegister(b *testing.B) {
	r := resolver.New()
	_ = resolver.RegisterInterface[mock.Logger](r)
	_ = resolver.RegisterType[mock.ConsoleLogger](r)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = resolver.Register[mock.Logger, mock.ConsoleLogger](r)
	}
}
