package addressgen_test

import (
	"testing"

	"github.com/addrforge/addrforge/pkg/addressgen"
)

func BenchmarkAddress(b *testing.B) {
	gen := addressgen.New(addressgen.WithSeed(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gen.Address()
	}
}

func BenchmarkStreet1(b *testing.B) {
	gen := addressgen.New(addressgen.WithSeed(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gen.Street1(true)
	}
}

func BenchmarkZipNineDigit(b *testing.B) {
	gen := addressgen.New(addressgen.WithSeed(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gen.Zip(addressgen.NineDigit())
	}
}

func BenchmarkAddressParallel(b *testing.B) {
	gen := addressgen.New(addressgen.WithSeed(1))
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = gen.Address()
		}
	})
}
