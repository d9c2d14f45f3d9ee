package spectrum

import (
	"testing"

	"github.com/cwbudde/algo-fid/internal/testutil"
)

var benchSizes = []struct {
	name string
	size int
}{
	{"256", 256},
	{"1K", 1024},
	{"4K", 4096},
	{"16K", 16384},
}

func BenchmarkMagnitude(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			in := testutil.DampedSinusoid(1, 0, 3, 0.1, 20, tc.size)

			b.SetBytes(int64(tc.size * 16)) // complex128 = 16 bytes
			b.ResetTimer()

			for range b.N {
				_ = Magnitude(in)
			}
		})
	}
}

func BenchmarkTransform(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			in := testutil.DampedSinusoid(1, 0, 3, 0.1, 20, tc.size)

			b.SetBytes(int64(tc.size * 16))
			b.ResetTimer()

			for range b.N {
				if _, err := Transform(in, 20, 0, WithLineBroadening(0.5)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGoertzel(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			in := testutil.DampedSinusoid(1, 0, 3, 0.1, 20, tc.size)
			g, err := NewGoertzel(3, 20)
			if err != nil {
				b.Fatal(err)
			}

			b.SetBytes(int64(tc.size * 16))
			b.ResetTimer()

			for range b.N {
				g.Reset()
				g.ProcessBlock(in)
				_ = g.Bin()
			}
		})
	}
}
