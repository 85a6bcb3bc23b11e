package namegen

import "testing"

func BenchmarkGenerate(b *testing.B) {
	cases := []struct {
		name     string
		alphabet Alphabet
		length   int
		count    int
	}{
		{"sparse-hex8", hex, 8, 1000},
		{"dense-digits4", digits, 4, 5000},
		{"full-digits3", digits, 3, 1000},
	}

	for _, tc := range cases {
		in := files(tc.count)
		for _, s := range []Strategy{OnDemand, Exhaustive} {
			if s == Exhaustive && tc.name == "sparse-hex8" {
				continue
			}
			b.Run(tc.name+"/"+s.String(), func(b *testing.B) {
				g := New(WithRand(seeded(1)))
				b.ReportAllocs()
				for b.Loop() {
					if _, err := g.Generate(in, tc.alphabet, tc.length, s); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
