package namegen

import (
	"context"
	"math"

	"rngrename/internal/logging"
)

// maxPoolSize is the largest naming space a uint32 ordinal pool can hold,
// further capped by the largest slice length on 32-bit platforms.
const maxPoolSize = min(1<<32, math.MaxInt)

// generateExhaustive enumerates every name as its ordinal in the
// lexicographic Cartesian product of alphabet, then gives each file one
// ordinal drawn uniformly from those left. Swap-remove keeps removal O(1);
// pool order is irrelevant.
func (g *Generator) generateExhaustive(files []string, alphabet Alphabet, length int, space uint64, ok bool) (Assignment, error) {
	limit := min(g.limits.MaxPermutations, maxPoolSize)
	if !ok || space > limit {
		return nil, &TooManyPermutationsError{
			Alphabet: alphabet.String(),
			Length:   length,
			Limit:    limit,
		}
	}
	g.log.Info("using exhaustive generation strategy", "files", len(files), "space", space)

	g.log.Log(context.Background(), logging.LevelTrace, "enumerating naming space", "size", space)
	pool := make([]uint32, space)
	for i := range pool {
		pool[i] = uint32(i)
	}

	out := make(Assignment, 0, len(files))
	for _, path := range files {
		i := g.rng.IntN(len(pool))
		ord := pool[i]
		last := len(pool) - 1
		pool[i] = pool[last]
		pool = pool[:last]
		out = append(out, Pair{Path: path, Name: nameAt(ord, alphabet, length)})
	}

	g.log.Debug("generated random names", "count", len(out))
	return out, nil
}

// nameAt decodes ordinal into the name at that position of the lexicographic
// product, most significant symbol first.
func nameAt(ordinal uint32, alphabet Alphabet, length int) string {
	n := uint32(alphabet.Len())
	runes := make([]rune, length)
	for i := length - 1; i >= 0; i-- {
		runes[i] = alphabet.At(int(ordinal % n))
		ordinal /= n
	}
	return string(runes)
}
