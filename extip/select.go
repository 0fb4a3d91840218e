package extip

import (
	"math/rand/v2"
)

// Select returns the candidates for one lookup.
//
// With maxTries > 0 it returns a uniform random sample of that many distinct
// positions of list; a maxTries larger than the list is clamped to its length.
// With maxTries <= 0 it returns the whole list in uniform random order.
// list is never modified. A nil rng uses a freshly seeded source.
func Select(list []string, maxTries int, rng *rand.Rand) []string {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	candidates := append([]string(nil), list...)
	if maxTries <= 0 || maxTries > len(candidates) {
		maxTries = len(candidates)
	}

	// Partial Fisher-Yates: the first maxTries slots end up a uniform sample.
	for i := 0; i < maxTries; i++ {
		j := i + rng.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	return candidates[:maxTries]
}
