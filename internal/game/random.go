package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// SeededRNG returns a deterministic PRNG for a seed plus salt so that each
// subsystem (scheduler, content shuffle) gets an independent stream.
func SeededRNG(seed int64, salt string) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic game behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, salt+":a"), seedWord(seed, salt+":b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
