package swing

import (
	"hash/fnv"
	"math/rand"
	"time"
)

// deriveSeed mixes the global seed with a per-kinase, per-stage salt so
// that every worker gets its own deterministic random stream. A single
// shared generator would make output depend on goroutine scheduling.
func deriveSeed(seed int64, stage, kinase string) int64 {
	h := fnv.New64a()
	h.Write([]byte(stage))
	h.Write([]byte{0})
	h.Write([]byte(kinase))
	return seed ^ int64(h.Sum64())
}

// resolveSeed returns the configured seed, or a fresh time-based one when
// the caller asked for non-deterministic runs (seed < 0).
func resolveSeed(seed int64) int64 {
	if seed < 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// sampleWithoutReplacement draws k distinct indices from [0,n) using a
// sparse Fisher-Yates shuffle, O(k) time and space per draw.
func sampleWithoutReplacement(rng *rand.Rand, n, k int) []int {
	if k > n {
		k = n
	}
	swapped := make(map[int]int, k)
	picked := make([]int, k)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)

		vj, ok := swapped[j]
		if !ok {
			vj = j
		}
		vi, ok := swapped[i]
		if !ok {
			vi = i
		}

		picked[i] = vj
		swapped[j] = vi
	}
	return picked
}
