package salon

import (
	"math/rand/v2"

	"github.com/elliotchance/pie/v2"
)

// pickReply chooses one of the candidate replies, never repeating the most
// recent assistant reply when an alternative exists. With a single
// candidate the choice is trivial; if filtering empties the pool (a 1-item
// pool used twice) the full pool is used so a reply is always produced.
func pickReply(rng *rand.Rand, candidates []string, priorReplies []string) string {
	if len(candidates) == 1 {
		return candidates[0]
	}

	var lastReply string
	if len(priorReplies) > 0 {
		lastReply = priorReplies[len(priorReplies)-1]
	}

	pool := pie.Filter(candidates, func(r string) bool {
		return r != lastReply
	})
	if len(pool) == 0 {
		pool = candidates
	}

	return pool[rng.IntN(len(pool))]
}
