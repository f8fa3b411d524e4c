package domain

import (
	"math"
	"math/rand/v2"
	"slices"
)

// MaxRandomSeed bounds freshly generated seeds so they stay short in URLs.
const MaxRandomSeed = 1_000_000

// ShuffleArticleIDs returns a permutation of ids that depends only on the input order and seed.
// The input is not modified.
func ShuffleArticleIDs(ids []int64, seed int64) []int64 {
	shuffled := slices.Clone(ids)

	//nolint:gosec // ordering only, not security sensitive
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}

// NewRandomSeed picks a seed for a fresh random ordering.
func NewRandomSeed() int64 {
	//nolint:gosec // ordering only, not security sensitive
	return rand.Int64N(MaxRandomSeed)
}

// PageOffset returns the number of items before the given 1-based page. ok is false when the
// offset does not fit in an int, which can only mean the page lies past any real result set.
func PageOffset(page, limit int) (offset int, ok bool) {
	if page < 1 || limit < 1 {
		return 0, false
	}
	if page-1 > math.MaxInt/limit {
		return 0, false
	}
	return (page - 1) * limit, true
}

// PageOfIDs returns the IDs that fall on the given 1-based page. Pages past the end are empty.
func PageOfIDs(ids []int64, page, limit int) []int64 {
	offset, ok := PageOffset(page, limit)
	if !ok || offset >= len(ids) {
		return []int64{}
	}
	end := offset + min(limit, len(ids)-offset)
	return ids[offset:end]
}

// TotalPages is the number of pages needed to show total items at limit per page.
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}
