package domain

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func idRange(n int) []int64 {
	ids := make([]int64, 0, n)
	for i := 1; i <= n; i++ {
		ids = append(ids, int64(i))
	}
	return ids
}

func TestShuffleArticleIDs_SameSeedSamePermutation(t *testing.T) {
	ids := idRange(10)

	first := ShuffleArticleIDs(ids, 42)
	second := ShuffleArticleIDs(ids, 42)

	assert.Equal(t, first, second)
}

func TestShuffleArticleIDs_IsPermutation(t *testing.T) {
	ids := idRange(50)

	for _, seed := range []int64{0, 1, 42, 999_999, -7} {
		shuffled := ShuffleArticleIDs(ids, seed)

		sorted := slices.Clone(shuffled)
		slices.Sort(sorted)
		assert.Equal(t, ids, sorted, "seed %d", seed)
	}
}

func TestShuffleArticleIDs_DoesNotModifyInput(t *testing.T) {
	ids := idRange(10)

	_ = ShuffleArticleIDs(ids, 3)

	assert.Equal(t, idRange(10), ids)
}

func TestShuffleArticleIDs_DifferentSeedsDiffer(t *testing.T) {
	ids := idRange(20)

	assert.NotEqual(t, ShuffleArticleIDs(ids, 1), ShuffleArticleIDs(ids, 2))
}

func TestShuffleArticleIDs_Empty(t *testing.T) {
	assert.Empty(t, ShuffleArticleIDs(nil, 42))
}

func TestNewRandomSeed_InRange(t *testing.T) {
	for range 100 {
		seed := NewRandomSeed()
		assert.GreaterOrEqual(t, seed, int64(0))
		assert.Less(t, seed, int64(MaxRandomSeed))
	}
}

func TestPageOfIDs(t *testing.T) {
	ids := []int64{5, 2, 9, 1}

	cases := []struct {
		name     string
		page     int
		limit    int
		expected []int64
	}{
		{name: "first_page", page: 1, limit: 2, expected: []int64{5, 2}},
		{name: "second_page", page: 2, limit: 2, expected: []int64{9, 1}},
		{name: "partial_last_page", page: 2, limit: 3, expected: []int64{1}},
		{name: "past_the_end", page: 3, limit: 2, expected: []int64{}},
		{name: "huge_limit", page: 1, limit: math.MaxInt, expected: []int64{5, 2, 9, 1}},
		{name: "overflowing_page", page: 3074457345618258603, limit: 6, expected: []int64{}},
		{name: "max_page", page: math.MaxInt, limit: 2, expected: []int64{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PageOfIDs(ids, tc.page, tc.limit))
		})
	}
}

func TestPageOffset(t *testing.T) {
	cases := []struct {
		name     string
		page     int
		limit    int
		offset   int
		expectOK bool
	}{
		{name: "first_page", page: 1, limit: 6, offset: 0, expectOK: true},
		{name: "third_page", page: 3, limit: 6, offset: 12, expectOK: true},
		{name: "largest_fitting_page", page: math.MaxInt/6 + 1, limit: 6, offset: math.MaxInt / 6 * 6, expectOK: true},
		{name: "overflowing_page", page: 3074457345618258603, limit: 6, expectOK: false},
		{name: "max_page_and_limit", page: math.MaxInt, limit: math.MaxInt, expectOK: false},
		{name: "zero_page", page: 0, limit: 6, expectOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			offset, ok := PageOffset(tc.page, tc.limit)
			assert.Equal(t, tc.expectOK, ok)
			if tc.expectOK {
				assert.Equal(t, tc.offset, offset)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		limit    int
		expected int
	}{
		{total: 14, limit: 6, expected: 3},
		{total: 12, limit: 6, expected: 2},
		{total: 0, limit: 6, expected: 0},
		{total: 1, limit: 1, expected: 1},
		{total: 10, limit: 100, expected: 1},
		{total: 250, limit: 250, expected: 1},
		{total: 14, limit: math.MaxInt, expected: 1},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, TotalPages(tc.total, tc.limit), "total=%d limit=%d", tc.total, tc.limit)
	}
}
