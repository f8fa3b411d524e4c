package controller

import (
	"net/url"
	"strconv"
)

const defaultPage = 1

// parsePagination never fails: garbled page or limit values fall back to their defaults.
// Huge values are passed through; the commands treat pages beyond the data as empty.
func parsePagination(q url.Values, defaultLimit int) (page, limit int) {
	page = queryInt(q, "page", defaultPage)
	limit = queryInt(q, "limit", defaultLimit)
	return page, limit
}

// queryInt returns the positive integer in q[key], or def when it is missing or invalid.
func queryInt(q url.Values, key string, def int) int {
	v, err := strconv.Atoi(q.Get(key))
	if err != nil || v < 1 {
		return def
	}
	return v
}
