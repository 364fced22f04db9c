package api

import "bytes"

// Binarycmp is same as bytes.Compare except that it takes a partial
// argument. If partial is true, limit is treated as a prefix and key
// is compared only up to the length of limit.
func Binarycmp(key, limit []byte, partial bool) int {
	if ln := len(limit); partial && ln < len(key) {
		return bytes.Compare(key[:ln], limit[:ln])
	}
	return bytes.Compare(key, limit)
}
