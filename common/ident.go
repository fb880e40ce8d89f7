package common

import "hash/fnv"

// GenerateIDFromPath hashes a path string into a numeric ID (FNV-1a, 64-bit).
// Equal path strings give equal IDs; different spellings of the same
// location are not recognized as equal.
func GenerateIDFromPath(abspath string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(abspath))
	return h.Sum64()
}
