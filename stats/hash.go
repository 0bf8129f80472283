package stats

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

type Hasher func([]byte) uint64

func XXHash(b []byte) uint64 {
	return xxhash.Sum64(b)
}

func XXH3(b []byte) uint64 {
	return xxh3.Hash(b)
}

// HasherByName resolves the names accepted on the command line.
func HasherByName(name string) (Hasher, error) {
	switch name {
	case "", "xxhash":
		return XXHash, nil
	case "xxh3":
		return XXH3, nil
	}
	return nil, fmt.Errorf("unknown hash %q (use xxhash or xxh3)", name)
}
