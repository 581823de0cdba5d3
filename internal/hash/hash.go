package hash

import (
	"fmt"
	"hash/maphash"

	"github.com/stonegrove/chainmap/hashfunc"
)

// Default - Returns the internally used hash algorithm for the key type K.
// It is selected when no custom algorithm was supplied at map construction:
// string keys hash with crc32.ChecksumIEEE, integer keys with Fibonacci
// multiplication, and any other comparable key type through maphash over the
// printed form of the key. The maphash seed is fixed per returned instance,
// so sums are stable for the lifetime of the map using it.
func Default[K comparable]() hashfunc.HashAlgorithm[K] {
	var zero K
	switch any(zero).(type) {
	case string:
		return any(hashfunc.CRC32()).(hashfunc.HashAlgorithm[K])
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		fib := hashfunc.Fibonacci()
		return hashfunc.HashAlgorithmFunc[K](func(key K) uint64 {
			return fib.Sum(integerToUint64(key))
		})
	default:
		seed := maphash.MakeSeed()
		return hashfunc.HashAlgorithmFunc[K](func(key K) uint64 {
			var h maphash.Hash
			h.SetSeed(seed)
			_, _ = fmt.Fprintf(&h, "%v", key)
			return h.Sum64()
		})
	}
}

// integerToUint64 - Reinterprets an integer key as uint64. Negative values wrap,
// which is fine since the mapping only has to be deterministic.
func integerToUint64[K comparable](key K) uint64 {
	switch k := any(key).(type) {
	case int:
		return uint64(k)
	case int8:
		return uint64(k)
	case int16:
		return uint64(k)
	case int32:
		return uint64(k)
	case int64:
		return uint64(k)
	case uint:
		return uint64(k)
	case uint8:
		return uint64(k)
	case uint16:
		return uint64(k)
	case uint32:
		return uint64(k)
	case uint64:
		return k
	case uintptr:
		return uint64(k)
	}

	return 0
}
