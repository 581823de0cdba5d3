package hashfunc

import "hash/crc32"

const (
	djb2Seed = 5381

	fnvOffsetBasis32 = 2166136261
	fnvPrime32       = 16777619

	// 2^64 / golden ratio, used by the multiplication method
	fibonacciMultiplier = 11400714819323198485
)

// HashAlgorithm - Interface that permits an implementation using the ChainMap to supply a
// custom hash algorithm suited for its particular distribution of keys.
type HashAlgorithm[K any] interface {
	// Sum - Given key it generates a hash value.
	// The map derives the bucket index as Sum(key) modulo the current number of buckets,
	// hence equal keys must always produce equal sums. No mixing or avalanche properties
	// beyond that are assumed.
	Sum(key K) uint64
}

// HashAlgorithmFunc - Adapter that lets an ordinary function act as a HashAlgorithm.
type HashAlgorithmFunc[K any] func(key K) uint64

// Sum - Calls the wrapped function.
func (f HashAlgorithmFunc[K]) Sum(key K) uint64 {
	return f(key)
}

// CRC32 - Returns a string key hash algorithm based on crc32.ChecksumIEEE.
// This is also the internally used default for string keys.
func CRC32() HashAlgorithm[string] {
	return HashAlgorithmFunc[string](func(key string) uint64 {
		return uint64(crc32.ChecksumIEEE([]byte(key)))
	})
}

// DJB2 - Returns a string key hash algorithm using the DJB2 function,
// hash = hash*33 + c over the key bytes with seed 5381, wrapped to 32 bits.
func DJB2() HashAlgorithm[string] {
	return HashAlgorithmFunc[string](func(key string) uint64 {
		var h uint32 = djb2Seed
		for i := 0; i < len(key); i++ {
			h = h<<5 + h + uint32(key[i])
		}
		return uint64(h)
	})
}

// FNV1a - Returns a string key hash algorithm using the 32 bit FNV-1a function.
func FNV1a() HashAlgorithm[string] {
	return HashAlgorithmFunc[string](func(key string) uint64 {
		var h uint32 = fnvOffsetBasis32
		for i := 0; i < len(key); i++ {
			h ^= uint32(key[i])
			h *= fnvPrime32
		}
		return uint64(h)
	})
}

// Polynomial - Returns a string key hash algorithm folding the key bytes with
// hash = hash*base + c. A base of 31 gives the classic division method fold.
func Polynomial(base uint64) HashAlgorithm[string] {
	return HashAlgorithmFunc[string](func(key string) uint64 {
		var h uint64
		for i := 0; i < len(key); i++ {
			h = h*base + uint64(key[i])
		}
		return h
	})
}

// Fibonacci - Returns an integer key hash algorithm using the multiplication
// method with Knuth's 64 bit golden ratio constant.
func Fibonacci() HashAlgorithm[uint64] {
	return HashAlgorithmFunc[uint64](func(key uint64) uint64 {
		return key * fibonacciMultiplier
	})
}
