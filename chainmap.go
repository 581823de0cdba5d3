package chainmap

import (
	"fmt"

	"github.com/stonegrove/chainmap/hashfunc"
	"github.com/stonegrove/chainmap/internal/chain"
	"github.com/stonegrove/chainmap/internal/hash"
)

// DefaultLoadFactorThreshold - The load factor threshold applied when New is
// called with a zero threshold.
const DefaultLoadFactorThreshold = 0.75

// ChainMap - An in-memory hash map resolving collisions with separate chaining.
// Keys are distributed over an array of buckets, each bucket owning a singly
// linked chain of entries whose keys hash to the bucket's index. When an insert
// would push the load factor (entries per bucket on average) above the
// threshold, the bucket array is reallocated at double the capacity and every
// entry relinked against the new capacity.
//
// A ChainMap is not safe for concurrent use; callers mutating it from several
// goroutines must serialize access externally.
type ChainMap[K comparable, V any] struct {
	buckets             []chain.Bucket[K, V]
	size                int
	loadFactorThreshold float64
	hashAlgorithm       hashfunc.HashAlgorithm[K]
}

// New - Returns a new ChainMap with the given number of buckets.
//   - initialCapacity is the initial number of buckets and must be higher than 0 (zero)
//   - loadFactorThreshold bounds size/capacity and must be in the range 0 < t <= 1, a zero value selects DefaultLoadFactorThreshold
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface, nil selects an internal default for the key type
//
// It returns:
//   - chainMap is a pointer to a ChainMap struct
//   - err is a normal Go error which should be nil if everything went ok
func New[K comparable, V any](
	initialCapacity int,
	loadFactorThreshold float64,
	hashAlgorithm hashfunc.HashAlgorithm[K],
) (
	chainMap *ChainMap[K, V],
	err error,
) {

	// Check if initialCapacity is valid
	if initialCapacity <= 0 {
		err = fmt.Errorf("initialCapacity must be a positive value higher than 0 (zero)")
		return
	}

	// Check if loadFactorThreshold is valid, zero picks the default
	if loadFactorThreshold == 0 {
		loadFactorThreshold = DefaultLoadFactorThreshold
	}
	if loadFactorThreshold < 0 || loadFactorThreshold > 1 {
		err = fmt.Errorf("loadFactorThreshold must be in the range 0 < t <= 1")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	if hashAlgorithm == nil {
		hashAlgorithm = hash.Default[K]()
	}

	chainMap = &ChainMap[K, V]{
		buckets:             make([]chain.Bucket[K, V], initialCapacity),
		loadFactorThreshold: loadFactorThreshold,
		hashAlgorithm:       hashAlgorithm,
	}

	return
}

// Len - Returns the number of entries currently stored.
func (C *ChainMap[K, V]) Len() int {
	return C.size
}

// Capacity - Returns the current number of buckets.
func (C *ChainMap[K, V]) Capacity() int {
	return len(C.buckets)
}

// Load - Returns the current load factor, size divided by capacity.
func (C *ChainMap[K, V]) Load() float64 {
	return float64(C.size) / float64(len(C.buckets))
}

// LoadFactorThreshold - Returns the threshold the load factor is bounded by.
func (C *ChainMap[K, V]) LoadFactorThreshold() float64 {
	return C.loadFactorThreshold
}

// bucketNo - Returns which bucket number the given key results in, given the
// current capacity.
func (C *ChainMap[K, V]) bucketNo(key K) int {
	return int(C.hashAlgorithm.Sum(key) % uint64(len(C.buckets)))
}

// resize - Reallocates the bucket array to newCapacity buckets and relinks
// every node according to its hash modulo the new capacity. Nodes are reused
// rather than copied, each ends up in exactly one new bucket and the entry
// count is unchanged. The old bucket array is discarded once all nodes are
// migrated.
func (C *ChainMap[K, V]) resize(newCapacity int) {
	oldBuckets := C.buckets
	C.buckets = make([]chain.Bucket[K, V], newCapacity)

	for i := range oldBuckets {
		current := oldBuckets[i].Head
		for current != nil {
			next := current.Next
			bucketNo := C.bucketNo(current.Key)
			current.Next = C.buckets[bucketNo].Head
			C.buckets[bucketNo].Head = current
			current = next
		}
	}
}
