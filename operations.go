package chainmap

import "math"

// MapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of entries stored
//   - BucketDistribution is the number of entries stored in each available bucket
type MapStat struct {
	Records            int
	BucketDistribution []int
}

// Set - Updates an existing entry with a new value or adds a new entry if none
// with an equal key exists. If adding a new entry would push the load factor
// above the threshold, the map is resized first (capacity at least doubles,
// repeatedly until the new entry fits under the threshold) and the target
// bucket recomputed against the new capacity, so the load factor invariant
// holds when Set returns. Resizing before linking the new entry is a policy
// choice, the recomputed bucket makes the result independent of where the
// entry would have landed under the old capacity.
//   - key is the identifier of an entry
//   - value is the value stored along with its key
//
// It returns:
//   - previous is the value the entry held before the update, or the zero value when the key was new
//   - existed is true when an existing entry was updated in place
func (C *ChainMap[K, V]) Set(key K, value V) (previous V, existed bool) {
	bucketNo := C.bucketNo(key)

	if _, existed = C.buckets[bucketNo].Get(key); !existed {
		if float64(C.size+1)/float64(len(C.buckets)) > C.loadFactorThreshold {
			newCapacity := 2 * len(C.buckets)
			for float64(C.size+1)/float64(newCapacity) > C.loadFactorThreshold {
				newCapacity *= 2
			}
			C.resize(newCapacity)
			bucketNo = C.bucketNo(key)
		}
		C.size++
	}

	previous, _ = C.buckets[bucketNo].Put(key, value)

	return
}

// Get - Gets the value that corresponds to the given key. It walks the chain of
// the key's bucket and returns the value of the first entry with an equal key.
// The map is never mutated by a Get.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found, if not found an error of type KeyNotFound is also returned
//   - err is of type KeyNotFound when the key is absent, otherwise nil
func (C *ChainMap[K, V]) Get(key K) (value V, err error) {
	value, found := C.buckets[C.bucketNo(key)].Get(key)
	if !found {
		err = KeyNotFound{}
	}

	return
}

// Contains - Reports whether an entry with the given key exists. Equivalent to
// Get but without exposing a failure path where only existence matters.
//   - key is the identifier of an entry
func (C *ChainMap[K, V]) Contains(key K) bool {
	_, found := C.buckets[C.bucketNo(key)].Get(key)
	return found
}

// Pop - Returns the value corresponding to key and removes the entry from the
// map. The map never shrinks on Pop, deletions only lower the load factor.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the removed entry if found, if not found an error of type KeyNotFound is also returned
//   - err is of type KeyNotFound when the key is absent, otherwise nil
func (C *ChainMap[K, V]) Pop(key K) (value V, err error) {
	value, found := C.buckets[C.bucketNo(key)].Remove(key)
	if !found {
		err = KeyNotFound{}
		return
	}

	C.size--

	return
}

// Each - Calls fn on every entry, iterating buckets in index order and each
// chain in chain order. If fn returns false the iteration stops early. The
// order is stable only as long as no mutation occurred between calls.
func (C *ChainMap[K, V]) Each(fn func(key K, value V) bool) {
	for i := range C.buckets {
		if !C.buckets[i].Scan(fn) {
			return
		}
	}
}

// Keys - Returns a snapshot of all keys, in bucket index order and within each
// bucket in chain order.
func (C *ChainMap[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, C.size)
	C.Each(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})

	return
}

// Values - Returns a snapshot of all values, in the same order as Keys as long
// as no mutation occurred in between.
func (C *ChainMap[K, V]) Values() (values []V) {
	values = make([]V, 0, C.size)
	C.Each(func(_ K, value V) bool {
		values = append(values, value)
		return true
	})

	return
}

// Clear - Removes all entries. The bucket array keeps its current capacity.
func (C *ChainMap[K, V]) Clear() {
	for i := range C.buckets {
		C.buckets[i].Head = nil
	}
	C.size = 0
}

// Reserve - Grows the bucket array ahead of time so that n entries fit without
// crossing the load factor threshold. If the current capacity already covers n
// entries the call has no effect, the map never shrinks.
//   - n is the number of entries to provide capacity for
func (C *ChainMap[K, V]) Reserve(n int) {
	needed := int(math.Ceil(float64(n) / C.loadFactorThreshold))
	if needed > len(C.buckets) {
		C.resize(needed)
	}
}

// Stat - Walks through the entire set of buckets and produces a MapStat struct
// with information. For a map with many buckets the BucketDistribution slice
// can be memory heavy (there will be one entry per bucket).
//   - includeDistribution set to true will include a slice of length Capacity with number of entries per bucket, false will set MapStat.BucketDistribution to nil
func (C *ChainMap[K, V]) Stat(includeDistribution bool) (mapStat *MapStat) {
	var ms MapStat

	if includeDistribution {
		ms.BucketDistribution = make([]int, len(C.buckets))
	}

	for i := range C.buckets {
		n := C.buckets[i].Len()
		ms.Records += n
		if includeDistribution {
			ms.BucketDistribution[i] = n
		}
	}

	mapStat = &ms
	return
}
