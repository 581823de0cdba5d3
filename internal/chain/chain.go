package chain

// Node - Represents one key/value entry in a bucket chain. The Next pointer is
// exclusively owned by the node's predecessor (the bucket head or the previous
// node), forming a singly linked, non-cyclic chain.
type Node[K comparable, V any] struct {
	Key   K
	Value V
	Next  *Node[K, V]
}

// Bucket - Represents one slot in the hash map, owning the head of a chain of
// entries whose keys all hash to the slot's index. A chain never holds two
// nodes with equal keys.
type Bucket[K comparable, V any] struct {
	Head *Node[K, V]
}

// Put - Updates the value of an existing node with matching key, or links a new
// node at the head of the chain.
//
// It returns:
//   - previous is the value the node held before the update, or the zero value when a new node was linked
//   - existed is true when an existing node was updated in place
func (B *Bucket[K, V]) Put(key K, value V) (previous V, existed bool) {
	for current := B.Head; current != nil; current = current.Next {
		if current.Key == key {
			previous = current.Value
			current.Value = value
			existed = true
			return
		}
	}

	B.Head = &Node[K, V]{Key: key, Value: value, Next: B.Head}
	return
}

// Get - Walks the chain and returns the value of the first node with matching key.
//
// It returns:
//   - value is the value of the matching node, or the zero value when no node matched
//   - found is true when a node with matching key exists in the chain
func (B *Bucket[K, V]) Get(key K) (value V, found bool) {
	for current := B.Head; current != nil; current = current.Next {
		if current.Key == key {
			value = current.Value
			found = true
			return
		}
	}

	return
}

// Remove - Unlinks the first node with matching key, rewiring the chain so the
// node's successor becomes the new link of its predecessor, or the new bucket
// head if it was first.
//
// It returns:
//   - value is the value of the removed node, or the zero value when no node matched
//   - found is true when a node was removed
func (B *Bucket[K, V]) Remove(key K) (value V, found bool) {
	if B.Head == nil {
		return
	}

	if B.Head.Key == key {
		value = B.Head.Value
		B.Head = B.Head.Next
		found = true
		return
	}

	for previous := B.Head; previous.Next != nil; previous = previous.Next {
		if previous.Next.Key == key {
			value = previous.Next.Value
			previous.Next = previous.Next.Next
			found = true
			return
		}
	}

	return
}

// Scan - Calls fn on every entry in chain order. If fn returns false the scan
// stops early.
//
// It returns:
//   - completed is false when fn stopped the scan, otherwise true
func (B *Bucket[K, V]) Scan(fn func(key K, value V) bool) (completed bool) {
	for current := B.Head; current != nil; current = current.Next {
		if !fn(current.Key, current.Value) {
			return
		}
	}

	completed = true
	return
}

// Len - Returns the number of nodes in the chain.
func (B *Bucket[K, V]) Len() (n int) {
	for current := B.Head; current != nil; current = current.Next {
		n++
	}

	return
}
