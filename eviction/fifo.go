// This file implements FIFO eviction order.

package eviction

import "iter"

// fifoNode is one key in the insertion-order list.
type fifoNode[K comparable] struct {
	key K

	// prev points to the key inserted just before this one
	prev *fifoNode[K]

	// next points to the key inserted just after this one
	next *fifoNode[K]
}

/*
FIFO keeps keys in the order they were inserted and answers "which key is
oldest?" in O(1).

A plain slice queue would make Remove O(n), and the store removes keys
from the middle all the time (explicit Remove, lazy expiry, cleanup). So
the order lives in a doubly-linked list and nodes maps each key to its node.

Reads never touch the order. Only Push (insert / re-insert) moves a key,
and it always moves it to the back.
*/
type FIFO[K comparable] struct {
	// nodes maps keys to their list nodes for O(1) lookup and unlink.
	nodes map[K]*fifoNode[K]

	// head is the OLDEST key, the next eviction victim.
	head *fifoNode[K]

	// tail is the NEWEST key.
	tail *fifoNode[K]
}

// NewFIFO returns an empty order.
func NewFIFO[K comparable]() *FIFO[K] {
	return &FIFO[K]{nodes: make(map[K]*fifoNode[K])}
}

// Push records k as the most recently inserted key. If k is already
// tracked it is moved to the back.
func (f *FIFO[K]) Push(k K) {
	if n, ok := f.nodes[k]; ok {
		f.unlink(n)
		f.pushBack(n)
		return
	}
	n := &fifoNode[K]{key: k}
	f.nodes[k] = n
	f.pushBack(n)
}

// Oldest returns the key at the front of the order without removing it.
func (f *FIFO[K]) Oldest() (K, bool) {
	if f.head == nil {
		var zero K
		return zero, false
	}
	return f.head.key, true
}

// Evict removes and returns the oldest key.
func (f *FIFO[K]) Evict() (K, bool) {
	if f.head == nil {
		var zero K
		return zero, false
	}
	k := f.head.key
	f.unlink(f.head)
	delete(f.nodes, k)
	return k, true
}

// Remove drops k from the order. Untracked keys are ignored.
func (f *FIFO[K]) Remove(k K) bool {
	n, ok := f.nodes[k]
	if !ok {
		return false
	}
	f.unlink(n)
	delete(f.nodes, k)
	return true
}

// Contains reports whether k is tracked.
func (f *FIFO[K]) Contains(k K) bool {
	_, ok := f.nodes[k]
	return ok
}

// Len returns the number of tracked keys.
func (f *FIFO[K]) Len() int { return len(f.nodes) }

// Reset forgets every key.
func (f *FIFO[K]) Reset() {
	clear(f.nodes)
	f.head = nil
	f.tail = nil
}

// All yields keys oldest first. The sequence must not be consumed while
// the FIFO is being modified.
func (f *FIFO[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := f.head; n != nil; n = n.next {
			if !yield(n.key) {
				return
			}
		}
	}
}

// Keys returns a copy of the order, oldest first.
func (f *FIFO[K]) Keys() []K {
	out := make([]K, 0, len(f.nodes))
	for n := f.head; n != nil; n = n.next {
		out = append(out, n.key)
	}
	return out
}

// pushBack links n after the current tail.
func (f *FIFO[K]) pushBack(n *fifoNode[K]) {
	n.prev = f.tail
	n.next = nil
	if f.tail != nil {
		f.tail.next = n
	}
	f.tail = n

	// If the list was empty, head and tail are the same
	if f.head == nil {
		f.head = n
	}
}

// unlink removes n from the list, fixing head and tail as needed.
func (f *FIFO[K]) unlink(n *fifoNode[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		f.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		f.tail = n.prev
	}
	n.prev = nil
	n.next = nil
}
