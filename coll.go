// Package coll provides hand-built generic containers that share a common
// Map or List contract without delegating storage to Go's built-in map:
//
//   - HashMapOf: a chained hash table that grows by 3/2 when its load factor
//     would exceed the threshold (0.75 by default).
//   - TreeMapOf: a left-leaning red-black tree ordered by a comparator.
//   - ArrayListOf: a manually grown array list.
//   - LinkedListOf: a singly linked list with a sentinel head.
//
// None of the containers are safe for concurrent use. Each instance must be
// confined to one goroutine at a time, or guarded by the caller.
//
// Nil keys are rejected with a *NullKeyError and nil values are stored
// verbatim. Absent keys are reported through the ok/loaded results, never
// as an error.
package coll

// Map is the contract shared by HashMapOf and TreeMapOf.
type Map[K any, V any] interface {
	// Size returns the number of keys currently stored.
	Size() int
	// IsEmpty reports whether Size is zero.
	IsEmpty() bool
	// ContainsKey reports whether key is stored.
	ContainsKey(key K) (bool, error)
	// ContainsValue reports whether any key maps to value. It is a linear scan.
	ContainsValue(value V) bool
	// Get returns the value stored for key, or ok == false when it is absent.
	Get(key K) (value V, ok bool, err error)
	// Put stores value for key and returns the value it replaced, if any.
	Put(key K, value V) (previous V, loaded bool, err error)
	// Remove deletes key and returns the value it held, if any.
	Remove(key K) (previous V, loaded bool, err error)
	// Clear removes every entry and returns the map to its initial state.
	Clear()
	// Keys returns a snapshot of the stored keys.
	Keys() []K
}

// List is the contract shared by ArrayListOf and LinkedListOf.
type List[T any] interface {
	Size() int
	IsEmpty() bool
	Contains(value T) bool
	// Add appends value to the end of the list.
	Add(value T)
	// Insert places value at index, shifting later elements right.
	// index may equal Size.
	Insert(index int, value T) error
	Get(index int) (T, error)
	// Set replaces the element at index and returns the one it replaced.
	Set(index int, value T) (previous T, err error)
	// RemoveAt removes and returns the element at index.
	RemoveAt(index int) (T, error)
	// Remove removes the first element equal to value and reports whether
	// one was found.
	Remove(value T) bool
	// IndexOf returns the index of the first element equal to value, or -1.
	IndexOf(value T) int
	// LastIndexOf returns the index of the last element equal to value, or -1.
	LastIndexOf(value T) int
	Clear()
}

var (
	_ Map[int, int] = (*HashMapOf[int, int])(nil)
	_ Map[int, int] = (*TreeMapOf[int, int])(nil)
	_ List[int]     = (*ArrayListOf[int])(nil)
	_ List[int]     = (*LinkedListOf[int])(nil)
)
