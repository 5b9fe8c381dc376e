package coll

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"unsafe"
)

// HashMapOf is a hash table that resolves collisions by chaining.
//
// The table is a slice of buckets; each bucket holds a singly linked chain
// of entries whose keys hash to that index. A key lands in bucket
// hash(key) mod capacity, where the hash comes from WithKeyHasher,
// IHashCode on the key, or a built-in hasher. Keys with equal hashes but
// different identity share a chain and are told apart by key equality.
//
// Before every Put the map checks whether storing one more entry would push
// size/capacity over the load factor (default 0.75). If so the capacity
// grows to capacity*3/2+1, repeatedly if needed, and every entry is
// rehashed into a new bucket slice. The map never shrinks except on Clear.
//
// Get, Put, Remove and ContainsKey run in expected constant time given a
// reasonable hash; ContainsValue visits every entry.
//
// The zero HashMapOf is empty and ready to use.
// A HashMapOf must not be copied after first use, and is not safe for
// concurrent use.
type HashMapOf[K comparable, V any] struct {
	_ [(CacheLineSize - unsafe.Sizeof(struct {
		_            noCopy
		buckets      []unsafe.Pointer
		size         int
		initCap      int
		loadFactor   float64
		seed         uintptr
		keyHash      func()
		keyEqual     func()
		valEqual     func()
		keyIsNil     func()
		totalGrowths uint32
	}{})%CacheLineSize) % CacheLineSize]byte

	_            noCopy
	buckets      []*hashEntry[K, V]
	size         int
	initCap      int
	loadFactor   float64
	seed         uintptr
	keyHash      HashFunc[K]
	keyEqual     EqualFunc[K]
	valEqual     EqualFunc[V]
	keyIsNil     func(K) bool
	totalGrowths uint32
}

// hashEntry is a link of a bucket chain. Each entry is owned by exactly one
// predecessor: the previous entry of the chain or the bucket slot itself.
type hashEntry[K comparable, V any] struct {
	key   K
	value V
	next  *hashEntry[K, V]
}

// NewHashMapOf creates a new HashMapOf instance.
//
// Parameters:
//   - WithPresize option for initial capacity
//   - WithLoadFactor option to change the growth threshold
//   - WithKeyHasher / WithKeyEqual options to override key hashing and equality
//   - WithValueEqual option to override the equality used by ContainsValue
func NewHashMapOf[K comparable, V any](options ...func(*Config)) *HashMapOf[K, V] {
	m := &HashMapOf[K, V]{}
	m.init(newConfig(options))
	return m
}

func (m *HashMapOf[K, V]) init(cfg *Config) {
	m.seed = uintptr(rand.Uint64())
	if m.keyHash = configuredKeyHash[K](cfg); m.keyHash == nil {
		m.keyHash = defaultHasher[K]()
	}
	if m.keyEqual = configuredEqual[K](cfg.keyEqual, "WithKeyEqual"); m.keyEqual == nil {
		m.keyEqual = defaultKeyEqual[K]()
	}
	if m.valEqual = configuredEqual[V](cfg.valEqual, "WithValueEqual"); m.valEqual == nil {
		m.valEqual = defaultValueEqual[V]()
	}
	m.keyIsNil = nilChecker[K]()
	m.loadFactor = cfg.loadFactor()
	m.initCap = cfg.mapCapacity()
	m.buckets = make([]*hashEntry[K, V], m.initCap)
}

func (m *HashMapOf[K, V]) lazyInit() {
	if m.buckets == nil {
		m.init(&Config{})
	}
}

func (m *HashMapOf[K, V]) checkKey(op string, key K) error {
	if m.keyIsNil != nil && m.keyIsNil(key) {
		return nullKeyError(op)
	}
	return nil
}

func (m *HashMapOf[K, V]) bucketIndex(key K, capacity int) int {
	return int(m.keyHash(key, m.seed) % uintptr(capacity))
}

func (m *HashMapOf[K, V]) findEntry(key K) *hashEntry[K, V] {
	for e := m.buckets[m.bucketIndex(key, len(m.buckets))]; e != nil; e = e.next {
		if m.keyEqual(e.key, key) {
			return e
		}
	}
	return nil
}

// Size returns the number of entries in the map.
func (m *HashMapOf[K, V]) Size() int {
	return m.size
}

// IsEmpty reports whether the map holds no entries.
func (m *HashMapOf[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Capacity returns the current number of buckets.
func (m *HashMapOf[K, V]) Capacity() int {
	m.lazyInit()
	return len(m.buckets)
}

// ContainsKey reports whether key is stored in the map.
func (m *HashMapOf[K, V]) ContainsKey(key K) (bool, error) {
	m.lazyInit()
	if err := m.checkKey("containsKey", key); err != nil {
		return false, err
	}
	return m.findEntry(key) != nil, nil
}

// ContainsValue reports whether any entry holds value. Nil values compare
// equal to each other.
func (m *HashMapOf[K, V]) ContainsValue(value V) bool {
	for _, e := range m.buckets {
		for ; e != nil; e = e.next {
			if m.valEqual(e.value, value) {
				return true
			}
		}
	}
	return false
}

// Get returns the value stored for key. ok is false if the key is absent.
func (m *HashMapOf[K, V]) Get(key K) (value V, ok bool, err error) {
	m.lazyInit()
	if err = m.checkKey("get", key); err != nil {
		return value, false, err
	}
	if e := m.findEntry(key); e != nil {
		return e.value, true, nil
	}
	return value, false, nil
}

// Put stores value for key. If the key was present its value is replaced
// in place and the previous value is returned with loaded == true.
func (m *HashMapOf[K, V]) Put(key K, value V) (previous V, loaded bool, err error) {
	m.lazyInit()
	if err = m.checkKey("put", key); err != nil {
		return previous, false, err
	}

	// Grow first so the entry about to be linked already has room.
	m.ensureCapacity()

	idx := m.bucketIndex(key, len(m.buckets))
	e := m.buckets[idx]
	if e == nil {
		m.buckets[idx] = &hashEntry[K, V]{key: key, value: value}
		m.size++
		return previous, false, nil
	}
	for {
		if m.keyEqual(e.key, key) {
			previous, e.value = e.value, value
			return previous, true, nil
		}
		if e.next == nil {
			e.next = &hashEntry[K, V]{key: key, value: value}
			m.size++
			return previous, false, nil
		}
		e = e.next
	}
}

// Remove deletes key from the map and returns the value it held.
// Removing an absent key is a no-op reported by loaded == false.
func (m *HashMapOf[K, V]) Remove(key K) (previous V, loaded bool, err error) {
	m.lazyInit()
	if err = m.checkKey("remove", key); err != nil {
		return previous, false, err
	}

	idx := m.bucketIndex(key, len(m.buckets))
	head := m.buckets[idx]
	if head == nil {
		return previous, false, nil
	}
	if m.keyEqual(head.key, key) {
		m.buckets[idx] = head.next
		head.next = nil
		m.size--
		return head.value, true, nil
	}
	for prev, cur := head, head.next; cur != nil; prev, cur = cur, cur.next {
		if m.keyEqual(cur.key, key) {
			prev.next = cur.next
			cur.next = nil
			m.size--
			return cur.value, true, nil
		}
	}
	return previous, false, nil
}

// Clear removes all entries and shrinks the bucket slice back to its
// initial capacity.
func (m *HashMapOf[K, V]) Clear() {
	m.lazyInit()
	m.buckets = make([]*hashEntry[K, V], m.initCap)
	m.size = 0
}

// Keys returns the stored keys in bucket order.
func (m *HashMapOf[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for _, e := range m.buckets {
		for ; e != nil; e = e.next {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// ensureCapacity grows the table until one more entry keeps
// size/capacity within the load factor.
func (m *HashMapOf[K, V]) ensureCapacity() {
	newCap := len(m.buckets)
	for float64(m.size+1) > m.loadFactor*float64(newCap) {
		newCap = newCap*3/2 + 1
	}
	if newCap != len(m.buckets) {
		m.rehash(newCap)
	}
}

// rehash moves every entry into a new bucket slice of length newCap.
// Each entry is unlinked from its old chain before it is appended to its
// new one, so no chain can end up pointing into another.
func (m *HashMapOf[K, V]) rehash(newCap int) {
	buckets := make([]*hashEntry[K, V], newCap)
	tails := make([]*hashEntry[K, V], newCap)
	for _, e := range m.buckets {
		for e != nil {
			next := e.next
			e.next = nil
			idx := m.bucketIndex(e.key, newCap)
			if tails[idx] == nil {
				buckets[idx] = e
			} else {
				tails[idx].next = e
			}
			tails[idx] = e
			e = next
		}
	}
	m.buckets = buckets
	m.totalGrowths++
}

// String implement the formatting output interface fmt.Stringer
func (m *HashMapOf[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("HashMapOf[")
	first := true
	for _, e := range m.buckets {
		for ; e != nil; e = e.next {
			if !first {
				sb.WriteByte(' ')
			}
			first = false
			fmt.Fprintf(&sb, "%v:%v", e.key, e.value)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// Stats returns statistics for the HashMapOf. It's an O(N) operation,
// so it should be used only for diagnostics or debugging purposes.
func (m *HashMapOf[K, V]) Stats() *MapStats {
	m.lazyInit()
	stats := &MapStats{
		Capacity:     len(m.buckets),
		Counter:      m.size,
		MinEntries:   math.MaxInt,
		TotalGrowths: m.totalGrowths,
	}
	for _, e := range m.buckets {
		nentries := 0
		for ; e != nil; e = e.next {
			nentries++
		}
		stats.Size += nentries
		if nentries == 0 {
			stats.EmptyBuckets++
		}
		stats.MinEntries = min(stats.MinEntries, nentries)
		stats.MaxEntries = max(stats.MaxEntries, nentries)
	}
	stats.LoadFactor = float64(stats.Size) / float64(stats.Capacity)
	return stats
}

// MapStats is HashMapOf statistics.
//
// Warning: map statistics are intended to be used for diagnostic
// purposes, not for production code. Fields may change between
// minor releases.
type MapStats struct {
	// Capacity is the number of buckets.
	Capacity int
	// EmptyBuckets is the number of buckets that hold no entries.
	EmptyBuckets int
	// Size is the number of entries found by walking every chain.
	Size int
	// Counter is the size the map keeps incrementally. It always
	// equals Size unless the map has been corrupted.
	Counter int
	// MinEntries is the length of the shortest chain.
	MinEntries int
	// MaxEntries is the length of the longest chain.
	MaxEntries int
	// LoadFactor is Size/Capacity.
	LoadFactor float64
	// TotalGrowths is the number of times the table grew since creation.
	TotalGrowths uint32
}

// ToString returns string representation of map stats.
func (s *MapStats) ToString() string {
	var sb strings.Builder
	sb.WriteString("MapStats{\n")
	sb.WriteString(fmt.Sprintf("Capacity:     %d\n", s.Capacity))
	sb.WriteString(fmt.Sprintf("EmptyBuckets: %d\n", s.EmptyBuckets))
	sb.WriteString(fmt.Sprintf("Size:         %d\n", s.Size))
	sb.WriteString(fmt.Sprintf("Counter:      %d\n", s.Counter))
	sb.WriteString(fmt.Sprintf("MinEntries:   %d\n", s.MinEntries))
	sb.WriteString(fmt.Sprintf("MaxEntries:   %d\n", s.MaxEntries))
	sb.WriteString(fmt.Sprintf("LoadFactor:   %.3f\n", s.LoadFactor))
	sb.WriteString(fmt.Sprintf("TotalGrowths: %d\n", s.TotalGrowths))
	sb.WriteString("}\n")
	return sb.String()
}
