package coll

import (
	"cmp"
	"fmt"
	"strings"
)

// color tags a tree node. It is a two-state enum rather than a bool so
// other balancing schemes can add states.
type color uint8

const (
	red color = iota
	black
)

func (c color) String() string {
	switch c {
	case red:
		return "Red"
	case black:
		return "Black"
	default:
		return "not recognized"
	}
}

// TreeMapOf is a map ordered by key, stored as a left-leaning red-black
// binary search tree.
//
// Two keys are the same key exactly when the comparator returns 0; no
// separate equality is consulted.
//
// Put keeps the tree balanced: new nodes are red, and while the recursion
// unwinds every node on the insertion path is corrected by a left rotation,
// a right rotation and a color flip, in that order. No red node below the
// root ever has a red child afterwards. The root itself is never forced to
// black, so a tree with a single key has a red root.
//
// Remove does not rebalance. It keeps the BST order, but a long run of
// removals can leave some paths longer than a red-black tree allows and
// degrade lookups towards O(n). It is not a full red-black deletion.
//
// Create maps with NewTreeMapOf or NewTreeMapOfFunc. A TreeMapOf is not
// safe for concurrent use.
type TreeMapOf[K any, V any] struct {
	_        noCopy
	root     *treeNode[K, V]
	size     int
	compare  func(a, b K) int
	valEqual EqualFunc[V]
	keyIsNil func(K) bool
}

// treeNode is owned by its parent, or by the map when it is the root.
type treeNode[K any, V any] struct {
	key   K
	value V
	left  *treeNode[K, V]
	right *treeNode[K, V]
	color color
}

// NewTreeMapOf creates a TreeMapOf for naturally ordered keys.
//
// Parameters:
//   - WithValueEqual option to override the equality used by ContainsValue
func NewTreeMapOf[K cmp.Ordered, V any](options ...func(*Config)) *TreeMapOf[K, V] {
	return NewTreeMapOfFunc[K, V](cmp.Compare[K], options...)
}

// NewTreeMapOfFunc creates a TreeMapOf ordered by compare. If compare is nil
// the key type must implement IComparable, otherwise NewTreeMapOfFunc panics.
//
// compare must define a total order and must not change for a stored key.
func NewTreeMapOfFunc[K any, V any](
	compare func(a, b K) int,
	options ...func(*Config),
) *TreeMapOf[K, V] {
	if compare == nil {
		compare = comparableCompare[K]()
	}
	cfg := newConfig(options)
	m := &TreeMapOf[K, V]{
		compare:  compare,
		keyIsNil: nilChecker[K](),
	}
	if m.valEqual = configuredEqual[V](cfg.valEqual, "WithValueEqual"); m.valEqual == nil {
		m.valEqual = defaultValueEqual[V]()
	}
	return m
}

func comparableCompare[K any]() func(a, b K) int {
	var zeroK K
	if _, ok := any(zeroK).(IComparable[K]); ok || implements[K, IComparable[K]]() {
		return func(a, b K) int {
			return any(a).(IComparable[K]).Compare(b)
		}
	}
	if _, ok := any(&zeroK).(IComparable[K]); ok {
		return func(a, b K) int {
			return any(&a).(IComparable[K]).Compare(b)
		}
	}
	panic("coll: TreeMapOf key type has no ordering; pass a compare function")
}

func (m *TreeMapOf[K, V]) checkKey(op string, key K) error {
	if m.keyIsNil != nil && m.keyIsNil(key) {
		return nullKeyError(op)
	}
	return nil
}

// Size returns the number of entries in the map.
func (m *TreeMapOf[K, V]) Size() int {
	return m.size
}

// IsEmpty reports whether the map holds no entries.
func (m *TreeMapOf[K, V]) IsEmpty() bool {
	return m.size == 0
}

// ContainsKey reports whether key is stored in the map.
func (m *TreeMapOf[K, V]) ContainsKey(key K) (bool, error) {
	if err := m.checkKey("containsKey", key); err != nil {
		return false, err
	}
	return m.find(key) != nil, nil
}

// ContainsValue reports whether any entry holds value, visiting the tree in
// pre-order and stopping at the first match.
func (m *TreeMapOf[K, V]) ContainsValue(value V) bool {
	return m.containsValue(m.root, value)
}

func (m *TreeMapOf[K, V]) containsValue(h *treeNode[K, V], value V) bool {
	if h == nil {
		return false
	}
	if m.valEqual(h.value, value) {
		return true
	}
	return m.containsValue(h.left, value) || m.containsValue(h.right, value)
}

// Get returns the value stored for key. ok is false if the key is absent.
func (m *TreeMapOf[K, V]) Get(key K) (value V, ok bool, err error) {
	if err = m.checkKey("get", key); err != nil {
		return value, false, err
	}
	if h := m.find(key); h != nil {
		return h.value, true, nil
	}
	return value, false, nil
}

func (m *TreeMapOf[K, V]) find(key K) *treeNode[K, V] {
	h := m.root
	for h != nil {
		switch c := m.compare(key, h.key); {
		case c < 0:
			h = h.left
		case c > 0:
			h = h.right
		default:
			return h
		}
	}
	return nil
}

// Put stores value for key. If the key was present its value is replaced
// and the previous value is returned with loaded == true; the tree shape
// does not change in that case.
func (m *TreeMapOf[K, V]) Put(key K, value V) (previous V, loaded bool, err error) {
	if err = m.checkKey("put", key); err != nil {
		return previous, false, err
	}
	m.root, previous, loaded = m.put(m.root, key, value)
	return previous, loaded, nil
}

// put inserts into the subtree rooted at h and returns its new root.
// The corrections run after the recursive call, so they are applied
// bottom-up along the insertion path.
func (m *TreeMapOf[K, V]) put(h *treeNode[K, V], key K, value V) (*treeNode[K, V], V, bool) {
	var previous V
	if h == nil {
		m.size++
		return &treeNode[K, V]{key: key, value: value, color: red}, previous, false
	}

	var loaded bool
	switch c := m.compare(key, h.key); {
	case c < 0:
		h.left, previous, loaded = m.put(h.left, key, value)
	case c > 0:
		h.right, previous, loaded = m.put(h.right, key, value)
	default:
		previous, h.value = h.value, value
		return h, previous, true
	}

	if isRed(h.right) && !isRed(h.left) {
		h = rotateLeft(h)
	}
	if isRed(h.left) && isRed(h.left.left) {
		h = rotateRight(h)
	}
	if isRed(h.left) && isRed(h.right) {
		flipColors(h)
	}
	return h, previous, loaded
}

// Remove deletes key from the map and returns the value it held.
// Removing an absent key is a no-op reported by loaded == false.
//
// The tree is not rebalanced afterwards.
func (m *TreeMapOf[K, V]) Remove(key K) (previous V, loaded bool, err error) {
	if err = m.checkKey("remove", key); err != nil {
		return previous, false, err
	}
	m.root, previous, loaded = m.remove(m.root, key)
	return previous, loaded, nil
}

func (m *TreeMapOf[K, V]) remove(h *treeNode[K, V], key K) (*treeNode[K, V], V, bool) {
	var previous V
	if h == nil {
		return nil, previous, false
	}

	var loaded bool
	switch c := m.compare(key, h.key); {
	case c < 0:
		h.left, previous, loaded = m.remove(h.left, key)
		return h, previous, loaded
	case c > 0:
		h.right, previous, loaded = m.remove(h.right, key)
		return h, previous, loaded
	}

	m.size--
	previous = h.value
	if h.right == nil {
		return h.left, previous, true
	}
	if h.left == nil {
		return h.right, previous, true
	}

	// Promote the in-order successor into h's position. It takes over
	// both children and h's color.
	successor := minNode(h.right)
	successor.right = deleteMin(h.right)
	successor.left = h.left
	successor.color = h.color
	h.left, h.right = nil, nil
	return successor, previous, true
}

// deleteMin unlinks the leftmost node of h and returns the new subtree root.
func deleteMin[K, V any](h *treeNode[K, V]) *treeNode[K, V] {
	if h.left == nil {
		return h.right
	}
	h.left = deleteMin(h.left)
	return h
}

func minNode[K, V any](h *treeNode[K, V]) *treeNode[K, V] {
	for h.left != nil {
		h = h.left
	}
	return h
}

func maxNode[K, V any](h *treeNode[K, V]) *treeNode[K, V] {
	for h.right != nil {
		h = h.right
	}
	return h
}

// Clear removes all entries.
func (m *TreeMapOf[K, V]) Clear() {
	m.root = nil
	m.size = 0
}

// Keys returns the stored keys in ascending order.
func (m *TreeMapOf[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	m.inOrder(m.root, func(h *treeNode[K, V]) {
		keys = append(keys, h.key)
	})
	return keys
}

// Min returns the smallest key and its value. ok is false if the map is empty.
func (m *TreeMapOf[K, V]) Min() (key K, value V, ok bool) {
	if m.root == nil {
		return key, value, false
	}
	h := minNode(m.root)
	return h.key, h.value, true
}

// Max returns the largest key and its value. ok is false if the map is empty.
func (m *TreeMapOf[K, V]) Max() (key K, value V, ok bool) {
	if m.root == nil {
		return key, value, false
	}
	h := maxNode(m.root)
	return h.key, h.value, true
}

func (m *TreeMapOf[K, V]) inOrder(h *treeNode[K, V], visit func(*treeNode[K, V])) {
	if h == nil {
		return
	}
	m.inOrder(h.left, visit)
	visit(h)
	m.inOrder(h.right, visit)
}

func isRed[K, V any](h *treeNode[K, V]) bool {
	return h != nil && h.color == red
}

// rotateLeft promotes h.right into h's position; h becomes its red left child.
func rotateLeft[K, V any](h *treeNode[K, V]) *treeNode[K, V] {
	x := h.right
	h.right = x.left
	x.left = h
	x.color = h.color
	h.color = red
	return x
}

// rotateRight promotes h.left into h's position; h becomes its red right child.
func rotateRight[K, V any](h *treeNode[K, V]) *treeNode[K, V] {
	x := h.left
	h.left = x.right
	x.right = h
	x.color = h.color
	h.color = red
	return x
}

func flipColors[K, V any](h *treeNode[K, V]) {
	h.color = red
	h.left.color = black
	h.right.color = black
}

// String implement the formatting output interface fmt.Stringer
func (m *TreeMapOf[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("TreeMapOf[")
	first := true
	m.inOrder(m.root, func(h *treeNode[K, V]) {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", h.key, h.value)
	})
	sb.WriteByte(']')
	return sb.String()
}

// Stats returns the shape of the tree. It's an O(N) operation,
// so it should be used only for diagnostics or debugging purposes.
func (m *TreeMapOf[K, V]) Stats() *TreeStats {
	stats := &TreeStats{Counter: m.size}
	if m.root != nil {
		stats.RootColor = m.root.color.String()
	}
	var walk func(h *treeNode[K, V], depth int)
	walk = func(h *treeNode[K, V], depth int) {
		if h == nil {
			return
		}
		stats.Size++
		stats.Height = max(stats.Height, depth)
		if h.color == red {
			stats.RedNodes++
		}
		walk(h.left, depth+1)
		walk(h.right, depth+1)
	}
	walk(m.root, 1)
	return stats
}

// TreeStats is TreeMapOf statistics.
//
// Warning: tree statistics are intended to be used for diagnostic
// purposes, not for production code.
type TreeStats struct {
	// Size is the number of nodes found by walking the tree.
	Size int
	// Counter is the size the map keeps incrementally.
	Counter int
	// Height is the number of nodes on the longest root-to-leaf path.
	Height int
	// RedNodes is the number of red nodes.
	RedNodes int
	// RootColor is "Red" or "Black", empty for an empty tree.
	RootColor string
}

// ToString returns string representation of tree stats.
func (s *TreeStats) ToString() string {
	var sb strings.Builder
	sb.WriteString("TreeStats{\n")
	sb.WriteString(fmt.Sprintf("Size:      %d\n", s.Size))
	sb.WriteString(fmt.Sprintf("Counter:   %d\n", s.Counter))
	sb.WriteString(fmt.Sprintf("Height:    %d\n", s.Height))
	sb.WriteString(fmt.Sprintf("RedNodes:  %d\n", s.RedNodes))
	sb.WriteString(fmt.Sprintf("RootColor: %s\n", s.RootColor))
	sb.WriteString("}\n")
	return sb.String()
}
