package coll

// LinkedListOf is a singly linked list. The head is a sentinel that holds
// no value and is not counted; tail points at the last node (the sentinel
// when the list is empty) so Add does not walk the list.
//
// Indexed operations walk from the head and run in linear time.
// Nil values are allowed.
//
// Create lists with NewLinkedListOf. A LinkedListOf is not safe for
// concurrent use.
type LinkedListOf[T any] struct {
	_        noCopy
	head     *listNode[T]
	tail     *listNode[T]
	size     int
	valEqual EqualFunc[T]
}

type listNode[T any] struct {
	value T
	next  *listNode[T]
}

// NewLinkedListOf creates an empty LinkedListOf.
//
// Parameters:
//   - WithValueEqual option to override the equality used by Contains,
//     Remove, IndexOf and LastIndexOf
func NewLinkedListOf[T any](options ...func(*Config)) *LinkedListOf[T] {
	cfg := newConfig(options)
	l := &LinkedListOf[T]{}
	if l.valEqual = configuredEqual[T](cfg.valEqual, "WithValueEqual"); l.valEqual == nil {
		l.valEqual = defaultValueEqual[T]()
	}
	l.Clear()
	return l
}

func (l *LinkedListOf[T]) Size() int {
	return l.size
}

func (l *LinkedListOf[T]) IsEmpty() bool {
	return l.head.next == nil
}

func (l *LinkedListOf[T]) Contains(value T) bool {
	return l.IndexOf(value) >= 0
}

func (l *LinkedListOf[T]) Add(value T) {
	n := &listNode[T]{value: value}
	l.tail.next = n
	l.tail = n
	l.size++
}

func (l *LinkedListOf[T]) Insert(index int, value T) error {
	if index < 0 || index > l.size {
		return indexError("insert", index, l.size)
	}
	prev := l.nodeBefore(index)
	n := &listNode[T]{value: value, next: prev.next}
	prev.next = n
	if n.next == nil {
		l.tail = n
	}
	l.size++
	return nil
}

func (l *LinkedListOf[T]) Get(index int) (value T, err error) {
	if index < 0 || index >= l.size {
		return value, indexError("get", index, l.size)
	}
	return l.nodeBefore(index).next.value, nil
}

func (l *LinkedListOf[T]) Set(index int, value T) (previous T, err error) {
	if index < 0 || index >= l.size {
		return previous, indexError("set", index, l.size)
	}
	n := l.nodeBefore(index).next
	previous, n.value = n.value, value
	return previous, nil
}

func (l *LinkedListOf[T]) RemoveAt(index int) (value T, err error) {
	if index < 0 || index >= l.size {
		return value, indexError("removeAt", index, l.size)
	}
	return l.unlink(l.nodeBefore(index)), nil
}

func (l *LinkedListOf[T]) Remove(value T) bool {
	for prev := l.head; prev.next != nil; prev = prev.next {
		if l.valEqual(prev.next.value, value) {
			l.unlink(prev)
			return true
		}
	}
	return false
}

func (l *LinkedListOf[T]) IndexOf(value T) int {
	i := 0
	for n := l.head.next; n != nil; n = n.next {
		if l.valEqual(n.value, value) {
			return i
		}
		i++
	}
	return -1
}

func (l *LinkedListOf[T]) LastIndexOf(value T) int {
	last, i := -1, 0
	for n := l.head.next; n != nil; n = n.next {
		if l.valEqual(n.value, value) {
			last = i
		}
		i++
	}
	return last
}

func (l *LinkedListOf[T]) Clear() {
	l.head = &listNode[T]{}
	l.tail = l.head
	l.size = 0
}

// nodeBefore returns the node preceding position index; the sentinel for 0.
func (l *LinkedListOf[T]) nodeBefore(index int) *listNode[T] {
	n := l.head
	for ; index > 0; index-- {
		n = n.next
	}
	return n
}

// unlink removes prev.next and returns its value.
func (l *LinkedListOf[T]) unlink(prev *listNode[T]) T {
	n := prev.next
	prev.next = n.next
	n.next = nil
	if l.tail == n {
		l.tail = prev
	}
	l.size--
	return n.value
}
