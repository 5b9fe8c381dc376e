package coll

// ArrayListOf is a list backed by a manually grown slice. When an insertion
// finds the backing slice full it is replaced by one of length
// capacity*3/2+1.
//
// Get and Set run in constant time; Insert and RemoveAt shift the tail.
// Nil values are allowed.
//
// Create lists with NewArrayListOf. An ArrayListOf is not safe for
// concurrent use.
type ArrayListOf[T any] struct {
	_        noCopy
	data     []T
	size     int
	initCap  int
	valEqual EqualFunc[T]
}

// NewArrayListOf creates an empty ArrayListOf.
//
// Parameters:
//   - WithPresize option for initial capacity (default 10)
//   - WithValueEqual option to override the equality used by Contains,
//     Remove, IndexOf and LastIndexOf
func NewArrayListOf[T any](options ...func(*Config)) *ArrayListOf[T] {
	cfg := newConfig(options)
	l := &ArrayListOf[T]{initCap: cfg.listCapacity()}
	if l.valEqual = configuredEqual[T](cfg.valEqual, "WithValueEqual"); l.valEqual == nil {
		l.valEqual = defaultValueEqual[T]()
	}
	l.data = make([]T, l.initCap)
	return l
}

func (l *ArrayListOf[T]) Size() int {
	return l.size
}

func (l *ArrayListOf[T]) IsEmpty() bool {
	return l.size == 0
}

// Capacity returns the length of the backing slice.
func (l *ArrayListOf[T]) Capacity() int {
	return len(l.data)
}

func (l *ArrayListOf[T]) Contains(value T) bool {
	return l.IndexOf(value) >= 0
}

func (l *ArrayListOf[T]) Add(value T) {
	l.ensureCapacity()
	l.data[l.size] = value
	l.size++
}

func (l *ArrayListOf[T]) Insert(index int, value T) error {
	if index < 0 || index > l.size {
		return indexError("insert", index, l.size)
	}
	l.ensureCapacity()
	copy(l.data[index+1:l.size+1], l.data[index:l.size])
	l.data[index] = value
	l.size++
	return nil
}

func (l *ArrayListOf[T]) Get(index int) (value T, err error) {
	if index < 0 || index >= l.size {
		return value, indexError("get", index, l.size)
	}
	return l.data[index], nil
}

func (l *ArrayListOf[T]) Set(index int, value T) (previous T, err error) {
	if index < 0 || index >= l.size {
		return previous, indexError("set", index, l.size)
	}
	previous, l.data[index] = l.data[index], value
	return previous, nil
}

func (l *ArrayListOf[T]) RemoveAt(index int) (value T, err error) {
	if index < 0 || index >= l.size {
		return value, indexError("removeAt", index, l.size)
	}
	value = l.data[index]
	copy(l.data[index:l.size-1], l.data[index+1:l.size])
	l.size--
	var zero T
	l.data[l.size] = zero
	return value, nil
}

func (l *ArrayListOf[T]) Remove(value T) bool {
	i := l.IndexOf(value)
	if i < 0 {
		return false
	}
	_, _ = l.RemoveAt(i)
	return true
}

func (l *ArrayListOf[T]) IndexOf(value T) int {
	for i := 0; i < l.size; i++ {
		if l.valEqual(l.data[i], value) {
			return i
		}
	}
	return -1
}

func (l *ArrayListOf[T]) LastIndexOf(value T) int {
	for i := l.size - 1; i >= 0; i-- {
		if l.valEqual(l.data[i], value) {
			return i
		}
	}
	return -1
}

// Clear removes all elements and restores the initial capacity.
func (l *ArrayListOf[T]) Clear() {
	l.data = make([]T, l.initCap)
	l.size = 0
}

// ensureCapacity makes room for one more element.
func (l *ArrayListOf[T]) ensureCapacity() {
	if l.size < len(l.data) {
		return
	}
	data := make([]T, len(l.data)*3/2+1)
	copy(data, l.data[:l.size])
	l.data = data
}
