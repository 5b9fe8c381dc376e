package coll

const (
	// defaultMapCapacity is the bucket count of a fresh HashMapOf.
	defaultMapCapacity = 16
	// defaultListCapacity is the backing length of a fresh ArrayListOf.
	defaultListCapacity = 10
	// mapLoadFactor defines the size/capacity ratio a HashMapOf never
	// exceeds after a Put.
	mapLoadFactor = 0.75
)

// Config defines configurable container options.
//
// Typed options (WithKeyHasher, WithKeyEqual, WithValueEqual) are stored
// erased and checked against the container's type parameters when the
// container is created.
type Config struct {
	SizeHint   int
	LoadFactor float64
	keyHash    any
	keyEqual   any
	valEqual   any
}

func newConfig(options []func(*Config)) *Config {
	var cfg Config
	for _, opt := range options {
		opt(&cfg)
	}
	return &cfg
}

// WithPresize configures a new container with capacity enough
// to hold sizeHint entries without growing. Clear returns the
// container to this capacity. If sizeHint is zero or negative,
// the value is ignored.
func WithPresize(sizeHint int) func(*Config) {
	return func(c *Config) {
		c.SizeHint = sizeHint
	}
}

// WithLoadFactor sets the maximum size/capacity ratio of a HashMapOf.
// Values outside (0, +Inf) are ignored and the default 0.75 is used.
func WithLoadFactor(loadFactor float64) func(*Config) {
	return func(c *Config) {
		c.LoadFactor = loadFactor
	}
}

// WithKeyHasher configures a custom key hash function for HashMapOf.
// It takes precedence over IHashCode and the built-in hashers.
//
// Usage:
//
//	m := NewHashMapOf[int, string](WithKeyHasher(func(k int, _ uintptr) uintptr {
//		return uintptr(k) * 31
//	}))
func WithKeyHasher[K any](keyHash func(key K, seed uintptr) uintptr) func(*Config) {
	return func(c *Config) {
		if keyHash != nil {
			c.keyHash = HashFunc[K](keyHash)
		}
	}
}

// WithKeyEqual configures a custom key equality used by HashMapOf.
// Keys that are equal must hash to the same value.
func WithKeyEqual[K any](keyEqual func(a, b K) bool) func(*Config) {
	return func(c *Config) {
		if keyEqual != nil {
			c.keyEqual = EqualFunc[K](keyEqual)
		}
	}
}

// WithValueEqual configures the value equality used by ContainsValue,
// and by Contains, Remove and IndexOf on lists.
func WithValueEqual[V any](valEqual func(a, b V) bool) func(*Config) {
	return func(c *Config) {
		if valEqual != nil {
			c.valEqual = EqualFunc[V](valEqual)
		}
	}
}

func (c *Config) loadFactor() float64 {
	if c.LoadFactor > 0 {
		return c.LoadFactor
	}
	return mapLoadFactor
}

// mapCapacity returns the bucket count needed to hold SizeHint
// entries under the configured load factor.
func (c *Config) mapCapacity() int {
	if c.SizeHint <= 0 {
		return defaultMapCapacity
	}
	capacity := int(float64(c.SizeHint)/c.loadFactor()) + 1
	return max(capacity, defaultMapCapacity)
}

func (c *Config) listCapacity() int {
	return max(c.SizeHint, defaultListCapacity)
}

func configuredKeyHash[K any](c *Config) HashFunc[K] {
	if c.keyHash == nil {
		return nil
	}
	fn, ok := c.keyHash.(HashFunc[K])
	if !ok {
		panic("coll: WithKeyHasher function does not match the key type")
	}
	return fn
}

func configuredEqual[T any](fn any, name string) EqualFunc[T] {
	if fn == nil {
		return nil
	}
	eq, ok := fn.(EqualFunc[T])
	if !ok {
		panic("coll: " + name + " function does not match the container type")
	}
	return eq
}
