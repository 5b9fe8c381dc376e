package coll

import (
	"hash/maphash"
	"reflect"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to its hash. seed is a per-container random value
// that hash functions may mix in or ignore.
type HashFunc[K any] func(key K, seed uintptr) uintptr

// EqualFunc reports whether a and b are the same key or value.
type EqualFunc[T any] func(a, b T) bool

// IHashCode is implemented by key types that supply their own hash.
// Keys that are equal must return the same hash code.
type IHashCode interface {
	HashCode(seed uintptr) uintptr
}

// IEqual is implemented by key or value types that define their own equality.
type IEqual[T any] interface {
	Equal(other T) bool
}

// IComparable is implemented by key types that define their own total order.
// Compare returns a negative number when the receiver sorts before other,
// zero when both are the same key and a positive number otherwise.
type IComparable[T any] interface {
	Compare(other T) int
}

// defaultHasher picks the key hash for HashMapOf when none is configured:
// IHashCode on the key (value or pointer receiver), the identity for integer
// keys, xxhash for strings and the runtime's hash for everything else.
func defaultHasher[K comparable]() HashFunc[K] {
	var zeroK K
	if _, ok := any(zeroK).(IHashCode); ok {
		return func(key K, seed uintptr) uintptr {
			return any(key).(IHashCode).HashCode(seed)
		}
	}
	if _, ok := any(&zeroK).(IHashCode); ok {
		return func(key K, seed uintptr) uintptr {
			return any(&key).(IHashCode).HashCode(seed)
		}
	}

	switch any(zeroK).(type) {
	case uint, int, uintptr:
		return func(key K, _ uintptr) uintptr {
			return *(*uintptr)(unsafe.Pointer(&key))
		}
	case uint64, int64:
		return func(key K, _ uintptr) uintptr {
			v := *(*uint64)(unsafe.Pointer(&key))
			return uintptr(v) ^ uintptr(v>>32)
		}
	case uint32, int32:
		return func(key K, _ uintptr) uintptr {
			return uintptr(*(*uint32)(unsafe.Pointer(&key)))
		}
	case uint16, int16:
		return func(key K, _ uintptr) uintptr {
			return uintptr(*(*uint16)(unsafe.Pointer(&key)))
		}
	case uint8, int8:
		return func(key K, _ uintptr) uintptr {
			return uintptr(*(*uint8)(unsafe.Pointer(&key)))
		}
	case string:
		return func(key K, seed uintptr) uintptr {
			return uintptr(xxhash.Sum64String(*(*string)(unsafe.Pointer(&key)))) ^ seed
		}
	default:
		s := maphash.MakeSeed()
		return func(key K, _ uintptr) uintptr {
			return uintptr(maphash.Comparable(s, key))
		}
	}
}

// defaultKeyEqual uses IEqual when the key implements it and == otherwise.
func defaultKeyEqual[K comparable]() EqualFunc[K] {
	if eq := interfaceEqual[K](); eq != nil {
		return eq
	}
	return func(a, b K) bool {
		return a == b
	}
}

// defaultValueEqual uses IEqual when the value implements it and compares
// through any otherwise. The latter panics if the dynamic type is not
// comparable, the same as the built-in comparison.
func defaultValueEqual[V any]() EqualFunc[V] {
	if eq := interfaceEqual[V](); eq != nil {
		return eq
	}
	return func(a, b V) bool {
		return any(a) == any(b)
	}
}

func interfaceEqual[T any]() EqualFunc[T] {
	var zero T
	isNil := nilChecker[T]()
	if _, ok := any(zero).(IEqual[T]); ok || (isNil != nil && implements[T, IEqual[T]]()) {
		return func(a, b T) bool {
			if isNil != nil && (isNil(a) || isNil(b)) {
				return isNil(a) && isNil(b)
			}
			return any(a).(IEqual[T]).Equal(b)
		}
	}
	if _, ok := any(&zero).(IEqual[T]); ok {
		return func(a, b T) bool {
			return any(&a).(IEqual[T]).Equal(b)
		}
	}
	return nil
}

// implements reports whether T's method set satisfies I. Unlike a type
// assertion on the zero value it also works when T is a nil-able type.
func implements[T, I any]() bool {
	return reflect.TypeFor[T]().Implements(reflect.TypeFor[I]())
}

// nilChecker returns a function reporting whether a T is nil,
// or nil if T has no nil value.
func nilChecker[T any]() func(T) bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Interface:
		return func(v T) bool {
			return any(v) == nil
		}
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map,
		reflect.Slice, reflect.Chan, reflect.Func:
		return func(v T) bool {
			return reflect.ValueOf(any(v)).IsNil()
		}
	default:
		return nil
	}
}
