package coll

import (
	"cmp"
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
)

type mapFactory[K any, V any] struct {
	name string
	new  func() Map[K, V]
}

func orderedMaps[K cmp.Ordered, V any]() []mapFactory[K, V] {
	return []mapFactory[K, V]{
		{"HashMapOf", func() Map[K, V] { return NewHashMapOf[K, V]() }},
		{"TreeMapOf", func() Map[K, V] { return NewTreeMapOf[K, V]() }},
	}
}

func pointerKeyMaps() []mapFactory[*int, string] {
	return []mapFactory[*int, string]{
		{"HashMapOf", func() Map[*int, string] { return NewHashMapOf[*int, string]() }},
		{"TreeMapOf", func() Map[*int, string] {
			return NewTreeMapOfFunc[*int, string](func(a, b *int) int {
				return cmp.Compare(*a, *b)
			})
		}},
	}
}

func TestMaps_NewMapIsEmpty(t *testing.T) {
	for _, f := range orderedMaps[int, string]() {
		t.Run(f.name, func(t *testing.T) {
			m := f.new()
			if !m.IsEmpty() || m.Size() != 0 {
				t.Fatalf("new map is not empty: size=%d", m.Size())
			}
			if ok, err := m.ContainsKey(1); ok || err != nil {
				t.Fatalf("ContainsKey on empty map: %v %v", ok, err)
			}
			if m.ContainsValue("x") {
				t.Fatal("ContainsValue on empty map")
			}
			if keys := m.Keys(); len(keys) != 0 {
				t.Fatalf("keys of empty map: %v", keys)
			}
		})
	}
}

func TestMaps_PutGet(t *testing.T) {
	for _, f := range orderedMaps[int, string]() {
		t.Run(f.name, func(t *testing.T) {
			m := f.new()
			if prev, loaded, err := m.Put(3, "abc"); err != nil || loaded || prev != "" {
				t.Fatalf("first put: %q %v %v", prev, loaded, err)
			}
			if ok, _ := m.ContainsKey(3); !ok {
				t.Fatal("key 3 not found")
			}
			v, ok, err := m.Get(3)
			if err != nil || !ok || v != "abc" {
				t.Fatalf("get: %q %v %v", v, ok, err)
			}
			if m.IsEmpty() || m.Size() != 1 {
				t.Fatalf("size: %d", m.Size())
			}
		})
	}
}

func TestMaps_PutExistingKey(t *testing.T) {
	for _, f := range orderedMaps[int, string]() {
		t.Run(f.name, func(t *testing.T) {
			m := f.new()
			_, _, _ = m.Put(1, "aaaa")
			prev, loaded, err := m.Put(1, "bbbb")
			if err != nil || !loaded || prev != "aaaa" {
				t.Fatalf("second put: %q %v %v", prev, loaded, err)
			}
			if m.Size() != 1 {
				t.Fatalf("size changed on replace: %d", m.Size())
			}
			if m.ContainsValue("aaaa") {
				t.Fatal("old value still present")
			}
			if !m.ContainsValue("bbbb") {
				t.Fatal("new value missing")
			}
			if v, _, _ := m.Get(1); v != "bbbb" {
				t.Fatalf("get after replace: %q", v)
			}
		})
	}
}

func TestMaps_NilValue(t *testing.T) {
	for _, f := range orderedMaps[int, *string]() {
		t.Run(f.name, func(t *testing.T) {
			m := f.new()
			if _, _, err := m.Put(1, nil); err != nil {
				t.Fatal(err)
			}
			if ok, _ := m.ContainsKey(1); !ok {
				t.Fatal("key with nil value not found")
			}
			v, ok, err := m.Get(1)
			if err != nil || !ok || v != nil {
				t.Fatalf("get nil value: %v %v %v", v, ok, err)
			}
			if !m.ContainsValue(nil) {
				t.Fatal("ContainsValue(nil) = false")
			}
			s := "x"
			if m.ContainsValue(&s) {
				t.Fatal("ContainsValue matched a non-nil value against nil")
			}
		})
	}
}

func TestMaps_NilKey(t *testing.T) {
	for _, f := range pointerKeyMaps() {
		t.Run(f.name, func(t *testing.T) {
			m := f.new()
			one := 1
			_, _, _ = m.Put(&one, "one")

			_, _, err := m.Put(nil, "abc")
			if !errors.Is(err, ErrNullKey) {
				t.Fatalf("put nil key: %v", err)
			}
			var nke *NullKeyError
			if !errors.As(err, &nke) || nke.Op != "put" {
				t.Fatalf("put nil key error: %#v", err)
			}
			if _, err := m.ContainsKey(nil); !errors.Is(err, ErrNullKey) {
				t.Fatalf("containsKey nil key: %v", err)
			}
			if _, _, err := m.Get(nil); !errors.Is(err, ErrNullKey) {
				t.Fatalf("get nil key: %v", err)
			}
			if _, _, err := m.Remove(nil); !errors.Is(err, ErrNullKey) {
				t.Fatalf("remove nil key: %v", err)
			}
			if m.Size() != 1 {
				t.Fatalf("failed operations changed the size: %d", m.Size())
			}
		})
	}
}

func TestMaps_InterfaceNilKey(t *testing.T) {
	m := NewHashMapOf[any, int]()
	if _, _, err := m.Put(nil, 1); !errors.Is(err, ErrNullKey) {
		t.Fatalf("put nil interface key: %v", err)
	}
	if _, _, err := m.Put("a", 1); err != nil {
		t.Fatal(err)
	}
	if v, ok, _ := m.Get("a"); !ok || v != 1 {
		t.Fatalf("get: %v %v", v, ok)
	}
}

func TestMaps_AbsentKey(t *testing.T) {
	for _, f := range orderedMaps[string, int]() {
		t.Run(f.name, func(t *testing.T) {
			m := f.new()
			_, _, _ = m.Put("foo", 1)
			v, ok, err := m.Get("bar")
			if err != nil || ok || v != 0 {
				t.Fatalf("get absent: %v %v %v", v, ok, err)
			}
			prev, loaded, err := m.Remove("bar")
			if err != nil || loaded || prev != 0 {
				t.Fatalf("remove absent: %v %v %v", prev, loaded, err)
			}
			if m.Size() != 1 {
				t.Fatalf("size: %d", m.Size())
			}
		})
	}
}

func TestMaps_PutTenKeys(t *testing.T) {
	for _, f := range orderedMaps[int, string]() {
		t.Run(f.name, func(t *testing.T) {
			m := f.new()
			for i := 0; i < 10; i++ {
				_, _, _ = m.Put(i, "v")
			}
			for i := 0; i < 10; i++ {
				if ok, _ := m.ContainsKey(i); !ok {
					t.Fatalf("key %d not found", i)
				}
			}
		})
	}
}

func TestMaps_SizeAccounting(t *testing.T) {
	const n = 500
	for _, f := range orderedMaps[int, int]() {
		t.Run(f.name, func(t *testing.T) {
			m := f.new()
			for i := 0; i < n; i++ {
				_, _, _ = m.Put(i, i*10)
				if m.Size() != i+1 {
					t.Fatalf("size after %d puts: %d", i+1, m.Size())
				}
			}
			r := rand.New(rand.NewPCG(1, 2))
			for i, k := range r.Perm(n) {
				prev, loaded, err := m.Remove(k)
				if err != nil || !loaded || prev != k*10 {
					t.Fatalf("remove %d: %v %v %v", k, prev, loaded, err)
				}
				if m.Size() != n-i-1 {
					t.Fatalf("size after removing %d keys: %d", i+1, m.Size())
				}
				if ok, _ := m.ContainsKey(k); ok {
					t.Fatalf("key %d still present", k)
				}
			}
			if !m.IsEmpty() {
				t.Fatal("map not empty after removing every key")
			}
		})
	}
}

func TestMaps_RoundTripRandom(t *testing.T) {
	for _, f := range orderedMaps[int, int]() {
		t.Run(f.name, func(t *testing.T) {
			m := f.new()
			ref := make(map[int]int)
			r := rand.New(rand.NewPCG(7, 11))
			for i := 0; i < 5000; i++ {
				k := r.IntN(300)
				switch r.IntN(3) {
				case 0, 1:
					prev, loaded, _ := m.Put(k, i)
					want, had := ref[k]
					if loaded != had || prev != want {
						t.Fatalf("put %d: got %v %v, want %v %v", k, prev, loaded, want, had)
					}
					ref[k] = i
				case 2:
					prev, loaded, _ := m.Remove(k)
					want, had := ref[k]
					if loaded != had || prev != want {
						t.Fatalf("remove %d: got %v %v, want %v %v", k, prev, loaded, want, had)
					}
					delete(ref, k)
				}
				if m.Size() != len(ref) {
					t.Fatalf("size %d, want %d", m.Size(), len(ref))
				}
			}
			for k, want := range ref {
				if v, ok, _ := m.Get(k); !ok || v != want {
					t.Fatalf("get %d: %v %v, want %v", k, v, ok, want)
				}
			}
			if len(m.Keys()) != len(ref) {
				t.Fatalf("keys: %d, want %d", len(m.Keys()), len(ref))
			}
		})
	}
}

func TestMaps_Clear(t *testing.T) {
	for _, f := range orderedMaps[int, string]() {
		t.Run(f.name, func(t *testing.T) {
			m := f.new()
			for i := 0; i < 100; i++ {
				_, _, _ = m.Put(i, "v")
			}
			m.Clear()
			if !m.IsEmpty() {
				t.Fatalf("size after clear: %d", m.Size())
			}
			if ok, _ := m.ContainsKey(5); ok {
				t.Fatal("key survived clear")
			}
			_, _, _ = m.Put(5, "w")
			if v, ok, _ := m.Get(5); !ok || v != "w" {
				t.Fatalf("get after clear: %q %v", v, ok)
			}
		})
	}
}
