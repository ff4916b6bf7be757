package ptnet

import "github.com/google/btree"

const btreeDegree = 8

type lesser[T any] interface {
	Less(T) bool
}

// refSet is an ordered set of references.
type refSet[T lesser[T]] struct {
	tree *btree.BTreeG[T]
}

func newRefSet[T lesser[T]]() *refSet[T] {
	return &refSet[T]{
		tree: btree.NewG[T](btreeDegree, func(a, b T) bool { return a.Less(b) }),
	}
}

// insert returns true if v was not already in the set.
func (s *refSet[T]) insert(v T) bool {
	_, replaced := s.tree.ReplaceOrInsert(v)
	return !replaced
}

// remove returns true if v was in the set.
func (s *refSet[T]) remove(v T) bool {
	_, removed := s.tree.Delete(v)
	return removed
}

func (s *refSet[T]) has(v T) bool { return s.tree.Has(v) }

func (s *refSet[T]) len() int { return s.tree.Len() }

func (s *refSet[T]) items() []T {
	out := make([]T, 0, s.tree.Len())
	s.tree.Ascend(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

type entry[K lesser[K], V any] struct {
	key K
	val V
}

// refMap is an ordered map keyed by reference.
type refMap[K lesser[K], V any] struct {
	tree *btree.BTreeG[entry[K, V]]
}

func newRefMap[K lesser[K], V any]() *refMap[K, V] {
	return &refMap[K, V]{
		tree: btree.NewG[entry[K, V]](btreeDegree, func(a, b entry[K, V]) bool {
			return a.key.Less(b.key)
		}),
	}
}

func (m *refMap[K, V]) set(k K, v V) {
	m.tree.ReplaceOrInsert(entry[K, V]{key: k, val: v})
}

func (m *refMap[K, V]) get(k K) (V, bool) {
	e, ok := m.tree.Get(entry[K, V]{key: k})
	return e.val, ok
}

func (m *refMap[K, V]) has(k K) bool {
	return m.tree.Has(entry[K, V]{key: k})
}

func (m *refMap[K, V]) len() int { return m.tree.Len() }

// each visits entries in key order until fn returns false.
func (m *refMap[K, V]) each(fn func(K, V) bool) {
	m.tree.Ascend(func(e entry[K, V]) bool {
		return fn(e.key, e.val)
	})
}

func (m *refMap[K, V]) keys() []K {
	out := make([]K, 0, m.tree.Len())
	m.each(func(k K, _ V) bool {
		out = append(out, k)
		return true
	})
	return out
}
