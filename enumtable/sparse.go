package enumtable

import "sync"

// sparseTable memoizes rule results on first lookup.
//
// Hits and misses take the same lock. Lookups of different keys therefore
// serialize, but rule runs at most once per key and every caller sees the
// memoized result. Keys without a value are memoized too.
type sparseTable[K Key, V any] struct {
	id    string
	mu    sync.Mutex
	cache map[K]cell[V]
	rule  Rule[K, V]
}

func newSparseTable[K Key, V any](id string, rule Rule[K, V]) *sparseTable[K, V] {
	return &sparseTable[K, V]{
		id:    id,
		cache: make(map[K]cell[V]),
		rule:  rule,
	}
}

func (t *sparseTable[K, V]) tableID() string {
	return t.id
}

func (t *sparseTable[K, V]) Lookup(key K) (V, error) {
	if v, ok := t.load(key); ok {
		return v, nil
	}
	var zero V
	return zero, keyNotFound(key)
}

func (t *sparseTable[K, V]) load(key K) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c, ok := t.cache[key]
	if !ok {
		v, present := t.rule(key)
		c = cell[V]{value: v, ok: present}
		t.cache[key] = c
	}
	return c.get()
}
