package enumtable

import (
	"github.com/google/uuid"
)

// Table maps keys of an enumerated type to values.
//
// Lookup fails with ErrKeyNotFound when the rule the table was built from
// produced no value for the key. Tables are safe for concurrent use.
type Table[K Key, V any] interface {
	Lookup(key K) (V, error)
}

// Rule computes the value of a key. It returns false when the key has no value.
type Rule[K Key, V any] = func(K) (V, bool)

// cell holds a computed value; ok is false for keys without one.
type cell[V any] struct {
	value V
	ok    bool
}

func (c cell[V]) get() (V, bool) {
	return c.value, c.ok
}

// Create builds a table over the domain registered for K by Declare.
func Create[K Key, V any](rule Rule[K, V], config ...Config) (Table[K, V], error) {
	d, err := DomainOf[K]()
	if err != nil {
		return nil, err
	}
	return CreateIn(d, rule, config...), nil
}

// CreateIn builds a table over d. Dense-eligible domains evaluate rule for
// every index of the dense array before returning, including indices that
// are not declared constants. Sparse tables evaluate rule lazily, at most
// once per key.
//
// Usage:
//
//	table := CreateIn(domain, rule, NewConfig(StrategySparse, logger))
func CreateIn[K Key, V any](d *Domain[K], rule Rule[K, V], config ...Config) Table[K, V] {
	cfg := normalizeConfig(config)
	logger := cfg.logger()
	tableId := uuid.New().String()

	if d.dense && cfg.Strategy == StrategyAuto {
		t := newDenseTable(tableId, d, rule)
		logger.Sugar().Debugf("created dense table: tableId: %v, length: %d", tableId, d.length)
		return t
	}
	t := newSparseTable(tableId, rule)
	logger.Sugar().Debugf("created sparse table: tableId: %v, strategy: %v", tableId, cfg.Strategy)
	return t
}

// TableID returns the id a table was created with, as it appears in the
// creation log line. Tables not built by this package have no id.
func TableID[K Key, V any](t Table[K, V]) string {
	if it, ok := t.(interface{ tableID() string }); ok {
		return it.tableID()
	}
	return ""
}

// Get is the two-state variant of Lookup.
func Get[K Key, V any](t Table[K, V], key K) (V, bool) {
	v, err := t.Lookup(key)
	return v, err == nil
}

// MustLookup is the panic-on-failure variant of Lookup.
func MustLookup[K Key, V any](t Table[K, V], key K) V {
	v, err := t.Lookup(key)
	if err != nil {
		panic(err)
	}
	return v
}
