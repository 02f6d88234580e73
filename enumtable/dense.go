package enumtable

import (
	"github.com/on-the-ground/enum_table_go/enumtable/internal/projection"
)

// denseTable is fully built before it is returned and never written again,
// so lookups take no lock.
type denseTable[K Key, V any] struct {
	id        string
	projector projection.Projector[K]
	cells     []cell[V]
}

func newDenseTable[K Key, V any](id string, d *Domain[K], rule Rule[K, V]) *denseTable[K, V] {
	cells := make([]cell[V], d.length)
	for i := range cells {
		v, ok := rule(d.projector.Inject(uint32(i)))
		cells[i] = cell[V]{value: v, ok: ok}
	}
	return &denseTable[K, V]{
		id:        id,
		projector: d.projector,
		cells:     cells,
	}
}

func (t *denseTable[K, V]) tableID() string {
	return t.id
}

func (t *denseTable[K, V]) Lookup(key K) (V, error) {
	idx := t.projector.Project(key)
	// A key with bits above 32 would alias a declared index.
	if t.projector.Fits32(key) && idx < uint32(len(t.cells)) {
		if v, ok := t.cells[idx].get(); ok {
			return v, nil
		}
	}
	var zero V
	return zero, keyNotFound(key)
}
