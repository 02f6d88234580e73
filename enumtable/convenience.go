package enumtable

import (
	"fmt"
	"strings"
)

// CreateDefined builds a table in which only the declared constants of K have
// values. Every other key fails lookup, whatever g would return for it.
func CreateDefined[K Key, V any](g func(K) V, config ...Config) (Table[K, V], error) {
	d, err := DomainOf[K]()
	if err != nil {
		return nil, err
	}
	return CreateDefinedIn(d, g, config...), nil
}

// CreateDefinedIn is CreateDefined over an explicit domain.
func CreateDefinedIn[K Key, V any](d *Domain[K], g func(K) V, config ...Config) Table[K, V] {
	return CreateIn(d, definedOnly(d, g), config...)
}

func definedOnly[K Key, V any](d *Domain[K], g func(K) V) Rule[K, V] {
	return func(k K) (V, bool) {
		if !d.IsDefined(k) {
			var zero V
			return zero, false
		}
		return g(k), true
	}
}

// Names maps each declared constant to its display name.
func Names[K Key](config ...Config) (Table[K, string], error) {
	d, err := DomainOf[K]()
	if err != nil {
		return nil, err
	}
	return CreateDefinedIn(d, d.Name, config...), nil
}

// LowerCaseNames maps each declared constant to its lower-cased display name.
func LowerCaseNames[K Key](config ...Config) (Table[K, string], error) {
	d, err := DomainOf[K]()
	if err != nil {
		return nil, err
	}
	return CreateDefinedIn(d, func(k K) string {
		return strings.ToLower(d.Name(k))
	}, config...), nil
}

// FlagCombinations maps every key of a bitmask domain to the declared
// constants it is made of.
//
// The constants are the declared ones whose bits are a subset of the key's
// bits, in declaration order. A key has a value only when the union of those
// constants equals it exactly; keys with bits no constant covers fail lookup.
// Constants with no bits set are a subset of every key and appear in every
// decomposition.
//
// The returned slices are shared by all callers and must not be modified.
func FlagCombinations[K Key](config ...Config) (Table[K, []K], error) {
	d, err := DomainOf[K]()
	if err != nil {
		return nil, err
	}
	return CreateIn(d, decompose(d), config...), nil
}

func decompose[K Key](d *Domain[K]) Rule[K, []K] {
	return func(key K) ([]K, bool) {
		if !d.projector.Fits32(key) {
			return nil, false
		}
		target := d.projector.Project(key)
		parts := []K{}
		var union uint32
		for _, flag := range d.values {
			bits := d.projector.Project(flag)
			if bits&target != bits {
				continue
			}
			parts = append(parts, flag)
			union |= bits
		}
		if union != target {
			return nil, false
		}
		return parts, true
	}
}

var ErrUnknownName = fmt.Errorf("unknown constant name")

// Parse returns the declared constant whose display name is name. When
// several constants share a name, the first declared wins.
func Parse[K Key](name string) (K, error) {
	return parse[K](name, false)
}

// ParseFold is Parse with case-insensitive matching.
func ParseFold[K Key](name string) (K, error) {
	return parse[K](name, true)
}

func parse[K Key](name string, fold bool) (K, error) {
	var zero K
	d, err := DomainOf[K]()
	if err != nil {
		return zero, err
	}
	d.nameIndexOnce.Do(d.buildNameIndex)

	index := d.byName
	if fold {
		index = d.byFoldedName
		name = strings.ToLower(name)
	}
	k, ok := index[name]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return k, nil
}

func (d *Domain[K]) buildNameIndex() {
	d.byName = make(map[string]K, len(d.values))
	d.byFoldedName = make(map[string]K, len(d.values))
	for _, v := range d.values {
		n := d.name(v)
		if _, ok := d.byName[n]; !ok {
			d.byName[n] = v
		}
		folded := strings.ToLower(n)
		if _, ok := d.byFoldedName[folded]; !ok {
			d.byFoldedName[folded] = v
		}
	}
}
