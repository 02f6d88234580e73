package enumtable

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"reflect"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/on-the-ground/enum_table_go/enumtable/internal/projection"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Key is the constraint satisfied by enumerated key types.
type Key = projection.Integer

// DenseCeiling bounds dense tables: a domain is dense-eligible only when its
// largest projected constant is strictly below it.
const DenseCeiling = 65535

// Domain describes the declared constants of an enumerated key type and the
// table representation they allow. It is immutable once analyzed.
type Domain[K Key] struct {
	values      []K
	defined     map[K]struct{}
	name        func(K) string
	projector   projection.Projector[K]
	max         uint32
	dense       bool
	length      int
	fingerprint uint64

	nameIndexOnce sync.Once
	byName        map[string]K
	byFoldedName  map[string]K
}

// Analyze scans the constants of K once and returns a descriptor that is not
// registered anywhere. Most callers want Declare instead.
//
// values must list the declared constants in declaration order; the order is
// kept for FlagCombinations. Each value is listed once: aliases of an
// already listed constant fail with ErrDuplicateConstant. A nil name falls
// back to fmt.Sprint, which uses the String method when K has one.
func Analyze[K Key](values []K, name func(K) string) (*Domain[K], error) {
	var errs error
	if len(values) == 0 {
		errs = multierr.Append(errs, ErrEmptyDomain)
	}
	projector, err := projection.NewProjector[K]()
	errs = multierr.Append(errs, err)
	errs = multierr.Append(errs, duplicates(values))
	if errs != nil {
		return nil, fmt.Errorf("analyze %v: %w", reflect.TypeFor[K](), errs)
	}

	if name == nil {
		name = func(k K) string { return fmt.Sprint(k) }
	}

	d := &Domain[K]{
		values:    slices.Clone(values),
		defined:   make(map[K]struct{}, len(values)),
		name:      name,
		projector: projector,
	}
	logger := currentLogger()
	for _, v := range d.values {
		d.defined[v] = struct{}{}
		if !projector.Fits32(v) {
			logger.Warn("constant does not fit in 32 bits; high bits are ignored by lookups",
				zap.Stringer("type", reflect.TypeFor[K]()),
				zap.Uint64("raw", projector.Raw(v)),
			)
		}
		if p := projector.Project(v); p > d.max {
			d.max = p
		}
	}
	if d.max < DenseCeiling {
		d.dense = true
		d.length = 1 << bits.Len32(d.max)
	}
	d.fingerprint = fingerprint(projector, d.values)
	return d, nil
}

// duplicates reports every constant declared more than once.
func duplicates[K Key](values []K) error {
	var errs error
	seen := make(map[K]int, len(values))
	for _, v := range values {
		seen[v]++
		if seen[v] == 2 {
			errs = multierr.Append(errs, fmt.Errorf("%w: %v", ErrDuplicateConstant, v))
		}
	}
	return errs
}

// fingerprint hashes the width and the full bit pattern of every constant in
// order, so a reordered or widened redeclaration does not match.
func fingerprint[K Key](p projection.Projector[K], values []K) uint64 {
	buf := make([]byte, 0, 1+8*len(values))
	buf = append(buf, byte(p.Width()))
	for _, v := range values {
		buf = binary.LittleEndian.AppendUint64(buf, p.Raw(v))
	}
	return xxhash.Sum64(buf)
}

var (
	declareMu sync.Mutex
	domains   sync.Map // reflect.Type -> *Domain[K]
)

// Declare analyzes the constants of K and caches the result for the lifetime
// of the process. Declaring K again with the same constants in the same order
// returns the cached descriptor and keeps its name function; declaring it with
// different constants fails with ErrConflictingDeclaration.
func Declare[K Key](values []K, name func(K) string) (*Domain[K], error) {
	typ := reflect.TypeFor[K]()

	declareMu.Lock()
	defer declareMu.Unlock()

	if raw, ok := domains.Load(typ); ok {
		d := raw.(*Domain[K])
		if fingerprint(d.projector, values) != d.fingerprint {
			return nil, fmt.Errorf("%w: %v", ErrConflictingDeclaration, typ)
		}
		return d, nil
	}

	d, err := Analyze(values, name)
	if err != nil {
		return nil, err
	}

	domains.Store(typ, d)
	currentLogger().Sugar().Debugf("declared enumerated type: type: %v, constants: %d, max: %d, dense: %v, length: %d",
		typ, len(d.values), d.max, d.dense, d.length)
	return d, nil
}

// MustDeclare is the panic-on-failure variant of Declare.
func MustDeclare[K Key](values []K, name func(K) string) *Domain[K] {
	d, err := Declare(values, name)
	if err != nil {
		panic(err)
	}
	return d
}

// DomainOf returns the descriptor registered for K by Declare.
func DomainOf[K Key]() (*Domain[K], error) {
	typ := reflect.TypeFor[K]()
	raw, ok := domains.Load(typ)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUndeclared, typ)
	}
	return raw.(*Domain[K]), nil
}

// Values returns the declared constants in declaration order.
func (d *Domain[K]) Values() []K {
	return slices.Clone(d.values)
}

func (d *Domain[K]) IsDefined(k K) bool {
	_, ok := d.defined[k]
	return ok
}

// Name returns the display name of k.
func (d *Domain[K]) Name(k K) string {
	return d.name(k)
}

// Max returns the largest projected constant.
func (d *Domain[K]) Max() uint32 {
	return d.max
}

// Dense reports whether tables over this domain use the dense array.
func (d *Domain[K]) Dense() bool {
	return d.dense
}

// Length returns the dense array length, or 0 for sparse domains.
func (d *Domain[K]) Length() int {
	return d.length
}

func (d *Domain[K]) Width() int {
	return d.projector.Width()
}

func (d *Domain[K]) Fingerprint() uint64 {
	return d.fingerprint
}
