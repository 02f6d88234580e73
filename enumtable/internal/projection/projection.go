// Package projection reinterprets the raw bits of an enumerated key as an
// unsigned working value and back.
//
// Only the low 32 bits of a key take part in indexing and comparison. Keys
// backed by 64-bit storage whose declared constants need bits 32..63 are
// outside the supported domain: their high bits are dropped.
package projection

import (
	"fmt"
	"unsafe"
)

// Integer is the set of underlying types an enumerated key may have.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~int | ~uint | ~uintptr
}

var ErrUnsupportedWidth = fmt.Errorf("unsupported key width")

// Width returns the storage width of K in bytes.
func Width[K Integer]() (int, error) {
	var zero K
	w := int(unsafe.Sizeof(zero))
	switch w {
	case 1, 2, 4, 8:
		return w, nil
	default:
		return 0, fmt.Errorf("%w: %d bytes", ErrUnsupportedWidth, w)
	}
}

// Projector converts keys of type K to and from their raw unsigned bits.
// The width is resolved once, so Project and Inject never fail.
type Projector[K Integer] struct {
	width int
}

func NewProjector[K Integer]() (Projector[K], error) {
	w, err := Width[K]()
	if err != nil {
		return Projector[K]{}, err
	}
	return Projector[K]{width: w}, nil
}

func (p Projector[K]) Width() int {
	return p.width
}

// Raw returns the full bit pattern of k, zero-extended to 64 bits.
// Conversions through the unsigned type of the same width keep the bits
// and never sign-extend.
func (p Projector[K]) Raw(k K) uint64 {
	switch p.width {
	case 1:
		return uint64(uint8(k))
	case 2:
		return uint64(uint16(k))
	case 4:
		return uint64(uint32(k))
	default:
		return uint64(k)
	}
}

// Project returns the low 32 bits of k's bit pattern.
func (p Projector[K]) Project(k K) uint32 {
	return uint32(p.Raw(k))
}

// Inject builds the key whose projection is i. Bits of i beyond the key's
// width are dropped, and for signed keys the top bit of the width becomes
// the sign: Inject(255) on an int8 key is -1.
func (p Projector[K]) Inject(i uint32) K {
	switch p.width {
	case 1:
		return K(uint8(i))
	case 2:
		return K(uint16(i))
	case 4:
		return K(i)
	default:
		return K(uint64(i))
	}
}

// Fits32 reports whether k survives projection without losing bits.
func (p Projector[K]) Fits32(k K) bool {
	return p.Raw(k)>>32 == 0
}
