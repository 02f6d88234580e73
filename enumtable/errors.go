package enumtable

import (
	"fmt"

	"github.com/on-the-ground/enum_table_go/enumtable/internal/projection"
)

var (
	ErrKeyNotFound            = fmt.Errorf("key not found")
	ErrUndeclared             = fmt.Errorf("enumerated type not declared")
	ErrConflictingDeclaration = fmt.Errorf("enumerated type already declared with different constants")
	ErrEmptyDomain            = fmt.Errorf("enumerated type declares no constants")
	ErrDuplicateConstant      = fmt.Errorf("constant declared more than once")

	// ErrUnsupportedWidth is returned at declaration time for key types whose
	// storage is not 1, 2, 4 or 8 bytes wide.
	ErrUnsupportedWidth = projection.ErrUnsupportedWidth
)

func keyNotFound[K Key](key K) error {
	return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}
