// Package enumtable provides O(1) lookup tables keyed by enumerated integer types.
//
// A Table answers "value for key" without hashing. When the declared constants of
// a key type project into a small range, the table is a directly indexed array
// computed eagerly at construction. Otherwise it is a mutex-guarded map that
// computes each value the first time its key is requested.
//
// Go has no way to enumerate the constants of a type, so each key type is
// declared once with its constants in declaration order:
//
//	type Perm uint8
//
//	const (
//	    Read Perm = 1 << iota
//	    Write
//	    Exec
//	)
//
//	var _ = enumtable.MustDeclare([]Perm{Read, Write, Exec}, Perm.String)
//
// Tables are then built from a rule returning (value, true), or (_, false) for
// keys that have no value:
//
//	names, err := enumtable.Names[Perm]()
//	name, err := names.Lookup(Write)
//
// Features:
//   - Create / CreateIn: general construction from a Rule.
//   - CreateDefined: only declared constants yield values.
//   - Names, LowerCaseNames, Parse: display name tables in both directions.
//   - FlagCombinations: exact decomposition of bitmask values into declared flags.
//
// Only the low 32 bits of a key take part in lookups. Key types backed by 64-bit
// storage must not declare constants that need higher bits.
//
// WARNING: A Rule may run while the table holds its lock. It must not look up
// keys in the table being built from it.
package enumtable
