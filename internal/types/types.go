// Package types holds the closed primitive type lattice: a fixed
// set of spellings recognized by the scanner and carried unchanged through
// parsing and lowering. There is no inference and no user-defined types.
package types

// Type is a primitive type lattice entry. Equality is structural: two
// Types are equal iff they are the same lattice entry.
type Type struct {
	kind    string
	spelled string
}

// String returns the source spelling, e.g. "i32" or "String".
func (t Type) String() string { return t.spelled }

// TypeKind returns the upper-case kind tag, e.g. "I32" or "STRING".
func (t Type) TypeKind() string { return t.kind }

// Equals reports structural equality against another Type.
func (t Type) Equals(other Type) bool { return t.kind == other.kind }

// IsVoid reports whether t is the Void type, valid only as a function
// return type.
func (t Type) IsVoid() bool { return t.kind == "VOID" }

// IsInteger reports whether t is one of the signed or unsigned integer
// lattice entries.
func (t Type) IsInteger() bool {
	switch t.kind {
	case "I8", "I16", "I32", "I64", "U8", "U16", "U32", "U64":
		return true
	}
	return false
}

// IsFloat reports whether t is one of the floating-point lattice entries.
func (t Type) IsFloat() bool { return t.kind == "F32" || t.kind == "F64" }

var (
	StringT = Type{kind: "STRING", spelled: "String"}
	I8      = Type{kind: "I8", spelled: "i8"}
	I16     = Type{kind: "I16", spelled: "i16"}
	I32     = Type{kind: "I32", spelled: "i32"}
	I64     = Type{kind: "I64", spelled: "i64"}
	U8      = Type{kind: "U8", spelled: "u8"}
	U16     = Type{kind: "U16", spelled: "u16"}
	U32     = Type{kind: "U32", spelled: "u32"}
	U64     = Type{kind: "U64", spelled: "u64"}
	F32     = Type{kind: "F32", spelled: "f32"}
	F64     = Type{kind: "F64", spelled: "f64"}
	Bool    = Type{kind: "BOOL", spelled: "bool"}
	Char    = Type{kind: "CHAR", spelled: "char"}
	Void    = Type{kind: "VOID", spelled: "void"}
)

// bySpelling indexes the lattice by its source spelling, shared by the
// scanner's type-match step and the parser's type-annotation parsing.
var bySpelling = map[string]Type{
	"String": StringT,
	"i8": I8, "i16": I16, "i32": I32, "i64": I64,
	"u8": U8, "u16": U16, "u32": U32, "u64": U64,
	"f32": F32, "f64": F64,
	"bool": Bool,
	"char": Char,
	"void": Void,
}

// Lookup resolves a primitive type spelling. ok is false for any spelling
// outside the closed lattice.
func Lookup(spelling string) (Type, bool) {
	t, ok := bySpelling[spelling]
	return t, ok
}

// IsBasicType reports whether t is one of the scalar lattice entries that
// may be used as a value type — everything except Void, which is only
// valid as a function return type.
func IsBasicType(t Type) bool { return t.kind != "VOID" }
