package record

import "github.com/imprintio/imprint/errs"

// TypeCode is one of the ten closed value kinds a field can hold.
// Decoding an unknown byte as a TypeCode always fails — there is no
// extensibility point here (spec §4.2).
type TypeCode uint8

const (
	TypeNull    TypeCode = 0x0
	TypeBool    TypeCode = 0x1
	TypeInt32   TypeCode = 0x2
	TypeInt64   TypeCode = 0x3
	TypeFloat32 TypeCode = 0x4
	TypeFloat64 TypeCode = 0x5
	TypeBytes   TypeCode = 0x6
	TypeString  TypeCode = 0x7
	TypeArray   TypeCode = 0x8
	TypeRow     TypeCode = 0x9
)

// String implements fmt.Stringer for diagnostics and test failure
// messages.
func (t TypeCode) String() string {
	switch t {
	case TypeNull:
		return "Null"
	case TypeBool:
		return "Bool"
	case TypeInt32:
		return "Int32"
	case TypeInt64:
		return "Int64"
	case TypeFloat32:
		return "Float32"
	case TypeFloat64:
		return "Float64"
	case TypeBytes:
		return "Bytes"
	case TypeString:
		return "String"
	case TypeArray:
		return "Array"
	case TypeRow:
		return "Row"
	default:
		return "Unknown"
	}
}

// IsPrimitive reports whether t is one of the scalar kinds (everything
// except Array and Row). This classification is internal only — the
// wire format itself does not distinguish primitive from complex.
func (t TypeCode) IsPrimitive() bool {
	return t != TypeArray && t != TypeRow
}

// IsComplex reports whether t is Array or Row.
func (t TypeCode) IsComplex() bool {
	return t == TypeArray || t == TypeRow
}

// IsMapKey reports whether t is one of the hashable primitives
// (Int32, Int64, Bytes, String) reserved for future map-valued uses.
// This subtype is not part of any wire form (spec §4.2).
func (t TypeCode) IsMapKey() bool {
	switch t {
	case TypeInt32, TypeInt64, TypeBytes, TypeString:
		return true
	default:
		return false
	}
}

// ParseTypeCode validates a raw byte as a TypeCode.
func ParseTypeCode(b byte) (TypeCode, error) {
	switch TypeCode(b) {
	case TypeNull, TypeBool, TypeInt32, TypeInt64, TypeFloat32, TypeFloat64,
		TypeBytes, TypeString, TypeArray, TypeRow:
		return TypeCode(b), nil
	default:
		return 0, &errs.InvalidFieldTypeError{Got: b}
	}
}
