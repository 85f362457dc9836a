package record

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/imprintio/imprint/errs"
	"github.com/imprintio/imprint/varint"
)

// Value is the tagged union over imprint's ten wire type kinds (spec
// §3). A Go sum type is modeled as a struct carrying a Kind
// discriminant plus the one payload field that Kind selects, mirroring
// the reference implementation's closed Value enum — callers switch on
// Kind() the way the reference pattern-matches on the enum variant.
type Value struct {
	kind TypeCode

	b     bool
	i32   int32
	i64   int64
	f32   float32
	f64   float64
	bytes []byte
	str   string
	arr   []Value
	row   *Record
}

// Kind returns the TypeCode this value was constructed with.
func (v Value) Kind() TypeCode { return v.kind }

// NullValue returns the Null value.
func NullValue() Value { return Value{kind: TypeNull} }

// BoolValue wraps a bool as a Value.
func BoolValue(b bool) Value { return Value{kind: TypeBool, b: b} }

// Int32Value wraps an int32 as a Value.
func Int32Value(i int32) Value { return Value{kind: TypeInt32, i32: i} }

// Int64Value wraps an int64 as a Value.
func Int64Value(i int64) Value { return Value{kind: TypeInt64, i64: i} }

// Float32Value wraps a float32 as a Value.
func Float32Value(f float32) Value { return Value{kind: TypeFloat32, f32: f} }

// Float64Value wraps a float64 as a Value.
func Float64Value(f float64) Value { return Value{kind: TypeFloat64, f64: f} }

// BytesValue wraps a byte slice as a Value. The slice is retained, not
// copied; callers must not mutate it afterward.
func BytesValue(b []byte) Value { return Value{kind: TypeBytes, bytes: b} }

// StringValue wraps a string as a Value.
func StringValue(s string) Value { return Value{kind: TypeString, str: s} }

// ArrayValue wraps a non-empty, homogeneous slice of Values as an
// Array value. Emptiness and homogeneity are enforced at write time
// (spec §4.3 Array write), not at construction, so the zero value and
// intermediate builder states remain representable.
func ArrayValue(elems []Value) Value { return Value{kind: TypeArray, arr: elems} }

// RowValue wraps a nested Record as a Row value.
func RowValue(r *Record) Value { return Value{kind: TypeRow, row: r} }

// AsBool returns the payload of a Bool value; ok is false for any
// other Kind.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == TypeBool }

// AsInt32 returns the payload of an Int32 value; ok is false for any
// other Kind.
func (v Value) AsInt32() (int32, bool) { return v.i32, v.kind == TypeInt32 }

// AsInt64 returns the payload of an Int64 value; ok is false for any
// other Kind.
func (v Value) AsInt64() (int64, bool) { return v.i64, v.kind == TypeInt64 }

// AsFloat32 returns the payload of a Float32 value; ok is false for
// any other Kind.
func (v Value) AsFloat32() (float32, bool) { return v.f32, v.kind == TypeFloat32 }

// AsFloat64 returns the payload of a Float64 value; ok is false for
// any other Kind.
func (v Value) AsFloat64() (float64, bool) { return v.f64, v.kind == TypeFloat64 }

// AsBytes returns the payload of a Bytes value; ok is false for any
// other Kind.
func (v Value) AsBytes() ([]byte, bool) { return v.bytes, v.kind == TypeBytes }

// AsString returns the payload of a String value; ok is false for any
// other Kind.
func (v Value) AsString() (string, bool) { return v.str, v.kind == TypeString }

// AsArray returns the payload of an Array value; ok is false for any
// other Kind.
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == TypeArray }

// AsRow returns the payload of a Row value; ok is false for any other
// Kind.
func (v Value) AsRow() (*Record, bool) { return v.row, v.kind == TypeRow }

// Equal reports whether v and other carry the same Kind and payload,
// recursing into Array elements and nested Row records. Byte slices
// and arrays compare by content, not identity.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case TypeNull:
		return true
	case TypeBool:
		return v.b == other.b
	case TypeInt32:
		return v.i32 == other.i32
	case TypeInt64:
		return v.i64 == other.i64
	case TypeFloat32:
		return v.f32 == other.f32
	case TypeFloat64:
		return v.f64 == other.f64
	case TypeBytes:
		return bytesEqual(v.bytes, other.bytes)
	case TypeString:
		return v.str == other.str
	case TypeArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case TypeRow:
		if v.row == nil || other.row == nil {
			return v.row == other.row
		}
		return v.row.Equal(other.row)
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// AppendValue appends the wire form of v to buf and returns the
// extended slice. It is the primitive the builder uses to lay out a
// payload field by field, exported for packages outside record that
// need to produce well-formed value bytes (builder, tests).
func AppendValue(buf []byte, v Value) ([]byte, error) {
	return writeValue(buf, v)
}

// writeValue appends the wire form of v to buf and returns the
// extended slice.
func writeValue(buf []byte, v Value) ([]byte, error) {
	switch v.kind {
	case TypeNull:
		return buf, nil
	case TypeBool:
		if v.b {
			return append(buf, 1), nil
		}
		return append(buf, 0), nil
	case TypeInt32:
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], uint32(v.i32))
		return append(buf, tmp[:]...), nil
	case TypeInt64:
		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], uint64(v.i64))
		return append(buf, tmp[:]...), nil
	case TypeFloat32:
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], math.Float32bits(v.f32))
		return append(buf, tmp[:]...), nil
	case TypeFloat64:
		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v.f64))
		return append(buf, tmp[:]...), nil
	case TypeBytes:
		buf = varint.Encode(uint32(len(v.bytes)), buf)
		return append(buf, v.bytes...), nil
	case TypeString:
		buf = varint.Encode(uint32(len(v.str)), buf)
		return append(buf, v.str...), nil
	case TypeArray:
		if len(v.arr) == 0 {
			return nil, errs.NewSchemaError("empty array not allowed")
		}
		elemType := v.arr[0].kind
		buf = append(buf, byte(elemType))
		buf = varint.Encode(uint32(len(v.arr)), buf)
		for _, elem := range v.arr {
			if elem.kind != elemType {
				return nil, errs.NewSchemaError("array elements must have same type: expected %s, got %s", elemType, elem.kind)
			}
			var err error
			buf, err = writeValue(buf, elem)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil
	case TypeRow:
		return writeRecord(buf, v.row)
	default:
		return nil, &errs.InvalidFieldTypeError{Got: byte(v.kind)}
	}
}

// readValue decodes a value of the given type code from the front of
// data, returning the value and the number of bytes consumed. depth
// tracks recursion through Row (and arrays of Row) to enforce
// MaxRowDepth.
func readValue(typeCode TypeCode, data []byte, depth int) (Value, int, error) {
	switch typeCode {
	case TypeNull:
		return NullValue(), 0, nil
	case TypeBool:
		if len(data) < 1 {
			return Value{}, 0, &errs.BufferUnderflowError{Needed: 1, Available: len(data)}
		}
		switch data[0] {
		case 0:
			return BoolValue(false), 1, nil
		case 1:
			return BoolValue(true), 1, nil
		default:
			return Value{}, 0, errs.NewSchemaError("invalid boolean value: %d", data[0])
		}
	case TypeInt32:
		if len(data) < 4 {
			return Value{}, 0, &errs.BufferUnderflowError{Needed: 4, Available: len(data)}
		}
		return Int32Value(int32(binary.LittleEndian.Uint32(data[:4]))), 4, nil
	case TypeInt64:
		if len(data) < 8 {
			return Value{}, 0, &errs.BufferUnderflowError{Needed: 8, Available: len(data)}
		}
		return Int64Value(int64(binary.LittleEndian.Uint64(data[:8]))), 8, nil
	case TypeFloat32:
		if len(data) < 4 {
			return Value{}, 0, &errs.BufferUnderflowError{Needed: 4, Available: len(data)}
		}
		return Float32Value(math.Float32frombits(binary.LittleEndian.Uint32(data[:4]))), 4, nil
	case TypeFloat64:
		if len(data) < 8 {
			return Value{}, 0, &errs.BufferUnderflowError{Needed: 8, Available: len(data)}
		}
		return Float64Value(math.Float64frombits(binary.LittleEndian.Uint64(data[:8]))), 8, nil
	case TypeBytes:
		length, lenSize, err := varint.Decode(data)
		if err != nil {
			return Value{}, 0, err
		}
		end := lenSize + int(length)
		if len(data) < end {
			return Value{}, 0, &errs.BufferUnderflowError{Needed: end, Available: len(data)}
		}
		out := make([]byte, length)
		copy(out, data[lenSize:end])
		return BytesValue(out), end, nil
	case TypeString:
		length, lenSize, err := varint.Decode(data)
		if err != nil {
			return Value{}, 0, err
		}
		end := lenSize + int(length)
		if len(data) < end {
			return Value{}, 0, &errs.BufferUnderflowError{Needed: end, Available: len(data)}
		}
		raw := data[lenSize:end]
		if !utf8.Valid(raw) {
			return Value{}, 0, errs.ErrInvalidUtf8String
		}
		return StringValue(string(raw)), end, nil
	case TypeArray:
		if depth >= MaxRowDepth {
			return Value{}, 0, errs.ErrMaxRowDepthExceeded
		}
		if len(data) < 1 {
			return Value{}, 0, &errs.BufferUnderflowError{Needed: 1, Available: len(data)}
		}
		elemType, err := ParseTypeCode(data[0])
		if err != nil {
			return Value{}, 0, err
		}
		consumed := 1

		count, lenSize, err := varint.Decode(data[consumed:])
		if err != nil {
			return Value{}, 0, err
		}
		consumed += lenSize

		elems := make([]Value, 0, count)
		for i := uint32(0); i < count; i++ {
			elem, n, err := readValue(elemType, data[consumed:], depth+1)
			if err != nil {
				return Value{}, 0, err
			}
			elems = append(elems, elem)
			consumed += n
		}
		return ArrayValue(elems), consumed, nil
	case TypeRow:
		if depth >= MaxRowDepth {
			return Value{}, 0, errs.ErrMaxRowDepthExceeded
		}
		rec, n, err := readRecord(data, depth+1)
		if err != nil {
			return Value{}, 0, err
		}
		return RowValue(rec), n, nil
	default:
		return Value{}, 0, &errs.InvalidFieldTypeError{Got: byte(typeCode)}
	}
}
