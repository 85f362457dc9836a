// Package record implements imprint's data model and wire codec: the
// directory-indexed binary record format (spec §3, §4.3), the closed
// Value type system (spec §4.2), and random-access field lookup.
//
// Value and Record live in the same package because a Row value wraps
// a nested Record and a Record's payload is built from Values — in Go,
// a tagged union with a self-referential variant and the type it
// refers to are naturally one package, the way the reference
// implementation's types.rs and serde.rs share a module boundary.
package record

import (
	"sort"

	"github.com/imprintio/imprint/errs"
	"github.com/imprintio/imprint/varint"
)

// Record is an immutable (header, directory, payload) triple. It is
// created by a builder or by parsing bytes, and never mutated in
// place — Project and Merge always produce a new Record (spec §3
// "Lifecycle").
//
// A Record's payload slice is retained, not copied, by New and
// ReadRecord. Go's garbage collector keeps the backing array alive for
// as long as any sub-slice (including slices handed out by
// GetRawBytes, or a nested Row's payload) references it, which is the
// "shared-ownership byte container" the spec asks for — callers must
// simply not mutate a payload slice once it has been handed to a
// Record.
type Record struct {
	header    Header
	directory []DirectoryEntry
	payload   []byte
}

// New constructs a Record directly from its parts. Callers outside
// this module should generally prefer the builder package, which
// guarantees the six invariants of spec §3; New performs no validation
// and is intended for package-internal use (parsing, project, merge)
// where the caller has already established them.
func New(header Header, directory []DirectoryEntry, payload []byte) *Record {
	return &Record{header: header, directory: directory, payload: payload}
}

// Header returns the record's header.
func (r *Record) Header() Header { return r.header }

// Directory returns the record's directory entries in ascending id
// order. The returned slice must not be mutated.
func (r *Record) Directory() []DirectoryEntry { return r.directory }

// Payload returns the record's raw payload bytes. The returned slice
// must not be mutated.
func (r *Record) Payload() []byte { return r.payload }

// FieldIDs returns the ids present in the directory, in ascending
// order.
func (r *Record) FieldIDs() []uint32 {
	ids := make([]uint32, len(r.directory))
	for i, e := range r.directory {
		ids[i] = e.ID
	}
	return ids
}

// indexOf returns the directory index of id via binary search, or
// (-1, false) if absent.
func (r *Record) indexOf(id uint32) (int, bool) {
	i := sort.Search(len(r.directory), func(i int) bool { return r.directory[i].ID >= id })
	if i < len(r.directory) && r.directory[i].ID == id {
		return i, true
	}
	return -1, false
}

// rawRange returns the byte range in payload occupied by the field at
// directory index i: from its offset up to the next entry's offset,
// or payload end for the last entry.
func (r *Record) rawRange(i int) (start, end int) {
	start = int(r.directory[i].Offset)
	if i+1 < len(r.directory) {
		end = int(r.directory[i+1].Offset)
	} else {
		end = len(r.payload)
	}
	return start, end
}

// GetRawBytes returns the raw wire form of field id, including any
// length prefix, without decoding it. This is the primitive Project
// and Merge use to preserve bytes exactly. ok is false if id is not in
// the directory.
func (r *Record) GetRawBytes(id uint32) (raw []byte, ok bool) {
	i, found := r.indexOf(id)
	if !found {
		return nil, false
	}
	start, end := r.rawRange(i)
	return r.payload[start:end], true
}

// GetValue decodes and returns the value of field id. ok is false if
// id is not in the directory; err is non-nil if the bytes at id fail
// to decode as a well-formed value of their recorded type code.
func (r *Record) GetValue(id uint32) (v Value, ok bool, err error) {
	i, found := r.indexOf(id)
	if !found {
		return Value{}, false, nil
	}
	start, end := r.rawRange(i)
	entry := r.directory[i]

	value, _, err := readValue(entry.TypeCode, r.payload[start:end], 0)
	if err != nil {
		return Value{}, false, err
	}
	return value, true, nil
}

// MustGetValue decodes field id and returns errs.ErrFieldNotFound if
// absent, for call sites that prefer to treat absence as an error
// rather than a boolean (see SPEC_FULL.md §C.3).
func (r *Record) MustGetValue(id uint32) (Value, error) {
	v, ok, err := r.GetValue(id)
	if err != nil {
		return Value{}, err
	}
	if !ok {
		return Value{}, errs.ErrFieldNotFound
	}
	return v, nil
}

// Equal reports whether r and other have identical headers,
// directories and payload bytes — i.e. structural equality as used by
// the read(write(R)) == R round-trip property (spec §8.3).
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.header != other.header {
		return false
	}
	if len(r.directory) != len(other.directory) {
		return false
	}
	for i := range r.directory {
		if r.directory[i] != other.directory[i] {
			return false
		}
	}
	return bytesEqual(r.payload, other.payload)
}

// Write serializes the record to its bit-exact wire form: header,
// then (if the directory flag is set) the varint directory count and
// each 9-byte entry in directory order, then the payload verbatim
// (spec §4.3, §6).
func (r *Record) Write() ([]byte, error) {
	return writeRecord(nil, r)
}

func writeRecord(buf []byte, r *Record) ([]byte, error) {
	buf = append(buf, r.header.Bytes()...)

	if r.header.Flags.HasFieldDirectory() {
		buf = varint.Encode(uint32(len(r.directory)), buf)
		for _, e := range r.directory {
			buf = append(buf, e.Bytes()...)
		}
	}

	buf = append(buf, r.payload...)
	return buf, nil
}

// ReadRecord parses a record from data, returning the record and the
// number of bytes consumed. For a well-formed, non-nested record,
// consumed equals len(data) (spec §6).
func ReadRecord(data []byte) (*Record, int, error) {
	return readRecord(data, 0)
}

func readRecord(data []byte, depth int) (*Record, int, error) {
	if depth > MaxRowDepth {
		return nil, 0, errs.ErrMaxRowDepthExceeded
	}

	header, err := ParseHeader(data)
	if err != nil {
		return nil, 0, err
	}
	consumed := HeaderSize

	var directory []DirectoryEntry
	if header.Flags.HasFieldDirectory() {
		count, n, err := varint.Decode(data[consumed:])
		if err != nil {
			return nil, 0, err
		}
		consumed += n

		directory = make([]DirectoryEntry, 0, count)
		for i := uint32(0); i < count; i++ {
			entry, err := ParseDirectoryEntry(data[consumed:])
			if err != nil {
				return nil, 0, err
			}
			consumed += DirectoryEntrySize
			directory = append(directory, entry)
		}
	}

	// At the top level the input buffer is, by construction, exactly one
	// record's bytes (the caller parses one record per buffer; this is
	// what "the remainder of the input is the payload" in the wire
	// format description means), so the remainder is taken as the
	// payload verbatim. This is also what lets a merged record's zombie
	// bytes — payload bytes belonging to no directory entry — survive a
	// write/read round trip unchanged.
	//
	// A nested Row has no such luxury: it is embedded inside a larger
	// buffer that may hold more fields (or, inside an Array of Row,
	// further sibling elements) after it, so its own extent must be
	// self-determined. Directory entries give each field's starting
	// offset but not its on-wire length for variable-length types, so a
	// nested record's payload length is found by replaying each field
	// through readValue in directory order. This assumes the nested
	// record's fields are laid out contiguously with no gap — true for
	// any record produced by the builder or by Project, but not for a
	// zombie-retaining Merge result; embedding a zombie-laden merged
	// record as a Row value (directly, or as an Array element) is not
	// supported.
	var payloadLen int
	switch {
	case depth == 0:
		payloadLen = len(data) - consumed
	case header.Flags.HasFieldDirectory():
		for _, e := range directory {
			// depth, not depth+1: these fields live at the same nesting
			// level as this record itself. The +1 step happens inside
			// readValue: its TypeRow case when it recurses into a nested
			// record's own readRecord call, and its TypeArray case when it
			// decodes each element.
			_, n, err := readValue(e.TypeCode, data[consumed+payloadLen:], depth)
			if err != nil {
				return nil, 0, err
			}
			payloadLen += n
		}
	default:
		payloadLen = len(data) - consumed
	}

	if len(data) < consumed+payloadLen {
		return nil, 0, &errs.BufferUnderflowError{Needed: consumed + payloadLen, Available: len(data)}
	}

	payload := data[consumed : consumed+payloadLen]
	consumed += payloadLen

	return &Record{header: header, directory: directory, payload: payload}, consumed, nil
}
