package record

import (
	"encoding/binary"

	"github.com/imprintio/imprint/errs"
)

// DirectoryEntry describes a single field in a record's directory: its
// id, the type code of the value stored at Offset, and that offset
// measured from the start of the payload. Every entry is exactly 9
// bytes on the wire (spec §3).
type DirectoryEntry struct {
	ID       uint32
	TypeCode TypeCode
	Offset   uint32
}

// Bytes serializes the entry as 9 little-endian bytes: id(4) +
// type_code(1) + offset(4).
func (e DirectoryEntry) Bytes() []byte {
	b := make([]byte, DirectoryEntrySize)
	binary.LittleEndian.PutUint32(b[0:4], e.ID)
	b[4] = byte(e.TypeCode)
	binary.LittleEndian.PutUint32(b[5:9], e.Offset)
	return b
}

// ParseDirectoryEntry parses a single 9-byte directory entry from the
// front of data.
func ParseDirectoryEntry(data []byte) (DirectoryEntry, error) {
	if len(data) < DirectoryEntrySize {
		return DirectoryEntry{}, &errs.BufferUnderflowError{Needed: DirectoryEntrySize, Available: len(data)}
	}

	typeCode, err := ParseTypeCode(data[4])
	if err != nil {
		return DirectoryEntry{}, err
	}

	return DirectoryEntry{
		ID:       binary.LittleEndian.Uint32(data[0:4]),
		TypeCode: typeCode,
		Offset:   binary.LittleEndian.Uint32(data[5:9]),
	}, nil
}
