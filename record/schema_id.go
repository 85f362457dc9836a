package record

import (
	"encoding/binary"

	"github.com/imprintio/imprint/errs"
)

// SchemaID identifies a specific field set within a fieldspace. Both
// halves are opaque to the core: the core never interprets them, only
// copies them verbatim between records (see spec §3, §2 GLOSSARY).
type SchemaID struct {
	FieldspaceID uint32
	SchemaHash   uint32
}

// SchemaIDSize is the fixed on-wire size of a SchemaID: two
// little-endian uint32s.
const SchemaIDSize = 8

// Bytes serializes the SchemaID as 8 little-endian bytes.
func (s SchemaID) Bytes() []byte {
	b := make([]byte, SchemaIDSize)
	binary.LittleEndian.PutUint32(b[0:4], s.FieldspaceID)
	binary.LittleEndian.PutUint32(b[4:8], s.SchemaHash)
	return b
}

// ParseSchemaID parses a SchemaID from the front of data.
func ParseSchemaID(data []byte) (SchemaID, error) {
	if len(data) < SchemaIDSize {
		return SchemaID{}, &errs.BufferUnderflowError{Needed: SchemaIDSize, Available: len(data)}
	}

	return SchemaID{
		FieldspaceID: binary.LittleEndian.Uint32(data[0:4]),
		SchemaHash:   binary.LittleEndian.Uint32(data[4:8]),
	}, nil
}
