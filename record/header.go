package record

import "github.com/imprintio/imprint/errs"

// Header is the fixed 11-byte prefix of every record: magic(1) +
// version(1) + flags(1) + schema_id(8). There is no "payload_size in
// header" bit in this version (spec §9 open question 3 settles this).
type Header struct {
	Flags    Flags
	SchemaID SchemaID
}

// Bytes serializes the header as 11 bytes.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	b[0] = Magic
	b[1] = Version
	b[2] = byte(h.Flags)
	copy(b[3:11], h.SchemaID.Bytes())
	return b
}

// ParseHeader parses an 11-byte header from the front of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, &errs.BufferUnderflowError{Needed: HeaderSize, Available: len(data)}
	}

	if data[0] != Magic {
		return Header{}, &errs.InvalidMagicError{Got: data[0]}
	}
	if data[1] != Version {
		return Header{}, &errs.UnsupportedVersionError{Got: data[1]}
	}

	schemaID, err := ParseSchemaID(data[3:11])
	if err != nil {
		return Header{}, err
	}

	return Header{
		Flags:    Flags(data[2]),
		SchemaID: schemaID,
	}, nil
}
