package record

// Flags is the packed one-byte flags field in a record header. Only
// bit 0 is defined by the format; the remaining bits are reserved and
// must round-trip as written (the spec's §9.3 open question settles
// that there is no "payload_size in header" bit in this version).
type Flags uint8

// FieldDirectory is the bit indicating the record carries a field
// directory. When clear, the payload is an opaque blob with no
// directory section.
const FieldDirectory Flags = 0x01

// HasFieldDirectory reports whether the directory bit is set.
func (f Flags) HasFieldDirectory() bool {
	return f&FieldDirectory != 0
}

// NewFlags returns the default Flags set by the builder: directory
// present.
func NewFlags() Flags {
	return FieldDirectory
}
