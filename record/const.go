package record

// Magic is the fixed first byte of every imprint record ('I' in ASCII).
const Magic byte = 0x49

// Version is the format version byte this library reads and writes.
// It is reserved for future use, not for live cross-version migration
// (see spec Non-goals): a mismatch is always a hard decode failure.
const Version byte = 0x01

const (
	// HeaderSize is the fixed on-wire size of a record header: magic(1) +
	// version(1) + flags(1) + schema_id(8).
	HeaderSize = 11

	// DirectoryEntrySize is the fixed on-wire size of a single directory
	// entry: id(4) + type_code(1) + offset(4).
	DirectoryEntrySize = 9

	// MaxRowDepth bounds recursive Row decoding so a pathological input
	// can't overflow the call stack (spec §9, "Nested records inside Row
	// values").
	MaxRowDepth = 64
)

// UndefinedSchemaHash is the sentinel schema_hash value Project writes
// into a projected record's header (spec §4.5.1, §9 open question 1).
// A projection changes the record's field set, so whatever schema_hash
// meant for the source record no longer applies; the core does not
// attempt to compute a new one since that is the schema registry's
// job, not the core's.
const UndefinedSchemaHash uint32 = 0xFFFFFFFF
