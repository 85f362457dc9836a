// Package hash provides content hashing, exposed through the top-level
// imprint package (Fingerprint, RecomputeSchemaHash); the envelope and
// ops packages do not use it. It never participates in the wire format itself
// — a record's bytes are the record; hashing is purely an ambient
// convenience for callers that want a cheap identity check.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/imprintio/imprint/internal/bufpool"
	"github.com/imprintio/imprint/record"
)

// Fingerprint returns a content hash over r's directory (ids and type
// codes) and raw payload bytes. Two records with identical wire bytes
// always fingerprint identically; the converse is not guaranteed
// (xxHash64 is not cryptographic).
func Fingerprint(r *record.Record) uint64 {
	buf := bufpool.Get()
	defer bufpool.Put(buf)

	var tmp [8]byte
	for _, e := range r.Directory() {
		binary.LittleEndian.PutUint32(tmp[0:4], e.ID)
		tmp[4] = byte(e.TypeCode)
		buf.B = append(buf.B, tmp[:5]...)
	}
	buf.B = append(buf.B, r.Payload()...)

	return xxhash.Sum64(buf.B)
}

// RecomputeSchemaHash derives a best-effort schema hash from a
// projected field-id set, for callers that want a stable value to
// store rather than record.UndefinedSchemaHash while they wait for
// the external schema registry to assign a real one. It is explicitly
// not a substitute for that registry: two different field sets could
// theoretically hash alike, and the registry's hash is the only one
// ever treated as authoritative by other imprint consumers.
func RecomputeSchemaHash(ids []uint32) uint32 {
	var tmp [4]byte
	buf := bufpool.Get()
	defer bufpool.Put(buf)

	for _, id := range ids {
		binary.LittleEndian.PutUint32(tmp[:], id)
		buf.B = append(buf.B, tmp[:]...)
	}

	return uint32(xxhash.Sum64(buf.B))
}
