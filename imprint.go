// Package imprint provides a binary record format for structured data
// whose fields are addressed by numeric id rather than by position.
//
// Records flow through many stages — ingest, enrichment, projection,
// storage — and each stage typically touches only a subset of fields.
// Imprint is built around two properties that make that cheap:
//
//   - random access to any field by id without decoding the others
//   - structural operations (Project, Merge) that splice already-encoded
//     bytes instead of decoding and re-encoding every field
//
// # Basic usage
//
// Building a record:
//
//	b := builder.New(builder.WithSchemaID(1, 0))
//	b.Put(1, record.Int32Value(42))
//	b.Put(2, record.StringValue("hello"))
//	rec, err := b.Build()
//
// Serializing and parsing:
//
//	bytes, err := rec.Write()
//	got, consumed, err := record.ReadRecord(bytes)
//
// Field access by id, without decoding the rest of the record:
//
//	v, ok, err := rec.GetValue(2)
//
// Structural operations over already-encoded bytes:
//
//	subset, err := ops.Project(rec, []uint32{1})
//	combined, err := ops.Merge(a, b, ops.WithFilterDuplicatePayloads(true))
//
// # Package structure
//
// This file provides thin top-level wrappers around the record,
// builder, ops and envelope packages for the most common paths. For
// fine-grained control — functional options on the builder, merge
// duplicate-handling policy, direct codec selection — use those
// packages directly.
package imprint

import (
	"io"

	"github.com/imprintio/imprint/builder"
	"github.com/imprintio/imprint/envelope"
	"github.com/imprintio/imprint/format"
	"github.com/imprintio/imprint/internal/hash"
	"github.com/imprintio/imprint/ops"
	"github.com/imprintio/imprint/record"
)

// Re-exported so callers of the top-level package don't need a second
// import for the type system and compression enum.
type (
	Value           = record.Value
	Record          = record.Record
	TypeCode        = record.TypeCode
	CompressionType = format.CompressionType
)

const (
	CompressionNone = format.CompressionNone
	CompressionZstd = format.CompressionZstd
	CompressionS2   = format.CompressionS2
	CompressionLZ4  = format.CompressionLZ4
)

// NewBuilder creates an empty Builder for assembling a record field by
// field. See the builder package for its WithSchemaID option.
func NewBuilder(opts ...builder.Option) *builder.Builder {
	return builder.New(opts...)
}

// WriteRecord serializes rec to its bit-exact wire form.
func WriteRecord(rec *record.Record) ([]byte, error) {
	return rec.Write()
}

// ReadRecord parses a record from data, returning the record and the
// number of bytes consumed.
func ReadRecord(data []byte) (*record.Record, int, error) {
	return record.ReadRecord(data)
}

// Project returns a new record containing exactly the subset of rec's
// fields whose ids appear in ids, preserving their exact wire bytes.
func Project(rec *record.Record, ids []uint32) (*record.Record, error) {
	return ops.Project(rec, ids)
}

// Merge returns a new record containing every field present in a or
// b, with a's value winning on overlapping ids. The default duplicate
// policy retains the losing bytes unreferenced in the payload
// ("zombie retention"); pass ops.WithFilterDuplicatePayloads(true) to
// drop them instead.
func Merge(a, b *record.Record, opts ...ops.MergeOption) (*record.Record, error) {
	return ops.Merge(a, b, opts...)
}

// Fingerprint returns a content hash over rec's directory and payload
// bytes, suitable for cheap equality pre-checks or cache keys. It is
// not part of the wire format and carries no cross-version stability
// guarantee beyond this library's own lifetime.
func Fingerprint(rec *record.Record) uint64 {
	return hash.Fingerprint(rec)
}

// RecomputeSchemaHash derives a best-effort schema hash from a
// projected field-id set. It exists for callers that want a stable
// stand-in for record.UndefinedSchemaHash; it is not a substitute for
// an external schema registry assigning the authoritative hash.
func RecomputeSchemaHash(ids []uint32) uint32 {
	return hash.RecomputeSchemaHash(ids)
}

// WriteEnvelope serializes rec, compresses it with codec, and writes
// the framed result to w. Use format.CompressionNone to skip
// compression while still getting the envelope's self-describing
// framing.
func WriteEnvelope(w io.Writer, rec *record.Record, codec format.CompressionType) error {
	return envelope.Write(w, rec, codec)
}

// ReadEnvelope reads one framed, possibly-compressed record from r.
func ReadEnvelope(r io.Reader) (*record.Record, error) {
	return envelope.Read(r)
}
