// Package builder assembles canonical records from (id, value) pairs.
// It is the only place outside of project/merge that constructs a
// record.Record directly, and it is responsible for guaranteeing the
// six invariants every emitted record must satisfy (spec §3, §4.4).
package builder

import (
	"sort"

	"github.com/imprintio/imprint/internal/bufpool"
	"github.com/imprintio/imprint/record"
)

// Builder accumulates (id, Value) pairs keyed by id, last write wins,
// and emits a canonical record.Record on Build. It is single-owner: a
// Builder must not be used from more than one goroutine without
// external synchronization, the same rule the teacher's accumulator
// types follow.
type Builder struct {
	fieldspaceID uint32
	schemaHash   uint32
	values       map[uint32]record.Value
}

// Option configures a Builder at construction time, mirroring the
// teacher's functional-options convention (internal/options.Option).
type Option func(*Builder)

// WithSchemaID sets the fieldspace id and schema hash copied verbatim
// into the built record's header. Both default to zero if unset.
func WithSchemaID(fieldspaceID, schemaHash uint32) Option {
	return func(b *Builder) {
		b.fieldspaceID = fieldspaceID
		b.schemaHash = schemaHash
	}
}

// New creates an empty Builder.
func New(opts ...Option) *Builder {
	b := &Builder{values: make(map[uint32]record.Value)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Put stores value under id, replacing any previously stored value for
// the same id (last-writer-wins, spec §4.4).
func (b *Builder) Put(id uint32, value record.Value) *Builder {
	b.values[id] = value
	return b
}

// Len returns the number of distinct ids currently staged.
func (b *Builder) Len() int { return len(b.values) }

// Build emits a canonical record from the staged pairs: a directory
// sorted strictly ascending by id, and a payload holding each value's
// wire form laid out contiguously in that same order (spec §4.4). The
// directory flag is always set on builder output. The staged pairs are
// left in place, so Len is unchanged by Build.
func (b *Builder) Build() (*record.Record, error) {
	ids := make([]uint32, 0, len(b.values))
	for id := range b.values {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	directory := make([]record.DirectoryEntry, 0, len(ids))

	// The payload's final size isn't known until every value is encoded,
	// so it's built up in a pooled scratch buffer (spec §5: pre-size
	// output buffers where the size is known, reuse allocations where it
	// isn't) and copied into an exactly-sized slice before the scratch
	// buffer returns to the pool.
	scratch := bufpool.Get()
	defer bufpool.Put(scratch)

	for _, id := range ids {
		v := b.values[id]
		offset := len(scratch.B)

		var err error
		scratch.B, err = record.AppendValue(scratch.B, v)
		if err != nil {
			return nil, err
		}

		directory = append(directory, record.DirectoryEntry{
			ID:       id,
			TypeCode: v.Kind(),
			Offset:   uint32(offset),
		})
	}

	payload := append([]byte(nil), scratch.B...)

	header := record.Header{
		Flags:    record.NewFlags(),
		SchemaID: record.SchemaID{FieldspaceID: b.fieldspaceID, SchemaHash: b.schemaHash},
	}

	return record.New(header, directory, payload), nil
}
