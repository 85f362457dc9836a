// Package ops implements the two structural operations that make the
// record format worth having: Project (subset extraction) and Merge
// (union), both performed by splicing already-encoded payload bytes
// rather than decoding and re-encoding values (spec §4.5).
package ops

import (
	"sort"

	"github.com/imprintio/imprint/record"
)

// Project returns a new record containing exactly the subset of r's
// fields whose ids appear in ids, in ascending id order. ids may
// contain duplicates or ids absent from r; both are silently
// tolerated (spec §4.5.1).
//
// Field bytes are copied verbatim from r's payload — Project never
// decodes a value, so it preserves a field's exact wire form
// including, for the Row and Array kinds, whatever nested encoding
// quirks the original writer produced.
func Project(r *record.Record, ids []uint32) (*record.Record, error) {
	sortedIDs := append([]uint32(nil), ids...)
	sort.Slice(sortedIDs, func(i, j int) bool { return sortedIDs[i] < sortedIDs[j] })
	sortedIDs = dedupSorted(sortedIDs)

	dir := r.Directory()

	outDir := make([]record.DirectoryEntry, 0, min(len(dir), len(sortedIDs)))
	// A projection can never be larger than its input (spec §4.5.1), so
	// the input payload's length is a safe, exact upper bound to
	// pre-size against.
	outPayload := make([]byte, 0, len(r.Payload()))

	i, j := 0, 0
	for i < len(dir) && j < len(sortedIDs) {
		switch {
		case dir[i].ID < sortedIDs[j]:
			i++
		case dir[i].ID > sortedIDs[j]:
			j++
		default:
			raw, ok := r.GetRawBytes(dir[i].ID)
			if !ok {
				// Unreachable: dir[i].ID came from r's own directory.
				i++
				j++
				continue
			}
			outDir = append(outDir, record.DirectoryEntry{
				ID:       dir[i].ID,
				TypeCode: dir[i].TypeCode,
				Offset:   uint32(len(outPayload)),
			})
			outPayload = append(outPayload, raw...)
			i++
			j++
		}
	}

	header := r.Header()
	header.SchemaID.SchemaHash = record.UndefinedSchemaHash
	return record.New(header, outDir, trimToExactSize(outPayload)), nil
}

// trimToExactSize copies buf into a freshly allocated slice of exactly
// len(buf) capacity, so a record built from a conservatively pre-sized
// upper bound doesn't permanently retain unused backing capacity (spec
// §5: pre-size, then trim to exact size).
func trimToExactSize(buf []byte) []byte {
	if cap(buf) == len(buf) {
		return buf
	}
	out := make([]byte, len(buf))
	copy(out, buf)
	return out
}

func dedupSorted(ids []uint32) []uint32 {
	if len(ids) == 0 {
		return ids
	}
	out := ids[:1]
	for _, id := range ids[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
