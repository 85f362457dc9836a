package ops

import "github.com/imprintio/imprint/record"

// MergeOption configures a Merge call, mirroring the builder package's
// functional-options convention.
type MergeOption func(*mergeConfig)

type mergeConfig struct {
	filterDuplicatePayloads bool
}

// WithFilterDuplicatePayloads controls the duplicate-id policy (spec
// §4.5.2). false (the default) is "zombie retention": a losing field's
// bytes are still appended to the output payload, unreferenced by any
// directory entry, so the payload retains every byte either input
// contributed. true drops the losing bytes entirely, producing a
// strictly smaller or equal payload.
func WithFilterDuplicatePayloads(filter bool) MergeOption {
	return func(c *mergeConfig) { c.filterDuplicatePayloads = filter }
}

// Merge returns a new record containing every field present in a or b.
// Where both contain the same id, a's value wins (spec §4.5.2). The
// output header's flags and schema_id are taken from a unchanged.
func Merge(a, b *record.Record, opts ...MergeOption) (*record.Record, error) {
	cfg := mergeConfig{filterDuplicatePayloads: false}
	for _, opt := range opts {
		opt(&cfg)
	}

	aDir, bDir := a.Directory(), b.Directory()

	outDir := make([]record.DirectoryEntry, 0, len(aDir)+len(bDir))
	// Sum of both input payloads is the exact upper bound: zombie
	// retention uses every byte of both, filtering can only use fewer.
	// trimToExactSize drops the unused capacity once the real size is
	// known (spec §5).
	outPayload := make([]byte, 0, len(a.Payload())+len(b.Payload()))

	i, j := 0, 0
	for i < len(aDir) || j < len(bDir) {
		switch {
		case j >= len(bDir) || (i < len(aDir) && aDir[i].ID < bDir[j].ID):
			raw, ok := a.GetRawBytes(aDir[i].ID)
			if !ok {
				i++
				continue
			}
			outDir = append(outDir, record.DirectoryEntry{
				ID:       aDir[i].ID,
				TypeCode: aDir[i].TypeCode,
				Offset:   uint32(len(outPayload)),
			})
			outPayload = append(outPayload, raw...)
			i++

		case i >= len(aDir) || bDir[j].ID < aDir[i].ID:
			raw, ok := b.GetRawBytes(bDir[j].ID)
			if !ok {
				j++
				continue
			}
			outDir = append(outDir, record.DirectoryEntry{
				ID:       bDir[j].ID,
				TypeCode: bDir[j].TypeCode,
				Offset:   uint32(len(outPayload)),
			})
			outPayload = append(outPayload, raw...)
			j++

		default: // aDir[i].ID == bDir[j].ID: a wins.
			rawA, ok := a.GetRawBytes(aDir[i].ID)
			if !ok {
				i++
				j++
				continue
			}
			outDir = append(outDir, record.DirectoryEntry{
				ID:       aDir[i].ID,
				TypeCode: aDir[i].TypeCode,
				Offset:   uint32(len(outPayload)),
			})
			outPayload = append(outPayload, rawA...)

			if !cfg.filterDuplicatePayloads {
				if rawB, ok := b.GetRawBytes(bDir[j].ID); ok {
					outPayload = append(outPayload, rawB...)
				}
			}
			i++
			j++
		}
	}

	return record.New(a.Header(), outDir, trimToExactSize(outPayload)), nil
}
