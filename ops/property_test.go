package ops_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/imprintio/imprint/builder"
	"github.com/imprintio/imprint/ops"
	"github.com/imprintio/imprint/record"
	"github.com/stretchr/testify/require"
)

// randomValue returns one of the scalar value kinds, driven by rng, so
// random records exercise more than one type code per field.
func randomValue(rng *rand.Rand) record.Value {
	switch rng.Intn(6) {
	case 0:
		return record.Int32Value(rng.Int31())
	case 1:
		return record.Int64Value(rng.Int63())
	case 2:
		return record.BoolValue(rng.Intn(2) == 0)
	case 3:
		return record.Float64Value(rng.Float64())
	case 4:
		buf := make([]byte, rng.Intn(8))
		rng.Read(buf)
		return record.BytesValue(buf)
	default:
		const letters = "abcdefghijklmnop"
		n := rng.Intn(10)
		b := make([]byte, n)
		for i := range b {
			b[i] = letters[rng.Intn(len(letters))]
		}
		return record.StringValue(string(b))
	}
}

// randomRecord builds a record with n fields at random, non-colliding
// ids drawn from [idBase, idBase+idSpan).
func randomRecord(t *testing.T, rng *rand.Rand, n, idBase, idSpan int) *record.Record {
	t.Helper()
	b := builder.New()
	seen := make(map[uint32]bool)
	for len(seen) < n {
		id := uint32(idBase + rng.Intn(idSpan))
		if seen[id] {
			continue
		}
		seen[id] = true
		b.Put(id, randomValue(rng))
	}
	rec, err := b.Build()
	require.NoError(t, err)
	return rec
}

func sortedDedupedUint32(ids []uint32) []uint32 {
	out := append([]uint32(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	deduped := out[:0]
	for i, id := range out {
		if i == 0 || id != deduped[len(deduped)-1] {
			deduped = append(deduped, id)
		}
	}
	return deduped
}

func intersectSorted(a, b []uint32) []uint32 {
	var out []uint32
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// TestPropertyProjectIDsMatchIntersection checks spec.md §8 property 4:
// project(R, ids).ids == sort(dedup(ids)) ∩ R.ids, across random
// records and random (possibly overlapping, possibly absent) id lists.
func TestPropertyProjectIDsMatchIntersection(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		rec := randomRecord(t, rng, 1+rng.Intn(12), 0, 40)

		var ids []uint32
		for i, n := 0, rng.Intn(15); i < n; i++ {
			ids = append(ids, uint32(rng.Intn(45)))
		}

		got, err := ops.Project(rec, ids)
		require.NoError(t, err)

		want := intersectSorted(sortedDedupedUint32(ids), rec.FieldIDs())
		require.Equal(t, want, got.FieldIDs())
	}
}

// TestPropertyProjectSingleFieldIsByteExact checks spec.md §8 property
// 5: projecting a single present field preserves its raw bytes
// exactly.
func TestPropertyProjectSingleFieldIsByteExact(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for trial := 0; trial < 50; trial++ {
		rec := randomRecord(t, rng, 1+rng.Intn(12), 0, 40)
		ids := rec.FieldIDs()
		id := ids[rng.Intn(len(ids))]

		got, err := ops.Project(rec, []uint32{id})
		require.NoError(t, err)

		want, ok := rec.GetRawBytes(id)
		require.True(t, ok)
		gotRaw, ok := got.GetRawBytes(id)
		require.True(t, ok)
		require.Equal(t, want, gotRaw)
	}
}

// TestPropertyProjectAllIDsPreservesValues checks spec.md §8 property
// 6: projecting every id a record has yields the same decoded value
// for each one.
func TestPropertyProjectAllIDsPreservesValues(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for trial := 0; trial < 50; trial++ {
		rec := randomRecord(t, rng, 1+rng.Intn(12), 0, 40)

		got, err := ops.Project(rec, rec.FieldIDs())
		require.NoError(t, err)

		for _, id := range rec.FieldIDs() {
			want, ok, err := rec.GetValue(id)
			require.NoError(t, err)
			require.True(t, ok)

			gotV, ok, err := got.GetValue(id)
			require.NoError(t, err)
			require.True(t, ok)
			require.True(t, want.Equal(gotV))
		}
	}
}

// TestPropertyMergeDisjointUnionsDirectories checks spec.md §8
// property 7: merging two records with disjoint id ranges produces a
// directory whose size is the sum of both, each field matching its
// owning record's value.
func TestPropertyMergeDisjointUnionsDirectories(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	for trial := 0; trial < 50; trial++ {
		a := randomRecord(t, rng, 1+rng.Intn(8), 0, 20)
		b := randomRecord(t, rng, 1+rng.Intn(8), 20, 20)

		merged, err := ops.Merge(a, b)
		require.NoError(t, err)

		require.Len(t, merged.Directory(), len(a.Directory())+len(b.Directory()))

		for _, id := range a.FieldIDs() {
			want, _, err := a.GetValue(id)
			require.NoError(t, err)
			got, ok, err := merged.GetValue(id)
			require.NoError(t, err)
			require.True(t, ok)
			require.True(t, want.Equal(got))
		}
		for _, id := range b.FieldIDs() {
			want, _, err := b.GetValue(id)
			require.NoError(t, err)
			got, ok, err := merged.GetValue(id)
			require.NoError(t, err)
			require.True(t, ok)
			require.True(t, want.Equal(got))
		}
	}
}

// TestPropertyMergeLeftWins checks spec.md §8 property 8: for every id
// present in A, merge(A, B).get_value(id) == A.get_value(id),
// regardless of whether B also defines that id.
func TestPropertyMergeLeftWins(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for trial := 0; trial < 50; trial++ {
		a := randomRecord(t, rng, 1+rng.Intn(10), 0, 25)
		b := randomRecord(t, rng, 1+rng.Intn(10), 0, 25) // overlapping id space

		merged, err := ops.Merge(a, b)
		require.NoError(t, err)

		for _, id := range a.FieldIDs() {
			want, _, err := a.GetValue(id)
			require.NoError(t, err)
			got, ok, err := merged.GetValue(id)
			require.NoError(t, err)
			require.True(t, ok)
			require.True(t, want.Equal(got))
		}
	}
}

// TestPropertyMergeFilteredNeverLargerThanZombieRetained checks
// spec.md §8 property 9: filtering duplicate payloads never produces a
// larger payload than zombie retention does.
func TestPropertyMergeFilteredNeverLargerThanZombieRetained(t *testing.T) {
	rng := rand.New(rand.NewSource(6))

	for trial := 0; trial < 50; trial++ {
		a := randomRecord(t, rng, 1+rng.Intn(10), 0, 25)
		b := randomRecord(t, rng, 1+rng.Intn(10), 0, 25)

		zombie, err := ops.Merge(a, b)
		require.NoError(t, err)
		filtered, err := ops.Merge(a, b, ops.WithFilterDuplicatePayloads(true))
		require.NoError(t, err)

		require.LessOrEqual(t, len(filtered.Payload()), len(zombie.Payload()))
	}
}
