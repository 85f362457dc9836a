package hash_test

import (
	"testing"

	"github.com/imprintio/imprint/builder"
	"github.com/imprintio/imprint/internal/hash"
	"github.com/imprintio/imprint/record"
	"github.com/stretchr/testify/require"
)

func TestFingerprintDeterministic(t *testing.T) {
	build := func() *record.Record {
		b := builder.New()
		b.Put(1, record.Int32Value(7))
		b.Put(2, record.StringValue("abc"))
		rec, err := b.Build()
		require.NoError(t, err)
		return rec
	}

	r1, r2 := build(), build()
	require.Equal(t, hash.Fingerprint(r1), hash.Fingerprint(r2))
}

func TestFingerprintDiffersOnPayloadChange(t *testing.T) {
	b1 := builder.New()
	b1.Put(1, record.Int32Value(7))
	r1, err := b1.Build()
	require.NoError(t, err)

	b2 := builder.New()
	b2.Put(1, record.Int32Value(8))
	r2, err := b2.Build()
	require.NoError(t, err)

	require.NotEqual(t, hash.Fingerprint(r1), hash.Fingerprint(r2))
}

func TestRecomputeSchemaHashDeterministic(t *testing.T) {
	h1 := hash.RecomputeSchemaHash([]uint32{1, 2, 3})
	h2 := hash.RecomputeSchemaHash([]uint32{1, 2, 3})
	require.Equal(t, h1, h2)

	h3 := hash.RecomputeSchemaHash([]uint32{1, 2, 4})
	require.NotEqual(t, h1, h3)
}
