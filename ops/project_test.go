package ops_test

import (
	"testing"

	"github.com/imprintio/imprint/builder"
	"github.com/imprintio/imprint/ops"
	"github.com/imprintio/imprint/record"
	"github.com/stretchr/testify/require"
)

func buildS2Record(t *testing.T) *record.Record {
	t.Helper()
	b := builder.New()
	b.Put(1, record.Int32Value(42))
	b.Put(3, record.StringValue("hello"))
	b.Put(5, record.BoolValue(true))
	b.Put(7, record.BytesValue([]byte{1, 2, 3}))
	rec, err := b.Build()
	require.NoError(t, err)
	return rec
}

func TestProjectSubset(t *testing.T) {
	rec := buildS2Record(t)

	got, err := ops.Project(rec, []uint32{5, 1})
	require.NoError(t, err)

	require.Equal(t, []uint32{1, 5}, got.FieldIDs())

	v1, ok, err := got.GetValue(1)
	require.NoError(t, err)
	require.True(t, ok)
	i, _ := v1.AsInt32()
	require.Equal(t, int32(42), i)

	v5, ok, err := got.GetValue(5)
	require.NoError(t, err)
	require.True(t, ok)
	bv, _ := v5.AsBool()
	require.True(t, bv)

	origRaw, ok := rec.GetRawBytes(5)
	require.True(t, ok)
	gotRaw, ok := got.GetRawBytes(5)
	require.True(t, ok)
	require.Equal(t, origRaw, gotRaw)
}

func TestProjectDeduplicatesAndIgnoresAbsentIds(t *testing.T) {
	rec := buildS2Record(t)

	got, err := ops.Project(rec, []uint32{1, 1, 99, 1})
	require.NoError(t, err)

	require.Equal(t, []uint32{1}, got.FieldIDs())
}

func TestProjectEmptyIdsYieldsEmptyRecord(t *testing.T) {
	rec := buildS2Record(t)

	got, err := ops.Project(rec, nil)
	require.NoError(t, err)

	require.Empty(t, got.FieldIDs())
	require.Empty(t, got.Payload())
}

func TestProjectEmptyRecordYieldsEmptyRecord(t *testing.T) {
	rec, err := builder.New().Build()
	require.NoError(t, err)

	got, err := ops.Project(rec, []uint32{1, 2, 3})
	require.NoError(t, err)
	require.Empty(t, got.FieldIDs())
}

func TestProjectSetsUndefinedSchemaHash(t *testing.T) {
	rec := buildS2Record(t)

	got, err := ops.Project(rec, []uint32{1})
	require.NoError(t, err)
	require.Equal(t, record.UndefinedSchemaHash, got.Header().SchemaID.SchemaHash)
}

func TestProjectPreservesFieldspaceID(t *testing.T) {
	b := builder.New(builder.WithSchemaID(11, 22))
	b.Put(1, record.Int32Value(1))
	rec, err := b.Build()
	require.NoError(t, err)

	got, err := ops.Project(rec, []uint32{1})
	require.NoError(t, err)
	require.Equal(t, uint32(11), got.Header().SchemaID.FieldspaceID)
}

func TestProjectRoundTripsToWire(t *testing.T) {
	rec := buildS2Record(t)
	got, err := ops.Project(rec, []uint32{3, 7})
	require.NoError(t, err)

	bytes, err := got.Write()
	require.NoError(t, err)
	reread, _, err := record.ReadRecord(bytes)
	require.NoError(t, err)
	require.True(t, got.Equal(reread))
}
