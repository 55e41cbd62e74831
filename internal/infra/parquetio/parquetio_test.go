package parquetio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmrzaf/fixturegen/internal/domain"
	"github.com/mmrzaf/fixturegen/internal/exec"
	"github.com/mmrzaf/fixturegen/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable(t *testing.T) *domain.Table {
	t.Helper()
	table, _, err := exec.NewExecutor(registry.DefaultGeneratorRegistry()).GenerateSample()
	require.NoError(t, err)
	return table
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.parquet")
	table := sampleTable(t)

	require.NoError(t, WriteTable(path, table, nil))

	got, err := ReadTable(path)
	require.NoError(t, err)
	require.Equal(t, table.NumRows(), got.NumRows())

	for i := range table.Records {
		want := table.Records[i]
		have := got.Records[i]
		assert.Equal(t, want.Age, have.Age, "row %d age", i)
		assert.Equal(t, want.Income, have.Income, "row %d income", i)
		assert.Equal(t, want.Education, have.Education, "row %d education", i)
		assert.Equal(t, want.Employed, have.Employed, "row %d employed", i)
		assert.True(t, want.JoinDate.Equal(have.JoinDate), "row %d join_date: %v != %v", i, want.JoinDate, have.JoinDate)
	}
}

func TestReadTable_FirstRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.parquet")
	require.NoError(t, WriteTable(path, sampleTable(t), nil))

	got, err := ReadTable(path)
	require.NoError(t, err)
	require.Len(t, got.Records, 10)

	first := got.Records[0]
	assert.Equal(t, int64(62), first.Age)
	assert.Equal(t, int64(25185), first.Income)
	assert.Equal(t, "Master", first.Education)
	assert.False(t, first.Employed)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), first.JoinDate)
	assert.Equal(t, time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC), got.Records[9].JoinDate)
}

func TestExtractSchemaInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.parquet")
	require.NoError(t, WriteTable(path, sampleTable(t), nil))

	infos, err := ExtractSchemaInfo(path)
	require.NoError(t, err)
	require.Len(t, infos, len(domain.Columns))

	wantPhysical := map[string]string{
		domain.ColumnAge:       "INT64",
		domain.ColumnIncome:    "INT64",
		domain.ColumnEducation: "BYTE_ARRAY",
		domain.ColumnEmployed:  "BOOLEAN",
		domain.ColumnJoinDate:  "INT32",
	}
	for i, info := range infos {
		assert.Equal(t, domain.Columns[i].Name, info.Name)
		assert.Equal(t, wantPhysical[info.Name], info.PhysicalType, info.Name)
		assert.True(t, info.Required, info.Name)
	}
	assert.Equal(t, "STRING", infos[2].LogicalType)
	assert.Equal(t, "DATE", infos[4].LogicalType)
}

func TestReadMetadata(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.parquet")
	meta := map[string]string{
		MetadataRunID:  "0b7e6a52-8f0c-4d0e-9d55-3c2f4f6d1e11",
		MetadataDigest: "abc123",
	}
	require.NoError(t, WriteTable(path, sampleTable(t), meta))

	got, err := ReadMetadata(path)
	require.NoError(t, err)
	assert.Equal(t, meta[MetadataRunID], got[MetadataRunID])
	assert.Equal(t, meta[MetadataDigest], got[MetadataDigest])
}

func TestWriteTable_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.parquet")
	require.NoError(t, os.WriteFile(path, []byte("not a parquet file"), 0o644))

	table := sampleTable(t)
	table.Records = table.Records[:3]
	require.NoError(t, WriteTable(path, table, nil))

	got, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, 3, got.NumRows())
}

func TestWriteTable_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "sample.parquet")
	err := WriteTable(path, sampleTable(t), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewReader_NotParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.parquet")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	_, err := NewReader(path)
	require.Error(t, err)
}
