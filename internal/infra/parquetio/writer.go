package parquetio

import (
	"fmt"
	"os"

	"github.com/mmrzaf/fixturegen/internal/domain"
	"github.com/mmrzaf/fixturegen/internal/timeutil"
	"github.com/parquet-go/parquet-go"
)

const (
	MetadataRunID  = "fixture.run_id"
	MetadataDigest = "fixture.digest"
)

// row is the on-disk shape of a domain.Record.
type row struct {
	Age       int64  `parquet:"age"`
	Income    int64  `parquet:"income"`
	Education string `parquet:"education"`
	Employed  bool   `parquet:"employed"`
	JoinDate  int32  `parquet:"join_date,date"`
}

func toRow(r domain.Record) row {
	return row{
		Age:       r.Age,
		Income:    r.Income,
		Education: r.Education,
		Employed:  r.Employed,
		JoinDate:  timeutil.DaysSinceEpoch(r.JoinDate),
	}
}

func fromRow(r row) domain.Record {
	return domain.Record{
		Age:       r.Age,
		Income:    r.Income,
		Education: r.Education,
		Employed:  r.Employed,
		JoinDate:  timeutil.FromDaysSinceEpoch(r.JoinDate),
	}
}

// WriteTable writes table to path, replacing any existing file.
func WriteTable(path string, table *domain.Table, metadata map[string]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}

	options := []parquet.WriterOption{parquet.Compression(&parquet.Snappy)}
	for k, v := range metadata {
		options = append(options, parquet.KeyValueMetadata(k, v))
	}

	writer := parquet.NewGenericWriter[row](file, options...)

	rows := make([]row, len(table.Records))
	for i, r := range table.Records {
		rows[i] = toRow(r)
	}

	if _, err := writer.Write(rows); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}
