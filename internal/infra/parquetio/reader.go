package parquetio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mmrzaf/fixturegen/internal/domain"
	"github.com/parquet-go/parquet-go"
)

// Reader reads a sample parquet file back into domain values.
type Reader struct {
	file   *os.File
	pqFile *parquet.File
}

func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &Reader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

func (r *Reader) NumRows() int64 {
	return r.pqFile.NumRows()
}

// ReadTable reads every row in file order.
func (r *Reader) ReadTable() (*domain.Table, error) {
	reader := parquet.NewGenericReader[row](r.pqFile)
	defer func() { _ = reader.Close() }()

	table := &domain.Table{Records: make([]domain.Record, 0, r.pqFile.NumRows())}
	buf := make([]row, 64)
	for {
		n, err := reader.Read(buf)
		for _, rw := range buf[:n] {
			table.Records = append(table.Records, fromRow(rw))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read rows: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return table, nil
}

// Metadata returns the footer key/value metadata.
func (r *Reader) Metadata() map[string]string {
	kv := r.pqFile.Metadata().KeyValueMetadata
	out := make(map[string]string, len(kv))
	for _, e := range kv {
		out[e.Key] = e.Value
	}
	return out
}

func (r *Reader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// Close is safe to call more than once.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// ReadTable opens path, reads the table and closes the file.
func ReadTable(path string) (*domain.Table, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return r.ReadTable()
}
