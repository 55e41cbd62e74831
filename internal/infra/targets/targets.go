// Package targets loads a generated table into a SQL database.
package targets

import (
	"fmt"

	"github.com/mmrzaf/fixturegen/internal/domain"
	"github.com/mmrzaf/fixturegen/internal/infra/targets/postgres"
	"github.com/mmrzaf/fixturegen/internal/infra/targets/sqlite"
)

const batchSize = 1000

type Target interface {
	Connect() error
	Close() error
	ServerVersion() (string, error)
	CreateTableIfNotExists(tableName string, columns []domain.Column) error
	TruncateTable(tableName string) error
	InsertBatch(tableName string, columns []string, rows [][]interface{}) error
}

// New builds an unconnected target for t.
func New(t *domain.ExportTarget) (Target, error) {
	switch t.Kind {
	case domain.TargetKindPostgres:
		return postgres.NewPostgresTarget(t.DSN, t.Schema), nil
	case domain.TargetKindSQLite:
		return sqlite.NewSQLiteTarget(t.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported target kind: %s", t.Kind)
	}
}

// Load connects to target, prepares tableName according to mode and inserts
// every record of table. It returns the number of rows inserted.
func Load(target Target, tableName, mode string, table *domain.Table) (int64, error) {
	if err := target.Connect(); err != nil {
		return 0, fmt.Errorf("failed to connect to target: %w", err)
	}
	defer target.Close()

	if mode == "" {
		mode = domain.TableModeCreateIfMissing
	}

	switch mode {
	case domain.TableModeCreateIfMissing:
		if err := target.CreateTableIfNotExists(tableName, domain.Columns); err != nil {
			return 0, fmt.Errorf("failed to create table '%s': %w", tableName, err)
		}
	case domain.TableModeTruncateThenInsert:
		if err := target.CreateTableIfNotExists(tableName, domain.Columns); err != nil {
			return 0, fmt.Errorf("failed to create table '%s': %w", tableName, err)
		}
		if err := target.TruncateTable(tableName); err != nil {
			return 0, fmt.Errorf("failed to truncate table '%s': %w", tableName, err)
		}
	case domain.TableModeAppendOnly:
	default:
		return 0, fmt.Errorf("unknown table mode: %s", mode)
	}

	columnNames := table.ColumnNames()
	batch := make([][]interface{}, 0, batchSize)
	var inserted int64

	for _, rec := range table.Records {
		batch = append(batch, rec.Values())
		if len(batch) >= batchSize {
			if err := target.InsertBatch(tableName, columnNames, batch); err != nil {
				return inserted, fmt.Errorf("failed to insert batch into '%s': %w", tableName, err)
			}
			inserted += int64(len(batch))
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := target.InsertBatch(tableName, columnNames, batch); err != nil {
			return inserted, fmt.Errorf("failed to insert final batch into '%s': %w", tableName, err)
		}
		inserted += int64(len(batch))
	}

	return inserted, nil
}
