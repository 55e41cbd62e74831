package postgres

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	"github.com/mmrzaf/fixturegen/internal/domain"
)

type PostgresTarget struct {
	dsn    string
	schema string
	db     *sql.DB
}

func NewPostgresTarget(dsn, schema string) *PostgresTarget {
	if schema == "" {
		schema = "public"
	}
	return &PostgresTarget{
		dsn:    dsn,
		schema: schema,
	}
}

func (t *PostgresTarget) Connect() error {
	db, err := sql.Open("postgres", t.dsn)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return err
	}
	t.db = db
	return nil
}

func (t *PostgresTarget) Close() error {
	if t.db != nil {
		return t.db.Close()
	}
	return nil
}

func (t *PostgresTarget) ServerVersion() (string, error) {
	var version string
	if err := t.db.QueryRow("SHOW server_version").Scan(&version); err != nil {
		return "", err
	}
	return version, nil
}

func (t *PostgresTarget) CreateTableIfNotExists(tableName string, columns []domain.Column) error {
	var exists bool
	query := `SELECT EXISTS (
		SELECT FROM information_schema.tables
		WHERE table_schema = $1 AND table_name = $2
	)`
	if err := t.db.QueryRow(query, t.schema, tableName).Scan(&exists); err != nil {
		return err
	}

	if exists {
		return nil
	}

	_, err := t.db.Exec(createTableSQL(t.schema, tableName, columns))
	return err
}

func createTableSQL(schema, tableName string, columns []domain.Column) string {
	columnDefs := make([]string, len(columns))
	for i, col := range columns {
		columnDefs[i] = fmt.Sprintf("%s %s NOT NULL", col.Name, mapColumnType(col.Kind))
	}
	return fmt.Sprintf("CREATE TABLE %s.%s (%s)", schema, tableName, strings.Join(columnDefs, ", "))
}

func mapColumnType(kind domain.Kind) string {
	switch kind {
	case domain.KindInt:
		return "BIGINT"
	case domain.KindString:
		return "TEXT"
	case domain.KindBool:
		return "BOOLEAN"
	case domain.KindDate:
		return "DATE"
	default:
		return "TEXT"
	}
}

func (t *PostgresTarget) TruncateTable(tableName string) error {
	_, err := t.db.Exec(fmt.Sprintf("TRUNCATE TABLE %s.%s", t.schema, tableName))
	return err
}

func (t *PostgresTarget) InsertBatch(tableName string, columns []string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	args := make([]interface{}, 0, len(rows)*len(columns))
	for _, row := range rows {
		args = append(args, row...)
	}

	_, err := t.db.Exec(insertSQL(t.schema, tableName, columns, len(rows)), args...)
	return err
}

// insertSQL builds a multi-row INSERT with numbered placeholders.
func insertSQL(schema, tableName string, columns []string, numRows int) string {
	placeholders := make([]string, numRows)
	for i := 0; i < numRows; i++ {
		rowPlaceholders := make([]string, len(columns))
		for j := range columns {
			rowPlaceholders[j] = fmt.Sprintf("$%d", i*len(columns)+j+1)
		}
		placeholders[i] = "(" + strings.Join(rowPlaceholders, ", ") + ")"
	}

	return fmt.Sprintf("INSERT INTO %s.%s (%s) VALUES %s",
		schema, tableName, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
}
