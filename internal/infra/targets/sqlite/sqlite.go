package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/mmrzaf/fixturegen/internal/domain"
	"github.com/mmrzaf/fixturegen/internal/timeutil"
)

type SQLiteTarget struct {
	path string
	db   *sql.DB
}

func NewSQLiteTarget(path string) *SQLiteTarget {
	return &SQLiteTarget{path: path}
}

func (t *SQLiteTarget) Connect() error {
	db, err := sql.Open("sqlite3", t.path)
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

func (t *SQLiteTarget) Close() error {
	if t.db != nil {
		return t.db.Close()
	}
	return nil
}

func (t *SQLiteTarget) ServerVersion() (string, error) {
	var version string
	if err := t.db.QueryRow("SELECT sqlite_version()").Scan(&version); err != nil {
		return "", err
	}
	return version, nil
}

func (t *SQLiteTarget) CreateTableIfNotExists(tableName string, columns []domain.Column) error {
	query := `SELECT name FROM sqlite_master WHERE type='table' AND name=?`
	var name string
	err := t.db.QueryRow(query, tableName).Scan(&name)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	columnDefs := make([]string, len(columns))
	for i, col := range columns {
		columnDefs[i] = fmt.Sprintf("%s %s NOT NULL", col.Name, mapColumnType(col.Kind))
	}

	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", tableName, strings.Join(columnDefs, ", "))

	_, err = t.db.Exec(createSQL)
	return err
}

func mapColumnType(kind domain.Kind) string {
	switch kind {
	case domain.KindInt, domain.KindBool:
		return "INTEGER"
	case domain.KindString, domain.KindDate:
		return "TEXT"
	default:
		return "TEXT"
	}
}

func (t *SQLiteTarget) TruncateTable(tableName string) error {
	_, err := t.db.Exec(fmt.Sprintf("DELETE FROM %s", tableName))
	return err
}

func (t *SQLiteTarget) InsertBatch(tableName string, columns []string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := t.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = "?"
	}

	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		tableName, strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		args := make([]interface{}, len(row))
		for i, val := range row {
			switch v := val.(type) {
			case time.Time:
				args[i] = v.UTC().Format(timeutil.DateLayout)
			case bool:
				if v {
					args[i] = 1
				} else {
					args[i] = 0
				}
			default:
				args[i] = val
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			return err
		}
	}

	return tx.Commit()
}
