package domain

import (
	"time"
)

// Record is one row of the sample table.
type Record struct {
	Age       int64     `json:"age" yaml:"age"`
	Income    int64     `json:"income" yaml:"income"`
	Education string    `json:"education" yaml:"education"`
	Employed  bool      `json:"employed" yaml:"employed"`
	JoinDate  time.Time `json:"join_date" yaml:"join_date"`
}

// Table is the generated dataset. Row order is significant.
type Table struct {
	Records []Record `json:"records" yaml:"records"`
}

func (t *Table) NumRows() int {
	return len(t.Records)
}

func (t *Table) ColumnNames() []string {
	names := make([]string, len(Columns))
	for i, c := range Columns {
		names[i] = c.Name
	}
	return names
}

// Head returns at most n leading records.
func (t *Table) Head(n int) []Record {
	if n > len(t.Records) {
		n = len(t.Records)
	}
	if n < 0 {
		n = 0
	}
	return t.Records[:n]
}

// Values returns the record as a row of column values in catalogue order.
func (r Record) Values() []interface{} {
	return []interface{}{r.Age, r.Income, r.Education, r.Employed, r.JoinDate}
}

type ColumnType string

const (
	ColumnTypeNumerical   ColumnType = "numerical"
	ColumnTypeCategorical ColumnType = "categorical"
	ColumnTypeDatetime    ColumnType = "datetime"
)

func (c ColumnType) Valid() bool {
	switch c {
	case ColumnTypeNumerical, ColumnTypeCategorical, ColumnTypeDatetime:
		return true
	default:
		return false
	}
}

// Kind is the physical value kind stored for a column.
type Kind string

const (
	KindInt    Kind = "int"
	KindString Kind = "string"
	KindBool   Kind = "bool"
	KindDate   Kind = "date"
)

type Column struct {
	Name string     `json:"name" yaml:"name"`
	Type ColumnType `json:"type" yaml:"type"`
	Kind Kind       `json:"kind" yaml:"kind"`
}

const (
	ColumnAge       = "age"
	ColumnIncome    = "income"
	ColumnEducation = "education"
	ColumnEmployed  = "employed"
	ColumnJoinDate  = "join_date"
)

// Columns is the fixed column catalogue of the sample table, in file order.
var Columns = []Column{
	{Name: ColumnAge, Type: ColumnTypeNumerical, Kind: KindInt},
	{Name: ColumnIncome, Type: ColumnTypeNumerical, Kind: KindInt},
	{Name: ColumnEducation, Type: ColumnTypeCategorical, Kind: KindString},
	{Name: ColumnEmployed, Type: ColumnTypeCategorical, Kind: KindBool},
	{Name: ColumnJoinDate, Type: ColumnTypeDatetime, Kind: KindDate},
}

type RunStats struct {
	RunID           string  `json:"run_id"`
	Seed            int64   `json:"seed"`
	TotalRows       int64   `json:"total_rows"`
	Digest          string  `json:"digest"`
	DurationSeconds float64 `json:"duration_seconds"`
}

const (
	TableModeCreateIfMissing    = "create_if_missing"
	TableModeTruncateThenInsert = "truncate_then_insert"
	TableModeAppendOnly         = "append_only"
)

func IsValidTableMode(mode string) bool {
	switch mode {
	case TableModeCreateIfMissing, TableModeTruncateThenInsert, TableModeAppendOnly:
		return true
	default:
		return false
	}
}

type GeneratorSpec struct {
	Type   string                 `json:"type" yaml:"type"`
	Params map[string]interface{} `json:"params,omitempty" yaml:"params,omitempty"`
}

// ColumnPlan binds a catalogue column to the generator that fills it.
type ColumnPlan struct {
	Column    Column        `json:"column" yaml:"column"`
	Generator GeneratorSpec `json:"generator" yaml:"generator"`
}

// ExportTarget describes a SQL database the sample table can be loaded into.
type ExportTarget struct {
	Kind     string `json:"kind" yaml:"kind"`
	DSN      string `json:"dsn" yaml:"dsn"`
	Schema   string `json:"schema,omitempty" yaml:"schema,omitempty"`
	Database string `json:"database,omitempty" yaml:"database,omitempty"`
	Table    string `json:"table" yaml:"table"`
	Mode     string `json:"mode" yaml:"mode"`
}

const (
	TargetKindSQLite   = "sqlite"
	TargetKindPostgres = "postgres"
)

// TargetCheck is the outcome of a connectivity probe against an export target.
type TargetCheck struct {
	OK            bool      `json:"ok"`
	ServerVersion string    `json:"server_version,omitempty"`
	LatencyMS     int64     `json:"latency_ms"`
	Error         string    `json:"error,omitempty"`
	CheckedAt     time.Time `json:"checked_at"`
}
