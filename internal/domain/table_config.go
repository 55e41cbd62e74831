package domain

// TableConfig is the sidecar description written next to the parquet file.
// Field order matches the JSON key order of the published sidecar.
type TableConfig struct {
	TableName        string      `json:"table_name" yaml:"table_name"`
	TableDescription string      `json:"table_description" yaml:"table_description"`
	ColumnTypes      ColumnTypes `json:"column_types" yaml:"column_types"`
	BaseName         string      `json:"base_name" yaml:"base_name"`
	TableMetadata    string      `json:"table_metadata" yaml:"table_metadata"`
}

// ColumnTypes carries one semantic type per sample column, in sidecar key
// order.
type ColumnTypes struct {
	Age       ColumnType `json:"age" yaml:"age"`
	Income    ColumnType `json:"income" yaml:"income"`
	Education ColumnType `json:"education" yaml:"education"`
	Employed  ColumnType `json:"employed" yaml:"employed"`
	JoinDate  ColumnType `json:"join_date" yaml:"join_date"`
}

// ByName lists the column types keyed by column name.
func (c ColumnTypes) ByName() map[string]ColumnType {
	return map[string]ColumnType{
		ColumnAge:       c.Age,
		ColumnIncome:    c.Income,
		ColumnEducation: c.Education,
		ColumnEmployed:  c.Employed,
		ColumnJoinDate:  c.JoinDate,
	}
}

const (
	SampleTableName        = "sample_data"
	SampleTableDescription = "Sample data for testing VAE model"
	SampleBaseName         = "test_sample"
	SampleTableMetadata    = "This is a sample dataset for regression testing"
)

func SampleTableConfig() *TableConfig {
	return &TableConfig{
		TableName:        SampleTableName,
		TableDescription: SampleTableDescription,
		ColumnTypes: ColumnTypes{
			Age:       ColumnTypeNumerical,
			Income:    ColumnTypeNumerical,
			Education: ColumnTypeCategorical,
			Employed:  ColumnTypeCategorical,
			JoinDate:  ColumnTypeDatetime,
		},
		BaseName:      SampleBaseName,
		TableMetadata: SampleTableMetadata,
	}
}
