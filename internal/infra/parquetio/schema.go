package parquetio

import (
	"fmt"

	"github.com/parquet-go/parquet-go"
)

// SchemaInfo describes one leaf column of a parquet file.
type SchemaInfo struct {
	Name         string `json:"name" yaml:"name"`
	PhysicalType string `json:"physical_type" yaml:"physical_type"`
	LogicalType  string `json:"logical_type,omitempty" yaml:"logical_type,omitempty"`
	Required     bool   `json:"required" yaml:"required"`
	Optional     bool   `json:"optional" yaml:"optional"`
}

// ExtractSchemaInfo lists the columns of the file at path in schema order.
func ExtractSchemaInfo(path string) ([]SchemaInfo, error) {
	reader, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	var infos []SchemaInfo
	for _, field := range reader.Schema().Fields() {
		if len(field.Fields()) > 0 {
			return nil, fmt.Errorf("unexpected nested column: %s", field.Name())
		}
		infos = append(infos, SchemaInfo{
			Name:         field.Name(),
			PhysicalType: physicalType(field),
			LogicalType:  logicalType(field),
			Required:     field.Required(),
			Optional:     field.Optional(),
		})
	}
	return infos, nil
}

// ReadMetadata returns the footer key/value metadata of the file at path.
func ReadMetadata(path string) (map[string]string, error) {
	reader, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()
	return reader.Metadata(), nil
}

func physicalType(field parquet.Field) string {
	if field.Type() == nil {
		return "GROUP"
	}

	switch field.Type().Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT"
	case parquet.Double:
		return "DOUBLE"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

func logicalType(field parquet.Field) string {
	if field.Type() == nil {
		return ""
	}
	lt := field.Type().LogicalType()
	if lt == nil {
		return ""
	}
	return lt.String()
}
