// Package parquetio writes and reads the sample table as an Apache Parquet
// file.
//
// Column layout:
//
//	age        INT64       INT(64,true)
//	income     INT64       INT(64,true)
//	education  BYTE_ARRAY  STRING
//	employed   BOOLEAN
//	join_date  INT32       DATE
//
// Pages are Snappy-compressed. The writer can attach key/value metadata to
// the file footer (run id, content digest). The package uses
// github.com/parquet-go/parquet-go for the file format.
package parquetio
