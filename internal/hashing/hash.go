package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/mmrzaf/fixturegen/internal/domain"
	"github.com/mmrzaf/fixturegen/internal/timeutil"
)

// HashTable returns a hex SHA-256 digest of the table's logical content.
// Two tables with equal cell values always hash equal, regardless of how
// their timestamps are located.
func HashTable(table *domain.Table) (string, error) {
	data, err := json.Marshal(canonicalizeTable(table))
	if err != nil {
		return "", err
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

func HashTableConfig(cfg *domain.TableConfig) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

func canonicalizeTable(table *domain.Table) map[string]interface{} {
	rows := make([][]interface{}, len(table.Records))
	for i, r := range table.Records {
		rows[i] = []interface{}{
			r.Age,
			r.Income,
			r.Education,
			r.Employed,
			r.JoinDate.UTC().Format(timeutil.DateLayout),
		}
	}

	return map[string]interface{}{
		"columns": table.ColumnNames(),
		"rows":    rows,
	}
}
