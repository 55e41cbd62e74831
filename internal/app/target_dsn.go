package app

import (
	"net/url"
	"strings"

	"github.com/mmrzaf/fixturegen/internal/domain"
)

// resolveTarget returns a copy of base whose postgres DSN points at the
// requested database. dbOverride wins over base.Database.
func resolveTarget(base *domain.ExportTarget, dbOverride string) *domain.ExportTarget {
	if base == nil {
		return nil
	}
	t := *base
	if dbOverride != "" {
		t.Database = dbOverride
	}
	if t.Kind == domain.TargetKindPostgres && t.Database != "" {
		t.DSN = withPostgresDatabase(t.DSN, t.Database)
	}
	return &t
}

func withPostgresDatabase(dsn, database string) string {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return dsn
	}
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.Host != "" {
		u.Path = "/" + database
		return u.String()
	}
	parts := strings.Fields(dsn)
	found := false
	for i := range parts {
		if strings.HasPrefix(strings.ToLower(parts[i]), "dbname=") {
			parts[i] = "dbname=" + database
			found = true
			break
		}
	}
	if !found {
		parts = append(parts, "dbname="+database)
	}
	return strings.Join(parts, " ")
}
