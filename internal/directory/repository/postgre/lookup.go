package postgres

import (
	"context"
	"fmt"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/lib/pq"

	pkgPostgres "notification-enricher/pkg/postgre"
)

type nameRow struct {
	ID   string      `boil:"id"`
	Name null.String `boil:"name"`
}

func (r *implRepository) LookupNames(ctx context.Context, ids []string) (map[string]string, error) {
	// Non-UUID ids would fail the whole ANY($1) cast, so drop them up
	// front; they simply stay unresolved.
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if pkgPostgres.IsValidUUID(id) {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return map[string]string{}, nil
	}

	query := fmt.Sprintf(
		`SELECT %s AS id, %s AS name FROM %s WHERE %s = ANY($1) AND deleted_at IS NULL`,
		r.idColumn, r.nameColumn, r.table, r.idColumn,
	)

	var rows []nameRow
	if err := queries.Raw(query, pq.Array(valid)).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.directory.repository.postgres.LookupNames.%s: %v", r.table, err)
		return nil, err
	}

	names := make(map[string]string, len(rows))
	for _, row := range rows {
		if row.Name.Valid && row.Name.String != "" {
			names[row.ID] = row.Name.String
		}
	}

	return names, nil
}
