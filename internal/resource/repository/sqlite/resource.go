package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"campus-advisor/internal/resource"
	"campus-advisor/internal/resource/repository"
	pkgSqlite "campus-advisor/pkg/sqlite"
)

func (r *implRepository) UpsertResources(ctx context.Context, items []resource.Resource) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToUpsert, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO campus_resources (id, name, category, description, location, contact_info, website, hours, tags, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
	category = excluded.category,
	description = excluded.description,
	location = excluded.location,
	contact_info = excluded.contact_info,
	website = excluded.website,
	hours = excluded.hours,
	tags = excluded.tags`)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToUpsert, err)
	}
	defer stmt.Close()

	now := pkgSqlite.NowMillis()
	for _, it := range items {
		tags, err := json.Marshal(nonNil(it.Tags))
		if err != nil {
			return 0, fmt.Errorf("%w: %v", repository.ErrFailedToUpsert, err)
		}
		if _, err := stmt.ExecContext(ctx, uuid.NewString(), it.Name, it.Category, it.Description,
			it.Location, it.ContactInfo, it.Website, it.Hours, string(tags), now); err != nil {
			r.l.Errorf(ctx, "resource.repository.UpsertResources: %s: %v", it.Name, err)
			return 0, fmt.Errorf("%w: %v", repository.ErrFailedToUpsert, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToUpsert, err)
	}
	return len(items), nil
}

func (r *implRepository) ListResources(ctx context.Context, opt repository.ListResourcesOptions) ([]resource.Resource, error) {
	var (
		where []string
		args  []any
	)
	if opt.Category != "" {
		where = append(where, "category = ?")
		args = append(args, opt.Category)
	}
	if opt.Tag != "" {
		where = append(where, "EXISTS (SELECT 1 FROM json_each(campus_resources.tags) WHERE json_each.value = ?)")
		args = append(args, strings.ToLower(opt.Tag))
	}
	q := `SELECT id, name, category, description, location, contact_info, website, hours, tags, created_at FROM campus_resources`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY name ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		r.l.Errorf(ctx, "resource.repository.ListResources: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	out := make([]resource.Resource, 0)
	for rows.Next() {
		var (
			res     resource.Resource
			tags    string
			created int64
		)
		if err := rows.Scan(&res.ID, &res.Name, &res.Category, &res.Description, &res.Location,
			&res.ContactInfo, &res.Website, &res.Hours, &tags, &created); err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
		}
		if err := json.Unmarshal([]byte(tags), &res.Tags); err != nil {
			r.l.Warnf(ctx, "resource.repository.ListResources: bad tags for %s: %v", res.Name, err)
		}
		res.CreatedAt = time.UnixMilli(created)
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	return out, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
