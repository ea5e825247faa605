package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"campus-advisor/internal/advice"
	"campus-advisor/internal/advice/repository"
	pkgSqlite "campus-advisor/pkg/sqlite"
)

func (r *implRepository) CreateEntry(ctx context.Context, opt repository.CreateEntryOptions) (advice.Entry, error) {
	e := advice.Entry{
		ID:        uuid.NewString(),
		UserID:    opt.UserID,
		Category:  opt.Category,
		Title:     opt.Title,
		Content:   opt.Content,
		AgentType: opt.AgentType,
		Priority:  opt.Priority,
		Metadata:  opt.Metadata,
	}
	if e.Metadata == "" {
		e.Metadata = "{}"
	}
	now := pkgSqlite.NowMillis()
	e.CreatedAt = time.UnixMilli(now)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO advice_logs (id, user_id, category, title, content, agent_type, priority, metadata, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Category, e.Title, e.Content, e.AgentType, e.Priority, e.Metadata, now)
	if err != nil {
		r.l.Errorf(ctx, "advice.repository.CreateEntry: %v", err)
		return advice.Entry{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return e, nil
}

func (r *implRepository) ListEntries(ctx context.Context, opt repository.ListEntriesOptions) ([]advice.Entry, error) {
	var (
		where = []string{"user_id = ?"}
		args  = []any{opt.UserID}
	)
	if opt.Category != "" {
		where = append(where, "category = ?")
		args = append(args, opt.Category)
	}
	args = append(args, opt.Limit)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, category, title, content, agent_type, priority, metadata, created_at
FROM advice_logs
WHERE `+strings.Join(where, " AND ")+`
ORDER BY created_at DESC, rowid DESC
LIMIT ?`, args...)
	if err != nil {
		r.l.Errorf(ctx, "advice.repository.ListEntries: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	entries := make([]advice.Entry, 0)
	for rows.Next() {
		var (
			e       advice.Entry
			created int64
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Category, &e.Title, &e.Content, &e.AgentType, &e.Priority, &e.Metadata, &created); err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
		}
		e.CreatedAt = time.UnixMilli(created)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	return entries, nil
}
