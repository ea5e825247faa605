package sqlite

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"campus-advisor/internal/chat"
	"campus-advisor/internal/chat/repository"
	pkgSqlite "campus-advisor/pkg/sqlite"
)

func (r *implRepository) CreateMessage(ctx context.Context, opt repository.CreateMessageOptions) (chat.Message, error) {
	m := chat.Message{
		ID:          uuid.NewString(),
		UserID:      opt.UserID,
		SessionID:   opt.SessionID,
		Role:        opt.Role,
		Content:     opt.Content,
		Intent:      opt.Intent,
		HandlerName: opt.HandlerName,
		Metadata:    opt.Metadata,
	}
	if m.Metadata == "" {
		m.Metadata = "{}"
	}
	now := pkgSqlite.NowMillis()
	m.CreatedAt = time.UnixMilli(now)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO messages (id, user_id, session_id, role, content, intent, handler_name, metadata, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.UserID, m.SessionID, m.Role, m.Content, m.Intent, m.HandlerName, m.Metadata, now)
	if err != nil {
		r.l.Errorf(ctx, "chat.repository.CreateMessage: %v", err)
		return chat.Message{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return m, nil
}

// ListRecent orders by seq, the insertion order, so two turns written in the
// same millisecond keep their order.
func (r *implRepository) ListRecent(ctx context.Context, opt repository.ListRecentOptions) ([]chat.Message, error) {
	if opt.Limit <= 0 {
		return []chat.Message{}, nil
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, session_id, role, content, intent, handler_name, metadata, created_at
FROM messages
WHERE user_id = ?
ORDER BY seq DESC
LIMIT ?`, opt.UserID, opt.Limit)
	if err != nil {
		r.l.Errorf(ctx, "chat.repository.ListRecent: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	msgs := make([]chat.Message, 0, opt.Limit)
	for rows.Next() {
		var (
			m       chat.Message
			created int64
		)
		if err := rows.Scan(&m.ID, &m.UserID, &m.SessionID, &m.Role, &m.Content, &m.Intent, &m.HandlerName, &m.Metadata, &created); err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
		}
		m.CreatedAt = time.UnixMilli(created)
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	slices.Reverse(msgs)
	return msgs, nil
}

func (r *implRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE user_id = ?`, userID)
	if err != nil {
		r.l.Errorf(ctx, "chat.repository.DeleteByUser: %v", err)
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
