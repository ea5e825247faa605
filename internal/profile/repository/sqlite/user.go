package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"campus-advisor/internal/profile"
	"campus-advisor/internal/profile/repository"
	pkgSqlite "campus-advisor/pkg/sqlite"
)

// CreateUser inserts the user and its profile row in one transaction.
func (r *implRepository) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (profile.User, error) {
	id := uuid.NewString()
	now := pkgSqlite.NowMillis()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "profile.repository.CreateUser: begin: %v", err)
		return profile.User{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (id, email, name, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, strings.ToLower(opt.Email), opt.Name, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return profile.User{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "profile.repository.CreateUser: insert user: %v", err)
		return profile.User{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	stress := opt.StressLevel
	if stress == "" {
		stress = profile.DefaultStressLevel
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO user_profiles (user_id, major, year, interests, stress_level, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, opt.Major, opt.Year, encodeInterests(opt.Interests), stress, now)
	if err != nil {
		r.l.Errorf(ctx, "profile.repository.CreateUser: insert profile: %v", err)
		return profile.User{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	if err := tx.Commit(); err != nil {
		return profile.User{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	return r.GetOneUser(ctx, repository.GetOneUserOptions{ID: id})
}

func (r *implRepository) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (profile.User, error) {
	var row *sql.Row
	switch {
	case opt.ID != "":
		row = r.db.QueryRowContext(ctx, selectUser+` WHERE u.id = ?`, opt.ID)
	case opt.Email != "":
		row = r.db.QueryRowContext(ctx, selectUser+` WHERE u.email = ?`, strings.ToLower(opt.Email))
	default:
		return profile.User{}, repository.ErrNotFound
	}

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return profile.User{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "profile.repository.GetOneUser: %v", err)
		return profile.User{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return u, nil
}

// UpdateUser applies the non-nil fields. A missing profile row is created.
func (r *implRepository) UpdateUser(ctx context.Context, opt repository.UpdateUserOptions) (profile.User, error) {
	now := pkgSqlite.NowMillis()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return profile.User{}, fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `UPDATE users SET name = COALESCE(?, name), updated_at = ? WHERE id = ?`,
		nullable(opt.Name), now, opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "profile.repository.UpdateUser: users: %v", err)
		return profile.User{}, fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return profile.User{}, repository.ErrNotFound
	}

	var interests any
	if opt.Interests != nil {
		interests = encodeInterests(opt.Interests)
	}

	_, err = tx.ExecContext(ctx, `
INSERT INTO user_profiles (user_id, major, year, interests, stress_level, goals, updated_at)
VALUES (?, COALESCE(?, ''), COALESCE(?, ''), COALESCE(?, '[]'), COALESCE(?, 'medium'), COALESCE(?, ''), ?)
ON CONFLICT(user_id) DO UPDATE SET
	major = COALESCE(?, major),
	year = COALESCE(?, year),
	interests = COALESCE(?, interests),
	stress_level = COALESCE(?, stress_level),
	goals = COALESCE(?, goals),
	updated_at = excluded.updated_at`,
		opt.ID, nullable(opt.Major), nullable(opt.Year), interests, nullable(opt.StressLevel), nullable(opt.Goals), now,
		nullable(opt.Major), nullable(opt.Year), interests, nullable(opt.StressLevel), nullable(opt.Goals),
	)
	if err != nil {
		r.l.Errorf(ctx, "profile.repository.UpdateUser: user_profiles: %v", err)
		return profile.User{}, fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}

	if err := tx.Commit(); err != nil {
		return profile.User{}, fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}

	return r.GetOneUser(ctx, repository.GetOneUserOptions{ID: opt.ID})
}

func (r *implRepository) UpdateStressLevel(ctx context.Context, userID, level string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE user_profiles SET stress_level = ?, updated_at = ? WHERE user_id = ?`,
		level, pkgSqlite.NowMillis(), userID)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
