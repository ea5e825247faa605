package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"campus-advisor/internal/profile/repository"
	"campus-advisor/pkg/log"
	pkgSqlite "campus-advisor/pkg/sqlite"
)

func newTestRepo(t *testing.T) *implRepository {
	t.Helper()
	db, err := pkgSqlite.Open(context.Background(), filepath.Join(t.TempDir(), "profile.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db, log.NewNop())
}

func strPtr(s string) *string { return &s }

func TestCreateAndGetUser(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	u, err := r.CreateUser(ctx, repository.CreateUserOptions{
		Name:      "Alex",
		Email:     "Alex@Example.edu",
		Major:     "Biology",
		Year:      "Junior",
		Interests: []string{"chess", " ", "hiking"},
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.Email != "alex@example.edu" {
		t.Errorf("email not normalised: %q", u.Email)
	}
	if u.Profile.StressLevel != "medium" {
		t.Errorf("default stress level = %q", u.Profile.StressLevel)
	}
	if len(u.Profile.Interests) != 2 {
		t.Errorf("blank interests kept: %v", u.Profile.Interests)
	}

	byEmail, err := r.GetOneUser(ctx, repository.GetOneUserOptions{Email: "alex@example.edu"})
	if err != nil || byEmail.ID != u.ID {
		t.Fatalf("GetOneUser by email: %v %+v", err, byEmail)
	}

	if _, err := r.CreateUser(ctx, repository.CreateUserOptions{Name: "Other", Email: "alex@example.edu"}); !errors.Is(err, repository.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	if _, err := r.GetOneUser(ctx, repository.GetOneUserOptions{ID: "missing"}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateUser_Partial(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	u, err := r.CreateUser(ctx, repository.CreateUserOptions{Name: "Sam", Email: "sam@example.edu", Major: "History"})
	if err != nil {
		t.Fatal(err)
	}

	got, err := r.UpdateUser(ctx, repository.UpdateUserOptions{
		ID:    u.ID,
		Year:  strPtr("Senior"),
		Goals: strPtr("graduate on time"),
	})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if got.Name != "Sam" || got.Profile.Major != "History" {
		t.Errorf("untouched fields changed: %+v", got)
	}
	if got.Profile.Year != "Senior" || got.Profile.Goals != "graduate on time" {
		t.Errorf("fields not updated: %+v", got.Profile)
	}

	if _, err := r.UpdateUser(ctx, repository.UpdateUserOptions{ID: "missing", Name: strPtr("x")}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateStressLevel(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	u, err := r.CreateUser(ctx, repository.CreateUserOptions{Name: "Kim", Email: "kim@example.edu"})
	if err != nil {
		t.Fatal(err)
	}
	if err := r.UpdateStressLevel(ctx, u.ID, "8"); err != nil {
		t.Fatalf("UpdateStressLevel: %v", err)
	}
	got, _ := r.GetOneUser(ctx, repository.GetOneUserOptions{ID: u.ID})
	if got.Profile.StressLevel != "8" {
		t.Errorf("stress level = %q", got.Profile.StressLevel)
	}
	if err := r.UpdateStressLevel(ctx, "missing", "4"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
